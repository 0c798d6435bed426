package main

import (
	"flag"
	"log"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/lurssed-daniel/Udacity-Project-II-Trivia-API/internal/config"
	"github.com/lurssed-daniel/Udacity-Project-II-Trivia-API/internal/importer"
)

// Утилита пакетной загрузки вопросов из .xlsx или .csv файла.
// Ожидаемые колонки: question, answer, category, difficulty.
//
//	go run ./cmd/import-questions -file data/questions.xlsx
//	go run ./cmd/import-questions -file data/questions.csv -start-row 1
func main() {
	filePath := flag.String("file", "", "Путь к .xlsx или .csv файлу (обязателен)")
	sheet := flag.String("sheet", "Sheet1", "Имя листа для .xlsx")
	startRow := flag.Int("start-row", 2, "Первая строка данных (1-based)")
	flag.Parse()

	if *filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := godotenv.Load(); err == nil {
		log.Println("Загружены переменные окружения из .env")
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	importConfig := importer.DefaultImportConfig(*filePath)
	importConfig.SheetName = *sheet
	importConfig.StartRow = *startRow

	result, err := importer.NewImporter(db).Run(importConfig)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	log.Printf("Обработано строк: %d", result.TotalProcessed)
	log.Printf("Создано вопросов: %d", result.Created)
	log.Printf("Создано категорий: %d", result.CategoriesCreated)
	log.Printf("Пропущено пустых строк: %d", result.Skipped)
	if len(result.Errors) > 0 {
		log.Printf("Ошибки (%d):", len(result.Errors))
		for _, importErr := range result.Errors {
			log.Printf("  %s", importErr)
		}
		os.Exit(1)
	}
}
