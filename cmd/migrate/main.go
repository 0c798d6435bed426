package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/lurssed-daniel/Udacity-Project-II-Trivia-API/internal/config"
)

// Утилита для ручного управления миграциями: применение всех ожидающих
// миграций или принудительная установка версии после dirty state.
//
//	go run ./cmd/migrate -action up
//	go run ./cmd/migrate -action force -version 1
func main() {
	action := flag.String("action", "up", "Действие: up или force")
	version := flag.Int("version", -1, "Версия для action=force")
	source := flag.String("source", "file://migrations", "Источник миграций")
	flag.Parse()

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

	db, err := sql.Open("postgres", cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		log.Fatal(err)
	}

	m, err := migrate.NewWithDatabaseInstance(*source, "postgres", driver)
	if err != nil {
		log.Fatal(err)
	}

	switch *action {
	case "up":
		fmt.Println("Применяем все ожидающие миграции...")
		if err := m.Up(); err != nil {
			if err == migrate.ErrNoChange {
				fmt.Println("Изменений нет, база данных уже актуальна.")
				return
			}
			log.Fatalf("Failed to apply migrations: %v", err)
		}
		fmt.Println("Миграции успешно применены.")

	case "force":
		if *version < 0 {
			log.Fatal("action=force требует -version")
		}
		// Force снимает dirty state и выставляет версию без выполнения SQL
		fmt.Printf("Принудительно выставляем версию %d...\n", *version)
		if err := m.Force(*version); err != nil {
			log.Fatalf("Failed to force version: %v", err)
		}
		fmt.Println("Готово. Dirty state снят, приложение можно запускать.")

	default:
		log.Fatalf("Неизвестное действие: %s", *action)
	}
}
