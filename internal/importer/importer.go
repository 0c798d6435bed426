package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/xuri/excelize/v2"
)

// ImportConfig задает параметры импорта вопросов из файла
type ImportConfig struct {
	FilePath         string // Путь к .xlsx или .csv файлу
	QuestionColumn   string // Колонка с текстом вопроса
	AnswerColumn     string // Колонка с ответом
	CategoryColumn   string // Колонка с категорией (название или числовой id)
	DifficultyColumn string // Колонка со сложностью (1-5)
	SheetName        string // Имя листа для .xlsx
	StartRow         int    // Первая строка данных (1-based), заголовок пропускается
}

// DefaultImportConfig возвращает конфигурацию импорта по умолчанию
func DefaultImportConfig(filePath string) ImportConfig {
	return ImportConfig{
		FilePath:         filePath,
		QuestionColumn:   "A",
		AnswerColumn:     "B",
		CategoryColumn:   "C",
		DifficultyColumn: "D",
		SheetName:        "Sheet1",
		StartRow:         2, // Со второй строки: первая - заголовок
	}
}

// ImportResult содержит итоги импорта
type ImportResult struct {
	TotalProcessed    int
	Created           int
	CategoriesCreated int
	Skipped           int
	Errors            []string
}

// Importer загружает вопросы из файла в базу данных
type Importer struct {
	db *sqlx.DB

	// Ленивый кеш: название категории в нижнем регистре -> id
	categoryIDs map[string]uint
}

// NewImporter создает импортер поверх открытого подключения
func NewImporter(db *sqlx.DB) *Importer {
	return &Importer{db: db}
}

// Run импортирует вопросы из файла, формат определяется по расширению
func (imp *Importer) Run(config ImportConfig) (*ImportResult, error) {
	ext := strings.ToLower(filepath.Ext(config.FilePath))
	if ext == ".csv" {
		return imp.importFromCSV(config)
	}
	return imp.importFromExcel(config)
}

// importFromExcel читает вопросы из .xlsx файла
func (imp *Importer) importFromExcel(config ImportConfig) (*ImportResult, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %v", err)
	}

	result := &ImportResult{Errors: make([]string, 0)}

	for i, row := range rows {
		// Пропускаем заголовок
		if i < config.StartRow-1 {
			continue
		}

		question := cellValue(row, config.QuestionColumn)
		answer := cellValue(row, config.AnswerColumn)
		category := cellValue(row, config.CategoryColumn)
		difficulty := cellValue(row, config.DifficultyColumn)

		// Полностью пустые строки не считаем ошибками
		if question == "" && answer == "" && category == "" && difficulty == "" {
			result.Skipped++
			continue
		}

		result.TotalProcessed++
		if err := imp.processRow(question, answer, category, difficulty, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
		}
	}

	return result, nil
}

// importFromCSV читает вопросы из .csv файла.
// Ожидаемый порядок колонок: question, answer, category, difficulty.
func (imp *Importer) importFromCSV(config ImportConfig) (*ImportResult, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Разрешаем строки разной длины

	result := &ImportResult{Errors: make([]string, 0)}

	rowNum := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %v", err)
		}

		rowNum++
		if rowNum < config.StartRow {
			continue
		}

		var question, answer, category, difficulty string
		if len(row) > 0 {
			question = strings.TrimSpace(row[0])
		}
		if len(row) > 1 {
			answer = strings.TrimSpace(row[1])
		}
		if len(row) > 2 {
			category = strings.TrimSpace(row[2])
		}
		if len(row) > 3 {
			difficulty = strings.TrimSpace(row[3])
		}

		if question == "" && answer == "" && category == "" && difficulty == "" {
			result.Skipped++
			continue
		}

		result.TotalProcessed++
		if err := imp.processRow(question, answer, category, difficulty, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
		}
	}

	return result, nil
}

// processRow валидирует данные строки и сохраняет вопрос
func (imp *Importer) processRow(question, answer, category, difficulty string, result *ImportResult) error {
	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)

	if question == "" {
		return fmt.Errorf("question cannot be empty")
	}
	if answer == "" {
		return fmt.Errorf("answer cannot be empty")
	}

	// Сложность вне диапазона 1-5 или нечисловая заменяется на 1
	difficultyVal := parseIntOrDefault(difficulty, 1, 5, 1)

	categoryValue, err := imp.resolveCategory(category, result)
	if err != nil {
		return fmt.Errorf("failed to resolve category: %v", err)
	}

	query := imp.db.Rebind("INSERT INTO questions (question, answer, category, difficulty) VALUES (?, ?, ?, ?)")
	if _, err := imp.db.Exec(query, question, answer, categoryValue, difficultyVal); err != nil {
		return fmt.Errorf("failed to insert question: %v", err)
	}

	result.Created++
	return nil
}

// resolveCategory переводит метку категории в хранимое строковое значение id.
// Числовая метка считается готовым id; текстовая ищется по названию,
// отсутствующая категория создается на лету.
func (imp *Importer) resolveCategory(label string, result *ImportResult) (string, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return "", nil
	}

	if _, err := strconv.ParseUint(label, 10, 32); err == nil {
		return label, nil
	}

	if imp.categoryIDs == nil {
		if err := imp.loadCategories(); err != nil {
			return "", err
		}
	}

	key := strings.ToLower(label)
	if id, exists := imp.categoryIDs[key]; exists {
		return strconv.FormatUint(uint64(id), 10), nil
	}

	var id uint
	query := imp.db.Rebind("INSERT INTO categories (type) VALUES (?) RETURNING id")
	if err := imp.db.Get(&id, query, label); err != nil {
		return "", fmt.Errorf("failed to create category %q: %v", label, err)
	}

	imp.categoryIDs[key] = id
	result.CategoriesCreated++
	return strconv.FormatUint(uint64(id), 10), nil
}

// loadCategories заполняет кеш существующих категорий
func (imp *Importer) loadCategories() error {
	var categories []struct {
		ID   uint   `db:"id"`
		Type string `db:"type"`
	}
	if err := imp.db.Select(&categories, "SELECT id, type FROM categories"); err != nil {
		return fmt.Errorf("failed to load categories: %v", err)
	}

	imp.categoryIDs = make(map[string]uint, len(categories))
	for _, category := range categories {
		imp.categoryIDs[strings.ToLower(category.Type)] = category.ID
	}
	return nil
}

// cellValue возвращает значение ячейки по буквенному имени колонки
func cellValue(row []string, column string) string {
	idx := columnToIndex(column)
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// columnToIndex переводит буквенное имя колонки Excel в индекс с нуля
func columnToIndex(column string) int {
	column = strings.ToUpper(strings.TrimSpace(column))
	if column == "" {
		return -1
	}
	index := 0
	for i := 0; i < len(column); i++ {
		index = index*26 + int(column[i]-'A'+1)
	}
	return index - 1
}

// parseIntOrDefault разбирает целое в границах [min, max], иначе возвращает defaultVal
func parseIntOrDefault(s string, min, max, defaultVal int) int {
	val, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || val < min || val > max {
		return defaultVal
	}
	return val
}
