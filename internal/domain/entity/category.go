package entity

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Category представляет категорию вопросов
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Type string `gorm:"size:100;not null" json:"type"`
}

// TableName определяет имя таблицы для GORM
func (Category) TableName() string {
	return "categories"
}

// CategoryRef - пользовательский тип для ссылки на категорию в JSON запросах.
// Клиенты присылают id категории то строкой ("3"), то числом (3);
// в колонке questions.category значение хранится строкой.
type CategoryRef string

// UnmarshalJSON принимает JSON строку или число и нормализует к строковой форме
func (c *CategoryRef) UnmarshalJSON(data []byte) error {
	// null не ссылка: Unmarshal в *string молча пропустил бы его
	if bytes.Equal(data, []byte("null")) {
		return errors.New("category reference must be a string or a number")
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = CategoryRef(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*c = CategoryRef(n.String())
		return nil
	}

	return errors.New("category reference must be a string or a number")
}

// MarshalJSON сериализует ссылку на категорию как JSON строку
func (c CategoryRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(c))
}

// String возвращает строковую форму, в которой значение хранится в БД
func (c CategoryRef) String() string {
	return string(c)
}
