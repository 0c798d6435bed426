package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRef_UnmarshalJSON_String(t *testing.T) {
	// Arrange
	var ref CategoryRef

	// Act
	err := json.Unmarshal([]byte(`"5"`), &ref)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "5", ref.String(), "Строковый id должен сохраняться как есть")
}

func TestCategoryRef_UnmarshalJSON_Number(t *testing.T) {
	// Arrange
	var ref CategoryRef

	// Act
	err := json.Unmarshal([]byte(`5`), &ref)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "5", ref.String(), "Числовой id должен нормализоваться к строке")
}

func TestCategoryRef_UnmarshalJSON_NonNumericString(t *testing.T) {
	// Arrange
	var ref CategoryRef

	// Act
	err := json.Unmarshal([]byte(`"science"`), &ref)

	// Assert: произвольная строка допустима, проверка существования категории не выполняется
	require.NoError(t, err)
	assert.Equal(t, "science", ref.String())
}

func TestCategoryRef_UnmarshalJSON_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "boolean", data: `true`},
		{name: "array", data: `[1]`},
		{name: "object", data: `{"id": 1}`},
		{name: "null", data: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ref CategoryRef
			err := json.Unmarshal([]byte(tt.data), &ref)
			assert.Error(t, err, "Значение %s не является ссылкой на категорию", tt.data)
		})
	}
}

func TestCategoryRef_UnmarshalJSON_InsideStruct(t *testing.T) {
	// Arrange: так тип используется в телах запросов
	var payload struct {
		Category CategoryRef `json:"category"`
	}

	// Act
	err := json.Unmarshal([]byte(`{"category": 2}`), &payload)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "2", payload.Category.String())
}

func TestCategoryRef_MarshalJSON(t *testing.T) {
	// Arrange
	ref := CategoryRef("3")

	// Act
	data, err := json.Marshal(ref)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, `"3"`, string(data), "Ссылка на категорию сериализуется строкой")
}
