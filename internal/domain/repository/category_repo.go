package repository

import (
	"github.com/lurssed-daniel/Udacity-Project-II-Trivia-API/internal/domain/entity"
)

// CategoryRepository определяет методы для работы с категориями.
// Категории через API только читаются, поэтому методов записи нет.
type CategoryRepository interface {
	GetAll() ([]entity.Category, error)
}
