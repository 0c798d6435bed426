package postgres

import (
	"gorm.io/gorm"

	"github.com/lurssed-daniel/Udacity-Project-II-Trivia-API/internal/domain/entity"
)

// CategoryRepo реализует repository.CategoryRepository
type CategoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepo создает новый репозиторий категорий
func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// GetAll возвращает все категории по возрастанию id
func (r *CategoryRepo) GetAll() ([]entity.Category, error) {
	var categories []entity.Category
	if err := r.db.Order("id").Find(&categories).Error; err != nil {
		return nil, classifyError(err)
	}
	return categories, nil
}
