package service

import (
	"fmt"
	"strconv"

	"github.com/lurssed-daniel/Udacity-Project-II-Trivia-API/internal/domain/entity"
	"github.com/lurssed-daniel/Udacity-Project-II-Trivia-API/internal/domain/repository"
	apperrors "github.com/lurssed-daniel/Udacity-Project-II-Trivia-API/internal/pkg/errors"
)

// CategoryService предоставляет методы для работы с категориями
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	questionRepo repository.QuestionRepository
}

// NewCategoryService создает новый сервис категорий
func NewCategoryService(categoryRepo repository.CategoryRepository, questionRepo repository.QuestionRepository) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		questionRepo: questionRepo,
	}
}

// CategoryMap возвращает отображение id категории -> название.
// Карта всегда не nil, чтобы пустой набор сериализовался как {}.
func (s *CategoryService) CategoryMap() (map[uint]string, error) {
	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	result := make(map[uint]string, len(categories))
	for _, category := range categories {
		result[category.ID] = category.Type
	}
	return result, nil
}

// QuestionsByCategory возвращает вопросы категории. Колонка category хранит
// строковую форму id, поэтому фильтр сравнивает строки; несуществующая
// категория дает пустой список. Любая ошибка запроса транслируется в ErrNotFound.
func (s *CategoryService) QuestionsByCategory(categoryID uint) ([]entity.Question, error) {
	category := strconv.FormatUint(uint64(categoryID), 10)
	questions, err := s.questionRepo.GetByCategory(category)
	if err != nil {
		return nil, fmt.Errorf("%w: questions by category %d: %v", apperrors.ErrNotFound, categoryID, err)
	}
	return questions, nil
}
