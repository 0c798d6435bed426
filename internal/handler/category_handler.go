package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lurssed-daniel/Udacity-Project-II-Trivia-API/internal/handler/dto"
	apperrors "github.com/lurssed-daniel/Udacity-Project-II-Trivia-API/internal/pkg/errors"
	"github.com/lurssed-daniel/Udacity-Project-II-Trivia-API/internal/service"
)

// CategoryHandler обрабатывает запросы, связанные с категориями
type CategoryHandler struct {
	categoryService *service.CategoryService
}

// NewCategoryHandler создает новый обработчик категорий
func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// ListCategories возвращает словарь всех категорий id -> название
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.CategoryMap()
	if err != nil {
		respondWithError(c, err)
		return
	}

	// Пустой справочник категорий означает, что отдавать нечего
	if len(categories) == 0 {
		respondWithError(c, fmt.Errorf("%w: no categories", apperrors.ErrNotFound))
		return
	}

	c.JSON(http.StatusOK, dto.CategoryListResponse{
		Success:         true,
		Categories:      categories,
		TotalCategories: len(categories),
	})
}

// QuestionsByCategory возвращает все вопросы одной категории
func (h *CategoryHandler) QuestionsByCategory(c *gin.Context) {
	categoryID := c.MustGet("categoryID").(uint) // Получаем из контекста

	questions, err := h.categoryService.QuestionsByCategory(categoryID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CategoryQuestionsResponse{
		Success:         true,
		Questions:       dto.NewQuestionListResponse(questions),
		TotalQuestions:  len(questions),
		CurrentCategory: categoryID,
	})
}
