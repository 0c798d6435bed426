package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lurssed-daniel/Udacity-Project-II-Trivia-API/internal/domain/entity"
	"github.com/lurssed-daniel/Udacity-Project-II-Trivia-API/internal/handler/dto"
	apperrors "github.com/lurssed-daniel/Udacity-Project-II-Trivia-API/internal/pkg/errors"
	"github.com/lurssed-daniel/Udacity-Project-II-Trivia-API/internal/service"
)

// QuestionHandler обрабатывает запросы, связанные с вопросами
type QuestionHandler struct {
	questionService *service.QuestionService
	categoryService *service.CategoryService
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(
	questionService *service.QuestionService,
	categoryService *service.CategoryService,
) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		categoryService: categoryService,
	}
}

// Структуры запросов

// CreateQuestionRequest представляет запрос на создание вопроса.
// Поля-указатели: проверяется присутствие ключей, а не их значения -
// пустая строка или нулевая сложность проходят валидацию.
type CreateQuestionRequest struct {
	Question   *string             `json:"question" binding:"required"`
	Answer     *string             `json:"answer" binding:"required"`
	Difficulty *int                `json:"difficulty" binding:"required"`
	Category   *entity.CategoryRef `json:"category" binding:"required"`
}

// SearchQuestionsRequest представляет запрос поиска по тексту вопроса
type SearchQuestionsRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// ListQuestions возвращает страницу вопросов вместе со словарем категорий
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	// Нечисловое значение page молча заменяется на 1; страницы <= 0
	// дают пустое окно и дальше обрабатываются как отсутствующие.
	page := 1
	if raw := c.Query("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			page = parsed
		}
	}

	questions, total, err := h.questionService.ListPage(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	categories, err := h.categoryService.CategoryMap()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuestionListResponse{
		Success:         true,
		Questions:       dto.NewQuestionListResponse(questions),
		TotalQuestions:  total,
		Categories:      categories,
		CurrentCategory: nil,
	})
}

// CreateQuestion создает новый вопрос
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, fmt.Errorf("%w: create question body: %v", apperrors.ErrUnprocessable, err))
		return
	}

	question := &entity.Question{
		Text:       *req.Question,
		Answer:     *req.Answer,
		Category:   req.Category.String(),
		Difficulty: *req.Difficulty,
	}

	if err := h.questionService.CreateQuestion(question); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateQuestionResponse{
		Success: true,
		Created: question.ID,
	})
}

// DeleteQuestion удаляет вопрос по id
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint) // Получаем из контекста

	if err := h.questionService.DeleteQuestion(questionID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteQuestionResponse{
		Success: true,
		Deleted: questionID,
	})
}

// SearchQuestions ищет вопросы по подстроке текста без учета регистра
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	// Нечитаемое тело равносильно телу без searchTerm: и то и другое -
	// отсутствие поискового запроса.
	var req SearchQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req.SearchTerm = ""
	}

	if req.SearchTerm == "" {
		respondWithError(c, fmt.Errorf("%w: empty search term", apperrors.ErrNotFound))
		return
	}

	questions, err := h.questionService.Search(req.SearchTerm)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SearchQuestionsResponse{
		Success:         true,
		Questions:       dto.NewQuestionListResponse(questions),
		TotalQuestions:  len(questions),
		CurrentCategory: nil,
	})
}
