package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lurssed-daniel/Udacity-Project-II-Trivia-API/internal/domain/entity"
	"github.com/lurssed-daniel/Udacity-Project-II-Trivia-API/internal/handler/dto"
	apperrors "github.com/lurssed-daniel/Udacity-Project-II-Trivia-API/internal/pkg/errors"
	"github.com/lurssed-daniel/Udacity-Project-II-Trivia-API/internal/service"
)

// Значение quiz_category.type, означающее розыгрыш по всем категориям
const allCategoriesSentinel = "click"

// QuizHandler обрабатывает запросы, связанные с розыгрышем викторины
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler создает новый обработчик викторин
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// Структуры запросов

// QuizCategoryPayload описывает категорию розыгрыша.
// ID обязателен для конкретной категории и игнорируется для сентинеля.
type QuizCategoryPayload struct {
	Type string              `json:"type" binding:"required"`
	ID   *entity.CategoryRef `json:"id"`
}

// PlayQuizRequest представляет запрос на следующий вопрос викторины.
// Оба ключа обязательны; previous_questions может быть пустым списком.
type PlayQuizRequest struct {
	QuizCategory      *QuizCategoryPayload `json:"quiz_category" binding:"required"`
	PreviousQuestions *[]uint              `json:"previous_questions" binding:"required"`
}

// PlayQuiz возвращает случайный вопрос, не входивший в предыдущие.
// question: null в ответе означает, что вопросы категории исчерпаны.
func (h *QuizHandler) PlayQuiz(c *gin.Context) {
	var req PlayQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, fmt.Errorf("%w: play quiz body: %v", apperrors.ErrUnprocessable, err))
		return
	}

	var category *string
	if req.QuizCategory.Type != allCategoriesSentinel {
		if req.QuizCategory.ID == nil {
			respondWithError(c, fmt.Errorf("%w: quiz category id is required", apperrors.ErrUnprocessable))
			return
		}
		id := req.QuizCategory.ID.String()
		category = &id
	}

	question, err := h.quizService.NextQuestion(category, *req.PreviousQuestions)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuizQuestionResponse{
		Success:  true,
		Question: dto.NewQuestionResponse(question),
	})
}
