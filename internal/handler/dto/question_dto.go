package dto

import (
	"github.com/lurssed-daniel/Udacity-Project-II-Trivia-API/internal/domain/entity"
)

// QuestionResponse представляет вопрос в формате для ответа клиенту
type QuestionResponse struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   string `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// CategoryListResponse - ответ на запрос списка категорий
type CategoryListResponse struct {
	Success         bool            `json:"success"`
	Categories      map[uint]string `json:"categories"`
	TotalCategories int             `json:"total_categories"`
}

// QuestionListResponse - ответ на запрос страницы вопросов.
// CurrentCategory здесь всегда null: листинг не привязан к категории.
type QuestionListResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	Categories      map[uint]string    `json:"categories"`
	CurrentCategory *uint              `json:"current_category"`
}

// SearchQuestionsResponse - ответ на поиск по тексту вопроса
type SearchQuestionsResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	CurrentCategory *uint              `json:"current_category"`
}

// CategoryQuestionsResponse - ответ на запрос вопросов одной категории
type CategoryQuestionsResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	CurrentCategory uint               `json:"current_category"`
}

// DeleteQuestionResponse - подтверждение удаления вопроса
type DeleteQuestionResponse struct {
	Success bool `json:"success"`
	Deleted uint `json:"deleted"`
}

// CreateQuestionResponse - подтверждение создания вопроса
type CreateQuestionResponse struct {
	Success bool `json:"success"`
	Created uint `json:"created"`
}

// QuizQuestionResponse - ответ на розыгрыш вопроса.
// Question == nil сериализуется как null и означает конец игры.
type QuizQuestionResponse struct {
	Success  bool              `json:"success"`
	Question *QuestionResponse `json:"question"`
}

// NewQuestionResponse создает DTO для вопроса
func NewQuestionResponse(q *entity.Question) *QuestionResponse {
	if q == nil {
		return nil
	}
	return &QuestionResponse{
		ID:         q.ID,
		Question:   q.Text,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

// NewQuestionListResponse преобразует слайс вопросов в слайс DTO.
// Всегда возвращает не-nil слайс, чтобы пустой список сериализовался как [].
func NewQuestionListResponse(questions []entity.Question) []QuestionResponse {
	list := make([]QuestionResponse, 0, len(questions))
	for i := range questions {
		list = append(list, *NewQuestionResponse(&questions[i]))
	}
	return list
}
