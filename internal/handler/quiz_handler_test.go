package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lurssed-daniel/Udacity-Project-II-Trivia-API/internal/domain/entity"
	"github.com/lurssed-daniel/Udacity-Project-II-Trivia-API/internal/service"
)

// newQuizHandler собирает обработчик поверх мок-репозитория
func newQuizHandler(questionRepo *MockQuestionRepository) *QuizHandler {
	return NewQuizHandler(service.NewQuizService(questionRepo))
}

// strPtr helper для указателя на категорию
func strPtr(s string) *string { return &s }

// ============================================================================
// POST /quizzes
// ============================================================================

func TestPlayQuiz_AllCategories(t *testing.T) {
	// Arrange: type=click означает розыгрыш по всем категориям, фильтр не передается
	questionRepo := new(MockQuestionRepository)
	questionRepo.On("GetPlayable", (*string)(nil), []uint{1, 2}).
		Return([]entity.Question{{ID: 3, Text: "q3", Answer: "a3", Category: "1", Difficulty: 2}}, nil)
	h := newQuizHandler(questionRepo)

	body := map[string]interface{}{
		"quiz_category":      map[string]interface{}{"type": "click", "id": 0},
		"previous_questions": []uint{1, 2},
	}

	// Act
	c, w := newTestGinContext("POST", "/quizzes", body)
	h.PlayQuiz(c)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	resp := parseJSONResponse(t, w)
	assert.Equal(t, true, resp["success"])

	question := resp["question"].(map[string]interface{})
	assert.Equal(t, float64(3), question["id"])
	assert.Equal(t, "q3", question["question"])
	questionRepo.AssertExpectations(t)
}

func TestPlayQuiz_SpecificCategory(t *testing.T) {
	// Arrange
	questionRepo := new(MockQuestionRepository)
	questionRepo.On("GetPlayable", strPtr("2"), []uint{}).
		Return([]entity.Question{{ID: 9, Text: "q9", Answer: "a9", Category: "2", Difficulty: 1}}, nil)
	h := newQuizHandler(questionRepo)

	body := map[string]interface{}{
		"quiz_category":      map[string]interface{}{"type": "Art", "id": "2"},
		"previous_questions": []uint{},
	}

	// Act
	c, w := newTestGinContext("POST", "/quizzes", body)
	h.PlayQuiz(c)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	resp := parseJSONResponse(t, w)
	question := resp["question"].(map[string]interface{})
	assert.Equal(t, "2", question["category"])
	questionRepo.AssertExpectations(t)
}

func TestPlayQuiz_NumericCategoryID(t *testing.T) {
	// Arrange: id числом нормализуется в строковую форму
	questionRepo := new(MockQuestionRepository)
	questionRepo.On("GetPlayable", strPtr("4"), []uint{}).
		Return([]entity.Question{{ID: 1, Text: "q1", Answer: "a1", Category: "4", Difficulty: 1}}, nil)
	h := newQuizHandler(questionRepo)

	body := map[string]interface{}{
		"quiz_category":      map[string]interface{}{"type": "History", "id": 4},
		"previous_questions": []uint{},
	}

	// Act
	c, w := newTestGinContext("POST", "/quizzes", body)
	h.PlayQuiz(c)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	questionRepo.AssertExpectations(t)
}

func TestPlayQuiz_ExhaustedReturnsNullQuestion(t *testing.T) {
	// Arrange
	questionRepo := new(MockQuestionRepository)
	questionRepo.On("GetPlayable", (*string)(nil), []uint{1, 2, 3}).
		Return([]entity.Question{}, nil)
	h := newQuizHandler(questionRepo)

	body := map[string]interface{}{
		"quiz_category":      map[string]interface{}{"type": "click"},
		"previous_questions": []uint{1, 2, 3},
	}

	// Act
	c, w := newTestGinContext("POST", "/quizzes", body)
	h.PlayQuiz(c)

	// Assert: question равен null, это успешный ответ
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"question":null`)
	resp := parseJSONResponse(t, w)
	assert.Equal(t, true, resp["success"])

	question, exists := resp["question"]
	assert.True(t, exists)
	assert.Nil(t, question)
}

func TestPlayQuiz_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body interface{}
	}{
		{
			name: "missing quiz_category",
			body: map[string]interface{}{"previous_questions": []uint{}},
		},
		{
			name: "missing previous_questions",
			body: map[string]interface{}{"quiz_category": map[string]interface{}{"type": "click"}},
		},
		{
			name: "null previous_questions",
			body: map[string]interface{}{
				"quiz_category":      map[string]interface{}{"type": "click"},
				"previous_questions": nil,
			},
		},
		{
			name: "empty category type",
			body: map[string]interface{}{
				"quiz_category":      map[string]interface{}{"type": "", "id": "1"},
				"previous_questions": []uint{},
			},
		},
		{
			name: "concrete category without id",
			body: map[string]interface{}{
				"quiz_category":      map[string]interface{}{"type": "Science"},
				"previous_questions": []uint{},
			},
		},
		{
			name: "invalid category id type",
			body: map[string]interface{}{
				"quiz_category":      map[string]interface{}{"type": "Science", "id": []int{1}},
				"previous_questions": []uint{},
			},
		},
		{
			name: "empty body",
			body: map[string]interface{}{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			questionRepo := new(MockQuestionRepository)
			h := newQuizHandler(questionRepo)

			// Act
			c, w := newTestGinContext("POST", "/quizzes", tt.body)
			h.PlayQuiz(c)

			// Assert: вся валидация розыгрыша отвечает 422
			assertErrorBody(t, w, http.StatusUnprocessableEntity, "unprocessable")
			questionRepo.AssertNotCalled(t, "GetPlayable", mock.Anything, mock.Anything)
		})
	}
}

func TestPlayQuiz_MalformedJSON(t *testing.T) {
	// Arrange
	h := newQuizHandler(new(MockQuestionRepository))

	// Act
	c, w := newTestGinContextRaw("POST", "/quizzes", `{"quiz_category":`)
	h.PlayQuiz(c)

	// Assert
	assertErrorBody(t, w, http.StatusUnprocessableEntity, "unprocessable")
}

func TestPlayQuiz_StoreFailure(t *testing.T) {
	// Arrange
	questionRepo := new(MockQuestionRepository)
	questionRepo.On("GetPlayable", (*string)(nil), []uint{}).Return(nil, assert.AnError)
	h := newQuizHandler(questionRepo)

	body := map[string]interface{}{
		"quiz_category":      map[string]interface{}{"type": "click"},
		"previous_questions": []uint{},
	}

	// Act
	c, w := newTestGinContext("POST", "/quizzes", body)
	h.PlayQuiz(c)

	// Assert
	assertErrorBody(t, w, http.StatusUnprocessableEntity, "unprocessable")
}

func TestPlayQuiz_NeverRepeatsPreviousQuestions(t *testing.T) {
	// Arrange: репозиторий уже исключил previous_questions, хэндлер
	// должен передать их без искажений
	previous := []uint{4, 8, 15}
	playable := []entity.Question{
		{ID: 16, Text: "q16", Answer: "a16", Category: "1", Difficulty: 1},
		{ID: 23, Text: "q23", Answer: "a23", Category: "1", Difficulty: 2},
	}
	questionRepo := new(MockQuestionRepository)
	questionRepo.On("GetPlayable", (*string)(nil), previous).Return(playable, nil)
	h := newQuizHandler(questionRepo)

	body := map[string]interface{}{
		"quiz_category":      map[string]interface{}{"type": "click"},
		"previous_questions": previous,
	}

	// Act + Assert: выбор случайный, но всегда за пределами previous
	for i := 0; i < 20; i++ {
		c, w := newTestGinContext("POST", "/quizzes", body)
		h.PlayQuiz(c)

		require.Equal(t, http.StatusOK, w.Code)
		resp := parseJSONResponse(t, w)
		question := resp["question"].(map[string]interface{})
		id := uint(question["id"].(float64))
		assert.NotContains(t, previous, id)
	}
}
