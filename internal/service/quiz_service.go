package service

import (
	"fmt"
	"math/rand"

	"github.com/lurssed-daniel/Udacity-Project-II-Trivia-API/internal/domain/entity"
	"github.com/lurssed-daniel/Udacity-Project-II-Trivia-API/internal/domain/repository"
	apperrors "github.com/lurssed-daniel/Udacity-Project-II-Trivia-API/internal/pkg/errors"
)

// QuizService выбирает случайный вопрос для раунда викторины
type QuizService struct {
	questionRepo repository.QuestionRepository
}

// NewQuizService создает новый сервис викторины
func NewQuizService(questionRepo repository.QuestionRepository) *QuizService {
	return &QuizService{questionRepo: questionRepo}
}

// NextQuestion возвращает равновероятно выбранный вопрос, не входящий в previousIDs.
// category=nil означает розыгрыш по всем категориям. Когда подходящих вопросов
// не осталось, возвращается (nil, nil) - сигнал конца игры, а не ошибка.
func (s *QuizService) NextQuestion(category *string, previousIDs []uint) (*entity.Question, error) {
	questions, err := s.questionRepo.GetPlayable(category, previousIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: playable questions: %v", apperrors.ErrUnprocessable, err)
	}

	if len(questions) == 0 {
		return nil, nil
	}

	question := questions[rand.Intn(len(questions))]
	return &question, nil
}
