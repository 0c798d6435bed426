package service

import (
	"errors"
	"fmt"

	"github.com/lurssed-daniel/Udacity-Project-II-Trivia-API/internal/domain/entity"
	"github.com/lurssed-daniel/Udacity-Project-II-Trivia-API/internal/domain/repository"
	apperrors "github.com/lurssed-daniel/Udacity-Project-II-Trivia-API/internal/pkg/errors"
)

// QuestionsPerPage определяет фиксированный размер страницы списка вопросов
const QuestionsPerPage = 10

// QuestionService предоставляет методы для работы с вопросами
type QuestionService struct {
	questionRepo repository.QuestionRepository
}

// NewQuestionService создает новый сервис вопросов
func NewQuestionService(questionRepo repository.QuestionRepository) *QuestionService {
	return &QuestionService{questionRepo: questionRepo}
}

// paginateQuestions вырезает страницу из упорядоченного списка вопросов.
// Страницы нумеруются с 1; страница вне диапазона (включая 0 и отрицательные)
// дает пустой срез.
func paginateQuestions(questions []entity.Question, page int) []entity.Question {
	start := (page - 1) * QuestionsPerPage
	if start < 0 || start >= len(questions) {
		return nil
	}

	end := start + QuestionsPerPage
	if end > len(questions) {
		end = len(questions)
	}
	return questions[start:end]
}

// ListPage возвращает страницу вопросов и общее количество до пагинации.
// Пустая страница транслируется в ErrNotFound.
func (s *QuestionService) ListPage(page int) ([]entity.Question, int, error) {
	questions, err := s.questionRepo.GetAllOrdered()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load questions: %w", err)
	}

	pageQuestions := paginateQuestions(questions, page)
	if len(pageQuestions) == 0 {
		return nil, 0, fmt.Errorf("%w: questions page %d", apperrors.ErrNotFound, page)
	}

	return pageQuestions, len(questions), nil
}

// Search возвращает все вопросы, содержащие подстроку, без пагинации
func (s *QuestionService) Search(term string) ([]entity.Question, error) {
	questions, err := s.questionRepo.Search(term)
	if err != nil {
		return nil, fmt.Errorf("question search failed: %w", err)
	}
	return questions, nil
}

// CreateQuestion сохраняет новый вопрос. Существование категории не проверяется:
// значение сохраняется так, как прислал клиент.
func (s *QuestionService) CreateQuestion(question *entity.Question) error {
	if err := s.questionRepo.Create(question); err != nil {
		if errors.Is(err, apperrors.ErrUnprocessable) {
			return err
		}
		return fmt.Errorf("%w: create question: %v", apperrors.ErrUnprocessable, err)
	}
	return nil
}

// DeleteQuestion удаляет вопрос в два этапа: явная проверка существования
// дает ErrNotFound, любой другой сбой поиска или удаления - ErrUnprocessable.
func (s *QuestionService) DeleteQuestion(id uint) error {
	if _, err := s.questionRepo.GetByID(id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: question #%d", apperrors.ErrNotFound, id)
		}
		return fmt.Errorf("%w: delete question #%d: %v", apperrors.ErrUnprocessable, id, err)
	}

	if err := s.questionRepo.Delete(id); err != nil {
		return fmt.Errorf("%w: delete question #%d: %v", apperrors.ErrUnprocessable, id, err)
	}
	return nil
}
