package repository

import (
	"github.com/lurssed-daniel/Udacity-Project-II-Trivia-API/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами
type QuestionRepository interface {
	Create(question *entity.Question) error
	CreateBatch(questions []entity.Question) error
	GetByID(id uint) (*entity.Question, error)
	// GetAllOrdered возвращает все вопросы, упорядоченные по id по возрастанию
	GetAllOrdered() ([]entity.Question, error)
	// GetByCategory возвращает вопросы, у которых category равна строковой форме id категории
	GetByCategory(category string) ([]entity.Question, error)
	// Search возвращает вопросы, текст которых содержит подстроку без учета регистра
	Search(term string) ([]entity.Question, error)
	// GetPlayable возвращает вопросы для розыгрыша: category=nil означает все категории,
	// excludeIDs - уже заданные вопросы
	GetPlayable(category *string, excludeIDs []uint) ([]entity.Question, error)
	Delete(id uint) error
}
