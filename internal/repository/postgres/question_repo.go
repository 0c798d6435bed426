package postgres

import (
	"gorm.io/gorm"

	"github.com/lurssed-daniel/Udacity-Project-II-Trivia-API/internal/domain/entity"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// Create создает новый вопрос
func (r *QuestionRepo) Create(question *entity.Question) error {
	if err := r.db.Create(question).Error; err != nil {
		return classifyError(err)
	}
	return nil
}

// CreateBatch создает пакет вопросов в одной транзакции
func (r *QuestionRepo) CreateBatch(questions []entity.Question) error {
	if len(questions) == 0 {
		return nil
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&questions).Error
	})
	return classifyError(err)
}

// GetByID возвращает вопрос по ID
func (r *QuestionRepo) GetByID(id uint) (*entity.Question, error) {
	var question entity.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, classifyError(err)
	}
	return &question, nil
}

// GetAllOrdered возвращает все вопросы по возрастанию id
func (r *QuestionRepo) GetAllOrdered() ([]entity.Question, error) {
	var questions []entity.Question
	if err := r.db.Order("id").Find(&questions).Error; err != nil {
		return nil, classifyError(err)
	}
	return questions, nil
}

// GetByCategory возвращает вопросы, у которых category равна строковой форме id категории
func (r *QuestionRepo) GetByCategory(category string) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Where("category = ?", category).Order("id").Find(&questions).Error
	if err != nil {
		return nil, classifyError(err)
	}
	return questions, nil
}

// Search возвращает вопросы, текст которых содержит подстроку без учета регистра.
// Спецсимволы LIKE в терме не экранируются.
func (r *QuestionRepo) Search(term string) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Where("question ILIKE ?", "%"+term+"%").Order("id").Find(&questions).Error
	if err != nil {
		return nil, classifyError(err)
	}
	return questions, nil
}

// GetPlayable возвращает вопросы, доступные для розыгрыша.
// category=nil означает все категории, excludeIDs - уже заданные вопросы.
func (r *QuestionRepo) GetPlayable(category *string, excludeIDs []uint) ([]entity.Question, error) {
	query := r.db.Model(&entity.Question{})
	if category != nil {
		query = query.Where("category = ?", *category)
	}
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}

	var questions []entity.Question
	if err := query.Order("id").Find(&questions).Error; err != nil {
		return nil, classifyError(err)
	}
	return questions, nil
}

// Delete удаляет вопрос
func (r *QuestionRepo) Delete(id uint) error {
	result := r.db.Delete(&entity.Question{}, id)
	if result.Error != nil {
		return classifyError(result.Error)
	}
	return nil
}
