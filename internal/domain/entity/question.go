package entity

// Question представляет вопрос викторины
type Question struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Text       string `gorm:"column:question;type:text;not null" json:"question"`
	Answer     string `gorm:"column:answer;type:text;not null" json:"answer"`
	Category   string `gorm:"column:category;size:50;not null;default:''" json:"category"`
	Difficulty int    `gorm:"not null;default:1" json:"difficulty"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}
