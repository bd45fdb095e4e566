package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Допустимые уровни сложности вопроса
const (
	ComplexityEasy   = "easy"
	ComplexityMedium = "medium"
	ComplexityHard   = "hard"
)

// IsValidComplexity проверяет, входит ли значение в допустимый набор уровней
func IsValidComplexity(level string) bool {
	switch level {
	case ComplexityEasy, ComplexityMedium, ComplexityHard:
		return true
	}
	return false
}

// Question представляет вопрос. Вопрос владеет своими вариантами ответов
// (каскадное удаление), но сам может быть привязан к нескольким викторинам
// через quiz_questions — удаление одной викторины не должно удалять вопрос,
// пока на него ссылается другая.
type Question struct {
	ID         uint     `gorm:"column:question_id;primaryKey" json:"-"`
	UniqueID   string   `gorm:"size:36;uniqueIndex;not null" json:"unique_id"`
	Statement  string   `gorm:"column:question_statement;type:text;not null" json:"question_statement"`
	Complexity string   `gorm:"column:complex_level;size:10;not null" json:"complex_level"`
	Options    []Option `gorm:"foreignKey:QuestionID" json:"options,omitempty"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// BeforeCreate генерирует внешний идентификатор при создании записи
func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.UniqueID == "" {
		q.UniqueID = uuid.NewString()
	}
	return nil
}

// HasCorrectOption проверяет, отмечен ли хотя бы один вариант как правильный
func (q *Question) HasCorrectOption() bool {
	for _, opt := range q.Options {
		if opt.IsCorrect {
			return true
		}
	}
	return false
}
