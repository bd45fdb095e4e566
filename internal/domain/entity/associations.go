package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuizCategory — строка связи викторина-категория. Схема many-to-many,
// но API всегда держит ровно одну категорию на викторину (обновление
// категории заменяет весь набор строк).
type QuizCategory struct {
	QuizID     uint   `gorm:"primaryKey" json:"-"`
	CategoryID uint   `gorm:"primaryKey" json:"-"`
	UniqueID   string `gorm:"size:36;uniqueIndex;not null" json:"unique_id"`
}

// TableName определяет имя таблицы для GORM
func (QuizCategory) TableName() string {
	return "quiz_categories"
}

// BeforeCreate генерирует внешний идентификатор при создании записи
func (qc *QuizCategory) BeforeCreate(tx *gorm.DB) error {
	if qc.UniqueID == "" {
		qc.UniqueID = uuid.NewString()
	}
	return nil
}

// QuizQuestion — строка связи викторина-вопрос. Викторина владеет этими
// строками (удаляются вместе с ней), вопрос через них разделяется между
// несколькими викторинами.
type QuizQuestion struct {
	QuizID     uint   `gorm:"primaryKey" json:"-"`
	QuestionID uint   `gorm:"primaryKey" json:"-"`
	UniqueID   string `gorm:"size:36;uniqueIndex;not null" json:"unique_id"`
}

// TableName определяет имя таблицы для GORM
func (QuizQuestion) TableName() string {
	return "quiz_questions"
}

// BeforeCreate генерирует внешний идентификатор при создании записи
func (qq *QuizQuestion) BeforeCreate(tx *gorm.DB) error {
	if qq.UniqueID == "" {
		qq.UniqueID = uuid.NewString()
	}
	return nil
}
