package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Quiz представляет викторину.
// Числовой ID — внутренний суррогатный ключ, наружу (URL, JSON) выдается
// только UniqueID — непрозрачный UUID, сгенерированный при создании.
type Quiz struct {
	ID          uint   `gorm:"column:quiz_id;primaryKey" json:"-"`
	UniqueID    string `gorm:"size:36;uniqueIndex;not null" json:"unique_id"`
	Name        string `gorm:"size:80;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

// TableName определяет имя таблицы для GORM
func (Quiz) TableName() string {
	return "quizzes"
}

// BeforeCreate генерирует внешний идентификатор при создании записи.
// Идентификаторы никогда не переиспользуются.
func (q *Quiz) BeforeCreate(tx *gorm.DB) error {
	if q.UniqueID == "" {
		q.UniqueID = uuid.NewString()
	}
	return nil
}
