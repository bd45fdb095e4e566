package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Option представляет вариант ответа на вопрос
type Option struct {
	ID         uint   `gorm:"column:option_id;primaryKey" json:"-"`
	UniqueID   string `gorm:"size:36;uniqueIndex;not null" json:"unique_id"`
	Statement  string `gorm:"column:option_statement;type:text;not null" json:"option_statement"`
	IsCorrect  bool   `gorm:"not null" json:"is_correct"`
	QuestionID uint   `gorm:"not null;index" json:"-"`
}

// TableName определяет имя таблицы для GORM
func (Option) TableName() string {
	return "options"
}

// BeforeCreate генерирует внешний идентификатор при создании записи
func (o *Option) BeforeCreate(tx *gorm.DB) error {
	if o.UniqueID == "" {
		o.UniqueID = uuid.NewString()
	}
	return nil
}
