package repository

import (
	"github.com/yourusername/quiz-api/internal/domain/entity"
)

// CategoryRepository определяет методы для работы с категориями
type CategoryRepository interface {
	Create(category *entity.Category) error
	// GetByName ищет категорию по имени без учета регистра
	GetByName(name string) (*entity.Category, error)
	GetByID(id uint) (*entity.Category, error)
	// GetByQuizID возвращает категорию, к которой привязана викторина
	// (первая строка quiz_categories)
	GetByQuizID(quizID uint) (*entity.Category, error)
	List() ([]entity.Category, error)
	Update(category *entity.Category) error
	Delete(id uint) error
	// InUse сообщает, ссылается ли на категорию хотя бы одна викторина
	InUse(id uint) (bool, error)
}
