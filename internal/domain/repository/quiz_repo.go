package repository

import (
	"github.com/yourusername/quiz-api/internal/domain/entity"
)

// QuizRepository определяет методы для работы с викторинами
type QuizRepository interface {
	// CreateWithCategory создает викторину вместе со строкой связи
	// quiz_categories в одной транзакции
	CreateWithCategory(quiz *entity.Quiz, categoryID uint) error
	GetByID(id uint) (*entity.Quiz, error)
	GetByUniqueID(uniqueID string) (*entity.Quiz, error)
	// GetByName ищет викторину по имени без учета регистра
	// (маршруты вида /category/{cat}/quiz/{quiz}/...)
	GetByName(name string) (*entity.Quiz, error)
	// GetByQuestionID возвращает викторину, к которой привязан вопрос
	// (первая строка quiz_questions)
	GetByQuestionID(questionID uint) (*entity.Quiz, error)
	List() ([]entity.Quiz, error)
	ListByCategory(categoryID uint) ([]entity.Quiz, error)
	// Update обновляет поля викторины; если newCategoryID != nil, заменяет
	// весь набор строк quiz_categories. Одна транзакция.
	Update(quiz *entity.Quiz, newCategoryID *uint) error
	// DeleteCascade удаляет викторину, её строки связей и осиротевшие
	// вопросы (с вариантами), не задевая вопросы, на которые все еще
	// ссылаются другие викторины. Одна транзакция.
	DeleteCascade(id uint) error
	// BelongsToCategory проверяет наличие строки связи викторина-категория
	BelongsToCategory(quizID, categoryID uint) (bool, error)
}
