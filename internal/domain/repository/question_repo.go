package repository

import (
	"github.com/yourusername/quiz-api/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами.
// Варианты ответов (options) всегда приходят предзагруженными.
type QuestionRepository interface {
	// CreateForQuiz создает вопрос, его варианты и строку связи
	// quiz_questions в одной транзакции
	CreateForQuiz(question *entity.Question, quizID uint) error
	GetByID(id uint) (*entity.Question, error)
	GetByUniqueID(uniqueID string) (*entity.Question, error)
	List() ([]entity.Question, error)
	ListByQuiz(quizID uint) ([]entity.Question, error)
	// ListByCategory возвращает вопросы всех викторин категории
	ListByCategory(categoryID uint) ([]entity.Question, error)
	// ListByQuizFiltered возвращает до limit случайных вопросов викторины
	// заданной сложности
	ListByQuizFiltered(quizID uint, complexity string, limit int) ([]entity.Question, error)
	// Update обновляет поля вопроса; newOptions != nil заменяет весь набор
	// вариантов, newQuizID != nil перепривязывает вопрос к другой викторине.
	// Одна транзакция.
	Update(question *entity.Question, newOptions []entity.Option, replaceOptions bool, newQuizID *uint) error
	// DeleteCascade удаляет вопрос вместе с вариантами и строками связей
	DeleteCascade(id uint) error
}
