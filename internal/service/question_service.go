package service

import (
	"fmt"
	"strings"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	"github.com/yourusername/quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
)

// Значения по умолчанию для фильтрованной выборки вопросов
const (
	DefaultQuestionCount      = 5
	DefaultQuestionComplexity = entity.ComplexityMedium
)

// OptionInput — входные данные одного варианта ответа
type OptionInput struct {
	Statement string
	IsCorrect bool
}

// QuestionService предоставляет методы для работы с вопросами
type QuestionService struct {
	questionRepo repository.QuestionRepository
}

// NewQuestionService создает новый сервис вопросов
func NewQuestionService(questionRepo repository.QuestionRepository) *QuestionService {
	return &QuestionService{questionRepo: questionRepo}
}

// List возвращает все вопросы с вариантами ответов
func (s *QuestionService) List() ([]entity.Question, error) {
	return s.questionRepo.List()
}

// ListByQuiz возвращает вопросы викторины
func (s *QuestionService) ListByQuiz(quiz *entity.Quiz) ([]entity.Question, error) {
	return s.questionRepo.ListByQuiz(quiz.ID)
}

// ListByCategory возвращает вопросы всех викторин категории
func (s *QuestionService) ListByCategory(category *entity.Category) ([]entity.Question, error) {
	return s.questionRepo.ListByCategory(category.ID)
}

// ListFiltered возвращает до count случайных вопросов викторины заданной
// сложности. Пустая сложность и count <= 0 заменяются значениями по умолчанию.
func (s *QuestionService) ListFiltered(quiz *entity.Quiz, complexity string, count int) (string, []entity.Question, error) {
	complexity = strings.ToLower(strings.TrimSpace(complexity))
	if complexity == "" {
		complexity = DefaultQuestionComplexity
	}
	if !entity.IsValidComplexity(complexity) {
		return "", nil, apperrors.WithMessage(apperrors.ErrValidation, "Invalid complexity level")
	}
	if count <= 0 {
		count = DefaultQuestionCount
	}

	questions, err := s.questionRepo.ListByQuizFiltered(quiz.ID, complexity, count)
	if err != nil {
		return "", nil, fmt.Errorf("failed to list filtered questions: %w", err)
	}
	return complexity, questions, nil
}

// Create создает вопрос с вариантами ответов и привязывает его к викторине
func (s *QuestionService) Create(statement, complexity string, options []OptionInput, quiz *entity.Quiz) (*entity.Question, error) {
	statement = strings.TrimSpace(statement)
	if statement == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "Question statement cannot be empty")
	}

	complexity = strings.ToLower(strings.TrimSpace(complexity))
	if !entity.IsValidComplexity(complexity) {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "Invalid complexity level")
	}

	entityOptions, err := buildOptions(options)
	if err != nil {
		return nil, err
	}

	question := &entity.Question{
		Statement:  statement,
		Complexity: complexity,
		Options:    entityOptions,
	}
	if err := s.questionRepo.CreateForQuiz(question, quiz.ID); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}
	return question, nil
}

// Update обновляет поля вопроса. nil-поля не меняются; options != nil
// заменяет весь набор вариантов; newQuiz != nil перепривязывает вопрос.
func (s *QuestionService) Update(question *entity.Question, statement, complexity *string, options []OptionInput, newQuiz *entity.Quiz) (*entity.Question, error) {
	if statement != nil {
		trimmed := strings.TrimSpace(*statement)
		if trimmed == "" {
			return nil, apperrors.WithMessage(apperrors.ErrValidation, "Question statement cannot be empty")
		}
		question.Statement = trimmed
	}
	if complexity != nil {
		lowered := strings.ToLower(strings.TrimSpace(*complexity))
		if !entity.IsValidComplexity(lowered) {
			return nil, apperrors.WithMessage(apperrors.ErrValidation, "Invalid complexity level")
		}
		question.Complexity = lowered
	}

	var entityOptions []entity.Option
	replaceOptions := options != nil
	if replaceOptions {
		var err error
		entityOptions, err = buildOptions(options)
		if err != nil {
			return nil, err
		}
	}

	var newQuizID *uint
	if newQuiz != nil {
		newQuizID = &newQuiz.ID
	}

	if err := s.questionRepo.Update(question, entityOptions, replaceOptions, newQuizID); err != nil {
		return nil, fmt.Errorf("failed to update question: %w", err)
	}
	return question, nil
}

// Delete удаляет вопрос вместе с вариантами и строками связей
func (s *QuestionService) Delete(question *entity.Question) error {
	return s.questionRepo.DeleteCascade(question.ID)
}

// buildOptions валидирует входные варианты: набор непуст и хотя бы один
// вариант отмечен правильным
func buildOptions(options []OptionInput) ([]entity.Option, error) {
	if len(options) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "At least one option must be provided")
	}

	hasCorrect := false
	entityOptions := make([]entity.Option, 0, len(options))
	for _, opt := range options {
		statement := strings.TrimSpace(opt.Statement)
		if statement == "" {
			return nil, apperrors.WithMessage(apperrors.ErrValidation, "Option statement cannot be empty")
		}
		if opt.IsCorrect {
			hasCorrect = true
		}
		entityOptions = append(entityOptions, entity.Option{
			Statement: statement,
			IsCorrect: opt.IsCorrect,
		})
	}
	if !hasCorrect {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "At least one option must be marked as correct")
	}
	return entityOptions, nil
}
