package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	"github.com/yourusername/quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
)

// QuizService предоставляет методы для работы с викторинами
type QuizService struct {
	quizRepo     repository.QuizRepository
	categoryRepo repository.CategoryRepository
}

// NewQuizService создает новый сервис викторин
func NewQuizService(quizRepo repository.QuizRepository, categoryRepo repository.CategoryRepository) *QuizService {
	return &QuizService{quizRepo: quizRepo, categoryRepo: categoryRepo}
}

// List возвращает все викторины
func (s *QuizService) List() ([]entity.Quiz, error) {
	return s.quizRepo.List()
}

// ListByCategory возвращает викторины категории
func (s *QuizService) ListByCategory(category *entity.Category) ([]entity.Quiz, error) {
	return s.quizRepo.ListByCategory(category.ID)
}

// Create создает викторину и привязывает её к категории по имени.
// Возвращает также разрешенную категорию: её каноническое (сохраненное)
// имя уходит в подтверждение ответа, а не то, что прислал клиент.
func (s *QuizService) Create(name, description, categoryName string) (*entity.Quiz, *entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil, apperrors.WithMessage(apperrors.ErrValidation, "Quiz name cannot be empty")
	}

	category, err := s.categoryRepo.GetByName(strings.TrimSpace(categoryName))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, apperrors.WithMessage(apperrors.ErrNotFound, "Category not found")
		}
		return nil, nil, fmt.Errorf("failed to resolve category: %w", err)
	}

	quiz := &entity.Quiz{Name: name, Description: description}
	if err := s.quizRepo.CreateWithCategory(quiz, category.ID); err != nil {
		return nil, nil, fmt.Errorf("failed to create quiz: %w", err)
	}
	return quiz, category, nil
}

// Update обновляет поля викторины. nil-поля не меняются; непустое
// categoryName заменяет привязку к категории.
func (s *QuizService) Update(quiz *entity.Quiz, name, description, categoryName *string) (*entity.Quiz, error) {
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return nil, apperrors.WithMessage(apperrors.ErrValidation, "Quiz name cannot be empty")
		}
		quiz.Name = trimmed
	}
	if description != nil {
		quiz.Description = *description
	}

	var newCategoryID *uint
	if categoryName != nil {
		category, err := s.categoryRepo.GetByName(strings.TrimSpace(*categoryName))
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.WithMessage(apperrors.ErrNotFound, "Category not found")
			}
			return nil, fmt.Errorf("failed to resolve category: %w", err)
		}
		newCategoryID = &category.ID
	}

	if err := s.quizRepo.Update(quiz, newCategoryID); err != nil {
		return nil, fmt.Errorf("failed to update quiz: %w", err)
	}
	return quiz, nil
}

// Delete удаляет викторину каскадно: строки связей и осиротевшие вопросы
// уходят вместе с ней, вопросы других викторин не затрагиваются
func (s *QuizService) Delete(quiz *entity.Quiz) error {
	return s.quizRepo.DeleteCascade(quiz.ID)
}

// EnsureInCategory проверяет, что викторина принадлежит категории
func (s *QuizService) EnsureInCategory(quiz *entity.Quiz, category *entity.Category) error {
	belongs, err := s.quizRepo.BelongsToCategory(quiz.ID, category.ID)
	if err != nil {
		return fmt.Errorf("failed to check quiz category: %w", err)
	}
	if !belongs {
		return apperrors.WithMessage(apperrors.ErrNotFound, "Quiz not found in this category")
	}
	return nil
}
