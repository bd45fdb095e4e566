package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	"github.com/yourusername/quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
)

// CategoryService предоставляет методы для работы с категориями
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService создает новый сервис категорий
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// List возвращает все категории
func (s *CategoryService) List() ([]entity.Category, error) {
	return s.categoryRepo.List()
}

// Create создает новую категорию. Имя нормализуется (обрезка пробелов),
// уникальность проверяется без учета регистра.
func (s *CategoryService) Create(name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "Category name cannot be empty")
	}

	// Ранняя проверка дубликата; гонку закрывает уникальный индекс в БД
	if _, err := s.categoryRepo.GetByName(name); err == nil {
		return nil, apperrors.WithMessage(apperrors.ErrConflict, "Category already exists")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}

	category := &entity.Category{Name: name}
	if err := s.categoryRepo.Create(category); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.WithMessage(apperrors.ErrConflict, "Category already exists")
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

// Rename переименовывает категорию
func (s *CategoryService) Rename(category *entity.Category, newName string) (*entity.Category, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "Category name cannot be empty")
	}

	// Имя может отличаться только регистром — это не конфликт
	if existing, err := s.categoryRepo.GetByName(newName); err == nil {
		if existing.ID != category.ID {
			return nil, apperrors.WithMessage(apperrors.ErrConflict, "Category name already exists")
		}
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}

	category.Name = newName
	if err := s.categoryRepo.Update(category); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.WithMessage(apperrors.ErrConflict, "Category name already exists")
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

// Delete удаляет категорию. Категория, на которую ссылается хотя бы одна
// викторина, не удаляется.
func (s *CategoryService) Delete(category *entity.Category) error {
	inUse, err := s.categoryRepo.InUse(category.ID)
	if err != nil {
		return fmt.Errorf("failed to check category usage: %w", err)
	}
	if inUse {
		return apperrors.WithMessage(apperrors.ErrInUse, "Cannot delete category in use by quizzes")
	}
	return s.categoryRepo.Delete(category.ID)
}
