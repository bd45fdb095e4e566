package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
)

// CategoryRepo реализует repository.CategoryRepository
type CategoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepo создает новый репозиторий категорий
func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// Create создает новую категорию.
// Гонку двух одновременных созданий ловит функциональный уникальный индекс
// по lower(name) — нарушение транслируется в ErrConflict.
func (r *CategoryRepo) Create(category *entity.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrConflict
		}
		return err
	}
	return nil
}

// GetByName возвращает категорию по имени без учета регистра
func (r *CategoryRepo) GetByName(name string) (*entity.Category, error) {
	var category entity.Category
	err := r.db.Where("LOWER(name) = LOWER(?)", name).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// GetByID возвращает категорию по внутреннему ID
func (r *CategoryRepo) GetByID(id uint) (*entity.Category, error) {
	var category entity.Category
	err := r.db.First(&category, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// GetByQuizID возвращает категорию, к которой привязана викторина
func (r *CategoryRepo) GetByQuizID(quizID uint) (*entity.Category, error) {
	var category entity.Category
	err := r.db.
		Joins("JOIN quiz_categories qc ON qc.category_id = categories.category_id").
		Where("qc.quiz_id = ?", quizID).
		First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// List возвращает все категории в порядке создания
func (r *CategoryRepo) List() ([]entity.Category, error) {
	var categories []entity.Category
	if err := r.db.Order("category_id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Update сохраняет измененную категорию
func (r *CategoryRepo) Update(category *entity.Category) error {
	if err := r.db.Save(category).Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrConflict
		}
		return err
	}
	return nil
}

// Delete удаляет категорию по ID
func (r *CategoryRepo) Delete(id uint) error {
	result := r.db.Delete(&entity.Category{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// InUse сообщает, ссылается ли на категорию хотя бы одна викторина
func (r *CategoryRepo) InUse(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&entity.QuizCategory{}).Where("category_id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
