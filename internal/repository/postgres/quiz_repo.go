package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
)

// QuizRepo реализует repository.QuizRepository
type QuizRepo struct {
	db *gorm.DB
}

// NewQuizRepo создает новый репозиторий викторин
func NewQuizRepo(db *gorm.DB) *QuizRepo {
	return &QuizRepo{db: db}
}

// CreateWithCategory создает викторину и строку связи с категорией
// в одной транзакции
func (r *QuizRepo) CreateWithCategory(quiz *entity.Quiz, categoryID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(quiz).Error; err != nil {
			return err
		}
		link := entity.QuizCategory{QuizID: quiz.ID, CategoryID: categoryID}
		return tx.Create(&link).Error
	})
}

// GetByID возвращает викторину по внутреннему ID
func (r *QuizRepo) GetByID(id uint) (*entity.Quiz, error) {
	var quiz entity.Quiz
	err := r.db.First(&quiz, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &quiz, nil
}

// GetByUniqueID возвращает викторину по внешнему идентификатору
func (r *QuizRepo) GetByUniqueID(uniqueID string) (*entity.Quiz, error) {
	var quiz entity.Quiz
	err := r.db.Where("unique_id = ?", uniqueID).First(&quiz).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &quiz, nil
}

// GetByName возвращает викторину по имени без учета регистра
func (r *QuizRepo) GetByName(name string) (*entity.Quiz, error) {
	var quiz entity.Quiz
	err := r.db.Where("LOWER(name) = LOWER(?)", name).First(&quiz).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &quiz, nil
}

// GetByQuestionID возвращает викторину, к которой привязан вопрос
func (r *QuizRepo) GetByQuestionID(questionID uint) (*entity.Quiz, error) {
	var quiz entity.Quiz
	err := r.db.
		Joins("JOIN quiz_questions qq ON qq.quiz_id = quizzes.quiz_id").
		Where("qq.question_id = ?", questionID).
		First(&quiz).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &quiz, nil
}

// List возвращает все викторины в порядке создания
func (r *QuizRepo) List() ([]entity.Quiz, error) {
	var quizzes []entity.Quiz
	if err := r.db.Order("quiz_id").Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

// ListByCategory возвращает викторины, привязанные к категории
func (r *QuizRepo) ListByCategory(categoryID uint) ([]entity.Quiz, error) {
	var quizzes []entity.Quiz
	err := r.db.
		Joins("JOIN quiz_categories qc ON qc.quiz_id = quizzes.quiz_id").
		Where("qc.category_id = ?", categoryID).
		Order("quizzes.quiz_id").
		Find(&quizzes).Error
	if err != nil {
		return nil, err
	}
	return quizzes, nil
}

// Update сохраняет поля викторины; при newCategoryID != nil заменяет
// весь набор строк quiz_categories на одну новую строку.
// Все внутри одной транзакции — частичное обновление невозможно.
func (r *QuizRepo) Update(quiz *entity.Quiz, newCategoryID *uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(quiz).Error; err != nil {
			return err
		}
		if newCategoryID == nil {
			return nil
		}
		if err := tx.Where("quiz_id = ?", quiz.ID).Delete(&entity.QuizCategory{}).Error; err != nil {
			return err
		}
		link := entity.QuizCategory{QuizID: quiz.ID, CategoryID: *newCategoryID}
		return tx.Create(&link).Error
	})
}

// DeleteCascade удаляет викторину вместе со строками связей и осиротевшими
// вопросами. Вопрос удаляется (вместе с вариантами) только если после снятия
// связей этой викторины на него не ссылается ни одна другая.
func (r *QuizRepo) DeleteCascade(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quiz_id = ?", id).Delete(&entity.QuizCategory{}).Error; err != nil {
			return err
		}

		var links []entity.QuizQuestion
		if err := tx.Where("quiz_id = ?", id).Find(&links).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id = ?", id).Delete(&entity.QuizQuestion{}).Error; err != nil {
			return err
		}

		orphans, err := orphanedQuestionIDs(links, func(questionID uint) (int64, error) {
			var remaining int64
			err := tx.Model(&entity.QuizQuestion{}).
				Where("question_id = ?", questionID).
				Count(&remaining).Error
			return remaining, err
		})
		if err != nil {
			return err
		}

		for _, questionID := range orphans {
			if err := tx.Where("question_id = ?", questionID).Delete(&entity.Option{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&entity.Question{}, questionID).Error; err != nil {
				return err
			}
		}

		result := tx.Delete(&entity.Quiz{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrNotFound
		}
		return nil
	})
}

// orphanedQuestionIDs отбирает вопросы, на которые после снятия связей
// удаляемой викторины не ссылается ни одна другая. remaining сообщает число
// оставшихся строк quiz_questions для вопроса (связи удаляемой викторины
// к этому моменту уже сняты).
func orphanedQuestionIDs(links []entity.QuizQuestion, remaining func(questionID uint) (int64, error)) ([]uint, error) {
	orphans := make([]uint, 0, len(links))
	for _, link := range links {
		count, err := remaining(link.QuestionID)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			// Вопрос разделен с другой викториной — не трогаем
			continue
		}
		orphans = append(orphans, link.QuestionID)
	}
	return orphans, nil
}

// BelongsToCategory проверяет наличие строки связи викторина-категория
func (r *QuizRepo) BelongsToCategory(quizID, categoryID uint) (bool, error) {
	var count int64
	err := r.db.Model(&entity.QuizCategory{}).
		Where("quiz_id = ? AND category_id = ?", quizID, categoryID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
