package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// CreateForQuiz создает вопрос, его варианты и связь с викториной
// в одной транзакции
func (r *QuestionRepo) CreateForQuiz(question *entity.Question, quizID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(question).Error; err != nil {
			return err
		}
		link := entity.QuizQuestion{QuizID: quizID, QuestionID: question.ID}
		return tx.Create(&link).Error
	})
}

// GetByID возвращает вопрос с вариантами по внутреннему ID
func (r *QuestionRepo) GetByID(id uint) (*entity.Question, error) {
	var question entity.Question
	err := r.db.Preload("Options").First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// GetByUniqueID возвращает вопрос с вариантами по внешнему идентификатору
func (r *QuestionRepo) GetByUniqueID(uniqueID string) (*entity.Question, error) {
	var question entity.Question
	err := r.db.Preload("Options").Where("unique_id = ?", uniqueID).First(&question).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// List возвращает все вопросы с вариантами
func (r *QuestionRepo) List() ([]entity.Question, error) {
	var questions []entity.Question
	if err := r.db.Preload("Options").Order("question_id").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// ListByQuiz возвращает вопросы викторины
func (r *QuestionRepo) ListByQuiz(quizID uint) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Preload("Options").
		Joins("JOIN quiz_questions qq ON qq.question_id = questions.question_id").
		Where("qq.quiz_id = ?", quizID).
		Order("questions.question_id").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// ListByCategory возвращает вопросы всех викторин категории.
// Вопрос, привязанный к нескольким викторинам категории, возвращается один раз.
func (r *QuestionRepo) ListByCategory(categoryID uint) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Preload("Options").
		Distinct("questions.*").
		Joins("JOIN quiz_questions qq ON qq.question_id = questions.question_id").
		Joins("JOIN quiz_categories qc ON qc.quiz_id = qq.quiz_id").
		Where("qc.category_id = ?", categoryID).
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// ListByQuizFiltered возвращает до limit случайных вопросов викторины
// заданной сложности
func (r *QuestionRepo) ListByQuizFiltered(quizID uint, complexity string, limit int) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Preload("Options").
		Joins("JOIN quiz_questions qq ON qq.question_id = questions.question_id").
		Where("qq.quiz_id = ? AND questions.complex_level = ?", quizID, complexity).
		Order("RANDOM()").
		Limit(limit).
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// Update обновляет поля вопроса и, по запросу, заменяет набор вариантов
// и/или перепривязывает вопрос к другой викторине. Одна транзакция —
// при любой ошибке откатывается всё.
func (r *QuestionRepo) Update(question *entity.Question, newOptions []entity.Option, replaceOptions bool, newQuizID *uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Options").Save(question).Error; err != nil {
			return err
		}

		if replaceOptions {
			if err := tx.Where("question_id = ?", question.ID).Delete(&entity.Option{}).Error; err != nil {
				return err
			}
			for i := range newOptions {
				newOptions[i].ID = 0
				newOptions[i].UniqueID = ""
				newOptions[i].QuestionID = question.ID
			}
			if len(newOptions) > 0 {
				if err := tx.Create(&newOptions).Error; err != nil {
					return err
				}
			}
			question.Options = newOptions
		}

		if newQuizID != nil {
			var current entity.QuizQuestion
			err := tx.Where("question_id = ?", question.ID).First(&current).Error
			switch {
			case err == nil && current.QuizID == *newQuizID:
				// Уже привязан к этой викторине
				return nil
			case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
				return err
			}
			if err := tx.Where("question_id = ?", question.ID).Delete(&entity.QuizQuestion{}).Error; err != nil {
				return err
			}
			link := entity.QuizQuestion{QuizID: *newQuizID, QuestionID: question.ID}
			return tx.Create(&link).Error
		}
		return nil
	})
}

// DeleteCascade удаляет вопрос вместе с вариантами и строками связей
func (r *QuestionRepo) DeleteCascade(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&entity.QuizQuestion{}).Error; err != nil {
			return err
		}
		if err := tx.Where("question_id = ?", id).Delete(&entity.Option{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&entity.Question{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrNotFound
		}
		return nil
	})
}
