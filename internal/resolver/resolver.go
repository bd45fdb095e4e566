// Package resolver переводит сырые сегменты пути в сущности хранилища.
// Это то, что во Flask-версиях подобных API делают URL-конвертеры, только
// явным вызовом в начале обработчика, без исключений сквозь слои роутинга.
// Разрешение — чистое чтение: ничего не создает и не изменяет.
package resolver

import (
	"errors"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	"github.com/yourusername/quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
)

// Resolver разрешает сегменты URL в сущности или типизированные отказы.
// Неверный формат идентификатора (ErrMalformedID) и промах поиска
// (ErrNotFound) различимы через errors.Is, хотя наружу оба уходят как 404.
type Resolver struct {
	categories repository.CategoryRepository
	quizzes    repository.QuizRepository
	questions  repository.QuestionRepository
}

// New создает резолвер поверх репозиториев
func New(
	categories repository.CategoryRepository,
	quizzes repository.QuizRepository,
	questions repository.QuestionRepository,
) *Resolver {
	return &Resolver{
		categories: categories,
		quizzes:    quizzes,
		questions:  questions,
	}
}

// Category разрешает percent-encoded имя категории без учета регистра.
// Неоднозначность невозможна: уникальность имен (case-insensitive)
// гарантируется при создании и обновлении.
func (r *Resolver) Category(segment string) (*entity.Category, error) {
	name, err := url.PathUnescape(segment)
	if err != nil {
		name = segment
	}
	category, err := r.categories.GetByName(name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.WithMessagef(apperrors.ErrNotFound, "Category '%s' not found", name)
		}
		return nil, err
	}
	return category, nil
}

// Quiz разрешает внешний идентификатор викторины.
// Сначала формат (36-символьный UUID), потом поиск — это разные отказы.
func (r *Resolver) Quiz(segment string) (*entity.Quiz, error) {
	if _, err := uuid.Parse(segment); err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrMalformedID, "Invalid quiz ID format")
	}
	quiz, err := r.quizzes.GetByUniqueID(segment)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.WithMessagef(apperrors.ErrNotFound, "Quiz '%s' not found", segment)
		}
		return nil, err
	}
	return quiz, nil
}

// CategoryInScope разрешает имя категории в составных маршрутах
// /category/{cat}/quiz/{quiz}/... — отказ краткий, без эха имени
func (r *Resolver) CategoryInScope(segment string) (*entity.Category, error) {
	name, err := url.PathUnescape(segment)
	if err != nil {
		name = segment
	}
	category, err := r.categories.GetByName(name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.WithMessage(apperrors.ErrNotFound, "Category not found")
		}
		return nil, err
	}
	return category, nil
}

// QuizRef разрешает ссылку на викторину из тела запроса (quiz_unique_id).
// Формат не проверяется: неразборчивый идентификатор и промах поиска
// для клиента неразличимы
func (r *Resolver) QuizRef(uniqueID string) (*entity.Quiz, error) {
	quiz, err := r.quizzes.GetByUniqueID(uniqueID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.WithMessage(apperrors.ErrNotFound, "Quiz not found")
		}
		return nil, err
	}
	return quiz, nil
}

// QuizByName разрешает имя викторины без учета регистра
// (маршруты /category/{cat}/quiz/{quiz}/...)
func (r *Resolver) QuizByName(segment string) (*entity.Quiz, error) {
	name, err := url.PathUnescape(segment)
	if err != nil {
		name = segment
	}
	quiz, err := r.quizzes.GetByName(name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.WithMessage(apperrors.ErrNotFound, "Quiz not found")
		}
		return nil, err
	}
	return quiz, nil
}

// Question разрешает внешний идентификатор вопроса
func (r *Resolver) Question(segment string) (*entity.Question, error) {
	if _, err := uuid.Parse(segment); err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrMalformedID, "Invalid question ID format")
	}
	question, err := r.questions.GetByUniqueID(segment)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.WithMessagef(apperrors.ErrNotFound, "Question '%s' not found", segment)
		}
		return nil, err
	}
	return question, nil
}

// Complexity нормализует и проверяет уровень сложности
func (r *Resolver) Complexity(segment string) (string, error) {
	level := strings.ToLower(segment)
	if !entity.IsValidComplexity(level) {
		return "", apperrors.WithMessage(apperrors.ErrValidation, "Invalid complexity level")
	}
	return level, nil
}
