package hypermedia

import (
	"github.com/yourusername/quiz-api/internal/domain/entity"
	"github.com/yourusername/quiz-api/internal/domain/repository"
)

// repoRelationSource реализует RelationSource поверх репозиториев
type repoRelationSource struct {
	categories repository.CategoryRepository
	quizzes    repository.QuizRepository
}

// NewRepoRelationSource создает источник связей поверх репозиториев
func NewRepoRelationSource(categories repository.CategoryRepository, quizzes repository.QuizRepository) RelationSource {
	return &repoRelationSource{categories: categories, quizzes: quizzes}
}

func (s *repoRelationSource) CategoryOfQuiz(quizID uint) (*entity.Category, error) {
	return s.categories.GetByQuizID(quizID)
}

func (s *repoRelationSource) QuizOfQuestion(questionID uint) (*entity.Quiz, error) {
	return s.quizzes.GetByQuestionID(questionID)
}
