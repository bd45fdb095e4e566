package hypermedia

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
)

// stubRelationSource отдает фиксированные связи без похода в БД
type stubRelationSource struct {
	categoryOfQuiz map[uint]*entity.Category
	quizOfQuestion map[uint]*entity.Quiz
}

func (s *stubRelationSource) CategoryOfQuiz(quizID uint) (*entity.Category, error) {
	if c, ok := s.categoryOfQuiz[quizID]; ok {
		return c, nil
	}
	return nil, apperrors.ErrNotFound
}

func (s *stubRelationSource) QuizOfQuestion(questionID uint) (*entity.Quiz, error) {
	if q, ok := s.quizOfQuestion[questionID]; ok {
		return q, nil
	}
	return nil, apperrors.ErrNotFound
}

const (
	testBase     = "http://localhost:8080"
	testQuizUUID = "2f4cf160-92b8-4b73-b0f0-6a9318df5f1c"
)

func newTestAssembler(rels RelationSource) *Assembler {
	if rels == nil {
		rels = &stubRelationSource{}
	}
	return NewAssembler(NewURLBuilder(testBase), rels)
}

func TestAssembler_EntryPoint(t *testing.T) {
	a := newTestAssembler(nil)

	entry := a.EntryPoint()

	assert.Equal(t, testBase+"/", entry.Links["self"].Href)
	assert.Equal(t, testBase+"/login", entry.Links["login"].Href)
	assert.Equal(t, testBase+"/category", entry.Links["category"].Href)
	assert.Equal(t, testBase+"/quiz", entry.Links["quiz"].Href)
	assert.Equal(t, testBase+"/question", entry.Links["question"].Href)
}

func TestAssembler_CategoryDetail_ExplicitLinks(t *testing.T) {
	a := newTestAssembler(nil)
	category := &entity.Category{ID: 4, Name: "History"}

	detail := a.CategoryDetail(category)

	assert.Equal(t, uint(4), detail.CategoryID)
	assert.Equal(t, "History", detail.Name)
	// Детальное представление сохраняет ресурсные ссылки
	assert.Equal(t, "category-quizzes", detail.Links["quizzes"].Rel)
	assert.Equal(t, testBase+"/category/History/quizzes", detail.Links["quizzes"].Href)
	assert.Equal(t, "category-questions", detail.Links["questions"].Rel)
}

func TestAssembler_CategoryResourceLinks_GlobalOverwrite(t *testing.T) {
	// В подтверждениях мутаций глобальная ссылка на коллекцию викторин
	// вытесняет ресурсную (исторический контракт)
	a := newTestAssembler(nil)

	links := a.CategoryResourceLinks("History")

	assert.Equal(t, "category-instance", links["self"].Rel)
	assert.Equal(t, testBase+"/quiz", links["quizzes"].Href)
	assert.Equal(t, "quizzes-collection", links["quizzes"].Rel)
	assert.Equal(t, "home", links["home"].Rel)
	assert.NotContains(t, links, "categories")
}

func TestAssembler_QuizDetail_WithCategory(t *testing.T) {
	category := &entity.Category{ID: 1, Name: "History"}
	quiz := &entity.Quiz{ID: 2, UniqueID: testQuizUUID, Name: "Rome", Description: "Empire"}
	a := newTestAssembler(&stubRelationSource{categoryOfQuiz: map[uint]*entity.Category{2: category}})

	detail, err := a.QuizDetail(quiz)

	require.NoError(t, err)
	require.NotNil(t, detail.Category)
	assert.Equal(t, "History", *detail.Category)
	assert.Equal(t, "parent-category", detail.Links["category"].Rel)
	assert.Equal(t, "sibling-quizzes", detail.Links["category_quizzes"].Rel)
	assert.Equal(t, testBase+"/quiz/"+testQuizUUID, detail.Links["self"].Href)
}

func TestAssembler_QuizDetail_NoCategory(t *testing.T) {
	quiz := &entity.Quiz{ID: 2, UniqueID: testQuizUUID, Name: "Orphan"}
	a := newTestAssembler(nil)

	detail, err := a.QuizDetail(quiz)

	require.NoError(t, err)
	assert.Nil(t, detail.Category)
	assert.NotContains(t, detail.Links, "category")
	assert.NotContains(t, detail.Links, "category_quizzes")
}

func TestAssembler_QuizResourceLinks_QuestionsOverwritten(t *testing.T) {
	quiz := &entity.Quiz{ID: 2, UniqueID: testQuizUUID, Name: "Rome"}
	a := newTestAssembler(nil)

	links, err := a.QuizResourceLinks(quiz)

	require.NoError(t, err)
	// Глобальная коллекция вопросов вытесняет quiz-questions
	assert.Equal(t, testBase+"/question", links["questions"].Href)
	assert.Equal(t, "questions-collection", links["questions"].Rel)
	assert.NotContains(t, links, "quizzes")
}

func TestAssembler_QuestionDetail(t *testing.T) {
	quiz := &entity.Quiz{ID: 5, UniqueID: testQuizUUID, Name: "Rome"}
	question := &entity.Question{
		ID:         9,
		UniqueID:   "b54c0a3a-3de7-4f3b-ac5f-657ef6d7d3bc",
		Statement:  "Who founded Rome?",
		Complexity: entity.ComplexityEasy,
		Options: []entity.Option{
			{UniqueID: "o1", Statement: "Romulus", IsCorrect: true},
			{UniqueID: "o2", Statement: "Remus"},
		},
	}
	a := newTestAssembler(&stubRelationSource{quizOfQuestion: map[uint]*entity.Quiz{9: quiz}})

	repr, err := a.QuestionDetail(question)

	require.NoError(t, err)
	require.NotNil(t, repr.QuizUniqueID)
	assert.Equal(t, testQuizUUID, *repr.QuizUniqueID)
	require.Len(t, repr.Options, 2)
	assert.True(t, repr.Options[0].IsCorrect)
	assert.Equal(t, "parent-quiz", repr.Links["quiz"].Rel)
}

func TestAssembler_QuestionsByQuiz_Links(t *testing.T) {
	category := &entity.Category{ID: 1, Name: "History"}
	quiz := &entity.Quiz{ID: 5, UniqueID: testQuizUUID, Name: "Rome"}
	questions := []entity.Question{
		{ID: 9, UniqueID: "q1", Statement: "Q1", Complexity: "easy"},
	}
	a := newTestAssembler(&stubRelationSource{categoryOfQuiz: map[uint]*entity.Category{5: category}})

	body, err := a.QuestionsByQuiz(quiz, questions)

	require.NoError(t, err)
	assert.Equal(t, testQuizUUID, body.Quiz.UniqueID)
	require.Len(t, body.Questions, 1)
	assert.Equal(t, "question-instance", body.Questions[0].Links["self"].Rel)
	assert.Equal(t, "parent-category", body.Links["category"].Rel)
	// Коллекция собственного вида в глобальные ссылки не попадает
	assert.NotContains(t, body.Links, "questions")
}

func TestAssembler_CategoryQuizAll_NoLinks(t *testing.T) {
	category := &entity.Category{ID: 1, Name: "History"}
	quiz := &entity.Quiz{ID: 5, UniqueID: testQuizUUID, Name: "Rome", Description: "Empire"}
	questions := []entity.Question{
		{ID: 9, UniqueID: "q1", Statement: "Q1", Complexity: "easy",
			Options: []entity.Option{{UniqueID: "o1", Statement: "A", IsCorrect: true}}},
	}
	a := newTestAssembler(nil)

	body := a.CategoryQuizAll(category, quiz, questions)

	assert.Equal(t, "History", body.Category)
	assert.Equal(t, "Rome", body.Quiz)
	require.Len(t, body.Questions, 1)
	assert.Nil(t, body.Questions[0].Links)
}

func TestAssembler_FilteredQuestions_PlainLinks(t *testing.T) {
	category := &entity.Category{ID: 1, Name: "History"}
	quiz := &entity.Quiz{ID: 5, UniqueID: testQuizUUID, Name: "Rome"}
	questions := []entity.Question{
		{ID: 9, UniqueID: "q1", Statement: "Q1", Complexity: "medium"},
	}
	a := newTestAssembler(nil)

	body := a.FilteredQuestions(category, quiz, "medium", questions)

	assert.Equal(t, "medium", body.Complexity)
	assert.Equal(t, 1, body.QuestionCount)
	// Ссылки этого ответа — голые адреса
	assert.Equal(t, testBase+"/category/History/quiz/Rome/questions", body.Links["self"])
	assert.Equal(t, testBase+"/category/History/quiz/Rome/all", body.Links["all_questions"])
	assert.Equal(t, testBase+"/question/q1", body.Questions[0].Links["self"])
}

func TestAssembler_QuestionList_CollectionLinks(t *testing.T) {
	quiz := &entity.Quiz{ID: 5, UniqueID: testQuizUUID, Name: "Rome"}
	questions := []entity.Question{
		{ID: 9, UniqueID: "q1", Statement: "Q1", Complexity: "easy"},
		{ID: 10, UniqueID: "q2", Statement: "Q2", Complexity: "hard"},
	}
	a := newTestAssembler(&stubRelationSource{quizOfQuestion: map[uint]*entity.Quiz{9: quiz}})

	body, err := a.QuestionList(questions)

	require.NoError(t, err)
	require.Len(t, body.Questions, 2)
	// Первый вопрос привязан к викторине, второй осиротел
	assert.NotNil(t, body.Questions[0].QuizUniqueID)
	assert.Equal(t, "sibling-questions", body.Questions[0].Links["quiz_questions"].Rel)
	assert.Nil(t, body.Questions[1].QuizUniqueID)
	assert.NotContains(t, body.Questions[1].Links, "quiz")
	assert.Equal(t, "questions-collection", body.Links["self"].Rel)
}
