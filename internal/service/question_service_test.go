package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
)

func validOptions() []OptionInput {
	return []OptionInput{
		{Statement: "Paris", IsCorrect: true},
		{Statement: "London", IsCorrect: false},
	}
}

func TestQuestionService_Create_Success(t *testing.T) {
	// Arrange
	mockRepo := new(MockQuestionRepository)
	mockRepo.On("CreateForQuiz", mock.AnythingOfType("*entity.Question"), uint(7)).Return(nil)

	svc := NewQuestionService(mockRepo)
	quiz := &entity.Quiz{ID: 7, UniqueID: "a4f6c9e0-1111-2222-3333-444455556666"}

	// Act
	question, err := svc.Create("Capital of France?", "EASY", validOptions(), quiz)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Capital of France?", question.Statement)
	assert.Equal(t, entity.ComplexityEasy, question.Complexity, "Сложность должна приводиться к нижнему регистру")
	require.Len(t, question.Options, 2)
	assert.True(t, question.HasCorrectOption())
	mockRepo.AssertExpectations(t)
}

func TestQuestionService_Create_InvalidComplexity(t *testing.T) {
	svc := NewQuestionService(new(MockQuestionRepository))

	question, err := svc.Create("Q?", "impossible", validOptions(), &entity.Quiz{ID: 1})

	assert.Nil(t, question)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, "Invalid complexity level", err.Error())
}

func TestQuestionService_Create_NoOptions(t *testing.T) {
	svc := NewQuestionService(new(MockQuestionRepository))

	question, err := svc.Create("Q?", "easy", []OptionInput{}, &entity.Quiz{ID: 1})

	assert.Nil(t, question)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, "At least one option must be provided", err.Error())
}

func TestQuestionService_Create_NoCorrectOption(t *testing.T) {
	svc := NewQuestionService(new(MockQuestionRepository))
	options := []OptionInput{
		{Statement: "Paris", IsCorrect: false},
		{Statement: "London", IsCorrect: false},
	}

	question, err := svc.Create("Q?", "easy", options, &entity.Quiz{ID: 1})

	assert.Nil(t, question)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, "At least one option must be marked as correct", err.Error())
}

func TestQuestionService_Update_ReplaceOptions(t *testing.T) {
	mockRepo := new(MockQuestionRepository)
	question := &entity.Question{ID: 3, Statement: "Old?", Complexity: "easy"}

	mockRepo.On("Update", question, mock.AnythingOfType("[]entity.Option"), true, (*uint)(nil)).Return(nil)

	svc := NewQuestionService(mockRepo)

	updated, err := svc.Update(question, strPtr("New?"), strPtr("hard"), validOptions(), nil)

	require.NoError(t, err)
	assert.Equal(t, "New?", updated.Statement)
	assert.Equal(t, entity.ComplexityHard, updated.Complexity)
	mockRepo.AssertExpectations(t)
}

func TestQuestionService_Update_KeepOptions(t *testing.T) {
	// nil options означает "не трогать набор вариантов"
	mockRepo := new(MockQuestionRepository)
	question := &entity.Question{ID: 3, Statement: "Q?", Complexity: "easy"}

	mockRepo.On("Update", question, []entity.Option(nil), false, (*uint)(nil)).Return(nil)

	svc := NewQuestionService(mockRepo)

	_, err := svc.Update(question, nil, nil, nil, nil)

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestQuestionService_Update_Reassign(t *testing.T) {
	mockRepo := new(MockQuestionRepository)
	question := &entity.Question{ID: 3, Statement: "Q?", Complexity: "easy"}
	newQuiz := &entity.Quiz{ID: 12}

	mockRepo.On("Update", question, []entity.Option(nil), false, &newQuiz.ID).Return(nil)

	svc := NewQuestionService(mockRepo)

	_, err := svc.Update(question, nil, nil, nil, newQuiz)

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestQuestionService_Update_NoCorrectOption(t *testing.T) {
	mockRepo := new(MockQuestionRepository)
	question := &entity.Question{ID: 3, Statement: "Q?", Complexity: "easy"}

	svc := NewQuestionService(mockRepo)

	updated, err := svc.Update(question, nil, nil, []OptionInput{{Statement: "A", IsCorrect: false}}, nil)

	assert.Nil(t, updated)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	mockRepo.AssertNotCalled(t, "Update")
}

func TestQuestionService_ListFiltered_Defaults(t *testing.T) {
	// Пустая сложность и нулевой счетчик заменяются medium/5
	mockRepo := new(MockQuestionRepository)
	mockRepo.On("ListByQuizFiltered", uint(7), "medium", 5).Return([]entity.Question{}, nil)

	svc := NewQuestionService(mockRepo)

	complexity, questions, err := svc.ListFiltered(&entity.Quiz{ID: 7}, "", 0)

	require.NoError(t, err)
	assert.Equal(t, "medium", complexity)
	assert.Empty(t, questions)
	mockRepo.AssertExpectations(t)
}

func TestQuestionService_ListFiltered_InvalidComplexity(t *testing.T) {
	svc := NewQuestionService(new(MockQuestionRepository))

	_, _, err := svc.ListFiltered(&entity.Quiz{ID: 7}, "extreme", 5)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, "Invalid complexity level", err.Error())
}

func TestQuestionService_Delete_Cascades(t *testing.T) {
	mockRepo := new(MockQuestionRepository)
	mockRepo.On("DeleteCascade", uint(21)).Return(nil)

	svc := NewQuestionService(mockRepo)

	require.NoError(t, svc.Delete(&entity.Question{ID: 21}))
	mockRepo.AssertExpectations(t)
}
