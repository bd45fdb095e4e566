package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
)

func TestCategoryService_Create_Success(t *testing.T) {
	// Arrange
	mockRepo := new(MockCategoryRepository)
	mockRepo.On("GetByName", "History").Return(nil, apperrors.ErrNotFound)
	mockRepo.On("Create", mock.AnythingOfType("*entity.Category")).Return(nil)

	svc := NewCategoryService(mockRepo)

	// Act
	category, err := svc.Create("  History  ")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "History", category.Name, "Имя должно быть нормализовано")
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_Create_EmptyName(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	svc := NewCategoryService(mockRepo)

	category, err := svc.Create("   ")

	assert.Nil(t, category)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, "Category name cannot be empty", err.Error())
	mockRepo.AssertNotCalled(t, "Create")
}

func TestCategoryService_Create_Duplicate(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	// Дубликат отличается только регистром
	mockRepo.On("GetByName", "history").Return(&entity.Category{ID: 1, Name: "History"}, nil)

	svc := NewCategoryService(mockRepo)

	category, err := svc.Create("history")

	assert.Nil(t, category)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Equal(t, "Category already exists", err.Error())
	mockRepo.AssertNotCalled(t, "Create")
}

func TestCategoryService_Create_RaceLostToUniqueIndex(t *testing.T) {
	// Предпроверка промахнулась, уникальный индекс в БД сработал
	mockRepo := new(MockCategoryRepository)
	mockRepo.On("GetByName", "Science").Return(nil, apperrors.ErrNotFound)
	mockRepo.On("Create", mock.AnythingOfType("*entity.Category")).Return(apperrors.ErrConflict)

	svc := NewCategoryService(mockRepo)

	category, err := svc.Create("Science")

	assert.Nil(t, category)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Equal(t, "Category already exists", err.Error())
}

func TestCategoryService_Rename_Success(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	existing := &entity.Category{ID: 3, Name: "Histroy"}
	mockRepo.On("GetByName", "History").Return(nil, apperrors.ErrNotFound)
	mockRepo.On("Update", existing).Return(nil)

	svc := NewCategoryService(mockRepo)

	category, err := svc.Rename(existing, "History")

	require.NoError(t, err)
	assert.Equal(t, "History", category.Name)
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_Rename_CaseOnlyChangeAllowed(t *testing.T) {
	// Переименование, меняющее только регистр собственного имени, не конфликт
	mockRepo := new(MockCategoryRepository)
	existing := &entity.Category{ID: 3, Name: "history"}
	mockRepo.On("GetByName", "History").Return(existing, nil)
	mockRepo.On("Update", existing).Return(nil)

	svc := NewCategoryService(mockRepo)

	category, err := svc.Rename(existing, "History")

	require.NoError(t, err)
	assert.Equal(t, "History", category.Name)
}

func TestCategoryService_Rename_NameTaken(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	existing := &entity.Category{ID: 3, Name: "Science"}
	other := &entity.Category{ID: 7, Name: "History"}
	mockRepo.On("GetByName", "History").Return(other, nil)

	svc := NewCategoryService(mockRepo)

	category, err := svc.Rename(existing, "History")

	assert.Nil(t, category)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Equal(t, "Category name already exists", err.Error())
	mockRepo.AssertNotCalled(t, "Update")
}

func TestCategoryService_Delete_Success(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	mockRepo.On("InUse", uint(5)).Return(false, nil)
	mockRepo.On("Delete", uint(5)).Return(nil)

	svc := NewCategoryService(mockRepo)

	err := svc.Delete(&entity.Category{ID: 5, Name: "Empty"})

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_Delete_InUse(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	mockRepo.On("InUse", uint(5)).Return(true, nil)

	svc := NewCategoryService(mockRepo)

	err := svc.Delete(&entity.Category{ID: 5, Name: "Busy"})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInUse)
	assert.Equal(t, "Cannot delete category in use by quizzes", err.Error())
	mockRepo.AssertNotCalled(t, "Delete")
}
