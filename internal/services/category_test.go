package services_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	appErrors "github.com/factura-dev/invoicing-api/internal/errors"
	"github.com/factura-dev/invoicing-api/internal/models"
	"github.com/factura-dev/invoicing-api/internal/repositories/mocks"
	"github.com/factura-dev/invoicing-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateCategory(t *testing.T) {
	ctx := context.Background()

	req := &models.CreateCategoryRequest{
		Code: int64Ptr(100),
		Name: "Peripherals",
		Slug: "peripherals",
	}

	t.Run("Success - Create Category", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.CategoryRepository)
		categoryService := services.NewCategoryService(mockRepo)

		mockRepo.On("CodeExists", mock.Anything, int64(100), int64(0)).Return(false, nil).Once()
		mockRepo.On("CreateCategory", mock.Anything, mock.MatchedBy(func(c *models.Category) bool {
			return c.Code == 100 && c.Name == req.Name && c.Slug == req.Slug
		})).Return(nil).Once()

		// Act
		category, err := categoryService.CreateCategory(ctx, req)

		// Assert
		require.NoError(t, err)
		require.NotNil(t, category)
		assert.Equal(t, int64(100), category.Code)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Code Already Taken", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.CategoryRepository)
		categoryService := services.NewCategoryService(mockRepo)

		mockRepo.On("CodeExists", mock.Anything, int64(100), int64(0)).Return(true, nil).Once()

		// Act
		category, err := categoryService.CreateCategory(ctx, req)

		// Assert
		require.Error(t, err)
		assert.Nil(t, category)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
		assert.Equal(t, []string{"The code has already been taken."}, appErr.Fields["code"])
		mockRepo.AssertNotCalled(t, "CreateCategory")
	})

	t.Run("Success - Markup Stripped From Name", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.CategoryRepository)
		categoryService := services.NewCategoryService(mockRepo)

		dirtyReq := &models.CreateCategoryRequest{
			Code: int64Ptr(101),
			Name: "<i>Audio</i>",
			Slug: "audio",
		}

		mockRepo.On("CodeExists", mock.Anything, int64(101), int64(0)).Return(false, nil).Once()
		mockRepo.On("CreateCategory", mock.Anything, mock.MatchedBy(func(c *models.Category) bool {
			return c.Name == "Audio"
		})).Return(nil).Once()

		// Act
		category, err := categoryService.CreateCategory(ctx, dirtyReq)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "Audio", category.Name)
		mockRepo.AssertExpectations(t)
	})
}

func TestGetCategoryByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Get Category", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.CategoryRepository)
		categoryService := services.NewCategoryService(mockRepo)

		expected := &models.Category{ID: 3, Code: 100, Name: "Peripherals"}
		mockRepo.On("GetCategoryByID", mock.Anything, int64(3)).Return(expected, nil).Once()

		// Act
		category, err := categoryService.GetCategoryByID(ctx, 3)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, expected, category)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.CategoryRepository)
		categoryService := services.NewCategoryService(mockRepo)

		mockRepo.On("GetCategoryByID", mock.Anything, int64(99)).Return(nil, sql.ErrNoRows).Once()

		// Act
		category, err := categoryService.GetCategoryByID(ctx, 99)

		// Assert
		require.Error(t, err)
		assert.Nil(t, category)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
		assert.Equal(t, "Category not found", appErr.Message)
	})
}

func TestUpdateCategory(t *testing.T) {
	ctx := context.Background()

	existing := &models.Category{ID: 3, Code: 100, Name: "Peripherals", Slug: "peripherals"}

	req := &models.UpdateCategoryRequest{
		Code: int64Ptr(200),
		Name: "Audio",
		Slug: "audio",
	}

	t.Run("Success - Full Replace", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.CategoryRepository)
		categoryService := services.NewCategoryService(mockRepo)

		found := *existing
		mockRepo.On("GetCategoryByID", mock.Anything, int64(3)).Return(&found, nil).Once()
		mockRepo.On("CodeExists", mock.Anything, int64(200), int64(3)).Return(false, nil).Once()
		mockRepo.On("UpdateCategory", mock.Anything, mock.MatchedBy(func(c *models.Category) bool {
			return c.ID == 3 && c.Code == 200 && c.Name == req.Name && c.Slug == req.Slug
		})).Return(nil).Once()

		// Act
		category, err := categoryService.UpdateCategory(ctx, 3, req)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(200), category.Code)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success - Keeping Own Code Is Not A Conflict", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.CategoryRepository)
		categoryService := services.NewCategoryService(mockRepo)

		sameCodeReq := &models.UpdateCategoryRequest{
			Code: int64Ptr(existing.Code),
			Name: existing.Name,
			Slug: existing.Slug,
		}

		found := *existing
		mockRepo.On("GetCategoryByID", mock.Anything, int64(3)).Return(&found, nil).Once()
		mockRepo.On("CodeExists", mock.Anything, existing.Code, int64(3)).Return(false, nil).Once()
		mockRepo.On("UpdateCategory", mock.Anything, mock.AnythingOfType("*models.Category")).Return(nil).Once()

		// Act
		_, err := categoryService.UpdateCategory(ctx, 3, sameCodeReq)

		// Assert
		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Code Taken By Another Category", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.CategoryRepository)
		categoryService := services.NewCategoryService(mockRepo)

		found := *existing
		mockRepo.On("GetCategoryByID", mock.Anything, int64(3)).Return(&found, nil).Once()
		mockRepo.On("CodeExists", mock.Anything, int64(200), int64(3)).Return(true, nil).Once()

		// Act
		category, err := categoryService.UpdateCategory(ctx, 3, req)

		// Assert
		require.Error(t, err)
		assert.Nil(t, category)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, []string{"The code has already been taken."}, appErr.Fields["code"])
		mockRepo.AssertNotCalled(t, "UpdateCategory")
	})

	t.Run("Failure - Category Not Found", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.CategoryRepository)
		categoryService := services.NewCategoryService(mockRepo)

		mockRepo.On("GetCategoryByID", mock.Anything, int64(99)).Return(nil, sql.ErrNoRows).Once()

		// Act
		category, err := categoryService.UpdateCategory(ctx, 99, req)

		// Assert
		require.Error(t, err)
		assert.Nil(t, category)
		mockRepo.AssertNotCalled(t, "UpdateCategory")
	})
}

func TestDeleteCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Delete Category", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.CategoryRepository)
		categoryService := services.NewCategoryService(mockRepo)

		mockRepo.On("DeleteCategory", mock.Anything, int64(3)).Return(nil).Once()

		// Act
		err := categoryService.DeleteCategory(ctx, 3)

		// Assert
		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.CategoryRepository)
		categoryService := services.NewCategoryService(mockRepo)

		mockRepo.On("DeleteCategory", mock.Anything, int64(99)).Return(sql.ErrNoRows).Once()

		// Act
		err := categoryService.DeleteCategory(ctx, 99)

		// Assert
		require.Error(t, err)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})
}

func TestListCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - List Categories", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.CategoryRepository)
		categoryService := services.NewCategoryService(mockRepo)

		expected := []*models.Category{{ID: 1}, {ID: 2}}
		mockRepo.On("ListCategories", mock.Anything, 1).Return(expected, nil).Once()

		// Act
		categories, err := categoryService.ListCategories(ctx, 1)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, expected, categories)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.CategoryRepository)
		categoryService := services.NewCategoryService(mockRepo)

		mockRepo.On("ListCategories", mock.Anything, 1).Return(nil, errors.New("db down")).Once()

		// Act
		categories, err := categoryService.ListCategories(ctx, 1)

		// Assert
		require.Error(t, err)
		assert.Nil(t, categories)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeDatabase, appErr.Code)
	})
}
