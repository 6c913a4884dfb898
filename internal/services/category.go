package services

import (
	"context"
	"database/sql"
	"errors"

	appErrors "github.com/factura-dev/invoicing-api/internal/errors"
	"github.com/factura-dev/invoicing-api/internal/models"
	repository "github.com/factura-dev/invoicing-api/internal/repositories"
	"github.com/factura-dev/invoicing-api/internal/utils"
)

type CategoryService interface {
	CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error)
	GetCategoryByID(ctx context.Context, id int64) (*models.Category, error)
	UpdateCategory(ctx context.Context, id int64, req *models.UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
	ListCategories(ctx context.Context, page int) ([]*models.Category, error)
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {
	exists, err := s.repo.CodeExists(ctx, *req.Code, 0)
	if err != nil {
		return nil, appErrors.DatabaseError("failed to check code").WithError(err)
	}

	if exists {
		return nil, takenError("code")
	}

	category := &models.Category{
		Code: *req.Code,
		Name: utils.SanitizeStrict(req.Name),
		Slug: utils.SanitizeStrict(req.Slug),
	}

	if err := s.repo.CreateCategory(ctx, category); err != nil {
		if appErr, ok := uniqueViolation(err); ok {
			return nil, appErr
		}

		return nil, appErrors.DatabaseError("failed to create category").WithError(err)
	}

	return category, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, id int64) (*models.Category, error) {
	category, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Category not found")
		}

		return nil, appErrors.DatabaseError("failed to fetch category").WithError(err)
	}

	return category, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id int64, req *models.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.CodeExists(ctx, *req.Code, id)
	if err != nil {
		return nil, appErrors.DatabaseError("failed to check code").WithError(err)
	}

	if exists {
		return nil, takenError("code")
	}

	category.Code = *req.Code
	category.Name = utils.SanitizeStrict(req.Name)
	category.Slug = utils.SanitizeStrict(req.Slug)

	if err := s.repo.UpdateCategory(ctx, category); err != nil {
		if appErr, ok := uniqueViolation(err); ok {
			return nil, appErr
		}

		return nil, appErrors.DatabaseError("failed to update category").WithError(err)
	}

	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id int64) error {
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.NotFoundError("Category not found")
		}

		return appErrors.DatabaseError("failed to delete category").WithError(err)
	}

	return nil
}

func (s *categoryService) ListCategories(ctx context.Context, page int) ([]*models.Category, error) {
	categories, err := s.repo.ListCategories(ctx, page)
	if err != nil {
		return nil, appErrors.DatabaseError("failed to list categories").WithError(err)
	}

	return categories, nil
}
