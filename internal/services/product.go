package services

import (
	"context"
	"database/sql"
	"errors"

	appErrors "github.com/factura-dev/invoicing-api/internal/errors"
	"github.com/factura-dev/invoicing-api/internal/models"
	repository "github.com/factura-dev/invoicing-api/internal/repositories"
	"github.com/factura-dev/invoicing-api/internal/utils"
	"github.com/shopspring/decimal"
)

type ProductService interface {
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	UpdateProduct(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	ListProducts(ctx context.Context, page int) ([]*models.Product, error)
}

type productService struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

func NewProductService(repo repository.ProductRepository, categoryRepo repository.CategoryRepository) ProductService {
	return &productService{repo: repo, categoryRepo: categoryRepo}
}

func (s *productService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	if err := s.checkReferences(ctx, req.Code, req.CategoryID, 0); err != nil {
		return nil, err
	}

	product := &models.Product{
		Code:        req.Code,
		Name:        utils.SanitizeStrict(req.Name),
		Description: utils.SanitizeStrict(req.Description),
		Price:       decimal.NewFromFloat(*req.Price),
		Brand:       utils.SanitizeStrict(req.Brand),
		Unit:        utils.SanitizeStrict(req.Unit),
		CategoryID:  req.CategoryID,
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		if appErr, ok := uniqueViolation(err); ok {
			return nil, appErr
		}

		return nil, appErrors.DatabaseError("failed to create product").WithError(err)
	}

	// Reload so the response carries the joined category.
	return s.GetProductByID(ctx, product.ID)
}

func (s *productService) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Product not found")
		}

		return nil, appErrors.DatabaseError("failed to fetch product").WithError(err)
	}

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkReferences(ctx, req.Code, req.CategoryID, id); err != nil {
		return nil, err
	}

	product.Code = req.Code
	product.Name = utils.SanitizeStrict(req.Name)
	product.Description = utils.SanitizeStrict(req.Description)
	product.Price = decimal.NewFromFloat(*req.Price)
	product.Brand = utils.SanitizeStrict(req.Brand)
	product.Unit = utils.SanitizeStrict(req.Unit)
	product.CategoryID = req.CategoryID

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		if appErr, ok := uniqueViolation(err); ok {
			return nil, appErr
		}

		return nil, appErrors.DatabaseError("failed to update product").WithError(err)
	}

	return s.GetProductByID(ctx, id)
}

func (s *productService) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.repo.SoftDeleteProduct(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.NotFoundError("Product not found")
		}

		return appErrors.DatabaseError("failed to delete product").WithError(err)
	}

	return nil
}

func (s *productService) ListProducts(ctx context.Context, page int) ([]*models.Product, error) {
	products, err := s.repo.ListProducts(ctx, page)
	if err != nil {
		return nil, appErrors.DatabaseError("failed to list products").WithError(err)
	}

	return products, nil
}

func (s *productService) checkReferences(ctx context.Context, code string, categoryID, excludeID int64) error {
	exists, err := s.repo.CodeExists(ctx, code, excludeID)
	if err != nil {
		return appErrors.DatabaseError("failed to check code").WithError(err)
	}

	if exists {
		return takenError("code")
	}

	exists, err = s.categoryRepo.CategoryExists(ctx, categoryID)
	if err != nil {
		return appErrors.DatabaseError("failed to check category").WithError(err)
	}

	if !exists {
		return appErrors.FieldError("category_id", "The selected category id is invalid.")
	}

	return nil
}
