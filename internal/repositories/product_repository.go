package repository

import (
	"context"
	"database/sql"

	"github.com/factura-dev/invoicing-api/internal/models"
	"github.com/factura-dev/invoicing-api/internal/utils"
	"github.com/lib/pq"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	SoftDeleteProduct(ctx context.Context, id int64) error
	ListProducts(ctx context.Context, page int) ([]*models.Product, error)
	CodeExists(ctx context.Context, code string, excludeID int64) (bool, error)
	ExistingProductIDs(ctx context.Context, ids []int64) ([]int64, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO products (code, name, description, price, brand, unit, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	return r.DB.QueryRowContext(dbCtx, query,
		product.Code, product.Name, product.Description, product.Price,
		product.Brand, product.Unit, product.CategoryID).
		Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

func (r *productRepository) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	product := &models.Product{}
	category := &models.Category{}

	query := `
		SELECT p.id, p.code, p.name, p.description, p.price, p.brand, p.unit, p.category_id,
		       p.created_at, p.updated_at,
		       c.id, c.code, c.name, c.slug
		FROM products p
		JOIN categories c ON p.category_id = c.id
		WHERE p.id = $1 AND p.deleted_at IS NULL`

	err := r.DB.QueryRowContext(dbCtx, query, id).
		Scan(&product.ID, &product.Code, &product.Name, &product.Description, &product.Price,
			&product.Brand, &product.Unit, &product.CategoryID,
			&product.CreatedAt, &product.UpdatedAt,
			&category.ID, &category.Code, &category.Name, &category.Slug)
	if err != nil {
		return nil, err
	}

	product.Category = category

	return product, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE products
		SET code = $1, name = $2, description = $3, price = $4, brand = $5, unit = $6,
		    category_id = $7, updated_at = NOW()
		WHERE id = $8 AND deleted_at IS NULL
		RETURNING updated_at`

	return r.DB.QueryRowContext(dbCtx, query,
		product.Code, product.Name, product.Description, product.Price,
		product.Brand, product.Unit, product.CategoryID, product.ID).
		Scan(&product.UpdatedAt)
}

// SoftDeleteProduct leaves a tombstone instead of removing the row.
func (r *productRepository) SoftDeleteProduct(ctx context.Context, id int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `UPDATE products SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.DB.ExecContext(dbCtx, query, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *productRepository) ListProducts(ctx context.Context, page int) ([]*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT p.id, p.code, p.name, p.description, p.price, p.brand, p.unit, p.category_id,
		       p.created_at, p.updated_at,
		       c.id, c.code, c.name, c.slug
		FROM products p
		JOIN categories c ON p.category_id = c.id
		WHERE p.deleted_at IS NULL
		ORDER BY p.id
		LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(dbCtx, query, PageSize, (page-1)*PageSize)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var products []*models.Product

	for rows.Next() {
		product := &models.Product{}
		category := &models.Category{}

		err := rows.Scan(&product.ID, &product.Code, &product.Name, &product.Description, &product.Price,
			&product.Brand, &product.Unit, &product.CategoryID,
			&product.CreatedAt, &product.UpdatedAt,
			&category.ID, &category.Code, &category.Name, &category.Slug)
		if err != nil {
			return nil, err
		}

		product.Category = category
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepository) CodeExists(ctx context.Context, code string, excludeID int64) (bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var exists bool

	query := `SELECT EXISTS(SELECT 1 FROM products WHERE code = $1 AND id <> $2 AND deleted_at IS NULL)`

	err := r.DB.QueryRowContext(dbCtx, query, code, excludeID).Scan(&exists)

	return exists, err
}

// ExistingProductIDs returns the subset of ids that refer to live products.
func (r *productRepository) ExistingProductIDs(ctx context.Context, ids []int64) ([]int64, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT id FROM products WHERE id = ANY($1) AND deleted_at IS NULL`

	rows, err := r.DB.QueryContext(dbCtx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var existing []int64

	for rows.Next() {
		var id int64

		if err := rows.Scan(&id); err != nil {
			return nil, err
		}

		existing = append(existing, id)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return existing, nil
}
