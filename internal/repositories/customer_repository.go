package repository

import (
	"context"
	"database/sql"

	"github.com/factura-dev/invoicing-api/internal/models"
	"github.com/factura-dev/invoicing-api/internal/utils"
)

// PageSize is the fixed number of records every list endpoint returns.
const PageSize = 10

type CustomerRepository interface {
	CreateCustomer(ctx context.Context, customer *models.Customer) error
	GetCustomerByID(ctx context.Context, id int64) (*models.Customer, error)
	UpdateCustomer(ctx context.Context, customer *models.Customer) error
	DeleteCustomer(ctx context.Context, id int64) error
	ListCustomers(ctx context.Context, page int) ([]*models.Customer, error)
	EmailExists(ctx context.Context, email string, excludeID int64) (bool, error)
	PhoneExists(ctx context.Context, phoneNumber string, excludeID int64) (bool, error)
	CustomerExists(ctx context.Context, id int64) (bool, error)
}

type customerRepository struct {
	DB *sql.DB
}

func NewCustomerRepo(db *sql.DB) CustomerRepository {
	return &customerRepository{DB: db}
}

func (r *customerRepository) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO customers (name, email, phone_number, city, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	return r.DB.QueryRowContext(dbCtx, query,
		customer.Name, customer.Email, customer.PhoneNumber, customer.City, customer.Address).
		Scan(&customer.ID, &customer.CreatedAt, &customer.UpdatedAt)
}

func (r *customerRepository) GetCustomerByID(ctx context.Context, id int64) (*models.Customer, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	customer := &models.Customer{}
	query := `
		SELECT id, name, email, phone_number, city, address, created_at, updated_at
		FROM customers
		WHERE id = $1`

	err := r.DB.QueryRowContext(dbCtx, query, id).
		Scan(&customer.ID, &customer.Name, &customer.Email, &customer.PhoneNumber,
			&customer.City, &customer.Address, &customer.CreatedAt, &customer.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return customer, nil
}

func (r *customerRepository) UpdateCustomer(ctx context.Context, customer *models.Customer) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE customers
		SET name = $1, email = $2, phone_number = $3, city = $4, address = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at`

	return r.DB.QueryRowContext(dbCtx, query,
		customer.Name, customer.Email, customer.PhoneNumber, customer.City, customer.Address, customer.ID).
		Scan(&customer.UpdatedAt)
}

func (r *customerRepository) DeleteCustomer(ctx context.Context, id int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM customers WHERE id = $1`, id)
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

func (r *customerRepository) ListCustomers(ctx context.Context, page int) ([]*models.Customer, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, name, email, phone_number, city, address, created_at, updated_at
		FROM customers
		ORDER BY id
		LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(dbCtx, query, PageSize, (page-1)*PageSize)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var customers []*models.Customer

	for rows.Next() {
		customer := &models.Customer{}

		err := rows.Scan(&customer.ID, &customer.Name, &customer.Email, &customer.PhoneNumber,
			&customer.City, &customer.Address, &customer.CreatedAt, &customer.UpdatedAt)
		if err != nil {
			return nil, err
		}

		customers = append(customers, customer)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}

func (r *customerRepository) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var exists bool

	query := `SELECT EXISTS(SELECT 1 FROM customers WHERE email = $1 AND id <> $2)`

	err := r.DB.QueryRowContext(dbCtx, query, email, excludeID).Scan(&exists)

	return exists, err
}

func (r *customerRepository) PhoneExists(ctx context.Context, phoneNumber string, excludeID int64) (bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var exists bool

	query := `SELECT EXISTS(SELECT 1 FROM customers WHERE phone_number = $1 AND id <> $2)`

	err := r.DB.QueryRowContext(dbCtx, query, phoneNumber, excludeID).Scan(&exists)

	return exists, err
}

func (r *customerRepository) CustomerExists(ctx context.Context, id int64) (bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var exists bool

	query := `SELECT EXISTS(SELECT 1 FROM customers WHERE id = $1)`

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&exists)

	return exists, err
}
