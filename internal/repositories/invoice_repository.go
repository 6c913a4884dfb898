package repository

import (
	"context"
	"database/sql"

	"github.com/factura-dev/invoicing-api/internal/models"
	"github.com/factura-dev/invoicing-api/internal/utils"
	"github.com/lib/pq"
)

type InvoiceRepository interface {
	CreateInvoice(ctx context.Context, invoice *models.Invoice) error
	GetInvoiceByID(ctx context.Context, id int64) (*models.Invoice, error)
	UpdateInvoice(ctx context.Context, invoice *models.Invoice) error
	SoftDeleteInvoice(ctx context.Context, id int64) error
	ListInvoices(ctx context.Context, page int) ([]*models.Invoice, error)
	ReferenceExists(ctx context.Context, reference string, excludeID int64) (bool, error)
	GetLinkedProductIDs(ctx context.Context, invoiceID int64, productIDs []int64) ([]int64, error)
	AttachProducts(ctx context.Context, invoiceID int64, productIDs []int64) error
	DetachProducts(ctx context.Context, invoiceID int64, productIDs []int64) error
}

type invoiceRepository struct {
	DB *sql.DB
}

func NewInvoiceRepo(db *sql.DB) InvoiceRepository {
	return &invoiceRepository{DB: db}
}

func (r *invoiceRepository) CreateInvoice(ctx context.Context, invoice *models.Invoice) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO invoices (reference, due_date, sub_total, tax, discount, total, customer_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	return r.DB.QueryRowContext(dbCtx, query,
		invoice.Reference, invoice.DueDate, invoice.SubTotal, invoice.Tax,
		invoice.Discount, invoice.Total, invoice.CustomerID).
		Scan(&invoice.ID, &invoice.CreatedAt, &invoice.UpdatedAt)
}

func (r *invoiceRepository) GetInvoiceByID(ctx context.Context, id int64) (*models.Invoice, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	invoice := &models.Invoice{}
	customer := &models.Customer{}

	query := `
		SELECT i.id, i.reference, i.due_date, i.sub_total, i.tax, i.discount, i.total, i.customer_id,
		       i.created_at, i.updated_at,
		       c.id, c.name, c.email, c.phone_number, c.city, c.address
		FROM invoices i
		JOIN customers c ON i.customer_id = c.id
		WHERE i.id = $1 AND i.deleted_at IS NULL`

	err := r.DB.QueryRowContext(dbCtx, query, id).
		Scan(&invoice.ID, &invoice.Reference, &invoice.DueDate, &invoice.SubTotal, &invoice.Tax,
			&invoice.Discount, &invoice.Total, &invoice.CustomerID,
			&invoice.CreatedAt, &invoice.UpdatedAt,
			&customer.ID, &customer.Name, &customer.Email, &customer.PhoneNumber,
			&customer.City, &customer.Address)
	if err != nil {
		return nil, err
	}

	invoice.Customer = customer

	return invoice, nil
}

func (r *invoiceRepository) UpdateInvoice(ctx context.Context, invoice *models.Invoice) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE invoices
		SET reference = $1, due_date = $2, sub_total = $3, tax = $4, discount = $5, total = $6,
		    customer_id = $7, updated_at = NOW()
		WHERE id = $8 AND deleted_at IS NULL
		RETURNING updated_at`

	return r.DB.QueryRowContext(dbCtx, query,
		invoice.Reference, invoice.DueDate, invoice.SubTotal, invoice.Tax,
		invoice.Discount, invoice.Total, invoice.CustomerID, invoice.ID).
		Scan(&invoice.UpdatedAt)
}

func (r *invoiceRepository) SoftDeleteInvoice(ctx context.Context, id int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `UPDATE invoices SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

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

func (r *invoiceRepository) ListInvoices(ctx context.Context, page int) ([]*models.Invoice, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT i.id, i.reference, i.due_date, i.sub_total, i.tax, i.discount, i.total, i.customer_id,
		       i.created_at, i.updated_at,
		       c.id, c.name, c.email, c.phone_number, c.city, c.address
		FROM invoices i
		JOIN customers c ON i.customer_id = c.id
		WHERE i.deleted_at IS NULL
		ORDER BY i.id
		LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(dbCtx, query, PageSize, (page-1)*PageSize)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var invoices []*models.Invoice

	for rows.Next() {
		invoice := &models.Invoice{}
		customer := &models.Customer{}

		err := rows.Scan(&invoice.ID, &invoice.Reference, &invoice.DueDate, &invoice.SubTotal, &invoice.Tax,
			&invoice.Discount, &invoice.Total, &invoice.CustomerID,
			&invoice.CreatedAt, &invoice.UpdatedAt,
			&customer.ID, &customer.Name, &customer.Email, &customer.PhoneNumber,
			&customer.City, &customer.Address)
		if err != nil {
			return nil, err
		}

		invoice.Customer = customer
		invoices = append(invoices, invoice)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return invoices, nil
}

func (r *invoiceRepository) ReferenceExists(ctx context.Context, reference string, excludeID int64) (bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var exists bool

	query := `SELECT EXISTS(SELECT 1 FROM invoices WHERE reference = $1 AND id <> $2 AND deleted_at IS NULL)`

	err := r.DB.QueryRowContext(dbCtx, query, reference, excludeID).Scan(&exists)

	return exists, err
}

// GetLinkedProductIDs returns the subset of productIDs already linked to the
// invoice.
func (r *invoiceRepository) GetLinkedProductIDs(ctx context.Context, invoiceID int64, productIDs []int64) ([]int64, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT product_id
		FROM invoice_products
		WHERE invoice_id = $1 AND product_id = ANY($2)`

	rows, err := r.DB.QueryContext(dbCtx, query, invoiceID, pq.Array(productIDs))
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var linked []int64

	for rows.Next() {
		var id int64

		if err := rows.Scan(&id); err != nil {
			return nil, err
		}

		linked = append(linked, id)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return linked, nil
}

func (r *invoiceRepository) AttachProducts(ctx context.Context, invoiceID int64, productIDs []int64) error {
	if len(productIDs) == 0 {
		return nil
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO invoice_products (invoice_id, product_id)
		SELECT $1, unnest($2::bigint[])`

	_, err := r.DB.ExecContext(dbCtx, query, invoiceID, pq.Array(productIDs))

	return err
}

func (r *invoiceRepository) DetachProducts(ctx context.Context, invoiceID int64, productIDs []int64) error {
	if len(productIDs) == 0 {
		return nil
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `DELETE FROM invoice_products WHERE invoice_id = $1 AND product_id = ANY($2)`

	_, err := r.DB.ExecContext(dbCtx, query, invoiceID, pq.Array(productIDs))

	return err
}
