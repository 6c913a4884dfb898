package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	appErrors "github.com/factura-dev/invoicing-api/internal/errors"
	"github.com/factura-dev/invoicing-api/internal/models"
	repository "github.com/factura-dev/invoicing-api/internal/repositories"
	"github.com/shopspring/decimal"
)

type InvoiceService interface {
	CreateInvoice(ctx context.Context, req *models.CreateInvoiceRequest) (*models.Invoice, error)
	GetInvoiceByID(ctx context.Context, id int64) (*models.Invoice, error)
	UpdateInvoice(ctx context.Context, id int64, req *models.UpdateInvoiceRequest) (*models.Invoice, error)
	DeleteInvoice(ctx context.Context, id int64) error
	ListInvoices(ctx context.Context, page int) ([]*models.Invoice, error)
	AddProducts(ctx context.Context, id int64, productIDs []int64) error
	RemoveProducts(ctx context.Context, id int64, productIDs []int64) error
}

type invoiceService struct {
	repo         repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
}

func NewInvoiceService(repo repository.InvoiceRepository, customerRepo repository.CustomerRepository, productRepo repository.ProductRepository) InvoiceService {
	return &invoiceService{repo: repo, customerRepo: customerRepo, productRepo: productRepo}
}

func (s *invoiceService) CreateInvoice(ctx context.Context, req *models.CreateInvoiceRequest) (*models.Invoice, error) {
	if err := s.checkReferences(ctx, req.Reference, req.CustomerID, 0); err != nil {
		return nil, err
	}

	if err := s.checkProducts(ctx, req.Products); err != nil {
		return nil, err
	}

	dueDate, err := time.Parse(models.DueDateLayout, req.DueDate)
	if err != nil {
		return nil, appErrors.FieldError("dueDate", "The due date is not a valid date.")
	}

	invoice := &models.Invoice{
		Reference:  req.Reference,
		DueDate:    dueDate,
		SubTotal:   decimal.NewFromFloat(*req.SubTotal),
		Tax:        decimal.NewFromFloat(*req.Tax),
		Discount:   *req.Discount,
		Total:      decimal.NewFromFloat(*req.Total),
		CustomerID: req.CustomerID,
	}

	if err := s.repo.CreateInvoice(ctx, invoice); err != nil {
		if appErr, ok := uniqueViolation(err); ok {
			return nil, appErr
		}

		return nil, appErrors.DatabaseError("failed to create invoice").WithError(err)
	}

	if len(req.Products) > 0 {
		if err := s.attachMissing(ctx, invoice.ID, req.Products); err != nil {
			return nil, err
		}
	}

	return s.GetInvoiceByID(ctx, invoice.ID)
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, id int64) (*models.Invoice, error) {
	invoice, err := s.repo.GetInvoiceByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Invoice not found")
		}

		return nil, appErrors.DatabaseError("failed to fetch invoice").WithError(err)
	}

	return invoice, nil
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, id int64, req *models.UpdateInvoiceRequest) (*models.Invoice, error) {
	invoice, err := s.GetInvoiceByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkReferences(ctx, req.Reference, req.CustomerID, id); err != nil {
		return nil, err
	}

	dueDate, err := time.Parse(models.DueDateLayout, req.DueDate)
	if err != nil {
		return nil, appErrors.FieldError("dueDate", "The due date is not a valid date.")
	}

	invoice.Reference = req.Reference
	invoice.DueDate = dueDate
	invoice.SubTotal = decimal.NewFromFloat(*req.SubTotal)
	invoice.Tax = decimal.NewFromFloat(*req.Tax)
	invoice.Discount = *req.Discount
	invoice.Total = decimal.NewFromFloat(*req.Total)
	invoice.CustomerID = req.CustomerID

	if err := s.repo.UpdateInvoice(ctx, invoice); err != nil {
		if appErr, ok := uniqueViolation(err); ok {
			return nil, appErr
		}

		return nil, appErrors.DatabaseError("failed to update invoice").WithError(err)
	}

	return s.GetInvoiceByID(ctx, id)
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, id int64) error {
	if err := s.repo.SoftDeleteInvoice(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.NotFoundError("Invoice not found")
		}

		return appErrors.DatabaseError("failed to delete invoice").WithError(err)
	}

	return nil
}

func (s *invoiceService) ListInvoices(ctx context.Context, page int) ([]*models.Invoice, error) {
	invoices, err := s.repo.ListInvoices(ctx, page)
	if err != nil {
		return nil, appErrors.DatabaseError("failed to list invoices").WithError(err)
	}

	return invoices, nil
}

// AddProducts links products to an invoice. Already-linked products are
// skipped, so repeating a request is harmless.
func (s *invoiceService) AddProducts(ctx context.Context, id int64, productIDs []int64) error {
	if _, err := s.GetInvoiceByID(ctx, id); err != nil {
		return err
	}

	if err := s.checkProducts(ctx, productIDs); err != nil {
		return err
	}

	return s.attachMissing(ctx, id, productIDs)
}

func (s *invoiceService) RemoveProducts(ctx context.Context, id int64, productIDs []int64) error {
	if _, err := s.GetInvoiceByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.DetachProducts(ctx, id, productIDs); err != nil {
		return appErrors.DatabaseError("failed to detach products").WithError(err)
	}

	return nil
}

func (s *invoiceService) attachMissing(ctx context.Context, id int64, productIDs []int64) error {
	linked, err := s.repo.GetLinkedProductIDs(ctx, id, productIDs)
	if err != nil {
		return appErrors.DatabaseError("failed to fetch linked products").WithError(err)
	}

	linkedSet := make(map[int64]struct{}, len(linked))
	for _, pid := range linked {
		linkedSet[pid] = struct{}{}
	}

	var missing []int64

	for _, pid := range productIDs {
		if _, ok := linkedSet[pid]; !ok {
			missing = append(missing, pid)
			linkedSet[pid] = struct{}{}
		}
	}

	if err := s.repo.AttachProducts(ctx, id, missing); err != nil {
		return appErrors.DatabaseError("failed to attach products").WithError(err)
	}

	return nil
}

func (s *invoiceService) checkReferences(ctx context.Context, reference string, customerID, excludeID int64) error {
	exists, err := s.repo.ReferenceExists(ctx, reference, excludeID)
	if err != nil {
		return appErrors.DatabaseError("failed to check reference").WithError(err)
	}

	if exists {
		return takenError("reference")
	}

	exists, err = s.customerRepo.CustomerExists(ctx, customerID)
	if err != nil {
		return appErrors.DatabaseError("failed to check customer").WithError(err)
	}

	if !exists {
		return appErrors.FieldError("customer_id", "The selected customer id is invalid.")
	}

	return nil
}

// checkProducts rejects ids that do not refer to a live product, reporting
// each offending array position.
func (s *invoiceService) checkProducts(ctx context.Context, productIDs []int64) error {
	if len(productIDs) == 0 {
		return nil
	}

	existing, err := s.productRepo.ExistingProductIDs(ctx, productIDs)
	if err != nil {
		return appErrors.DatabaseError("failed to check products").WithError(err)
	}

	existingSet := make(map[int64]struct{}, len(existing))
	for _, pid := range existing {
		existingSet[pid] = struct{}{}
	}

	fields := make(map[string][]string)

	for i, pid := range productIDs {
		if _, ok := existingSet[pid]; !ok {
			field := fmt.Sprintf("products.%d", i)
			fields[field] = append(fields[field], fmt.Sprintf("The selected products.%d is invalid.", i))
		}
	}

	if len(fields) > 0 {
		return appErrors.ValidationError(fields)
	}

	return nil
}
