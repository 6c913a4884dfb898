// Package mocks provides testify mocks for the repository interfaces.
package mocks

import (
	"context"
	"time"

	"github.com/factura-dev/invoicing-api/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)

	return args.Bool(0), args.Error(1)
}

func (m *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, hashedPassword string) error {
	args := m.Called(ctx, id, hashedPassword)

	return args.Error(0)
}

type TokenRepository struct {
	mock.Mock
}

func (m *TokenRepository) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	args := m.Called(ctx, jti, ttl)

	return args.Error(0)
}

func (m *TokenRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	args := m.Called(ctx, jti)

	return args.Bool(0), args.Error(1)
}

type CustomerRepository struct {
	mock.Mock
}

func (m *CustomerRepository) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	args := m.Called(ctx, customer)

	return args.Error(0)
}

func (m *CustomerRepository) GetCustomerByID(ctx context.Context, id int64) (*models.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *CustomerRepository) UpdateCustomer(ctx context.Context, customer *models.Customer) error {
	args := m.Called(ctx, customer)

	return args.Error(0)
}

func (m *CustomerRepository) DeleteCustomer(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *CustomerRepository) ListCustomers(ctx context.Context, page int) ([]*models.Customer, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*models.Customer), args.Error(1)
}

func (m *CustomerRepository) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	args := m.Called(ctx, email, excludeID)

	return args.Bool(0), args.Error(1)
}

func (m *CustomerRepository) PhoneExists(ctx context.Context, phoneNumber string, excludeID int64) (bool, error) {
	args := m.Called(ctx, phoneNumber, excludeID)

	return args.Bool(0), args.Error(1)
}

func (m *CustomerRepository) CustomerExists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)

	return args.Bool(0), args.Error(1)
}

type CategoryRepository struct {
	mock.Mock
}

func (m *CategoryRepository) CreateCategory(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)

	return args.Error(0)
}

func (m *CategoryRepository) GetCategoryByID(ctx context.Context, id int64) (*models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *CategoryRepository) UpdateCategory(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)

	return args.Error(0)
}

func (m *CategoryRepository) DeleteCategory(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *CategoryRepository) ListCategories(ctx context.Context, page int) ([]*models.Category, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*models.Category), args.Error(1)
}

func (m *CategoryRepository) CodeExists(ctx context.Context, code int64, excludeID int64) (bool, error) {
	args := m.Called(ctx, code, excludeID)

	return args.Bool(0), args.Error(1)
}

func (m *CategoryRepository) CategoryExists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)

	return args.Bool(0), args.Error(1)
}

type ProductRepository struct {
	mock.Mock
}

func (m *ProductRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

func (m *ProductRepository) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *ProductRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

func (m *ProductRepository) SoftDeleteProduct(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *ProductRepository) ListProducts(ctx context.Context, page int) ([]*models.Product, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*models.Product), args.Error(1)
}

func (m *ProductRepository) CodeExists(ctx context.Context, code string, excludeID int64) (bool, error) {
	args := m.Called(ctx, code, excludeID)

	return args.Bool(0), args.Error(1)
}

func (m *ProductRepository) ExistingProductIDs(ctx context.Context, ids []int64) ([]int64, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]int64), args.Error(1)
}

type InvoiceRepository struct {
	mock.Mock
}

func (m *InvoiceRepository) CreateInvoice(ctx context.Context, invoice *models.Invoice) error {
	args := m.Called(ctx, invoice)

	return args.Error(0)
}

func (m *InvoiceRepository) GetInvoiceByID(ctx context.Context, id int64) (*models.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Invoice), args.Error(1)
}

func (m *InvoiceRepository) UpdateInvoice(ctx context.Context, invoice *models.Invoice) error {
	args := m.Called(ctx, invoice)

	return args.Error(0)
}

func (m *InvoiceRepository) SoftDeleteInvoice(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *InvoiceRepository) ListInvoices(ctx context.Context, page int) ([]*models.Invoice, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*models.Invoice), args.Error(1)
}

func (m *InvoiceRepository) ReferenceExists(ctx context.Context, reference string, excludeID int64) (bool, error) {
	args := m.Called(ctx, reference, excludeID)

	return args.Bool(0), args.Error(1)
}

func (m *InvoiceRepository) GetLinkedProductIDs(ctx context.Context, invoiceID int64, productIDs []int64) ([]int64, error) {
	args := m.Called(ctx, invoiceID, productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]int64), args.Error(1)
}

func (m *InvoiceRepository) AttachProducts(ctx context.Context, invoiceID int64, productIDs []int64) error {
	args := m.Called(ctx, invoiceID, productIDs)

	return args.Error(0)
}

func (m *InvoiceRepository) DetachProducts(ctx context.Context, invoiceID int64, productIDs []int64) error {
	args := m.Called(ctx, invoiceID, productIDs)

	return args.Error(0)
}
