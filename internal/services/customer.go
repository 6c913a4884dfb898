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

type CustomerService interface {
	CreateCustomer(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, error)
	GetCustomerByID(ctx context.Context, id int64) (*models.Customer, error)
	UpdateCustomer(ctx context.Context, id int64, req *models.UpdateCustomerRequest) (*models.Customer, error)
	DeleteCustomer(ctx context.Context, id int64) error
	ListCustomers(ctx context.Context, page int) ([]*models.Customer, error)
}

type customerService struct {
	repo repository.CustomerRepository
}

func NewCustomerService(repo repository.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) CreateCustomer(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, error) {
	if err := s.checkUnique(ctx, req.Email, req.PhoneNumber, 0); err != nil {
		return nil, err
	}

	customer := &models.Customer{
		Name:        utils.SanitizeStrict(req.Name),
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		City:        utils.SanitizeStrict(req.City),
		Address:     utils.SanitizeStrict(req.Address),
	}

	if err := s.repo.CreateCustomer(ctx, customer); err != nil {
		if appErr, ok := uniqueViolation(err); ok {
			return nil, appErr
		}

		return nil, appErrors.DatabaseError("failed to create customer").WithError(err)
	}

	return customer, nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, id int64) (*models.Customer, error) {
	customer, err := s.repo.GetCustomerByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Customer not found")
		}

		return nil, appErrors.DatabaseError("failed to fetch customer").WithError(err)
	}

	return customer, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, id int64, req *models.UpdateCustomerRequest) (*models.Customer, error) {
	customer, err := s.GetCustomerByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkUnique(ctx, req.Email, req.PhoneNumber, id); err != nil {
		return nil, err
	}

	customer.Name = utils.SanitizeStrict(req.Name)
	customer.Email = req.Email
	customer.PhoneNumber = req.PhoneNumber
	customer.City = utils.SanitizeStrict(req.City)
	customer.Address = utils.SanitizeStrict(req.Address)

	if err := s.repo.UpdateCustomer(ctx, customer); err != nil {
		if appErr, ok := uniqueViolation(err); ok {
			return nil, appErr
		}

		return nil, appErrors.DatabaseError("failed to update customer").WithError(err)
	}

	return customer, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, id int64) error {
	if err := s.repo.DeleteCustomer(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.NotFoundError("Customer not found")
		}

		return appErrors.DatabaseError("failed to delete customer").WithError(err)
	}

	return nil
}

func (s *customerService) ListCustomers(ctx context.Context, page int) ([]*models.Customer, error) {
	customers, err := s.repo.ListCustomers(ctx, page)
	if err != nil {
		return nil, appErrors.DatabaseError("failed to list customers").WithError(err)
	}

	return customers, nil
}

// checkUnique rejects emails and phone numbers already held by another
// customer. excludeID skips the customer being updated.
func (s *customerService) checkUnique(ctx context.Context, email, phoneNumber string, excludeID int64) error {
	exists, err := s.repo.EmailExists(ctx, email, excludeID)
	if err != nil {
		return appErrors.DatabaseError("failed to check email").WithError(err)
	}

	if exists {
		return takenError("email")
	}

	exists, err = s.repo.PhoneExists(ctx, phoneNumber, excludeID)
	if err != nil {
		return appErrors.DatabaseError("failed to check phone number").WithError(err)
	}

	if exists {
		return takenError("phoneNumber")
	}

	return nil
}
