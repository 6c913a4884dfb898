package models

import "time"

type Customer struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	City        string    `json:"city"`
	Address     string    `json:"address"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateCustomerRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	City        string `json:"city"`
	Address     string `json:"address" validate:"required"`
}

// UpdateCustomerRequest carries the full editable field set; updates replace
// every field (PUT semantics).
type UpdateCustomerRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	City        string `json:"city"`
	Address     string `json:"address" validate:"required"`
}

// CustomerResource is the stable API shape for a customer.
type CustomerResource struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	City        string `json:"city,omitempty"`
	Address     string `json:"address"`
}

func NewCustomerResource(c *Customer) *CustomerResource {
	if c == nil {
		return nil
	}

	return &CustomerResource{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		City:        c.City,
		Address:     c.Address,
	}
}

func NewCustomerCollection(customers []*Customer) []*CustomerResource {
	resources := make([]*CustomerResource, 0, len(customers))
	for _, c := range customers {
		resources = append(resources, NewCustomerResource(c))
	}

	return resources
}
