package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DueDateLayout is the wire format accepted for invoice due dates.
const DueDateLayout = "2006-01-02"

// dueDateDisplayLayout matches the MM-DD-YYYY format the API has always
// returned for due dates.
const dueDateDisplayLayout = "01-02-2006"

// Invoice rows are soft-deleted, like products.
type Invoice struct {
	ID         int64           `json:"id"`
	Reference  string          `json:"reference"`
	DueDate    time.Time       `json:"dueDate"`
	SubTotal   decimal.Decimal `json:"subTotal"`
	Tax        decimal.Decimal `json:"tax"`
	Discount   int64           `json:"discount"`
	Total      decimal.Decimal `json:"total"`
	CustomerID int64           `json:"customer_id"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	DeletedAt  *time.Time      `json:"-"`
	Customer   *Customer       `json:"customer,omitempty"`
}

// Amount fields are pointers so a legitimate zero (no tax, no discount) is
// distinguishable from a missing field.
type CreateInvoiceRequest struct {
	Reference  string   `json:"reference" validate:"required"`
	DueDate    string   `json:"dueDate" validate:"required,datetime=2006-01-02"`
	SubTotal   *float64 `json:"subTotal" validate:"required"`
	Tax        *float64 `json:"tax" validate:"required"`
	Discount   *int64   `json:"discount" validate:"required"`
	Total      *float64 `json:"total" validate:"required"`
	CustomerID int64    `json:"customer_id" validate:"required"`
	Products   []int64  `json:"products" validate:"omitempty,dive,gt=0"`
}

type UpdateInvoiceRequest struct {
	Reference  string   `json:"reference" validate:"required"`
	DueDate    string   `json:"dueDate" validate:"required,datetime=2006-01-02"`
	SubTotal   *float64 `json:"subTotal" validate:"required"`
	Tax        *float64 `json:"tax" validate:"required"`
	Discount   *int64   `json:"discount" validate:"required"`
	Total      *float64 `json:"total" validate:"required"`
	CustomerID int64    `json:"customer_id" validate:"required"`
}

// InvoiceProductsRequest is the body of the attach and detach endpoints.
type InvoiceProductsRequest struct {
	Products []int64 `json:"products" validate:"required,min=1,dive,gt=0"`
}

type InvoiceResource struct {
	ID        int64             `json:"id"`
	Reference string            `json:"reference"`
	DueDate   string            `json:"dueDate"`
	SubTotal  decimal.Decimal   `json:"subTotal"`
	Tax       decimal.Decimal   `json:"tax"`
	Discount  int64             `json:"discount"`
	Total     decimal.Decimal   `json:"total"`
	Customer  *CustomerResource `json:"customer,omitempty"`
}

func NewInvoiceResource(i *Invoice) *InvoiceResource {
	if i == nil {
		return nil
	}

	return &InvoiceResource{
		ID:        i.ID,
		Reference: i.Reference,
		DueDate:   i.DueDate.Format(dueDateDisplayLayout),
		SubTotal:  i.SubTotal,
		Tax:       i.Tax,
		Discount:  i.Discount,
		Total:     i.Total,
		Customer:  NewCustomerResource(i.Customer),
	}
}

func NewInvoiceCollection(invoices []*Invoice) []*InvoiceResource {
	resources := make([]*InvoiceResource, 0, len(invoices))
	for _, i := range invoices {
		resources = append(resources, NewInvoiceResource(i))
	}

	return resources
}
