package services

import (
	"errors"
	"fmt"

	appErrors "github.com/factura-dev/invoicing-api/internal/errors"
	"github.com/factura-dev/invoicing-api/internal/utils"
	"github.com/lib/pq"
)

// uniqueConstraintFields maps Postgres unique constraint names to the JSON
// field reported back to the client. Uniqueness is checked up front in every
// service, so hitting one of these means two requests raced; the constraint
// is the backstop.
var uniqueConstraintFields = map[string]string{
	"users_email_key":            "email",
	"customers_email_key":        "email",
	"customers_phone_number_key": "phoneNumber",
	"categories_code_key":        "code",
	"products_code_key":          "code",
	"invoices_reference_key":     "reference",
}

const uniqueViolationCode = "23505"

func takenError(field string) *appErrors.AppError {
	return appErrors.FieldError(field,
		fmt.Sprintf("The %s has already been taken.", utils.FieldLabel(field)))
}

// uniqueViolation translates a unique constraint violation into the same
// validation error the up-front existence check would have produced.
func uniqueViolation(err error) (*appErrors.AppError, bool) {
	var pqErr *pq.Error

	if !errors.As(err, &pqErr) || pqErr.Code != uniqueViolationCode {
		return nil, false
	}

	field, ok := uniqueConstraintFields[pqErr.Constraint]
	if !ok {
		return nil, false
	}

	return takenError(field), true
}
