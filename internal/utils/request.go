package utils

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/factura-dev/invoicing-api/internal/errors"
	"github.com/factura-dev/invoicing-api/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

// ParseAndValidate decodes the JSON body into dest and runs struct
// validation. On failure it writes the error envelope and returns false.
func ParseAndValidate(r *http.Request, w http.ResponseWriter, dest any, validate *validator.Validate) bool {
	if err := DecodeJSONBody(r, dest); err != nil {
		response.Error(w, errors.BadRequestError(err.Error()))

		return false
	}

	if err := validate.Struct(dest); err != nil {
		if validationErrs, ok := err.(validator.ValidationErrors); ok {
			response.Error(w, errors.ValidationError(ValidationFields(validationErrs)))
		} else {
			response.Error(w, errors.InternalError("Unexpected validation error").WithError(err))
		}

		return false
	}

	return true
}

// ParseID extracts a positive numeric path parameter.
func ParseID(r *http.Request, param string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(param), 10, 64)
	if err != nil || id < 1 {
		return 0, errors.BadRequestError(fmt.Sprintf("Invalid %s", param))
	}

	return id, nil
}
