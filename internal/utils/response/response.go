package response

import (
	"encoding/json"
	"net/http"

	"github.com/factura-dev/invoicing-api/internal/errors"
)

// APIResponse is the uniform envelope every endpoint returns. Message, Data
// and Errors are omitted when empty. Errors is either a plain string (auth,
// not-found) or a field→messages mapping (validation).
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

// PaginatedResponse is the envelope of list endpoints.
type PaginatedResponse struct {
	Success     bool `json:"success"`
	CurrentPage int  `json:"current_page"`
	Data        any  `json:"data"`
}

func WriteJson(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return json.NewEncoder(w).Encode(data)
}

func Success(w http.ResponseWriter, statusCode int, message string, data any) {
	WriteJson(w, statusCode, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Paginated(w http.ResponseWriter, currentPage int, data any) {
	WriteJson(w, http.StatusOK, PaginatedResponse{
		Success:     true,
		CurrentPage: currentPage,
		Data:        data,
	})
}

// Error maps an AppError to the envelope. Validation failures expose the
// field mapping; everything else exposes the message string. Unknown errors
// surface as an opaque 500.
func Error(w http.ResponseWriter, err error) {
	appErr, ok := errors.IsAppError(err)
	if !ok {
		WriteJson(w, http.StatusInternalServerError, APIResponse{
			Success: false,
			Errors:  "An unexpected error occurred",
		})

		return
	}

	var errs any = appErr.Message
	if appErr.Fields != nil {
		errs = appErr.Fields
	}

	WriteJson(w, appErr.StatusCode, APIResponse{
		Success: false,
		Errors:  errs,
	})
}
