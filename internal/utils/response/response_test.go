package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	appErrors "github.com/factura-dev/invoicing-api/internal/errors"
	"github.com/factura-dev/invoicing-api/internal/utils/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))

	return body
}

func TestSuccess(t *testing.T) {
	t.Run("With Message and Data", func(t *testing.T) {
		// Arrange
		rr := httptest.NewRecorder()

		// Act
		response.Success(rr, http.StatusCreated, "Customer created successfully", map[string]any{"id": 1})

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

		body := decodeBody(t, rr)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "Customer created successfully", body["message"])
		assert.NotNil(t, body["data"])
		assert.NotContains(t, body, "errors")
	})

	t.Run("Without Message", func(t *testing.T) {
		// Arrange
		rr := httptest.NewRecorder()

		// Act
		response.Success(rr, http.StatusOK, "", map[string]any{"id": 1})

		// Assert
		body := decodeBody(t, rr)
		assert.Equal(t, true, body["success"])
		assert.NotContains(t, body, "message")
	})
}

func TestPaginated(t *testing.T) {
	// Arrange
	rr := httptest.NewRecorder()

	// Act
	response.Paginated(rr, 3, []string{"a", "b"})

	// Assert
	assert.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody(t, rr)
	assert.Equal(t, true, body["success"])
	assert.EqualValues(t, 3, body["current_page"])
	assert.Len(t, body["data"], 2)
}

func TestError(t *testing.T) {
	t.Run("Validation Error Exposes Field Mapping", func(t *testing.T) {
		// Arrange
		rr := httptest.NewRecorder()
		err := appErrors.ValidationError(map[string][]string{
			"email": {"The email field is required."},
		})

		// Act
		response.Error(rr, err)

		// Assert
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

		body := decodeBody(t, rr)
		assert.Equal(t, false, body["success"])

		fields, ok := body["errors"].(map[string]any)
		require.True(t, ok)
		assert.Contains(t, fields, "email")
	})

	t.Run("Not Found Exposes Message String", func(t *testing.T) {
		// Arrange
		rr := httptest.NewRecorder()

		// Act
		response.Error(rr, appErrors.NotFoundError("Customer not found"))

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)

		body := decodeBody(t, rr)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Customer not found", body["errors"])
	})

	t.Run("Unauthorized", func(t *testing.T) {
		// Arrange
		rr := httptest.NewRecorder()

		// Act
		response.Error(rr, appErrors.UnauthorizedError("Unauthenticated."))

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rr.Code)

		body := decodeBody(t, rr)
		assert.Equal(t, "Unauthenticated.", body["errors"])
	})

	t.Run("Unknown Error Surfaces As Opaque 500", func(t *testing.T) {
		// Arrange
		rr := httptest.NewRecorder()

		// Act
		response.Error(rr, errors.New("some internal detail"))

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rr.Code)

		body := decodeBody(t, rr)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "An unexpected error occurred", body["errors"])
	})
}
