package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/factura-dev/invoicing-api/internal/api/handlers"
	appErrors "github.com/factura-dev/invoicing-api/internal/errors"
	"github.com/factura-dev/invoicing-api/internal/models"
	"github.com/factura-dev/invoicing-api/internal/services/mocks"
	"github.com/factura-dev/invoicing-api/internal/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCustomerHandler_List(t *testing.T) {
	t.Run("Success - Paginated List", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.CustomerService)
		handler := handlers.NewCustomerHandler(mockService)

		customers := []*models.Customer{
			{ID: 1, Name: "Jane", Email: "jane@example.com", PhoneNumber: "111", Address: "Street 1"},
			{ID: 2, Name: "John", Email: "john@example.com", PhoneNumber: "222", Address: "Street 2"},
		}
		mockService.On("ListCustomers", mock.Anything, 2).Return(customers, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/customers?page=2", nil, uuid.New(), nil)
		rr := httptest.NewRecorder()

		// Act
		handler.List(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		body := decodeBody(t, rr)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, float64(2), body["current_page"])

		data, ok := body["data"].([]any)
		require.True(t, ok)
		assert.Len(t, data, 2)
		mockService.AssertExpectations(t)
	})

	t.Run("Success - Invalid Page Falls Back To First", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.CustomerService)
		handler := handlers.NewCustomerHandler(mockService)

		mockService.On("ListCustomers", mock.Anything, 1).Return([]*models.Customer{}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/customers?page=abc", nil, uuid.New(), nil)
		rr := httptest.NewRecorder()

		// Act
		handler.List(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockService.AssertExpectations(t)
	})
}

func TestCustomerHandler_Create(t *testing.T) {
	t.Run("Success - Create Customer", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.CustomerService)
		handler := handlers.NewCustomerHandler(mockService)

		customer := &models.Customer{ID: 1, Name: "Jane", Email: "jane@example.com", PhoneNumber: "111", Address: "Street 1"}
		mockService.On("CreateCustomer", mock.Anything, mock.MatchedBy(func(req *models.CreateCustomerRequest) bool {
			return req.Email == "jane@example.com"
		})).Return(customer, nil).Once()

		payload := `{"name":"Jane","email":"jane@example.com","phoneNumber":"111","address":"Street 1"}`
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/customers", strings.NewReader(payload), uuid.New(), nil)
		rr := httptest.NewRecorder()

		// Act
		handler.Create(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)

		body := decodeBody(t, rr)
		assert.Equal(t, "Customer created successfully", body["message"])

		data, ok := body["data"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, float64(1), data["id"])
		assert.Equal(t, "111", data["phoneNumber"])
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Missing Required Fields", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.CustomerService)
		handler := handlers.NewCustomerHandler(mockService)

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/customers", strings.NewReader(`{}`), uuid.New(), nil)
		rr := httptest.NewRecorder()

		// Act
		handler.Create(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

		body := decodeBody(t, rr)
		fields, ok := body["errors"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, []any{"The name field is required."}, fields["name"])
		assert.Contains(t, fields, "email")
		assert.Contains(t, fields, "phoneNumber")
		assert.Contains(t, fields, "address")
		mockService.AssertNotCalled(t, "CreateCustomer")
	})
}

func TestCustomerHandler_Get(t *testing.T) {
	t.Run("Success - Get Customer", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.CustomerService)
		handler := handlers.NewCustomerHandler(mockService)

		customer := &models.Customer{ID: 7, Name: "Jane", Email: "jane@example.com", PhoneNumber: "111", Address: "Street 1"}
		mockService.On("GetCustomerByID", mock.Anything, int64(7)).Return(customer, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/customers/7", nil, uuid.New(), map[string]string{"id": "7"})
		rr := httptest.NewRecorder()

		// Act
		handler.Get(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		body := decodeBody(t, rr)
		assert.NotContains(t, body, "message")

		data, ok := body["data"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, float64(7), data["id"])
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.CustomerService)
		handler := handlers.NewCustomerHandler(mockService)

		mockService.On("GetCustomerByID", mock.Anything, int64(99)).
			Return(nil, appErrors.NotFoundError("Customer not found")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/customers/99", nil, uuid.New(), map[string]string{"id": "99"})
		rr := httptest.NewRecorder()

		// Act
		handler.Get(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)

		body := decodeBody(t, rr)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Customer not found", body["errors"])
	})

	t.Run("Failure - Non Numeric ID", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.CustomerService)
		handler := handlers.NewCustomerHandler(mockService)

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/customers/abc", nil, uuid.New(), map[string]string{"id": "abc"})
		rr := httptest.NewRecorder()

		// Act
		handler.Get(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "GetCustomerByID")
	})
}

func TestCustomerHandler_Update(t *testing.T) {
	t.Run("Success - Update Customer", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.CustomerService)
		handler := handlers.NewCustomerHandler(mockService)

		customer := &models.Customer{ID: 7, Name: "New Name", Email: "new@example.com", PhoneNumber: "222", Address: "Street 2"}
		mockService.On("UpdateCustomer", mock.Anything, int64(7), mock.Anything).Return(customer, nil).Once()

		payload := `{"name":"New Name","email":"new@example.com","phoneNumber":"222","address":"Street 2"}`
		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/api/customers/7", strings.NewReader(payload), uuid.New(), map[string]string{"id": "7"})
		rr := httptest.NewRecorder()

		// Act
		handler.Update(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		body := decodeBody(t, rr)
		assert.Equal(t, "Customer updated successfully", body["message"])
		mockService.AssertExpectations(t)
	})
}

func TestCustomerHandler_Delete(t *testing.T) {
	t.Run("Success - Delete Customer", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.CustomerService)
		handler := handlers.NewCustomerHandler(mockService)

		mockService.On("DeleteCustomer", mock.Anything, int64(7)).Return(nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/api/customers/7", nil, uuid.New(), map[string]string{"id": "7"})
		rr := httptest.NewRecorder()

		// Act
		handler.Delete(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		body := decodeBody(t, rr)
		assert.Equal(t, "Customer deleted successfully", body["message"])
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.CustomerService)
		handler := handlers.NewCustomerHandler(mockService)

		mockService.On("DeleteCustomer", mock.Anything, int64(99)).
			Return(appErrors.NotFoundError("Customer not found")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/api/customers/99", nil, uuid.New(), map[string]string{"id": "99"})
		rr := httptest.NewRecorder()

		// Act
		handler.Delete(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
