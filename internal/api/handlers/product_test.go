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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductHandler_Create(t *testing.T) {
	t.Run("Success - Create Product", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.ProductService)
		handler := handlers.NewProductHandler(mockService)

		product := &models.Product{
			ID:       1,
			Code:     "PRD-001",
			Name:     "Keyboard",
			Price:    decimal.NewFromFloat(49.90),
			Category: &models.Category{ID: 3, Code: 100, Name: "Peripherals", Slug: "peripherals"},
		}
		mockService.On("CreateProduct", mock.Anything, mock.MatchedBy(func(req *models.CreateProductRequest) bool {
			return req.Code == "PRD-001" && req.Price != nil && *req.Price == 49.90
		})).Return(product, nil).Once()

		payload := `{"code":"PRD-001","name":"Keyboard","price":49.90,"brand":"Acme","unit":"pc","category_id":3}`
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/products", strings.NewReader(payload), uuid.New(), nil)
		rr := httptest.NewRecorder()

		// Act
		handler.Create(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)

		body := decodeBody(t, rr)
		assert.Equal(t, "Product created successfully", body["message"])

		data, ok := body["data"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "PRD-001", data["code"])

		category, ok := data["category"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Peripherals", category["name"])
		mockService.AssertExpectations(t)
	})

	t.Run("Success - Zero Price Accepted", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.ProductService)
		handler := handlers.NewProductHandler(mockService)

		product := &models.Product{ID: 2, Code: "PRD-002", Name: "Sample", Price: decimal.Zero}
		mockService.On("CreateProduct", mock.Anything, mock.MatchedBy(func(req *models.CreateProductRequest) bool {
			return req.Price != nil && *req.Price == 0
		})).Return(product, nil).Once()

		payload := `{"code":"PRD-002","name":"Sample","price":0,"brand":"Acme","unit":"pc","category_id":3}`
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/products", strings.NewReader(payload), uuid.New(), nil)
		rr := httptest.NewRecorder()

		// Act
		handler.Create(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Missing Price", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.ProductService)
		handler := handlers.NewProductHandler(mockService)

		payload := `{"code":"PRD-003","name":"Sample","brand":"Acme","unit":"pc","category_id":3}`
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/products", strings.NewReader(payload), uuid.New(), nil)
		rr := httptest.NewRecorder()

		// Act
		handler.Create(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

		body := decodeBody(t, rr)
		fields, ok := body["errors"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, []any{"The price field is required."}, fields["price"])
		mockService.AssertNotCalled(t, "CreateProduct")
	})

	t.Run("Failure - Code Already Taken", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.ProductService)
		handler := handlers.NewProductHandler(mockService)

		mockService.On("CreateProduct", mock.Anything, mock.Anything).
			Return(nil, appErrors.FieldError("code", "The code has already been taken.")).Once()

		payload := `{"code":"PRD-001","name":"Keyboard","price":49.90,"brand":"Acme","unit":"pc","category_id":3}`
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/products", strings.NewReader(payload), uuid.New(), nil)
		rr := httptest.NewRecorder()

		// Act
		handler.Create(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

		body := decodeBody(t, rr)
		fields, ok := body["errors"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, []any{"The code has already been taken."}, fields["code"])
	})
}

func TestProductHandler_Delete(t *testing.T) {
	t.Run("Success - Delete Product", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.ProductService)
		handler := handlers.NewProductHandler(mockService)

		mockService.On("DeleteProduct", mock.Anything, int64(1)).Return(nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/api/products/1", nil, uuid.New(), map[string]string{"id": "1"})
		rr := httptest.NewRecorder()

		// Act
		handler.Delete(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		body := decodeBody(t, rr)
		assert.Equal(t, "Product deleted successfully", body["message"])
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.ProductService)
		handler := handlers.NewProductHandler(mockService)

		mockService.On("DeleteProduct", mock.Anything, int64(999)).
			Return(appErrors.NotFoundError("Product not found")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/api/products/999", nil, uuid.New(), map[string]string{"id": "999"})
		rr := httptest.NewRecorder()

		// Act
		handler.Delete(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)

		body := decodeBody(t, rr)
		assert.Equal(t, "Product not found", body["errors"])
	})
}
