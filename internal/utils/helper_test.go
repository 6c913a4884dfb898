package utils_test

import (
	"testing"

	"github.com/factura-dev/invoicing-api/internal/models"
	"github.com/factura-dev/invoicing-api/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeStrict(t *testing.T) {
	assert.Equal(t, "John Doe", utils.SanitizeStrict("  John Doe  "))
	assert.Equal(t, "alert(1)", utils.SanitizeStrict("<script>alert(1)</script>"))
	assert.Equal(t, "bold", utils.SanitizeStrict("<b>bold</b>"))
}

func TestFieldLabel(t *testing.T) {
	assert.Equal(t, "phone number", utils.FieldLabel("phoneNumber"))
	assert.Equal(t, "phone number", utils.FieldLabel("phone_number"))
	assert.Equal(t, "current password", utils.FieldLabel("current_password"))
	assert.Equal(t, "email", utils.FieldLabel("email"))
	assert.Equal(t, "due date", utils.FieldLabel("dueDate"))
}

func TestValidationFields(t *testing.T) {
	validate := utils.NewValidator()

	t.Run("Required Fields", func(t *testing.T) {
		// Arrange
		req := &models.CreateCustomerRequest{}

		// Act
		err := validate.Struct(req)

		// Assert
		require.Error(t, err)

		validationErrs, ok := err.(validator.ValidationErrors)
		require.True(t, ok)

		fields := utils.ValidationFields(validationErrs)
		assert.Contains(t, fields, "name")
		assert.Contains(t, fields, "email")
		assert.Contains(t, fields, "phoneNumber")
		assert.Contains(t, fields, "address")
		assert.NotContains(t, fields, "city")
		assert.Equal(t, []string{"The name field is required."}, fields["name"])
		assert.Equal(t, []string{"The phone number field is required."}, fields["phoneNumber"])
	})

	t.Run("Invalid Email", func(t *testing.T) {
		// Arrange
		req := &models.CreateCustomerRequest{
			Name:        "John",
			Email:       "not-an-email",
			PhoneNumber: "123456789",
			Address:     "Some Street 1",
		}

		// Act
		err := validate.Struct(req)

		// Assert
		require.Error(t, err)

		fields := utils.ValidationFields(err.(validator.ValidationErrors))
		assert.Equal(t, []string{"The email must be a valid email address."}, fields["email"])
	})

	t.Run("Password Rules", func(t *testing.T) {
		// Arrange
		req := &models.ChangePasswordRequest{
			CurrentPassword:    "oldpass",
			NewPassword:        "short",
			NewConfirmPassword: "mismatch",
		}

		// Act
		err := validate.Struct(req)

		// Assert
		require.Error(t, err)

		fields := utils.ValidationFields(err.(validator.ValidationErrors))
		assert.Equal(t, []string{"The new password must be at least 6 characters."}, fields["new_password"])
		assert.Contains(t, fields, "new_confirm_password")
	})

	t.Run("Invalid Date Format", func(t *testing.T) {
		// Arrange
		req := &models.CreateInvoiceRequest{
			Reference:  "INV-001",
			DueDate:    "31-12-2026",
			SubTotal:   floatPtr(100),
			Tax:        floatPtr(10),
			Discount:   int64Ptr(5),
			Total:      floatPtr(105),
			CustomerID: 1,
		}

		// Act
		err := validate.Struct(req)

		// Assert
		require.Error(t, err)

		fields := utils.ValidationFields(err.(validator.ValidationErrors))
		assert.Equal(t, []string{"The due date is not a valid date."}, fields["dueDate"])
	})

	t.Run("Zero Amounts Are Present", func(t *testing.T) {
		// Arrange
		req := &models.CreateInvoiceRequest{
			Reference:  "INV-001",
			DueDate:    "2026-12-31",
			SubTotal:   floatPtr(100),
			Tax:        floatPtr(0),
			Discount:   int64Ptr(0),
			Total:      floatPtr(100),
			CustomerID: 1,
		}

		// Act & Assert
		assert.NoError(t, validate.Struct(req))

		product := &models.CreateProductRequest{
			Code:       "PRD-001",
			Name:       "Sample",
			Price:      floatPtr(0),
			Brand:      "Acme",
			Unit:       "pc",
			CategoryID: 1,
		}
		assert.NoError(t, validate.Struct(product))

		category := &models.CreateCategoryRequest{
			Code: int64Ptr(0),
			Name: "General",
			Slug: "general",
		}
		assert.NoError(t, validate.Struct(category))
	})

	t.Run("Missing Amounts Are Still Required", func(t *testing.T) {
		// Arrange
		req := &models.CreateInvoiceRequest{
			Reference:  "INV-001",
			DueDate:    "2026-12-31",
			SubTotal:   floatPtr(100),
			Total:      floatPtr(100),
			CustomerID: 1,
		}

		// Act
		err := validate.Struct(req)

		// Assert
		require.Error(t, err)

		fields := utils.ValidationFields(err.(validator.ValidationErrors))
		assert.Equal(t, []string{"The tax field is required."}, fields["tax"])
		assert.Equal(t, []string{"The discount field is required."}, fields["discount"])
	})
}

func floatPtr(v float64) *float64 { return &v }

func int64Ptr(v int64) *int64 { return &v }
