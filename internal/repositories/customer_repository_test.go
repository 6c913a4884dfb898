package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/factura-dev/invoicing-api/internal/models"
	repository "github.com/factura-dev/invoicing-api/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomerRepo(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewCustomerRepo(db)
	assert.NotNil(t, repo)
}

func TestCustomerRepository(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewCustomerRepo(db)
	ctx := context.Background()

	customerColumns := []string{"id", "name", "email", "phone_number", "city", "address", "created_at", "updated_at"}

	t.Run("CreateCustomer_Success", func(t *testing.T) {
		// Arrange
		customer := &models.Customer{
			Name:        "John Doe",
			Email:       "john@example.com",
			PhoneNumber: "123456789",
			City:        "Lisbon",
			Address:     "Some Street 1",
		}
		now := time.Now()

		expectedSQL := regexp.QuoteMeta(`
			INSERT INTO customers (name, email, phone_number, city, address, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
			RETURNING id, created_at, updated_at`)

		mock.ExpectQuery(expectedSQL).
			WithArgs(customer.Name, customer.Email, customer.PhoneNumber, customer.City, customer.Address).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
				AddRow(int64(1), now, now))

		// Act
		err := repo.CreateCustomer(ctx, customer)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(1), customer.ID)
		assert.WithinDuration(t, now, customer.CreatedAt, time.Second)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetCustomerByID_Success", func(t *testing.T) {
		// Arrange
		now := time.Now()

		expectedSQL := regexp.QuoteMeta(`
			SELECT id, name, email, phone_number, city, address, created_at, updated_at
			FROM customers
			WHERE id = $1`)

		mock.ExpectQuery(expectedSQL).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(customerColumns).
				AddRow(int64(7), "Jane", "jane@example.com", "987654321", "Porto", "Another Street 2", now, now))

		// Act
		customer, err := repo.GetCustomerByID(ctx, 7)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(7), customer.ID)
		assert.Equal(t, "jane@example.com", customer.Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetCustomerByID_NotFound", func(t *testing.T) {
		// Arrange
		expectedSQL := regexp.QuoteMeta(`SELECT id, name, email, phone_number, city, address`)

		mock.ExpectQuery(expectedSQL).
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		// Act
		customer, err := repo.GetCustomerByID(ctx, 99)

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, customer)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("UpdateCustomer_Success", func(t *testing.T) {
		// Arrange
		customer := &models.Customer{
			ID:          7,
			Name:        "Jane Updated",
			Email:       "jane@example.com",
			PhoneNumber: "987654321",
			City:        "Porto",
			Address:     "New Street 3",
		}
		now := time.Now()

		expectedSQL := regexp.QuoteMeta(`
			UPDATE customers
			SET name = $1, email = $2, phone_number = $3, city = $4, address = $5, updated_at = NOW()
			WHERE id = $6
			RETURNING updated_at`)

		mock.ExpectQuery(expectedSQL).
			WithArgs(customer.Name, customer.Email, customer.PhoneNumber, customer.City, customer.Address, customer.ID).
			WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(now))

		// Act
		err := repo.UpdateCustomer(ctx, customer)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DeleteCustomer_Success", func(t *testing.T) {
		// Arrange
		expectedSQL := regexp.QuoteMeta(`DELETE FROM customers WHERE id = $1`)

		mock.ExpectExec(expectedSQL).
			WithArgs(int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		// Act
		err := repo.DeleteCustomer(ctx, 7)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DeleteCustomer_NotFound", func(t *testing.T) {
		// Arrange
		expectedSQL := regexp.QuoteMeta(`DELETE FROM customers WHERE id = $1`)

		mock.ExpectExec(expectedSQL).
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		// Act
		err := repo.DeleteCustomer(ctx, 99)

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ListCustomers_Success", func(t *testing.T) {
		// Arrange
		now := time.Now()

		expectedSQL := regexp.QuoteMeta(`
			SELECT id, name, email, phone_number, city, address, created_at, updated_at
			FROM customers
			ORDER BY id
			LIMIT $1 OFFSET $2`)

		mock.ExpectQuery(expectedSQL).
			WithArgs(repository.PageSize, 10).
			WillReturnRows(sqlmock.NewRows(customerColumns).
				AddRow(int64(11), "A", "a@example.com", "111", "", "Street A", now, now).
				AddRow(int64(12), "B", "b@example.com", "222", "", "Street B", now, now))

		// Act
		customers, err := repo.ListCustomers(ctx, 2)

		// Assert
		require.NoError(t, err)
		assert.Len(t, customers, 2)
		assert.Equal(t, int64(11), customers[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("EmailExists_True", func(t *testing.T) {
		// Arrange
		expectedSQL := regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM customers WHERE email = $1 AND id <> $2)`)

		mock.ExpectQuery(expectedSQL).
			WithArgs("taken@example.com", int64(0)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		// Act
		exists, err := repo.EmailExists(ctx, "taken@example.com", 0)

		// Assert
		require.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("PhoneExists_ExcludesOwnRecord", func(t *testing.T) {
		// Arrange
		expectedSQL := regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM customers WHERE phone_number = $1 AND id <> $2)`)

		mock.ExpectQuery(expectedSQL).
			WithArgs("123456789", int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		// Act
		exists, err := repo.PhoneExists(ctx, "123456789", 7)

		// Assert
		require.NoError(t, err)
		assert.False(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CustomerExists_Error", func(t *testing.T) {
		// Arrange
		dbErr := errors.New("connection lost")
		expectedSQL := regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM customers WHERE id = $1)`)

		mock.ExpectQuery(expectedSQL).
			WithArgs(int64(1)).
			WillReturnError(dbErr)

		// Act
		exists, err := repo.CustomerExists(ctx, 1)

		// Assert
		require.Error(t, err)
		assert.False(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
