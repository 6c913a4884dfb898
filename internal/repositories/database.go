package repository

import (
	"database/sql"
	"fmt"

	"github.com/XSAM/otelsql"
	"github.com/factura-dev/invoicing-api/internal/config"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	_ "github.com/lib/pq"
)

// Repositories bundles the database handle with one repository per entity.
type Repositories struct {
	DB       *sql.DB
	User     UserRepository
	Customer CustomerRepository
	Category CategoryRepository
	Product  ProductRepository
	Invoice  InvoiceRepository
}

func New(cfg *config.Config) (*Repositories, error) {
	db, err := otelsql.Open("postgres", cfg.Database.GetDSN(),
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Repositories{
		DB:       db,
		User:     NewUserRepo(db),
		Customer: NewCustomerRepo(db),
		Category: NewCategoryRepo(db),
		Product:  NewProductRepo(db),
		Invoice:  NewInvoiceRepo(db),
	}, nil
}

func (r *Repositories) Close() error {
	return r.DB.Close()
}
