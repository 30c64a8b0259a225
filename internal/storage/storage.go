package storage

import (
	"context"
	"time"

	"invoice-api/internal/models"

	"github.com/google/uuid"
)

// InvoiceRepository defines the interface for invoice data operations.
type InvoiceRepository interface {
	GetAll(ctx context.Context) ([]models.Invoice, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error)
	Create(ctx context.Context, invoice *models.Invoice) (*models.Invoice, error)
	// Update replaces the business fields of the invoice identified by
	// invoice.ID. The short code, created_at and payment_due columns are
	// left untouched (derived-once semantics).
	Update(ctx context.Context, invoice *models.Invoice) (*models.Invoice, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.InvoiceStatus) (*models.Invoice, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// CodeExists reports whether an invoice already carries the given
	// short code.
	CodeExists(ctx context.Context, code string) (bool, error)
	// ListOverdue returns invoices whose payment is due before the given
	// instant and that have not been paid.
	ListOverdue(ctx context.Context, before time.Time) ([]models.Invoice, error)
}
