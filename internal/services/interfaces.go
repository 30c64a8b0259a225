package services

import (
	"context"

	"invoice-api/internal/models"
	"invoice-api/internal/transport/dto"

	"github.com/google/uuid"
)

// InvoiceService exposes the invoice lifecycle: creation (full and
// draft), edit, mark-as-paid, listing and deletion. All derivations
// (total, short code, payment due date) happen inside the service before
// any write reaches storage.
type InvoiceService interface {
	CreateInvoice(ctx context.Context, req *dto.CreateInvoiceRequest) (*models.Invoice, error)
	CreateDraftInvoice(ctx context.Context, req *dto.DraftInvoiceRequest) (*models.Invoice, error)
	UpdateInvoice(ctx context.Context, id uuid.UUID, req *dto.CreateInvoiceRequest) (*models.Invoice, error)
	MarkInvoiceAsPaid(ctx context.Context, id uuid.UUID) (*models.Invoice, error)
	GetInvoiceByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error)
	ListInvoices(ctx context.Context) ([]models.Invoice, error)
	ListOverdueInvoices(ctx context.Context) ([]models.Invoice, error)
	DeleteInvoice(ctx context.Context, id uuid.UUID) error
}
