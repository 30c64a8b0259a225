package services

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"invoice-api/internal/models"
	"invoice-api/internal/storage"
	"invoice-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// maxCodeInsertRetries bounds the insert-conflict loop. The code keyspace
// holds 6,760,000 values, so a second collision in a row already means
// something is very wrong with the database.
const maxCodeInsertRetries = 5

type invoiceService struct {
	repo storage.InvoiceRepository
	log  zerolog.Logger
	now  func() time.Time
}

// NewInvoiceService creates the invoice business service.
func NewInvoiceService(repo storage.InvoiceRepository, log zerolog.Logger) InvoiceService {
	return &invoiceService{
		repo: repo,
		log:  log.With().Str("component", "invoice_service").Logger(),
		now:  time.Now,
	}
}

const codeLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
const codeDigits = "0123456789"

// generateInvoiceCode produces a candidate short code: two random
// uppercase letters followed by four random digits, e.g. RT3080.
func generateInvoiceCode() string {
	buf := make([]byte, 6)
	for i := 0; i < 2; i++ {
		buf[i] = codeLetters[rand.IntN(len(codeLetters))]
	}
	for i := 2; i < 6; i++ {
		buf[i] = codeDigits[rand.IntN(len(codeDigits))]
	}
	return string(buf)
}

// applyDerivations runs the ordered derivation pipeline before a write:
//  1. total = sum of item totals (0 for empty items)
//  2. short code, generated until no stored invoice carries it
//  3. paymentDue = createdAt + paymentTerms days, only if not already set
//
// termsSupplied distinguishes zero-day terms (due immediately, paymentDue
// equals createdAt) from terms left out of a draft entirely, which keep a
// null due date. Each step is independent; the same pipeline serves the
// full-create and draft-create paths.
func (s *invoiceService) applyDerivations(ctx context.Context, inv *models.Invoice, termsSupplied bool) error {
	inv.Total = sumItemTotals(inv.Items)

	if inv.Code == "" {
		for {
			candidate := generateInvoiceCode()
			exists, err := s.repo.CodeExists(ctx, candidate)
			if err != nil {
				return mapRepoError(err, "checking invoice code uniqueness")
			}
			if !exists {
				inv.Code = candidate
				break
			}
			s.log.Debug().Str("code", candidate).Msg("Invoice code collision, regenerating")
		}
	}

	if inv.PaymentDue == nil && termsSupplied {
		due := inv.CreatedAt.AddDate(0, 0, inv.PaymentTerms)
		inv.PaymentDue = &due
	}

	return nil
}

// createWithRetry persists a derived invoice. The uniqueness probe in
// applyDerivations can race with a concurrent creation picking the same
// candidate; the unique index then rejects the insert and we regenerate.
func (s *invoiceService) createWithRetry(ctx context.Context, inv *models.Invoice, termsSupplied bool) (*models.Invoice, error) {
	for attempt := 0; attempt < maxCodeInsertRetries; attempt++ {
		created, err := s.repo.Create(ctx, inv)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, storage.ErrConflict) {
			return nil, mapRepoError(err, "creating invoice")
		}

		s.log.Warn().Str("code", inv.Code).Msg("Invoice code lost race to concurrent insert, regenerating")
		inv.Code = ""
		if derr := s.applyDerivations(ctx, inv, termsSupplied); derr != nil {
			return nil, derr
		}
	}
	return nil, mapRepoError(storage.ErrConflict, "creating invoice after repeated code conflicts")
}

func (s *invoiceService) CreateInvoice(ctx context.Context, req *dto.CreateInvoiceRequest) (*models.Invoice, error) {
	now := s.now()
	inv := &models.Invoice{
		ID:            uuid.New(),
		Description:   req.Description,
		PaymentTerms:  derefInt(req.PaymentTerms),
		ClientName:    req.ClientName,
		ClientEmail:   req.ClientEmail,
		Status:        models.InvoiceStatus(req.Status),
		SenderAddress: mapAddressPayload(req.SenderAddress),
		ClientAddress: mapAddressPayload(req.ClientAddress),
		Items:         mapItemPayloads(req.Items),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if inv.Status == "" {
		inv.Status = models.InvoiceStatusPending
	}

	termsSupplied := req.PaymentTerms != nil
	if err := s.applyDerivations(ctx, inv, termsSupplied); err != nil {
		return nil, err
	}

	return s.createWithRetry(ctx, inv, termsSupplied)
}

func (s *invoiceService) CreateDraftInvoice(ctx context.Context, req *dto.DraftInvoiceRequest) (*models.Invoice, error) {
	now := s.now()
	inv := &models.Invoice{
		ID:            uuid.New(),
		Description:   req.Description,
		PaymentTerms:  derefInt(req.PaymentTerms),
		ClientName:    req.ClientName,
		ClientEmail:   req.ClientEmail,
		Status:        models.InvoiceStatusDraft,
		SenderAddress: mapDraftAddress(req.SenderAddress),
		ClientAddress: mapDraftAddress(req.ClientAddress),
		Items:         mapDraftItems(req.Items),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	termsSupplied := req.PaymentTerms != nil
	if err := s.applyDerivations(ctx, inv, termsSupplied); err != nil {
		return nil, err
	}

	return s.createWithRetry(ctx, inv, termsSupplied)
}

// UpdateInvoice replaces the business fields of an existing invoice. A
// submitted draft status is coerced to pending: draft is a creation-time
// state that auto-promotes on any edit. The total is recomputed from the
// submitted items; the short code, createdAt and paymentDue keep their
// original values.
func (s *invoiceService) UpdateInvoice(ctx context.Context, id uuid.UUID, req *dto.CreateInvoiceRequest) (*models.Invoice, error) {
	status := models.InvoiceStatus(req.Status)
	if status == models.InvoiceStatusDraft {
		status = models.InvoiceStatusPending
	}

	inv := &models.Invoice{
		ID:            id,
		Description:   req.Description,
		PaymentTerms:  derefInt(req.PaymentTerms),
		ClientName:    req.ClientName,
		ClientEmail:   req.ClientEmail,
		Status:        status,
		SenderAddress: mapAddressPayload(req.SenderAddress),
		ClientAddress: mapAddressPayload(req.ClientAddress),
		Items:         mapItemPayloads(req.Items),
	}
	inv.Total = sumItemTotals(inv.Items)

	updated, err := s.repo.Update(ctx, inv)
	if err != nil {
		return nil, mapRepoError(err, "updating invoice")
	}
	return updated, nil
}

// MarkInvoiceAsPaid sets the status to paid unconditionally: paid,
// pending and draft invoices may all transition. Items and total are not
// part of the payload, so the stored total stays consistent.
func (s *invoiceService) MarkInvoiceAsPaid(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	updated, err := s.repo.UpdateStatus(ctx, id, models.InvoiceStatusPaid)
	if err != nil {
		return nil, mapRepoError(err, "marking invoice as paid")
	}
	return updated, nil
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	inv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "fetching invoice")
	}
	return inv, nil
}

func (s *invoiceService) ListInvoices(ctx context.Context) ([]models.Invoice, error) {
	invoices, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, mapRepoError(err, "listing invoices")
	}
	return invoices, nil
}

func (s *invoiceService) ListOverdueInvoices(ctx context.Context) ([]models.Invoice, error) {
	invoices, err := s.repo.ListOverdue(ctx, s.now())
	if err != nil {
		return nil, mapRepoError(err, "listing overdue invoices")
	}
	return invoices, nil
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepoError(err, "deleting invoice")
	}
	return nil
}
