package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"invoice-api/internal/models"
	"invoice-api/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn" // For checking specific errors
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Querier is satisfied by *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// InvoiceRepo implements the storage.InvoiceRepository interface using PostgreSQL.
type InvoiceRepo struct {
	db  Querier
	log zerolog.Logger
}

// NewInvoiceRepo creates a new InvoiceRepo.
func NewInvoiceRepo(db *pgxpool.Pool, log zerolog.Logger) *InvoiceRepo {
	return &InvoiceRepo{db: db, log: log.With().Str("component", "invoice_repo").Logger()}
}

// WithTx creates a new InvoiceRepo bound to the transaction.
func (r *InvoiceRepo) WithTx(tx pgx.Tx) storage.InvoiceRepository {
	return &InvoiceRepo{db: tx, log: r.log}
}

// Compile-time check to ensure InvoiceRepo implements InvoiceRepository
var _ storage.InvoiceRepository = (*InvoiceRepo)(nil)

const invoiceColumns = `
	id, code, description, payment_terms, payment_due, client_name, client_email,
	status, sender_address, client_address, items, total, created_at, updated_at
`

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanInvoice reads an invoice row in invoiceColumns order. Draft invoices
// may carry NULL business columns; those scan through sql.Null wrappers and
// raw JSONB bytes.
func scanInvoice(s scanner) (*models.Invoice, error) {
	var inv models.Invoice

	var description, clientName, clientEmail sql.NullString

	var paymentTerms sql.NullInt64

	var paymentDue sql.NullTime

	var senderAddr, clientAddr, items []byte

	if err := s.Scan(
		&inv.ID, &inv.Code, &description, &paymentTerms, &paymentDue,
		&clientName, &clientEmail, &inv.Status,
		&senderAddr, &clientAddr, &items, &inv.Total,
		&inv.CreatedAt, &inv.UpdatedAt,
	); err != nil {
		return nil, err
	}

	inv.Description = description.String
	inv.PaymentTerms = int(paymentTerms.Int64)
	inv.ClientName = clientName.String
	inv.ClientEmail = clientEmail.String
	if paymentDue.Valid {
		due := paymentDue.Time
		inv.PaymentDue = &due
	}

	if len(senderAddr) > 0 {
		inv.SenderAddress = &models.Address{}
		if err := json.Unmarshal(senderAddr, inv.SenderAddress); err != nil {
			return nil, fmt.Errorf("failed to decode sender address: %w", err)
		}
	}
	if len(clientAddr) > 0 {
		inv.ClientAddress = &models.Address{}
		if err := json.Unmarshal(clientAddr, inv.ClientAddress); err != nil {
			return nil, fmt.Errorf("failed to decode client address: %w", err)
		}
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &inv.Items); err != nil {
			return nil, fmt.Errorf("failed to decode items: %w", err)
		}
	}

	return &inv, nil
}

// encodeJSONB marshals v for a JSONB column, mapping nil pointers/slices to SQL NULL.
func encodeJSONB(v any) (any, error) {
	switch val := v.(type) {
	case *models.Address:
		if val == nil {
			return nil, nil
		}
	case []models.LineItem:
		if val == nil {
			return nil, nil
		}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode jsonb value: %w", err)
	}
	return b, nil
}

// nullString maps an empty string to SQL NULL so draft invoices store
// absent fields as absent, not as empty strings.
func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullInt(i int) any {
	if i == 0 {
		return nil
	}
	return i
}

// Create inserts a new invoice row. A duplicate short code surfaces as
// storage.ErrConflict so the caller can regenerate and retry.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *models.Invoice) (*models.Invoice, error) {
	senderAddr, err := encodeJSONB(invoice.SenderAddress)
	if err != nil {
		return nil, err
	}
	clientAddr, err := encodeJSONB(invoice.ClientAddress)
	if err != nil {
		return nil, err
	}
	items, err := encodeJSONB(invoice.Items)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO invoices (id, code, description, payment_terms, payment_due, client_name,
			client_email, status, sender_address, client_address, items, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)
		RETURNING ` + invoiceColumns

	row := r.db.QueryRow(ctx, query,
		invoice.ID,
		invoice.Code,
		nullString(invoice.Description),
		nullInt(invoice.PaymentTerms),
		invoice.PaymentDue,
		nullString(invoice.ClientName),
		nullString(invoice.ClientEmail),
		invoice.Status,
		senderAddr,
		clientAddr,
		items,
		invoice.Total,
		invoice.CreatedAt,
	)

	created, err := scanInvoice(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			r.log.Warn().Str("code", invoice.Code).Msg("Duplicate invoice code on insert")
			return nil, fmt.Errorf("failed to create invoice: duplicate code %s: %w", invoice.Code, storage.ErrConflict)
		}
		r.log.Error().Err(err).Msg("Error creating invoice")
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}

	r.log.Info().Str("id", created.ID.String()).Str("code", created.Code).Msg("Invoice created")
	return created, nil
}

// GetAll retrieves every invoice, newest first.
func (r *InvoiceRepo) GetAll(ctx context.Context) ([]models.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error().Err(err).Msg("Error querying invoices")
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	invoices := make([]models.Invoice, 0)
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		invoices = append(invoices, *inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate invoice rows: %w", err)
	}

	return invoices, nil
}

// GetByID retrieves a specific invoice by its primary key.
func (r *InvoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`

	inv, err := scanInvoice(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.log.Debug().Str("id", id.String()).Msg("Invoice not found")
			return nil, storage.ErrNotFound
		}
		r.log.Error().Err(err).Str("id", id.String()).Msg("Error getting invoice by ID")
		return nil, fmt.Errorf("failed to get invoice by ID %s: %w", id, err)
	}

	return inv, nil
}

// Update replaces the business fields of an existing invoice. code,
// created_at and payment_due are deliberately not in the SET list: the
// short code is immutable and the due date is derived once at creation.
func (r *InvoiceRepo) Update(ctx context.Context, invoice *models.Invoice) (*models.Invoice, error) {
	senderAddr, err := encodeJSONB(invoice.SenderAddress)
	if err != nil {
		return nil, err
	}
	clientAddr, err := encodeJSONB(invoice.ClientAddress)
	if err != nil {
		return nil, err
	}
	items, err := encodeJSONB(invoice.Items)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE invoices
		SET description = $2, payment_terms = $3, client_name = $4, client_email = $5,
			status = $6, sender_address = $7, client_address = $8, items = $9, total = $10,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + invoiceColumns

	row := r.db.QueryRow(ctx, query,
		invoice.ID,
		nullString(invoice.Description),
		nullInt(invoice.PaymentTerms),
		nullString(invoice.ClientName),
		nullString(invoice.ClientEmail),
		invoice.Status,
		senderAddr,
		clientAddr,
		items,
		invoice.Total,
	)

	updated, err := scanInvoice(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.log.Debug().Str("id", invoice.ID.String()).Msg("Invoice not found for update")
			return nil, storage.ErrNotFound
		}
		r.log.Error().Err(err).Str("id", invoice.ID.String()).Msg("Error updating invoice")
		return nil, fmt.Errorf("failed to update invoice %s: %w", invoice.ID, err)
	}

	r.log.Info().Str("id", updated.ID.String()).Msg("Invoice updated")
	return updated, nil
}

// UpdateStatus sets only the status column, leaving items and total untouched.
func (r *InvoiceRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.InvoiceStatus) (*models.Invoice, error) {
	query := `
		UPDATE invoices
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + invoiceColumns

	updated, err := scanInvoice(r.db.QueryRow(ctx, query, id, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.log.Debug().Str("id", id.String()).Msg("Invoice not found for status update")
			return nil, storage.ErrNotFound
		}
		r.log.Error().Err(err).Str("id", id.String()).Msg("Error updating invoice status")
		return nil, fmt.Errorf("failed to update invoice status %s: %w", id, err)
	}

	r.log.Info().Str("id", updated.ID.String()).Str("status", string(updated.Status)).Msg("Invoice status updated")
	return updated, nil
}

// Delete removes an invoice row by primary key.
func (r *InvoiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		r.log.Error().Err(err).Str("id", id.String()).Msg("Error deleting invoice")
		return fmt.Errorf("failed to delete invoice %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		r.log.Debug().Str("id", id.String()).Msg("Invoice not found for deletion")
		return storage.ErrNotFound
	}

	r.log.Info().Str("id", id.String()).Msg("Invoice deleted")
	return nil
}

// CodeExists reports whether the given short code is already taken.
func (r *InvoiceRepo) CodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM invoices WHERE code = $1)`, code).Scan(&exists)
	if err != nil {
		r.log.Error().Err(err).Str("code", code).Msg("Error checking invoice code")
		return false, fmt.Errorf("failed to check invoice code %s: %w", code, err)
	}
	return exists, nil
}

// ListOverdue returns unpaid invoices whose payment_due has passed.
func (r *InvoiceRepo) ListOverdue(ctx context.Context, before time.Time) ([]models.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE payment_due < $1 AND status <> $2
		ORDER BY payment_due ASC`

	rows, err := r.db.Query(ctx, query, before, models.InvoiceStatusPaid)
	if err != nil {
		r.log.Error().Err(err).Msg("Error querying overdue invoices")
		return nil, fmt.Errorf("failed to query overdue invoices: %w", err)
	}
	defer rows.Close()

	invoices := make([]models.Invoice, 0)
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		invoices = append(invoices, *inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate invoice rows: %w", err)
	}

	return invoices, nil
}
