// internal/transport/dto/invoice_dto.go
package dto

import (
	"github.com/google/uuid"
)

// AddressPayload is the embedded address shape shared by both schemas.
// Field-level requirements come from the parent struct's dive/omitempty.
type AddressPayload struct {
	Street   string `json:"street" validate:"required"`
	City     string `json:"city" validate:"required"`
	PostCode string `json:"postCode" validate:"required"`
	Country  string `json:"country" validate:"required"`
}

// LineItemPayload is one submitted invoice line. Numeric fields are
// pointers so a legitimate zero (e.g. a free line) passes "required".
type LineItemPayload struct {
	Name     string   `json:"name" validate:"required"`
	Quantity *float64 `json:"quantity" validate:"required"`
	Price    *float64 `json:"price" validate:"required"`
	Total    *float64 `json:"total" validate:"required"`
}

// CreateInvoiceRequest is the strict schema used for create-and-finalize
// and for edits: every business field is required, and status must be
// paid or pending (draft is rejected here).
//
// ID, total and paymentDue are never taken from the client; total and
// paymentDue are derived server-side and ID is ignored if supplied.
type CreateInvoiceRequest struct {
	ID            string            `json:"id" validate:"omitempty"`
	PaymentTerms  *int              `json:"paymentTerms" validate:"required"`
	Description   string            `json:"description" validate:"required"`
	ClientName    string            `json:"clientName" validate:"required"`
	ClientEmail   string            `json:"clientEmail" validate:"required,email"`
	Status        string            `json:"status" validate:"required,oneof=paid pending"`
	SenderAddress *AddressPayload   `json:"senderAddress" validate:"required"`
	ClientAddress *AddressPayload   `json:"clientAddress" validate:"required"`
	Items         []LineItemPayload `json:"items" validate:"required,dive"`
}

// DraftInvoiceRequest is the relaxed schema for save-as-draft: every
// field optional, and status, when present, must be draft.
type DraftInvoiceRequest struct {
	PaymentTerms  *int            `json:"paymentTerms" validate:"omitempty"`
	Description   string          `json:"description" validate:"omitempty"`
	ClientName    string          `json:"clientName" validate:"omitempty"`
	ClientEmail   string          `json:"clientEmail" validate:"omitempty,email"`
	Status        string          `json:"status" validate:"omitempty,oneof=draft"`
	SenderAddress *DraftAddress   `json:"senderAddress" validate:"omitempty"`
	ClientAddress *DraftAddress   `json:"clientAddress" validate:"omitempty"`
	Items         []DraftLineItem `json:"items" validate:"omitempty,dive"`
}

// DraftAddress relaxes every address field.
type DraftAddress struct {
	Street   string `json:"street" validate:"omitempty"`
	City     string `json:"city" validate:"omitempty"`
	PostCode string `json:"postCode" validate:"omitempty"`
	Country  string `json:"country" validate:"omitempty"`
}

// DraftLineItem relaxes every item field.
type DraftLineItem struct {
	Name     string   `json:"name" validate:"omitempty"`
	Quantity *float64 `json:"quantity" validate:"omitempty"`
	Price    *float64 `json:"price" validate:"omitempty"`
	Total    *float64 `json:"total" validate:"omitempty"`
}

// InvoiceResponse is the invoice shape returned by the list and create
// endpoints, where paymentDue is a pre-formatted string. The get-by-id
// endpoint intentionally returns the entity unformatted instead.
type InvoiceResponse struct {
	PrimaryKey    uuid.UUID         `json:"primaryKey"`
	Code          string            `json:"id"`
	Description   string            `json:"description,omitempty"`
	PaymentTerms  int               `json:"paymentTerms,omitempty"`
	PaymentDue    string            `json:"paymentDue,omitempty"`
	ClientName    string            `json:"clientName,omitempty"`
	ClientEmail   string            `json:"clientEmail,omitempty"`
	Status        string            `json:"status"`
	SenderAddress *AddressPayload   `json:"senderAddress,omitempty"`
	ClientAddress *AddressPayload   `json:"clientAddress,omitempty"`
	Items         []LineItemPayload `json:"items"`
	Total         float64           `json:"total"`
	CreatedAt     string            `json:"createdAt"`
	UpdatedAt     string            `json:"updatedAt"`
}

// DeleteInvoiceResponse acknowledges a successful deletion.
type DeleteInvoiceResponse struct {
	Message string `json:"message"`
}
