package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// --- Invoice Status Enum ---
type InvoiceStatus string

const (
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusDraft   InvoiceStatus = "draft"
)

// Scan implements the sql.Scanner interface for InvoiceStatus
func (is *InvoiceStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan InvoiceStatus: value is not string or []byte")
		}
	}
	v := InvoiceStatus(strVal)
	switch v {
	case InvoiceStatusPaid, InvoiceStatusPending, InvoiceStatusDraft:
		*is = v
		return nil
	default:
		return fmt.Errorf("invalid InvoiceStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for InvoiceStatus
func (is InvoiceStatus) Value() (driver.Value, error) {
	return string(is), nil
}

// Address is a postal address embedded in an invoice. It has no identity
// of its own; it lives and dies with its parent invoice.
type Address struct {
	Street   string `json:"street"`
	City     string `json:"city"`
	PostCode string `json:"postCode"`
	Country  string `json:"country"`
}

// LineItem is a single billable line on an invoice. The stored Total is
// taken as submitted; only the invoice-level total is recomputed.
type LineItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
	Total    float64 `json:"total"`
}

// Invoice is the central entity.
//
// ID is the storage-assigned primary key. Code is the human-facing short
// code (two uppercase letters + four digits, e.g. RT3080), generated once
// at creation and unique across all invoices; it is serialized as "id"
// because that is the name clients know it by.
type Invoice struct {
	ID            uuid.UUID     `json:"primaryKey" db:"id"`
	Code          string        `json:"id" db:"code"`
	Description   string        `json:"description,omitempty" db:"description"`
	PaymentTerms  int           `json:"paymentTerms,omitempty" db:"payment_terms"`
	PaymentDue    *time.Time    `json:"paymentDue,omitempty" db:"payment_due"`
	ClientName    string        `json:"clientName,omitempty" db:"client_name"`
	ClientEmail   string        `json:"clientEmail,omitempty" db:"client_email"`
	Status        InvoiceStatus `json:"status" db:"status"`
	SenderAddress *Address      `json:"senderAddress,omitempty" db:"sender_address"`
	ClientAddress *Address      `json:"clientAddress,omitempty" db:"client_address"`
	Items         []LineItem    `json:"items" db:"items"`
	Total         float64       `json:"total" db:"total"`
	CreatedAt     time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time     `json:"updatedAt" db:"updated_at"`
}
