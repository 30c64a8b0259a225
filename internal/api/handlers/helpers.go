package handlers

import (
	"time"

	"invoice-api/internal/models"
	"invoice-api/internal/transport/dto"
)

// Date layouts for the formatted paymentDue variants. The create and
// list endpoints disagree on purpose: that is the observed contract, and
// get-by-id returns the entity unformatted.
const (
	createdDueLayout = "02 Jan 2006" // e.g. 19 Aug 2021
	listDueLayout    = "2006-01-02"  // e.g. 2021-08-19
)

// MapInvoiceToResponse converts a models.Invoice to a dto.InvoiceResponse,
// rendering paymentDue with the given layout.
func MapInvoiceToResponse(inv *models.Invoice, dueLayout string) dto.InvoiceResponse {
	resp := dto.InvoiceResponse{
		PrimaryKey:    inv.ID,
		Code:          inv.Code,
		Description:   inv.Description,
		PaymentTerms:  inv.PaymentTerms,
		ClientName:    inv.ClientName,
		ClientEmail:   inv.ClientEmail,
		Status:        string(inv.Status),
		SenderAddress: mapAddress(inv.SenderAddress),
		ClientAddress: mapAddress(inv.ClientAddress),
		Items:         mapItems(inv.Items),
		Total:         inv.Total,
		CreatedAt:     inv.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     inv.UpdatedAt.Format(time.RFC3339),
	}
	if inv.PaymentDue != nil {
		resp.PaymentDue = inv.PaymentDue.Format(dueLayout)
	}
	return resp
}

func mapAddress(a *models.Address) *dto.AddressPayload {
	if a == nil {
		return nil
	}
	return &dto.AddressPayload{
		Street:   a.Street,
		City:     a.City,
		PostCode: a.PostCode,
		Country:  a.Country,
	}
}

func mapItems(items []models.LineItem) []dto.LineItemPayload {
	mapped := make([]dto.LineItemPayload, 0, len(items))
	for _, item := range items {
		quantity, price, total := item.Quantity, item.Price, item.Total
		mapped = append(mapped, dto.LineItemPayload{
			Name:     item.Name,
			Quantity: &quantity,
			Price:    &price,
			Total:    &total,
		})
	}
	return mapped
}
