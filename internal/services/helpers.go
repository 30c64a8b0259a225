package services

import (
	"errors"
	"fmt"

	"invoice-api/internal/models"
	"invoice-api/internal/storage"
	"invoice-api/internal/transport/dto"
)

// mapRepoError maps storage errors to service errors
func mapRepoError(err error, operation string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, operation)
	}
	if errors.Is(err, storage.ErrConflict) {
		return fmt.Errorf("%w: %s (%v)", ErrConflict, operation, err)
	}
	return fmt.Errorf("internal error during %s: %w", operation, err)
}

// sumItemTotals aggregates the per-line totals into the invoice total.
// Line totals are taken as stored; they are not cross-checked against
// quantity * price.
func sumItemTotals(items []models.LineItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Total
	}
	return sum
}

func mapAddressPayload(a *dto.AddressPayload) *models.Address {
	if a == nil {
		return nil
	}
	return &models.Address{
		Street:   a.Street,
		City:     a.City,
		PostCode: a.PostCode,
		Country:  a.Country,
	}
}

func mapDraftAddress(a *dto.DraftAddress) *models.Address {
	if a == nil {
		return nil
	}
	return &models.Address{
		Street:   a.Street,
		City:     a.City,
		PostCode: a.PostCode,
		Country:  a.Country,
	}
}

func mapItemPayloads(items []dto.LineItemPayload) []models.LineItem {
	if items == nil {
		return nil
	}
	mapped := make([]models.LineItem, 0, len(items))
	for _, item := range items {
		mapped = append(mapped, models.LineItem{
			Name:     item.Name,
			Quantity: deref(item.Quantity),
			Price:    deref(item.Price),
			Total:    deref(item.Total),
		})
	}
	return mapped
}

func mapDraftItems(items []dto.DraftLineItem) []models.LineItem {
	if items == nil {
		return nil
	}
	mapped := make([]models.LineItem, 0, len(items))
	for _, item := range items {
		mapped = append(mapped, models.LineItem{
			Name:     item.Name,
			Quantity: deref(item.Quantity),
			Price:    deref(item.Price),
			Total:    deref(item.Total),
		})
	}
	return mapped
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func derefInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
