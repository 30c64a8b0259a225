// internal/app/app.go
package app

import (
	"invoice-api/config"
	"invoice-api/internal/auth"
	"invoice-api/internal/services"

	"github.com/go-playground/validator"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Application holds core application dependencies. It is built once in
// main and passed explicitly to whoever needs it; nothing in here is a
// package-level singleton.
type Application struct {
	Config         *config.Config
	Logger         zerolog.Logger
	DBPool         *pgxpool.Pool
	Validator      *validator.Validate
	InvoiceService services.InvoiceService
	TokenVerifier  auth.TokenVerifier
}
