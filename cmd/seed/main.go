// Command seed populates the database with a small set of well-known
// invoices, handy for local development and demos. Re-running it skips
// invoices whose code already exists.
package main

import (
	"context"
	"errors"
	"os"
	"time"

	"invoice-api/config"
	"invoice-api/internal/database"
	"invoice-api/internal/models"
	"invoice-api/internal/storage"
	"invoice-api/internal/storage/postgres"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

var senderAddress = &models.Address{
	Street:   "19 Union Terrace",
	City:     "London",
	PostCode: "E1 3EZ",
	Country:  "United Kingdom",
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	t := date(year, month, day)
	return &t
}

func fixtures() []models.Invoice {
	return []models.Invoice{
		{
			Code:         "RT3080",
			CreatedAt:    date(2021, time.August, 18),
			PaymentDue:   datePtr(2021, time.August, 19),
			Description:  "Re-branding",
			PaymentTerms: 1,
			ClientName:   "Jensen Huang",
			ClientEmail:  "jensenh@mail.com",
			Status:       models.InvoiceStatusPaid,
			ClientAddress: &models.Address{
				Street: "106 Kendell Street", City: "Sharrington", PostCode: "NR24 5WQ", Country: "United Kingdom",
			},
			Items: []models.LineItem{
				{Name: "Brand Guidelines", Quantity: 1, Price: 1800.90, Total: 1800.90},
			},
			Total: 1800.90,
		},
		{
			Code:         "XM9141",
			CreatedAt:    date(2021, time.August, 21),
			PaymentDue:   datePtr(2021, time.September, 20),
			Description:  "Graphic Design",
			PaymentTerms: 30,
			ClientName:   "Alex Grim",
			ClientEmail:  "alexgrim@mail.com",
			Status:       models.InvoiceStatusPending,
			ClientAddress: &models.Address{
				Street: "84 Church Way", City: "Bradford", PostCode: "BD1 9PB", Country: "United Kingdom",
			},
			Items: []models.LineItem{
				{Name: "Banner Design", Quantity: 1, Price: 156.00, Total: 156.00},
				{Name: "Email Design", Quantity: 2, Price: 200.00, Total: 400.00},
			},
			Total: 556.00,
		},
		{
			Code:         "RG0314",
			CreatedAt:    date(2021, time.September, 24),
			PaymentDue:   datePtr(2021, time.October, 1),
			Description:  "Website Redesign",
			PaymentTerms: 7,
			ClientName:   "John Morrison",
			ClientEmail:  "jm@myco.com",
			Status:       models.InvoiceStatusPaid,
			ClientAddress: &models.Address{
				Street: "79 Dover Road", City: "Westhall", PostCode: "IP19 3PF", Country: "United Kingdom",
			},
			Items: []models.LineItem{
				{Name: "Website Redesign", Quantity: 1, Price: 14002.33, Total: 14002.33},
			},
			Total: 14002.33,
		},
		{
			Code:         "RT2080",
			CreatedAt:    date(2021, time.October, 11),
			PaymentDue:   datePtr(2021, time.October, 12),
			Description:  "Logo Concept",
			PaymentTerms: 1,
			ClientName:   "Alysa Werner",
			ClientEmail:  "alysa@email.co.uk",
			Status:       models.InvoiceStatusPending,
			ClientAddress: &models.Address{
				Street: "63 Warwick Road", City: "Carlisle", PostCode: "CA20 2TG", Country: "United Kingdom",
			},
			Items: []models.LineItem{
				{Name: "Logo Sketches", Quantity: 1, Price: 102.04, Total: 102.04},
			},
			Total: 102.04,
		},
		{
			Code:         "AA1449",
			CreatedAt:    date(2021, time.October, 7),
			PaymentDue:   datePtr(2021, time.October, 14),
			Description:  "Re-branding",
			PaymentTerms: 7,
			ClientName:   "Mellisa Clarke",
			ClientEmail:  "mellisa.clarke@example.com",
			Status:       models.InvoiceStatusPending,
			ClientAddress: &models.Address{
				Street: "46 Abbey Row", City: "Cambridge", PostCode: "CB5 6EG", Country: "United Kingdom",
			},
			Items: []models.LineItem{
				{Name: "New Logo", Quantity: 1, Price: 1532.33, Total: 1532.33},
				{Name: "Brand Guidelines", Quantity: 1, Price: 2500.00, Total: 2500.00},
			},
			Total: 4032.33,
		},
		{
			Code:         "TY9141",
			CreatedAt:    date(2021, time.October, 1),
			PaymentDue:   datePtr(2021, time.October, 31),
			Description:  "Landing Page Design",
			PaymentTerms: 30,
			ClientName:   "Thomas Wayne",
			ClientEmail:  "thomas@dc.com",
			Status:       models.InvoiceStatusPending,
			ClientAddress: &models.Address{
				Street: "3964 Queens Lane", City: "Gotham", PostCode: "60457", Country: "United States of America",
			},
			Items: []models.LineItem{
				{Name: "Web Design", Quantity: 1, Price: 6155.91, Total: 6155.91},
			},
			Total: 6155.91,
		},
		{
			Code:         "FV2353",
			CreatedAt:    date(2021, time.November, 5),
			PaymentDue:   datePtr(2021, time.November, 12),
			Description:  "Logo Re-design",
			PaymentTerms: 7,
			ClientName:   "Anita Wainwright",
			Status:       models.InvoiceStatusDraft,
			ClientAddress: &models.Address{
				Street: "298 N Broad Street", City: "Middlesbrough", PostCode: "TS5 4DF", Country: "United Kingdom",
			},
			Items: []models.LineItem{
				{Name: "Logo Redesign", Quantity: 1, Price: 3102.04, Total: 3102.04},
			},
			Total: 3102.04,
		},
	}
}

func main() {
	_ = godotenv.Load()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Str("service", "invoice-seed").Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if err := database.Migrate(cfg.DB.MigrateURL(), logger); err != nil {
		logger.Fatal().Err(err).Msg("Failed to migrate database")
	}

	dbPool, err := database.NewConnectionPool(cfg.DB, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer dbPool.Close()

	repo := postgres.NewInvoiceRepo(dbPool, logger)
	ctx := context.Background()

	seeded := 0
	for _, inv := range fixtures() {
		inv.ID = uuid.New()
		inv.UpdatedAt = inv.CreatedAt

		if _, err := repo.Create(ctx, &inv); err != nil {
			if errors.Is(err, storage.ErrConflict) {
				logger.Info().Str("code", inv.Code).Msg("Invoice already seeded, skipping")
				continue
			}
			logger.Fatal().Err(err).Str("code", inv.Code).Msg("Failed to seed invoice")
		}
		seeded++
	}

	logger.Info().Int("seeded", seeded).Msg("Seeding complete")
}
