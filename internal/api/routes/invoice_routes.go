// internal/api/routes/invoice_routes.go
package routes

import (
	"invoice-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterInvoiceRoutes registers all routes related to invoices. Every
// route here sits behind the bearer-token middleware.
func RegisterInvoiceRoutes(
	rg *gin.RouterGroup,
	invoiceHandler handlers.InvoiceHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	invoices := rg.Group("/invoices")
	invoices.Use(authMiddleware)
	{
		invoices.GET("", invoiceHandler.ListInvoices)                // All invoices, paymentDue as YYYY-MM-DD
		invoices.GET("/overdue", invoiceHandler.ListOverdueInvoices) // Unpaid invoices past their due date
	}

	invoice := rg.Group("/invoice")
	invoice.Use(authMiddleware)
	{
		invoice.POST("", invoiceHandler.CreateInvoice)                        // Create and finalize (strict schema)
		invoice.POST("/saveAsDraft", invoiceHandler.CreateDraftInvoice)       // Create as draft (relaxed schema)
		invoice.POST("/:invoiceId", invoiceHandler.UpdateInvoice)             // Full replacement edit
		invoice.PUT("/markAsPaid/:invoiceId", invoiceHandler.MarkInvoiceAsPaid)
		invoice.GET("/:id", invoiceHandler.GetInvoiceByID)
		invoice.DELETE("/:id", invoiceHandler.DeleteInvoice)
	}
}
