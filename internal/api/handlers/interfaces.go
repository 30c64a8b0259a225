// internal/api/handlers/interfaces.go
package handlers

import "github.com/gin-gonic/gin"

// InvoiceHandlerInterface defines the methods needed by the invoice routes.
type InvoiceHandlerInterface interface {
	ListInvoices(c *gin.Context)
	ListOverdueInvoices(c *gin.Context)
	GetInvoiceByID(c *gin.Context)
	CreateInvoice(c *gin.Context)
	CreateDraftInvoice(c *gin.Context)
	UpdateInvoice(c *gin.Context)
	MarkInvoiceAsPaid(c *gin.Context)
	DeleteInvoice(c *gin.Context)
}

// AuthHandlerInterface defines the methods needed by the auth routes.
type AuthHandlerInterface interface {
	GoogleLogin(c *gin.Context)
}

// Ensure handlers implement the interfaces (compile-time check)
var _ InvoiceHandlerInterface = (*InvoiceHandler)(nil)
var _ AuthHandlerInterface = (*AuthHandler)(nil)
