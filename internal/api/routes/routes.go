// internal/api/routes/routes.go
package routes

import (
	"invoice-api/internal/api/handlers"
	"invoice-api/internal/api/middleware"
	"invoice-api/internal/app"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, application *app.Application) {

	// --- Base API Group ---
	api := router.Group("/api")

	responder := handlers.NewErrorResponder(application.Config.IsProduction())

	// Create handlers
	invoiceHandler := handlers.NewInvoiceHandler(application.InvoiceService, application.Validator, responder, application.Logger)
	authHandler := handlers.NewAuthHandler(application.TokenVerifier, application.Config.JWT, application.Validator, responder, application.Logger)

	// --- Middleware ---
	authMiddleware := middleware.JWTAuthMiddleware(application.Config.JWT, application.Logger)

	// --- Register Resource Routes ---
	RegisterAuthRoutes(api, authHandler)
	RegisterInvoiceRoutes(api, invoiceHandler, authMiddleware)

	// --- Health Check ---
	router.GET("/health", handlers.HealthCheck)

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
