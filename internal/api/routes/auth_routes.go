// internal/api/routes/auth_routes.go
package routes

import (
	"invoice-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the credential-exchange endpoint. It is
// deliberately outside the auth middleware: it is how clients obtain a
// token in the first place.
func RegisterAuthRoutes(rg *gin.RouterGroup, authHandler handlers.AuthHandlerInterface) {
	rg.POST("/auth/google", authHandler.GoogleLogin)
}
