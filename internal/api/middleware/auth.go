// internal/api/middleware/auth.go
package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"invoice-api/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

const (
	authorizationHeader = "Authorization"
	claimsCtx           = "tokenClaims" // Key to store verified claims in context
)

// JWTAuthMiddleware creates a Gin middleware that gates every invoice
// route on a bearer token. The token must always be present; signature
// verification is skipped only when cfg.AuthBypass is set (test mode).
func JWTAuthMiddleware(cfg config.JWTConfig, log zerolog.Logger) gin.HandlerFunc {
	log = log.With().Str("component", "auth_middleware").Logger()

	return func(c *gin.Context) {
		authHeader := c.GetHeader(authorizationHeader)
		if authHeader == "" {
			log.Info().Str("path", c.Request.URL.Path).Msg("Auth token is not supplied")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Auth token is not supplied"})
			return
		}

		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || !strings.EqualFold(headerParts[0], "bearer") {
			log.Info().Msg("Invalid Authorization header format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format"})
			return
		}

		tokenString := headerParts[1]

		if cfg.AuthBypass {
			c.Next()
			return
		}

		// Parse and validate the token
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(cfg.Secret), nil
		})
		if err != nil || !token.Valid {
			log.Info().Err(err).Msg("Token validation failed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			c.Set(claimsCtx, claims)
		}
		c.Next()
	}
}
