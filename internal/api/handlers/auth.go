package handlers

import (
	"net/http"
	"time"

	"invoice-api/config"
	"invoice-api/internal/auth"
	"invoice-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

// AuthHandler exchanges identity-provider credentials for app tokens.
type AuthHandler struct {
	verifier  auth.TokenVerifier
	cfg       config.JWTConfig
	validator *validator.Validate
	responder *ErrorResponder
	log       zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(verifier auth.TokenVerifier, cfg config.JWTConfig, validate *validator.Validate, responder *ErrorResponder, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		verifier:  verifier,
		cfg:       cfg,
		validator: validate,
		responder: responder,
		log:       log.With().Str("component", "auth_handler").Logger(),
	}
}

// GoogleLogin godoc
// @Summary      Exchange a Google credential for an app token
// @Description  Verifies a Google-issued ID token against the provider and returns an application-signed JWT embedding the provider claims.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credential body      dto.GoogleAuthRequest true  "Google credential and client ID"
// @Success      200 {object}  dto.GoogleAuthResponse "Signed application token"
// @Failure      400 {object}  map[string]string "Invalid token"
// @Router       /auth/google [post]
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var req dto.GoogleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.responder.Respond(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		h.responder.Respond(c, http.StatusBadRequest, FormatValidationErrors(err), nil)
		return
	}

	// The audience comes from the request, but when a client ID is
	// configured only that one is accepted.
	if h.cfg.GoogleClientID != "" && req.ClientID != h.cfg.GoogleClientID {
		h.log.Info().Str("clientId", req.ClientID).Msg("Credential for unexpected OAuth client")
		h.responder.Respond(c, http.StatusBadRequest, "Invalid token", nil)
		return
	}

	userInfo, err := h.verifier.Verify(c.Request.Context(), req.Credential, req.ClientID)
	if err != nil {
		h.log.Info().Err(err).Msg("Google credential verification failed")
		h.responder.Respond(c, http.StatusBadRequest, "Invalid token", err)
		return
	}

	claims := jwt.MapClaims{}
	for k, v := range userInfo {
		claims[k] = v
	}
	claims["exp"] = time.Now().Add(h.cfg.Expiration).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.cfg.Secret))
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to sign application token")
		h.responder.Respond(c, http.StatusInternalServerError, "Failed to issue token", err)
		return
	}

	c.JSON(http.StatusOK, dto.GoogleAuthResponse{Token: signed, UserInfo: userInfo})
}
