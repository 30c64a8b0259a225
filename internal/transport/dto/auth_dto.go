// internal/transport/dto/auth_dto.go
package dto

// GoogleAuthRequest carries a Google-issued ID token and the OAuth client
// it was minted for.
type GoogleAuthRequest struct {
	Credential string `json:"credential" validate:"required"`
	ClientID   string `json:"clientId" validate:"required"`
}

// GoogleAuthResponse returns the application-signed token plus the
// provider claims it embeds.
type GoogleAuthResponse struct {
	Token    string         `json:"token"`
	UserInfo map[string]any `json:"userInfo"`
}
