// Package auth wraps the external identity provider. Credential
// verification is a pass-through to Google's token endpoint; nothing is
// reimplemented here.
package auth

import (
	"context"
	"fmt"

	"google.golang.org/api/idtoken"
)

// TokenVerifier verifies a provider-issued credential for the given
// audience and returns its claims.
type TokenVerifier interface {
	Verify(ctx context.Context, credential, audience string) (map[string]any, error)
}

// GoogleVerifier verifies Google ID tokens.
type GoogleVerifier struct{}

func NewGoogleVerifier() *GoogleVerifier {
	return &GoogleVerifier{}
}

var _ TokenVerifier = (*GoogleVerifier)(nil)

// Verify validates the ID token signature, expiry and audience against
// Google's published keys.
func (v *GoogleVerifier) Verify(ctx context.Context, credential, audience string) (map[string]any, error) {
	payload, err := idtoken.Validate(ctx, credential, audience)
	if err != nil {
		return nil, fmt.Errorf("failed to verify Google ID token: %w", err)
	}
	return payload.Claims, nil
}
