package routes_test

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func generateTestToken(secret string, expiration time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"email": "tester@example.com",
		"iat":   now.Unix(),
		"exp":   now.Add(expiration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
