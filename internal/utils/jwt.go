package utils

import (
	"errors"
	"time"

	"fraudtriage/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "fraudtriage-api"

// GenerateAnalystToken signs an HS256 access token for an analyst.
func GenerateAnalystToken(analystID, role, secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("JWT secret not configured")
	}
	if analystID == "" {
		return "", errors.New("analyst ID is required")
	}

	now := time.Now()
	claims := models.AnalystClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   analystID,
		},
		AnalystID:   analystID,
		Role:        role,
		Permissions: models.GetDefaultPermissions(role),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
