// Package middleware provides HTTP middleware components for the application.
// It authenticates analysts from bearer tokens and enforces permissions.
package middleware

import (
	"errors"
	"log"
	"strings"

	"fraudtriage/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates analyst JWTs signed with a shared HS256 secret.
type AuthMiddleware struct {
	secret []byte
}

func NewAuthMiddleware(secret string) *AuthMiddleware {
	return &AuthMiddleware{secret: []byte(secret)}
}

// Handler validates the bearer token and stores the claims in c.Locals("claims").
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authorization header"})
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid authorization format"})
	}

	claims, err := m.Parse(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		log.Printf("Token validation error: %v", err)
		if errors.Is(err, jwt.ErrTokenExpired) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "session expired"})
		}
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
	}

	c.Locals("claims", claims)
	c.Locals("analystID", claims.AnalystID)

	return c.Next()
}

// Parse verifies a token string and returns its analyst claims.
func (m *AuthMiddleware) Parse(tokenString string) (*models.AnalystClaims, error) {
	claims := &models.AnalystClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.AnalystID == "" {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}

// HasPermission returns a middleware that checks for a specific permission.
func HasPermission(permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals("claims").(*models.AnalystClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}

		if claims.Role == "admin" || claims.HasPermission(permission) {
			return c.Next()
		}

		log.Printf("Analyst %s denied %s", claims.AnalystID, permission)
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Insufficient permissions"})
	}
}
