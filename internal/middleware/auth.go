// Package middleware contains HTTP middleware functions for the Golf Tour API.
// Middleware sits between the HTTP server and route handlers. It runs on every
// request that passes through it, making it the right place for cross-cutting
// concerns like authentication and role checks.
package middleware

import (
	"errors"
	"strings"
	"time"

	// fiber is the HTTP framework; fiber.Handler is the function signature for middleware
	"github.com/gofiber/fiber/v2"
	// jwt is used to parse and verify JSON Web Tokens (JWTs) from the Authorization header
	"github.com/golang-jwt/jwt/v5"

	"github.com/trentd187/golf-tour/internal/models"
)

// Claims defines the data we expect inside a token payload.
// Subject is the caller's ID; Role is one of "admin", "manager" or "user".
type Claims struct {
	jwt.RegisteredClaims        // Standard JWT fields: Subject, ExpiresAt, IssuedAt, etc.
	Role                 string `json:"role"`
}

// Auth returns a Fiber middleware handler that:
//  1. Reads the JWT from the "Authorization: Bearer <token>" header
//  2. Verifies its HS256 signature against secret and checks expiry
//  3. Stores the caller's ID and role in the request context (c.Locals)
//     so downstream handlers can read them without re-parsing the token
func Auth(secret string) fiber.Handler {
	key := []byte(secret)
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing or invalid authorization header",
			})
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		claims := &Claims{}
		_, err := parser.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (any, error) {
			return key, nil
		})
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "token expired"
			}
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": msg})
		}

		if claims.Subject == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "token missing subject",
			})
		}

		// c.Locals is a key-value store scoped to this single request.
		c.Locals("userID", claims.Subject)
		c.Locals("userRole", string(roleFromClaim(claims.Role)))
		return c.Next()
	}
}

// IssueToken signs an HS256 token for subject with the given role. A ttl of zero
// produces a token without an expiry.
func IssueToken(secret, subject string, role models.UserRole, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  subject,
			IssuedAt: jwt.NewNumericDate(now),
		},
		Role: string(role),
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// roleFromClaim converts the raw role string from the JWT into our typed UserRole enum.
// If the claim is missing or unrecognised, it defaults to "user" (least privileged).
func roleFromClaim(s string) models.UserRole {
	switch models.UserRole(strings.ToLower(strings.TrimSpace(s))) {
	case models.UserRoleAdmin:
		return models.UserRoleAdmin
	case models.UserRoleManager:
		return models.UserRoleManager
	default:
		return models.UserRoleUser
	}
}
