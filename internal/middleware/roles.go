package middleware

// roles.go: role-based access control middleware.
// The API has three roles: admin, manager, user.

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trentd187/golf-tour/internal/models"
)

// RequireRole returns a middleware handler that allows only callers whose role
// matches one of the provided roles. Returns HTTP 403 Forbidden otherwise.
//
//	api.Get("/tours/:tourID/export", middleware.RequireRole(models.UserRoleAdmin, models.UserRoleManager), h.Export)
//
// RequireRole must be used AFTER the Auth middleware, because Auth is what
// populates the "userRole" value in the request context via c.Locals.
func RequireRole(roles ...models.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userRole, ok := c.Locals("userRole").(string)
		if !ok || userRole == "" {
			// Auth was not applied or failed silently.
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "forbidden",
			})
		}

		for _, role := range roles {
			if userRole == string(role) {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "insufficient permissions",
		})
	}
}
