// Package handlers contains the HTTP route handler functions for the Golf Tour API.
// Each handler corresponds to one API endpoint and is responsible for reading the
// request, calling the leaderboard service, and writing a response.
package handlers

import "github.com/gofiber/fiber/v2"

// HealthCheck handles GET /health.
// It returns a simple JSON response indicating the server is alive and reachable.
// No database queries, no authentication; it is meant for liveness probes and
// load balancer checks.
func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
