package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trentd187/golf-tour/internal/leaderboard"
	"github.com/trentd187/golf-tour/internal/middleware"
	"github.com/trentd187/golf-tour/internal/models"
)

// Deps bundles what the routes need.
type Deps struct {
	Service   *leaderboard.Service
	Tours     TourLister
	JWTSecret string
}

// Register mounts the health check and the authenticated /api/v1 routes.
//
// Route group pattern: app.Group(prefix, middlewares...) applies the middleware
// to every route registered on the returned group.
func Register(app *fiber.App, d Deps) {
	app.Get("/health", HealthCheck)

	api := app.Group("/api/v1", middleware.Auth(d.JWTSecret))
	api.Get("/competitions", ListCompetitions(d.Service))
	api.Get("/tours", ListTours(d.Tours))
	api.Get("/tours/:tourID/leaderboards", TourLeaderboards(d.Service))
	api.Get("/tours/:tourID/leaderboards/:competitionID", TourLeaderboard(d.Service))
	api.Get("/tours/:tourID/rounds/:roundID/leaderboards/:competitionID", RoundLeaderboard(d.Service))
	api.Get("/tours/:tourID/h2z", H2Z(d.Service))
	api.Get("/tours/:tourID/export",
		middleware.RequireRole(models.UserRoleAdmin, models.UserRoleManager),
		Export(d.Service))
}
