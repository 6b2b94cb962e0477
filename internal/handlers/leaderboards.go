package handlers

// leaderboards.go: the /api/v1 read routes.
//
// Each exported function follows the "handler factory" pattern: it takes its
// dependencies and returns a fiber.Handler. Errors are returned untouched and
// turned into responses by ErrorHandler.

import (
	"bytes"
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/trentd187/golf-tour/internal/export"
	"github.com/trentd187/golf-tour/internal/leaderboard"
	"github.com/trentd187/golf-tour/internal/repository"
)

// TourLister lists the tours a caller can ask leaderboards for.
type TourLister interface {
	ListTours(ctx context.Context) ([]repository.TourSummary, error)
}

// ListTours handles GET /api/v1/tours.
func ListTours(tours TourLister) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := tours.ListTours(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(list)
	}
}

// ListCompetitions handles GET /api/v1/competitions.
func ListCompetitions(svc *leaderboard.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Competitions())
	}
}

// TourLeaderboards handles GET /api/v1/tours/:tourID/leaderboards.
func TourLeaderboards(svc *leaderboard.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		boards, err := svc.TourLeaderboards(c.UserContext(), c.Params("tourID"))
		if err != nil {
			return err
		}
		return c.JSON(boards)
	}
}

// TourLeaderboard handles GET /api/v1/tours/:tourID/leaderboards/:competitionID.
func TourLeaderboard(svc *leaderboard.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		board, err := svc.TourLeaderboard(c.UserContext(), c.Params("tourID"), c.Params("competitionID"))
		if err != nil {
			return err
		}
		return c.JSON(board)
	}
}

// RoundLeaderboard handles GET /api/v1/tours/:tourID/rounds/:roundID/leaderboards/:competitionID.
func RoundLeaderboard(svc *leaderboard.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		board, err := svc.RoundLeaderboard(c.UserContext(), c.Params("tourID"), c.Params("roundID"), c.Params("competitionID"))
		if err != nil {
			return err
		}
		return c.JSON(board)
	}
}

// H2Z handles GET /api/v1/tours/:tourID/h2z.
func H2Z(svc *leaderboard.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		board, err := svc.H2Z(c.UserContext(), c.Params("tourID"))
		if err != nil {
			return err
		}
		return c.JSON(board)
	}
}

// Export handles GET /api/v1/tours/:tourID/export and returns an xlsx workbook.
func Export(svc *leaderboard.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		snap, err := svc.Snapshot(c.UserContext(), c.Params("tourID"))
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := export.Write(&buf, snap); err != nil {
			return err
		}
		c.Set(fiber.HeaderContentType, export.ContentType)
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="tour-%s.xlsx"`, snap.TourID))
		return c.Send(buf.Bytes())
	}
}
