package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trentd187/golf-tour/internal/apperrors"
	"github.com/trentd187/golf-tour/internal/competitions"
	"github.com/trentd187/golf-tour/internal/export"
	"github.com/trentd187/golf-tour/internal/h2z"
	"github.com/trentd187/golf-tour/internal/leaderboard"
	"github.com/trentd187/golf-tour/internal/logging"
	"github.com/trentd187/golf-tour/internal/middleware"
	"github.com/trentd187/golf-tour/internal/models"
	"github.com/trentd187/golf-tour/internal/repository"
	"github.com/trentd187/golf-tour/internal/tour/tourtest"
)

const secret = "handler-secret"

type memSource map[string]*leaderboard.TourData

func (m memSource) LoadTour(_ context.Context, tourID string) (*leaderboard.TourData, error) {
	d, ok := m[tourID]
	if !ok {
		return nil, apperrors.NotFoundf("tour %s not found", tourID)
	}
	return d, nil
}

type tourList struct {
	tours []repository.TourSummary
	err   error
}

func (l tourList) ListTours(context.Context) ([]repository.TourSummary, error) {
	return l.tours, l.err
}

func newTestApp(t *testing.T, lister TourLister) *fiber.App {
	t.Helper()
	in := tourtest.New(tourtest.StandardPars).
		Round("r1", 1).
		Player("a", "Alice", "m").
		Player("b", "Bob", "m").
		Playing("r1", "a", 0).
		Playing("r1", "b", 0).
		Card("r1", "a", tourtest.ParCard(tourtest.StandardPars)).
		Input()
	src := memSource{"t1": {TourID: "t1", Name: "Spring", Input: in, Legs: []h2z.Leg{{LegNo: 1, StartRoundNo: 1, EndRoundNo: 1}}}}
	svc := leaderboard.NewService(src, competitions.NewEngine(competitions.DefaultRegistry()), nil, logging.Discard())

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(logging.Discard())})
	Register(app, Deps{Service: svc, Tours: lister, JWTSecret: secret})
	return app
}

func do(t *testing.T, app *fiber.App, path string, role models.UserRole) (int, []byte, string) {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if role != "" {
		token, err := middleware.IssueToken(secret, "caller", role, time.Hour)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body, resp.Header.Get(fiber.HeaderContentType)
}

func errorOf(t *testing.T, body []byte) string {
	t.Helper()
	var m map[string]string
	require.NoError(t, json.Unmarshal(body, &m))
	return m["error"]
}

func TestHealthCheck(t *testing.T) {
	status, body, _ := do(t, newTestApp(t, tourList{}), "/health", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestAPIRequiresAuth(t *testing.T) {
	status, _, _ := do(t, newTestApp(t, tourList{}), "/api/v1/competitions", "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestListCompetitions(t *testing.T) {
	status, body, _ := do(t, newTestApp(t, tourList{}), "/api/v1/competitions", models.UserRoleUser)
	require.Equal(t, fiber.StatusOK, status)

	var list []leaderboard.CompetitionInfo
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Len(t, list, len(competitions.Catalog()))
}

func TestListTours(t *testing.T) {
	lister := tourList{tours: []repository.TourSummary{{ID: "t1", Name: "Spring"}}}
	status, body, _ := do(t, newTestApp(t, lister), "/api/v1/tours", models.UserRoleUser)
	require.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `[{"id":"t1","name":"Spring"}]`, string(body))

	failing := tourList{err: errors.New("db down")}
	status, body, _ = do(t, newTestApp(t, failing), "/api/v1/tours", models.UserRoleUser)
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "internal server error", errorOf(t, body))
}

func TestTourLeaderboard(t *testing.T) {
	app := newTestApp(t, tourList{})

	status, body, _ := do(t, app, "/api/v1/tours/t1/leaderboards/stableford", models.UserRoleUser)
	require.Equal(t, fiber.StatusOK, status)
	var board leaderboard.Board
	require.NoError(t, json.Unmarshal(body, &board))
	assert.Equal(t, "stableford", board.ID)
	require.Len(t, board.Rows, 2)
	assert.Equal(t, "a", board.Rows[0].EntryID)
	assert.Equal(t, 1, board.Rows[0].Rank)
	assert.Equal(t, 36.0, board.Rows[0].Total)

	status, body, _ = do(t, app, "/api/v1/tours/nope/leaderboards/stableford", models.UserRoleUser)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "tour nope not found", errorOf(t, body))

	status, _, _ = do(t, app, "/api/v1/tours/t1/leaderboards/nope", models.UserRoleUser)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestTourLeaderboards(t *testing.T) {
	status, body, _ := do(t, newTestApp(t, tourList{}), "/api/v1/tours/t1/leaderboards", models.UserRoleUser)
	require.Equal(t, fiber.StatusOK, status)
	var boards []leaderboard.Board
	require.NoError(t, json.Unmarshal(body, &boards))
	assert.NotEmpty(t, boards)
	assert.Equal(t, "stableford", boards[0].ID)
}

func TestRoundLeaderboard(t *testing.T) {
	app := newTestApp(t, tourList{})

	status, body, _ := do(t, app, "/api/v1/tours/t1/rounds/r1/leaderboards/round-stableford", models.UserRoleUser)
	require.Equal(t, fiber.StatusOK, status)
	var board leaderboard.Board
	require.NoError(t, json.Unmarshal(body, &board))
	// Bob has no card, so only Alice is complete.
	require.Len(t, board.Rows, 1)
	assert.Equal(t, "r1", board.RoundID)

	status, _, _ = do(t, app, "/api/v1/tours/t1/rounds/r7/leaderboards/round-stableford", models.UserRoleUser)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestH2ZRoute(t *testing.T) {
	status, body, _ := do(t, newTestApp(t, tourList{}), "/api/v1/tours/t1/h2z", models.UserRoleUser)
	require.Equal(t, fiber.StatusOK, status)
	var hb leaderboard.H2ZBoard
	require.NoError(t, json.Unmarshal(body, &hb))
	require.Len(t, hb.Standings, 2)
	assert.Equal(t, "a", hb.Standings[0].PlayerID)
	assert.Equal(t, 8, hb.Standings[0].FinalScore)
}

func TestExportRequiresManager(t *testing.T) {
	app := newTestApp(t, tourList{})

	status, _, _ := do(t, app, "/api/v1/tours/t1/export", models.UserRoleUser)
	assert.Equal(t, fiber.StatusForbidden, status)

	status, body, ctype := do(t, app, "/api/v1/tours/t1/export", models.UserRoleManager)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, export.ContentType, ctype)
	// xlsx files are zip archives.
	assert.Equal(t, "PK", string(body[:2]))
}
