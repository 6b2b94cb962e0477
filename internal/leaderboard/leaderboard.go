// Package leaderboard turns stored tour data into ranked leaderboards.
//
// It sits between the data layer (anything implementing Source) and the outer
// surfaces: the HTTP handlers, the xlsx export and the tourctl CLI. Every call
// reloads the tour and rebuilds the context, so results always reflect the
// latest scores.
package leaderboard

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/trentd187/golf-tour/internal/apperrors"
	"github.com/trentd187/golf-tour/internal/competitions"
	"github.com/trentd187/golf-tour/internal/h2z"
	"github.com/trentd187/golf-tour/internal/metrics"
	"github.com/trentd187/golf-tour/internal/ranking"
	"github.com/trentd187/golf-tour/internal/tour"
)

// TourData is everything needed to score one tour.
type TourData struct {
	TourID string
	Name   string
	Input  tour.Input
	Groups competitions.Groups
	Legs   []h2z.Leg
}

// Source loads tour data. A missing tour must be reported as an apperrors NotFound.
type Source interface {
	LoadTour(ctx context.Context, tourID string) (*TourData, error)
}

// CompetitionInfo describes a catalog entry without its compute function.
type CompetitionInfo struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Scope         tour.Scope        `json:"scope"`
	Kind          competitions.Kind `json:"kind"`
	LowerIsBetter bool              `json:"lower_is_better"`
}

// BoardRow is a leaderboard row with its competition rank.
type BoardRow struct {
	Rank int `json:"rank"`
	competitions.Row
}

// Board is one ranked leaderboard.
type Board struct {
	CompetitionInfo
	TourID  string     `json:"tour_id"`
	RoundID string     `json:"round_id,omitempty"`
	Rows    []BoardRow `json:"rows"`
}

// H2ZBoard is the hero-to-zero table of a tour.
type H2ZBoard struct {
	TourID    string         `json:"tour_id"`
	Legs      []h2z.Leg      `json:"legs"`
	Standings []h2z.Standing `json:"standings"`
}

// Snapshot is every tour-scope board plus the H2Z table, as exported.
type Snapshot struct {
	TourID   string
	TourName string
	Boards   []Board
	H2Z      H2ZBoard
}

// Service computes leaderboards on demand.
type Service struct {
	source  Source
	engine  *competitions.Engine
	metrics *metrics.Metrics
	log     logrus.FieldLogger
}

// NewService wires a service. m may be nil.
func NewService(source Source, engine *competitions.Engine, m *metrics.Metrics, log logrus.FieldLogger) *Service {
	return &Service{source: source, engine: engine, metrics: m, log: log}
}

// Competitions lists the catalog in registry order.
func (s *Service) Competitions() []CompetitionInfo {
	defs := s.engine.Registry().All()
	out := make([]CompetitionInfo, 0, len(defs))
	for _, d := range defs {
		out = append(out, infoOf(d))
	}
	return out
}

// TourLeaderboards computes every tour-scope competition. The competitions run
// concurrently against one shared, read-only context; the result keeps catalog order.
func (s *Service) TourLeaderboards(ctx context.Context, tourID string) ([]Board, error) {
	data, err := s.load(ctx, tourID)
	if err != nil {
		return nil, err
	}
	return s.tourBoards(ctx, data, s.buildTour(data))
}

// TourLeaderboard computes one competition over the whole tour.
// A round-scope competition yields an empty board.
func (s *Service) TourLeaderboard(ctx context.Context, tourID, competitionID string) (Board, error) {
	def, err := s.definition(competitionID)
	if err != nil {
		return Board{}, err
	}
	data, err := s.load(ctx, tourID)
	if err != nil {
		return Board{}, err
	}
	return s.run(def, s.buildTour(data), data, ""), nil
}

// RoundLeaderboard computes one competition over a single round.
// A tour-scope competition yields an empty board.
func (s *Service) RoundLeaderboard(ctx context.Context, tourID, roundID, competitionID string) (Board, error) {
	def, err := s.definition(competitionID)
	if err != nil {
		return Board{}, err
	}
	data, err := s.load(ctx, tourID)
	if err != nil {
		return Board{}, err
	}
	rc, ok := tour.BuildRound(data.Input, roundID)
	if !ok {
		return Board{}, apperrors.NotFoundf("round %s not found in tour %s", roundID, tourID)
	}
	s.metrics.ContextBuilt(string(tour.ScopeRound))
	return s.run(def, rc, data, roundID), nil
}

// H2Z scores every configured leg for every playing player.
func (s *Service) H2Z(ctx context.Context, tourID string) (H2ZBoard, error) {
	data, err := s.load(ctx, tourID)
	if err != nil {
		return H2ZBoard{}, err
	}
	return s.h2z(data, s.buildTour(data))
}

// Snapshot computes everything the export needs from a single load.
func (s *Service) Snapshot(ctx context.Context, tourID string) (*Snapshot, error) {
	data, err := s.load(ctx, tourID)
	if err != nil {
		return nil, err
	}
	tc := s.buildTour(data)
	boards, err := s.tourBoards(ctx, data, tc)
	if err != nil {
		return nil, err
	}
	hb, err := s.h2z(data, tc)
	if err != nil {
		return nil, err
	}
	return &Snapshot{TourID: data.TourID, TourName: data.Name, Boards: boards, H2Z: hb}, nil
}

func (s *Service) tourBoards(ctx context.Context, data *TourData, tc *tour.Context) ([]Board, error) {
	defs := s.engine.Registry().ForScope(tour.ScopeTour)
	boards := make([]Board, len(defs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, def := range defs {
		i, def := i, def
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			boards[i] = s.run(def, tc, data, "")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"tour_id": data.TourID, "boards": len(boards)}).Debug("tour leaderboards computed")
	return boards, nil
}

func (s *Service) h2z(data *TourData, tc *tour.Context) (H2ZBoard, error) {
	if err := h2z.ValidateLegs(data.Legs); err != nil {
		return H2ZBoard{}, apperrors.Wrap(err, apperrors.KindValidation, "invalid h2z legs")
	}
	legs := data.Legs
	if legs == nil {
		legs = []h2z.Leg{}
	}
	return H2ZBoard{TourID: data.TourID, Legs: legs, Standings: h2z.Standings(tc, legs)}, nil
}

func (s *Service) load(ctx context.Context, tourID string) (*TourData, error) {
	if tourID == "" {
		return nil, apperrors.Validationf("tour id is required")
	}
	data, err := s.source.LoadTour(ctx, tourID)
	if err != nil {
		return nil, err
	}
	if data.TourID == "" {
		data.TourID = tourID
	}
	return data, nil
}

func (s *Service) definition(id string) (competitions.Definition, error) {
	def, ok := s.engine.Registry().Get(id)
	if !ok {
		return competitions.Definition{}, apperrors.NotFoundf("competition %s not found", id)
	}
	return def, nil
}

func (s *Service) buildTour(data *TourData) *tour.Context {
	s.metrics.ContextBuilt(string(tour.ScopeTour))
	return tour.BuildTour(data.Input)
}

func (s *Service) run(def competitions.Definition, tc *tour.Context, data *TourData, roundID string) Board {
	start := time.Now()
	res := s.engine.Run(def, tc, data.Groups)
	s.metrics.ObserveCompetition(def.ID, time.Since(start), len(res.Rows))
	return Board{
		CompetitionInfo: infoOf(def),
		TourID:          data.TourID,
		RoundID:         roundID,
		Rows:            rankRows(res),
	}
}

// rankRows attaches competition ranks by Total. Row order is the engine's order.
func rankRows(res competitions.Result) []BoardRow {
	entries := make([]ranking.Entry, len(res.Rows))
	for i, r := range res.Rows {
		entries[i] = ranking.Entry{ID: r.EntryID, Value: r.Total}
	}
	ranks := ranking.ByID(ranking.Rank(entries, res.LowerIsBetter))

	out := make([]BoardRow, len(res.Rows))
	for i, r := range res.Rows {
		out[i] = BoardRow{Rank: ranks[r.EntryID], Row: r}
	}
	return out
}

func infoOf(d competitions.Definition) CompetitionInfo {
	return CompetitionInfo{
		ID:            d.ID,
		Name:          d.Name,
		Description:   d.Description,
		Scope:         d.Scope,
		Kind:          d.Kind,
		LowerIsBetter: d.LowerIsBetter,
	}
}
