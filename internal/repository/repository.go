// Package repository reads tours out of the database and flattens them into the
// relational rows the scoring core consumes.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/trentd187/golf-tour/internal/apperrors"
	"github.com/trentd187/golf-tour/internal/competitions"
	"github.com/trentd187/golf-tour/internal/h2z"
	"github.com/trentd187/golf-tour/internal/leaderboard"
	"github.com/trentd187/golf-tour/internal/models"
	"github.com/trentd187/golf-tour/internal/tour"
)

// Store is a gorm-backed leaderboard.Source.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// TourSummary is a tour as listed by ListTours.
type TourSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ListTours returns every tour ordered by name.
func (s *Store) ListTours(ctx context.Context) ([]TourSummary, error) {
	var tours []models.Tour
	if err := s.db.WithContext(ctx).Order("name, id").Find(&tours).Error; err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindInternal, "list tours")
	}
	out := make([]TourSummary, 0, len(tours))
	for _, t := range tours {
		out = append(out, TourSummary{ID: t.ID.String(), Name: t.Name})
	}
	return out, nil
}

// LoadTour reads every row of a tour. A malformed or unknown ID is NotFound.
func (s *Store) LoadTour(ctx context.Context, tourID string) (*leaderboard.TourData, error) {
	id, err := uuid.Parse(tourID)
	if err != nil {
		return nil, apperrors.NotFoundf("tour %s not found", tourID)
	}
	db := s.db.WithContext(ctx)

	var t models.Tour
	if err := db.First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("tour %s not found", tourID)
		}
		return nil, apperrors.Wrap(err, apperrors.KindInternal, "load tour")
	}

	var rounds []models.Round
	if err := db.Where("tour_id = ?", id).Order("created_at, id").Find(&rounds).Error; err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindInternal, "load rounds")
	}
	var players []models.Player
	if err := db.Where("tour_id = ?", id).Order("name, id").Find(&players).Error; err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindInternal, "load players")
	}

	roundIDs := make([]uuid.UUID, 0, len(rounds))
	courseSet := make(map[uuid.UUID]bool)
	courseIDs := []uuid.UUID{}
	for _, r := range rounds {
		roundIDs = append(roundIDs, r.ID)
		if !courseSet[r.CourseID] {
			courseSet[r.CourseID] = true
			courseIDs = append(courseIDs, r.CourseID)
		}
	}

	var (
		assignments []models.RoundPlayer
		scores      []models.Score
		pars        []models.CoursePar
	)
	if len(roundIDs) > 0 {
		if err := db.Where("round_id IN ?", roundIDs).Find(&assignments).Error; err != nil {
			return nil, apperrors.Wrap(err, apperrors.KindInternal, "load round players")
		}
		if err := db.Where("round_id IN ?", roundIDs).Order("round_id, player_id, hole_number").Find(&scores).Error; err != nil {
			return nil, apperrors.Wrap(err, apperrors.KindInternal, "load scores")
		}
		if err := db.Where("course_id IN ?", courseIDs).Order("course_id, tee, hole_number").Find(&pars).Error; err != nil {
			return nil, apperrors.Wrap(err, apperrors.KindInternal, "load course pars")
		}
	}

	var entities []models.TourEntity
	err = db.Where("tour_id = ?", id).
		Preload("Members", func(tx *gorm.DB) *gorm.DB { return tx.Order("position, player_id") }).
		Order("name, id").
		Find(&entities).Error
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindInternal, "load pairs and teams")
	}

	var legs []models.H2ZLeg
	if err := db.Where("tour_id = ?", id).Order("leg_no").Find(&legs).Error; err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindInternal, "load h2z legs")
	}

	return &leaderboard.TourData{
		TourID: t.ID.String(),
		Name:   t.Name,
		Input: tour.Input{
			Rounds:      roundRows(rounds),
			Players:     playerRows(players),
			Assignments: assignmentRows(assignments),
			Scores:      scoreRows(scores),
			Pars:        parRows(pars),
			TeamBestM:   t.TeamBestM,
		},
		Groups: groups(entities),
		Legs:   legRows(legs),
	}, nil
}

func roundRows(rounds []models.Round) []tour.RoundRow {
	out := make([]tour.RoundRow, 0, len(rounds))
	for _, r := range rounds {
		out = append(out, tour.RoundRow{ID: r.ID.String(), CourseID: r.CourseID.String(), RoundNo: r.RoundNo})
	}
	return out
}

func playerRows(players []models.Player) []tour.PlayerRow {
	out := make([]tour.PlayerRow, 0, len(players))
	for _, p := range players {
		out = append(out, tour.PlayerRow{ID: p.ID.String(), Name: p.Name, Gender: p.Gender})
	}
	return out
}

func assignmentRows(rps []models.RoundPlayer) []tour.AssignmentRow {
	out := make([]tour.AssignmentRow, 0, len(rps))
	for _, rp := range rps {
		row := tour.AssignmentRow{
			RoundID:         rp.RoundID.String(),
			PlayerID:        rp.PlayerID.String(),
			Playing:         rp.Playing,
			PlayingHandicap: rp.PlayingHandicap,
		}
		if rp.Tee != nil {
			row.Tee = *rp.Tee
		}
		out = append(out, row)
	}
	return out
}

func scoreRows(scores []models.Score) []tour.ScoreRow {
	out := make([]tour.ScoreRow, 0, len(scores))
	for _, s := range scores {
		out = append(out, tour.ScoreRow{
			RoundID:    s.RoundID.String(),
			PlayerID:   s.PlayerID.String(),
			HoleNumber: s.HoleNumber,
			Strokes:    s.Strokes,
			Pickup:     s.Pickup,
		})
	}
	return out
}

func parRows(pars []models.CoursePar) []tour.ParRow {
	out := make([]tour.ParRow, 0, len(pars))
	for _, p := range pars {
		out = append(out, tour.ParRow{
			CourseID:    p.CourseID.String(),
			HoleNumber:  p.HoleNumber,
			Tee:         p.Tee,
			Par:         p.Par,
			StrokeIndex: p.StrokeIndex,
		})
	}
	return out
}

func groups(entities []models.TourEntity) competitions.Groups {
	var g competitions.Groups
	for _, e := range entities {
		members := make([]string, 0, len(e.Members))
		for _, m := range e.Members {
			members = append(members, m.PlayerID.String())
		}
		switch e.Kind {
		case models.EntityKindPair:
			g.Pairs = append(g.Pairs, competitions.Entity{ID: e.ID.String(), Label: e.Name, Kind: competitions.KindPair, Members: members})
		case models.EntityKindTeam:
			g.Teams = append(g.Teams, competitions.Entity{ID: e.ID.String(), Label: e.Name, Kind: competitions.KindTeam, Members: members})
		}
	}
	return g
}

func legRows(legs []models.H2ZLeg) []h2z.Leg {
	out := make([]h2z.Leg, 0, len(legs))
	for _, l := range legs {
		out = append(out, h2z.Leg{LegNo: l.LegNo, StartRoundNo: l.StartRoundNo, EndRoundNo: l.EndRoundNo})
	}
	return out
}
