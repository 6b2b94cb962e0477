// Package fixture loads a whole tour from a YAML file, so leaderboards can be
// computed without a database (the tourctl CLI and tests use it).
//
// Cards are written one round per line, holes separated by spaces:
//
//	"4 5 3 P - 4 ..."   P is a pickup, - leaves the hole unentered
package fixture

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/trentd187/golf-tour/internal/apperrors"
	"github.com/trentd187/golf-tour/internal/competitions"
	"github.com/trentd187/golf-tour/internal/h2z"
	"github.com/trentd187/golf-tour/internal/leaderboard"
	"github.com/trentd187/golf-tour/internal/tour"
)

// File is the YAML document shape.
type File struct {
	Tour struct {
		ID        string `yaml:"id"`
		Name      string `yaml:"name"`
		TeamBestM int    `yaml:"team_best_m"`
	} `yaml:"tour"`
	Courses     []Course     `yaml:"courses"`
	Rounds      []Round      `yaml:"rounds"`
	Players     []Player     `yaml:"players"`
	Assignments []Assignment `yaml:"assignments"`
	Cards       []Card       `yaml:"cards"`
	Pairs       []Group      `yaml:"pairs"`
	Teams       []Group      `yaml:"teams"`
	Legs        []h2z.Leg    `yaml:"h2z_legs"`
}

type Course struct {
	ID   string         `yaml:"id"`
	Tees map[string]Tee `yaml:"tees"`
}

// Tee lists par and stroke index for holes 1-18 in order.
type Tee struct {
	Pars        []int `yaml:"pars"`
	StrokeIndex []int `yaml:"stroke_index"`
}

type Round struct {
	ID      string `yaml:"id"`
	RoundNo *int   `yaml:"round_no"`
	Course  string `yaml:"course"`
}

type Player struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Gender string `yaml:"gender"`
}

type Assignment struct {
	Round    string `yaml:"round"`
	Player   string `yaml:"player"`
	Playing  *bool  `yaml:"playing"` // Defaults to true
	Handicap *int   `yaml:"handicap"`
	Tee      string `yaml:"tee"`
}

type Card struct {
	Round  string `yaml:"round"`
	Player string `yaml:"player"`
	Scores string `yaml:"scores"`
}

type Group struct {
	ID      string   `yaml:"id"`
	Name    string   `yaml:"name"`
	Members []string `yaml:"members"`
}

// LoadFile reads and converts a fixture file.
func LoadFile(path string) (*leaderboard.TourData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixture: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a fixture document. Unknown keys are rejected.
func Parse(r io.Reader) (*leaderboard.TourData, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc File
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return doc.TourData()
}

// TourData converts the document into the rows the scoring core consumes.
func (doc *File) TourData() (*leaderboard.TourData, error) {
	if doc.Tour.ID == "" {
		return nil, fmt.Errorf("fixture: tour.id is required")
	}
	in := tour.Input{TeamBestM: doc.Tour.TeamBestM}

	for _, c := range doc.Courses {
		for tee, t := range c.Tees {
			if len(t.StrokeIndex) != 0 && len(t.StrokeIndex) != len(t.Pars) {
				return nil, fmt.Errorf("fixture: course %s tee %s has %d pars and %d stroke indexes", c.ID, tee, len(t.Pars), len(t.StrokeIndex))
			}
			for i, par := range t.Pars {
				si := i + 1
				if len(t.StrokeIndex) > 0 {
					si = t.StrokeIndex[i]
				}
				in.Pars = append(in.Pars, tour.ParRow{CourseID: c.ID, HoleNumber: i + 1, Tee: tee, Par: par, StrokeIndex: si})
			}
		}
	}
	for _, r := range doc.Rounds {
		in.Rounds = append(in.Rounds, tour.RoundRow{ID: r.ID, CourseID: r.Course, RoundNo: r.RoundNo})
	}
	for _, p := range doc.Players {
		in.Players = append(in.Players, tour.PlayerRow{ID: p.ID, Name: p.Name, Gender: p.Gender})
	}
	for _, a := range doc.Assignments {
		playing := a.Playing == nil || *a.Playing
		in.Assignments = append(in.Assignments, tour.AssignmentRow{
			RoundID: a.Round, PlayerID: a.Player, Playing: playing, PlayingHandicap: a.Handicap, Tee: a.Tee,
		})
	}
	for _, c := range doc.Cards {
		rows, err := ParseCard(c.Round, c.Player, c.Scores)
		if err != nil {
			return nil, err
		}
		in.Scores = append(in.Scores, rows...)
	}

	return &leaderboard.TourData{
		TourID: doc.Tour.ID,
		Name:   doc.Tour.Name,
		Input:  in,
		Groups: competitions.Groups{
			Pairs: entities(doc.Pairs, competitions.KindPair),
			Teams: entities(doc.Teams, competitions.KindTeam),
		},
		Legs: doc.Legs,
	}, nil
}

// ParseCard turns a space-separated card into score rows numbered from hole 1.
func ParseCard(roundID, playerID, card string) ([]tour.ScoreRow, error) {
	fields := strings.Fields(card)
	if len(fields) > tour.HolesPerRound {
		return nil, fmt.Errorf("fixture: card for %s in %s has %d holes", playerID, roundID, len(fields))
	}
	var rows []tour.ScoreRow
	for i, f := range fields {
		row := tour.ScoreRow{RoundID: roundID, PlayerID: playerID, HoleNumber: i + 1}
		switch {
		case f == "-":
			continue
		case strings.EqualFold(f, "P"):
			row.Pickup = true
		default:
			n, err := strconv.Atoi(f)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("fixture: card for %s in %s: bad score %q on hole %d", playerID, roundID, f, i+1)
			}
			row.Strokes = &n
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func entities(groups []Group, kind competitions.Kind) []competitions.Entity {
	out := make([]competitions.Entity, 0, len(groups))
	for _, g := range groups {
		label := g.Name
		if label == "" {
			label = g.ID
		}
		out = append(out, competitions.Entity{ID: g.ID, Label: label, Kind: kind, Members: g.Members})
	}
	return out
}

// Source serves a single loaded tour as a leaderboard.Source.
type Source struct {
	data *leaderboard.TourData
}

func NewSource(data *leaderboard.TourData) *Source {
	return &Source{data: data}
}

// LoadTour returns a copy of the fixture's tour when the ID matches.
func (s *Source) LoadTour(_ context.Context, tourID string) (*leaderboard.TourData, error) {
	if s.data == nil || tourID != s.data.TourID {
		return nil, apperrors.NotFoundf("tour %s not found", tourID)
	}
	cp := *s.data
	return &cp, nil
}
