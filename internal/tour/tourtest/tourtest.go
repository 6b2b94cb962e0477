// Package tourtest builds tour.Input values for tests without spelling out
// every relational row by hand.
package tourtest

import (
	"strconv"
	"strings"

	"github.com/trentd187/golf-tour/internal/tour"
)

// CourseID is the course every round built by Builder is played on.
const CourseID = "course-1"

// StandardPars is a par-72 layout: four par 3s (holes 3, 7, 12, 16) and four par 5s.
var StandardPars = [tour.HolesPerRound]int{4, 5, 3, 4, 4, 5, 3, 4, 4, 4, 5, 3, 4, 4, 5, 3, 4, 4}

// Builder accumulates rows for a tour played on a single course whose stroke
// index equals the hole number.
type Builder struct {
	in tour.Input
}

// New starts a builder with men's pars for CourseID.
func New(pars [tour.HolesPerRound]int) *Builder {
	b := &Builder{}
	b.Pars("M", pars)
	return b
}

// Pars adds a par table for a tee. Stroke index equals the hole number.
func (b *Builder) Pars(tee string, pars [tour.HolesPerRound]int) *Builder {
	for i, p := range pars {
		b.in.Pars = append(b.in.Pars, tour.ParRow{
			CourseID:    CourseID,
			HoleNumber:  i + 1,
			Tee:         tee,
			Par:         p,
			StrokeIndex: i + 1,
		})
	}
	return b
}

// Round adds a numbered round on CourseID.
func (b *Builder) Round(id string, no int) *Builder {
	n := no
	b.in.Rounds = append(b.in.Rounds, tour.RoundRow{ID: id, CourseID: CourseID, RoundNo: &n})
	return b
}

// Player adds a roster entry.
func (b *Builder) Player(id, name, gender string) *Builder {
	b.in.Players = append(b.in.Players, tour.PlayerRow{ID: id, Name: name, Gender: gender})
	return b
}

// Playing marks a player as playing a round with the given handicap.
func (b *Builder) Playing(roundID, playerID string, handicap int) *Builder {
	h := handicap
	b.in.Assignments = append(b.in.Assignments, tour.AssignmentRow{
		RoundID: roundID, PlayerID: playerID, Playing: true, PlayingHandicap: &h,
	})
	return b
}

// NotPlaying records an explicit playing=false assignment.
func (b *Builder) NotPlaying(roundID, playerID string) *Builder {
	b.in.Assignments = append(b.in.Assignments, tour.AssignmentRow{RoundID: roundID, PlayerID: playerID})
	return b
}

// Card adds hole scores from a space separated card such as
// "4 5 3 P - 4 ..." where "P" is a pickup and "-" leaves the hole unentered.
// Holes are numbered from 1 in the order given.
func (b *Builder) Card(roundID, playerID, card string) *Builder {
	for i, f := range strings.Fields(card) {
		row := tour.ScoreRow{RoundID: roundID, PlayerID: playerID, HoleNumber: i + 1}
		switch f {
		case "-":
			continue
		case "P", "p":
			row.Pickup = true
		default:
			n, err := strconv.Atoi(f)
			if err != nil {
				continue
			}
			row.Strokes = &n
		}
		b.in.Scores = append(b.in.Scores, row)
	}
	return b
}

// ParCard is a card where every hole is played in exactly par strokes.
func ParCard(pars [tour.HolesPerRound]int) string {
	fields := make([]string, len(pars))
	for i, p := range pars {
		fields[i] = strconv.Itoa(p)
	}
	return strings.Join(fields, " ")
}

// TeamBestM sets the tour's team aggregation width.
func (b *Builder) TeamBestM(m int) *Builder {
	b.in.TeamBestM = m
	return b
}

// Input returns the accumulated rows.
func (b *Builder) Input() tour.Input {
	return b.in
}
