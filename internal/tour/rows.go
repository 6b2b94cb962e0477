// Package tour builds the read-only scoring context that every competition walks.
//
// The data-access layer hands over flat, relational rows (rounds, players,
// per-round assignments, hole scores and course pars). The builder in this package
// normalizes them once into per-round lookup tables so competitions can ask simple
// questions: "what did this player score on hole 7 of round 2, and what par was it
// for their tee?"
package tour

import "strings"

// HolesPerRound is the number of holes on every course the tour plays.
const HolesPerRound = 18

// DefaultTeamBestM is the team aggregation width used when a tour does not set one.
const DefaultTeamBestM = 2

// Tee identifies which set of pars and stroke indices applies to a player.
type Tee string

const (
	TeeM Tee = "M" // Men's tees; also the default when nothing else is known
	TeeF Tee = "F" // Women's tees
)

// ParseTee maps a stored tee value onto a Tee. ok is false for unknown values.
func ParseTee(s string) (Tee, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "M":
		return TeeM, true
	case "F":
		return TeeF, true
	default:
		return "", false
	}
}

// TeeForGender picks the tee a player uses when no explicit tee was assigned.
func TeeForGender(gender string) Tee {
	switch strings.ToLower(strings.TrimSpace(gender)) {
	case "f", "female", "w", "women", "womens":
		return TeeF
	default:
		return TeeM
	}
}

// other returns the fallback tee tried when a course has no data for t.
func (t Tee) other() Tee {
	if t == TeeF {
		return TeeM
	}
	return TeeF
}

// --- Input rows ---
// These are the shapes the data layer must deliver. Anything that does not fit
// (unknown tee, hole number out of range) is normalized or dropped at build time.

// RoundRow is one round of the tour, played on a single course.
type RoundRow struct {
	ID       string
	CourseID string
	RoundNo  *int // Optional; when nil the round's 1-based position in the input is used
}

// PlayerRow is one member of the tour roster.
type PlayerRow struct {
	ID     string
	Name   string // Display label; the ID is used when empty
	Gender string
}

// AssignmentRow records whether a player is playing in a round and with what handicap.
type AssignmentRow struct {
	RoundID         string
	PlayerID        string
	Playing         bool
	PlayingHandicap *int   // nil means 0
	Tee             string // Optional explicit tee ("M" or "F")
}

// ScoreRow is one hole score. A pickup wins over any stroke count on the same row.
type ScoreRow struct {
	RoundID    string
	PlayerID   string
	HoleNumber int
	Strokes    *int
	Pickup     bool
}

// ParRow is the par and stroke index of one hole for one tee of a course.
type ParRow struct {
	CourseID    string
	HoleNumber  int
	Tee         string
	Par         int
	StrokeIndex int
}

// Input bundles every row needed to build a Context.
type Input struct {
	Rounds      []RoundRow
	Players     []PlayerRow
	Assignments []AssignmentRow
	Scores      []ScoreRow
	Pars        []ParRow
	TeamBestM   int
}
