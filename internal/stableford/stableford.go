// Package stableford converts a single hole's raw score into net Stableford points.
//
// Stableford awards points per hole based on the net score relative to par:
// a net par is worth 2 points, a net birdie 3, a net bogey 1, and anything worse 0.
// Every leaderboard in the tour is built on top of NetPoints, so it must never fail:
// bad or missing input simply scores 0.
package stableford

import (
	"strconv"
	"strings"
)

// MaxPoints bounds the points a single hole can award.
const MaxPoints = 10

// MaxStrokeIndex is the stroke index of the easiest hole on an 18-hole card.
const MaxStrokeIndex = 18

// RawScore is the score exactly as it was entered for one hole.
// It takes one of three forms:
//   - ""   the hole has not been entered yet
//   - "P"  the player picked up (conceded the hole)
//   - "5"  a gross stroke count
type RawScore string

// Pickup is the raw score recorded when a player abandons a hole.
const Pickup RawScore = "P"

// FormatStrokes turns a gross stroke count into its raw score form.
func FormatStrokes(strokes int) RawScore {
	return RawScore(strconv.Itoa(strokes))
}

// IsEntered reports whether anything (strokes or a pickup) was entered for the hole.
func (r RawScore) IsEntered() bool {
	return strings.TrimSpace(string(r)) != ""
}

// IsPickup reports whether the hole was picked up.
func (r RawScore) IsPickup() bool {
	return strings.EqualFold(strings.TrimSpace(string(r)), string(Pickup))
}

// Strokes parses the gross stroke count. ok is false for empty scores, pickups,
// and anything that is not a non-negative integer.
func (r RawScore) Strokes() (strokes int, ok bool) {
	n, err := strconv.Atoi(strings.TrimSpace(string(r)))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// ShotsReceived returns how many handicap strokes a player gets on a hole.
// Every player receives handicap/18 strokes on all holes, plus one more on the
// handicap%18 hardest holes (the lowest stroke indices).
// A handicap of 20 therefore gives 2 strokes on stroke index 1-2 and 1 everywhere else.
// A stroke index outside 1..18 never earns the extra stroke.
func ShotsReceived(handicap, strokeIndex int) int {
	if handicap < 0 {
		handicap = 0
	}
	shots := handicap / 18
	if validStrokeIndex(strokeIndex) && strokeIndex <= handicap%18 {
		shots++
	}
	return shots
}

// NetPoints returns the net Stableford points for one hole, always within [0, MaxPoints].
func NetPoints(raw RawScore, par, strokeIndex, handicap int) int {
	if !raw.IsEntered() || raw.IsPickup() {
		return 0
	}
	gross, ok := raw.Strokes()
	if !ok {
		return 0
	}
	// No par or stroke index on record for this hole: it contributes nothing.
	// Without a stroke index there is no way to know who gets a shot here.
	if par <= 0 || !validStrokeIndex(strokeIndex) {
		return 0
	}

	net := gross - ShotsReceived(handicap, strokeIndex)
	points := 2 + (par - net)
	return clamp(points, 0, MaxPoints)
}

func validStrokeIndex(si int) bool {
	return si >= 1 && si <= MaxStrokeIndex
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
