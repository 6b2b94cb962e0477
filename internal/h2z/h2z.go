// Package h2z scores "hero to zero" legs: a running total of points on par 3s
// across a span of rounds that drops back to zero whenever a par 3 scores nothing.
//
// Unlike the catalog competitions this is a stateful, order-sensitive scan, so it
// lives outside the competition engine. Each leg reports two different numbers:
// the final running total when the leg ends, and the best run seen along the way.
package h2z

import (
	"fmt"
	"sort"

	"github.com/trentd187/golf-tour/internal/tour"
)

// LegPar is the only par that takes part in a leg.
const LegPar = 3

// Leg is a contiguous, inclusive span of round numbers.
type Leg struct {
	LegNo        int `json:"leg_no" yaml:"leg_no"`
	StartRoundNo int `json:"start_round_no" yaml:"start_round_no"`
	EndRoundNo   int `json:"end_round_no" yaml:"end_round_no"`
}

// Contains reports whether a round number falls inside the leg.
func (l Leg) Contains(roundNo int) bool {
	return roundNo >= l.StartRoundNo && roundNo <= l.EndRoundNo
}

// Result is one player's outcome for one leg.
type Result struct {
	PlayerID   string `json:"player_id"`
	LegNo      int    `json:"leg_no"`
	FinalScore int    `json:"final_score"` // Running total at the end of the leg
	BestScore  int    `json:"best_score"`  // Highest running total reached
	BestLen    int    `json:"best_len"`    // Holes in the best run

	BestStartRoundNo int `json:"best_start_round_no"`
	BestEndRoundNo   int `json:"best_end_round_no"`
	BestStartHoleNo  int `json:"best_start_hole_no"`
	BestEndHoleNo    int `json:"best_end_hole_no"`
}

// ScoreLeg runs the reset-on-zero scan for one player over one leg.
//
// Rounds the player is not playing are skipped without touching the running
// state. Only par-3 holes are considered. A par 3 scoring 0 resets the run; any
// other score extends it, and a new peak is recorded whenever the running total
// strictly exceeds the best so far.
func ScoreLeg(ctx *tour.Context, playerID string, leg Leg) Result {
	res := Result{PlayerID: playerID, LegNo: leg.LegNo}
	if ctx == nil {
		return res
	}

	// The scan carries a small amount of state from hole to hole:
	//   current, currentLen    the running total and how many par 3s it spans
	//   startRound, startHole  where the current run began (1-based hole number)
	// res holds the best run seen so far and is only updated on a new peak.
	current, currentLen := 0, 0
	startRound, startHole := 0, 0

	for _, rc := range ctx.Rounds {
		// Rounds outside the leg, or rounds the player sat out, leave the run untouched.
		if !leg.Contains(rc.RoundNo) || !rc.IsPlaying(playerID) {
			continue
		}
		for i := 0; i < tour.HolesPerRound; i++ {
			if rc.ParForPlayerHole(playerID, i) != LegPar {
				continue
			}
			points := rc.NetPointsForHole(playerID, i)
			// Zero points (a blob, pickup or unplayed hole): back to zero.
			if points <= 0 {
				current, currentLen = 0, 0
				startRound, startHole = 0, 0
				continue
			}
			// First scoring par 3 of a fresh run: remember where it started.
			if currentLen == 0 {
				startRound, startHole = rc.RoundNo, i+1
			}
			current += points
			currentLen++
			// Strictly greater, so an equal run later on never replaces an earlier peak.
			if current > res.BestScore {
				res.BestScore = current
				res.BestLen = currentLen
				res.BestStartRoundNo, res.BestStartHoleNo = startRound, startHole
				res.BestEndRoundNo, res.BestEndHoleNo = rc.RoundNo, i+1
			}
		}
	}

	// Whatever is left running at the end of the leg is the final score.
	res.FinalScore = current
	return res
}

// Standing is one row of the H2Z table: a player and their result on a leg.
type Standing struct {
	Result
	Label string `json:"label"`
}

// Standings scores every roster player on every leg. Rows are grouped by leg
// and ordered by final score, then best score, then label.
func Standings(ctx *tour.Context, legs []Leg) []Standing {
	if ctx == nil {
		return []Standing{}
	}
	out := make([]Standing, 0, len(legs)*len(ctx.Players))
	for _, leg := range legs {
		for _, p := range ctx.Players {
			if !p.Playing {
				continue
			}
			out = append(out, Standing{Result: ScoreLeg(ctx, p.ID, leg), Label: p.Label})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.LegNo != b.LegNo {
			return a.LegNo < b.LegNo
		}
		if a.FinalScore != b.FinalScore {
			return a.FinalScore > b.FinalScore
		}
		if a.BestScore != b.BestScore {
			return a.BestScore > b.BestScore
		}
		if a.Label != b.Label {
			return a.Label < b.Label
		}
		return a.PlayerID < b.PlayerID
	})
	return out
}

// ValidateLegs checks leg configuration: leg numbers are unique and every leg's
// start round is not after its end round.
func ValidateLegs(legs []Leg) error {
	seen := make(map[int]bool, len(legs))
	for _, l := range legs {
		if seen[l.LegNo] {
			return fmt.Errorf("duplicate h2z leg %d", l.LegNo)
		}
		seen[l.LegNo] = true
		if l.StartRoundNo > l.EndRoundNo {
			return fmt.Errorf("h2z leg %d starts at round %d after it ends at round %d", l.LegNo, l.StartRoundNo, l.EndRoundNo)
		}
	}
	return nil
}
