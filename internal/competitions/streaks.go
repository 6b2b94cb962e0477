package competitions

import (
	"github.com/trentd187/golf-tour/internal/tour"
)

// holeOutcome classifies one hole for streak purposes.
type holeOutcome int

const (
	holeBreaks  holeOutcome = iota // ends the current run
	holeExtends                    // continues (or starts) a run
)

// streakRule decides whether a hole extends a run, given the raw gross score
// (ok=false for pickups and unentered holes), whether it was a pickup, and the par.
type streakRule func(gross int, ok, pickup bool, par int) holeOutcome

// hotHole extends on gross par or better. Pickups and unentered holes break.
func hotHole(gross int, ok, _ bool, par int) holeOutcome {
	if ok && gross <= par {
		return holeExtends
	}
	return holeBreaks
}

// coldHole extends on gross bogey or worse; a pickup counts as worse than bogey.
func coldHole(gross int, ok, pickup bool, par int) holeOutcome {
	if pickup || (ok && gross >= par+1) {
		return holeExtends
	}
	return holeBreaks
}

// streak is the longest run found for a player.
type streak struct {
	length    int
	roundNo   int
	startHole int // 1-based
	endHole   int // 1-based
}

// bestStreakInRound scans holes 1..18 and returns the longest run. When two runs
// have the same length the earlier one is kept.
func bestStreakInRound(rc *tour.RoundContext, playerID string, rule streakRule) streak {
	best := streak{roundNo: rc.RoundNo}
	run, start := 0, 0
	for i := 0; i < tour.HolesPerRound; i++ {
		par := rc.ParForPlayerHole(playerID, i)
		raw := rc.RawScore(playerID, i)
		gross, ok := raw.Strokes()
		if par <= 0 || rule(gross, ok, raw.IsPickup(), par) == holeBreaks {
			run = 0
			continue
		}
		if run == 0 {
			start = i + 1
		}
		run++
		if run > best.length {
			best = streak{length: run, roundNo: rc.RoundNo, startHole: start, endHole: i + 1}
		}
	}
	return best
}

// longestStreak ranks players by their longest run across all rounds they played.
// Ties between rounds go to the earlier round, then the earlier starting hole.
func longestStreak(rule streakRule) func(Input) []Row {
	return func(in Input) []Row {
		rows := make([]Row, 0, len(in.Players))
		for _, p := range in.Players {
			row := newRow(p)
			var best streak
			for _, rc := range in.Context.Rounds {
				if !rc.IsPlaying(p.ID) {
					continue
				}
				s := bestStreakInRound(rc, p.ID, rule)
				if s.length > best.length {
					best = s
				}
			}
			row.Total = float64(best.length)
			row.Stats["round_no"] = best.roundNo
			row.Stats["start_hole"] = best.startHole
			row.Stats["end_hole"] = best.endHole
			rows = append(rows, row)
		}
		return rows
	}
}
