package competitions

import (
	"github.com/trentd187/golf-tour/internal/tour"
)

// computeStableford sums every entered hole in every round the player is playing.
// Unfinished rounds count as far as they go so live leaderboards move during play.
func computeStableford(in Input) []Row {
	rows := make([]Row, 0, len(in.Players))
	for _, p := range in.Players {
		row := newRow(p)
		var front, back, holes, rounds int
		for _, rc := range in.Context.Rounds {
			if !rc.IsPlaying(p.ID) {
				continue
			}
			rounds++
			for i := 0; i < tour.HolesPerRound; i++ {
				if rc.RawScore(p.ID, i).IsEntered() {
					holes++
				}
			}
			f, b := nines(rc.RoundPoints(p.ID))
			front += f
			back += b
		}
		row.Total = float64(front + back)
		row.Front9 = float64(front)
		row.Back9 = float64(back)
		row.Stats["rounds"] = rounds
		row.Stats["holes"] = holes
		rows = append(rows, row)
	}
	return rows
}

// averageByPar averages points over holes whose tee-specific par equals par,
// counting finished rounds only.
func averageByPar(par int) func(Input) []Row {
	return func(in Input) []Row {
		rows := make([]Row, 0, len(in.Players))
		for _, p := range in.Players {
			row := newRow(p)
			points, holes := 0, 0
			for _, rc := range in.Context.Rounds {
				if !counts(rc, p.ID) {
					continue
				}
				for i := 0; i < tour.HolesPerRound; i++ {
					if rc.ParForPlayerHole(p.ID, i) != par {
						continue
					}
					points += rc.NetPointsForHole(p.ID, i)
					holes++
				}
			}
			if holes > 0 {
				row.Total = round2(float64(points) / float64(holes))
			}
			row.Stats["holes"] = holes
			row.Stats["points"] = points
			rows = append(rows, row)
		}
		return rows
	}
}

// percentageOfHoles reports the share of holes, over finished rounds, whose points
// satisfy hit, as a percentage with two decimals.
func percentageOfHoles(hit func(points int) bool) func(Input) []Row {
	return func(in Input) []Row {
		rows := make([]Row, 0, len(in.Players))
		for _, p := range in.Players {
			row := newRow(p)
			hits, holes := 0, 0
			for _, rc := range in.Context.Rounds {
				if !counts(rc, p.ID) {
					continue
				}
				for i := 0; i < tour.HolesPerRound; i++ {
					holes++
					if hit(rc.NetPointsForHole(p.ID, i)) {
						hits++
					}
				}
			}
			if holes > 0 {
				row.Total = round2(100 * float64(hits) / float64(holes))
			}
			row.Stats["holes"] = holes
			row.Stats["hits"] = hits
			rows = append(rows, row)
		}
		return rows
	}
}

// computeEclectic keeps the best points on each hole across finished rounds.
// A hole never scored contributes 0.
func computeEclectic(in Input) []Row {
	rows := make([]Row, 0, len(in.Players))
	for _, p := range in.Players {
		row := newRow(p)
		var best [tour.HolesPerRound]int
		rounds := 0
		for _, rc := range in.Context.Rounds {
			if !counts(rc, p.ID) {
				continue
			}
			rounds++
			for i, pts := range rc.RoundPoints(p.ID) {
				if pts > best[i] {
					best[i] = pts
				}
			}
		}
		front, back := nines(best)
		row.Total = float64(front + back)
		row.Front9 = float64(front)
		row.Back9 = float64(back)
		row.Stats["rounds"] = rounds
		row.Stats["holes"] = best[:]
		rows = append(rows, row)
	}
	return rows
}

// holeRangeAverage averages, across finished rounds, the points scored on holes
// first..last (1-based, inclusive) in each round.
func holeRangeAverage(first, last int) func(Input) []Row {
	return func(in Input) []Row {
		rows := make([]Row, 0, len(in.Players))
		for _, p := range in.Players {
			row := newRow(p)
			points, rounds := 0, 0
			for _, rc := range in.Context.Rounds {
				if !counts(rc, p.ID) {
					continue
				}
				rounds++
				for hole := first; hole <= last; hole++ {
					points += rc.NetPointsForHole(p.ID, hole-1)
				}
			}
			if rounds > 0 {
				row.Total = round2(float64(points) / float64(rounds))
			}
			row.Stats["rounds"] = rounds
			row.Stats["points"] = points
			rows = append(rows, row)
		}
		return rows
	}
}
