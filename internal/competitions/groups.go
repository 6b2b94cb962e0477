package competitions

import (
	"sort"

	"github.com/trentd187/golf-tour/internal/tour"
)

// holeAggregate combines the points of the members playing a hole into one
// entity score. m is the tour's team aggregation width.
type holeAggregate func(points []int, m int) int

func bestBall(points []int, _ int) int {
	best := 0
	for _, p := range points {
		if p > best {
			best = p
		}
	}
	return best
}

func aggregate(points []int, _ int) int {
	sum := 0
	for _, p := range points {
		sum += p
	}
	return sum
}

// bestMMinusZeros sums the top m scores on a hole and takes one point off for
// every member who scored zero there.
func bestMMinusZeros(points []int, m int) int {
	sorted := make([]int, len(points))
	copy(sorted, points)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	sum, zeros := 0, 0
	for i, p := range sorted {
		if i < m {
			sum += p
		}
		if p == 0 {
			zeros++
		}
	}
	return sum - zeros
}

// groupRoundCounts reports whether a round contributes to a pair or team: at
// least one member plays it and every member is complete in it.
func groupRoundCounts(rc *tour.RoundContext, members []string) bool {
	anyPlaying := false
	for _, m := range members {
		if !rc.IsComplete(m) {
			return false
		}
		if rc.IsPlaying(m) {
			anyPlaying = true
		}
	}
	return anyPlaying
}

// groupAggregate scores pairs or teams hole by hole over every qualifying round.
// Only members playing the round contribute points to a hole.
func groupAggregate(agg holeAggregate) func(Input) []Row {
	return func(in Input) []Row {
		m := in.Context.TeamBestM
		rows := make([]Row, 0, len(in.Entities))
		for _, ent := range in.Entities {
			row := Row{EntryID: ent.ID, Label: ent.Label, Stats: map[string]any{}}
			var holes [tour.HolesPerRound]int
			rounds := 0
			for _, rc := range in.Context.Rounds {
				if !groupRoundCounts(rc, ent.Members) {
					continue
				}
				rounds++
				for i := 0; i < tour.HolesPerRound; i++ {
					var points []int
					for _, member := range ent.Members {
						if rc.IsPlaying(member) {
							points = append(points, rc.NetPointsForHole(member, i))
						}
					}
					holes[i] += agg(points, m)
				}
			}
			front, back := nines(holes)
			row.Total = float64(front + back)
			row.Front9 = float64(front)
			row.Back9 = float64(back)
			row.Stats["rounds"] = rounds
			row.Stats["members"] = len(ent.Members)
			rows = append(rows, row)
		}
		return rows
	}
}
