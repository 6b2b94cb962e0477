package competitions

import (
	"math"

	"github.com/trentd187/golf-tour/internal/tour"
)

// Catalog returns every competition the tour runs, in display order.
func Catalog() []Definition {
	playing := Eligibility{OnlyPlaying: true}

	return []Definition{
		{
			ID: "stableford", Name: "Stableford", Scope: tour.ScopeTour, Kind: KindIndividual,
			Description: "Total net Stableford points across the tour",
			Eligibility: playing, Compute: computeStableford,
		},
		{
			ID: "round-stableford", Name: "Round Stableford", Scope: tour.ScopeRound, Kind: KindIndividual,
			Description: "Net Stableford points for finished cards in one round",
			Eligibility: Eligibility{OnlyPlaying: true, RequireComplete: true}, Compute: computeStableford,
		},
		{
			ID: "napoleon", Name: "Napoleon", Scope: tour.ScopeTour, Kind: KindIndividual,
			Description: "Average points on par 3s",
			Eligibility: playing, Compute: averageByPar(3),
		},
		{
			ID: "workhorse", Name: "Workhorse", Scope: tour.ScopeTour, Kind: KindIndividual,
			Description: "Average points on par 4s",
			Eligibility: playing, Compute: averageByPar(4),
		},
		{
			ID: "big-george", Name: "Big George", Scope: tour.ScopeTour, Kind: KindIndividual,
			Description: "Average points on par 5s",
			Eligibility: playing, Compute: averageByPar(5),
		},
		{
			ID: "wizard", Name: "Wizard", Scope: tour.ScopeTour, Kind: KindIndividual,
			Description: "Percentage of holes scoring 4 points or more",
			Eligibility: playing, Compute: percentageOfHoles(func(pts int) bool { return pts >= 4 }),
		},
		{
			ID: "bagel-man", Name: "Bagel Man", Scope: tour.ScopeTour, Kind: KindIndividual,
			Description:   "Percentage of holes scoring zero points (lowest wins)",
			Eligibility:   playing,
			LowerIsBetter: true,
			Compute:       percentageOfHoles(func(pts int) bool { return pts == 0 }),
		},
		{
			ID: "eclectic", Name: "Eclectic", Scope: tour.ScopeTour, Kind: KindIndividual,
			Description: "Best points on each hole across all finished rounds",
			Eligibility: playing, Compute: computeEclectic,
		},
		{
			ID: "schumacher", Name: "Schumacher", Scope: tour.ScopeTour, Kind: KindIndividual,
			Description: "Average points per round over holes 1-3",
			Eligibility: playing, Compute: holeRangeAverage(1, 3),
		},
		{
			ID: "closer", Name: "Closer", Scope: tour.ScopeTour, Kind: KindIndividual,
			Description: "Average points per round over holes 16-18",
			Eligibility: playing, Compute: holeRangeAverage(16, 18),
		},
		{
			ID: "hot-streak", Name: "Hot Streak", Scope: tour.ScopeTour, Kind: KindIndividual,
			Description: "Longest run of consecutive holes at gross par or better",
			Eligibility: playing, Compute: longestStreak(hotHole),
		},
		{
			ID: "cold-streak", Name: "Cold Streak", Scope: tour.ScopeTour, Kind: KindIndividual,
			Description: "Longest run of consecutive holes at gross bogey or worse",
			Eligibility: playing, Compute: longestStreak(coldHole),
		},
		{
			ID: "pair-best-ball", Name: "Pairs Best Ball", Scope: tour.ScopeTour, Kind: KindPair,
			Description: "Best member points on each hole",
			Eligibility: playing, Compute: groupAggregate(bestBall),
		},
		{
			ID: "pair-aggregate", Name: "Pairs Aggregate", Scope: tour.ScopeTour, Kind: KindPair,
			Description: "Sum of both partners' points on each hole",
			Eligibility: playing, Compute: groupAggregate(aggregate),
		},
		{
			ID: "team-best-m", Name: "Team Best M", Scope: tour.ScopeTour, Kind: KindTeam,
			Description: "Top M member scores per hole, minus one point per zero",
			Eligibility: playing, Compute: groupAggregate(bestMMinusZeros),
		},
		{
			ID: "team-best-ball", Name: "Team Best Ball", Scope: tour.ScopeTour, Kind: KindTeam,
			Description: "Best member points on each hole",
			Eligibility: playing, Compute: groupAggregate(bestBall),
		},
	}
}

// counts reports whether a round contributes to a player's per-round aggregates:
// they must be playing it and have entered all 18 holes.
func counts(rc *tour.RoundContext, playerID string) bool {
	return rc.IsPlaying(playerID) && rc.IsComplete(playerID)
}

// round2 rounds to two decimal places for display-stable averages and percentages.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// nines splits 18 hole values into front and back nine subtotals.
func nines(holes [tour.HolesPerRound]int) (front, back int) {
	for i, v := range holes {
		if i < tour.HolesPerRound/2 {
			front += v
		} else {
			back += v
		}
	}
	return front, back
}

func newRow(p tour.Player) Row {
	return Row{EntryID: p.ID, Label: p.Label, Stats: map[string]any{}}
}
