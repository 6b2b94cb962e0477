package h2z

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trentd187/golf-tour/internal/tour"
	"github.com/trentd187/golf-tour/internal/tour/tourtest"
)

// threePar3s has par 3s on holes 1-3 only, so each round contributes three
// holes to a leg.
var threePar3s = [tour.HolesPerRound]int{3, 3, 3, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4}

// legCard builds a card whose first three holes are given and the rest are
// pickups (which must not affect the leg since those holes are par 4).
// With a 36 handicap a par-3 gross of 5 is 2 points, 4 is 3, 3 is 4.
func legCard(first3 string) string {
	return first3 + strings.Repeat(" P", tour.HolesPerRound-3)
}

func TestScoreLegResetsOnZero(t *testing.T) {
	in := tourtest.New(threePar3s).
		Round("r1", 1).Round("r2", 2).
		Player("p", "P", "M").
		Playing("r1", "p", 36).Playing("r2", "p", 36).
		Card("r1", "p", legCard("5 4 P")). // 2, 3, 0
		Card("r2", "p", legCard("3 3 3")). // 4, 4, 4
		Input()

	got := ScoreLeg(tour.BuildTour(in), "p", Leg{LegNo: 1, StartRoundNo: 1, EndRoundNo: 2})
	assert.Equal(t, Result{
		PlayerID:         "p",
		LegNo:            1,
		FinalScore:       12,
		BestScore:        12,
		BestLen:          3,
		BestStartRoundNo: 2,
		BestStartHoleNo:  1,
		BestEndRoundNo:   2,
		BestEndHoleNo:    3,
	}, got)
}

func TestScoreLegFinalDiffersFromBest(t *testing.T) {
	in := tourtest.New(threePar3s).
		Round("r1", 1).Round("r2", 2).
		Player("p", "P", "M").
		Playing("r1", "p", 36).Playing("r2", "p", 36).
		Card("r1", "p", legCard("4 4 4")). // 3, 3, 3
		Card("r2", "p", legCard("P 5 6")). // 0, 2, 1
		Input()

	got := ScoreLeg(tour.BuildTour(in), "p", Leg{LegNo: 1, StartRoundNo: 1, EndRoundNo: 2})
	assert.Equal(t, 3, got.FinalScore)
	assert.Equal(t, 9, got.BestScore)
	assert.Equal(t, 3, got.BestLen)
	assert.Equal(t, 1, got.BestStartRoundNo)
	assert.Equal(t, 1, got.BestStartHoleNo)
	assert.Equal(t, 1, got.BestEndRoundNo)
	assert.Equal(t, 3, got.BestEndHoleNo)
}

func TestScoreLegSkipsRoundsNotPlayed(t *testing.T) {
	in := tourtest.New(threePar3s).
		Round("r1", 1).Round("r2", 2).Round("r3", 3).
		Player("p", "P", "M").
		Playing("r1", "p", 36).NotPlaying("r2", "p").Playing("r3", "p", 36).
		Card("r1", "p", legCard("5 5 5")).
		Card("r2", "p", legCard("P P P")).
		Card("r3", "p", legCard("5 5 5")).
		Input()

	got := ScoreLeg(tour.BuildTour(in), "p", Leg{LegNo: 1, StartRoundNo: 1, EndRoundNo: 3})
	assert.Equal(t, 12, got.FinalScore, "sitting out a round neither advances nor breaks the run")
	assert.Equal(t, 12, got.BestScore)
	assert.Equal(t, 6, got.BestLen)
	assert.Equal(t, 1, got.BestStartRoundNo)
	assert.Equal(t, 3, got.BestEndRoundNo)
}

func TestScoreLegHonoursRoundRange(t *testing.T) {
	in := tourtest.New(threePar3s).
		Round("r1", 1).Round("r2", 2).Round("r3", 3).
		Player("p", "P", "M").
		Playing("r1", "p", 36).Playing("r2", "p", 36).Playing("r3", "p", 36).
		Card("r1", "p", legCard("3 3 3")).
		Card("r2", "p", legCard("5 5 5")).
		Card("r3", "p", legCard("5 P 5")).
		Input()

	got := ScoreLeg(tour.BuildTour(in), "p", Leg{LegNo: 2, StartRoundNo: 2, EndRoundNo: 3})
	assert.Equal(t, 2, got.FinalScore)
	assert.Equal(t, 8, got.BestScore)
	assert.Equal(t, 4, got.BestLen)
	assert.Equal(t, 2, got.BestStartRoundNo)
	assert.Equal(t, 3, got.BestEndRoundNo)
	assert.Equal(t, 1, got.BestEndHoleNo)
}

func TestScoreLegEmpty(t *testing.T) {
	got := ScoreLeg(nil, "p", Leg{LegNo: 1, StartRoundNo: 1, EndRoundNo: 1})
	assert.Equal(t, Result{PlayerID: "p", LegNo: 1}, got)
}

func TestStandings(t *testing.T) {
	in := tourtest.New(threePar3s).
		Round("r1", 1).Round("r2", 2).
		Player("a", "Alice", "F").Player("b", "Bob", "M").Player("c", "Carl", "M").
		Playing("r1", "a", 36).Playing("r2", "a", 36).
		Playing("r1", "b", 36).Playing("r2", "b", 36).
		Card("r1", "a", legCard("5 5 5")).Card("r2", "a", legCard("5 5 P")).
		Card("r1", "b", legCard("5 5 5")).Card("r2", "b", legCard("5 5 5")).
		Input()

	legs := []Leg{{LegNo: 2, StartRoundNo: 2, EndRoundNo: 2}, {LegNo: 1, StartRoundNo: 1, EndRoundNo: 2}}
	require.NoError(t, ValidateLegs(legs))

	got := Standings(tour.BuildTour(in), legs)
	require.Len(t, got, 4, "carl never plays")

	assert.Equal(t, 1, got[0].LegNo)
	assert.Equal(t, "b", got[0].PlayerID)
	assert.Equal(t, 12, got[0].FinalScore)
	assert.Equal(t, "a", got[1].PlayerID)
	assert.Equal(t, 0, got[1].FinalScore)
	assert.Equal(t, 10, got[1].BestScore)

	assert.Equal(t, 2, got[2].LegNo)
	assert.Equal(t, "Bob", got[2].Label)
}

func TestValidateLegs(t *testing.T) {
	assert.Error(t, ValidateLegs([]Leg{{LegNo: 1, StartRoundNo: 3, EndRoundNo: 2}}))
	assert.Error(t, ValidateLegs([]Leg{{LegNo: 1, StartRoundNo: 1, EndRoundNo: 2}, {LegNo: 1, StartRoundNo: 3, EndRoundNo: 4}}))
	assert.NoError(t, ValidateLegs(nil))
}
