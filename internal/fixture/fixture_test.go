package fixture

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trentd187/golf-tour/internal/apperrors"
	"github.com/trentd187/golf-tour/internal/competitions"
	"github.com/trentd187/golf-tour/internal/leaderboard"
	"github.com/trentd187/golf-tour/internal/logging"
	"github.com/trentd187/golf-tour/internal/tour"
)

func intPtr(n int) *int { return &n }

func TestLoadFile(t *testing.T) {
	data, err := LoadFile("testdata/spring.yaml")
	require.NoError(t, err)

	assert.Equal(t, "spring", data.TourID)
	assert.Equal(t, "Spring Tour", data.Name)
	assert.Equal(t, 2, data.Input.TeamBestM)
	assert.Len(t, data.Input.Rounds, 2)
	assert.Len(t, data.Input.Players, 3)
	assert.Len(t, data.Input.Pars, 36)
	assert.Len(t, data.Input.Scores, 5*18)
	require.Len(t, data.Groups.Pairs, 1)
	assert.Equal(t, competitions.KindPair, data.Groups.Pairs[0].Kind)
	require.Len(t, data.Groups.Teams, 1)
	assert.Equal(t, []string{"alice", "bob", "cara"}, data.Groups.Teams[0].Members)
	require.Len(t, data.Legs, 1)

	var caraR2 *tour.AssignmentRow
	for i, a := range data.Input.Assignments {
		if a.RoundID == "r2" && a.PlayerID == "cara" {
			caraR2 = &data.Input.Assignments[i]
		}
	}
	require.NotNil(t, caraR2)
	assert.False(t, caraR2.Playing)
}

func TestFixtureLeaderboards(t *testing.T) {
	data, err := LoadFile("testdata/spring.yaml")
	require.NoError(t, err)

	svc := leaderboard.NewService(NewSource(data), competitions.NewEngine(competitions.DefaultRegistry()), nil, logging.Discard())
	ctx := context.Background()

	board, err := svc.TourLeaderboard(ctx, "spring", "stableford")
	require.NoError(t, err)
	got := map[string]float64{}
	for _, r := range board.Rows {
		got[r.EntryID] = r.Total
	}
	assert.Equal(t, map[string]float64{"alice": 72, "bob": 54, "cara": 36}, got)

	hb, err := svc.H2Z(ctx, "spring")
	require.NoError(t, err)
	finals := map[string]int{}
	for _, s := range hb.Standings {
		finals[s.PlayerID] = s.FinalScore
	}
	assert.Equal(t, map[string]int{"alice": 16, "bob": 12, "cara": 8}, finals)

	_, err = svc.H2Z(ctx, "autumn")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestParseCard(t *testing.T) {
	rows, err := ParseCard("r1", "p1", "4 P - 5")
	require.NoError(t, err)
	want := []tour.ScoreRow{
		{RoundID: "r1", PlayerID: "p1", HoleNumber: 1, Strokes: intPtr(4)},
		{RoundID: "r1", PlayerID: "p1", HoleNumber: 2, Pickup: true},
		{RoundID: "r1", PlayerID: "p1", HoleNumber: 4, Strokes: intPtr(5)},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}

	_, err = ParseCard("r1", "p1", "4 x")
	assert.ErrorContains(t, err, `bad score "x" on hole 2`)

	_, err = ParseCard("r1", "p1", strings.Repeat("4 ", 19))
	assert.Error(t, err)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "unknown key", doc: "tour: {id: x}\nwhatever: 1\n"},
		{name: "missing tour id", doc: "tour: {name: x}\n"},
		{name: "stroke index length", doc: "tour: {id: x}\ncourses:\n  - id: c\n    tees:\n      M: {pars: [4, 4], stroke_index: [1]}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.doc))
			assert.Error(t, err)
		})
	}
}
