package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/trentd187/golf-tour/internal/competitions"
	"github.com/trentd187/golf-tour/internal/h2z"
	"github.com/trentd187/golf-tour/internal/leaderboard"
)

func snapshot() *leaderboard.Snapshot {
	return &leaderboard.Snapshot{
		TourID:   "t1",
		TourName: "Spring Tour",
		Boards: []leaderboard.Board{
			{
				CompetitionInfo: leaderboard.CompetitionInfo{ID: "eclectic", Name: "Eclectic"},
				Rows: []leaderboard.BoardRow{
					{Rank: 1, Row: competitions.Row{EntryID: "a", Label: "Alice", Total: 40, Back9: 21, Front9: 19,
						Stats: map[string]any{"rounds": 2, "holes": []int{3, 2, 2}}}},
					{Rank: 2, Row: competitions.Row{EntryID: "b", Label: "Bob", Total: 38, Back9: 20, Front9: 18,
						Stats: map[string]any{"rounds": 1}}},
				},
			},
			{CompetitionInfo: leaderboard.CompetitionInfo{ID: "bagel-man", Name: "Bagel Man"}, Rows: []leaderboard.BoardRow{}},
		},
		H2Z: leaderboard.H2ZBoard{
			TourID: "t1",
			Legs:   []h2z.Leg{{LegNo: 1, StartRoundNo: 1, EndRoundNo: 2}},
			Standings: []h2z.Standing{{
				Label: "Alice",
				Result: h2z.Result{PlayerID: "a", LegNo: 1, FinalScore: 6, BestScore: 9, BestLen: 3,
					BestStartRoundNo: 1, BestStartHoleNo: 3, BestEndRoundNo: 1, BestEndHoleNo: 12},
			}},
		},
	}
}

func TestWorkbookSheets(t *testing.T) {
	f, err := Workbook(snapshot())
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SummarySheet, "eclectic", "bagel-man", H2ZSheet}, f.GetSheetList())

	summary, err := f.GetRows(SummarySheet)
	require.NoError(t, err)
	assert.Equal(t, []string{"Tour", "Spring Tour"}, summary[0])
	last := summary[len(summary)-2:]
	assert.Equal(t, []string{"Eclectic", "Alice", "40"}, last[0])
	assert.Equal(t, "Bagel Man", last[1][0])

	ecl, err := f.GetRows("eclectic")
	require.NoError(t, err)
	require.Len(t, ecl, 3)
	assert.Equal(t, []string{"Rank", "Entry", "Total", "Back 9", "Front 9", "holes", "rounds"}, ecl[0])
	assert.Equal(t, []string{"1", "Alice", "40", "21", "19", "3 2 2", "2"}, ecl[1])
	assert.Equal(t, []string{"2", "Bob", "38", "20", "18", "", "1"}, ecl[2])

	hz, err := f.GetRows(H2ZSheet)
	require.NoError(t, err)
	require.Len(t, hz, 2)
	assert.Equal(t, []string{"1", "Alice", "6", "9", "3", "R1 H3", "R1 H12"}, hz[1])
}

func TestWriteProducesReadableFile(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, snapshot()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	assert.Len(t, f.GetSheetList(), 4)
}

func TestSheetName(t *testing.T) {
	assert.Equal(t, "a_b", sheetName("a/b"))
	assert.Len(t, sheetName("a-very-long-competition-identifier-name"), 31)
}
