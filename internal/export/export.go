// Package export writes leaderboard snapshots to xlsx workbooks.
package export

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/trentd187/golf-tour/internal/leaderboard"
)

const (
	SummarySheet = "Summary"
	H2ZSheet     = "H2Z"
)

// ContentType is the MIME type of the workbooks produced here.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Workbook builds a workbook with a summary sheet, one sheet per board and an H2Z sheet.
// The caller owns the returned file and must Close it.
func Workbook(snap *leaderboard.Snapshot) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), SummarySheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename default sheet: %w", err)
	}

	summary := [][]any{
		{"Tour", snap.TourName},
		{"Tour ID", snap.TourID},
		{},
		{"Competition", "Leader", "Total"},
	}
	for _, b := range snap.Boards {
		leader, total := "", any("")
		if len(b.Rows) > 0 {
			leader, total = b.Rows[0].Label, b.Rows[0].Total
		}
		summary = append(summary, []any{b.Name, leader, total})
	}
	if err := writeRows(f, SummarySheet, summary); err != nil {
		f.Close()
		return nil, err
	}

	for _, b := range snap.Boards {
		if err := writeBoard(f, b); err != nil {
			f.Close()
			return nil, err
		}
	}
	if err := writeH2Z(f, snap.H2Z); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// Write builds the workbook and streams it to w.
func Write(w io.Writer, snap *leaderboard.Snapshot) error {
	f, err := Workbook(snap)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeBoard(f *excelize.File, b leaderboard.Board) error {
	sheet := sheetName(b.ID)
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %q: %w", sheet, err)
	}

	statKeys := statColumns(b.Rows)
	header := []any{"Rank", "Entry", "Total", "Back 9", "Front 9"}
	for _, k := range statKeys {
		header = append(header, k)
	}
	rows := [][]any{header}
	for _, r := range b.Rows {
		line := []any{r.Rank, r.Label, r.Total, r.Back9, r.Front9}
		for _, k := range statKeys {
			line = append(line, cellValue(r.Stats[k]))
		}
		rows = append(rows, line)
	}
	return writeRows(f, sheet, rows)
}

func writeH2Z(f *excelize.File, hb leaderboard.H2ZBoard) error {
	if _, err := f.NewSheet(H2ZSheet); err != nil {
		return fmt.Errorf("create sheet %q: %w", H2ZSheet, err)
	}
	rows := [][]any{{"Leg", "Player", "Final", "Best", "Best Holes", "Best From", "Best To"}}
	for _, s := range hb.Standings {
		from, to := "", ""
		if s.BestLen > 0 {
			from = fmt.Sprintf("R%d H%d", s.BestStartRoundNo, s.BestStartHoleNo)
			to = fmt.Sprintf("R%d H%d", s.BestEndRoundNo, s.BestEndHoleNo)
		}
		rows = append(rows, []any{s.LegNo, s.Label, s.FinalScore, s.BestScore, s.BestLen, from, to})
	}
	return writeRows(f, H2ZSheet, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		axis, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		cells := row
		if err := f.SetSheetRow(sheet, axis, &cells); err != nil {
			return fmt.Errorf("write %s!%s: %w", sheet, axis, err)
		}
	}
	return nil
}

// statColumns is the sorted union of stat keys across rows.
func statColumns(rows []leaderboard.BoardRow) []string {
	seen := map[string]bool{}
	var keys []string
	for _, r := range rows {
		for k := range r.Stats {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	sort.Strings(keys)
	return keys
}

func cellValue(v any) any {
	switch v := v.(type) {
	case nil:
		return ""
	case int, int64, float64, string, bool:
		return v
	case []int:
		parts := make([]string, len(v))
		for i, n := range v {
			parts[i] = fmt.Sprint(n)
		}
		return strings.Join(parts, " ")
	default:
		return fmt.Sprint(v)
	}
}

// sheetName trims to Excel's 31 character limit and drops characters Excel rejects.
func sheetName(id string) string {
	name := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`[]:*?/\`, r) {
			return '_'
		}
		return r
	}, id)
	if len(name) > 31 {
		name = name[:31]
	}
	return name
}
