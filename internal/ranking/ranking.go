// Package ranking assigns competition-style ("1, 1, 3") ranks to leaderboard entries.
package ranking

import "sort"

// Entry is one value to be ranked.
type Entry struct {
	ID    string
	Value float64
}

// Ranked is an entry with its assigned rank.
type Ranked struct {
	Entry
	Rank int
}

// Rank orders entries best first and assigns ranks. Equal values share a rank and
// the next distinct value takes its 1-based position, giving 1,1,3,4,4,6.
// Entries with equal values are ordered by ID so the output is deterministic.
// The input slice is not modified.
func Rank(entries []Entry, lowerIsBetter bool) []Ranked {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Value != b.Value {
			if lowerIsBetter {
				return a.Value < b.Value
			}
			return a.Value > b.Value
		}
		return a.ID < b.ID
	})

	out := make([]Ranked, len(sorted))
	for i, e := range sorted {
		rank := i + 1
		if i > 0 && e.Value == sorted[i-1].Value {
			rank = out[i-1].Rank
		}
		out[i] = Ranked{Entry: e, Rank: rank}
	}
	return out
}

// ByID indexes ranked entries by their ID.
func ByID(ranked []Ranked) map[string]int {
	out := make(map[string]int, len(ranked))
	for _, r := range ranked {
		out[r.ID] = r.Rank
	}
	return out
}
