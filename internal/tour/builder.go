package tour

import (
	"sort"

	"github.com/trentd187/golf-tour/internal/stableford"
)

// BuildTour builds a tour-scope context over every round in the input.
func BuildTour(in Input) *Context {
	return build(in, ScopeTour, orderedRounds(in.Rounds))
}

// BuildRound builds a round-scope context for one round. ok is false when the
// round is not part of the input.
func BuildRound(in Input, roundID string) (*Context, bool) {
	for _, r := range orderedRounds(in.Rounds) {
		if r.ID == roundID {
			return build(in, ScopeRound, []orderedRound{r}), true
		}
	}
	return nil, false
}

type orderedRound struct {
	RoundRow
	no int
}

// orderedRounds assigns every round its effective number and sorts by it.
// Rounds without a number take their 1-based input position.
func orderedRounds(rows []RoundRow) []orderedRound {
	out := make([]orderedRound, 0, len(rows))
	for i, r := range rows {
		no := i + 1
		if r.RoundNo != nil {
			no = *r.RoundNo
		}
		out = append(out, orderedRound{RoundRow: r, no: no})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].no < out[j].no })
	return out
}

func build(in Input, scope Scope, rounds []orderedRound) *Context {
	genderTee := make(map[string]Tee, len(in.Players))
	for _, p := range in.Players {
		genderTee[p.ID] = TeeForGender(p.Gender)
	}

	// Index the flat input rows once, up front. Every lookup after this point is
	// a map access, so the competitions never scan the raw rows again.
	pars := buildParTables(in.Pars)
	scores := buildScoreTables(in.Scores)
	assignments := buildAssignments(in.Assignments)

	ctx := &Context{
		Scope:     scope,
		Rounds:    make([]*RoundContext, 0, len(rounds)),
		TeamBestM: in.TeamBestM,
	}
	if ctx.TeamBestM < 1 {
		ctx.TeamBestM = DefaultTeamBestM
	}

	// One RoundContext per round, in round-number order. Missing maps are replaced
	// with empty ones so the accessors never need nil checks.
	for _, r := range rounds {
		rc := &RoundContext{
			RoundID:     r.ID,
			RoundNo:     r.no,
			CourseID:    r.CourseID,
			scores:      scores[r.ID],
			assignments: assignments[r.ID],
			holes:       pars[r.CourseID],
			genderTee:   genderTee,
		}
		if rc.scores == nil {
			rc.scores = map[string]*[HolesPerRound]stableford.RawScore{}
		}
		if rc.assignments == nil {
			rc.assignments = map[string]assignment{}
		}
		if rc.holes == nil {
			rc.holes = map[Tee]*holeTable{}
		}
		ctx.Rounds = append(ctx.Rounds, rc)
	}

	ctx.Players = make([]Player, 0, len(in.Players))
	for _, p := range in.Players {
		label := p.Name
		if label == "" {
			label = p.ID
		}
		// A player counts as playing the tour if they play any round in this context.
		playing := false
		for _, rc := range ctx.Rounds {
			if rc.IsPlaying(p.ID) {
				playing = true
				break
			}
		}
		ctx.Players = append(ctx.Players, Player{ID: p.ID, Label: label, Gender: p.Gender, Playing: playing})
	}

	return ctx
}

// buildParTables indexes pars by course and tee. Rows with an unknown tee are dropped.
func buildParTables(rows []ParRow) map[string]map[Tee]*holeTable {
	type key struct {
		course string
		tee    Tee
	}
	grouped := map[key][]ParRow{}
	var order []key
	for _, row := range rows {
		tee, ok := ParseTee(row.Tee)
		if !ok {
			continue
		}
		k := key{row.CourseID, tee}
		if _, seen := grouped[k]; !seen {
			order = append(order, k)
		}
		grouped[k] = append(grouped[k], row)
	}

	numbers := make(map[key][]int, len(grouped))
	for k, group := range grouped {
		for _, row := range group {
			numbers[k] = append(numbers[k], row.HoleNumber)
		}
	}
	oneBased := anyOneBased(numbers)

	out := map[string]map[Tee]*holeTable{}
	for _, k := range order {
		group := grouped[k]
		shift := holeShift(numbers[k], oneBased)

		table := &holeTable{}
		for _, row := range group {
			idx, ok := holeIndex(row.HoleNumber, shift)
			if !ok {
				continue
			}
			table[idx] = HoleInfo{Par: row.Par, StrokeIndex: row.StrokeIndex}
		}
		if out[k.course] == nil {
			out[k.course] = map[Tee]*holeTable{}
		}
		out[k.course][k.tee] = table
	}
	return out
}

// buildScoreTables builds the 18-hole raw score array for each round and player.
func buildScoreTables(rows []ScoreRow) map[string]map[string]*[HolesPerRound]stableford.RawScore {
	type key struct{ round, player string }
	grouped := map[key][]ScoreRow{}
	for _, row := range rows {
		k := key{row.RoundID, row.PlayerID}
		grouped[k] = append(grouped[k], row)
	}

	numbers := make(map[key][]int, len(grouped))
	for k, group := range grouped {
		for _, row := range group {
			numbers[k] = append(numbers[k], row.HoleNumber)
		}
	}
	oneBased := anyOneBased(numbers)

	out := map[string]map[string]*[HolesPerRound]stableford.RawScore{}
	for k, group := range grouped {
		shift := holeShift(numbers[k], oneBased)

		scores := &[HolesPerRound]stableford.RawScore{}
		for _, row := range group {
			idx, ok := holeIndex(row.HoleNumber, shift)
			if !ok {
				continue
			}
			switch {
			case row.Pickup:
				scores[idx] = stableford.Pickup
			case row.Strokes != nil && *row.Strokes >= 0:
				scores[idx] = stableford.FormatStrokes(*row.Strokes)
			default:
				scores[idx] = ""
			}
		}
		if out[k.round] == nil {
			out[k.round] = map[string]*[HolesPerRound]stableford.RawScore{}
		}
		out[k.round][k.player] = scores
	}
	return out
}

func buildAssignments(rows []AssignmentRow) map[string]map[string]assignment {
	out := map[string]map[string]assignment{}
	for _, row := range rows {
		a := assignment{playing: row.Playing}
		if row.PlayingHandicap != nil && *row.PlayingHandicap > 0 {
			a.handicap = *row.PlayingHandicap
		}
		if tee, ok := ParseTee(row.Tee); ok {
			a.tee = tee
		}
		if out[row.RoundID] == nil {
			out[row.RoundID] = map[string]assignment{}
		}
		out[row.RoundID][row.PlayerID] = a
	}
	return out
}

// holeShift decides whether a group of hole numbers is 0-based. A group that
// contains a 0 and nothing above 17 is shifted by one, unless another group of
// the same table is plainly 1-based: then the 0 is a stray row and is dropped.
func holeShift(numbers []int, oneBased bool) int {
	if oneBased {
		return 0
	}
	hasZero, highest := false, 0
	for _, n := range numbers {
		if n == 0 {
			hasZero = true
		}
		if n > highest {
			highest = n
		}
	}
	if hasZero && highest <= HolesPerRound-1 {
		return 1
	}
	return 0
}

// anyOneBased reports whether some group uses hole number 18, which only a
// 1-based card can hold.
func anyOneBased[K comparable](groups map[K][]int) bool {
	for _, numbers := range groups {
		for _, n := range numbers {
			if n == HolesPerRound {
				return true
			}
		}
	}
	return false
}

// holeIndex converts a raw hole number into a 0-based array index.
func holeIndex(holeNumber, shift int) (int, bool) {
	n := holeNumber + shift
	if n < 1 || n > HolesPerRound {
		return 0, false
	}
	return n - 1, true
}
