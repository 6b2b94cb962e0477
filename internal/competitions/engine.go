package competitions

import (
	"sort"

	"github.com/trentd187/golf-tour/internal/tour"
)

// Engine runs competitions from a registry against tour contexts.
// It holds no per-run state, so one Engine can serve concurrent runs.
type Engine struct {
	registry *Registry
}

// NewEngine creates an engine over the given registry.
func NewEngine(registry *Registry) *Engine {
	return &Engine{registry: registry}
}

// Registry returns the registry the engine was built with.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// RunByID looks up a competition and runs it. ok is false for unknown IDs.
func (e *Engine) RunByID(id string, ctx *tour.Context, groups Groups) (Result, bool) {
	def, ok := e.registry.Get(id)
	if !ok {
		return Result{}, false
	}
	return e.Run(def, ctx, groups), true
}

// Run resolves entities, applies eligibility, computes and sorts one competition.
// A context whose scope does not match the definition produces no rows.
func (e *Engine) Run(def Definition, ctx *tour.Context, groups Groups) Result {
	res := Result{
		CompetitionID: def.ID,
		Name:          def.Name,
		Scope:         def.Scope,
		Kind:          def.Kind,
		LowerIsBetter: def.LowerIsBetter,
		Rows:          []Row{},
	}
	// A round-scope competition asked for over a whole tour (or the reverse)
	// still answers with an empty board rather than an error.
	if ctx == nil || def.Compute == nil || ctx.Scope != def.Scope {
		return res
	}

	// playing maps each roster player to whether they play any round in this context.
	playing := make(map[string]bool, len(ctx.Players))
	for _, p := range ctx.Players {
		playing[p.ID] = p.Playing
	}

	// Step 1: work out who competes. Individuals are the roster itself; pair and
	// team competitions use the configured groups of that kind.
	var entities []Entity
	if def.Kind == KindIndividual {
		for _, p := range ctx.Players {
			entities = append(entities, Entity{ID: p.ID, Label: p.Label, Kind: KindIndividual, Members: []string{p.ID}})
		}
	} else {
		entities = groups.forKind(def.Kind)
	}

	// Step 2: drop anyone the definition's eligibility rules exclude.
	eligible := make([]Entity, 0, len(entities))
	for _, ent := range entities {
		if isEligible(def.Eligibility, ent, playing, ctx) {
			eligible = append(eligible, ent)
		}
	}

	// Step 3: hand the survivors to the compute function. Individual competitions
	// receive players (in roster order), group competitions receive entities.
	in := Input{Context: ctx}
	if def.Kind == KindIndividual {
		ok := make(map[string]bool, len(eligible))
		for _, ent := range eligible {
			ok[ent.ID] = true
		}
		for _, p := range ctx.Players {
			if ok[p.ID] {
				in.Players = append(in.Players, p)
			}
		}
	} else {
		in.Entities = eligible
	}

	// Step 4: compute, then sort so every caller sees the same order.
	rows := def.Compute(in)
	if rows == nil {
		rows = []Row{}
	}
	SortRows(rows, def.LowerIsBetter)
	res.Rows = rows
	return res
}

// isEligible applies the rules to every member: one non-playing or incomplete
// member rules out the whole pair or team.
func isEligible(el Eligibility, ent Entity, playing map[string]bool, ctx *tour.Context) bool {
	if len(ent.Members) == 0 {
		return false
	}
	for _, m := range ent.Members {
		if el.OnlyPlaying && !playing[m] {
			return false
		}
		if el.RequireComplete {
			for _, rc := range ctx.Rounds {
				if !rc.IsComplete(m) {
					return false
				}
			}
		}
	}
	return true
}

// SortRows orders rows best first: total (descending, or ascending when lower is
// better), then back-9 and front-9 subtotals descending, then label and entry ID.
func SortRows(rows []Row, lowerIsBetter bool) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		// The headline number decides first; its direction depends on the competition.
		if a.Total != b.Total {
			if lowerIsBetter {
				return a.Total < b.Total
			}
			return a.Total > b.Total
		}
		// Countback: the better back nine wins a tie, then the better front nine.
		// Both are "higher is better" regardless of the competition's direction.
		if a.Back9 != b.Back9 {
			return a.Back9 > b.Back9
		}
		if a.Front9 != b.Front9 {
			return a.Front9 > b.Front9
		}
		// Still level: fall back to names, then IDs, so the order never depends on input order.
		if a.Label != b.Label {
			return a.Label < b.Label
		}
		return a.EntryID < b.EntryID
	})
}
