// Package competitions holds the declarative competition catalog and the engine
// that runs a competition against a tour context.
//
// A competition is a Definition: who may enter (eligibility), whether it covers a
// single round or the whole tour (scope), whether individuals, pairs or teams are
// ranked (kind), and a Compute function that walks the context and returns one
// Row per entity. The Engine resolves entities, filters them, calls Compute and
// sorts the result.
package competitions

import "github.com/trentd187/golf-tour/internal/tour"

// Kind is the unit a competition ranks.
type Kind string

const (
	KindIndividual Kind = "individual"
	KindPair       Kind = "pair"
	KindTeam       Kind = "team"
)

// Eligibility filters entities before Compute runs.
type Eligibility struct {
	// OnlyPlaying requires every member to be marked playing somewhere in the context.
	OnlyPlaying bool
	// RequireComplete requires every member to have finished every round in the context.
	RequireComplete bool
}

// Definition declares one competition.
type Definition struct {
	ID          string
	Name        string
	Description string
	Scope       tour.Scope
	Kind        Kind
	Eligibility Eligibility
	// LowerIsBetter flips the ranking direction of Total (e.g. percentage of zero-point holes).
	LowerIsBetter bool
	Compute       func(in Input) []Row
}

// Entity is a ranked unit: one player, a pair or a team.
type Entity struct {
	ID      string
	Label   string
	Kind    Kind
	Members []string
}

// Groups carries the externally resolved pairs and teams of a tour.
type Groups struct {
	Pairs []Entity
	Teams []Entity
}

// forKind returns the group list matching a competition kind.
func (g Groups) forKind(k Kind) []Entity {
	switch k {
	case KindPair:
		return g.Pairs
	case KindTeam:
		return g.Teams
	default:
		return nil
	}
}

// Input is what Compute receives. Individual competitions read Players (already
// narrowed to eligible players); pair and team competitions read Entities.
type Input struct {
	Context  *tour.Context
	Players  []tour.Player
	Entities []Entity
}

// Row is one line of a leaderboard.
type Row struct {
	EntryID string         `json:"entry_id"`
	Label   string         `json:"label"`
	Total   float64        `json:"total"`
	Back9   float64        `json:"back9"`
	Front9  float64        `json:"front9"`
	Stats   map[string]any `json:"stats"`
}

// Result is the sorted output of one competition run.
type Result struct {
	CompetitionID string     `json:"competition_id"`
	Name          string     `json:"name"`
	Scope         tour.Scope `json:"scope"`
	Kind          Kind       `json:"kind"`
	LowerIsBetter bool       `json:"lower_is_better"`
	Rows          []Row      `json:"rows"`
}
