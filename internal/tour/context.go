package tour

// Scope says whether a Context covers a single round or the whole tour.
// Competitions declare the scope they compute over; a mismatch yields no rows.
type Scope string

const (
	ScopeRound Scope = "round"
	ScopeTour  Scope = "tour"
)

// Player is a roster entry as seen by the competitions.
type Player struct {
	ID     string
	Label  string
	Gender string
	// Playing is true when the player is marked playing in any round of the context.
	// It drives competition-level eligibility only, never per-round math.
	Playing bool
}

// Context is the aggregate a leaderboard is computed from. It is rebuilt for
// every render and is immutable once built.
//
// Context is a tagged union on Scope: a round-scope context holds exactly one
// round; a tour-scope context holds every round of the tour in round order.
type Context struct {
	Scope     Scope
	Rounds    []*RoundContext
	Players   []Player
	TeamBestM int
}

// Round returns the single round of a round-scope context.
// ok is false for tour-scope contexts.
func (c *Context) Round() (*RoundContext, bool) {
	if c == nil || c.Scope != ScopeRound || len(c.Rounds) != 1 {
		return nil, false
	}
	return c.Rounds[0], true
}

// Player looks up a roster entry by ID.
func (c *Context) Player(id string) (Player, bool) {
	for _, p := range c.Players {
		if p.ID == id {
			return p, true
		}
	}
	return Player{}, false
}

// RoundByNo finds a round by its round number.
func (c *Context) RoundByNo(roundNo int) (*RoundContext, bool) {
	for _, r := range c.Rounds {
		if r.RoundNo == roundNo {
			return r, true
		}
	}
	return nil, false
}
