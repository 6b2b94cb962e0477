package tour

import "github.com/trentd187/golf-tour/internal/stableford"

// HoleInfo is the par and stroke index of a hole for one tee.
type HoleInfo struct {
	Par         int
	StrokeIndex int
}

// holeTable holds the 18 holes of one tee. A zero HoleInfo means "no data".
type holeTable [HolesPerRound]HoleInfo

// known reports whether both the par and the stroke index are on record.
func (h HoleInfo) known() bool {
	return h.Par > 0 && h.StrokeIndex >= 1 && h.StrokeIndex <= stableford.MaxStrokeIndex
}

// assignment is the per-round state of a player after normalization.
type assignment struct {
	playing  bool
	handicap int
	tee      Tee
}

// RoundContext is the read-only view over one round. It is built once by the
// builder and never modified afterwards, so it is safe to share between goroutines.
// Hole indexes passed to its methods are 0-based (0 = hole 1).
type RoundContext struct {
	RoundID  string
	RoundNo  int
	CourseID string

	scores      map[string]*[HolesPerRound]stableford.RawScore
	assignments map[string]assignment
	holes       map[Tee]*holeTable
	genderTee   map[string]Tee
}

// IsPlaying reports whether the player has an explicit playing assignment for this round.
func (r *RoundContext) IsPlaying(playerID string) bool {
	return r.assignments[playerID].playing
}

// IsComplete is true when the player is not playing (so they never block a
// completeness gate) or when every one of the 18 holes has an entry.
func (r *RoundContext) IsComplete(playerID string) bool {
	if !r.IsPlaying(playerID) {
		return true
	}
	scores, ok := r.scores[playerID]
	if !ok {
		return false
	}
	for _, s := range scores {
		if !s.IsEntered() {
			return false
		}
	}
	return true
}

// RawScores returns a copy of the player's 18 raw scores. Missing holes are empty.
func (r *RoundContext) RawScores(playerID string) [HolesPerRound]stableford.RawScore {
	if scores, ok := r.scores[playerID]; ok {
		return *scores
	}
	return [HolesPerRound]stableford.RawScore{}
}

// RawScore returns the raw score on one hole.
func (r *RoundContext) RawScore(playerID string, holeIndex int) stableford.RawScore {
	if !validIndex(holeIndex) {
		return ""
	}
	if scores, ok := r.scores[playerID]; ok {
		return scores[holeIndex]
	}
	return ""
}

// Handicap returns the player's playing handicap for the round (0 when unknown).
func (r *RoundContext) Handicap(playerID string) int {
	return r.assignments[playerID].handicap
}

// TeeFor resolves the player's tee: the explicit assignment tee, else the tee
// for their gender, else the men's tee.
func (r *RoundContext) TeeFor(playerID string) Tee {
	if a, ok := r.assignments[playerID]; ok && a.tee != "" {
		return a.tee
	}
	if t, ok := r.genderTee[playerID]; ok {
		return t
	}
	return TeeM
}

// Hole returns the hole data for the player's tee, falling back to the other tee
// when the course is missing the par or stroke index for theirs.
func (r *RoundContext) Hole(playerID string, holeIndex int) (HoleInfo, bool) {
	if !validIndex(holeIndex) {
		return HoleInfo{}, false
	}
	tee := r.TeeFor(playerID)
	for _, t := range []Tee{tee, tee.other()} {
		if table, ok := r.holes[t]; ok && table[holeIndex].known() {
			return table[holeIndex], true
		}
	}
	return HoleInfo{}, false
}

// ParForPlayerHole returns the tee-specific par, or 0 when the player is not
// playing this round or the course has no par and stroke index for the hole.
func (r *RoundContext) ParForPlayerHole(playerID string, holeIndex int) int {
	if !r.IsPlaying(playerID) {
		return 0
	}
	hole, ok := r.Hole(playerID, holeIndex)
	if !ok {
		return 0
	}
	return hole.Par
}

// NetPointsForHole returns the player's Stableford points on a hole. Non-playing
// players and holes without par or stroke index data score 0.
func (r *RoundContext) NetPointsForHole(playerID string, holeIndex int) int {
	if !r.IsPlaying(playerID) {
		return 0
	}
	hole, ok := r.Hole(playerID, holeIndex)
	if !ok {
		return 0
	}
	return stableford.NetPoints(r.RawScore(playerID, holeIndex), hole.Par, hole.StrokeIndex, r.Handicap(playerID))
}

// GrossForHole returns the gross strokes on a hole. ok is false for unentered
// holes, pickups and players who are not playing.
func (r *RoundContext) GrossForHole(playerID string, holeIndex int) (int, bool) {
	if !r.IsPlaying(playerID) {
		return 0, false
	}
	return r.RawScore(playerID, holeIndex).Strokes()
}

// RoundPoints returns the player's points on all 18 holes.
func (r *RoundContext) RoundPoints(playerID string) [HolesPerRound]int {
	var pts [HolesPerRound]int
	for i := range pts {
		pts[i] = r.NetPointsForHole(playerID, i)
	}
	return pts
}

func validIndex(i int) bool {
	return i >= 0 && i < HolesPerRound
}
