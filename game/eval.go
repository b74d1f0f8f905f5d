package game

import "github.com/samber/lo"

// SideWeight scales the sides a group touches so they dominate its size.
const SideWeight = 10

// SetBasedHeuristic scores a position by the player's best group: the one touching
// the most sides, then the largest. The score is sides*SideWeight + size, so it stays
// within [0, 3*SideWeight + cells].
type SetBasedHeuristic struct{}

func (SetBasedHeuristic) Evaluate(s State, player PlayerID) int32 {
	grouped, ok := s.(Grouped)
	if !ok {
		panic("unexpected state type: state does not expose player sets")
	}

	best := lo.MaxBy(grouped.SetsOfPlayer(player), func(a, b PlayerSet) bool {
		if a.Sides() != b.Sides() {
			return a.Sides() > b.Sides()
		}
		return a.Size > b.Size
	})
	// No sets yields the zero PlayerSet, scoring (0, 0)
	return int32(best.Sides()*SideWeight + best.Size)
}
