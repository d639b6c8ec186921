package burrow

import "github.com/katalvlaran/burrownet/search"

// Estimate returns an admissible lower bound on the energy still needed
// to reach the sorted goal: the sum of two independent per-object bounds.
//
//   - Corridor objects: walk to the target room mouth plus one entry
//     step, times the per-step cost.
//   - Room objects not yet settled: exit the room, walk between mouths,
//     plus one entry step, times the per-step cost.
//
// Blocking by other objects is ignored, so the estimate never exceeds the
// true remaining cost and A* keeps its optimality guarantee.
// Complexity: O(C + R·D).
func (b *Board) Estimate() int64 {
	var total int64

	for ci, cell := range b.corridor {
		obj, ok := cell.Object()
		if !ok {
			continue
		}
		steps := absInt(ci-mouth(obj.Kind.TargetRoom())) + 1
		total += int64(steps) * obj.Kind.StepCost()
	}

	for ri, room := range b.rooms {
		for d, cell := range room {
			obj, ok := cell.Object()
			if !ok || b.settled(ri, d, obj.Kind) {
				continue
			}
			steps := (d + 1) + absInt(mouth(ri)-mouth(obj.Kind.TargetRoom())) + 1
			total += int64(steps) * obj.Kind.StepCost()
		}
	}

	return total
}

// MinEnergy computes the minimum total energy to sort b, running the
// best-first engine over the board space. Returns search.NoPath (with a
// nil error) when the goal is unreachable — possible only for malformed
// instances, e.g. object counts that can never fill the rooms.
func MinEnergy(b *Board, opts ...search.Option) (int64, error) {
	if b == nil {
		return search.NoPath, ErrNilBoard
	}

	return search.MinCost(boardSpace{}, b, opts...)
}

// boardSpace adapts Board to the search.Space capability. Boards already
// satisfy search.State via their structural Key.
type boardSpace struct{}

func (boardSpace) Goal(s search.State) bool { return s.(*Board).IsGoal() }

func (boardSpace) Estimate(s search.State) int64 { return s.(*Board).Estimate() }

func (boardSpace) Expand(s search.State) []search.Transition {
	moves := s.(*Board).Moves()
	out := make([]search.Transition, len(moves))
	for i, m := range moves {
		out[i] = search.Transition{To: m.Next, Cost: m.Cost}
	}

	return out
}
