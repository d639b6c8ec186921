package burrow

// Move is one legal single-object transition: the resulting board and the
// energy it costs.
type Move struct {
	Next *Board
	Cost int64
}

// Moves enumerates every legal single-object move out of the board,
// unioning the two move families:
//
//   - corridor → room: an object walks to its target room and settles in
//     the deepest empty cell, allowed only when the room holds nothing
//     but empties and same-kind objects and the corridor path is clear.
//   - room → corridor: the topmost object of a room exits to any
//     reachable stopping cell, unless it is already settled.
//
// Cost of a move of s steps by kind k is s × k.StepCost(). The slice is
// emitted in a fixed deterministic order (corridor left to right, rooms
// in index order, stopping cells ascending) and contains at most one
// transition per source-object/target pair, so no two entries share a
// resulting state.
//
// Moves never mutates the receiver; every entry carries a fresh Board.
// Complexity: O(C·R + R·C) for corridor length C and room count R.
func (b *Board) Moves() []Move {
	moves := b.corridorToRoom(nil)

	return b.roomToCorridor(moves)
}

// corridorToRoom appends every legal corridor → room move to dst.
func (b *Board) corridorToRoom(dst []Move) []Move {
	for ci, cell := range b.corridor {
		obj, ok := cell.Object()
		if !ok {
			continue
		}
		ri := obj.Kind.TargetRoom()
		if !b.roomReady(ri, obj.Kind) {
			continue
		}
		depth, ok := b.deepestEmpty(ri)
		if !ok {
			continue
		}
		if !b.pathClear(ci, mouth(ri)) {
			continue
		}
		steps := absInt(ci-mouth(ri)) + depth + 1
		next := b.clone()
		next.corridor[ci] = EmptyCell()
		next.rooms[ri][depth] = cell
		dst = append(dst, Move{Next: next, Cost: int64(steps) * obj.Kind.StepCost()})
	}

	return dst
}

// roomToCorridor appends every legal room → corridor move to dst.
func (b *Board) roomToCorridor(dst []Move) []Move {
	for ri, room := range b.rooms {
		depth, ok := b.topmostObject(ri)
		if !ok {
			continue
		}
		obj, _ := room[depth].Object()
		if b.settled(ri, depth, obj.Kind) {
			continue
		}
		for _, sc := range b.stopCells() {
			if !b.corridor[sc].IsEmpty() || !b.pathClear(mouth(ri), sc) {
				continue
			}
			steps := depth + 1 + absInt(sc-mouth(ri))
			next := b.clone()
			next.rooms[ri][depth] = EmptyCell()
			next.corridor[sc] = room[depth]
			dst = append(dst, Move{Next: next, Cost: int64(steps) * obj.Kind.StepCost()})
		}
	}

	return dst
}

// roomReady reports whether room ri can accept kind k: every cell must be
// empty or hold a same-kind object.
func (b *Board) roomReady(ri int, k Kind) bool {
	for _, c := range b.rooms[ri] {
		if obj, ok := c.Object(); ok && obj.Kind != k {
			return false
		}
	}

	return true
}

// deepestEmpty returns the deepest empty cell index of room ri, or false
// when the room is full.
func (b *Board) deepestEmpty(ri int) (int, bool) {
	for d := len(b.rooms[ri]) - 1; d >= 0; d-- {
		if b.rooms[ri][d].IsEmpty() {
			return d, true
		}
	}

	return 0, false
}

// topmostObject returns the shallowest occupied cell index of room ri, or
// false when the room is empty.
func (b *Board) topmostObject(ri int) (int, bool) {
	for d, c := range b.rooms[ri] {
		if _, ok := c.Object(); ok {
			return d, true
		}
	}

	return 0, false
}

// settled reports whether the object at depth d of room ri is already in
// its final place: the right room, with only same-kind objects strictly
// deeper. Settled objects generate no exit move.
func (b *Board) settled(ri, d int, k Kind) bool {
	if k.TargetRoom() != ri {
		return false
	}
	for _, c := range b.rooms[ri][d+1:] {
		obj, ok := c.Object()
		if !ok || obj.Kind != k {
			return false
		}
	}

	return true
}

// pathClear scans the inclusive corridor range between from and to,
// excluding the origin, and reports whether every cell is empty.
func (b *Board) pathClear(from, to int) bool {
	if from == to {
		return true
	}
	step := 1
	if to < from {
		step = -1
	}
	for i := from + step; ; i += step {
		if !b.corridor[i].IsEmpty() {
			return false
		}
		if i == to {
			return true
		}
	}
}

// stopCells returns the corridor indices an exiting object may halt on:
// every cell not directly in front of a room mouth, in ascending order.
func (b *Board) stopCells() []int {
	stops := make([]int, 0, len(b.corridor)-len(b.rooms))
	for i := range b.corridor {
		if !b.isMouth(i) {
			stops = append(stops, i)
		}
	}

	return stops
}

// isMouth reports whether corridor index i fronts a room mouth.
func (b *Board) isMouth(i int) bool {
	return i >= 2 && i <= mouth(len(b.rooms)-1) && i%2 == 0
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
