package burrow

import (
	"fmt"
	"strings"
)

// Supported board geometry. A board has 2..4 rooms; room i sits beneath
// corridor index 2·i+2, so the corridor spans 2·rooms+3 cells.
const (
	minRooms = 2
	maxRooms = 4
)

// Board is an immutable snapshot of the maze: the corridor cells in order
// and each room's cells from mouth (depth 0) to back. All transitions
// produce fresh Board values; an existing Board is never mutated.
type Board struct {
	corridor []Cell
	rooms    [][]Cell
}

// Parse builds the initial Board from an ASCII diagram. Input ends at the
// first empty line; surrounding wall rows are validated and discarded.
//
// Layout, for R rooms of depth D (example: R=2, D=2):
//
//	#########      top wall row
//	#.......#      corridor row, 2R+3 cells between the walls
//	###B#A###      room row, depth 0 (mouths)
//	  #A#B#        room row, depth 1
//	  #####        bottom wall row
//
// Returns ErrBadDiagram for shape violations, ErrRoomCount for corridor
// lengths outside the 2..4 room range, and ErrBadCharacter for any byte
// that is not a wall, a space, '.', or an object letter with a room on
// this board.
func Parse(lines []string) (*Board, error) {
	// Cut at the first empty line; the collaborator contract says input
	// stops there.
	end := len(lines)
	for i, ln := range lines {
		if strings.TrimSpace(ln) == "" {
			end = i
			break
		}
	}
	lines = lines[:end]

	// Top wall, corridor, at least one room row, bottom wall.
	if len(lines) < 4 {
		return nil, fmt.Errorf("%w: need at least 4 rows, got %d", ErrBadDiagram, len(lines))
	}

	corRow := lines[1]
	width := len(corRow)
	if width < 3 || corRow[0] != '#' || corRow[width-1] != '#' {
		return nil, fmt.Errorf("%w: corridor row must be wall-delimited", ErrBadDiagram)
	}
	corLen := width - 2
	if (corLen-3)%2 != 0 {
		return nil, fmt.Errorf("%w: corridor length %d fits no room layout", ErrRoomCount, corLen)
	}
	roomCount := (corLen - 3) / 2
	if roomCount < minRooms || roomCount > maxRooms {
		return nil, fmt.Errorf("%w: %d rooms (corridor length %d)", ErrRoomCount, roomCount, corLen)
	}
	if len(lines[0]) < width || strings.Trim(lines[0][:width], "#") != "" {
		return nil, fmt.Errorf("%w: top row must be all walls", ErrBadDiagram)
	}

	b := &Board{
		corridor: make([]Cell, corLen),
		rooms:    make([][]Cell, roomCount),
	}

	// Corridor cells.
	for i := 0; i < corLen; i++ {
		cell, err := parseCell(corRow[i+1], roomCount)
		if err != nil {
			return nil, fmt.Errorf("%w (corridor index %d)", err, i)
		}
		if cell.Kind() == Wall {
			return nil, fmt.Errorf("%w: wall inside corridor at index %d", ErrBadDiagram, i)
		}
		b.corridor[i] = cell
	}

	// Room rows: everything between the corridor row and the bottom wall.
	depth := len(lines) - 3
	for ri := range b.rooms {
		b.rooms[ri] = make([]Cell, depth)
	}
	for d := 0; d < depth; d++ {
		row := lines[2+d]
		for ri := 0; ri < roomCount; ri++ {
			col := mouth(ri) + 1 // diagram column of room ri
			if col >= len(row) {
				return nil, fmt.Errorf("%w: room row %d too short", ErrBadDiagram, d)
			}
			cell, err := parseCell(row[col], roomCount)
			if err != nil {
				return nil, fmt.Errorf("%w (room %d depth %d)", err, ri, d)
			}
			if cell.Kind() == Wall {
				return nil, fmt.Errorf("%w: wall inside room %d at depth %d", ErrBadDiagram, ri, d)
			}
			b.rooms[ri][d] = cell
		}
		// Remaining characters of a room row may only be walls or padding.
		for col := 0; col < len(row); col++ {
			if isRoomColumn(col, roomCount) {
				continue
			}
			if ch := row[col]; ch != '#' && ch != ' ' {
				return nil, fmt.Errorf("%w: %q at row %d column %d", ErrBadCharacter, ch, 2+d, col)
			}
		}
	}

	return b, nil
}

// parseCell decodes one diagram byte into a Cell. Object letters beyond
// the board's room count are rejected: such an object has no target room.
func parseCell(ch byte, roomCount int) (Cell, error) {
	switch {
	case ch == '.':
		return EmptyCell(), nil
	case ch == '#':
		return WallCell(), nil
	case ch >= 'A' && ch < 'A'+byte(kindCount):
		k := Kind(ch - 'A')
		if k.TargetRoom() >= roomCount {
			return Cell{}, fmt.Errorf("%w: object %s has no room on a %d-room board", ErrBadCharacter, k, roomCount)
		}
		return ObjectCell(k), nil
	default:
		return Cell{}, fmt.Errorf("%w: %q", ErrBadCharacter, ch)
	}
}

// mouth returns the corridor index directly in front of room i.
func mouth(i int) int { return 2*i + 2 }

// isRoomColumn reports whether diagram column col holds room cells.
func isRoomColumn(col, roomCount int) bool {
	for ri := 0; ri < roomCount; ri++ {
		if col == mouth(ri)+1 {
			return true
		}
	}

	return false
}

// RoomCount returns the number of rooms on the board.
func (b *Board) RoomCount() int { return len(b.rooms) }

// Depth returns the number of cells per room.
func (b *Board) Depth() int {
	if len(b.rooms) == 0 {
		return 0
	}

	return len(b.rooms[0])
}

// Key returns the structural identity of the board: a flattened glyph
// string of the corridor and every room. Two boards with equal keys hold
// identical contents regardless of the move history that produced them,
// which makes Key suitable as a visited-map key during search.
func (b *Board) Key() string {
	var sb strings.Builder
	sb.Grow(len(b.corridor) + len(b.rooms)*(b.Depth()+1))
	for _, c := range b.corridor {
		sb.WriteByte(c.glyph())
	}
	for _, room := range b.rooms {
		sb.WriteByte('|')
		for _, c := range room {
			sb.WriteByte(c.glyph())
		}
	}

	return sb.String()
}

// Equal reports structural equality with o.
func (b *Board) Equal(o *Board) bool {
	if o == nil {
		return false
	}

	return b.Key() == o.Key()
}

// IsGoal reports whether the board is fully sorted: corridor empty and
// every room filled with its own target kind at every depth.
func (b *Board) IsGoal() bool {
	for _, c := range b.corridor {
		if !c.IsEmpty() {
			return false
		}
	}
	for ri, room := range b.rooms {
		for _, c := range room {
			obj, ok := c.Object()
			if !ok || obj.Kind.TargetRoom() != ri {
				return false
			}
		}
	}

	return true
}

// Goal returns the fully sorted board of the same geometry.
func (b *Board) Goal() *Board {
	g := &Board{
		corridor: make([]Cell, len(b.corridor)),
		rooms:    make([][]Cell, len(b.rooms)),
	}
	for i := range g.corridor {
		g.corridor[i] = EmptyCell()
	}
	for ri := range g.rooms {
		g.rooms[ri] = make([]Cell, b.Depth())
		for d := range g.rooms[ri] {
			g.rooms[ri][d] = ObjectCell(Kind(ri))
		}
	}

	return g
}

// clone returns a deep copy, the starting point of every transition.
func (b *Board) clone() *Board {
	c := &Board{
		corridor: make([]Cell, len(b.corridor)),
		rooms:    make([][]Cell, len(b.rooms)),
	}
	copy(c.corridor, b.corridor)
	for ri, room := range b.rooms {
		c.rooms[ri] = make([]Cell, len(room))
		copy(c.rooms[ri], room)
	}

	return c
}
