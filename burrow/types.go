// Package burrow defines the cell/object model and sentinel errors for
// the sorting-maze solver.
package burrow

import "errors"

// Sentinel errors for board construction and parsing.
var (
	// ErrNilBoard indicates a nil *Board was passed to a solver entry point.
	ErrNilBoard = errors.New("burrow: board is nil")

	// ErrBadDiagram indicates the diagram's overall shape is wrong
	// (too few rows, ragged walls, corridor row malformed).
	ErrBadDiagram = errors.New("burrow: malformed maze diagram")

	// ErrBadCharacter indicates an unrecognized character, or an object
	// kind with no room on this board, at some diagram position.
	ErrBadCharacter = errors.New("burrow: unrecognized maze character")

	// ErrRoomCount indicates the corridor length implies a room count
	// outside the supported 2..4 range.
	ErrRoomCount = errors.New("burrow: unsupported room count")

	// ErrCellPayload indicates an Empty or Wall cell constructed with an
	// object payload, or an Occupied cell constructed without one.
	ErrCellPayload = errors.New("burrow: cell kind and payload disagree")
)

// Kind identifies one of the four object kinds, A through D.
type Kind uint8

// The four object kinds. Per-step energy is strictly increasing across
// kinds; the target room index equals the kind's ordinal.
const (
	KindA Kind = iota
	KindB
	KindC
	KindD

	kindCount = 4
)

// stepCosts maps each kind to its fixed per-step energy.
var stepCosts = [kindCount]int64{1, 10, 100, 1000}

// StepCost returns the energy spent per step moved by this kind.
func (k Kind) StepCost() int64 { return stepCosts[k] }

// TargetRoom returns the room index objects of this kind must end in.
func (k Kind) TargetRoom() int { return int(k) }

// String returns the single-letter diagram form of the kind.
func (k Kind) String() string { return string(rune('A' + byte(k))) }

// Object is a movable occupant of a cell.
type Object struct {
	Kind Kind
}

// CellKind tags the three cell variants.
type CellKind uint8

const (
	// Empty is a vacant, enterable cell.
	Empty CellKind = iota
	// Wall is an impassable cell; walls only occur in the diagram frame.
	Wall
	// Occupied is a cell holding exactly one object.
	Occupied
)

// Cell is a tagged value: Empty, Wall, or Occupied by an object. The
// object payload is meaningful only when the kind is Occupied; NewCell
// rejects any other combination, so an invalid Empty-with-payload cell
// cannot be constructed.
type Cell struct {
	kind CellKind
	obj  Object
}

// EmptyCell returns a vacant cell.
func EmptyCell() Cell { return Cell{kind: Empty} }

// WallCell returns an impassable cell.
func WallCell() Cell { return Cell{kind: Wall} }

// ObjectCell returns a cell occupied by an object of kind k.
func ObjectCell(k Kind) Cell { return Cell{kind: Occupied, obj: Object{Kind: k}} }

// NewCell builds a cell from an explicit kind and optional payload,
// validating that they agree: Occupied requires a payload, Empty and Wall
// forbid one. Returns ErrCellPayload on disagreement.
func NewCell(kind CellKind, obj *Object) (Cell, error) {
	switch kind {
	case Occupied:
		if obj == nil {
			return Cell{}, ErrCellPayload
		}
		return Cell{kind: Occupied, obj: *obj}, nil
	case Empty, Wall:
		if obj != nil {
			return Cell{}, ErrCellPayload
		}
		return Cell{kind: kind}, nil
	}

	return Cell{}, ErrCellPayload
}

// Kind returns the cell's variant tag.
func (c Cell) Kind() CellKind { return c.kind }

// IsEmpty reports whether the cell is vacant.
func (c Cell) IsEmpty() bool { return c.kind == Empty }

// Object returns the occupant and true when the cell is Occupied.
func (c Cell) Object() (Object, bool) {
	if c.kind != Occupied {
		return Object{}, false
	}

	return c.obj, true
}

// glyph returns the single-byte diagram form of the cell, used by Key.
func (c Cell) glyph() byte {
	switch c.kind {
	case Wall:
		return '#'
	case Occupied:
		return 'A' + byte(c.obj.Kind)
	default:
		return '.'
	}
}
