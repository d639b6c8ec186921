package burrow_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/burrownet/burrow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoRoomSorted is a 2-room, depth-2 instance already fully sorted.
var twoRoomSorted = []string{
	"#########",
	"#.......#",
	"###A#B###",
	"  #A#B#",
	"  #####",
}

// fourRoomSample is the classic 4-room, depth-2 instance.
var fourRoomSample = []string{
	"#############",
	"#...........#",
	"###B#C#B#D###",
	"  #A#D#C#A#",
	"  #########",
}

// TestKind_Properties pins the per-kind energy table and room targets.
func TestKind_Properties(t *testing.T) {
	kinds := []burrow.Kind{burrow.KindA, burrow.KindB, burrow.KindC, burrow.KindD}
	costs := []int64{1, 10, 100, 1000}
	for i, k := range kinds {
		if got := k.StepCost(); got != costs[i] {
			t.Errorf("StepCost(%s) = %d; want %d", k, got, costs[i])
		}
		if got := k.TargetRoom(); got != i {
			t.Errorf("TargetRoom(%s) = %d; want %d", k, got, i)
		}
	}
	// Strictly increasing across kinds.
	for i := 1; i < len(kinds); i++ {
		if kinds[i].StepCost() <= kinds[i-1].StepCost() {
			t.Errorf("StepCost not strictly increasing at %s", kinds[i])
		}
	}
}

// TestNewCell_PayloadValidation covers the tagged-cell invariant: a Wall
// or Empty cell never carries a payload, an Occupied cell always does.
func TestNewCell_PayloadValidation(t *testing.T) {
	obj := burrow.Object{Kind: burrow.KindC}

	_, err := burrow.NewCell(burrow.Empty, &obj)
	assert.ErrorIs(t, err, burrow.ErrCellPayload, "Empty with payload must fail")

	_, err = burrow.NewCell(burrow.Wall, &obj)
	assert.ErrorIs(t, err, burrow.ErrCellPayload, "Wall with payload must fail")

	_, err = burrow.NewCell(burrow.Occupied, nil)
	assert.ErrorIs(t, err, burrow.ErrCellPayload, "Occupied without payload must fail")

	c, err := burrow.NewCell(burrow.Occupied, &obj)
	require.NoError(t, err)
	got, ok := c.Object()
	require.True(t, ok)
	assert.Equal(t, burrow.KindC, got.Kind)

	e, err := burrow.NewCell(burrow.Empty, nil)
	require.NoError(t, err)
	assert.True(t, e.IsEmpty())
}

// TestParse_TwoRoomBoard checks geometry and content of a small diagram.
func TestParse_TwoRoomBoard(t *testing.T) {
	b, err := burrow.Parse(twoRoomSorted)
	require.NoError(t, err)
	assert.Equal(t, 2, b.RoomCount())
	assert.Equal(t, 2, b.Depth())
	assert.True(t, b.IsGoal(), "sorted board must be the goal state")
	assert.Equal(t, ".......|AA|BB", b.Key())
}

// TestParse_FourRoomBoard parses the classic instance.
func TestParse_FourRoomBoard(t *testing.T) {
	b, err := burrow.Parse(fourRoomSample)
	require.NoError(t, err)
	assert.Equal(t, 4, b.RoomCount())
	assert.Equal(t, 2, b.Depth())
	assert.False(t, b.IsGoal())
	assert.Equal(t, "...........|BA|CD|BC|DA", b.Key())
}

// TestParse_StopsAtEmptyLine ignores everything past the first blank.
func TestParse_StopsAtEmptyLine(t *testing.T) {
	lines := append(append([]string{}, twoRoomSorted...), "", "garbage that must be ignored")
	b, err := burrow.Parse(lines)
	require.NoError(t, err)
	assert.True(t, b.IsGoal())
}

// TestParse_Errors walks the failure taxonomy: shape, characters, and
// room-count violations are all fatal construction errors.
func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  error
	}{
		{
			name:  "too few rows",
			lines: []string{"#####", "#...#"},
			want:  burrow.ErrBadDiagram,
		},
		{
			name: "unrecognized corridor character",
			lines: []string{
				"#########",
				"#..X....#",
				"###A#B###",
				"  #A#B#",
				"  #####",
			},
			want: burrow.ErrBadCharacter,
		},
		{
			name: "object kind with no room",
			lines: []string{
				"#########",
				"#.......#",
				"###C#B###",
				"  #A#B#",
				"  #####",
			},
			want: burrow.ErrBadCharacter,
		},
		{
			name: "corridor fits no room layout",
			lines: []string{
				"########",
				"#......#",
				"###A#B##",
				"  #A#B#",
				"  #####",
			},
			want: burrow.ErrRoomCount,
		},
		{
			name: "single room unsupported",
			lines: []string{
				"#######",
				"#.....#",
				"###A###",
				"  #A#",
				"  ###",
			},
			want: burrow.ErrRoomCount,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := burrow.Parse(tc.lines)
			if !errors.Is(err, tc.want) {
				t.Errorf("Parse() error = %v; want %v", err, tc.want)
			}
		})
	}
}

// TestBoard_GoalAndEqual verifies the computed goal and structural
// equality semantics.
func TestBoard_GoalAndEqual(t *testing.T) {
	b, err := burrow.Parse(fourRoomSample)
	require.NoError(t, err)

	g := b.Goal()
	assert.True(t, g.IsGoal())
	assert.Equal(t, "...........|AA|BB|CC|DD", g.Key())
	assert.False(t, b.Equal(g))
	assert.True(t, g.Equal(g.Goal()), "goal of the goal is itself")

	// Equality is structural: an identical re-parse is the same state.
	again, err := burrow.Parse(fourRoomSample)
	require.NoError(t, err)
	assert.True(t, b.Equal(again))
}
