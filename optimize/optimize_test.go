package optimize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cpmnet/internalgraph"
	"github.com/katalvlaran/cpmnet/optimize"
)

// TestBuild_SingleInputDummyEventIsGlued wires event1 --dummy--> event2
// --X--> event3, where event2 has no other traffic. The dummy-only event
// must be folded away, leaving X starting directly from event1.
func TestBuild_SingleInputDummyEventIsGlued(t *testing.T) {
	a := internalgraph.NewArena(4)
	d := a.AddDummy()
	d.SrcEvent, d.DstEvent = 1, 2
	x := a.AddReal(1)
	x.SrcEvent, x.DstEvent = 2, 3

	result := optimize.Build(a, 3)

	assert.True(t, d.Dead, "the glued dummy must be tombstoned")
	assert.Equal(t, 1, x.SrcEvent)
	assert.Equal(t, 2, x.DstEvent)
	assert.Equal(t, 2, result.NumEvents)
}

// TestBuild_SingleOutputDummyEventIsGlued mirrors the input case: X feeds
// event2 with a single outgoing dummy into event3, and event2 has no
// other traffic draining it, so event2 and event3 are glued into one
// event (the single-input pass, which runs first, already folds event3,
// fed only by that dummy, into event2).
func TestBuild_SingleOutputDummyEventIsGlued(t *testing.T) {
	a := internalgraph.NewArena(4)
	x := a.AddReal(1)
	x.SrcEvent, x.DstEvent = 1, 2
	d := a.AddDummy()
	d.SrcEvent, d.DstEvent = 2, 3

	result := optimize.Build(a, 3)

	assert.True(t, d.Dead)
	assert.Equal(t, 1, x.SrcEvent)
	assert.Equal(t, 2, x.DstEvent)
	assert.Equal(t, 2, result.NumEvents)
}

// TestBuild_ParallelRealActivitiesAreSplit ensures two real activities
// sharing both endpoints (illegal in AoA) are separated through a fresh
// event and dummy tail.
func TestBuild_ParallelRealActivitiesAreSplit(t *testing.T) {
	a := internalgraph.NewArena(6)
	x := a.AddReal(1)
	x.SrcEvent, x.DstEvent = 1, 2
	y := a.AddReal(2)
	y.SrcEvent, y.DstEvent = 1, 2

	before := a.Len()
	result := optimize.Build(a, 2)

	assert.Greater(t, a.Len(), before, "a splitting dummy must have been added")
	assert.NotEqual(t, y.DstEvent, x.DstEvent, "the two activities no longer share both endpoints")
	assert.GreaterOrEqual(t, result.NumEvents, 3)
}

// TestBuild_PredecessorMergeDropsDuplicateDummies: event3 and event4 are
// each fed by dummies from the very same pair of source events {1, 2} -
// the pattern the overlap-prefix C2 pass leaves behind (one dummy per
// side representing an identical shared prefix). C4 must recognize the
// two destination events as equivalent and glue them, tombstoning the
// second pair of dummies. Events 1 and 2 are then each left with a single
// outgoing dummy, so pass 2b folds them into the merged event as well;
// with no live activity left, no event survives renumbering.
func TestBuild_PredecessorMergeDropsDuplicateDummies(t *testing.T) {
	a := internalgraph.NewArena(8)
	p1 := a.AddDummy()
	p1.SrcEvent, p1.DstEvent = 1, 3
	p2 := a.AddDummy()
	p2.SrcEvent, p2.DstEvent = 2, 3

	q1 := a.AddDummy()
	q1.SrcEvent, q1.DstEvent = 1, 4
	q2 := a.AddDummy()
	q2.SrcEvent, q2.DstEvent = 2, 4

	require.Equal(t, 4, a.Len())
	result := optimize.Build(a, 4)

	assert.True(t, q1.Dead, "the redundant dummy pair must be tombstoned")
	assert.True(t, q2.Dead)
	assert.True(t, p1.Dead, "events 1 and 2 then drain through one dummy each and are folded away")
	assert.True(t, p2.Dead)
	assert.Equal(t, 0, result.NumEvents)
}
