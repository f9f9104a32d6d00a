package internalgraph

// FakeID is the sentinel wbs_id carried by dummy activities.
const FakeID = 0

// DeadEvent is the out-of-range sentinel an activity's SrcEvent/DstEvent
// is set to once C4 tombstones it. It is deliberately <= 0 so it can
// never collide with a real 1-based event id.
const DeadEvent = 0

// Activity is a real activity carried over from the caller's AoN graph,
// or a dummy inserted by C2/C3/C4 to factor a shared prefix, an overlap,
// or a parallel-arrow collision. Pos is its stable identity for the
// lifetime of the arena; nothing outside this package ever renumbers
// positions (only event ids get renumbered).
type Activity struct {
	Pos     int  // 0-based position in Arena.Activities
	IsDummy bool // true for activities synthesized by C2/C3/C4
	WbsID   int  // original caller wbs_id; FakeID (0) for dummies

	FullDep  *BitSet // full transitive predecessor set, by position
	FullList []int   // FullDep materialized as an ordered list

	MinDep  *BitSet // minimal (transitively reduced) predecessor set
	MinList []int   // MinDep materialized as an ordered list

	SrcEvent int // 1-based source event id; 0 until C3 assigns it
	DstEvent int // 1-based destination event id; 0 until C3 assigns it

	Dead bool // tombstoned by C4; excluded from all external output
}

// RebuildMinList regenerates MinList from MinDep. Callers mutate MinDep
// directly (Set/Clear) during C2's handle_deps primitive and then call
// this to keep the list view consistent.
func (a *Activity) RebuildMinList() {
	a.MinList = a.MinDep.Bits()
}

// RebuildFullList regenerates FullList from FullDep.
func (a *Activity) RebuildFullList() {
	a.FullList = a.FullDep.Bits()
}

// Arena owns the growable, preallocated set of activities (real, then
// dummy) that the C1-C4 passes read and mutate in place. Capacity is
// fixed at construction to max(nAct, nLinks) + nLinks, generously
// bounding how many dummies the pipeline can ever need to insert. Every
// BitSet handed out is sized to that same capacity so later dummy
// insertion never requires resizing (and re-validating) an existing
// union.
type Arena struct {
	Activities []*Activity
	Capacity   int
}

// NewArena allocates an empty arena with room for `capacity` activities.
func NewArena(capacity int) *Arena {
	return &Arena{
		Activities: make([]*Activity, 0, capacity),
		Capacity:   capacity,
	}
}

// Add appends a new activity carrying wbsID (a dummy when isDummy is
// set, real otherwise) with freshly allocated, arena-capacity bitsets,
// and returns it.
func (a *Arena) Add(wbsID int, isDummy bool) *Activity {
	act := &Activity{
		Pos:      len(a.Activities),
		IsDummy:  isDummy,
		WbsID:    wbsID,
		FullDep:  NewBitSet(a.Capacity),
		MinDep:   NewBitSet(a.Capacity),
		FullList: nil,
		MinList:  nil,
	}
	a.Activities = append(a.Activities, act)
	return act
}

// AddReal appends a real activity carrying the given wbs_id.
func (a *Arena) AddReal(wbsID int) *Activity { return a.Add(wbsID, false) }

// AddDummy appends a dummy activity (WbsID == FakeID).
func (a *Arena) AddDummy() *Activity { return a.Add(FakeID, true) }

// Len returns the number of activities (real + dummy) currently held.
func (a *Arena) Len() int { return len(a.Activities) }

// Live returns activities that have not been tombstoned by C4.
func (a *Arena) Live() []*Activity {
	out := make([]*Activity, 0, len(a.Activities))
	for _, act := range a.Activities {
		if !act.Dead {
			out = append(out, act)
		}
	}
	return out
}
