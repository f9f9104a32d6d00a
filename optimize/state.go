package optimize

import "github.com/katalvlaran/cpmnet/internalgraph"

// state holds the event-merge map (events[i] is the current
// representative of original event i+1) alongside the arena it is
// gluing.
type state struct {
	arena  *internalgraph.Arena
	events []int // 1-based event id -> current representative, stored 0-indexed
}

func newState(arena *internalgraph.Arena, numEvents int) *state {
	events := make([]int, numEvents)
	for i := range events {
		events[i] = i + 1
	}
	return &state{arena: arena, events: events}
}

// resolve follows the merge map for event e to its current representative.
func (s *state) resolve(e int) int {
	for {
		next := s.events[e-1]
		if next == e {
			return e
		}
		e = next
	}
}

// grow appends a fresh identity slot for a newly created event (pass 3)
// and returns its id.
func (s *state) grow() int {
	id := len(s.events) + 1
	s.events = append(s.events, id)
	return id
}

// merge redirects f's representative to e's current representative.
func (s *state) merge(e, f int) {
	s.events[f-1] = s.resolve(e)
}

// relink rewrites every live activity's Src/DstEvent through the current
// merge map. Must be called after every round of merges before the next
// pass inspects event topology.
func (s *state) relink() {
	for _, a := range s.arena.Activities {
		if a.Dead {
			continue
		}
		if a.SrcEvent > 0 {
			a.SrcEvent = s.resolve(a.SrcEvent)
		}
		if a.DstEvent > 0 {
			a.DstEvent = s.resolve(a.DstEvent)
		}
	}
}

// eventInfo summarizes, per live event, what feeds and drains it.
type eventInfo struct {
	incoming     []*internalgraph.Activity
	outgoing     []*internalgraph.Activity
	incomingReal bool
	// dummyPreds is the set of distinct source events contributed by
	// incoming dummy activities.
	dummyPreds []int
}

// analyze recomputes per-event incoming/outgoing activity lists from the
// arena's current (already relinked) Src/DstEvent values.
func (s *state) analyze() map[int]*eventInfo {
	info := make(map[int]*eventInfo)
	get := func(e int) *eventInfo {
		in, ok := info[e]
		if !ok {
			in = &eventInfo{}
			info[e] = in
		}
		return in
	}
	for _, a := range s.arena.Activities {
		if a.Dead || a.SrcEvent == 0 || a.DstEvent == 0 {
			continue
		}
		get(a.SrcEvent).outgoing = append(get(a.SrcEvent).outgoing, a)
		dst := get(a.DstEvent)
		dst.incoming = append(dst.incoming, a)
		if a.IsDummy {
			dst.dummyPreds = appendUnique(dst.dummyPreds, a.SrcEvent)
		} else {
			dst.incomingReal = true
		}
	}
	return info
}

func appendUnique(list []int, v int) []int {
	for _, x := range list {
		if x == v {
			return list
		}
	}
	return append(list, v)
}

// sameSet reports whether a and b contain the same elements, ignoring order.
func sameSet(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[int]int, len(a))
	for _, v := range a {
		set[v]++
	}
	for _, v := range b {
		set[v]--
		if set[v] < 0 {
			return false
		}
	}
	return true
}
