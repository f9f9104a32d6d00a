package optimize

import "github.com/katalvlaran/cpmnet/internalgraph"

// Result reports the event count after renumbering.
type Result struct {
	NumEvents int
}

// Build runs C4 over arena: gluing to a fixpoint, splitting parallel
// arrows, then renumbering events to a dense 1..K' range and dropping
// dead activities' stale event references.
func Build(arena *internalgraph.Arena, numEvents int) *Result {
	s := newState(arena, numEvents)

	glueToFixpoint(s)
	splitParallelArrows(s)
	s.relink()

	k := renumber(s)

	return &Result{NumEvents: k}
}

// renumber compacts the surviving event ids referenced by any live
// activity to a dense [1, K'] range, rewrites every live activity's
// Src/DstEvent accordingly, and tombstones any activity whose endpoints
// are still the dead sentinel.
func renumber(s *state) int {
	used := make(map[int]bool)
	for _, a := range s.arena.Activities {
		if a.Dead {
			continue
		}
		if a.SrcEvent == internalgraph.DeadEvent || a.DstEvent == internalgraph.DeadEvent {
			a.Dead = true
			continue
		}
		used[a.SrcEvent] = true
		used[a.DstEvent] = true
	}

	ordered := make([]int, 0, len(used))
	for e := range used {
		ordered = append(ordered, e)
	}
	sortInts(ordered)

	compact := make(map[int]int, len(ordered))
	for i, e := range ordered {
		compact[e] = i + 1
	}

	for _, a := range s.arena.Activities {
		if a.Dead {
			continue
		}
		a.SrcEvent = compact[a.SrcEvent]
		a.DstEvent = compact[a.DstEvent]
	}

	return len(ordered)
}

func sortInts(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
