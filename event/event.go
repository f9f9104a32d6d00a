package event

import "github.com/katalvlaran/cpmnet/internalgraph"

// Result reports the dense event id space C3 produced.
type Result struct {
	NumEvents int
}

// Build assigns SrcEvent/DstEvent to every activity in order (real
// activities and the dummies C2 synthesized), growing arena with further
// "collision" dummies whenever a second arrow would otherwise share both
// endpoints with an existing one.
func Build(arena *internalgraph.Arena, order []int) *Result {
	acts := arena.Activities

	numDep := make(map[int]int, len(order))
	started := make(map[int]bool, len(order))
	dependents := make(map[int][]int) // predecessor position -> dependent positions

	for _, p := range order {
		numDep[p] = len(acts[p].MinList)
		for _, pred := range acts[p].MinList {
			dependents[pred] = append(dependents[pred], p)
		}
	}

	evtCounter := 1

	findStartable := func() []int {
		var group []int
		for _, p := range order {
			if numDep[p] == 0 && !started[p] {
				started[p] = true
				acts[p].SrcEvent = evtCounter
				group = append(group, p)
			}
		}
		return group
	}

	var queue []int

	initial := findStartable()
	evtCounter++
	queue = append(queue, initial...)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, dep := range dependents[cur] {
			numDep[dep]--
		}

		group := findStartable()
		if len(group) > 0 {
			// Every member of this round became startable at the same
			// new event, so every one of their predecessors finishes
			// here too - not just the first member's.
			for _, p := range group {
				for _, predPos := range acts[p].MinList {
					pred := acts[predPos]
					switch {
					case pred.DstEvent == evtCounter:
						// Already pinned to this event by an earlier
						// group member sharing the same predecessor.
					case pred.DstEvent != 0:
						// A second, later arrival at the same predecessor
						// would collide; bridge it through a fresh
						// zero-duration dummy instead.
						d := arena.AddDummy()
						d.SrcEvent = pred.DstEvent
						d.DstEvent = evtCounter
					default:
						pred.DstEvent = evtCounter
					}
				}
			}
			evtCounter++
			queue = append(queue, group...)
		}
	}

	// The final event absorbs every arrow whose destination is still
	// unassigned once the sweep terminates.
	sink := evtCounter
	sinkUsed := false
	for _, p := range order {
		if acts[p].DstEvent == 0 {
			acts[p].DstEvent = sink
			sinkUsed = true
		}
	}
	if sinkUsed {
		evtCounter++
	}

	return &Result{NumEvents: evtCounter - 1}
}
