package schedule

import "github.com/katalvlaran/cpmnet/internalgraph"

// eventArcs summarizes, per event, the live activities that touch it.
type eventArcs struct {
	incoming []*internalgraph.Activity
	outgoing []*internalgraph.Activity
}

func buildEventArcs(arena *internalgraph.Arena, numEvents int) []eventArcs {
	arcs := make([]eventArcs, numEvents+1) // 1-indexed, index 0 unused
	for _, a := range arena.Live() {
		arcs[a.SrcEvent].outgoing = append(arcs[a.SrcEvent].outgoing, a)
		arcs[a.DstEvent].incoming = append(arcs[a.DstEvent].incoming, a)
	}
	return arcs
}

// topoOrder returns event ids 1..numEvents in topological order (a
// predecessor always precedes every event it feeds) via a Kahn sweep,
// and asserts exactly one source event (no incoming) and exactly one
// sink event (no outgoing).
func topoOrder(arcs []eventArcs, numEvents int) ([]int, error) {
	indeg := make([]int, numEvents+1)
	sources := 0
	sinks := 0
	for e := 1; e <= numEvents; e++ {
		indeg[e] = len(arcs[e].incoming)
		if indeg[e] == 0 {
			sources++
		}
		if len(arcs[e].outgoing) == 0 {
			sinks++
		}
	}
	if sources != 1 || sinks != 1 {
		return nil, ErrInternal
	}

	order := make([]int, 0, numEvents)
	queue := make([]int, 0, numEvents)
	for e := 1; e <= numEvents; e++ {
		if indeg[e] == 0 {
			queue = append(queue, e)
		}
	}
	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]
		order = append(order, e)
		for _, a := range arcs[e].outgoing {
			indeg[a.DstEvent]--
			if indeg[a.DstEvent] == 0 {
				queue = append(queue, a.DstEvent)
			}
		}
	}
	if len(order) != numEvents {
		return nil, ErrInternal
	}
	return order, nil
}

// stages computes each event's topological stage (longest distance, in
// edges, from the unique source event) given a valid topological order.
func stages(arcs []eventArcs, order []int, numEvents int) []int {
	stage := make([]int, numEvents+1)
	for _, e := range order {
		for _, a := range arcs[e].outgoing {
			if stage[e]+1 > stage[a.DstEvent] {
				stage[a.DstEvent] = stage[e] + 1
			}
		}
	}
	return stage
}

// renumberByStage compacts event ids so ascending id agrees with
// ascending stage (ties broken by the prior id), rewrites every live
// activity's Src/DstEvent, and returns the new stage-indexed (by new
// id) slice alongside the new topological order.
func renumberByStage(arena *internalgraph.Arena, arcs []eventArcs, order []int, stage []int, numEvents int) (newOrder []int, newStage []int) {
	sorted := append([]int(nil), order...)
	// order is already topological; stable sort by stage preserves it
	// as the tie-break, which is exactly the desired secondary key.
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && stage[sorted[j-1]] > stage[sorted[j]]; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}

	compact := make(map[int]int, numEvents)
	for i, e := range sorted {
		compact[e] = i + 1
	}
	for _, a := range arena.Live() {
		a.SrcEvent = compact[a.SrcEvent]
		a.DstEvent = compact[a.DstEvent]
	}

	newStage = make([]int, numEvents+1)
	for oldID, newID := range compact {
		newStage[newID] = stage[oldID]
	}
	newOrder = make([]int, numEvents)
	for i := range newOrder {
		newOrder[i] = i + 1
	}
	return newOrder, newStage
}
