package dummy

import "github.com/katalvlaran/cpmnet/internalgraph"

// Result carries the full processing order (original activities plus
// every dummy synthesized by the two passes) for the event emitter (C3)
// to consume.
type Result struct {
	Order []int
}

// Build runs C2 over arena, given the activity order closure (C1)
// computed. It grows arena in place with dummy activities and returns
// the full order (real activities, in closure's order, followed by
// dummies in the order they were synthesized).
func Build(arena *internalgraph.Arena, closureOrder []int) *Result {
	order := append([]int(nil), closureOrder...)

	nestedPass(arena, &order)
	overlapPass(arena, &order)

	return &Result{Order: order}
}
