package dummy

import "github.com/katalvlaran/cpmnet/internalgraph"

// nestedPass runs nested-prefix reduction: for each pivot (in order),
// if some later activity's minimal predecessor list
// contains the pivot's entire minimal list as a proper subset, that
// shared prefix S is hoisted into one dummy, and every later activity
// whose minimal list contains S entirely is rewritten to depend on the
// dummy instead of S directly.
//
// order is both the iteration plan and an accumulator: dummies created
// here are appended to it so the overlap pass (and, within this same
// pass, later pivots) can see them too.
func nestedPass(arena *internalgraph.Arena, order *[]int) {
	acts := arena.Activities

	for pivotIdx := 0; pivotIdx < len(*order); pivotIdx++ {
		pivotPos := (*order)[pivotIdx]
		pivot := acts[pivotPos]
		s := pivot.MinList
		if len(s) == 0 {
			continue
		}

		var matched []int
		for j := pivotIdx + 1; j < len(*order); j++ {
			cand := acts[(*order)[j]]
			if isProperSupersetOf(cand.MinList, s) {
				matched = append(matched, (*order)[j])
			}
		}
		if len(matched) == 0 {
			continue
		}

		d := addDummy(arena, pivot.FullList, s)
		*order = append(*order, d.Pos)
		acts = arena.Activities
		for _, pos := range matched {
			handleDeps(acts[pos], s, d.Pos)
		}
	}
}
