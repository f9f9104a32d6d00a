package closure

import (
	"sort"

	"github.com/katalvlaran/cpmnet/internalgraph"
)

// Link is a precedence edge expressed as 0-based positions into the
// arena: SrcPos must finish before DstPos starts.
type Link struct {
	SrcPos int
	DstPos int
}

// Result is the outcome of Build: the activity positions reordered
// ascending by minimal predecessor-set size, then stably by full
// predecessor-set size, so that successors naturally sort later. C2
// consumes ActPos directly as its processing order.
type Result struct {
	ActPos []int
}

// Build runs C1 over the nAct real activities already present at arena
// positions [0, nAct), seeded by links. It mutates each activity's
// full/minimal predecessor bitsets and lists in place and returns the
// processing order for C2.
//
// Build fails with a *CycleError (wrapping ErrCycle) the moment any
// activity is found self-reachable.
func Build(arena *internalgraph.Arena, nAct int, links []Link) (*Result, error) {
	acts := arena.Activities

	// Step 1: seed full_dep[d,s] and full_act_dep[d] for every link.
	for _, l := range links {
		d, s := acts[l.DstPos], acts[l.SrcPos]
		if !d.FullDep.Test(s.Pos) {
			d.FullDep.Set(s.Pos)
			d.FullList = append(d.FullList, s.Pos)
		}
	}

	// Step 2: close each activity's full predecessor set via a
	// self-growing worklist over its own FullList. Because every visited
	// predecessor contributes at least its own seeded direct predecessors
	// (appended as new entries when not already known), this traversal
	// discovers i's entire transitive predecessor set regardless of the
	// order activities are processed in.
	for i := 0; i < nAct; i++ {
		if err := closeOne(acts, i); err != nil {
			return nil, err
		}
	}

	// Step 3: act_pos sorted ascending by |full_act_dep|.
	actPos := make([]int, nAct)
	for i := range actPos {
		actPos[i] = i
	}
	sort.SliceStable(actPos, func(a, b int) bool {
		return acts[actPos[a]].FullDep.Count() < acts[actPos[b]].FullDep.Count()
	})

	// Step 4: minimal cover. min_dep starts as a clone of full_dep for
	// every activity; iterate act_pos in reverse, clearing predecessors
	// dominated by another predecessor.
	for i := 0; i < nAct; i++ {
		acts[i].MinDep = acts[i].FullDep.Clone()
	}
	for idx := nAct - 1; idx >= 0; idx-- {
		pivot := acts[actPos[idx]]
		preds := pivot.FullList
		for _, j := range preds {
			for _, k := range preds {
				if j == k {
					continue
				}
				// full_dep[k,j]: j is a predecessor of k, so j is
				// implied via k and redundant as a direct predecessor
				// of pivot.
				if acts[k].FullDep.Test(j) {
					pivot.MinDep.Clear(j)
				}
			}
		}
	}

	// Step 5: materialize min_act_dep from min_dep.
	for i := 0; i < nAct; i++ {
		acts[i].RebuildMinList()
	}

	// Step 6: re-sort act_pos by |min_act_dep| then stably by
	// |full_act_dep|, so successors naturally sort later.
	sort.SliceStable(actPos, func(a, b int) bool {
		return acts[actPos[a]].FullDep.Count() < acts[actPos[b]].FullDep.Count()
	})
	sort.SliceStable(actPos, func(a, b int) bool {
		return acts[actPos[a]].MinDep.Count() < acts[actPos[b]].MinDep.Count()
	})

	return &Result{ActPos: actPos}, nil
}

// closeOne grows act i's FullList/FullDep to the full transitive
// predecessor set, failing with *CycleError if i becomes self-reachable.
func closeOne(acts []*internalgraph.Activity, i int) error {
	act := acts[i]
	for cursor := 0; cursor < len(act.FullList); cursor++ {
		d := act.FullList[cursor]
		for _, bit := range acts[d].FullList {
			if !act.FullDep.Test(bit) {
				act.FullDep.Set(bit)
				act.FullList = append(act.FullList, bit)
			}
		}
		if act.FullDep.Test(i) {
			return &CycleError{Pos: i}
		}
	}
	return nil
}
