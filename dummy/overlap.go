package dummy

import "github.com/katalvlaran/cpmnet/internalgraph"

// overlapPass runs overlap reduction over the now-enlarged activity set
// (order, already grown by nestedPass): for each activity i, find the
// first j whose minimal predecessor list overlaps i's without one
// containing the other; factor the shared prefix through a pair of
// dummies (one for i, one for j, since neither side's set contains the
// other), then rewrite every further activity whose minimal list
// contains the same prefix to depend on the first of the two dummies.
func overlapPass(arena *internalgraph.Arena, order *[]int) {
	acts := arena.Activities

	for i := 0; i < len(*order); i++ {
		iAct := acts[(*order)[i]]

		for j := i + 1; j < len(*order); j++ {
			jAct := acts[(*order)[j]]

			common := intersect(iAct.MinList, jAct.MinList)
			if len(common) == 0 {
				continue
			}
			// Containment is nestedPass's job, not overlap's: skip if S
			// equals the whole of either side.
			if len(common) == len(iAct.MinList) || len(common) == len(jAct.MinList) {
				continue
			}

			fullCommon := intersect(iAct.FullList, jAct.FullList)

			// Freeze the scan bound before appending d1/d2: they
			// trivially "contain" common (they embody it), so letting
			// the scan below reach them would rewrite a dummy to
			// depend on itself.
			scanBound := len(*order)

			d1 := addDummy(arena, fullCommon, common)
			handleDeps(iAct, common, d1.Pos)

			d2 := addDummy(arena, fullCommon, common)
			handleDeps(jAct, common, d2.Pos)

			*order = append(*order, d1.Pos, d2.Pos)
			acts = arena.Activities

			for k := j + 1; k < scanBound; k++ {
				kAct := acts[(*order)[k]]
				if kAct == iAct || kAct == jAct {
					continue
				}
				if containsAll(kAct.MinList, common) {
					handleDeps(kAct, common, d1.Pos)
				}
			}

			break
		}
	}
}
