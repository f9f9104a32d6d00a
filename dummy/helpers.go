package dummy

import "github.com/katalvlaran/cpmnet/internalgraph"

// handleDeps removes every position in s from target's minimal
// predecessor set, replaces it with a single dependency on dummy, and
// appends dummy to target's full predecessor set so later passes see
// the full transitive relationship (the full predecessor set is only
// ever grown, never pruned).
func handleDeps(target *internalgraph.Activity, s []int, dummyPos int) {
	for _, d := range s {
		target.MinDep.Clear(d)
	}
	target.MinDep.Set(dummyPos)
	if !target.FullDep.Test(dummyPos) {
		target.FullDep.Set(dummyPos)
		target.FullList = append(target.FullList, dummyPos)
	}
	target.RebuildMinList()
}

// addDummy appends a new dummy activity whose full and minimal
// predecessor sets are exactly fullS and minS.
func addDummy(arena *internalgraph.Arena, fullS, minS []int) *internalgraph.Activity {
	d := arena.AddDummy()
	for _, p := range fullS {
		d.FullDep.Set(p)
	}
	d.FullList = append([]int(nil), fullS...)
	for _, p := range minS {
		d.MinDep.Set(p)
	}
	d.MinList = append([]int(nil), minS...)
	return d
}

// isProperSupersetOf reports whether super contains every element of sub
// and has strictly more elements (so sub is a *proper* subset).
func isProperSupersetOf(super, sub []int) bool {
	if len(super) <= len(sub) {
		return false
	}
	return containsAll(super, sub)
}

// containsAll reports whether every element of sub appears in super.
func containsAll(super, sub []int) bool {
	if len(sub) == 0 {
		return false
	}
	set := toSet(super)
	for _, v := range sub {
		if !set[v] {
			return false
		}
	}
	return true
}

// intersect returns the elements common to a and b, in a's order.
func intersect(a, b []int) []int {
	bs := toSet(b)
	out := make([]int, 0, len(a))
	for _, v := range a {
		if bs[v] {
			out = append(out, v)
		}
	}
	return out
}

func toSet(s []int) map[int]bool {
	m := make(map[int]bool, len(s))
	for _, v := range s {
		m[v] = true
	}
	return m
}
