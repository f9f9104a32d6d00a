package optimize

import "sort"

// mergeByPredecessors implements pass 1: dummy-only events (no real
// incoming arrow) sharing an identical predecessor-event set of size >=2
// are merged into one. Returns whether any merge happened.
func mergeByPredecessors(s *state) bool {
	info := s.analyze()

	events := make([]int, 0, len(info))
	for e := range info {
		events = append(events, e)
	}
	// Map iteration order is random; sort so the lower event id is
	// always the merge survivor, keeping the result deterministic.
	sort.Ints(events)

	changed := false
	seen := make(map[int]bool)
	for i := 0; i < len(events); i++ {
		e := events[i]
		if seen[e] {
			continue
		}
		ie := info[e]
		if ie.incomingReal || len(ie.dummyPreds) < 2 {
			continue
		}
		for j := i + 1; j < len(events); j++ {
			f := events[j]
			if seen[f] {
				continue
			}
			jf := info[f]
			if jf.incomingReal || len(jf.dummyPreds) < 2 {
				continue
			}
			if !sameSet(ie.dummyPreds, jf.dummyPreds) {
				continue
			}
			s.merge(e, f)
			for _, act := range jf.incoming {
				if act.IsDummy {
					act.Dead = true
				}
			}
			seen[f] = true
			changed = true
		}
	}
	if changed {
		s.relink()
	}
	return changed
}

// mergeSingleInputDummy implements pass 2a: a dummy-only event fed by
// exactly one incoming dummy is folded into that dummy's source event.
func mergeSingleInputDummy(s *state) bool {
	info := s.analyze()
	changed := false
	for e, ie := range info {
		if ie.incomingReal || len(ie.incoming) != 1 {
			continue
		}
		d := ie.incoming[0]
		if !d.IsDummy {
			continue
		}
		s.merge(d.SrcEvent, e)
		d.Dead = true
		changed = true
	}
	if changed {
		s.relink()
	}
	return changed
}

// mergeSingleOutputDummy implements pass 2b: an event with exactly one
// outgoing arrow, which is a dummy, is folded into that dummy's
// destination event.
func mergeSingleOutputDummy(s *state) bool {
	info := s.analyze()
	changed := false
	for e, ie := range info {
		if len(ie.outgoing) != 1 {
			continue
		}
		d := ie.outgoing[0]
		if !d.IsDummy {
			continue
		}
		s.merge(d.DstEvent, e)
		d.Dead = true
		changed = true
	}
	if changed {
		s.relink()
	}
	return changed
}

// glueToFixpoint repeats passes 1, 2a, 2b until a full round produces no
// further merges; each individual merge can expose new opportunities for
// the others, so a single pass over each is not sufficient in general.
func glueToFixpoint(s *state) {
	for {
		a := mergeByPredecessors(s)
		b := mergeSingleInputDummy(s)
		c := mergeSingleOutputDummy(s)
		if !a && !b && !c {
			return
		}
	}
}

// splitParallelArrows implements pass 3: any two real, live activities
// sharing both Src/DstEvent are illegal in AoA and are split by routing
// the second through a fresh event and dummy tail. Repeats until no
// duplicate pair remains, since splitting one pair can still leave a
// third activity colliding with the (unchanged) first.
func splitParallelArrows(s *state) {
	for {
		info := s.analyze()
		type key struct{ src, dst int }
		seen := make(map[key]bool)
		dupFound := false

		for _, ie := range info {
			for _, a := range ie.outgoing {
				if a.IsDummy {
					continue
				}
				k := key{a.SrcEvent, a.DstEvent}
				if seen[k] {
					newEvt := s.grow()
					tail := s.arena.AddDummy()
					tail.SrcEvent = newEvt
					tail.DstEvent = a.DstEvent
					a.DstEvent = newEvt
					dupFound = true
				} else {
					seen[k] = true
				}
			}
		}
		if !dupFound {
			return
		}
	}
}
