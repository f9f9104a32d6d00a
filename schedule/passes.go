package schedule

import (
	"math"

	"github.com/katalvlaran/cpmnet/internalgraph"
)

// pertShape is the classic PERT shape constant (gamma = 4) used for the
// per-activity duration variance formula; it is independent of the
// shape parameter fit_mpert later solves for quantile queries over the
// propagated path mean/variance.
const pertShape = 4.0

// Build runs C5 over arena: stage assignment and renumbering, the
// early/late CPM sweeps, the optional optimistic/pessimistic PERT
// sweeps, and reserve computation.
//
// efforts is keyed by activity position (internalgraph.Activity.Pos);
// dummies need no entry (their effort is always zero). isPert gates
// the optimistic/pessimistic sweeps and per-activity variance.
func Build(arena *internalgraph.Arena, numEvents int, efforts map[int]EffortSpec, dur DurationFunc, isPert bool) (*Result, error) {
	arcs := buildEventArcs(arena, numEvents)
	order, err := topoOrder(arcs, numEvents)
	if err != nil {
		return nil, err
	}
	stage := stages(arcs, order, numEvents)
	order, stage = renumberByStage(arena, arcs, order, stage, numEvents)
	arcs = buildEventArcs(arena, numEvents) // Src/DstEvent just changed

	sched := make(map[int]*ScheduledActivity, len(arena.Live()))
	for _, a := range arena.Live() {
		sched[a.Pos] = &ScheduledActivity{Activity: a}
	}

	events := make([]Event, numEvents)
	for i := range events {
		events[i] = Event{ID: i + 1, Stage: stage[i+1]}
	}

	if err := runEarly(arcs, order, efforts, sched, dur, isPert, events); err != nil {
		return nil, err
	}
	projectHorizon := 0.0
	for _, e := range events {
		if e.Early.RES > projectHorizon {
			projectHorizon = e.Early.RES
		}
	}
	if err := runLate(arcs, order, sched, dur, projectHorizon, events); err != nil {
		return nil, err
	}
	if isPert {
		runScalarSweep(arcs, order, efforts, sched, dur, true, events)
		runScalarSweep(arcs, order, efforts, sched, dur, false, events)
	}
	if err := computeReserves(events, sched); err != nil {
		return nil, err
	}

	acts := make([]*ScheduledActivity, 0, len(sched))
	for _, a := range arena.Live() {
		acts = append(acts, sched[a.Pos])
	}

	return &Result{Events: events, Activities: acts}, nil
}

func activityEffort(a *internalgraph.Activity, efforts map[int]EffortSpec) EffortSpec {
	if a.IsDummy {
		return EffortSpec{}
	}
	return efforts[a.Pos]
}

func checkSign(effort, d float64) error {
	if effort == 0 && d != 0 {
		return ErrInternal
	}
	if effort > 0 && d < 0 {
		return ErrInternal
	}
	if effort < 0 && d > 0 {
		return ErrInternal
	}
	return nil
}

func runEarly(arcs []eventArcs, order []int, efforts map[int]EffortSpec, sched map[int]*ScheduledActivity, dur DurationFunc, isPert bool, events []Event) error {
	for _, e := range order {
		base := events[e-1].Early
		for _, a := range arcs[e].outgoing {
			eff := activityEffort(a, efforts)
			d, err := dur(eff.Expected, a, &base.RES)
			if err != nil {
				return err
			}
			if err := checkSign(eff.Expected, d); err != nil {
				return err
			}

			sa := sched[a.Pos]
			sa.DurRes = d
			variance := 0.0
			if isPert && !a.IsDummy {
				dOpt, err := dur(eff.Optimistic, a, &base.RES)
				if err != nil {
					return err
				}
				dPes, err := dur(eff.Pessimistic, a, &base.RES)
				if err != nil {
					return err
				}
				sa.DurOpt, sa.DurPes = dOpt, dPes
				v := (d - dOpt) * (dPes - d) / (3 + pertShape)
				if v < 0 {
					return ErrInternal
				}
				sa.PertD = v
				variance = v
			}

			sa.EarlyStart = base
			sa.EarlyEnd = base.Add(Triple{RES: d, VAR: variance})

			dst := events[a.DstEvent-1]
			dst.Early = ChooseEarly(dst.Early, sa.EarlyEnd)
			events[a.DstEvent-1] = dst
		}
	}
	return nil
}

func runLate(arcs []eventArcs, order []int, sched map[int]*ScheduledActivity, dur DurationFunc, horizon float64, events []Event) error {
	for i := range events {
		events[i].Late = Triple{RES: math.Inf(1)}
	}
	sinkID := -1
	for e := 1; e <= len(events); e++ {
		if len(arcs[e].outgoing) == 0 {
			sinkID = e
			break
		}
	}
	if sinkID < 0 {
		return ErrInternal
	}
	events[sinkID-1].Late = Triple{RES: horizon}

	for i := len(order) - 1; i >= 0; i-- {
		e := order[i]
		if len(arcs[e].outgoing) == 0 {
			continue
		}
		for _, a := range arcs[e].outgoing {
			sa := sched[a.Pos]
			dst := events[a.DstEvent-1]
			sa.LateEnd = dst.Late
			sa.LateStart = sa.LateEnd.Add(Triple{RES: -sa.DurRes, VAR: sa.PertD})

			cur := events[e-1]
			cur.Late = ChooseLate(cur.Late, sa.LateStart)
			events[e-1] = cur
		}
	}
	for _, e := range events {
		if e.Late.RES < e.Early.RES {
			return ErrInternal
		}
	}
	return nil
}

func runScalarSweep(arcs []eventArcs, order []int, efforts map[int]EffortSpec, sched map[int]*ScheduledActivity, dur DurationFunc, optimistic bool, events []Event) {
	for _, e := range order {
		var base float64
		if optimistic {
			base = events[e-1].Optimistic
		} else {
			base = events[e-1].Pessimistic
		}
		for _, a := range arcs[e].outgoing {
			if a.IsDummy {
				if optimistic {
					if base > events[a.DstEvent-1].Optimistic {
						updateOptimistic(events, a.DstEvent, base)
					}
				} else {
					if base > events[a.DstEvent-1].Pessimistic {
						updatePessimistic(events, a.DstEvent, base)
					}
				}
				continue
			}
			eff := activityEffort(a, efforts)
			sa := sched[a.Pos]
			var effort float64
			if optimistic {
				effort = eff.Optimistic
			} else {
				effort = eff.Pessimistic
			}
			d, err := dur(effort, a, &base)
			if err != nil {
				continue
			}
			start := base
			end := base + d
			if optimistic {
				sa.OptStart, sa.OptEnd = start, end
				if end > events[a.DstEvent-1].Optimistic {
					updateOptimistic(events, a.DstEvent, end)
				}
			} else {
				sa.PesStart, sa.PesEnd = start, end
				if end > events[a.DstEvent-1].Pessimistic {
					updatePessimistic(events, a.DstEvent, end)
				}
			}
		}
	}
}

func updateOptimistic(events []Event, e int, v float64) {
	ev := events[e-1]
	ev.Optimistic = v
	events[e-1] = ev
}

func updatePessimistic(events []Event, e int, v float64) {
	ev := events[e-1]
	ev.Pessimistic = v
	events[e-1] = ev
}

func computeReserves(events []Event, sched map[int]*ScheduledActivity) error {
	for i := range events {
		e := &events[i]
		r := e.Late.Sub(e.Early)
		if r.RES < -r.ERR {
			return ErrInternal
		}
		if r.RES < r.ERR && r.RES > -r.ERR {
			r.RES = 0
		}
		e.Reserve = Triple{RES: r.RES, VAR: e.Late.VAR + e.Early.VAR, ERR: e.Late.ERR + e.Early.ERR}
	}
	for _, sa := range sched {
		startReserve := sa.LateStart.Sub(sa.EarlyStart)
		endReserve := sa.LateEnd.Sub(sa.EarlyEnd)
		if startReserve.ERR <= endReserve.ERR {
			sa.Reserve = startReserve
		} else {
			sa.Reserve = endReserve
		}
		if sa.Reserve.RES < -sa.Reserve.ERR {
			return ErrInternal
		}
	}
	return nil
}
