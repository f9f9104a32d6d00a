package cpmnet

import (
	"sort"
	"sync"

	"github.com/katalvlaran/cpmnet/closure"
	"github.com/katalvlaran/cpmnet/dummy"
	"github.com/katalvlaran/cpmnet/event"
	"github.com/katalvlaran/cpmnet/internalgraph"
	"github.com/katalvlaran/cpmnet/optimize"
	"github.com/katalvlaran/cpmnet/schedule"
)

type wbsInfo struct {
	letter string
	name   string
	data   map[string]interface{}
	bounds effortBounds
}

// NetworkModel is the built, logically-immutable AoA network and its
// CPM/PERT schedule. Construct one with NewNetworkModel; every method
// afterward is a pure, concurrency-safe query (guarded by mu, mirroring
// lvlath/core's read/write-locked Graph, even though nothing mutates
// the model post-construction).
type NetworkModel struct {
	mu sync.RWMutex

	arena     *internalgraph.Arena
	meta      map[int]wbsInfo
	numEvents int
	sched     *schedule.Result
	opts      Options
	isPert    bool
}

// NewNetworkModel builds the AoA network and its schedule from a WBS
// map and one of the four Links shapes.
//
// Go maps carry no iteration order, so construction processes wbs
// entries in ascending wbs_id order: given the same (wbs, links,
// options), the result is always identical, regardless of Go's
// randomized map iteration.
func NewNetworkModel(wbs map[int]Activity, links Links, opts ...Option) (*NetworkModel, error) {
	options := DefaultOptions()
	for _, o := range opts {
		o(&options)
	}

	ids := make([]int, 0, len(wbs))
	for id := range wbs {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	meta := make(map[int]wbsInfo, len(wbs))
	order := make([]int, 0, len(wbs))
	for _, id := range ids {
		act := wbs[id]
		bounds, err := normalizeEffort(act, options.defaultRisk)
		if err != nil {
			return nil, err
		}
		meta[id] = wbsInfo{letter: act.Letter, name: act.Name, data: act.Data, bounds: bounds}
		order = append(order, id)
	}

	pairs, err := links.pairs()
	if err != nil {
		return nil, err
	}

	// The vertex set is the union of explicit activity ids and every
	// link endpoint; any endpoint not already in wbs becomes an
	// implicit zero-effort activity.
	seen := make(map[int]bool, len(order))
	for _, id := range order {
		seen[id] = true
	}
	for _, l := range pairs {
		for _, id := range [2]int{l.Src, l.Dst} {
			if !seen[id] {
				seen[id] = true
				order = append(order, id)
				meta[id] = wbsInfo{bounds: effortBounds{}}
			}
		}
	}

	options.logger.Debug().Str("stage", "input").Int("activities", len(order)).Int("links", len(pairs)).Msg("cpmnet: input parsed")

	nAct := len(order)
	nLinks := len(pairs)
	capacity := max(nAct, nLinks) + nLinks
	arena := internalgraph.NewArena(capacity)

	posOf := make(map[int]int, nAct)
	for _, id := range order {
		act := arena.AddReal(id)
		posOf[id] = act.Pos
	}

	closureLinks := make([]closure.Link, nLinks)
	for i, l := range pairs {
		closureLinks[i] = closure.Link{SrcPos: posOf[l.Src], DstPos: posOf[l.Dst]}
	}

	closureResult, err := closure.Build(arena, nAct, closureLinks)
	if err != nil {
		return nil, err
	}
	options.logger.Debug().Str("stage", "C1").Int("activities", nAct).Msg("cpmnet: closure computed")

	dummyResult := dummy.Build(arena, closureResult.ActPos)
	options.logger.Debug().Str("stage", "C2").Int("total_activities", arena.Len()).Msg("cpmnet: dummies inserted")

	eventResult := event.Build(arena, dummyResult.Order)
	options.logger.Debug().Str("stage", "C3").Int("events", eventResult.NumEvents).Msg("cpmnet: events emitted")

	effortsSchedule := make(map[int]schedule.EffortSpec, nAct)
	isPert := false
	for _, id := range order {
		b := meta[id].bounds
		pos := posOf[id]
		effortsSchedule[pos] = schedule.EffortSpec{Expected: b.mean, Optimistic: b.a, Pessimistic: b.b}
		if b.variance > 0 {
			isPert = true
		}
	}

	optimizeResult := optimize.Build(arena, eventResult.NumEvents)
	options.logger.Debug().Str("stage", "C4").Int("events", optimizeResult.NumEvents).Msg("cpmnet: events glued")

	schedResult, err := schedule.Build(arena, optimizeResult.NumEvents, effortsSchedule, options.duration, isPert)
	if err != nil {
		return nil, err
	}
	options.logger.Debug().Str("stage", "C5").Bool("pert", isPert).Msg("cpmnet: schedule computed")

	return &NetworkModel{
		arena:     arena,
		meta:      meta,
		numEvents: optimizeResult.NumEvents,
		sched:     schedResult,
		opts:      options,
		isPert:    isPert,
	}, nil
}
