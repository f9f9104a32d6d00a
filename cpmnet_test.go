package cpmnet_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cpmnet"
	"github.com/katalvlaran/cpmnet/closure"
	"github.com/katalvlaran/cpmnet/internalgraph"
)

func ptr(v float64) *float64 { return &v }

// TestNewNetworkModel_LinearChainSchedulesSequentially: wbs_id 1 -> 2,
// each carrying a direct expected effort, produces a 7-unit project
// (4 + 3) with no PERT extras (no variance was supplied anywhere).
func TestNewNetworkModel_LinearChainSchedulesSequentially(t *testing.T) {
	wbs := map[int]cpmnet.Activity{
		1: {WbsID: 1, Letter: "A", Expected: ptr(4)},
		2: {WbsID: 2, Letter: "B", Expected: ptr(3)},
	}
	links := cpmnet.LinksFromArrays([]int{1}, []int{2})

	m, err := cpmnet.NewNetworkModel(wbs, links)
	require.NoError(t, err)

	dict := m.ToDict()
	activities := dict["activities"].([]cpmnet.Row)
	events := dict["events"].([]cpmnet.Row)

	require.Len(t, activities, 2)
	require.Len(t, events, 3)

	var horizon float64
	for _, e := range events {
		if r := e["early"].(float64); r > horizon {
			horizon = r
		}
	}
	assert.InDelta(t, 7.0, horizon, 1e-9)

	for _, row := range activities {
		assert.InDelta(t, 0, row["reserve"].(float64), 1e-9)
		_, hasVariance := row["variance"]
		assert.False(t, hasVariance, "no PERT extras without variance")
	}
}

// TestNewNetworkModel_LinkShapesAgree checks that all four accepted
// Links shapes, given the same logical precedence set, build identical
// schedules.
func TestNewNetworkModel_LinkShapesAgree(t *testing.T) {
	wbs := map[int]cpmnet.Activity{
		1: {WbsID: 1, Expected: ptr(2)},
		2: {WbsID: 2, Expected: ptr(3)},
		3: {WbsID: 3, Expected: ptr(5)},
	}
	shapes := map[string]cpmnet.Links{
		"arrays":    cpmnet.LinksFromArrays([]int{1, 2}, []int{2, 3}),
		"rowMatrix": cpmnet.LinksFromRowMatrix([][]int{{1, 2}, {2, 3}}),
		"colMatrix": cpmnet.LinksFromColMatrix([][]int{{1, 2}, {2, 3}}),
		"map":       cpmnet.LinksFromMap(map[string][]int{"src": {1, 2}, "dst": {2, 3}}),
	}

	var reference map[string]interface{}
	for name, links := range shapes {
		m, err := cpmnet.NewNetworkModel(wbs, links)
		require.NoError(t, err, name)
		dict := m.ToDict()
		if reference == nil {
			reference = dict
			continue
		}
		assert.Equal(t, reference, dict, "shape %s must agree with the reference build", name)
	}
}

// TestNewNetworkModel_CycleIsRejected confirms a precedence cycle
// surfaces as closure.ErrCycle through the full construction path.
func TestNewNetworkModel_CycleIsRejected(t *testing.T) {
	wbs := map[int]cpmnet.Activity{
		1: {WbsID: 1, Expected: ptr(1)},
		2: {WbsID: 2, Expected: ptr(1)},
		3: {WbsID: 3, Expected: ptr(1)},
	}
	links := cpmnet.LinksFromArrays([]int{1, 2, 3}, []int{2, 3, 1})

	_, err := cpmnet.NewNetworkModel(wbs, links)
	require.Error(t, err)
	assert.True(t, errors.Is(err, closure.ErrCycle))
}

// TestNewNetworkModel_ThreePointEffortEnablesPert verifies a three-point
// activity's mean/variance follow the classic PERT formula and that
// PERT extras appear in the exported row.
func TestNewNetworkModel_ThreePointEffortEnablesPert(t *testing.T) {
	wbs := map[int]cpmnet.Activity{
		1: {WbsID: 1, Optimistic: ptr(2), MostLikely: ptr(5), Pessimistic: ptr(8)},
	}
	links := cpmnet.LinksFromArrays(nil, nil)

	m, err := cpmnet.NewNetworkModel(wbs, links)
	require.NoError(t, err)

	rows, _ := m.ToTable()
	require.Len(t, rows, 1)
	row := rows[0]

	assert.InDelta(t, 5.0, row["expected"].(float64), 1e-9, "(2+4*5+8)/6 == 5")
	assert.InDelta(t, 1.0, row["exp_var"].(float64), 1e-9, "((8-2)/6)^2 == 1")
	_, hasVariance := row["variance"]
	assert.True(t, hasVariance, "PERT extras must be present")
}

// TestNewNetworkModel_RejectsInvalidThreePointOrder checks a <= m <= b
// is enforced.
func TestNewNetworkModel_RejectsInvalidThreePointOrder(t *testing.T) {
	wbs := map[int]cpmnet.Activity{
		1: {WbsID: 1, Optimistic: ptr(8), MostLikely: ptr(5), Pessimistic: ptr(2)},
	}
	_, err := cpmnet.NewNetworkModel(wbs, cpmnet.LinksFromArrays(nil, nil))
	assert.ErrorIs(t, err, cpmnet.ErrEffortShape)
}

// TestNewNetworkModel_RejectsMalformedLinksMap checks a map-shaped Links
// value missing the "dst" key surfaces ErrLinksShape.
func TestNewNetworkModel_RejectsMalformedLinksMap(t *testing.T) {
	wbs := map[int]cpmnet.Activity{1: {WbsID: 1, Expected: ptr(1)}}
	links := cpmnet.LinksFromMap(map[string][]int{"src": {1}})

	_, err := cpmnet.NewNetworkModel(wbs, links)
	assert.ErrorIs(t, err, cpmnet.ErrLinksShape)
}

// TestWithP_RejectsOutOfRangeValues checks the functional-option
// validation panics for p outside (0, 1).
func TestWithP_RejectsOutOfRangeValues(t *testing.T) {
	assert.Panics(t, func() { cpmnet.WithP(1.5) })
	assert.Panics(t, func() { cpmnet.WithP(0) })
}

// TestWithDuration_RejectsNil checks the nil-callback guard.
func TestWithDuration_RejectsNil(t *testing.T) {
	assert.Panics(t, func() { cpmnet.WithDuration(nil) })
}

// classicLadder builds the textbook twelve-activity ladder (direct
// durations, twenty-three links) used by several tests below.
func classicLadder(t *testing.T) *cpmnet.NetworkModel {
	t.Helper()
	durations := map[int]float64{1: 1, 2: 2, 3: 4, 4: 4, 5: 6, 6: 2, 7: 6, 8: 2, 9: 5, 10: 5, 11: 2, 12: 1}
	letters := map[int]string{1: "A", 2: "B", 3: "C", 4: "D", 5: "E", 6: "F", 7: "G", 8: "H", 9: "I", 10: "J", 11: "K", 12: "L"}
	wbs := make(map[int]cpmnet.Activity, len(durations))
	for id, d := range durations {
		wbs[id] = cpmnet.Activity{WbsID: id, Letter: letters[id], Expected: ptr(d)}
	}

	src := []int{1, 2, 3, 2, 3, 3, 4, 1, 6, 7, 5, 6, 7, 3, 6, 7, 6, 8, 9, 7, 8, 9, 10}
	dst := []int{5, 5, 5, 6, 6, 7, 7, 8, 8, 8, 9, 9, 9, 10, 10, 10, 11, 11, 11, 12, 12, 12, 12}
	links := cpmnet.LinksFromArrays(src, dst)

	m, err := cpmnet.NewNetworkModel(wbs, links)
	require.NoError(t, err)
	return m
}

// criticalPathExists walks from the unique event with no incoming
// activity to the unique event with no outgoing activity, stepping only
// across activities whose reserve is within eps of zero; it reports
// whether such a walk exists.
func criticalPathExists(rows, events []cpmnet.Row, eps float64) bool {
	srcIDs := make(map[int]bool)
	dstIDs := make(map[int]bool)
	adj := make(map[int][]int)
	for _, r := range rows {
		s, d := r["src_id"].(int), r["dst_id"].(int)
		srcIDs[s] = true
		dstIDs[d] = true
		if math.Abs(r["reserve"].(float64)) < eps {
			adj[s] = append(adj[s], d)
		}
	}

	var source, sink int
	for _, e := range events {
		id := e["id"].(int)
		if !dstIDs[id] {
			source = id
		}
		if !srcIDs[id] {
			sink = id
		}
	}

	visited := map[int]bool{source: true}
	queue := []int{source}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range adj[cur] {
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	return visited[sink]
}

// TestNewNetworkModel_ClassicLadderDurationIsSeventeen checks the
// textbook twelve-activity, twenty-three-link ladder builds without
// error and produces a seventeen-unit project duration, adding at least
// one dummy along the way.
func TestNewNetworkModel_ClassicLadderDurationIsSeventeen(t *testing.T) {
	m := classicLadder(t)

	activities, events := m.ToTable()
	require.GreaterOrEqual(t, len(activities), 12)

	var horizon float64
	for _, e := range events {
		if r := e["early"].(float64); r > horizon {
			horizon = r
		}
	}
	assert.InDelta(t, 17.0, horizon, 1e-9)
}

// TestNewNetworkModel_ClassicLadderScheduleIsSound checks every
// activity's early/late span agrees with its own recorded duration, and
// every event's late time is never earlier than its early time.
func TestNewNetworkModel_ClassicLadderScheduleIsSound(t *testing.T) {
	m := classicLadder(t)
	activities, events := m.ToTable()

	for _, row := range activities {
		dur := row["duration"].(float64)
		es, ee := row["early_start"].(float64), row["early_end"].(float64)
		ls, le := row["late_start"].(float64), row["late_end"].(float64)
		assert.InDelta(t, ee, es+dur, 1e-6, "wbs_id %v", row["wbs_id"])
		assert.InDelta(t, dur, le-ls, 1e-6, "wbs_id %v", row["wbs_id"])
	}
	for _, e := range events {
		assert.GreaterOrEqual(t, e["late"].(float64)+1e-9, e["early"].(float64), "event %v", e["id"])
	}
}

// TestNewNetworkModel_ClassicLadderHasACriticalPath checks at least one
// source-to-sink walk of zero-reserve activities exists, as any CPM
// network must.
func TestNewNetworkModel_ClassicLadderHasACriticalPath(t *testing.T) {
	m := classicLadder(t)
	activities, events := m.ToTable()
	assert.True(t, criticalPathExists(activities, events, 1e-6))
}

// TestNewNetworkModel_SharedParentPrefixIsFactoredThroughACommonDummyPair
// covers three parents (A, B, C) all feeding three children (E, F, G),
// each child also taking a unique extra input. Every child's minimal
// predecessor set is the same size and none contains another's, so the
// overlap pass (not the nested-prefix pass) factors the shared {A,B,C}
// prefix: it produces a congruent pair of dummies that both start from
// the single event A, B and C converge on.
func TestNewNetworkModel_SharedParentPrefixIsFactoredThroughACommonDummyPair(t *testing.T) {
	wbs := map[int]cpmnet.Activity{
		1: {WbsID: 1, Letter: "A", Expected: ptr(1)},
		2: {WbsID: 2, Letter: "B", Expected: ptr(1)},
		3: {WbsID: 3, Letter: "C", Expected: ptr(1)},
		4: {WbsID: 4, Letter: "E", Expected: ptr(1)},
		5: {WbsID: 5, Letter: "F", Expected: ptr(1)},
		6: {WbsID: 6, Letter: "G", Expected: ptr(1)},
		7: {WbsID: 7, Expected: ptr(1)},
		8: {WbsID: 8, Expected: ptr(1)},
		9: {WbsID: 9, Expected: ptr(1)},
	}
	src := []int{1, 1, 1, 2, 2, 2, 3, 3, 3, 7, 8, 9}
	dst := []int{4, 5, 6, 4, 5, 6, 4, 5, 6, 4, 5, 6}
	links := cpmnet.LinksFromArrays(src, dst)

	m, err := cpmnet.NewNetworkModel(wbs, links)
	require.NoError(t, err)

	rows, _ := m.ToTable()
	require.Greater(t, len(rows), 9, "the shared prefix and the A/B/C convergence both need synthesized dummies")

	var dummyRows []cpmnet.Row
	for _, row := range rows {
		if row["wbs_id"].(int) == internalgraph.FakeID {
			dummyRows = append(dummyRows, row)
		}
	}
	require.NotEmpty(t, dummyRows)

	bySrc := make(map[interface{}]int, len(dummyRows))
	for _, d := range dummyRows {
		bySrc[d["src_id"]]++
	}
	maxShared := 0
	for _, n := range bySrc {
		if n > maxShared {
			maxShared = n
		}
	}
	assert.GreaterOrEqual(t, maxShared, 2, "at least two dummies (the congruent {A,B,C} pair) must share a source event")
}

// TestNewNetworkModel_ParallelArrowsAreSplitByADummyTail covers three
// independent roots (A, A2, B) all directly preceding a single successor
// (E): the second and third arrows collide on (src_evt, dst_evt) and
// pass 3 routes each through a fresh dummy tail so every real activity
// keeps a distinct destination event.
func TestNewNetworkModel_ParallelArrowsAreSplitByADummyTail(t *testing.T) {
	wbs := map[int]cpmnet.Activity{
		1: {WbsID: 1, Letter: "A", Expected: ptr(2)},
		2: {WbsID: 2, Letter: "A2", Expected: ptr(2)},
		3: {WbsID: 3, Letter: "B", Expected: ptr(3)},
		4: {WbsID: 4, Letter: "E", Expected: ptr(1)},
	}
	links := cpmnet.LinksFromArrays([]int{1, 2, 3}, []int{4, 4, 4})

	m, err := cpmnet.NewNetworkModel(wbs, links)
	require.NoError(t, err)

	rows, _ := m.ToTable()
	byLetter := make(map[string]cpmnet.Row, 4)
	for _, row := range rows {
		if letter, _ := row["letter"].(string); letter != "" {
			byLetter[letter] = row
		}
	}
	require.Contains(t, byLetter, "A")
	require.Contains(t, byLetter, "A2")
	require.Contains(t, byLetter, "B")

	a, a2, b := byLetter["A"], byLetter["A2"], byLetter["B"]
	assert.Equal(t, a["src_id"], a2["src_id"], "all three share the same source event")
	assert.Equal(t, a["src_id"], b["src_id"])
	assert.NotEqual(t, a["dst_id"], a2["dst_id"], "parallel arrows must be split onto distinct destinations")
	assert.NotEqual(t, a["dst_id"], b["dst_id"])
	assert.NotEqual(t, a2["dst_id"], b["dst_id"])

	assert.Len(t, rows, 6, "4 real activities plus 2 dummy tails splitting the collision")
}

// TestNewNetworkModel_ResourceAwareDurationDividesEffortByTeamSize
// covers a duration callback that turns raw effort into duration by
// dividing by the assigned team size: two activities in series with
// efforts 40 and 20, teams of size 2 and 1, produce durations 20 and 20
// and a forty-unit project.
func TestNewNetworkModel_ResourceAwareDurationDividesEffortByTeamSize(t *testing.T) {
	teamSize := map[int]float64{1: 2, 2: 1}
	resourceAware := func(effort float64, act *internalgraph.Activity, _ *float64) (float64, error) {
		return effort / teamSize[act.WbsID], nil
	}

	wbs := map[int]cpmnet.Activity{
		1: {WbsID: 1, Letter: "A", Expected: ptr(40)},
		2: {WbsID: 2, Letter: "B", Expected: ptr(20)},
	}
	links := cpmnet.LinksFromArrays([]int{1}, []int{2})

	m, err := cpmnet.NewNetworkModel(wbs, links, cpmnet.WithDuration(resourceAware))
	require.NoError(t, err)

	rows, events := m.ToTable()
	byLetter := make(map[string]cpmnet.Row, 2)
	for _, row := range rows {
		byLetter[row["letter"].(string)] = row
	}
	assert.InDelta(t, 20.0, byLetter["A"]["duration"].(float64), 1e-9)
	assert.InDelta(t, 20.0, byLetter["B"]["duration"].(float64), 1e-9)

	var horizon float64
	for _, e := range events {
		if r := e["early"].(float64); r > horizon {
			horizon = r
		}
	}
	assert.InDelta(t, 40.0, horizon, 1e-9)
}

// TestNewNetworkModel_ThreePointQuantilesBracketTheMode checks the
// canonical (a=3, m=5, b=8) single-activity PERT case: the median
// early_pqe sits close to the 31/6 mean, and the 95th-percentile
// early_pqe is strictly higher and still under the pessimistic bound.
func TestNewNetworkModel_ThreePointQuantilesBracketTheMode(t *testing.T) {
	wbs := map[int]cpmnet.Activity{
		1: {WbsID: 1, Letter: "A", Optimistic: ptr(3), MostLikely: ptr(5), Pessimistic: ptr(8)},
	}
	links := cpmnet.LinksFromArrays(nil, nil)

	horizonAt := func(p float64) float64 {
		m, err := cpmnet.NewNetworkModel(wbs, links, cpmnet.WithP(p))
		require.NoError(t, err)
		_, events := m.ToTable()
		var h float64
		for _, e := range events {
			if r := e["early_pqe"].(float64); r > h {
				h = r
			}
		}
		return h
	}

	median := horizonAt(0.5)
	assert.Greater(t, median, 3.0)
	assert.Less(t, median, 8.0)
	assert.InDelta(t, 31.0/6.0, median, 1.0)

	p95 := horizonAt(0.95)
	assert.Greater(t, p95, median)
	assert.Less(t, p95, 8.0)
}
