package cpmnet

import "github.com/katalvlaran/cpmnet/mpert"

// Row is a single flattened record, as produced by ToDict/ToTable;
// values are plain Go scalars (float64, int, string, bool) so callers
// can hand them straight to a table/dict serializer without further
// type assertions beyond Go's own. The one exception is the "data"
// entry of a ToDict activity record, which holds the activity's Data
// map unchanged.
type Row map[string]interface{}

// ToDict mirrors to_dict(): {"activities": [...], "events": [...]}.
// Every activity record always carries id, wbs_id, letter, src_id,
// dst_id, expected, duration, early_start, late_start, early_end,
// late_end, reserve, data. With PERT active it adds exp_var, variance,
// optimistic, opt_start, opt_end, pessimistic, pes_start, pes_end,
// early_start_var, early_end_var, early_start_pqe, early_end_pqe,
// late_end_prob. With debug it adds the four *_err fields.
func (m *NetworkModel) ToDict() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"activities": m.activityRows(false),
		"events":     m.eventRows(),
	}
}

// ToTable mirrors to_dataframe(): two flat row sets, one per activity
// and one per event, with Data expanded into per-column scalars
// (missing keys become empty strings).
func (m *NetworkModel) ToTable() (activities []Row, events []Row) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.activityRows(true), m.eventRows()
}

func (m *NetworkModel) activityRows(table bool) []Row {
	dataKeys := map[string]struct{}{}
	for _, sa := range m.sched.Activities {
		for k := range m.meta[sa.WbsID].data {
			dataKeys[k] = struct{}{}
		}
	}
	rows := make([]Row, 0, len(m.sched.Activities))
	for _, sa := range m.sched.Activities {
		info := m.meta[sa.WbsID]
		row := Row{
			"id":          sa.Pos,
			"wbs_id":      sa.WbsID,
			"letter":      info.letter,
			"src_id":      sa.SrcEvent,
			"dst_id":      sa.DstEvent,
			"expected":    info.bounds.mean,
			"duration":    sa.DurRes,
			"early_start": sa.EarlyStart.RES,
			"late_start":  sa.LateStart.RES,
			"early_end":   sa.EarlyEnd.RES,
			"late_end":    sa.LateEnd.RES,
			"reserve":     sa.Reserve.RES,
		}
		if table {
			for k := range dataKeys {
				row[k] = ""
			}
			for k, v := range info.data {
				row[k] = v
			}
		} else {
			row["data"] = info.data
		}

		if m.isPert {
			row["exp_var"] = info.bounds.variance
			row["variance"] = sa.PertD
			row["optimistic"] = info.bounds.a
			row["opt_start"] = sa.OptStart
			row["opt_end"] = sa.OptEnd
			row["pessimistic"] = info.bounds.b
			row["pes_start"] = sa.PesStart
			row["pes_end"] = sa.PesEnd
			row["early_start_var"] = sa.EarlyStart.VAR
			row["early_end_var"] = sa.EarlyEnd.VAR
			row["early_start_pqe"] = mpert.Quantile(m.opts.p, sa.EarlyStart.RES, sa.EarlyStart.VAR, sa.OptStart, sa.PesStart)
			row["early_end_pqe"] = mpert.Quantile(m.opts.p, sa.EarlyEnd.RES, sa.EarlyEnd.VAR, sa.OptEnd, sa.PesEnd)
			row["late_end_prob"] = mpert.CDF(sa.LateEnd.RES, sa.EarlyEnd.RES, sa.EarlyEnd.VAR, sa.OptEnd, sa.PesEnd)
		}
		if m.opts.debug {
			row["early_start_err"] = sa.EarlyStart.ERR
			row["late_start_err"] = sa.LateStart.ERR
			row["early_end_err"] = sa.EarlyEnd.ERR
			row["late_end_err"] = sa.LateEnd.ERR
		}
		rows = append(rows, row)
	}
	return rows
}

func (m *NetworkModel) eventRows() []Row {
	rows := make([]Row, 0, len(m.sched.Events))
	for _, e := range m.sched.Events {
		row := Row{
			"id":      e.ID,
			"stage":   e.Stage,
			"early":   e.Early.RES,
			"late":    e.Late.RES,
			"reserve": e.Reserve.RES,
		}
		if m.isPert {
			row["optimistic"] = e.Optimistic
			row["pessimistic"] = e.Pessimistic
			row["early_pqe"] = mpert.Quantile(m.opts.p, e.Early.RES, e.Early.VAR, e.Optimistic, e.Pessimistic)
			row["late_prob"] = mpert.CDF(e.Late.RES, e.Early.RES, e.Early.VAR, e.Optimistic, e.Pessimistic)
		}
		if m.opts.debug {
			row["early_err"] = e.Early.ERR
			row["late_err"] = e.Late.ERR
			row["reserve_err"] = e.Reserve.ERR
		}
		rows = append(rows, row)
	}
	return rows
}

// VisEdge is one rendered arrow in the visualization-record helper: a
// pure function of the model's reserve/probability data. Color-law
// interpretation (the red/green gradient) is left to the external
// renderer; this only exposes the ratio it is computed from.
type VisEdge struct {
	FromEvent int
	ToEvent   int
	Label     string
	Dashed    bool // true for dummy activities and zero-duration real ones

	// ReserveRatio is Reserve.RES / maxReserve across all live
	// activities (0 at the critical path, 1 at the most slack arrow).
	ReserveRatio float64

	// LateProb is CDF(LateEnd.RES, ...); only meaningful when PERT is
	// active. Near-critical activities have LateProb below the
	// configured p.
	LateProb float64
}

// Visualize returns one VisEdge per live activity.
func (m *NetworkModel) Visualize() []VisEdge {
	m.mu.RLock()
	defer m.mu.RUnlock()

	maxReserve := 0.0
	for _, sa := range m.sched.Activities {
		if sa.Reserve.RES > maxReserve {
			maxReserve = sa.Reserve.RES
		}
	}

	edges := make([]VisEdge, 0, len(m.sched.Activities))
	for _, sa := range m.sched.Activities {
		ratio := 0.0
		if maxReserve > 0 {
			ratio = sa.Reserve.RES / maxReserve
		}
		lateProb := 0.0
		if m.isPert {
			lateProb = mpert.CDF(sa.LateEnd.RES, sa.EarlyEnd.RES, sa.EarlyEnd.VAR, sa.OptEnd, sa.PesEnd)
		}
		edges = append(edges, VisEdge{
			FromEvent:    sa.SrcEvent,
			ToEvent:      sa.DstEvent,
			Label:        m.meta[sa.WbsID].letter,
			Dashed:       sa.IsDummy || sa.DurRes == 0,
			ReserveRatio: ratio,
			LateProb:     lateProb,
		})
	}
	return edges
}
