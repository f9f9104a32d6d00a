// Package cpmnet converts a user-supplied Activity-on-Node (AoN)
// project graph into a normalized Activity-on-Arrow (AoA) network and
// computes its critical-path schedule, with an optional three-point
// (PERT) uncertainty overlay.
//
// Build a NetworkModel once from a WBS map and a set of precedence
// Links; the five pipeline stages run in order:
//
//	closure/   — C1, transitive closure + minimal cover
//	dummy/     — C2, shared-prefix and overlap dummy insertion
//	event/     — C3, topological event numbering
//	optimize/  — C4, event gluing, parallel-arrow splitting, renumbering
//	schedule/  — C5, CPM forward/backward sweep + PERT variance
//
// The built model is logically immutable; ToDict, ToTable, and
// Visualize are pure queries safe to call concurrently.
//
//	m, err := cpmnet.NewNetworkModel(wbs, cpmnet.LinksFromArrays(src, dst))
package cpmnet
