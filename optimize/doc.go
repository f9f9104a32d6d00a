// Package optimize implements C4 of the AoA synthesis pipeline: network
// optimization. It "glues" events that C2/C3 introduced but that turn out
// to carry no real information (their only inputs or only outputs are
// dummy arrows), renumbers the surviving events densely, and drops the
// dummy activities that become dead in the process.
//
// Passes, each followed by a relink of every surviving activity's
// Src/DstEvent through the current event-merge map:
//
//  1. Merge-by-predecessors: dummy-only events sharing an identical,
//     size->=2 set of incoming dummy-predecessor events are merged.
//  2. Merge-single-input-dummy / merge-single-output-dummy: an event fed
//     (or drained) by exactly one dummy arrow is folded into its
//     neighbor.
//  3. Parallel-arrow dummies: any two real activities left sharing both
//     endpoints are illegal in AoA and are split through a fresh dummy.
//
// Passes 1-2 repeat to a fixpoint (merging can expose further merges);
// pass 3 always runs last, since only it can introduce new events.
// Renumbering compacts surviving event ids to a dense 1..K' range and
// drops any activity whose endpoints are still the dead sentinel.
package optimize
