// Package dummy implements C2 of the AoA synthesis pipeline: dummy
// insertion. It rewrites the minimal predecessor sets computed by
// closure (C1) so that shared prefixes (one list's predecessors being a
// subset of another's) and overlapping-but-incomparable prefixes are
// each factored into a single dummy activity, leaving every pair of
// activities with either disjoint or identical minimal predecessor sets
// by the time C3 assigns event ids.
//
// Two passes run in order, each over the "now enlarged" activity set
// (dummies synthesized by the first pass are visible to the second):
//
//  1. Nested-prefix reduction: a minimal predecessor list that is a
//     proper subset of another's is hoisted into a dummy.
//  2. Overlap reduction: two minimal predecessor lists that share a
//     non-empty prefix which is a proper subset of both are factored
//     through a pair of dummies, one per side.
//
// C2 is deterministic and total on cycle-free input: there is no failure
// mode here (cycles are rejected earlier, by closure).
package dummy
