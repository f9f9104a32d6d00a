// Package closure implements C1 of the AoA synthesis pipeline: dependency
// closure. It computes, for every activity, the full transitive predecessor
// set and its minimal cover (transitive reduction), both in bitset and
// ordered-list form, ready for C2 dummy insertion to consume.
//
// Complexity:
//
//   - Time:   O(n*d) to seed and close predecessor lists, O(n*d^2) for the
//     minimal-cover pass (d = average predecessor-set size).
//   - Memory: O(n^2) bits for the closure matrix plus O(n*d) for the lists.
package closure
