// Package event implements C3 of the AoA synthesis pipeline: event
// emission. It performs a Kahn-style topological sweep over the
// dummy-augmented activity set, assigning each activity a 1-based source
// and destination event id, and splits any pair of arrows that would
// otherwise collide on both endpoints by inserting an extra dummy.
//
// Contract: on return, every activity has 1 <= SrcEvent < DstEvent, and
// event ids are dense over [1, K].
package event
