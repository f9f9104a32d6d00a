// Package internalgraph defines the shared arena of internal activities
// that the AoA synthesis pipeline (dependency closure, dummy insertion,
// event emission, network optimization) reads and mutates in place.
//
// Every activity — real or dummy — is addressed by a stable, 0-based
// position in Arena.Activities; there are no back-references and no
// ownership cycles, only integer indices into the owning slice. This
// mirrors the "arena + index" design used throughout the pipeline: C1
// seeds full/minimal predecessor bitsets per position, C2 grows the arena
// with dummy positions, C3/C4 annotate positions with event ids.
//
// Capacity is fixed once, by the caller (NewNetworkModel uses
// max(n_act, n_links) + n_links), and every bitset is sized to it, so no
// bitset is ever resized
// mid-pass: growing a BitSet's backing array while another position holds
// a reference to it would silently invalidate earlier unions.
package internalgraph
