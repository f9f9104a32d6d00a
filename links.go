package cpmnet

import "fmt"

// Link is a directed precedence src -> dst ("src must finish before
// dst starts"), identified by wbs_id on both ends.
type Link struct {
	Src int
	Dst int
}

// Links is any of the four accepted precedence shapes; all four must
// produce identical models given the same logical precedence set.
// Construct one with LinksFromArrays, LinksFromRowMatrix,
// LinksFromColMatrix, or LinksFromMap; NetworkModel construction
// resolves it via pairs().
type Links interface {
	pairs() ([]Link, error)
}

type arrayLinks struct{ src, dst []int }

func (l arrayLinks) pairs() ([]Link, error) {
	if len(l.src) != len(l.dst) {
		return nil, fmt.Errorf("cpmnet: twin arrays of length %d and %d: %w", len(l.src), len(l.dst), ErrLinksShape)
	}
	links := make([]Link, len(l.src))
	for i := range l.src {
		links[i] = Link{Src: l.src[i], Dst: l.dst[i]}
	}
	return links, nil
}

// LinksFromArrays builds a Links value from the legacy twin-array
// shape. len(src) must equal len(dst); a mismatch surfaces as
// ErrLinksShape once the model is built.
func LinksFromArrays(src, dst []int) Links {
	return arrayLinks{src: src, dst: dst}
}

type rowMatrixLinks struct{ rows [][]int }

func (l rowMatrixLinks) pairs() ([]Link, error) {
	if len(l.rows) != 2 {
		return nil, fmt.Errorf("cpmnet: row matrix has %d rows, want 2: %w", len(l.rows), ErrLinksShape)
	}
	return arrayLinks{src: l.rows[0], dst: l.rows[1]}.pairs()
}

// LinksFromRowMatrix builds a Links value from a two-row matrix: m[0]
// is the src row, m[1] is the dst row.
func LinksFromRowMatrix(m [][]int) Links {
	return rowMatrixLinks{rows: m}
}

type colMatrixLinks struct{ rows [][]int }

func (l colMatrixLinks) pairs() ([]Link, error) {
	links := make([]Link, len(l.rows))
	for i, row := range l.rows {
		if len(row) != 2 {
			return nil, fmt.Errorf("cpmnet: col matrix row %d has %d entries, want 2: %w", i, len(row), ErrLinksShape)
		}
		links[i] = Link{Src: row[0], Dst: row[1]}
	}
	return links, nil
}

// LinksFromColMatrix builds a Links value from a two-column matrix:
// every row is [src, dst].
func LinksFromColMatrix(m [][]int) Links {
	return colMatrixLinks{rows: m}
}

type mapLinks struct{ m map[string][]int }

func (l mapLinks) pairs() ([]Link, error) {
	src, ok := l.m["src"]
	if !ok {
		return nil, fmt.Errorf("cpmnet: map form missing \"src\" key: %w", ErrLinksShape)
	}
	dst, ok := l.m["dst"]
	if !ok {
		return nil, fmt.Errorf("cpmnet: map form missing \"dst\" key: %w", ErrLinksShape)
	}
	return arrayLinks{src: src, dst: dst}.pairs()
}

// LinksFromMap builds a Links value from {"src": [...], "dst": [...]}.
func LinksFromMap(m map[string][]int) Links {
	return mapLinks{m: m}
}
