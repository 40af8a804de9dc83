package lpirl

import "gonum.org/v1/gonum/mat"

// varBlock names a contiguous group of LP columns. Column positions are
// always computed from block offsets, never hand-tracked, so the assembly
// stages cannot drift out of sync with each other.
type varBlock int

const (
	// blockReward holds the n true reward variables. It is created first,
	// so the reward block always occupies columns 0..n−1 — the extractor
	// depends on this.
	blockReward varBlock = iota

	// blockMargin holds the n epigraph variables of the costly-single-step
	// heuristic. Absent when k=1.
	blockMargin

	// blockAbs holds the n absolute-value surrogates of the L1 term.
	blockAbs
)

// problem is a growable inequality-form LP: minimize c·x subject to
// A·x ≤ b. Stages append named column blocks (padding all existing rows
// with zeros) and constraint rows; row and column counts stay consistent by
// construction.
type problem struct {
	c      []float64
	rows   [][]float64
	b      []float64
	offset map[varBlock]int
	width  map[varBlock]int
}

// newProblem creates a problem holding only the reward block, with zero
// objective coefficients — the reward variables never appear in the
// objective directly, only through the margin and abs-value blocks.
func newProblem(n int) *problem {
	p := &problem{
		offset: make(map[varBlock]int, 3),
		width:  make(map[varBlock]int, 3),
	}
	p.addBlock(blockReward, n, 0)

	return p
}

// cols returns the current number of LP columns.
func (p *problem) cols() int { return len(p.c) }

// numRows returns the current number of constraint rows.
func (p *problem) numRows() int { return len(p.rows) }

// addBlock appends width columns forming a named block, each with the given
// objective coefficient, and zero-pads every existing constraint row to the
// new column count.
func (p *problem) addBlock(blk varBlock, width int, coeff float64) {
	p.offset[blk] = len(p.c)
	p.width[blk] = width

	for i := 0; i < width; i++ {
		p.c = append(p.c, coeff)
	}
	for i, row := range p.rows {
		padded := make([]float64, len(p.c))
		copy(padded, row)
		p.rows[i] = padded
	}
}

// offsetOf returns the first column of blk. Blocks that were never added
// report offset 0 and width 0; callers must check widthOf first.
func (p *problem) offsetOf(blk varBlock) int { return p.offset[blk] }

// widthOf returns the number of columns in blk (0 when absent).
func (p *problem) widthOf(blk varBlock) int { return p.width[blk] }

// newRow returns a zero row spanning the current column count. The row is
// not attached until appendRow.
func (p *problem) newRow() []float64 { return make([]float64, len(p.c)) }

// appendRow attaches the constraint row·x ≤ bound.
func (p *problem) appendRow(row []float64, bound float64) {
	p.rows = append(p.rows, row)
	p.b = append(p.b, bound)
}

// matrices materializes the triple (c, A_ub, b_ub) for the LP backend.
func (p *problem) matrices() (c []float64, aUb *mat.Dense, bUb []float64) {
	aUb = mat.NewDense(len(p.rows), len(p.c), nil)
	for i, row := range p.rows {
		aUb.SetRow(i, row)
	}

	return p.c, aUb, p.b
}
