package bingo

import "errors"

// ErrDimensionMismatch is returned when the number of cell strings does
// not equal the square of the board dimension, or the dimension is not
// positive. This is a caller contract violation: no partial render is
// attempted.
var ErrDimensionMismatch = errors.New("bingo: cell count does not match board dimension")

// Board is a square grid of text-labeled cells.
// Cells holds exactly Dim² strings in row-major order.
type Board struct {
	// Dim is the board dimension (number of cells per side).
	Dim int

	// Cells holds one string per cell, row-major.
	Cells []string
}

// NewBoard creates a board, validating the cell count against the
// dimension. Returns ErrDimensionMismatch for violated inputs; a board
// is never silently truncated or padded.
func NewBoard(dim int, cells []string) (*Board, error) {
	b := &Board{Dim: dim, Cells: cells}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Validate checks the board contract: Dim ≥ 1 and len(Cells) == Dim².
func (b *Board) Validate() error {
	if b.Dim < 1 || len(b.Cells) != b.Dim*b.Dim {
		return ErrDimensionMismatch
	}
	return nil
}

// Cell returns the string at (row, col).
// Row and column are zero-based; the board must be valid.
func (b *Board) Cell(row, col int) string {
	return b.Cells[row*b.Dim+col]
}
