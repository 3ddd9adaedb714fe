package bingo

import (
	"errors"
	"testing"
)

// TestNewBoard tests board construction and the cell accessor.
func TestNewBoard(t *testing.T) {
	cells := []string{"a", "b", "c", "d"}
	b, err := NewBoard(2, cells)
	if err != nil {
		t.Fatalf("NewBoard() error = %v", err)
	}

	tests := []struct {
		row, col int
		want     string
	}{
		{0, 0, "a"},
		{0, 1, "b"},
		{1, 0, "c"},
		{1, 1, "d"},
	}
	for _, tt := range tests {
		if got := b.Cell(tt.row, tt.col); got != tt.want {
			t.Errorf("Cell(%d,%d) = %q, want %q", tt.row, tt.col, got, tt.want)
		}
	}
}

// TestNewBoardDimensionMismatch tests rejection of contract violations.
func TestNewBoardDimensionMismatch(t *testing.T) {
	tests := []struct {
		name  string
		dim   int
		cells []string
	}{
		{"too few cells", 2, []string{"a", "b", "c"}},
		{"too many cells", 2, []string{"a", "b", "c", "d", "e"}},
		{"zero dimension", 0, nil},
		{"negative dimension", -1, nil},
		{"nil cells nonzero dim", 3, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBoard(tt.dim, tt.cells)
			if !errors.Is(err, ErrDimensionMismatch) {
				t.Errorf("NewBoard() error = %v, want ErrDimensionMismatch", err)
			}
		})
	}
}

// TestBoardValidateOneByOne tests the smallest legal board.
func TestBoardValidateOneByOne(t *testing.T) {
	b := &Board{Dim: 1, Cells: []string{"solo"}}
	if err := b.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
	if got := b.Cell(0, 0); got != "solo" {
		t.Errorf("Cell(0,0) = %q, want %q", got, "solo")
	}
}
