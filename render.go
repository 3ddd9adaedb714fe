package bingo

import (
	"fmt"
	"image"

	"github.com/gogpu/bingo/fontscan"
	"github.com/gogpu/bingo/text"
)

// Render composes the board into a pixel buffer.
//
// The buffer is (Dim*cellSize + 2*padding) pixels square: a background
// fill, single-pixel grid lines at every cell boundary, and each cell's
// string word-wrapped and rasterized inside the cell's margin-reduced
// box. Text that does not fit a cell vertically is truncated, never an
// error; see text.Wrap.
//
// Render fails with ErrDimensionMismatch when the board contract is
// violated and with fontscan.ErrFontNotFound (wrapped) when no usable
// font can be located. One font is located per call and shared
// read-only across all cells.
func Render(board *Board, opts ...RenderOption) (*Pixmap, error) {
	cfg := defaultRenderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := board.Validate(); err != nil {
		return nil, err
	}

	provider := cfg.provider
	if provider == nil {
		provider = fontscan.Default(fontscan.WithLogger(Logger()))
	}

	source, err := provider.Locate()
	if err != nil {
		return nil, fmt.Errorf("bingo: locating render font: %w", err)
	}

	side := board.Dim*cfg.cellSize + 2*cfg.padding
	pm := NewPixmap(side, side)
	pm.Clear(cfg.background)

	drawGrid(pm, board.Dim, cfg)

	face := source.Face(cfg.fontSize)
	ascent := face.Metrics().Ascent

	for row := 0; row < board.Dim; row++ {
		for col := 0; col < board.Dim; col++ {
			box := cellBox(row, col, cfg)
			lines := text.Wrap(board.Cell(row, col), face, float64(box.Dx()), float64(box.Dy()))
			for _, line := range lines {
				baseline := float64(box.Min.Y) + line.Y + ascent
				text.DrawLine(pm, line.Text, face, float64(box.Min.X), baseline, cfg.textColor.Color())
			}
		}
	}

	return pm, nil
}

// cellBox returns the margin-reduced text box for a cell in pixel
// coordinates. Boxes are computed on demand and never stored.
func cellBox(row, col int, cfg renderConfig) image.Rectangle {
	left := cfg.padding + col*cfg.cellSize + cfg.cellMargin
	top := cfg.padding + row*cfg.cellSize + cfg.cellMargin
	inner := cfg.cellSize - 2*cfg.cellMargin
	return image.Rect(left, top, left+inner, top+inner)
}

// drawGrid draws dim+1 horizontal and dim+1 vertical single-pixel grid
// lines at cell boundaries. SetPixel drops out-of-bounds writes, so the
// loops need no extra clamping beyond the original's edge checks.
func drawGrid(pm *Pixmap, dim int, cfg renderConfig) {
	grid := dim * cfg.cellSize
	for i := 0; i <= dim; i++ {
		y := cfg.padding + i*cfg.cellSize
		if y < pm.Height() {
			for x := cfg.padding; x < cfg.padding+grid; x++ {
				pm.SetPixel(x, y, cfg.gridColor)
			}
		}
		x := cfg.padding + i*cfg.cellSize
		if x < pm.Width() {
			for y := cfg.padding; y < cfg.padding+grid; y++ {
				pm.SetPixel(x, y, cfg.gridColor)
			}
		}
	}
}
