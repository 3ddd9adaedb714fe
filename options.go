package bingo

import "github.com/gogpu/bingo/fontscan"

// RenderOption configures a Render call.
type RenderOption func(*renderConfig)

// renderConfig holds configuration for one render.
type renderConfig struct {
	cellSize   int
	padding    int
	cellMargin int
	fontSize   float64
	background RGB
	gridColor  RGB
	textColor  RGB
	provider   fontscan.Provider
}

// defaultRenderConfig returns the default render configuration.
func defaultRenderConfig() renderConfig {
	return renderConfig{
		cellSize:   128,
		padding:    20,
		cellMargin: 10,
		fontSize:   18,
		background: RGB8(245, 245, 245),
		gridColor:  RGB8(30, 30, 30),
		textColor:  RGB8(20, 20, 20),
	}
}

// WithCellSize sets the cell size in pixels (default 128).
func WithCellSize(px int) RenderOption {
	return func(c *renderConfig) {
		if px > 0 {
			c.cellSize = px
		}
	}
}

// WithPadding sets the outer padding in pixels (default 20).
func WithPadding(px int) RenderOption {
	return func(c *renderConfig) {
		if px >= 0 {
			c.padding = px
		}
	}
}

// WithCellMargin sets the inner margin between a cell's border and its
// text box, in pixels (default 10).
func WithCellMargin(px int) RenderOption {
	return func(c *renderConfig) {
		if px >= 0 {
			c.cellMargin = px
		}
	}
}

// WithFontSize sets the text size in pixels (default 18).
func WithFontSize(px float64) RenderOption {
	return func(c *renderConfig) {
		if px > 0 {
			c.fontSize = px
		}
	}
}

// WithBackground sets the background color.
func WithBackground(c RGB) RenderOption {
	return func(cfg *renderConfig) {
		cfg.background = c
	}
}

// WithGridColor sets the grid line color.
func WithGridColor(c RGB) RenderOption {
	return func(cfg *renderConfig) {
		cfg.gridColor = c
	}
}

// WithTextColor sets the text color.
func WithTextColor(c RGB) RenderOption {
	return func(cfg *renderConfig) {
		cfg.textColor = c
	}
}

// WithFontProvider sets the font provider used to locate the render
// font. The default provider honors the BINGO_FONT_PATH override and
// falls back to host discovery; see fontscan.Default.
func WithFontProvider(p fontscan.Provider) RenderOption {
	return func(c *renderConfig) {
		c.provider = p
	}
}
