// Package bingo renders a square grid of text-labeled cells into a
// raster image.
//
// # Overview
//
// Given a board dimension n and n² strings (one per cell, row-major),
// bingo draws the grid lines, word-wraps each string inside its cell,
// rasterizes the glyphs from a host font, and composites everything
// into an RGB pixel buffer ready for PNG encoding.
//
// # Quick Start
//
//	board, err := bingo.NewBoard(5, cells)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	pm, err := bingo.Render(board)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if err := pm.SavePNG("board.png"); err != nil {
//		log.Fatal(err)
//	}
//
// # Fonts
//
// No font is bundled. By default Render discovers a usable TrueType or
// OpenType font in the host's standard font directories, preferring a
// list of well-known sans-serif families and falling back to the
// candidate with the best printable-ASCII glyph coverage. The
// BINGO_FONT_PATH environment variable overrides discovery entirely.
// See the fontscan package for details and for injecting a custom
// provider.
//
// # Architecture
//
// The library is organized into:
//   - Root: Board, Pixmap, RGB, Render (board composer)
//   - text: font parsing, shaping, word wrap, glyph rasterization
//   - fontscan: host font discovery
//   - elements: weighted element lists for sourcing board content
package bingo
