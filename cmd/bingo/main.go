// Command bingo renders a bingo board image from a weighted element list.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/gogpu/bingo"
	"github.com/gogpu/bingo/elements"
)

func main() {
	var (
		input    = flag.String("elements", "bingo_elements.json", "weighted element list (JSON)")
		output   = flag.String("out", "bingo_board.png", "output PNG path")
		size     = flag.Int("size", 5, "board dimension (cells per side)")
		cellSize = flag.Int("cell", 128, "cell size in pixels")
		padding  = flag.Int("padding", 20, "outer padding in pixels")
		fontSize = flag.Float64("font-size", 18, "text size in pixels")
		seed     = flag.Uint64("seed", 0, "sampling seed (0 = random)")
		verbose  = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		bingo.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	elems, err := elements.Load(*input)
	if err != nil {
		log.Fatalf("Failed to load elements: %v", err)
	}

	rng := newRand(*seed)
	cells, err := elements.Pick(rng, elems, *size**size)
	if err != nil {
		log.Fatalf("Failed to fill the board: %v", err)
	}

	board, err := bingo.NewBoard(*size, cells)
	if err != nil {
		log.Fatalf("Invalid board: %v", err)
	}

	pm, err := bingo.Render(board,
		bingo.WithCellSize(*cellSize),
		bingo.WithPadding(*padding),
		bingo.WithFontSize(*fontSize),
	)
	if err != nil {
		log.Fatalf("Failed to render bingo board: %v", err)
	}

	if err := pm.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Bingo board image written to %s (%dx%d)\n", *output, pm.Width(), pm.Height())
}

// newRand builds the sampling source: seeded when requested, otherwise
// randomized.
func newRand(seed uint64) *rand.Rand {
	if seed != 0 {
		return rand.New(rand.NewPCG(seed, 0))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
