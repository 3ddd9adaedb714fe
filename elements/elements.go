// Package elements reads weighted bingo element lists and samples board
// content from them. It is glue around the renderer: the core only ever
// sees the flat string sequence this package produces.
package elements

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"sort"
)

// ErrNotEnoughElements is returned when the list cannot fill a board:
// fewer distinct, positively-weighted contents exist than cells needed.
var ErrNotEnoughElements = errors.New("elements: not enough distinct elements to fill the board")

// Element is one candidate board entry with a selection weight.
type Element struct {
	// Content is the cell text.
	Content string `json:"content"`

	// Probability is the relative selection weight. Elements with
	// weight 0 are never picked.
	Probability uint32 `json:"probability"`
}

// document mirrors the JSON file structure:
//
//	{"bingo_elements": [{"content": "...", "probability": 3}, ...]}
type document struct {
	BingoElements []Element `json:"bingo_elements"`
}

// Load reads an element list from a JSON file.
func Load(path string) ([]Element, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("elements: opening %q: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	return Decode(f)
}

// Decode reads an element list from JSON.
func Decode(r io.Reader) ([]Element, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("elements: decoding element list: %w", err)
	}
	return doc.BingoElements, nil
}

// Pick samples n distinct contents from elems, probability-proportional
// to each element's weight. Duplicate contents are rejected and
// redrawn, so the result is a sample without replacement over distinct
// contents. Returns ErrNotEnoughElements when fewer than n distinct
// contents carry a positive weight.
func Pick(rng *rand.Rand, elems []Element, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}

	distinct := make(map[string]bool)
	for _, e := range elems {
		if e.Probability > 0 {
			distinct[e.Content] = true
		}
	}
	if len(distinct) < n {
		return nil, ErrNotEnoughElements
	}

	// Cumulative weights for the weighted index.
	cum := make([]uint64, len(elems))
	var total uint64
	for i, e := range elems {
		total += uint64(e.Probability)
		cum[i] = total
	}

	picked := make([]string, 0, n)
	seen := make(map[string]bool, n)
	for len(picked) < n {
		t := rng.Uint64N(total)
		idx := sort.Search(len(cum), func(i int) bool { return cum[i] > t })
		content := elems[idx].Content
		if seen[content] {
			continue
		}
		seen[content] = true
		picked = append(picked, content)
	}

	return picked, nil
}
