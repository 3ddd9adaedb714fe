package elements

import (
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleJSON = `{
	"bingo_elements": [
		{"content": "free coffee", "probability": 3},
		{"content": "standup overruns", "probability": 5},
		{"content": "wifi drops", "probability": 1},
		{"content": "retired meme", "probability": 0},
		{"content": "someone is muted", "probability": 2}
	]
}`

// TestDecode tests JSON element list parsing.
func TestDecode(t *testing.T) {
	elems, err := Decode(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(elems) != 5 {
		t.Fatalf("Decode() = %d elements, want 5", len(elems))
	}
	if elems[0].Content != "free coffee" || elems[0].Probability != 3 {
		t.Errorf("Decode() first element = %+v", elems[0])
	}
	if elems[3].Probability != 0 {
		t.Errorf("Decode() zero weight = %d, want 0", elems[3].Probability)
	}
}

// TestDecodeMalformed tests rejection of broken input.
func TestDecodeMalformed(t *testing.T) {
	if _, err := Decode(strings.NewReader("{not json")); err == nil {
		t.Error("Decode() error = nil, want error")
	}
}

// TestLoad tests reading an element file from disk.
func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "elements.json")
	if err := os.WriteFile(path, []byte(sampleJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	elems, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(elems) != 5 {
		t.Errorf("Load() = %d elements, want 5", len(elems))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("Load(missing) error = nil, want error")
	}
}

// TestPick tests weighted sampling without replacement.
func TestPick(t *testing.T) {
	elems, err := Decode(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatal(err)
	}

	rng := rand.New(rand.NewPCG(42, 0))
	picked, err := Pick(rng, elems, 4)
	if err != nil {
		t.Fatalf("Pick() error = %v", err)
	}
	if len(picked) != 4 {
		t.Fatalf("Pick() = %d contents, want 4", len(picked))
	}

	seen := make(map[string]bool)
	for _, c := range picked {
		if seen[c] {
			t.Errorf("Pick() returned duplicate content %q", c)
		}
		seen[c] = true
		if c == "retired meme" {
			t.Error("Pick() selected a zero-weight element")
		}
	}
}

// TestPickDeterministic tests that a fixed seed reproduces the board.
func TestPickDeterministic(t *testing.T) {
	elems, err := Decode(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatal(err)
	}

	first, err := Pick(rand.New(rand.NewPCG(7, 0)), elems, 4)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Pick(rand.New(rand.NewPCG(7, 0)), elems, 4)
	if err != nil {
		t.Fatal(err)
	}

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("seeded picks differ at %d: %q vs %q", i, first[i], second[i])
		}
	}
}

// TestPickNotEnough tests the underfilled list error.
func TestPickNotEnough(t *testing.T) {
	elems := []Element{
		{Content: "only one", Probability: 1},
		{Content: "weightless", Probability: 0},
	}

	rng := rand.New(rand.NewPCG(1, 0))
	if _, err := Pick(rng, elems, 2); !errors.Is(err, ErrNotEnoughElements) {
		t.Errorf("Pick() error = %v, want ErrNotEnoughElements", err)
	}

	// Duplicate contents count once toward the distinct total.
	dupes := []Element{
		{Content: "same", Probability: 1},
		{Content: "same", Probability: 9},
	}
	if _, err := Pick(rng, dupes, 2); !errors.Is(err, ErrNotEnoughElements) {
		t.Errorf("Pick() with duplicate contents error = %v, want ErrNotEnoughElements", err)
	}
}

// TestPickZeroCount tests the degenerate request.
func TestPickZeroCount(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 0))
	got, err := Pick(rng, nil, 0)
	if err != nil || got != nil {
		t.Errorf("Pick(n=0) = %v, %v, want nil, nil", got, err)
	}
}
