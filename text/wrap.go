package text

import "strings"

// Line is one laid-out line of wrapped text.
type Line struct {
	// Text is the content of this line.
	Text string

	// Y is the vertical offset of the line's top edge from the top of
	// the wrap box (lines emitted so far × line height). The caller adds
	// the font ascent to obtain the baseline.
	Y float64
}

// Wrap lays text out inside a maxWidth×maxHeight box using greedy word
// wrapping.
//
// The text is split on whitespace; empty or blank input yields no
// lines. Words are appended to the current line while the measured
// advance (word plus a separating space when the line is non-empty)
// fits maxWidth, and flushed to a new line otherwise. Words are never
// broken mid-word: a single word wider than maxWidth occupies its own
// line and may overflow horizontally.
//
// Lines whose offset plus one line height would exceed maxHeight are
// dropped, not shrunk. This truncation is deliberate and silent: cell
// boxes are fixed-size and text must not bleed outside them.
//
// Widths are measured as shaped glyph advances at face.Size(), not
// character counts; proportional fonts require per-glyph summation.
func Wrap(text string, face *Face, maxWidth, maxHeight float64) []Line {
	if face == nil {
		return nil
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	lineHeight := face.Metrics().LineHeight()
	spaceWidth := MeasureText(" ", face)

	var lines []Line
	var penY float64
	var line strings.Builder
	var lineWidth float64

	flush := func() bool {
		if penY+lineHeight > maxHeight {
			return false
		}
		lines = append(lines, Line{Text: line.String(), Y: penY})
		penY += lineHeight
		line.Reset()
		lineWidth = 0
		return true
	}

	for i, word := range words {
		wordWidth := MeasureText(word, face)

		var extra float64
		if line.Len() > 0 {
			extra = spaceWidth
		}

		if line.Len() > 0 && lineWidth+extra+wordWidth > maxWidth {
			if !flush() {
				return lines
			}
			extra = 0
		}

		if line.Len() > 0 {
			line.WriteByte(' ')
			lineWidth += extra
		}
		line.WriteString(word)
		lineWidth += wordWidth

		if i == len(words)-1 {
			flush()
		}
	}

	return lines
}
