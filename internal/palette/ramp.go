package palette

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

// DefaultGlyphs runs from sparse to dense.
const DefaultGlyphs = " _.-,=+:;cba!?0123456789$W#@"

var reset = termenv.CSI + termenv.ResetSeq + "m"

// Ramp maps iteration buckets to ready-to-emit styled glyphs. It is built
// once and never modified, so the render loop only does table lookups.
type Ramp struct {
	entries []string
}

// Build precomputes one entry per glyph. Hue sweeps from 0 to 1 across the
// ramp while value falls from 1 to 0. With gray set entries are bare glyphs;
// otherwise each is wrapped in an optional background, a 24-bit foreground
// and a reset.
func Build(glyphs string, gray bool, bg *RGB) (Ramp, error) {
	runes := []rune(glyphs)
	if len(runes) == 0 {
		return Ramp{}, ErrEmptyPalette
	}
	for _, r := range runes {
		if runewidth.RuneWidth(r) != 1 {
			return Ramp{}, fmt.Errorf("%w: %q", ErrWideGlyph, r)
		}
	}

	var prefix string
	if bg != nil && !gray {
		prefix = sgr(*bg, true)
	}

	entries := make([]string, len(runes))
	for i, r := range runes {
		if gray {
			entries[i] = string(r)
			continue
		}
		hue := 0.0
		if len(runes) > 1 {
			hue = float64(i) / float64(len(runes)-1)
		}
		fg := HSVToRGB(hue, 1, 1-hue)

		var b strings.Builder
		b.WriteString(prefix)
		b.WriteString(sgr(fg, false))
		b.WriteRune(r)
		b.WriteString(reset)
		entries[i] = b.String()
	}

	return Ramp{entries: entries}, nil
}

// sgr selects c as the 24-bit foreground, or background when bg is set.
// termenv truncates the rescaled channel, so a few mid-range values come out
// one below the requested level.
func sgr(c RGB, bg bool) string {
	return termenv.CSI + termenv.RGBColor(c.Hex()).Sequence(bg) + "m"
}

// Len returns the number of entries.
func (r Ramp) Len() int { return len(r.entries) }

// Entry returns the styled string for bucket i.
func (r Ramp) Entry(i int) string { return r.entries[i] }

// Index maps an iteration count to a bucket: floor(iter*(Len-1)/maxIter),
// clamped to the ramp.
func (r Ramp) Index(iter, maxIter int) int {
	last := len(r.entries) - 1
	if last <= 0 {
		return 0
	}
	if maxIter <= 0 {
		return last
	}
	idx := iter * last / maxIter
	if idx < 0 {
		return 0
	}
	if idx > last {
		return last
	}
	return idx
}
