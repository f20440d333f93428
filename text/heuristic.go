package text

import (
	"unicode"

	"github.com/snapkit/snap"
)

// Default typography for field labels, in workspace units.
const (
	defaultFontSize   = 11
	defaultLineHeight = 14
)

// Heuristic measures text with per-rune advance estimates instead of
// font data. Widths are stable across platforms, which keeps layout
// tests deterministic; they are close to, but not exactly, the widths a
// real font produces.
type Heuristic struct {
	// FontSize scales the estimate; zero means the default field size.
	FontSize float64
}

// MeasureField implements snap.FieldMeasurer.
func (h Heuristic) MeasureField(label string, editable bool) snap.Size {
	size := h.FontSize
	if size == 0 {
		size = defaultFontSize
	}
	var w float64
	for _, r := range label {
		w += runeAdvance(r) * size
	}
	return snap.Sz(w, size*defaultLineHeight/defaultFontSize)
}

// runeAdvance estimates a rune's advance as a fraction of the font size.
func runeAdvance(r rune) float64 {
	switch {
	case r == ' ':
		return 0.30
	case r == 'i' || r == 'l' || r == 'j' || r == '.' || r == ',' || r == '\'':
		return 0.28
	case unicode.IsUpper(r):
		return 0.70
	case unicode.IsDigit(r):
		return 0.55
	case unicode.Is(unicode.Han, r) || unicode.Is(unicode.Hangul, r) ||
		unicode.Is(unicode.Hiragana, r) || unicode.Is(unicode.Katakana, r):
		return 1.0
	default:
		return 0.52
	}
}
