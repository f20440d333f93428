package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/snapkit/snap"
)

// Shaped measures field labels by shaping them with HarfBuzz via
// go-text/typesetting, so widths include kerning, ligatures and complex
// script shaping. Vertical metrics come from the font's ascent/descent
// via golang.org/x/image/font/sfnt.
//
// Shaped is safe for concurrent use: the parsed font.Font is read-only,
// font.Face instances are created per call (font.Face is NOT safe for
// concurrent use), and HarfbuzzShaper instances are pooled since they
// carry mutable buffer state.
type Shaped struct {
	font   *font.Font
	size   float64
	height float64

	shaperPool sync.Pool
}

// NewShaped parses TTF/OTF font data and returns a measurer producing
// label sizes at the given point size.
func NewShaped(data []byte, size float64) (*Shaped, error) {
	if size <= 0 {
		size = defaultFontSize
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parsing font for shaping: %w", err)
	}
	ofont, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parsing font metrics: %w", err)
	}
	s := &Shaped{
		font: face.Font,
		size: size,
		shaperPool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
	}
	var buf sfnt.Buffer
	m, err := ofont.Metrics(&buf, floatToFixed(size), xfont.HintingFull)
	if err != nil {
		return nil, fmt.Errorf("text: reading font metrics: %w", err)
	}
	s.height = fixedToFloat(m.Ascent) + fixedToFloat(m.Descent)
	return s, nil
}

// MeasureField implements snap.FieldMeasurer. The width is the summed
// advance of the shaped glyph run; the height is the font's line height
// regardless of label content, so rows do not jitter with ascender and
// descender presence.
func (s *Shaped) MeasureField(label string, editable bool) snap.Size {
	if label == "" {
		return snap.Sz(0, s.height)
	}
	runes := []rune(label)
	dir := di.DirectionLTR
	if DetectRTL(label) {
		dir = di.DirectionRTL
	}
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      font.NewFace(s.font),
		Size:      floatToFixed(s.size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.shaperPool.Put(hb)

	var advance fixed.Int26_6
	for _, g := range output.Glyphs {
		advance += g.XAdvance
	}
	return snap.Sz(fixedToFloat(advance), s.height)
}

// detectScript inspects the runes and returns the script of the first
// non-space character. For mixed-script labels the first run's script
// wins; block labels are short enough that this is not worth splitting.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
// The fixed-point representation uses 6 fractional bits.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
