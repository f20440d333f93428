// Package text measures field label text for the block layout pass.
//
// Two measurers are provided:
//   - Heuristic: per-rune advance estimates, no font data required.
//     Deterministic and cheap; the default for workspaces and tests.
//   - Shaped: HarfBuzz shaping via go-text/typesetting over a loaded
//     font, with metrics from golang.org/x/image/font/opentype. Use for
//     pixel-accurate label widths including kerning and ligatures.
//
// Both implement snap.FieldMeasurer. Direction detection (for the
// right-to-left workspace flag) uses golang.org/x/text/unicode/bidi.
package text
