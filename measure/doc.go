// Package measure computes the visual geometry of a single block: it
// walks the block's live input/field/icon/connection tree, groups the
// content into rows, inserts spacing, and assigns every element an
// absolute position within the block's bounding box.
//
// The result of a pass is a RenderInfo: a transient record that the
// drawing layer (package render) serializes into SVG path data. Nothing
// in this package is retained between passes; every render recomputes
// from the live model.
package measure
