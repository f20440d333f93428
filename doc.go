// Package snap implements the core of a visual block-programming editor:
// draggable, snapping blocks that compose into programs and render as SVG.
//
// # Overview
//
// The root package holds the block model (blocks, inputs, fields, icons)
// and the logical connection layer (typed attachment points plus the
// compatibility checker). Geometry measurement lives in package measure,
// SVG serialization and connection snapping in package render, and field
// label measurement in package text.
//
// # Quick Start
//
//	import (
//	    "github.com/snapkit/snap"
//	    "github.com/snapkit/snap/render"
//	)
//
//	ws := render.NewWorkspace()
//	b := ws.NewBlock("controls_repeat")
//	b.Model().AppendDummyInput().AppendField(snap.NewLabelField("repeat"))
//	if err := b.Render(); err != nil { ... }
//	svg, err := ws.SVG()
//
// # Coordinate System
//
// Uses standard SVG coordinates:
//   - Origin (0,0) at top-left
//   - X increases right (mirrored when a workspace is right-to-left)
//   - Y increases down
//
// All sizes and positions are in workspace units (CSS pixels at scale 1).
package snap

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
