// Package constants supplies the named rendering constants consumed by
// the measurement and drawing passes: paddings, corner radii, notch and
// puzzle-tab dimensions, minimum block sizes, and the SVG path fragments
// for the fixed shapes.
//
// The zero value is not usable; obtain a provider from Default and
// optionally overlay a TOML constant set with Load.
package constants

// Constants is a rendering constant set. All lengths are in workspace
// units. The spacing rule table in package measure reads the padding
// ladder; the drawers read the shape descriptors.
type Constants struct {
	// Padding ladder used by the in-row spacing rules.
	NoPadding          float64
	SmallPadding       float64
	MediumPadding      float64
	MediumLargePadding float64
	LargePadding       float64

	// TallInputFieldOffsetY shifts fields down on rows whose input is
	// taller than the fields.
	TallInputFieldOffsetY float64

	// Puzzle tab (value connection) dimensions.
	TabHeight        float64
	TabOffsetFromTop float64
	TabWidth         float64

	// Notch (statement connection) dimensions.
	NotchWidth      float64
	NotchHeight     float64
	NotchOffsetLeft float64

	// StatementInputPaddingLeft pads the left edge of a statement input row.
	StatementInputPaddingLeft float64
	// StatementBottomSpacerHeight is the extra height under a block
	// whose last input is a statement input.
	StatementBottomSpacerHeight float64
	// StatementInputSpacerMinWidth is the minimum width of the spacer
	// row that follows a statement input.
	StatementInputSpacerMinWidth float64

	MinBlockWidth          float64
	MinBlockHeight         float64
	EmptyBlockSpacerHeight float64

	DummyInputMinHeight float64

	EmptyInlineInputPadding float64
	EmptyInlineInputHeight  float64

	ExternalValueInputPadding float64
	EmptyStatementInputHeight float64

	StartHatHeight float64
	StartHatWidth  float64

	CornerRadius float64

	JaggedTeethHeight float64
	JaggedTeethWidth  float64

	// MediumRowHeight floors the top and bottom spacer rows.
	TopRowMinHeight    float64
	BottomRowMinHeight float64
	// BottomRowAfterStatementMinHeight floors the bottom row of a block
	// ending with a statement input.
	BottomRowAfterStatementMinHeight float64

	// DarkPathOffset is the (x, y) translation of the shadow path copy.
	DarkPathOffset float64

	// Fixed shape descriptors, rebuilt from the dimensions above by
	// RebuildShapes.
	Notch       Notch
	PuzzleTab   PuzzleTab
	StartHat    StartHat
	JaggedTeeth JaggedTeeth
}

// Default returns the standard constant set.
func Default() *Constants {
	c := &Constants{
		NoPadding:          0,
		SmallPadding:       3,
		MediumPadding:      5,
		MediumLargePadding: 8,
		LargePadding:       10,

		TallInputFieldOffsetY: 5,

		TabHeight:        15,
		TabOffsetFromTop: 5,
		TabWidth:         8,

		NotchWidth:      15,
		NotchHeight:     4,
		NotchOffsetLeft: 15,

		StatementInputPaddingLeft:    20,
		StatementBottomSpacerHeight:  5,
		StatementInputSpacerMinWidth: 30,

		MinBlockWidth:          12,
		MinBlockHeight:         24,
		EmptyBlockSpacerHeight: 16,

		DummyInputMinHeight: 15,

		EmptyInlineInputPadding: 14.5,
		EmptyInlineInputHeight:  26,

		ExternalValueInputPadding: 2,
		EmptyStatementInputHeight: 24,

		StartHatHeight: 15,
		StartHatWidth:  100,

		CornerRadius: 8,

		JaggedTeethHeight: 12,
		JaggedTeethWidth:  6,

		TopRowMinHeight:                  5,
		BottomRowMinHeight:               5,
		BottomRowAfterStatementMinHeight: 10,

		DarkPathOffset: 1,
	}
	c.RebuildShapes()
	return c
}
