package constants

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// overrides mirrors the numeric fields of Constants for TOML decoding.
// Pointer fields distinguish "absent" from an explicit zero.
type overrides struct {
	NoPadding          *float64 `toml:"no_padding"`
	SmallPadding       *float64 `toml:"small_padding"`
	MediumPadding      *float64 `toml:"medium_padding"`
	MediumLargePadding *float64 `toml:"medium_large_padding"`
	LargePadding       *float64 `toml:"large_padding"`

	TallInputFieldOffsetY *float64 `toml:"tall_input_field_offset_y"`

	TabHeight        *float64 `toml:"tab_height"`
	TabOffsetFromTop *float64 `toml:"tab_offset_from_top"`
	TabWidth         *float64 `toml:"tab_width"`

	NotchWidth      *float64 `toml:"notch_width"`
	NotchHeight     *float64 `toml:"notch_height"`
	NotchOffsetLeft *float64 `toml:"notch_offset_left"`

	StatementInputPaddingLeft    *float64 `toml:"statement_input_padding_left"`
	StatementBottomSpacerHeight  *float64 `toml:"statement_bottom_spacer_height"`
	StatementInputSpacerMinWidth *float64 `toml:"statement_input_spacer_min_width"`

	MinBlockWidth          *float64 `toml:"min_block_width"`
	MinBlockHeight         *float64 `toml:"min_block_height"`
	EmptyBlockSpacerHeight *float64 `toml:"empty_block_spacer_height"`

	DummyInputMinHeight *float64 `toml:"dummy_input_min_height"`

	EmptyInlineInputPadding *float64 `toml:"empty_inline_input_padding"`
	EmptyInlineInputHeight  *float64 `toml:"empty_inline_input_height"`

	ExternalValueInputPadding *float64 `toml:"external_value_input_padding"`
	EmptyStatementInputHeight *float64 `toml:"empty_statement_input_height"`

	StartHatHeight *float64 `toml:"start_hat_height"`
	StartHatWidth  *float64 `toml:"start_hat_width"`

	CornerRadius *float64 `toml:"corner_radius"`

	JaggedTeethHeight *float64 `toml:"jagged_teeth_height"`
	JaggedTeethWidth  *float64 `toml:"jagged_teeth_width"`

	TopRowMinHeight                  *float64 `toml:"top_row_min_height"`
	BottomRowMinHeight               *float64 `toml:"bottom_row_min_height"`
	BottomRowAfterStatementMinHeight *float64 `toml:"bottom_row_after_statement_min_height"`

	DarkPathOffset *float64 `toml:"dark_path_offset"`
}

// Load returns the default constant set with the TOML document from r
// overlaid. Absent keys keep their defaults; shape descriptors are
// rebuilt from the final dimensions.
func Load(r io.Reader) (*Constants, error) {
	var o overrides
	if _, err := toml.NewDecoder(r).Decode(&o); err != nil {
		return nil, fmt.Errorf("constants: decoding overrides: %w", err)
	}
	c := Default()
	apply := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&c.NoPadding, o.NoPadding)
	apply(&c.SmallPadding, o.SmallPadding)
	apply(&c.MediumPadding, o.MediumPadding)
	apply(&c.MediumLargePadding, o.MediumLargePadding)
	apply(&c.LargePadding, o.LargePadding)
	apply(&c.TallInputFieldOffsetY, o.TallInputFieldOffsetY)
	apply(&c.TabHeight, o.TabHeight)
	apply(&c.TabOffsetFromTop, o.TabOffsetFromTop)
	apply(&c.TabWidth, o.TabWidth)
	apply(&c.NotchWidth, o.NotchWidth)
	apply(&c.NotchHeight, o.NotchHeight)
	apply(&c.NotchOffsetLeft, o.NotchOffsetLeft)
	apply(&c.StatementInputPaddingLeft, o.StatementInputPaddingLeft)
	apply(&c.StatementBottomSpacerHeight, o.StatementBottomSpacerHeight)
	apply(&c.StatementInputSpacerMinWidth, o.StatementInputSpacerMinWidth)
	apply(&c.MinBlockWidth, o.MinBlockWidth)
	apply(&c.MinBlockHeight, o.MinBlockHeight)
	apply(&c.EmptyBlockSpacerHeight, o.EmptyBlockSpacerHeight)
	apply(&c.DummyInputMinHeight, o.DummyInputMinHeight)
	apply(&c.EmptyInlineInputPadding, o.EmptyInlineInputPadding)
	apply(&c.EmptyInlineInputHeight, o.EmptyInlineInputHeight)
	apply(&c.ExternalValueInputPadding, o.ExternalValueInputPadding)
	apply(&c.EmptyStatementInputHeight, o.EmptyStatementInputHeight)
	apply(&c.StartHatHeight, o.StartHatHeight)
	apply(&c.StartHatWidth, o.StartHatWidth)
	apply(&c.CornerRadius, o.CornerRadius)
	apply(&c.JaggedTeethHeight, o.JaggedTeethHeight)
	apply(&c.JaggedTeethWidth, o.JaggedTeethWidth)
	apply(&c.TopRowMinHeight, o.TopRowMinHeight)
	apply(&c.BottomRowMinHeight, o.BottomRowMinHeight)
	apply(&c.BottomRowAfterStatementMinHeight, o.BottomRowAfterStatementMinHeight)
	apply(&c.DarkPathOffset, o.DarkPathOffset)
	c.RebuildShapes()
	return c, nil
}
