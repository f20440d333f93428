package measure

// inRowSpacing is the pairwise spacing rule table: the width of the
// spacer inserted between prev and next within one row. A nil prev means
// the row start, a nil next the row end. The ordering of the cases is
// load-bearing; earlier rules win. Unlisted pairs fall through to
// MediumPadding.
func (ri *RenderInfo) inRowSpacing(prev, next *Measurable) float64 {
	c := ri.Constants

	if prev == nil {
		// Row starts with a corner: the corner supplies its own width.
		if next != nil && (next.IsLeftSquareCorner() || next.IsLeftRoundedCorner()) {
			return c.NoPadding
		}
		// Between an editable field and the beginning of the row.
		if next != nil && next.IsField() && next.Editable {
			return c.MediumPadding
		}
		// Inline input at the beginning of the row.
		if next != nil && next.IsInlineInput() {
			return c.MediumLargePadding
		}
		// Statement input at the beginning of the row.
		if next != nil && next.IsStatementInput() {
			return c.StatementInputPaddingLeft
		}
		// Anything else at the beginning of the row.
		return c.LargePadding
	}

	// Spacing between a non-input and the end of the row.
	if !prev.IsInput() && next == nil {
		// Between an editable field and the end of the row.
		if prev.IsField() && prev.Editable {
			return c.MediumPadding
		}
		// Padding at the end of an icon-only row to make the block
		// shape clearer.
		if prev.IsIcon() {
			return c.LargePadding*2 + 1
		}
		if prev.IsHat() {
			return c.NoPadding
		}
		// Establish a minimum width for a block with a previous or
		// next connection.
		if prev.IsPreviousOrNextConnection() {
			return c.LargePadding
		}
		// Between a rounded corner and the end of the row.
		if prev.IsLeftRoundedCorner() {
			return c.MinBlockWidth
		}
		// Between a jagged edge and the end of the row.
		if prev.IsJaggedEdge() {
			return c.NoPadding
		}
		// Between noneditable fields and icons and the end of the row.
		return c.LargePadding
	}

	// Between inputs and the end of the row.
	if prev.IsInput() && next == nil {
		if prev.IsExternalInput() {
			return c.NoPadding
		}
		if prev.IsInlineInput() {
			return c.LargePadding
		}
		if prev.IsStatementInput() {
			return c.NoPadding
		}
	}

	// Spacing between a non-input and an input.
	if !prev.IsInput() && next != nil && next.IsInput() {
		// Between an editable field and an input.
		if prev.IsField() && prev.Editable {
			if next.IsInlineInput() || next.IsExternalInput() {
				return c.SmallPadding
			}
		} else {
			if next.IsInlineInput() || next.IsExternalInput() {
				return c.MediumLargePadding
			}
			if next.IsStatementInput() {
				return c.LargePadding
			}
		}
		return c.MediumPadding - 1
	}

	// Spacing between an icon and an icon or field.
	if prev.IsIcon() && next != nil && !next.IsInput() {
		return c.LargePadding
	}

	// Spacing between an inline input and a field.
	if prev.IsInlineInput() && next != nil && next.IsField() {
		if next.Editable {
			return c.MediumPadding
		}
		return c.LargePadding
	}

	if prev.IsLeftSquareCorner() && next != nil {
		// Spacing between a hat and a corner.
		if next.IsHat() {
			return c.NoPadding
		}
		// Spacing between a square corner and a previous or next
		// connection: the notch offset is measured from the block edge.
		if next.IsPreviousConnection() || next.IsNextConnection() {
			return next.NotchOffset
		}
	}

	// Spacing between a rounded corner and a previous or next
	// connection: the corner has already consumed part of the offset.
	if prev.IsLeftRoundedCorner() && next != nil {
		if next.IsPreviousConnection() || next.IsNextConnection() {
			return next.NotchOffset - c.CornerRadius
		}
	}

	// Spacing between two fields (or icons) of the same editability.
	if !prev.IsInput() && next != nil && !next.IsInput() &&
		prev.Editable == next.Editable {
		return c.LargePadding
	}

	// Spacing between anything and a jagged edge.
	if next != nil && next.IsJaggedEdge() {
		return c.LargePadding
	}

	// Ambiguous case: default padding.
	return c.MediumPadding
}

// spacerRowHeight is the height of the spacer row between two content
// rows.
func (ri *RenderInfo) spacerRowHeight(prev, next *Row) float64 {
	c := ri.Constants

	// An input-less block still gets a body.
	if prev.Kind == RowTop && next.Kind == RowBottom {
		return c.EmptyBlockSpacerHeight
	}
	// A statement input carries its own bottom spacing.
	if prev.HasStatement {
		if next.Kind == RowBottom {
			return c.NoPadding
		}
		return c.SmallPadding
	}
	return c.MediumPadding
}

// spacerRowWidth is the natural width of the spacer row between two
// content rows; alignment later stretches it to the block width.
func (ri *RenderInfo) spacerRowWidth(prev, next *Row) float64 {
	w := prev.Width
	if next.Width > w {
		w = next.Width
	}
	// The spacer under a statement input must clear the notchway so the
	// block wall behind the statement stack stays visible.
	if prev.HasStatement && w < ri.Constants.StatementInputSpacerMinWidth {
		w = ri.Constants.StatementInputSpacerMinWidth
	}
	return w
}
