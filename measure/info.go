package measure

import (
	"log/slog"

	"github.com/snapkit/snap"
	"github.com/snapkit/snap/constants"
)

// RenderInfo is the full per-block layout computation: a transient
// record created for one render invocation and discarded when the
// render completes. Measure runs four ordered phases:
//
//  1. Row creation walks the inputs in declaration order, grouping
//     content into rows (inline value inputs share rows when the block
//     is in inline mode).
//  2. Spacing inserts an explicit spacer Measurable between every
//     adjacent pair of elements and a spacer row between every pair of
//     content rows.
//  3. Alignment distributes each row's missing width (relative to the
//     widest row) into its leading and trailing spacers per the row's
//     alignment.
//  4. Finalize assigns absolute coordinates with a single top-to-bottom
//     cursor pass, enforces the minimum block height, and computes the
//     baseline and connection offsets.
type RenderInfo struct {
	Block     *snap.Block
	Constants *constants.Constants
	Measurer  snap.FieldMeasurer
	RTL       bool

	Rows      []*Row
	TopRow    *Row
	BottomRow *Row

	// Block-level aggregates, valid after Measure.
	Width             float64
	Height            float64
	WidthWithChildren float64
	// StartY is the top of the block body; a start hat rises
	// AscenderHeight above it.
	StartY float64
	// Baseline is the Y of the block's bottom edge excluding the
	// next-connection descender.
	Baseline float64

	// Output is the output connection measurable, outside the row list
	// (it spans the left edge), or nil.
	Output *Measurable
}

// New creates a RenderInfo for one block. The info is single-use: call
// Measure exactly once, read the results, discard.
func New(b *snap.Block, c *constants.Constants, fm snap.FieldMeasurer, rtl bool) *RenderInfo {
	return &RenderInfo{Block: b, Constants: c, Measurer: fm, RTL: rtl}
}

// Measure runs the four layout phases. The receiver afterwards holds
// final sizes and absolute positions for every row and element.
//
// Measure must not run concurrently with mutation of the block's
// input/connection tree; callers complete one pass before issuing
// another.
func (ri *RenderInfo) Measure() {
	ri.createRows()
	ri.addElemSpacing()
	ri.addRowSpacing()
	ri.computeBounds()
	ri.alignRowElements()
	ri.finalize()
	snap.Logger().Debug("measured block",
		slog.String("block", ri.Block.ID()),
		slog.Int("rows", len(ri.Rows)),
		slog.Float64("width", ri.Width),
		slog.Float64("height", ri.Height))
}

// Phase 1: row creation.

func (ri *RenderInfo) createRows() {
	ri.createTopRow()
	ri.Rows = append(ri.Rows, ri.TopRow)

	if ri.Block.Collapsed() {
		row := &Row{Kind: RowInput}
		row.append(newJaggedEdge(ri.Constants))
		row.measure()
		ri.Rows = append(ri.Rows, row)
	} else {
		ri.createInputRows()
	}

	ri.createBottomRow()
	ri.Rows = append(ri.Rows, ri.BottomRow)

	if out := ri.Block.Output(); out != nil {
		ri.Output = &Measurable{
			Kind:       KindConnection,
			Conn:       snap.OutputValue,
			Width:      ri.Constants.PuzzleTab.Width,
			Height:     ri.Constants.PuzzleTab.Height,
			Connection: out,
		}
	}
}

func (ri *RenderInfo) createTopRow() {
	b := ri.Block
	c := ri.Constants
	row := &Row{Kind: RowTop}

	squareCorner := b.Previous() != nil || b.Output() != nil || b.Hat()
	if squareCorner {
		row.append(newSquareCorner(false))
	} else {
		row.append(newRoundCorner(c, false))
	}
	if b.Hat() && b.Previous() == nil {
		row.append(newHat(c))
		row.AscenderHeight = c.StartHat.Height
	}
	if b.Previous() != nil {
		row.append(newPreviousConnection(c, b.Previous()))
	}
	row.measure()
	if row.Height < c.TopRowMinHeight {
		row.Height = c.TopRowMinHeight
	}
	ri.TopRow = row
}

func (ri *RenderInfo) createBottomRow() {
	b := ri.Block
	c := ri.Constants
	row := &Row{Kind: RowBottom}

	squareCorner := b.Next() != nil || b.Output() != nil
	if squareCorner {
		row.append(newSquareCorner(false))
	} else {
		row.append(newRoundCorner(c, false))
	}
	if b.Next() != nil {
		row.append(newNextConnection(c, b.Next()))
		row.DescenderHeight = c.Notch.Height
	}
	row.measure()
	min := c.BottomRowMinHeight
	if last := ri.lastInputRow(); last != nil && last.HasStatement {
		min = c.BottomRowAfterStatementMinHeight
	}
	if row.Height < min {
		row.Height = min
	}
	row.Height += row.DescenderHeight
	ri.BottomRow = row
}

func (ri *RenderInfo) lastInputRow() *Row {
	for i := len(ri.Rows) - 1; i >= 0; i-- {
		if ri.Rows[i].Kind == RowInput {
			return ri.Rows[i]
		}
	}
	return nil
}

func (ri *RenderInfo) createInputRows() {
	b := ri.Block
	c := ri.Constants

	var active *Row
	var last *snap.Input
	flush := func() {
		if active != nil {
			active.measure()
			ri.Rows = append(ri.Rows, active)
			active = nil
		}
	}

	iconsPending := b.Icons()
	for _, in := range b.Inputs() {
		if active == nil || ri.startsNewRow(in, last) {
			flush()
			active = &Row{Kind: RowInput, Align: in.Align()}
			for _, ic := range iconsPending {
				active.append(newIcon(ic))
			}
			iconsPending = nil
		}
		for _, f := range in.Fields() {
			active.append(newField(f, in, ri.Measurer))
		}
		switch in.Kind() {
		case snap.ValueInput:
			if b.InputsInline() {
				active.append(newInlineInput(c, in))
			} else {
				active.append(newExternalInput(c, in))
			}
		case snap.StatementInput:
			active.append(newStatementInput(c, in))
		case snap.DummyInput:
			active.HasDummyInput = true
		}
		if active.Height < c.DummyInputMinHeight {
			active.Height = c.DummyInputMinHeight
		}
		last = in
	}
	// A block with icons but no inputs still shows the icons.
	if len(iconsPending) > 0 {
		active = &Row{Kind: RowInput}
		for _, ic := range iconsPending {
			active.append(newIcon(ic))
		}
	}
	flush()
}

// startsNewRow decides whether input breaks the row under construction.
// Statement inputs always stand alone; value and dummy inputs share a
// row only when the block lays inputs out inline.
func (ri *RenderInfo) startsNewRow(in, last *snap.Input) bool {
	if last == nil {
		return false
	}
	if in.Kind() == snap.StatementInput || last.Kind() == snap.StatementInput {
		return true
	}
	if in.Kind() == snap.ValueInput || in.Kind() == snap.DummyInput {
		return !ri.Block.InputsInline()
	}
	return false
}

// Phase 2: spacing.

func (ri *RenderInfo) addElemSpacing() {
	for _, row := range ri.Rows {
		old := row.Elements
		spaced := make([]*Measurable, 0, 2*len(old)+1)
		if len(old) == 0 {
			spaced = append(spaced, newSpacer(ri.inRowSpacing(nil, nil)))
		}
		for i, elem := range old {
			if i == 0 {
				spaced = append(spaced, newSpacer(ri.inRowSpacing(nil, elem)))
			}
			spaced = append(spaced, elem)
			var next *Measurable
			if i+1 < len(old) {
				next = old[i+1]
			}
			spaced = append(spaced, newSpacer(ri.inRowSpacing(elem, next)))
		}
		row.Elements = spaced
		row.measure()
	}
}

func (ri *RenderInfo) addRowSpacing() {
	old := ri.Rows
	ri.Rows = make([]*Row, 0, 2*len(old)-1)
	for i, row := range old {
		ri.Rows = append(ri.Rows, row)
		if i+1 < len(old) {
			ri.Rows = append(ri.Rows, ri.makeSpacerRow(row, old[i+1]))
		}
	}
}

func (ri *RenderInfo) makeSpacerRow(prev, next *Row) *Row {
	return &Row{
		Kind:   RowSpacer,
		Height: ri.spacerRowHeight(prev, next),
		Width:  ri.spacerRowWidth(prev, next),
	}
}

// Phase 3: bounds and alignment.

func (ri *RenderInfo) computeBounds() {
	var width, widthWithChildren float64
	for _, row := range ri.Rows {
		if row.Width > width {
			width = row.Width
		}
		wc := row.WidthWithConnected
		if row.Kind == RowSpacer {
			wc = row.Width
		}
		if wc > widthWithChildren {
			widthWithChildren = wc
		}
	}
	if width < ri.Constants.MinBlockWidth {
		width = ri.Constants.MinBlockWidth
	}
	ri.Width = width
	if widthWithChildren < width {
		widthWithChildren = width
	}
	ri.WidthWithChildren = widthWithChildren
}

// alignRowElements distributes each row's missing space relative to the
// block width: left alignment gives all of it to the trailing spacer,
// right alignment to the leading spacer, and center splits it evenly
// (the trailing spacer absorbs the odd unit).
func (ri *RenderInfo) alignRowElements() {
	for _, row := range ri.Rows {
		missing := ri.Width - row.Width
		if missing <= 0 {
			continue
		}
		if row.Kind == RowSpacer {
			row.Width = ri.Width
			continue
		}
		switch row.Align {
		case snap.AlignRight:
			row.FirstSpacer().Width += missing
		case snap.AlignCenter:
			lead := missing / 2
			row.FirstSpacer().Width += lead
			row.LastSpacer().Width += missing - lead
		default:
			row.LastSpacer().Width += missing
		}
		row.measure()
	}
}

// Phase 4: finalize.

func (ri *RenderInfo) finalize() {
	c := ri.Constants

	var total float64
	for _, row := range ri.Rows {
		total += row.Height
	}
	// Enforce the minimum block height, excluding any hat ascender, by
	// inflating the bottom row. This happens before elements are placed
	// so bottom-row elements are positioned against the final height.
	if total < c.MinBlockHeight {
		ri.BottomRow.Height += c.MinBlockHeight - total
	}

	var cursor float64
	for _, row := range ri.Rows {
		row.X = 0
		row.Y = cursor
		ri.recordElemPositions(row)
		cursor += row.Height
	}
	ri.Height = cursor
	ri.StartY = 0
	ri.Baseline = cursor - ri.BottomRow.DescenderHeight
	ri.recordConnectionOffsets()
}

// recordElemPositions assigns absolute coordinates for one row. The
// vertical centerline differs by row kind: top-row elements hang from
// the top edge, bottom-row elements sit on the bottom edge, statement
// rows top-align with a fixed offset for the fields beside the
// statement, and plain input rows center vertically.
func (ri *RenderInfo) recordElemPositions(row *Row) {
	x := row.X
	for _, elem := range row.Elements {
		elem.X = x
		elem.Y = row.Y + ri.elemCenterline(row, elem) - elem.Height/2
		x += elem.Width
	}
}

func (ri *RenderInfo) elemCenterline(row *Row, elem *Measurable) float64 {
	switch row.Kind {
	case RowTop:
		return elem.Height / 2
	case RowBottom:
		return row.Height - ri.BottomRow.DescenderHeight - elem.Height/2
	}
	if elem.IsStatementInput() {
		return elem.Height / 2
	}
	if row.HasStatement {
		return ri.Constants.TallInputFieldOffsetY + elem.Height/2
	}
	return row.Height / 2
}

// recordConnectionOffsets computes each connection point's offset from
// the block's top-left corner, in workspace units. These offsets are
// what the rendered-connection layer applies on top of the block
// position to place connections in the spatial index.
func (ri *RenderInfo) recordConnectionOffsets() {
	c := ri.Constants
	for _, row := range ri.Rows {
		for _, elem := range row.Elements {
			if elem.Connection == nil {
				continue
			}
			switch {
			case elem.IsPreviousConnection():
				elem.ConnectionX = elem.NotchOffset + c.Notch.Width/2
				elem.ConnectionY = 0
			case elem.IsNextConnection():
				elem.ConnectionX = elem.NotchOffset + c.Notch.Width/2
				elem.ConnectionY = ri.Baseline
			case elem.IsInlineInput():
				elem.ConnectionX = elem.X + c.PuzzleTab.Width + 1
				elem.ConnectionY = elem.Y + 1 + c.TabOffsetFromTop
			case elem.IsExternalInput():
				elem.ConnectionX = ri.Width
				elem.ConnectionY = elem.Y + c.TabOffsetFromTop
			case elem.IsStatementInput():
				elem.ConnectionX = elem.X + elem.NotchOffset + c.Notch.Width/2
				elem.ConnectionY = elem.Y
			}
		}
	}
	if ri.Output != nil {
		ri.Output.ConnectionX = 0
		ri.Output.ConnectionY = c.TabOffsetFromTop
	}
}
