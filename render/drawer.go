package render

import (
	"github.com/snapkit/snap/measure"
)

// draw serializes a finalized RenderInfo into the block's main outline
// path and its highlight path. All geometry decisions were made by the
// measure pass; the drawer walks rows and splices in the fixed shape
// fragments from the constants provider.
func draw(info *measure.RenderInfo) (main, highlight string) {
	var p PathBuilder
	drawTop(&p, info)
	drawRight(&p, info)
	drawBottom(&p, info)
	drawLeft(&p, info)
	drawInlineSockets(&p, info)
	return p.String(), drawHighlight(info)
}

// roundedTop reports whether the top corners are rounded. Blocks with a
// previous connection, an output, or a hat square their top corners.
func roundedTop(info *measure.RenderInfo) bool {
	for _, elem := range info.TopRow.Elements {
		if elem.Kind == measure.KindRoundCorner {
			return true
		}
		if elem.Kind == measure.KindSquareCorner {
			return false
		}
	}
	return false
}

func roundedBottom(info *measure.RenderInfo) bool {
	for _, elem := range info.BottomRow.Elements {
		if elem.Kind == measure.KindRoundCorner {
			return true
		}
		if elem.Kind == measure.KindSquareCorner {
			return false
		}
	}
	return false
}

func drawTop(p *PathBuilder, info *measure.RenderInfo) {
	c := info.Constants
	if roundedTop(info) {
		p.MoveTo(0, c.CornerRadius)
		p.ArcTo(c.CornerRadius, 1, c.CornerRadius, 0)
	} else {
		p.MoveTo(0, 0)
	}
	for _, elem := range info.TopRow.Elements {
		switch {
		case elem.IsHat():
			p.LineTo(elem.X, 0)
			p.Raw(c.StartHat.Path, c.StartHat.Width, 0)
		case elem.IsPreviousConnection():
			p.LineTo(elem.X, 0)
			p.Raw(c.Notch.PathLeft, c.Notch.Width, 0)
		}
	}
	if roundedTop(info) {
		p.LineTo(info.Width-c.CornerRadius, 0)
		p.ArcTo(c.CornerRadius, 1, info.Width, c.CornerRadius)
	} else {
		p.LineTo(info.Width, 0)
	}
}

// drawRight walks the content rows top to bottom along the right edge,
// carving external input tabs and statement notchways.
func drawRight(p *PathBuilder, info *measure.RenderInfo) {
	c := info.Constants
	for _, row := range info.Rows {
		if row.Kind == measure.RowTop || row.Kind == measure.RowBottom {
			continue
		}
		bottom := row.Y + row.Height
		var ext, stmt *measure.Measurable
		for _, elem := range row.Elements {
			switch {
			case elem.IsExternalInput():
				ext = elem
			case elem.IsStatementInput():
				stmt = elem
			}
		}
		switch {
		case ext != nil:
			p.VLineTo(ext.Y)
			p.Raw(c.PuzzleTab.PathDown, 0, c.PuzzleTab.Height)
			p.VLineTo(bottom)
		case stmt != nil:
			// The statement opening spans from the inner wall to the
			// block's right edge; the band below it is the statement
			// bottom spacer.
			carveBottom := stmt.Y + stmt.Height - c.StatementBottomSpacerHeight
			inner := stmt.X + stmt.Width
			p.VLineTo(stmt.Y)
			p.LineTo(inner, stmt.Y)
			p.Raw(c.Notch.PathRight, -c.Notch.Width, 0)
			p.VLineTo(carveBottom)
			p.HLineTo(info.Width)
			p.VLineTo(bottom)
		default:
			p.VLineTo(bottom)
		}
	}
}

func drawBottom(p *PathBuilder, info *measure.RenderInfo) {
	c := info.Constants
	baseline := info.Baseline
	if roundedBottom(info) {
		p.VLineTo(baseline - c.CornerRadius)
		p.ArcTo(c.CornerRadius, 1, info.Width-c.CornerRadius, baseline)
	} else {
		p.VLineTo(baseline)
	}
	for _, elem := range info.BottomRow.Elements {
		if elem.IsNextConnection() {
			p.HLineTo(elem.NotchOffset + c.Notch.Width)
			p.Raw(c.Notch.PathRight, -c.Notch.Width, 0)
		}
	}
	if roundedBottom(info) {
		p.HLineTo(c.CornerRadius)
		p.ArcTo(c.CornerRadius, 1, 0, baseline-c.CornerRadius)
	} else {
		p.HLineTo(0)
	}
}

func drawLeft(p *PathBuilder, info *measure.RenderInfo) {
	c := info.Constants
	if info.Output != nil {
		p.VLineTo(c.TabOffsetFromTop + c.PuzzleTab.Height)
		p.Raw(c.PuzzleTab.PathUp, 0, -c.PuzzleTab.Height)
	}
	p.Close()
}

// drawInlineSockets appends one subpath per inline input: a socket
// rectangle with a puzzle tab cut into its left wall.
func drawInlineSockets(p *PathBuilder, info *measure.RenderInfo) {
	c := info.Constants
	for _, row := range info.Rows {
		for _, elem := range row.Elements {
			if !elem.IsInlineInput() {
				continue
			}
			left := elem.X + c.PuzzleTab.Width
			p.MoveTo(left, elem.Y)
			p.HLineTo(elem.X + elem.Width)
			p.VLineTo(elem.Y + elem.Height)
			p.HLineTo(left)
			p.VLineTo(elem.Y + c.TabOffsetFromTop + c.PuzzleTab.Height)
			p.Raw(c.PuzzleTab.PathUp, 0, -c.PuzzleTab.Height)
			p.Close()
		}
	}
}

// drawHighlight builds the light path: a stroke hugging the bottom-left
// to top-left to top-right edges, inset by half a unit, simulating a
// top-left light source.
func drawHighlight(info *measure.RenderInfo) string {
	c := info.Constants
	var p PathBuilder
	p.MoveTo(0.5, info.Baseline-0.5)
	if roundedTop(info) {
		p.VLineTo(c.CornerRadius + 0.5)
		p.ArcTo(c.CornerRadius, 1, c.CornerRadius+0.5, 0.5)
	} else {
		p.VLineTo(0.5)
	}
	p.HLineTo(info.Width - 0.5)
	return p.String()
}
