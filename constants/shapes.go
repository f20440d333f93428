package constants

import "fmt"

// Notch describes the trapezoid notch joining statement blocks. The path
// fragments are relative SVG commands covering the notch's width, one
// for each drawing direction.
type Notch struct {
	Width, Height       float64
	PathLeft, PathRight string
}

// PuzzleTab describes the puzzle-piece tab joining value blocks. The
// path fragments cover the tab's height, drawn downwards on a block's
// right edge and upwards on its left edge.
type PuzzleTab struct {
	Width, Height    float64
	PathDown, PathUp string
}

// StartHat is the rounded ascender on top of event/definition blocks.
type StartHat struct {
	Width, Height float64
	Path          string
}

// JaggedTeeth is the torn-paper edge marking a collapsed block.
type JaggedTeeth struct {
	Width, Height float64
	Path          string
}

// RebuildShapes recomputes the shape descriptors from the current
// dimension fields. Call after mutating any tab/notch/hat dimension.
func (c *Constants) RebuildShapes() {
	c.Notch = c.makeNotch()
	c.PuzzleTab = c.makePuzzleTab()
	c.StartHat = c.makeStartHat()
	c.JaggedTeeth = c.makeJaggedTeeth()
}

func (c *Constants) makeNotch() Notch {
	// The notch is a trapezoid: slope down, flat bottom, slope up.
	slope := c.NotchHeight + 2
	inner := c.NotchWidth - 2*slope
	return Notch{
		Width:  c.NotchWidth,
		Height: c.NotchHeight,
		PathLeft: fmt.Sprintf("l %s,%s %s,0 %s,-%s",
			num(slope), num(c.NotchHeight),
			num(inner), num(slope), num(c.NotchHeight)),
		PathRight: fmt.Sprintf("l -%s,%s -%s,0 -%s,-%s",
			num(slope), num(c.NotchHeight),
			num(inner), num(slope), num(c.NotchHeight)),
	}
}

func (c *Constants) makePuzzleTab() PuzzleTab {
	w := num(c.TabWidth)
	return PuzzleTab{
		Width:  c.TabWidth,
		Height: c.TabHeight,
		PathDown: fmt.Sprintf("c 0,10 -%s,-8 -%s,7.5 s %s,-2.5 %s,7.5",
			w, w, w, w),
		PathUp: fmt.Sprintf("c 0,-10 -%s,8 -%s,-7.5 s %s,2.5 %s,-7.5",
			w, w, w, w),
	}
}

func (c *Constants) makeStartHat() StartHat {
	return StartHat{
		Width:  c.StartHatWidth,
		Height: c.StartHatHeight,
		Path: fmt.Sprintf("c 30,-%s 70,-%s %s,0",
			num(c.StartHatHeight), num(c.StartHatHeight), num(c.StartHatWidth)),
	}
}

func (c *Constants) makeJaggedTeeth() JaggedTeeth {
	half := c.JaggedTeethHeight / 4
	return JaggedTeeth{
		Width:  c.JaggedTeethWidth,
		Height: c.JaggedTeethHeight,
		Path: fmt.Sprintf("l %s,%s -%s,%s %s,%s",
			num(c.JaggedTeethWidth), num(half),
			num(2*c.JaggedTeethWidth), num(2*half),
			num(c.JaggedTeethWidth), num(half)),
	}
}

// num formats a length the way SVG path data expects: no trailing zeros,
// no exponent notation for the magnitudes used here.
func num(v float64) string {
	s := fmt.Sprintf("%g", v)
	return s
}
