package render

import (
	"fmt"
	"strings"
)

// PathBuilder accumulates SVG path data. Absolute commands track the
// current point so relative shape fragments (notches, tabs) can be
// spliced in from the constants provider without re-deriving their
// endpoints.
type PathBuilder struct {
	buf     strings.Builder
	x, y    float64
	started bool
}

// MoveTo starts a new subpath at (x, y).
func (p *PathBuilder) MoveTo(x, y float64) {
	p.cmd("M", x, y)
	p.x, p.y = x, y
	p.started = true
}

// LineTo draws a line to (x, y).
func (p *PathBuilder) LineTo(x, y float64) {
	p.cmd("L", x, y)
	p.x, p.y = x, y
}

// HLineTo draws a horizontal line to x.
func (p *PathBuilder) HLineTo(x float64) {
	p.one("H", x)
	p.x = x
}

// VLineTo draws a vertical line to y.
func (p *PathBuilder) VLineTo(y float64) {
	p.one("V", y)
	p.y = y
}

// ArcTo draws a circular arc of radius r to (x, y). sweep follows the
// SVG sweep-flag convention: 1 is clockwise in the y-down coordinate
// system.
func (p *PathBuilder) ArcTo(r float64, sweep int, x, y float64) {
	if p.buf.Len() > 0 {
		p.buf.WriteByte(' ')
	}
	fmt.Fprintf(&p.buf, "A %s,%s 0 0,%d %s,%s",
		fnum(r), fnum(r), sweep, fnum(x), fnum(y))
	p.x, p.y = x, y
}

// Raw splices a pre-built relative path fragment (a notch or tab
// descriptor) and records its net displacement (dx, dy).
func (p *PathBuilder) Raw(fragment string, dx, dy float64) {
	if p.buf.Len() > 0 {
		p.buf.WriteByte(' ')
	}
	p.buf.WriteString(fragment)
	p.x += dx
	p.y += dy
}

// Close closes the current subpath.
func (p *PathBuilder) Close() {
	if p.buf.Len() > 0 {
		p.buf.WriteByte(' ')
	}
	p.buf.WriteByte('z')
}

// Current returns the current point.
func (p *PathBuilder) Current() (x, y float64) { return p.x, p.y }

// Empty reports whether nothing has been drawn.
func (p *PathBuilder) Empty() bool { return !p.started }

// String returns the accumulated path data.
func (p *PathBuilder) String() string { return p.buf.String() }

func (p *PathBuilder) cmd(op string, x, y float64) {
	if p.buf.Len() > 0 {
		p.buf.WriteByte(' ')
	}
	p.buf.WriteString(op)
	p.buf.WriteByte(' ')
	p.buf.WriteString(fnum(x))
	p.buf.WriteByte(',')
	p.buf.WriteString(fnum(y))
}

func (p *PathBuilder) one(op string, v float64) {
	if p.buf.Len() > 0 {
		p.buf.WriteByte(' ')
	}
	p.buf.WriteString(op)
	p.buf.WriteByte(' ')
	p.buf.WriteString(fnum(v))
}

// fnum formats a coordinate the way SVG path data expects: shortest
// representation, no exponent notation at these magnitudes.
func fnum(v float64) string {
	return fmt.Sprintf("%g", v)
}
