package measure

import "github.com/snapkit/snap"

// RowKind distinguishes the four row flavors of a block layout.
type RowKind int

const (
	// RowInput is a content row built from one or more inputs.
	RowInput RowKind = iota
	// RowSpacer is synthesized inter-row padding.
	RowSpacer
	// RowTop is the block's distinguished first row (corner, hat,
	// previous connection).
	RowTop
	// RowBottom is the block's distinguished last row (corner, next
	// connection, descender).
	RowBottom
)

// String returns the string representation of the row kind.
func (k RowKind) String() string {
	switch k {
	case RowInput:
		return "Input"
	case RowSpacer:
		return "Spacer"
	case RowTop:
		return "Top"
	case RowBottom:
		return "Bottom"
	default:
		return "Unknown"
	}
}

// Row is an ordered horizontal strip of Measurables: insertion order is
// left-to-right visual order. Aggregate width and height only grow as
// elements are appended and never shrink after finalize.
type Row struct {
	Kind     RowKind
	Elements []*Measurable

	Height float64
	Width  float64
	// WidthWithConnected includes blocks hanging outside the body
	// (external value inputs, statement stacks).
	WidthWithConnected float64

	// X and Y are absolute within the block, set only during finalize.
	X, Y float64

	Align snap.Align

	HasExternalInput bool
	HasStatement     bool
	HasDummyInput    bool
	HasInlineInput   bool
	HasJaggedEdge    bool

	// AscenderHeight is the rise of a hat above the block top (top row
	// only). It is excluded from the block's height sum.
	AscenderHeight float64
	// DescenderHeight is the depth of the next-connection notch below
	// the baseline (bottom row only). It is included in Height.
	DescenderHeight float64
}

// append adds an element and folds its membership into the row flags.
func (r *Row) append(m *Measurable) {
	r.Elements = append(r.Elements, m)
	switch {
	case m.IsExternalInput():
		r.HasExternalInput = true
	case m.IsStatementInput():
		r.HasStatement = true
	case m.IsInlineInput():
		r.HasInlineInput = true
	case m.IsJaggedEdge():
		r.HasJaggedEdge = true
	}
	if m.Input != nil && m.Input.Kind() == snap.DummyInput {
		r.HasDummyInput = true
	}
	if m.Align != r.Align && m.IsInput() {
		r.Align = m.Align
	}
}

// measure recomputes the row's aggregate width and height from its
// elements. Height never shrinks below its current value, keeping the
// aggregates monotonic across phases.
func (r *Row) measure() {
	var w, wc float64
	h := r.Height
	for _, m := range r.Elements {
		w += m.Width
		wc += m.Width
		if m.IsExternalInput() || m.IsStatementInput() {
			wc += m.ConnectedWidth
		}
		if !m.IsHat() && m.Height > h {
			h = m.Height
		}
	}
	r.Width = w
	r.WidthWithConnected = wc
	r.Height = h
}

// FirstSpacer returns the row's leading spacer. Spacers are always
// synthesized during the spacing phase, so after that phase the lookup
// cannot fail.
func (r *Row) FirstSpacer() *Measurable {
	return r.Elements[0]
}

// LastSpacer returns the row's trailing spacer.
func (r *Row) LastSpacer() *Measurable {
	return r.Elements[len(r.Elements)-1]
}
