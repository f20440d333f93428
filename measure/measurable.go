package measure

import (
	"github.com/snapkit/snap"
	"github.com/snapkit/snap/constants"
)

// Kind is the primary tag of a Measurable. A Measurable is exactly one
// of these; connections additionally carry a ConnKind, and input
// connections an InputStyle.
type Kind int

const (
	// KindField is a field's measured footprint.
	KindField Kind = iota
	// KindIcon is an icon badge's footprint.
	KindIcon
	// KindSpacer is synthesized inter-element padding.
	KindSpacer
	// KindConnection is a connection point (see ConnKind/InputStyle).
	KindConnection
	// KindRoundCorner is a rounded block corner.
	KindRoundCorner
	// KindSquareCorner is a square block corner.
	KindSquareCorner
	// KindHat is a start hat ascender.
	KindHat
	// KindJaggedEdge is the collapsed-block tear mark.
	KindJaggedEdge
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindField:
		return "Field"
	case KindIcon:
		return "Icon"
	case KindSpacer:
		return "Spacer"
	case KindConnection:
		return "Connection"
	case KindRoundCorner:
		return "RoundCorner"
	case KindSquareCorner:
		return "SquareCorner"
	case KindHat:
		return "Hat"
	case KindJaggedEdge:
		return "JaggedEdge"
	default:
		return "Unknown"
	}
}

// InputStyle is the secondary tag of an input connection Measurable.
// An input measurable is simultaneously "an input" and one of these;
// the two-level tag replaces a free-form type bitmask.
type InputStyle int

const (
	// InputNone marks a measurable that is not an input connection.
	InputNone InputStyle = iota
	// InputInline is a value input socket carved into the block body.
	InputInline
	// InputStatement is a statement input notchway.
	InputStatement
	// InputExternal is a value input on the block's right edge.
	InputExternal
)

// Measurable is one positioned, sized visual unit within a block's row
// layout. Width and Height are assigned exactly once per measure pass,
// before any downstream phase reads them; X and Y are absolute within
// the block and assigned only during finalize.
//
// The back references (Field, Icon, Input, Conn) are non-owning: they
// point into the live model and are valid only for the lifetime of the
// pass that created the Measurable.
type Measurable struct {
	Kind  Kind
	Conn  snap.ConnKind // valid when Kind == KindConnection
	Style InputStyle    // valid for input connection measurables

	Width, Height float64
	X, Y          float64

	Field      *snap.Field
	Icon       *snap.Icon
	Input      *snap.Input
	Connection *snap.Connection

	// RightSide distinguishes a row's trailing corner from its leading one.
	RightSide bool

	// Editable mirrors the field's editability for the spacing rules.
	Editable bool

	// Align mirrors the owning input's alignment.
	Align snap.Align

	// Snapshot of the connected block's size, zero if unconnected.
	ConnectedWidth, ConnectedHeight float64

	// Connection point relative to the block's own top-left, assigned
	// during finalize.
	ConnectionX, ConnectionY float64

	// NotchOffset is the distance from the block's left edge to a
	// previous/next connection's notch.
	NotchOffset float64
}

// IsField reports whether the measurable is a field.
func (m *Measurable) IsField() bool { return m.Kind == KindField }

// IsIcon reports whether the measurable is an icon.
func (m *Measurable) IsIcon() bool { return m.Kind == KindIcon }

// IsSpacer reports whether the measurable is a spacer.
func (m *Measurable) IsSpacer() bool { return m.Kind == KindSpacer }

// IsConnection reports whether the measurable is any connection point.
func (m *Measurable) IsConnection() bool { return m.Kind == KindConnection }

// IsInput reports whether the measurable is an input connection.
func (m *Measurable) IsInput() bool {
	return m.Kind == KindConnection && m.Style != InputNone
}

// IsInlineInput reports whether the measurable is an inline value input.
func (m *Measurable) IsInlineInput() bool { return m.Style == InputInline }

// IsStatementInput reports whether the measurable is a statement input.
func (m *Measurable) IsStatementInput() bool { return m.Style == InputStatement }

// IsExternalInput reports whether the measurable is an external value input.
func (m *Measurable) IsExternalInput() bool { return m.Style == InputExternal }

// IsPreviousConnection reports whether the measurable is the block's
// previous connection (not a statement input).
func (m *Measurable) IsPreviousConnection() bool {
	return m.Kind == KindConnection && m.Style == InputNone &&
		m.Conn == snap.PreviousStatement
}

// IsNextConnection reports whether the measurable is the block's next
// connection.
func (m *Measurable) IsNextConnection() bool {
	return m.Kind == KindConnection && m.Style == InputNone &&
		m.Conn == snap.NextStatement
}

// IsPreviousOrNextConnection reports whether the measurable is a
// block-level previous or next connection.
func (m *Measurable) IsPreviousOrNextConnection() bool {
	return m.IsPreviousConnection() || m.IsNextConnection()
}

// IsLeftRoundedCorner reports whether the measurable is a leading
// rounded corner.
func (m *Measurable) IsLeftRoundedCorner() bool {
	return m.Kind == KindRoundCorner && !m.RightSide
}

// IsLeftSquareCorner reports whether the measurable is a leading square
// corner.
func (m *Measurable) IsLeftSquareCorner() bool {
	return m.Kind == KindSquareCorner && !m.RightSide
}

// IsHat reports whether the measurable is a start hat.
func (m *Measurable) IsHat() bool { return m.Kind == KindHat }

// IsJaggedEdge reports whether the measurable is a collapsed-block edge.
func (m *Measurable) IsJaggedEdge() bool { return m.Kind == KindJaggedEdge }

func newField(f *snap.Field, in *snap.Input, fm snap.FieldMeasurer) *Measurable {
	size := f.Measure(fm)
	return &Measurable{
		Kind:     KindField,
		Width:    size.Width,
		Height:   size.Height,
		Field:    f,
		Input:    in,
		Editable: f.IsEditable(),
	}
}

func newIcon(ic *snap.Icon) *Measurable {
	return &Measurable{
		Kind:   KindIcon,
		Width:  ic.Size().Width,
		Height: ic.Size().Height,
		Icon:   ic,
	}
}

func newSpacer(width float64) *Measurable {
	return &Measurable{Kind: KindSpacer, Width: width}
}

func newRoundCorner(c *constants.Constants, right bool) *Measurable {
	return &Measurable{
		Kind:      KindRoundCorner,
		Width:     c.CornerRadius,
		Height:    c.CornerRadius,
		RightSide: right,
	}
}

func newSquareCorner(right bool) *Measurable {
	return &Measurable{Kind: KindSquareCorner, RightSide: right}
}

func newHat(c *constants.Constants) *Measurable {
	// A hat rises above the block top; its footprint inside the block
	// bounding box is width only.
	return &Measurable{Kind: KindHat, Width: c.StartHat.Width}
}

func newJaggedEdge(c *constants.Constants) *Measurable {
	return &Measurable{
		Kind:   KindJaggedEdge,
		Width:  c.JaggedTeeth.Width,
		Height: c.JaggedTeeth.Height,
	}
}

func newPreviousConnection(c *constants.Constants, conn *snap.Connection) *Measurable {
	return &Measurable{
		Kind:        KindConnection,
		Conn:        snap.PreviousStatement,
		Width:       c.Notch.Width,
		Height:      c.Notch.Height,
		Connection:  conn,
		NotchOffset: c.NotchOffsetLeft,
	}
}

func newNextConnection(c *constants.Constants, conn *snap.Connection) *Measurable {
	return &Measurable{
		Kind:        KindConnection,
		Conn:        snap.NextStatement,
		Width:       c.Notch.Width,
		Height:      c.Notch.Height,
		Connection:  conn,
		NotchOffset: c.NotchOffsetLeft,
	}
}
