package measure

import (
	"github.com/snapkit/snap"
	"github.com/snapkit/snap/constants"
)

// The input connection models compute an input measurable's size and
// connection placement from the shape of the thing it connects to.
// Each is constructed fresh on every measure pass from the live input
// state; connected-block sizes are the cached results of the child's
// own most recent render.

// newInlineInput models a value input socket carved into the block body.
// The socket wraps the connected block with a one-unit inset, or shows
// an empty socket of fixed size.
func newInlineInput(c *constants.Constants, in *snap.Input) *Measurable {
	m := &Measurable{
		Kind:       KindConnection,
		Conn:       snap.InputValue,
		Style:      InputInline,
		Input:      in,
		Connection: in.Connection(),
		Align:      in.Align(),
	}
	if tb := in.TargetBlock(); tb != nil {
		m.ConnectedWidth = tb.Size().Width
		m.ConnectedHeight = tb.Size().Height
		m.Width = m.ConnectedWidth + c.PuzzleTab.Width + 1
		m.Height = m.ConnectedHeight + 2
	} else {
		m.Width = c.EmptyInlineInputPadding + c.PuzzleTab.Width
		m.Height = c.EmptyInlineInputHeight
	}
	return m
}

// newStatementInput models a statement input: a notchway holding a
// stack of statement blocks, open to the block's right edge.
func newStatementInput(c *constants.Constants, in *snap.Input) *Measurable {
	m := &Measurable{
		Kind:        KindConnection,
		Conn:        snap.NextStatement,
		Style:       InputStatement,
		Input:       in,
		Connection:  in.Connection(),
		Align:       in.Align(),
		NotchOffset: c.NotchOffsetLeft,
	}
	m.Width = c.NotchOffsetLeft + c.Notch.Width
	if tb := in.TargetBlock(); tb != nil {
		m.ConnectedWidth = tb.Size().Width
		m.ConnectedHeight = stackHeight(tb)
		m.Height = m.ConnectedHeight + c.StatementBottomSpacerHeight
	} else {
		m.Height = c.EmptyStatementInputHeight + c.StatementBottomSpacerHeight
	}
	return m
}

// stackHeight sums the rendered heights of a statement stack, following
// next connections from its first block.
func stackHeight(b *snap.Block) float64 {
	var h float64
	for ; b != nil; b = nextBlock(b) {
		h += b.Size().Height
	}
	return h
}

func nextBlock(b *snap.Block) *snap.Block {
	if n := b.Next(); n != nil {
		return n.TargetBlock()
	}
	return nil
}

// newExternalInput models a value input whose socket is a puzzle tab on
// the block's right edge; the connected block hangs outside the body.
func newExternalInput(c *constants.Constants, in *snap.Input) *Measurable {
	m := &Measurable{
		Kind:       KindConnection,
		Conn:       snap.InputValue,
		Style:      InputExternal,
		Input:      in,
		Connection: in.Connection(),
		Align:      in.Align(),
	}
	m.Width = c.PuzzleTab.Width
	if tb := in.TargetBlock(); tb != nil {
		m.ConnectedWidth = tb.Size().Width
		m.ConnectedHeight = tb.Size().Height
		m.Height = m.ConnectedHeight - 2*c.ExternalValueInputPadding
	} else {
		m.Height = c.PuzzleTab.Height
	}
	return m
}
