package snap

import "github.com/google/uuid"

// Block is one unit of a block program: an ordered list of inputs plus
// up to three block-level connections (previous, next, output). A block
// has either an output connection or previous/next connections, never
// both; the model does not enforce the exclusivity, the standard block
// definitions simply never request both.
type Block struct {
	id   string
	typ  string
	pos  Point
	size Size // cached by the last render pass

	inputs []*Input
	icons  []*Icon

	prev   *Connection
	next   *Connection
	output *Connection

	inputsInline bool
	collapsed    bool
	movable      bool
	enabled      bool
	inFlyout     bool
	shadow       bool
	hat          bool
	disposed     bool
}

// NewBlock creates a detached block of the given type with a fresh ID.
func NewBlock(typ string) *Block {
	return &Block{
		id:      uuid.NewString(),
		typ:     typ,
		movable: true,
		enabled: true,
	}
}

// ID returns the block's unique identifier.
func (b *Block) ID() string { return b.id }

// Type returns the block's type name.
func (b *Block) Type() string { return b.typ }

// Position returns the block's top-left corner in workspace coordinates.
// For a child block this is maintained by the render pass.
func (b *Block) Position() Point { return b.pos }

// MoveTo places the block's top-left corner at p.
func (b *Block) MoveTo(p Point) { b.pos = p }

// MoveBy translates the block by (dx, dy).
func (b *Block) MoveBy(dx, dy float64) {
	b.pos.X += dx
	b.pos.Y += dy
}

// Size returns the block's size as of the last render pass, zero before
// the first render.
func (b *Block) Size() Size { return b.size }

// SetSize records the block's rendered size. Called by the render pass.
func (b *Block) SetSize(s Size) { b.size = s }

// Disposed reports whether Dispose has been called.
func (b *Block) Disposed() bool { return b.disposed }

// appendInput is the common tail of the AppendXxxInput methods.
func (b *Block) appendInput(in *Input) *Input {
	in.block = b
	b.inputs = append(b.inputs, in)
	return in
}

// AppendDummyInput adds a field-only input row.
func (b *Block) AppendDummyInput() *Input {
	return b.appendInput(&Input{kind: DummyInput})
}

// AppendValueInput adds an input accepting an expression block.
func (b *Block) AppendValueInput(name string) *Input {
	in := &Input{kind: ValueInput, name: name}
	in.conn = &Connection{kind: InputValue, block: b, input: in}
	return b.appendInput(in)
}

// AppendStatementInput adds an input accepting a statement stack.
func (b *Block) AppendStatementInput(name string) *Input {
	in := &Input{kind: StatementInput, name: name}
	in.conn = &Connection{kind: NextStatement, block: b, input: in}
	return b.appendInput(in)
}

// Inputs returns the block's inputs in declaration order.
func (b *Block) Inputs() []*Input { return b.inputs }

// InputByName returns the named input, or nil.
func (b *Block) InputByName(name string) *Input {
	for _, in := range b.inputs {
		if in.name == name {
			return in
		}
	}
	return nil
}

// AddIcon attaches an icon badge to the block.
func (b *Block) AddIcon(ic *Icon) { b.icons = append(b.icons, ic) }

// Icons returns the block's icons.
func (b *Block) Icons() []*Icon { return b.icons }

// SetPreviousStatement gives the block a previous connection with the
// given type checks (none accepts anything).
func (b *Block) SetPreviousStatement(checks ...string) *Block {
	b.prev = &Connection{kind: PreviousStatement, block: b}
	b.prev.SetChecks(checks)
	return b
}

// SetNextStatement gives the block a next connection with the given
// type checks.
func (b *Block) SetNextStatement(checks ...string) *Block {
	b.next = &Connection{kind: NextStatement, block: b}
	b.next.SetChecks(checks)
	return b
}

// SetOutput gives the block an output connection with the given type
// checks.
func (b *Block) SetOutput(checks ...string) *Block {
	b.output = &Connection{kind: OutputValue, block: b}
	b.output.SetChecks(checks)
	return b
}

// Previous returns the block's previous connection, or nil.
func (b *Block) Previous() *Connection { return b.prev }

// Next returns the block's next connection, or nil.
func (b *Block) Next() *Connection { return b.next }

// Output returns the block's output connection, or nil.
func (b *Block) Output() *Connection { return b.output }

// connectionOfKind returns the block-level connection of the given kind.
func (b *Block) connectionOfKind(k ConnKind) *Connection {
	switch k {
	case PreviousStatement:
		return b.prev
	case NextStatement:
		return b.next
	case OutputValue:
		return b.output
	default:
		return nil
	}
}

// Connections returns every connection owned by the block: the
// block-level trio plus each value/statement input's connection.
func (b *Block) Connections() []*Connection {
	var out []*Connection
	for _, c := range []*Connection{b.prev, b.next, b.output} {
		if c != nil {
			out = append(out, c)
		}
	}
	for _, in := range b.inputs {
		if in.conn != nil {
			out = append(out, in.conn)
		}
	}
	return out
}

// ParentConnection returns the inferior connection attaching this block
// to its parent, or nil for a top-level block.
func (b *Block) ParentConnection() *Connection {
	if b.output != nil && b.output.IsConnected() {
		return b.output
	}
	if b.prev != nil && b.prev.IsConnected() {
		return b.prev
	}
	return nil
}

// Parent returns the block this block is attached to, or nil.
func (b *Block) Parent() *Block {
	if pc := b.ParentConnection(); pc != nil {
		return pc.TargetBlock()
	}
	return nil
}

// Root returns the top of the block's parent chain.
func (b *Block) Root() *Block {
	root := b
	for p := root.Parent(); p != nil; p = root.Parent() {
		root = p
	}
	return root
}

// Children returns the blocks directly attached below or inside this
// block, in connection order.
func (b *Block) Children() []*Block {
	var out []*Block
	for _, c := range b.Connections() {
		if c.IsSuperior() {
			if t := c.TargetBlock(); t != nil {
				out = append(out, t)
			}
		}
	}
	return out
}

// Descendants returns the block and every block attached beneath it,
// depth first.
func (b *Block) Descendants() []*Block {
	out := []*Block{b}
	for _, child := range b.Children() {
		out = append(out, child.Descendants()...)
	}
	return out
}

// SetInputsInline controls whether value inputs share rows.
func (b *Block) SetInputsInline(inline bool) { b.inputsInline = inline }

// InputsInline reports whether value inputs share rows.
func (b *Block) InputsInline() bool { return b.inputsInline }

// SetCollapsed folds or unfolds the block. A collapsed block renders as
// a single jagged-edge row and hides its descendants' connections.
func (b *Block) SetCollapsed(collapsed bool) { b.collapsed = collapsed }

// Collapsed reports whether the block is folded.
func (b *Block) Collapsed() bool { return b.collapsed }

// SetMovable controls whether the block may be repositioned (including
// by bump-away displacement).
func (b *Block) SetMovable(movable bool) { b.movable = movable }

// Movable reports whether the block may be repositioned.
func (b *Block) Movable() bool { return b.movable }

// SetEnabled toggles the block's enabled state.
func (b *Block) SetEnabled(enabled bool) { b.enabled = enabled }

// Enabled reports whether the block is enabled. A block attached to a
// disabled ancestor renders as disabled regardless of its own flag.
func (b *Block) Enabled() bool { return b.enabled }

// SetInFlyout marks the block as living in a palette/flyout view.
// Flyout blocks are never bumped.
func (b *Block) SetInFlyout(inFlyout bool) { b.inFlyout = inFlyout }

// InFlyout reports whether the block lives in a palette/flyout view.
func (b *Block) InFlyout() bool { return b.inFlyout }

// SetShadow marks the block as a shadow placeholder.
func (b *Block) SetShadow(shadow bool) { b.shadow = shadow }

// IsShadow reports whether the block is a shadow placeholder.
func (b *Block) IsShadow() bool { return b.shadow }

// SetHat gives the block a start hat (event/definition blocks).
func (b *Block) SetHat(hat bool) { b.hat = hat }

// Hat reports whether the block has a start hat.
func (b *Block) Hat() bool { return b.hat }

// Dispose detaches the block from its surroundings and marks it dead.
// The previous/next chain heals where possible: if the block sits
// between a parent and a next block whose connections are compatible,
// the two are joined directly. Children that cannot be re-attached are
// left orphaned at their current positions.
func (b *Block) Dispose() {
	if b.disposed {
		return
	}
	parent := b.ParentConnection()
	var parentTarget *Connection
	if parent != nil {
		parentTarget = parent.Target()
		_ = parent.Disconnect(nil)
	}
	// Heal previous/next chains around statement blocks.
	if b.prev != nil && parentTarget != nil && parentTarget.kind == NextStatement &&
		b.next != nil && b.next.IsConnected() {
		follower := b.next.Target()
		_ = b.next.Disconnect(nil)
		if parentTarget.CheckConnectable(follower, nil) == nil {
			_ = parentTarget.Connect(follower, nil)
		}
	}
	for _, c := range b.Connections() {
		// A dying block must not respawn shadows into itself.
		c.shadow = nil
		if c.IsConnected() {
			_ = c.Disconnect(nil)
		}
	}
	b.disposed = true
}
