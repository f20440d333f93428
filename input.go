package snap

// InputKind distinguishes the three input flavors a block row can host.
type InputKind int

const (
	// DummyInput holds fields only and accepts no connection.
	DummyInput InputKind = iota
	// ValueInput accepts the output connection of an expression block.
	ValueInput
	// StatementInput accepts the previous connection of a statement stack.
	StatementInput
)

// String returns the string representation of the input kind.
func (k InputKind) String() string {
	switch k {
	case DummyInput:
		return "Dummy"
	case ValueInput:
		return "Value"
	case StatementInput:
		return "Statement"
	default:
		return "Unknown"
	}
}

// Align specifies how a row's content is placed when the row is narrower
// than the widest row of its block.
type Align int

const (
	// AlignLeft packs content to the leading edge (default).
	AlignLeft Align = iota
	// AlignCenter centers content within the block width.
	AlignCenter
	// AlignRight packs content to the trailing edge.
	AlignRight
)

// Input is one input slot on a block: an ordered run of fields,
// optionally followed by a connection point. Value and statement inputs
// carry a connection; dummy inputs do not.
type Input struct {
	kind   InputKind
	name   string
	align  Align
	fields []*Field
	conn   *Connection
	block  *Block
}

// Kind returns the input's flavor.
func (in *Input) Kind() InputKind { return in.kind }

// Name returns the input's name, unique within its block.
func (in *Input) Name() string { return in.name }

// Align returns the input row's alignment.
func (in *Input) Align() Align { return in.align }

// SetAlign sets the row alignment and returns the input for chaining.
func (in *Input) SetAlign(a Align) *Input {
	in.align = a
	return in
}

// AppendField adds a field to the end of the input's field run and
// returns the input for chaining.
func (in *Input) AppendField(f *Field) *Input {
	in.fields = append(in.fields, f)
	return in
}

// Fields returns the input's fields in visual order.
func (in *Input) Fields() []*Field { return in.fields }

// Connection returns the input's connection, or nil for a dummy input.
func (in *Input) Connection() *Connection { return in.conn }

// Block returns the owning block.
func (in *Input) Block() *Block { return in.block }

// SetCheck restricts the types accepted by the input's connection and
// returns the input for chaining. A nil check list accepts anything.
// SetCheck on a dummy input is a no-op.
func (in *Input) SetCheck(checks ...string) *Input {
	if in.conn != nil {
		in.conn.SetChecks(checks)
	}
	return in
}

// TargetBlock returns the block connected to this input, or nil.
func (in *Input) TargetBlock() *Block {
	if in.conn == nil {
		return nil
	}
	return in.conn.TargetBlock()
}
