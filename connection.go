package snap

// ConnKind is the type of a connection: which direction it faces and
// what it may attach to.
type ConnKind int

const (
	// InputValue is the socket on a value input, facing left.
	InputValue ConnKind = iota
	// OutputValue is the plug on an expression block, facing left.
	OutputValue
	// NextStatement is the notch under a block or inside a statement input.
	NextStatement
	// PreviousStatement is the tab on top of a statement block.
	PreviousStatement
)

// String returns the string representation of the connection kind.
func (k ConnKind) String() string {
	switch k {
	case InputValue:
		return "InputValue"
	case OutputValue:
		return "OutputValue"
	case NextStatement:
		return "NextStatement"
	case PreviousStatement:
		return "PreviousStatement"
	default:
		return "Unknown"
	}
}

// Opposite returns the kind this kind connects to.
func (k ConnKind) Opposite() ConnKind {
	switch k {
	case InputValue:
		return OutputValue
	case OutputValue:
		return InputValue
	case NextStatement:
		return PreviousStatement
	default:
		return NextStatement
	}
}

// IsSuperior reports whether a connection of this kind belongs to the
// parent in a parent/child pair. Input and next connections are superior;
// output and previous connections are inferior.
func (k ConnKind) IsSuperior() bool {
	return k == InputValue || k == NextStatement
}

// Connection is a typed attachment point joining two blocks. It carries
// no rendered position; package render tracks live coordinates and the
// spatial index separately.
type Connection struct {
	kind   ConnKind
	block  *Block
	input  *Input // owning input, nil for block-level connections
	target *Connection
	checks []string // accepted type names; nil accepts anything

	// shadow is re-attached whenever the connection loses its real
	// target. A shadow block must itself be marked as a shadow.
	shadow *Block
}

// Kind returns the connection's kind.
func (c *Connection) Kind() ConnKind { return c.kind }

// Block returns the block owning this connection.
func (c *Connection) Block() *Block { return c.block }

// Input returns the input owning this connection, or nil for block-level
// previous/next/output connections.
func (c *Connection) Input() *Input { return c.input }

// Target returns the connection this one is attached to, or nil.
func (c *Connection) Target() *Connection { return c.target }

// TargetBlock returns the block attached to this connection, or nil.
func (c *Connection) TargetBlock() *Block {
	if c.target == nil {
		return nil
	}
	return c.target.block
}

// IsConnected reports whether the connection has a target.
func (c *Connection) IsConnected() bool { return c.target != nil }

// IsSuperior reports whether this connection belongs to the parent in a
// parent/child pair.
func (c *Connection) IsSuperior() bool { return c.kind.IsSuperior() }

// Checks returns the connection's accepted type names. Nil accepts
// anything.
func (c *Connection) Checks() []string { return c.checks }

// SetChecks restricts the connection to targets sharing at least one of
// the given type names. An empty list accepts anything.
func (c *Connection) SetChecks(checks []string) {
	if len(checks) == 0 {
		c.checks = nil
		return
	}
	c.checks = checks
}

// SetShadow installs a shadow block that occupies this connection
// whenever no real block is attached. The block must be marked as a
// shadow. If the connection is currently empty the shadow attaches
// immediately.
func (c *Connection) SetShadow(b *Block, ch Checker) error {
	c.shadow = b
	if b != nil && c.target == nil {
		return c.respawnShadow(ch)
	}
	return nil
}

// Shadow returns the connection's shadow block template, if any.
func (c *Connection) Shadow() *Block { return c.shadow }

// CheckConnectable reports, via error, why this connection cannot attach
// to other. A nil return means the pair is connectable.
func (c *Connection) CheckConnectable(other *Connection, ch Checker) error {
	if ch == nil {
		ch = DefaultChecker
	}
	switch {
	case other == nil:
		return ErrWrongKind
	case c.block == other.block:
		return ErrSelfConnection
	case other.kind != c.kind.Opposite():
		return ErrWrongKind
	case !ch.CanConnect(c, other):
		return ErrIncompatible
	}
	// The inferior side carries its block's identity: a block already
	// attached to a parent must be disconnected before re-attachment.
	inf := c
	if c.IsSuperior() {
		inf = other
	}
	if inf.target != nil {
		return ErrAlreadyConnected
	}
	return nil
}

// Connect attaches this connection to other. The superior side may
// displace an existing child: the previous child block is left orphaned
// (and its position unchanged). A shadow block occupying the superior
// side is disposed rather than orphaned.
//
// Connect performs logical attachment only; rendered-position updates
// and re-render requests are layered on by package render.
func (c *Connection) Connect(other *Connection, ch Checker) error {
	if err := c.CheckConnectable(other, ch); err != nil {
		return err
	}
	sup, inf := c, other
	if !c.IsSuperior() {
		sup, inf = other, c
	}
	if old := sup.target; old != nil {
		oldBlock := old.block
		sup.target = nil
		old.target = nil
		if oldBlock.IsShadow() {
			oldBlock.Dispose()
		}
	}
	sup.target = inf
	inf.target = sup
	return nil
}

// Disconnect detaches the connection from its target. If the superior
// side carries a shadow, the shadow respawns into the freed slot.
func (c *Connection) Disconnect(ch Checker) error {
	if c.target == nil {
		return ErrNotConnected
	}
	sup := c
	if !c.IsSuperior() {
		sup = c.target
	}
	sup.target.target = nil
	sup.target = nil
	if sup.shadow != nil {
		return sup.respawnShadow(ch)
	}
	return nil
}

// respawnShadow re-attaches the shadow block to the freed connection.
// A shadow that cannot re-attach is a contract violation: the shadow was
// validated when installed, so a later failure means the model was
// mutated out from under it.
func (c *Connection) respawnShadow(ch Checker) error {
	shadow := c.shadow
	if shadow == nil || !shadow.IsShadow() {
		return ErrShadowRespawn
	}
	counter := shadow.connectionOfKind(c.kind.Opposite())
	if counter == nil {
		return ErrShadowRespawn
	}
	if err := c.Connect(counter, ch); err != nil {
		return ErrShadowRespawn
	}
	return nil
}
