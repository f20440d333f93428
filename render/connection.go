package render

import (
	"github.com/snapkit/snap"
)

// TrackState is the lifecycle state of a tracked connection with respect
// to the spatial index.
type TrackState int

const (
	// Unplaced means the connection has never been given workspace
	// coordinates and is not indexed.
	Unplaced TrackState = iota
	// Indexed means the connection has coordinates and is in the index.
	Indexed
	// Hidden means the connection has been withdrawn from the index but
	// keeps its coordinates; unhiding restores it.
	Hidden
	// Disposed means the connection has been torn down and may not be
	// moved or indexed again.
	Disposed
)

// Conn is a connection with a live workspace position, tracked by the
// workspace spatial index so nearby counterparts can be found during a
// drag. It wraps the logical model connection rather than extending it;
// all compatibility rules live on the model side.
type Conn struct {
	ws    *Workspace
	model *snap.Connection
	owner *Block

	// pos is the connection point in workspace coordinates; offset is
	// the same point relative to the owning block's top-left corner.
	pos    snap.Point
	offset snap.Point

	placed   bool
	hidden   bool
	disposed bool
}

// Model returns the underlying logical connection.
func (c *Conn) Model() *snap.Connection { return c.model }

// Block returns the rendered block owning this connection.
func (c *Conn) Block() *Block { return c.owner }

// Position returns the connection point in workspace coordinates.
func (c *Conn) Position() snap.Point { return c.pos }

// OffsetInBlock returns the connection point relative to the owning
// block's top-left corner.
func (c *Conn) OffsetInBlock() snap.Point { return c.offset }

// State returns the connection's tracking state.
func (c *Conn) State() TrackState {
	switch {
	case c.disposed:
		return Disposed
	case !c.placed:
		return Unplaced
	case c.hidden:
		return Hidden
	default:
		return Indexed
	}
}

// Hidden reports whether the connection is withdrawn from the index.
func (c *Conn) Hidden() bool { return c.hidden }

func (c *Conn) db() *DB { return c.ws.dbs[c.model.Kind()] }

// inIndex is the membership invariant: a connection is indexed exactly
// when it is placed, visible and alive.
func (c *Conn) inIndex() bool { return c.placed && !c.hidden && !c.disposed }

// MoveTo places the connection at a workspace position. An indexed
// connection is withdrawn before the coordinate change and re-inserted
// after, so the index order stays consistent; a hidden connection only
// updates its coordinates.
func (c *Conn) MoveTo(p snap.Point) {
	if c.disposed {
		return
	}
	if c.inIndex() {
		c.db().remove(c)
	}
	c.pos = p
	c.placed = true
	if c.inIndex() {
		c.db().add(c)
	}
}

// MoveBy shifts the connection by a workspace delta.
func (c *Conn) MoveBy(dx, dy float64) {
	c.MoveTo(snap.Pt(c.pos.X+dx, c.pos.Y+dy))
}

// MoveToOffset places the connection at blockOrigin plus its stored
// in-block offset.
func (c *Conn) MoveToOffset(blockOrigin snap.Point) {
	c.MoveTo(blockOrigin.Add(c.offset))
}

// SetOffsetInBlock records where the connection sits relative to the
// owning block's top-left corner. Coordinates are not re-derived here;
// the caller follows up with MoveToOffset once the block position is
// known.
func (c *Conn) SetOffsetInBlock(off snap.Point) {
	c.offset = off
}

// SetHidden withdraws the connection from the index or restores it.
// Hiding keeps the coordinates, so unhiding an already-placed connection
// re-inserts it where it was.
func (c *Conn) SetHidden(hidden bool) {
	if c.disposed || c.hidden == hidden {
		return
	}
	wasIndexed := c.inIndex()
	c.hidden = hidden
	if wasIndexed && !c.inIndex() {
		c.db().remove(c)
	} else if !wasIndexed && c.inIndex() {
		c.db().add(c)
	}
}

// DistanceFrom returns the straight-line distance to another tracked
// connection.
func (c *Conn) DistanceFrom(other *Conn) float64 {
	return c.pos.Distance(other.pos)
}

// Closest finds the nearest compatible counterpart within maxRadius.
// The offset is added to this connection's position before searching,
// standing in for an uncommitted drag displacement. Returns nil when no
// compatible connection is in range.
func (c *Conn) Closest(maxRadius float64, offset snap.Point) (*Conn, float64) {
	db := c.ws.dbs[c.model.Kind().Opposite()]
	return db.searchForClosest(c, maxRadius, offset)
}

// IsConnectionAllowed reports whether other is a legal snap candidate
// within maxRadius: close enough, compatible by kind and type checks,
// and not part of this connection's own stack.
func (c *Conn) IsConnectionAllowed(other *Conn, maxRadius float64) bool {
	if c.DistanceFrom(other) > maxRadius {
		return false
	}
	return c.allowedWith(other)
}

// allowedWith applies the non-spatial snap rules.
func (c *Conn) allowedWith(other *Conn) bool {
	if other == nil || other.disposed || c.disposed {
		return false
	}
	// A stack cannot connect to itself.
	if c.owner.model.Root() == other.owner.model.Root() {
		return false
	}
	if err := c.model.CheckConnectable(other.model, c.ws.checker); err != nil {
		// The superior side may displace an occupant, and a shadow
		// occupant on either side always yields.
		if err == snap.ErrAlreadyConnected {
			inf := c
			if c.model.IsSuperior() {
				inf = other
			}
			t := inf.model.TargetBlock()
			return t != nil && t.IsShadow()
		}
		return false
	}
	return true
}

// Connect attaches the connection to another tracked connection and
// re-renders the affected side: a statement join re-renders the child
// block (the render cascade reaches the parent from there), a value
// join re-renders the parent so the socket regrows around the child.
func (c *Conn) Connect(other *Conn) error {
	if err := c.model.Connect(other.model, c.ws.checker); err != nil {
		return err
	}
	sup, inf := c, other
	if !c.model.IsSuperior() {
		sup, inf = other, c
	}
	if inf.model.Kind() == snap.PreviousStatement {
		return inf.owner.Render()
	}
	if err := sup.owner.Render(); err != nil {
		return err
	}
	// The child inherits the parent's effective enabled state.
	inf.owner.updateDisabled()
	return nil
}

// Disconnect detaches the connection and re-renders both freed sides.
// If a shadow respawns into the superior slot it is rendered as part of
// the parent's re-render.
func (c *Conn) Disconnect() error {
	target := c.model.Target()
	if target == nil {
		return snap.ErrNotConnected
	}
	sup, inf := c, c.ws.conn(target)
	if !c.model.IsSuperior() {
		sup, inf = inf, c
	}
	if err := c.model.Disconnect(c.ws.checker); err != nil {
		return err
	}
	if err := inf.owner.Render(); err != nil {
		return err
	}
	inf.owner.updateDisabled()
	if err := sup.owner.Render(); err != nil {
		return err
	}
	sup.owner.updateDisabled()
	return nil
}

// OnFailedConnect nudges this connection's stack away from the static
// connection it failed to join, so overlapping blocks do not mask each
// other.
func (c *Conn) OnFailedConnect(static *Conn) {
	c.bumpAwayFrom(static)
}

// bumpAwayFrom moves the rootmost movable block so this connection ends
// up roughly a snap radius below and to the right of static, with a
// small pseudo-random jitter so repeated bumps fan out. Skipped entirely
// during a drag (the drop handler bumps once the drag settles) and for
// flyout stacks.
func (c *Conn) bumpAwayFrom(static *Conn) {
	if c.ws.IsDragging() {
		return
	}
	mover, anchor := c, static
	root := mover.owner.rootView()
	if root.model.InFlyout() {
		return
	}
	if !root.model.Movable() {
		// Swap roles: push the other stack instead.
		mover, anchor = static, c
		root = mover.owner.rootView()
		if root.model.InFlyout() || !root.model.Movable() {
			return
		}
	}
	jx := c.ws.rng.Float64() * c.ws.bumpJitter
	jy := c.ws.rng.Float64() * c.ws.bumpJitter
	dx := (anchor.pos.X + c.ws.snapRadius + jx) - mover.pos.X
	dy := (anchor.pos.Y + c.ws.snapRadius + jy) - mover.pos.Y
	if c.ws.rtl {
		dx = -dx
	}
	root.MoveBy(dx, dy)
}

// HideAll withdraws this connection and every connection in the subtree
// hanging off it from the index, and closes any open icon bubbles in
// that subtree. Used when a block collapses or a stack is dragged.
func (c *Conn) HideAll() {
	c.SetHidden(true)
	tb := c.model.TargetBlock()
	if tb == nil {
		return
	}
	for _, b := range tb.Descendants() {
		for _, mc := range b.Connections() {
			c.ws.conn(mc).SetHidden(true)
		}
		for _, ic := range b.Icons() {
			ic.SetBubbleVisible(false)
		}
	}
}

// UnhideAll restores this connection and its subtree to the index and
// returns the minimal set of blocks that must be re-rendered: the
// deepest revealed block of each branch, whose render cascades back up.
// Connections inside a collapsed block stay hidden.
func (c *Conn) UnhideAll() []*Block {
	c.SetHidden(false)
	var renderList []*Block
	tb := c.model.TargetBlock()
	if tb == nil {
		return renderList
	}
	var conns []*snap.Connection
	if tb.Collapsed() {
		for _, mc := range []*snap.Connection{tb.Output(), tb.Previous(), tb.Next()} {
			if mc != nil {
				conns = append(conns, mc)
			}
		}
	} else {
		conns = tb.Connections()
	}
	for _, mc := range conns {
		cc := c.ws.conn(mc)
		if mc.IsSuperior() && mc.IsConnected() {
			renderList = append(renderList, cc.UnhideAll()...)
		} else {
			cc.SetHidden(false)
		}
	}
	if len(renderList) == 0 {
		renderList = []*Block{c.ws.view(tb)}
	}
	return renderList
}

// Dispose withdraws the connection from the index permanently.
func (c *Conn) Dispose() {
	if c.disposed {
		return
	}
	if c.inIndex() {
		c.db().remove(c)
	}
	c.disposed = true
}
