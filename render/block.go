package render

import (
	"fmt"

	"github.com/snapkit/snap"
	"github.com/snapkit/snap/measure"
)

// Block is the rendered view of a model block: its measured geometry
// committed to SVG paths, its field labels, and its tracked connections.
// Views are created by the workspace and keyed by model identity.
type Block struct {
	ws    *Workspace
	model *snap.Block

	group    *Element // <g> carrying the path group and field labels
	path     *PathObject
	labels   []*Element
	rendered bool
}

func newBlockView(ws *Workspace, model *snap.Block) *Block {
	b := &Block{
		ws:    ws,
		model: model,
		group: NewElement("g"),
		path:  NewPathObject(ws.constants),
	}
	b.group.AppendChild(b.path.Group())
	return b
}

// Model returns the underlying model block.
func (b *Block) Model() *snap.Block { return b.model }

// Rendered reports whether the block has been rendered at least once.
func (b *Block) Rendered() bool { return b.rendered }

// Workspace returns the owning workspace.
func (b *Block) Workspace() *Workspace { return b.ws }

// Conn returns the tracked view of one of this block's model
// connections.
func (b *Block) Conn(mc *snap.Connection) *Conn { return b.ws.conn(mc) }

// SVGRoot returns the block's SVG group. Calling it before the first
// render is a contract violation and returns ErrNotRendered: the group
// exists but carries no geometry yet.
func (b *Block) SVGRoot() (*Element, error) {
	if !b.rendered {
		return nil, ErrNotRendered
	}
	return b.group, nil
}

// PathObject returns the block's path object.
func (b *Block) PathObject() *PathObject { return b.path }

// rootView returns the view of the block's rootmost ancestor.
func (b *Block) rootView() *Block { return b.ws.view(b.model.Root()) }

// Render measures and redraws this block, then cascades upward: every
// ancestor is re-measured in turn, since a child's new size changes the
// parent's socket geometry. After the cascade the whole stack's
// positions and tracked connections are refreshed from the root down.
func (b *Block) Render() error {
	if b.model.Disposed() {
		return snap.ErrDisposed
	}
	if err := b.renderDown(); err != nil {
		return err
	}
	for p := b.model.Parent(); p != nil; p = p.Parent() {
		if err := b.ws.view(p).renderHere(); err != nil {
			return err
		}
	}
	root := b.rootView()
	root.repositionSubtree()
	return nil
}

// renderDown renders unrendered children first (a parent's measurement
// reads child sizes), then this block.
func (b *Block) renderDown() error {
	for _, child := range b.model.Children() {
		cv := b.ws.view(child)
		if !cv.rendered {
			if err := cv.renderDown(); err != nil {
				return err
			}
		}
	}
	return b.renderHere()
}

// renderHere measures this block alone and commits the result: size,
// paths, labels, and connection offsets.
func (b *Block) renderHere() error {
	info := measure.New(b.model, b.ws.constants, b.ws.measurer, b.ws.rtl)
	info.Measure()
	b.model.SetSize(snap.Sz(info.Width, info.Height))

	main, highlight := draw(info)
	b.path.SetPaths(main, highlight)
	if b.ws.rtl != b.path.IsFlipped() {
		b.path.FlipRTL()
	}

	b.syncLabels(info)
	b.recordOffsets(info)
	b.rendered = true
	b.updateDisabled()
	return nil
}

// syncLabels rebuilds the block's <text> elements from the measured
// field positions.
func (b *Block) syncLabels(info *measure.RenderInfo) {
	for _, l := range b.labels {
		b.group.RemoveChild(l)
	}
	b.labels = b.labels[:0]
	for _, row := range info.Rows {
		for _, elem := range row.Elements {
			if !elem.IsField() {
				continue
			}
			t := NewElement("text")
			t.SetAttr("class", "blockText")
			t.SetAttr("x", fmt.Sprintf("%g", elem.X))
			t.SetAttr("y", fmt.Sprintf("%g", elem.Y+elem.Height/2))
			t.SetAttr("dominant-baseline", "central")
			t.SetText(elem.Field.Text())
			b.group.AppendChild(t)
			b.labels = append(b.labels, t)
		}
	}
}

// recordOffsets stores each connection's measured in-block offset on its
// tracked view. Workspace coordinates are refreshed separately, once the
// block's own position is settled.
func (b *Block) recordOffsets(info *measure.RenderInfo) {
	record := func(elem *measure.Measurable) {
		if elem.Connection == nil {
			return
		}
		c := b.ws.conn(elem.Connection)
		c.SetOffsetInBlock(snap.Pt(elem.ConnectionX, elem.ConnectionY))
	}
	for _, row := range info.Rows {
		for _, elem := range row.Elements {
			if elem.IsConnection() {
				record(elem)
			}
		}
	}
	if info.Output != nil {
		record(info.Output)
	}
}

// repositionSubtree pushes this block's position into its SVG transform
// and tracked connections, derives each child's position from the
// joining connection pair, and recurses. Run on a root after a render
// cascade or a block move.
func (b *Block) repositionSubtree() {
	origin := b.model.Position()
	b.group.SetAttr("transform", fmt.Sprintf("translate(%g,%g)", origin.X, origin.Y))
	for _, mc := range b.model.Connections() {
		c := b.ws.conn(mc)
		c.MoveToOffset(origin)
		if !mc.IsSuperior() {
			continue
		}
		tb := mc.TargetBlock()
		if tb == nil {
			continue
		}
		childInf := b.ws.conn(mc.Target())
		tb.MoveTo(origin.Add(c.offset).Sub(childInf.offset))
		b.ws.view(tb).repositionSubtree()
	}
}

// MoveTo moves the block (and its attached subtree) to a workspace
// position.
func (b *Block) MoveTo(p snap.Point) {
	b.model.MoveTo(p)
	b.repositionSubtree()
}

// MoveBy shifts the block (and its attached subtree) by a workspace
// delta.
func (b *Block) MoveBy(dx, dy float64) {
	pos := b.model.Position()
	b.MoveTo(snap.Pt(pos.X+dx, pos.Y+dy))
}

// SetCollapsed collapses or expands the block. Collapsing hides every
// connection inside the block (the subtrees hanging off its inputs stay
// attached but leave the index); expanding restores them and re-renders
// the deepest revealed blocks.
func (b *Block) SetCollapsed(collapsed bool) error {
	if b.model.Collapsed() == collapsed {
		return nil
	}
	b.model.SetCollapsed(collapsed)
	if collapsed {
		for _, in := range b.model.Inputs() {
			if in.Connection() == nil {
				continue
			}
			b.ws.conn(in.Connection()).HideAll()
		}
		return b.Render()
	}
	var renderList []*Block
	for _, in := range b.model.Inputs() {
		if in.Connection() == nil {
			continue
		}
		renderList = append(renderList, b.ws.conn(in.Connection()).UnhideAll()...)
	}
	for _, rv := range renderList {
		if err := rv.Render(); err != nil {
			return err
		}
	}
	return b.Render()
}

// updateDisabled refreshes the disabled styling from the block's
// effective enabled state: a block renders disabled when it or any
// ancestor is disabled.
func (b *Block) updateDisabled() {
	enabled := true
	for m := b.model; m != nil; m = m.Parent() {
		if !m.Enabled() {
			enabled = false
			break
		}
	}
	b.path.SetDisabled(!enabled)
}

// Dispose tears down the view and its model block. The model heals its
// previous/next chain around the removed block and orphans any children
// it cannot re-attach; those survivors keep their views and stay in the
// index. Only this block's own connections leave it.
func (b *Block) Dispose() {
	if b.model.Disposed() {
		return
	}
	b.model.Dispose()
	for _, mc := range b.model.Connections() {
		b.ws.conn(mc).Dispose()
	}
	b.ws.forget(b.model)
}
