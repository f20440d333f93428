package render

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/snapkit/snap"
	"github.com/snapkit/snap/constants"
	"github.com/snapkit/snap/text"
)

// ErrNotRendered is returned when a caller asks for rendered output of a
// block that has never been rendered.
var ErrNotRendered = errors.New("render: block has not been rendered")

const (
	defaultSnapRadius = 28
	defaultBumpJitter = 10
)

// Workspace owns the rendered views of a set of blocks: one view and
// one tracked connection per model object, plus the per-kind spatial
// indexes used for snapping. A workspace and everything it owns is
// confined to a single goroutine.
type Workspace struct {
	constants *constants.Constants
	checker   snap.Checker
	measurer  snap.FieldMeasurer
	rtl       bool

	snapRadius float64
	bumpJitter float64
	rng        *rand.Rand

	views map[*snap.Block]*Block
	conns map[*snap.Connection]*Conn
	dbs   map[snap.ConnKind]*DB

	// blocks in creation order, so serialization output is stable
	order []*snap.Block

	dragging bool
}

// Option configures a workspace.
type Option func(*Workspace)

// WithRTL renders blocks right-to-left: outlines are mirrored and bump
// displacement flips horizontally.
func WithRTL(rtl bool) Option {
	return func(ws *Workspace) { ws.rtl = rtl }
}

// WithChecker installs the compatibility checker consulted for every
// connect attempt and snap query.
func WithChecker(ch snap.Checker) Option {
	return func(ws *Workspace) { ws.checker = ch }
}

// WithConstants overrides the rendering constant set.
func WithConstants(c *constants.Constants) Option {
	return func(ws *Workspace) { ws.constants = c }
}

// WithMeasurer installs the field measurer used by the measure pass.
func WithMeasurer(fm snap.FieldMeasurer) Option {
	return func(ws *Workspace) { ws.measurer = fm }
}

// WithRandSeed seeds the workspace's bump jitter source, making failed
// connect displacement deterministic.
func WithRandSeed(seed int64) Option {
	return func(ws *Workspace) { ws.rng = rand.New(rand.NewSource(seed)) }
}

// WithSnapRadius overrides the default snap search radius.
func WithSnapRadius(r float64) Option {
	return func(ws *Workspace) { ws.snapRadius = r }
}

// NewWorkspace creates an empty workspace. Defaults: the standard
// constant set, the default connection checker, the heuristic field
// measurer, left-to-right layout.
func NewWorkspace(opts ...Option) *Workspace {
	ws := &Workspace{
		constants:  constants.Default(),
		checker:    snap.DefaultChecker,
		measurer:   text.Heuristic{},
		snapRadius: defaultSnapRadius,
		bumpJitter: defaultBumpJitter,
		rng:        rand.New(rand.NewSource(1)),
		views:      make(map[*snap.Block]*Block),
		conns:      make(map[*snap.Connection]*Conn),
		dbs:        newDBList(),
	}
	for _, opt := range opts {
		opt(ws)
	}
	return ws
}

// RTL reports whether the workspace lays blocks out right-to-left.
func (ws *Workspace) RTL() bool { return ws.rtl }

// SnapRadius returns the workspace's snap search radius.
func (ws *Workspace) SnapRadius() float64 { return ws.snapRadius }

// Checker returns the workspace's connection checker.
func (ws *Workspace) Checker() snap.Checker { return ws.checker }

// SetDragging marks a drag as in progress. While dragging, failed
// connects do not bump; the drop handler resolves overlap once.
func (ws *Workspace) SetDragging(dragging bool) { ws.dragging = dragging }

// IsDragging reports whether a drag is in progress.
func (ws *Workspace) IsDragging() bool { return ws.dragging }

// DB returns the spatial index for a connection kind.
func (ws *Workspace) DB(kind snap.ConnKind) *DB { return ws.dbs[kind] }

// NewBlock creates a model block of the given type and its view.
func (ws *Workspace) NewBlock(typ string) *Block {
	return ws.Adopt(snap.NewBlock(typ))
}

// Adopt registers an externally built model block (and, lazily, its
// descendants) with the workspace, returning its view.
func (ws *Workspace) Adopt(model *snap.Block) *Block {
	return ws.view(model)
}

// Conn returns the tracked view of a model connection, creating it on
// first use.
func (ws *Workspace) Conn(mc *snap.Connection) *Conn { return ws.conn(mc) }

// view returns the view for a model block, creating and registering it
// on first use. Shadow blocks spawned inside the model acquire views
// the same way.
func (ws *Workspace) view(model *snap.Block) *Block {
	if v, ok := ws.views[model]; ok {
		return v
	}
	v := newBlockView(ws, model)
	ws.views[model] = v
	ws.order = append(ws.order, model)
	return v
}

// conn returns the tracked connection for a model connection, creating
// it on first use.
func (ws *Workspace) conn(mc *snap.Connection) *Conn {
	if c, ok := ws.conns[mc]; ok {
		return c
	}
	c := &Conn{
		ws:    ws,
		model: mc,
		owner: ws.view(mc.Block()),
	}
	ws.conns[mc] = c
	return c
}

// forget drops a disposed block's view from the registry.
func (ws *Workspace) forget(model *snap.Block) {
	delete(ws.views, model)
	for i, r := range ws.order {
		if r == model {
			ws.order = append(ws.order[:i], ws.order[i+1:]...)
			break
		}
	}
}

// Render renders every top-level stack in the workspace.
func (ws *Workspace) Render() error {
	for _, model := range ws.order {
		if model.Parent() != nil || model.Disposed() {
			continue
		}
		if err := ws.view(model).Render(); err != nil {
			return err
		}
	}
	return nil
}

// SVG serializes the workspace to a standalone SVG document: one group
// per top-level stack, sized to the union of stack bounds plus a
// margin. Unrendered stacks are rendered first.
func (ws *Workspace) SVG() (string, error) {
	if err := ws.Render(); err != nil {
		return "", err
	}
	const margin = 10.0
	var bounds snap.Rect
	first := true
	svg := NewElement("svg")
	svg.SetAttr("xmlns", "http://www.w3.org/2000/svg")
	for _, model := range ws.order {
		if model.Parent() != nil || model.Disposed() {
			continue
		}
		// Pre-order: parents serialize before their children, so child
		// outlines draw on top of the parent's socket carve.
		for _, d := range model.Descendants() {
			pos := d.Position()
			size := d.Size()
			r := snap.Rect{X: pos.X, Y: pos.Y, Width: size.Width, Height: size.Height}
			if first {
				bounds = r
				first = false
			} else {
				bounds = bounds.Union(r)
			}
			group, err := ws.view(d).SVGRoot()
			if err != nil {
				return "", err
			}
			svg.AppendChild(group)
		}
	}
	if first {
		bounds = snap.Rect{}
	}
	svg.SetAttr("viewBox", fmt.Sprintf("%g %g %g %g",
		bounds.X-margin, bounds.Y-margin,
		bounds.Width+2*margin, bounds.Height+2*margin))
	svg.SetAttr("width", fmt.Sprintf("%g", bounds.Width+2*margin))
	svg.SetAttr("height", fmt.Sprintf("%g", bounds.Height+2*margin))
	return svg.String(), nil
}

// Dispose tears down every block and empties the indexes. The workspace
// may be reused afterwards.
func (ws *Workspace) Dispose() {
	for _, c := range ws.conns {
		c.Dispose()
	}
	for model := range ws.views {
		if !model.Disposed() {
			model.Dispose()
		}
	}
	ws.views = make(map[*snap.Block]*Block)
	ws.conns = make(map[*snap.Connection]*Conn)
	ws.dbs = newDBList()
	ws.order = nil
}
