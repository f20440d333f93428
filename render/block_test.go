package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/snapkit/snap"
)

func TestBlock_SVGRootBeforeRender(t *testing.T) {
	ws := newTestWorkspace()
	b := ws.NewBlock("test")

	if _, err := b.SVGRoot(); !errors.Is(err, ErrNotRendered) {
		t.Errorf("SVGRoot before render = %v, want ErrNotRendered", err)
	}
	if err := b.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if _, err := b.SVGRoot(); err != nil {
		t.Errorf("SVGRoot after render = %v, want nil", err)
	}
}

func TestBlock_RenderCommitsGeometry(t *testing.T) {
	ws := newTestWorkspace()
	b := ws.NewBlock("test")
	b.Model().AppendDummyInput().AppendField(snap.NewLabelField("hi"))
	b.MoveTo(snap.Pt(30, 40))

	if err := b.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}

	size := b.Model().Size()
	if size.Width != 40 || size.Height != 42 {
		t.Errorf("block size = %v, want 40x42", size)
	}
	root, err := b.SVGRoot()
	if err != nil {
		t.Fatalf("SVGRoot: %v", err)
	}
	if got := root.Attr("transform"); got != "translate(30,40)" {
		t.Errorf("group transform = %q, want translate(30,40)", got)
	}
	if b.PathObject().Group().Children()[1].Attr("d") == "" {
		t.Error("main surface has no path data")
	}
}

func TestBlock_RenderEmitsFieldLabels(t *testing.T) {
	ws := newTestWorkspace()
	b := ws.NewBlock("test")
	b.Model().AppendDummyInput().
		AppendField(snap.NewLabelField("set")).
		AppendField(snap.NewTextField("x"))

	if err := b.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}
	root, _ := b.SVGRoot()
	doc := root.String()
	if !strings.Contains(doc, ">set</text>") || !strings.Contains(doc, ">x</text>") {
		t.Errorf("serialized block missing field labels:\n%s", doc)
	}
}

func TestBlock_ReRenderReplacesLabels(t *testing.T) {
	ws := newTestWorkspace()
	b := ws.NewBlock("test")
	f := snap.NewLabelField("before")
	b.Model().AppendDummyInput().AppendField(f)

	if err := b.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}
	f.SetText("after")
	if err := b.Render(); err != nil {
		t.Fatalf("re-render: %v", err)
	}

	root, _ := b.SVGRoot()
	doc := root.String()
	if strings.Contains(doc, "before") {
		t.Errorf("stale label retained:\n%s", doc)
	}
	if !strings.Contains(doc, ">after</text>") {
		t.Errorf("new label missing:\n%s", doc)
	}
}

func TestBlock_RTLFlipsPaths(t *testing.T) {
	ws := newTestWorkspace(WithRTL(true))
	b := ws.NewBlock("test")
	b.Model().AppendDummyInput().AppendField(snap.NewLabelField("hi"))

	if err := b.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !b.PathObject().IsFlipped() {
		t.Error("path object not flipped on an RTL workspace")
	}
}

func TestBlock_ChildResizePropagatesToParent(t *testing.T) {
	ws := newTestWorkspace()

	parent := ws.NewBlock("parent")
	in := parent.Model().AppendValueInput("VALUE")
	parent.Model().SetInputsInline(true)

	child := ws.NewBlock("child")
	child.Model().SetOutput()
	f := snap.NewLabelField("ab")
	child.Model().AppendDummyInput().AppendField(f)

	if err := ws.Conn(in.Connection()).Connect(ws.Conn(child.Model().Output())); err != nil {
		t.Fatalf("connect: %v", err)
	}
	before := parent.Model().Size().Width

	f.SetText("abcdefghij")
	if err := child.Render(); err != nil {
		t.Fatalf("re-render child: %v", err)
	}
	after := parent.Model().Size().Width
	if after <= before {
		t.Errorf("parent width %v -> %v, want growth after child grew", before, after)
	}
}

func TestBlock_MoveToCarriesSubtree(t *testing.T) {
	ws := newTestWorkspace()

	parent := ws.NewBlock("parent")
	parent.Model().SetNextStatement()
	child := ws.NewBlock("child")
	child.Model().SetPreviousStatement()

	if err := ws.Conn(parent.Model().Next()).Connect(ws.Conn(child.Model().Previous())); err != nil {
		t.Fatalf("connect: %v", err)
	}
	childBefore := child.Model().Position()

	parent.MoveBy(15, 25)

	childAfter := child.Model().Position()
	want := snap.Pt(childBefore.X+15, childBefore.Y+25)
	if !childAfter.Approx(want, 1e-9) {
		t.Errorf("child position = %v, want %v", childAfter, want)
	}
	// The child's tracked connection follows.
	prev := ws.Conn(child.Model().Previous())
	if prev.Position() != ws.Conn(parent.Model().Next()).Position() {
		t.Error("joined connections diverged after move")
	}
}

func TestBlock_CollapseHidesInputConnections(t *testing.T) {
	ws := newTestWorkspace()

	parent := ws.NewBlock("parent")
	parent.Model().AppendStatementInput("DO")
	do := ws.Conn(parent.Model().InputByName("DO").Connection())

	child := ws.NewBlock("child")
	child.Model().SetPreviousStatement()
	if err := do.Connect(ws.Conn(child.Model().Previous())); err != nil {
		t.Fatalf("connect: %v", err)
	}

	if err := parent.SetCollapsed(true); err != nil {
		t.Fatalf("collapse: %v", err)
	}
	if do.State() != Hidden {
		t.Errorf("statement connection state = %v, want Hidden", do.State())
	}
	if ws.Conn(child.Model().Previous()).State() != Hidden {
		t.Error("child connection still indexed under a collapsed block")
	}

	if err := parent.SetCollapsed(false); err != nil {
		t.Fatalf("expand: %v", err)
	}
	if do.Hidden() {
		t.Error("statement connection still hidden after expand")
	}
}

func TestBlock_DisabledStateCascades(t *testing.T) {
	ws := newTestWorkspace()

	parent := ws.NewBlock("parent")
	parent.Model().SetNextStatement()
	parent.Model().SetEnabled(false)
	child := ws.NewBlock("child")
	child.Model().SetPreviousStatement()

	if err := ws.Conn(parent.Model().Next()).Connect(ws.Conn(child.Model().Previous())); err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := child.Render(); err != nil {
		t.Fatalf("render: %v", err)
	}

	main := child.PathObject().Group().Children()[1]
	if got := main.Attr("class"); got != "blockPath blockDisabled" {
		t.Errorf("child class = %q, want disabled styling from the parent", got)
	}
}

func TestBlock_DisposeRemovesConnectionsFromIndex(t *testing.T) {
	ws := newTestWorkspace()

	b := ws.NewBlock("test")
	b.Model().SetPreviousStatement()
	b.Model().SetNextStatement()
	b.MoveTo(snap.Pt(10, 10))

	db := ws.DB(snap.PreviousStatement)
	if db.Len() != 1 {
		t.Fatalf("index len = %d before dispose, want 1", db.Len())
	}
	b.Dispose()
	if db.Len() != 0 {
		t.Errorf("index len = %d after dispose, want 0", db.Len())
	}
	if !b.Model().Disposed() {
		t.Error("model not disposed")
	}
}
