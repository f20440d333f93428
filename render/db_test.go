package render

import (
	"testing"

	"github.com/snapkit/snap"
)

// testMeasurer sizes fields at ten units per rune so layout expectations
// stay integral.
type testMeasurer struct{}

func (testMeasurer) MeasureField(label string, editable bool) snap.Size {
	return snap.Sz(float64(len([]rune(label)))*10, 16)
}

func newTestWorkspace(opts ...Option) *Workspace {
	return NewWorkspace(append([]Option{WithMeasurer(testMeasurer{})}, opts...)...)
}

// prevConnAt creates a statement block and places its previous
// connection at the given position.
func prevConnAt(ws *Workspace, p snap.Point) *Conn {
	b := ws.NewBlock("stmt")
	b.Model().SetPreviousStatement()
	b.Model().SetNextStatement()
	c := ws.Conn(b.Model().Previous())
	c.MoveTo(p)
	return c
}

func nextConnAt(ws *Workspace, p snap.Point) *Conn {
	b := ws.NewBlock("stmt")
	b.Model().SetNextStatement()
	c := ws.Conn(b.Model().Next())
	c.MoveTo(p)
	return c
}

func TestDB_AddKeepsYOrder(t *testing.T) {
	ws := newTestWorkspace()
	db := ws.DB(snap.PreviousStatement)

	prevConnAt(ws, snap.Pt(0, 30))
	prevConnAt(ws, snap.Pt(0, 10))
	prevConnAt(ws, snap.Pt(0, 20))
	prevConnAt(ws, snap.Pt(5, 10))

	if db.Len() != 4 {
		t.Fatalf("Len = %d, want 4", db.Len())
	}
	var last float64 = -1
	for _, c := range db.conns {
		if c.pos.Y < last {
			t.Fatalf("index out of Y order: %v after %v", c.pos.Y, last)
		}
		last = c.pos.Y
	}
}

func TestDB_RemoveByIdentityAmongEqualY(t *testing.T) {
	ws := newTestWorkspace()
	db := ws.DB(snap.PreviousStatement)

	a := prevConnAt(ws, snap.Pt(0, 10))
	b := prevConnAt(ws, snap.Pt(1, 10))
	c := prevConnAt(ws, snap.Pt(2, 10))

	db.remove(b)
	if db.Len() != 2 {
		t.Fatalf("Len = %d after remove, want 2", db.Len())
	}
	if db.Contains(b) {
		t.Error("removed connection still reported present")
	}
	if !db.Contains(a) || !db.Contains(c) {
		t.Error("equal-Y neighbors lost during removal")
	}
}

func TestDB_SearchForClosest(t *testing.T) {
	ws := newTestWorkspace()

	near := prevConnAt(ws, snap.Pt(0, 10))
	far := prevConnAt(ws, snap.Pt(0, 30))
	prevConnAt(ws, snap.Pt(100, 0))

	query := nextConnAt(ws, snap.Pt(0, 0))

	t.Run("nearest wins", func(t *testing.T) {
		got, dist := query.Closest(28, snap.Pt(0, 0))
		if got != near {
			t.Fatalf("Closest = %v, want the 10-unit neighbor", got)
		}
		if dist != 10 {
			t.Errorf("distance = %v, want 10", dist)
		}
	})

	t.Run("radius bounds the search", func(t *testing.T) {
		if got, _ := query.Closest(5, snap.Pt(0, 0)); got != nil {
			t.Errorf("Closest within 5 = %v, want nil", got)
		}
	})

	t.Run("offset shifts the query point", func(t *testing.T) {
		got, dist := query.Closest(28, snap.Pt(0, 25))
		if got != far {
			t.Fatalf("Closest with offset = %v, want the 30-unit neighbor", got)
		}
		if dist != 5 {
			t.Errorf("distance = %v, want 5", dist)
		}
	})

	t.Run("own stack excluded", func(t *testing.T) {
		if err := query.Model().Connect(near.Model(), ws.Checker()); err != nil {
			t.Fatalf("connect: %v", err)
		}
		got, _ := query.Closest(50, snap.Pt(0, 0))
		if got != far {
			t.Errorf("Closest = %v, want the unattached neighbor", got)
		}
	})
}

func TestDB_SearchSkipsIncompatible(t *testing.T) {
	ws := newTestWorkspace()

	parent := ws.NewBlock("parent")
	in := parent.Model().AppendValueInput("VALUE").SetCheck("Number")
	input := ws.Conn(in.Connection())
	input.MoveTo(snap.Pt(0, 0))

	str := ws.NewBlock("str")
	str.Model().SetOutput("String")
	strOut := ws.Conn(str.Model().Output())
	strOut.MoveTo(snap.Pt(0, 5))

	num := ws.NewBlock("num")
	num.Model().SetOutput("Number")
	numOut := ws.Conn(num.Model().Output())
	numOut.MoveTo(snap.Pt(0, 15))

	got, _ := input.Closest(28, snap.Pt(0, 0))
	if got != numOut {
		t.Errorf("Closest = %v, want the type-compatible output despite larger distance", got)
	}
}
