package snap

import (
	"testing"
)

func TestBlock_AppendInputs(t *testing.T) {
	b := NewBlock("test")
	b.AppendDummyInput().AppendField(NewLabelField("if"))
	b.AppendValueInput("COND").SetCheck("Boolean")
	b.AppendStatementInput("DO")

	if got := len(b.Inputs()); got != 3 {
		t.Fatalf("len(Inputs) = %d, want 3", got)
	}
	tests := []struct {
		idx  int
		kind InputKind
	}{
		{0, DummyInput},
		{1, ValueInput},
		{2, StatementInput},
	}
	for _, tt := range tests {
		if got := b.Inputs()[tt.idx].Kind(); got != tt.kind {
			t.Errorf("Inputs[%d].Kind = %v, want %v", tt.idx, got, tt.kind)
		}
	}
	if b.Inputs()[1].Connection().Kind() != InputValue {
		t.Error("value input connection kind != InputValue")
	}
	// Statement inputs carry a next-statement connection, same as the
	// block bottom notch.
	if b.Inputs()[2].Connection().Kind() != NextStatement {
		t.Error("statement input connection kind != NextStatement")
	}
	if b.Inputs()[0].Connection() != nil {
		t.Error("dummy input has a connection")
	}
}

func TestBlock_InputByName(t *testing.T) {
	b := NewBlock("test")
	b.AppendValueInput("A")
	b.AppendValueInput("B")

	if got := b.InputByName("B"); got == nil || got.Name() != "B" {
		t.Errorf("InputByName(B) = %v", got)
	}
	if got := b.InputByName("missing"); got != nil {
		t.Errorf("InputByName(missing) = %v, want nil", got)
	}
}

func TestBlock_Connections(t *testing.T) {
	b := NewBlock("test")
	b.SetPreviousStatement()
	b.SetNextStatement()
	b.AppendValueInput("VALUE")
	b.AppendStatementInput("DO")

	conns := b.Connections()
	if got := len(conns); got != 4 {
		t.Fatalf("len(Connections) = %d, want 4", got)
	}
}

func TestBlock_ParentRootDescendants(t *testing.T) {
	grand := NewBlock("grand")
	grand.SetNextStatement()
	parent := NewBlock("parent")
	parent.SetPreviousStatement()
	in := parent.AppendValueInput("VALUE")
	child := NewBlock("child")
	child.SetOutput()

	if err := grand.Next().Connect(parent.Previous(), nil); err != nil {
		t.Fatalf("connect grand-parent: %v", err)
	}
	if err := in.Connection().Connect(child.Output(), nil); err != nil {
		t.Fatalf("connect parent-child: %v", err)
	}

	if got := child.Parent(); got != parent {
		t.Errorf("child.Parent = %v, want parent", got)
	}
	if got := child.Root(); got != grand {
		t.Errorf("child.Root = %v, want grand", got)
	}
	if got := grand.Root(); got != grand {
		t.Errorf("grand.Root = %v, want grand", got)
	}

	desc := grand.Descendants()
	if len(desc) != 3 {
		t.Fatalf("len(Descendants) = %d, want 3", len(desc))
	}
	if desc[0] != grand {
		t.Error("Descendants[0] != receiver")
	}
}

func TestBlock_UniqueIDs(t *testing.T) {
	a := NewBlock("a")
	b := NewBlock("b")
	if a.ID() == "" || a.ID() == b.ID() {
		t.Errorf("block IDs = %q, %q, want distinct non-empty", a.ID(), b.ID())
	}
}

func TestField_MeasureCaching(t *testing.T) {
	calls := 0
	m := countingMeasurer{calls: &calls}

	f := NewLabelField("count")
	first := f.Measure(m)
	second := f.Measure(m)
	if first != second {
		t.Errorf("cached size changed: %v then %v", first, second)
	}
	if calls != 1 {
		t.Errorf("measurer called %d times, want 1", calls)
	}

	f.SetText("recount")
	f.Measure(m)
	if calls != 2 {
		t.Errorf("measurer called %d times after SetText, want 2", calls)
	}
}

func TestField_EditablePadding(t *testing.T) {
	m := constantMeasurer{w: 40, h: 16}
	label := NewLabelField("x").Measure(m)
	edit := NewTextField("x").Measure(m)

	if edit.Width != label.Width+2*fieldPadX {
		t.Errorf("editable width = %v, want label + %v", edit.Width, 2*fieldPadX)
	}
	if edit.Height != label.Height+2*fieldPadY {
		t.Errorf("editable height = %v, want label + %v", edit.Height, 2*fieldPadY)
	}
}

func TestField_Fixed(t *testing.T) {
	f := NewFixedField(Sz(17, 17), false)
	got := f.Measure(constantMeasurer{w: 99, h: 99})
	if got != Sz(17, 17) {
		t.Errorf("fixed field size = %v, want 17x17", got)
	}
}

type countingMeasurer struct{ calls *int }

func (m countingMeasurer) MeasureField(text string, editable bool) Size {
	*m.calls++
	return Sz(float64(len(text))*8, 14)
}

type constantMeasurer struct{ w, h float64 }

func (m constantMeasurer) MeasureField(string, bool) Size { return Sz(m.w, m.h) }
