package render

import (
	"strings"
	"testing"
)

func TestElement_AttrsSorted(t *testing.T) {
	e := NewElement("path")
	e.SetAttr("transform", "translate(1,1)")
	e.SetAttr("class", "blockPath")
	e.SetAttr("d", "M 0,0")

	got := e.String()
	want := `<path class="blockPath" d="M 0,0" transform="translate(1,1)"/>` + "\n"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestElement_EmptyValueRemovesAttr(t *testing.T) {
	e := NewElement("path")
	e.SetAttr("transform", "scale(-1 1)")
	e.SetAttr("transform", "")

	if got := e.String(); got != "<path/>\n" {
		t.Errorf("String() = %q, want bare element after attribute removal", got)
	}
}

func TestElement_Escaping(t *testing.T) {
	e := NewElement("text")
	e.SetAttr("data-label", `a<b&"c"`)
	e.SetText("1 < 2 & 3 > 2")

	got := e.String()
	if !strings.Contains(got, `data-label="a&lt;b&amp;&quot;c&quot;"`) {
		t.Errorf("attribute not escaped: %q", got)
	}
	if !strings.Contains(got, "1 &lt; 2 &amp; 3 &gt; 2") {
		t.Errorf("text not escaped: %q", got)
	}
}

func TestElement_ChildrenKeepOrder(t *testing.T) {
	g := NewElement("g")
	a := NewElement("path")
	b := NewElement("rect")
	c := NewElement("text")
	g.AppendChild(a)
	g.AppendChild(b)
	g.AppendChild(c)
	g.RemoveChild(b)

	kids := g.Children()
	if len(kids) != 2 || kids[0] != a || kids[1] != c {
		t.Errorf("children after removal = %v, want [path, text]", kids)
	}
}

func TestPathBuilder_Commands(t *testing.T) {
	var p PathBuilder
	p.MoveTo(0, 8)
	p.ArcTo(8, 1, 8, 0)
	p.HLineTo(40)
	p.VLineTo(30)
	p.LineTo(0, 30)
	p.Close()

	want := "M 0,8 A 8,8 0 0,1 8,0 H 40 V 30 L 0,30 z"
	if got := p.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if x, y := p.Current(); x != 0 || y != 30 {
		t.Errorf("Current() = (%v, %v), want (0, 30)", x, y)
	}
}

func TestPathBuilder_RawTracksDisplacement(t *testing.T) {
	var p PathBuilder
	p.MoveTo(15, 0)
	p.Raw("l 6,4 3,0 6,-4", 15, 0)

	if x, y := p.Current(); x != 30 || y != 0 {
		t.Errorf("Current() after notch = (%v, %v), want (30, 0)", x, y)
	}
	if got := p.String(); got != "M 15,0 l 6,4 3,0 6,-4" {
		t.Errorf("String() = %q", got)
	}
}

func TestPathBuilder_Empty(t *testing.T) {
	var p PathBuilder
	if !p.Empty() {
		t.Error("fresh builder not empty")
	}
	p.MoveTo(1, 1)
	if p.Empty() {
		t.Error("builder empty after MoveTo")
	}
}
