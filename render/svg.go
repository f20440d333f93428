package render

import (
	"fmt"
	"sort"
	"strings"
)

// Element is one node of a retained SVG tree. The renderer writes path
// data and transforms into elements; hosts embed the serialized tree or
// mirror attribute changes into a live DOM.
type Element struct {
	Name string

	attrs    map[string]string
	children []*Element
	text     string
}

// NewElement creates an element with the given tag name.
func NewElement(name string) *Element {
	return &Element{Name: name, attrs: make(map[string]string)}
}

// SetAttr sets an attribute. An empty value removes the attribute, so
// restored states serialize identically to never-set ones.
func (e *Element) SetAttr(key, value string) {
	if value == "" {
		delete(e.attrs, key)
		return
	}
	e.attrs[key] = value
}

// Attr returns an attribute's value, empty if unset.
func (e *Element) Attr(key string) string { return e.attrs[key] }

// SetText sets the element's text content (for <text> labels).
func (e *Element) SetText(text string) { e.text = text }

// Text returns the element's text content.
func (e *Element) Text() string { return e.text }

// AppendChild adds a child element. Children render in insertion order,
// which is the SVG painter's z-order: earlier children draw below later
// ones.
func (e *Element) AppendChild(child *Element) { e.children = append(e.children, child) }

// RemoveChild removes a child element, if present.
func (e *Element) RemoveChild(child *Element) {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			return
		}
	}
}

// Children returns the element's children in z-order.
func (e *Element) Children() []*Element { return e.children }

// String serializes the element and its subtree. Attributes are emitted
// in sorted key order so output is deterministic.
func (e *Element) String() string {
	var b strings.Builder
	e.write(&b, 0)
	return b.String()
}

func (e *Element) write(b *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	b.WriteString(indent)
	b.WriteByte('<')
	b.WriteString(e.Name)

	keys := make([]string, 0, len(e.attrs))
	for k := range e.attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, ` %s="%s"`, k, escapeAttr(e.attrs[k]))
	}

	if len(e.children) == 0 && e.text == "" {
		b.WriteString("/>\n")
		return
	}
	b.WriteByte('>')
	if e.text != "" {
		b.WriteString(escapeText(e.text))
	}
	if len(e.children) > 0 {
		b.WriteByte('\n')
		for _, c := range e.children {
			c.write(b, depth+1)
		}
		b.WriteString(indent)
	}
	fmt.Fprintf(b, "</%s>\n", e.Name)
}

func escapeAttr(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}

func escapeText(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
