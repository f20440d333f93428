package snap

// FieldMeasurer computes the rendered size of a field's label text.
// Implementations provide different levels of fidelity:
//   - the heuristic measurer in package text: per-rune advance estimate
//   - the shaping measurer in package text: HarfBuzz metrics via
//     go-text/typesetting
//
// A measurer is injected at the workspace level so every field on the
// workspace measures with the same font configuration.
type FieldMeasurer interface {
	// MeasureField returns the size of the field's visible label,
	// excluding any editor chrome padding (the field adds that itself).
	MeasureField(text string, editable bool) Size
}

// Editor chrome padding around a field's label, in workspace units.
// Editable fields draw a border rectangle around the label.
const (
	fieldPadX = 5
	fieldPadY = 2
)

// Field is one non-input visual unit on a block row: a text label, or an
// editable widget reduced to its measured footprint. Editor behavior
// (text entry, dropdown menus) is outside this package; the layout pass
// only consumes the field's size, editability and alignment.
type Field struct {
	text     string
	editable bool

	// fixed holds an explicit size for fields whose footprint is not
	// text-derived (checkbox, image). Zero means "measure the text".
	fixed Size

	size  Size
	sized bool
}

// NewLabelField creates a non-editable text label field.
func NewLabelField(text string) *Field {
	return &Field{text: text}
}

// NewTextField creates an editable text input field.
func NewTextField(text string) *Field {
	return &Field{text: text, editable: true}
}

// NewFixedField creates a field with an explicit size, for widgets whose
// footprint does not derive from a label (checkbox, image).
func NewFixedField(size Size, editable bool) *Field {
	return &Field{fixed: size, editable: editable}
}

// Text returns the field's label text.
func (f *Field) Text() string { return f.text }

// SetText replaces the label text and invalidates the cached size.
// The owning block must be re-rendered for the change to become visible.
func (f *Field) SetText(text string) {
	if f.text == text {
		return
	}
	f.text = text
	f.sized = false
}

// IsEditable reports whether the field accepts user edits. Editability
// participates in the in-row spacing rules.
func (f *Field) IsEditable() bool { return f.editable }

// Measure returns the field's rendered size, computing and caching it on
// first use. The cache is invalidated by SetText.
func (f *Field) Measure(m FieldMeasurer) Size {
	if f.sized {
		return f.size
	}
	if f.fixed.Width > 0 || f.fixed.Height > 0 {
		f.size = f.fixed
	} else {
		f.size = m.MeasureField(f.text, f.editable)
		if f.editable {
			f.size.Width += 2 * fieldPadX
			f.size.Height += 2 * fieldPadY
		}
	}
	f.sized = true
	return f.size
}
