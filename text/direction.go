package text

import "golang.org/x/text/unicode/bidi"

// DetectRTL reports whether the label's base direction is right-to-left.
// It runs the Unicode bidi algorithm over the label and reads the
// paragraph direction, so neutral leading punctuation does not confuse
// the result. Workspaces use it to choose label direction; the
// workspace-wide RTL flag itself stays an explicit option.
func DetectRTL(label string) bool {
	if label == "" {
		return false
	}
	var p bidi.Paragraph
	p.SetString(label)
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return false
	}
	run := ordering.Run(0)
	return run.Direction() == bidi.RightToLeft
}
