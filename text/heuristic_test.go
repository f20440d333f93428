package text

import (
	"testing"
)

func TestHeuristic_MeasureField(t *testing.T) {
	h := Heuristic{}

	tests := []struct {
		name           string
		label          string
		wider, thinner string
	}{
		{"longer is wider", "abc", "abcdef", "abc"},
		{"uppercase is wider", "III", "WWW", "lll"},
		{"cjk is widest", "ab", "漢字", "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := h.MeasureField(tt.wider, false)
			n := h.MeasureField(tt.thinner, false)
			if w.Width <= n.Width {
				t.Errorf("width(%q) = %v, width(%q) = %v, want first wider",
					tt.wider, w.Width, tt.thinner, n.Width)
			}
		})
	}
}

func TestHeuristic_EmptyLabel(t *testing.T) {
	got := Heuristic{}.MeasureField("", false)
	if got.Width != 0 {
		t.Errorf("empty label width = %v, want 0", got.Width)
	}
	if got.Height <= 0 {
		t.Errorf("empty label height = %v, want line height", got.Height)
	}
}

func TestHeuristic_FontSizeScales(t *testing.T) {
	small := Heuristic{FontSize: 10}.MeasureField("scale", false)
	large := Heuristic{FontSize: 20}.MeasureField("scale", false)
	if large.Width != 2*small.Width {
		t.Errorf("width at 20pt = %v, want double the 10pt width %v", large.Width, small.Width)
	}
	if large.Height != 2*small.Height {
		t.Errorf("height at 20pt = %v, want double the 10pt height %v", large.Height, small.Height)
	}
}

func TestDetectRTL(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  bool
	}{
		{"empty", "", false},
		{"latin", "repeat", false},
		{"digits", "123", false},
		{"hebrew", "שלום", true},
		{"arabic", "مرحبا", true},
		{"leading punctuation before arabic", "\"مرحبا\"", true},
		{"latin with trailing punctuation", "go!", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectRTL(tt.label); got != tt.want {
				t.Errorf("DetectRTL(%q) = %v, want %v", tt.label, got, tt.want)
			}
		})
	}
}
