package constants

import (
	"strings"
	"testing"
)

func TestDefault_ShapePaths(t *testing.T) {
	c := Default()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"notch left", c.Notch.PathLeft, "l 6,4 3,0 6,-4"},
		{"notch right", c.Notch.PathRight, "l -6,4 -3,0 -6,-4"},
		{"tab down", c.PuzzleTab.PathDown, "c 0,10 -8,-8 -8,7.5 s 8,-2.5 8,7.5"},
		{"tab up", c.PuzzleTab.PathUp, "c 0,-10 -8,8 -8,-7.5 s 8,2.5 8,-7.5"},
		{"start hat", c.StartHat.Path, "c 30,-15 70,-15 100,0"},
		{"jagged teeth", c.JaggedTeeth.Path, "l 6,3 -12,6 6,3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("path = %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestDefault_Dimensions(t *testing.T) {
	c := Default()
	if c.Notch.Width != 15 || c.Notch.Height != 4 {
		t.Errorf("notch = %vx%v, want 15x4", c.Notch.Width, c.Notch.Height)
	}
	if c.PuzzleTab.Width != 8 || c.PuzzleTab.Height != 15 {
		t.Errorf("tab = %vx%v, want 8x15", c.PuzzleTab.Width, c.PuzzleTab.Height)
	}
	if c.MinBlockWidth != 12 || c.MinBlockHeight != 24 {
		t.Errorf("min block = %vx%v, want 12x24", c.MinBlockWidth, c.MinBlockHeight)
	}
}

func TestRebuildShapes_TracksDimensionChanges(t *testing.T) {
	c := Default()
	c.NotchWidth = 21
	c.NotchHeight = 5
	c.RebuildShapes()

	if c.Notch.Width != 21 {
		t.Errorf("Notch.Width = %v, want 21", c.Notch.Width)
	}
	// slope = height+2, inner = width-2*slope
	if c.Notch.PathLeft != "l 7,5 7,0 7,-5" {
		t.Errorf("PathLeft = %q, want recomputed trapezoid", c.Notch.PathLeft)
	}
}

func TestLoad_Overrides(t *testing.T) {
	doc := `
notch_width = 20.0
notch_height = 6.0
large_padding = 12.0
`
	c, err := Load(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.NotchWidth != 20 || c.NotchHeight != 6 {
		t.Errorf("notch dims = %vx%v, want 20x6", c.NotchWidth, c.NotchHeight)
	}
	if c.LargePadding != 12 {
		t.Errorf("LargePadding = %v, want 12", c.LargePadding)
	}
	// Untouched keys keep defaults.
	if c.MediumPadding != 5 {
		t.Errorf("MediumPadding = %v, want default 5", c.MediumPadding)
	}
	// Shapes rebuilt from the overridden dimensions.
	if c.Notch.Width != 20 {
		t.Errorf("Notch.Width = %v, want 20", c.Notch.Width)
	}
}

func TestLoad_ExplicitZero(t *testing.T) {
	c, err := Load(strings.NewReader("corner_radius = 0.0\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.CornerRadius != 0 {
		t.Errorf("CornerRadius = %v, want explicit 0", c.CornerRadius)
	}
}

func TestLoad_BadDocument(t *testing.T) {
	if _, err := Load(strings.NewReader("notch_width = [1, 2]")); err == nil {
		t.Error("Load accepted a malformed document")
	}
}
