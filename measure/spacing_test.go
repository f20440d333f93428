package measure

import (
	"testing"

	"github.com/snapkit/snap"
	"github.com/snapkit/snap/constants"
)

func TestInRowSpacing(t *testing.T) {
	ri := New(snap.NewBlock("test"), constants.Default(), fixedMeasurer{}, false)

	field := &Measurable{Kind: KindField}
	editField := &Measurable{Kind: KindField, Editable: true}
	icon := &Measurable{Kind: KindIcon}
	hat := &Measurable{Kind: KindHat}
	jagged := &Measurable{Kind: KindJaggedEdge}
	roundCorner := &Measurable{Kind: KindRoundCorner}
	squareCorner := &Measurable{Kind: KindSquareCorner}
	prevConn := &Measurable{Kind: KindConnection, Conn: snap.PreviousStatement, NotchOffset: 15}
	inline := &Measurable{Kind: KindConnection, Conn: snap.InputValue, Style: InputInline}
	external := &Measurable{Kind: KindConnection, Conn: snap.InputValue, Style: InputExternal}
	statement := &Measurable{Kind: KindConnection, Conn: snap.NextStatement, Style: InputStatement}

	tests := []struct {
		name       string
		prev, next *Measurable
		want       float64
	}{
		{"start to corner", nil, roundCorner, 0},
		{"start to editable field", nil, editField, 5},
		{"start to inline input", nil, inline, 8},
		{"start to statement input", nil, statement, 20},
		{"start to plain field", nil, field, 10},
		{"editable field to end", editField, nil, 5},
		{"icon to end", icon, nil, 21},
		{"hat to end", hat, nil, 0},
		{"previous connection to end", prevConn, nil, 10},
		{"rounded corner to end", roundCorner, nil, 12},
		{"jagged edge to end", jagged, nil, 0},
		{"plain field to end", field, nil, 10},
		{"external input to end", external, nil, 0},
		{"inline input to end", inline, nil, 10},
		{"statement input to end", statement, nil, 0},
		{"editable field to inline input", editField, inline, 3},
		{"editable field to external input", editField, external, 3},
		{"editable field to statement input", editField, statement, 4},
		{"plain field to inline input", field, inline, 8},
		{"plain field to external input", field, external, 8},
		{"plain field to statement input", field, statement, 10},
		{"icon to field", icon, field, 10},
		{"inline input to editable field", inline, editField, 5},
		{"inline input to plain field", inline, field, 10},
		{"square corner to hat", squareCorner, hat, 0},
		{"square corner to previous connection", squareCorner, prevConn, 15},
		{"rounded corner to previous connection", roundCorner, prevConn, 7},
		{"two plain fields", field, field, 10},
		{"two editable fields", editField, editField, 10},
		{"field to jagged edge", field, jagged, 10},
		{"mixed editability fields", field, editField, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ri.inRowSpacing(tt.prev, tt.next); got != tt.want {
				t.Errorf("inRowSpacing(%v, %v) = %v, want %v", tt.prev, tt.next, got, tt.want)
			}
		})
	}
}

func TestSpacerRowHeight(t *testing.T) {
	ri := New(snap.NewBlock("test"), constants.Default(), fixedMeasurer{}, false)

	tests := []struct {
		name       string
		prev, next *Row
		want       float64
	}{
		{"empty body", &Row{Kind: RowTop}, &Row{Kind: RowBottom}, 16},
		{"after statement mid-block", &Row{Kind: RowInput, HasStatement: true}, &Row{Kind: RowInput}, 3},
		{"after statement before bottom", &Row{Kind: RowInput, HasStatement: true}, &Row{Kind: RowBottom}, 0},
		{"between content rows", &Row{Kind: RowInput}, &Row{Kind: RowInput}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ri.spacerRowHeight(tt.prev, tt.next); got != tt.want {
				t.Errorf("spacerRowHeight() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpacerRowWidth(t *testing.T) {
	ri := New(snap.NewBlock("test"), constants.Default(), fixedMeasurer{}, false)

	tests := []struct {
		name       string
		prev, next *Row
		want       float64
	}{
		{"max of neighbors", &Row{Width: 40}, &Row{Width: 70}, 70},
		{"statement floor", &Row{Width: 10, HasStatement: true}, &Row{Width: 12}, 30},
		{"statement above floor", &Row{Width: 50, HasStatement: true}, &Row{Width: 12}, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ri.spacerRowWidth(tt.prev, tt.next); got != tt.want {
				t.Errorf("spacerRowWidth() = %v, want %v", got, tt.want)
			}
		})
	}
}
