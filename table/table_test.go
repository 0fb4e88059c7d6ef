package table

import (
	"math"
	"testing"

	"github.com/yllada/event-table/events"
)

func TestNew_Defaults(t *testing.T) {
	tbl := NewDefault()

	if tbl.Len() != 15 {
		t.Errorf("Len() = %d, want 15", tbl.Len())
	}
	if tbl.Padding() != (Pair{X: 10, Y: 5}) {
		t.Errorf("Padding() = %+v, want {10 5}", tbl.Padding())
	}
	if tbl.Separator() != (Pair{X: 1, Y: 1}) {
		t.Errorf("Separator() = %+v, want {1 1}", tbl.Separator())
	}
	if _, ok := tbl.Selected(); ok {
		t.Error("new table should have no selection")
	}
	if _, ok := tbl.LastCursor(); ok {
		t.Error("new table should have no cursor")
	}
	if _, ok := tbl.ContextMenu(); ok {
		t.Error("new table should have no context menu")
	}
}

func TestNew_Options(t *testing.T) {
	tbl := NewDefault(WithPadding(Pair{X: 3, Y: 4}), WithSeparator(Pair{X: 0, Y: 2}))

	if tbl.Padding() != (Pair{X: 3, Y: 4}) {
		t.Errorf("Padding() = %+v", tbl.Padding())
	}
	if tbl.Separator() != (Pair{X: 0, Y: 2}) {
		t.Errorf("Separator() = %+v", tbl.Separator())
	}
}

func TestUpdate_SliderChangesOverwrite(t *testing.T) {
	values := []Pair{{0, 0}, {30, 30}, {12.5, 0.5}, {-1, 99}}

	for _, v := range values {
		tbl := NewDefault()

		tbl.Update(PaddingChanged{Value: v})
		tbl.Update(PaddingChanged{Value: v})
		if tbl.Padding() != v {
			t.Errorf("Padding() = %+v after PaddingChanged(%+v)", tbl.Padding(), v)
		}

		tbl.Update(SeparatorChanged{Value: v})
		tbl.Update(SeparatorChanged{Value: v})
		if tbl.Separator() != v {
			t.Errorf("Separator() = %+v after SeparatorChanged(%+v)", tbl.Separator(), v)
		}
	}
}

func TestUpdate_SelectThenClear(t *testing.T) {
	for _, row := range []int{0, 7, 14, 15, 1000} {
		tbl := NewDefault()

		tbl.Update(ShowDetails{Row: row})
		if got, ok := tbl.Selected(); !ok || got != row {
			t.Errorf("Selected() = %d, %v; want %d, true", got, ok, row)
		}

		tbl.Update(HideDetails{})
		if _, ok := tbl.Selected(); ok {
			t.Errorf("selection of row %d should be cleared", row)
		}
	}
}

func TestUpdate_HideContext(t *testing.T) {
	tbl := NewDefault()
	tbl.Update(Pointer{Event: PressedAt(ButtonRight, 50, 100)})
	if _, ok := tbl.ContextMenu(); !ok {
		t.Fatal("right click on a row should open the context menu")
	}

	tbl.Update(HideContext{})
	if _, ok := tbl.ContextMenu(); ok {
		t.Error("HideContext should close the menu")
	}
}

func TestPointer_RightClickRows(t *testing.T) {
	tests := []struct {
		name    string
		y       float32
		wantRow int
		open    bool
	}{
		{"header", 20, 0, false},
		{"header edge", 36, 0, false},
		{"first row", 37, 0, true},
		{"second row", 100, 1, true},
		{"last row", 36 + 14*36 + 1, 14, true},
		{"below table", 36 + 15*36, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := NewDefault()
			tbl.Update(Pointer{Event: MovedTo(250, tt.y)})
			tbl.Update(Pointer{Event: PointerEvent{Kind: PointerPressed, Button: ButtonRight}})

			menu, ok := tbl.ContextMenu()
			if ok != tt.open {
				t.Fatalf("context menu open = %v, want %v", ok, tt.open)
			}
			if ok && (menu.Row != tt.wantRow || menu.At != (Point{X: 250, Y: tt.y})) {
				t.Errorf("ContextMenu() = %+v, want row %d at (250, %v)", menu, tt.wantRow, tt.y)
			}
		})
	}
}

func TestPointer_IgnoresOtherButtons(t *testing.T) {
	tbl := NewDefault()
	tbl.Update(Pointer{Event: PressedAt(ButtonLeft, 10, 100)})
	tbl.Update(Pointer{Event: PointerEvent{Kind: PointerReleased, Button: ButtonRight, At: Point{10, 100}, Located: true}})

	if _, ok := tbl.ContextMenu(); ok {
		t.Error("only a right press opens the context menu")
	}
	if at, ok := tbl.LastCursor(); !ok || at != (Point{X: 10, Y: 100}) {
		t.Errorf("LastCursor() = %+v, %v", at, ok)
	}
}

func TestPointer_RightClickWithoutCursor(t *testing.T) {
	tbl := NewDefault()
	tbl.Update(Pointer{Event: PointerEvent{Kind: PointerPressed, Button: ButtonRight}})

	if _, ok := tbl.ContextMenu(); ok {
		t.Error("a press with no known cursor should not open a menu")
	}
}

func TestPointer_EmptyTable(t *testing.T) {
	tbl := New([]events.Event{})
	tbl.Update(Pointer{Event: PressedAt(ButtonRight, 10, 40)})

	if _, ok := tbl.ContextMenu(); ok {
		t.Error("an empty table has no rows to open a menu on")
	}
}

func TestRowAt(t *testing.T) {
	tests := []struct {
		name    string
		y       float32
		wantRow int
		wantOK  bool
	}{
		{"header edge", 36, 0, false},
		{"first row", 36.5, 0, true},
		{"last row", 575.9, 14, true},
		{"past last row", 576, 0, false},
		{"negative", -5, 0, false},
		{"beyond int range", 1e22, 0, false},
		{"max float", math.MaxFloat32, 0, false},
		{"infinity", float32(math.Inf(1)), 0, false},
		{"NaN", float32(math.NaN()), 0, false},
	}

	tbl := NewDefault()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, ok := tbl.RowAt(tt.y)
			if row != tt.wantRow || ok != tt.wantOK {
				t.Errorf("RowAt(%v) = %d, %v; want %d, %v", tt.y, row, ok, tt.wantRow, tt.wantOK)
			}
		})
	}
}

func TestPointer_HugeCoordinateOpensNoMenu(t *testing.T) {
	tbl := NewDefault()
	tbl.Update(Pointer{Event: PressedAt(ButtonRight, 10, 1e22)})

	if menu, ok := tbl.ContextMenu(); ok {
		t.Errorf("ContextMenu() = %+v, want closed", menu)
	}
}

func TestEvent(t *testing.T) {
	tbl := NewDefault()

	if ev, ok := tbl.Event(0); !ok || ev.Name != "Get lost in a hacker bookstore" {
		t.Errorf("Event(0) = %+v, %v", ev, ok)
	}
	for _, row := range []int{-1, tbl.Len(), math.MinInt} {
		if _, ok := tbl.Event(row); ok {
			t.Errorf("Event(%d) should report out of range", row)
		}
	}
}
