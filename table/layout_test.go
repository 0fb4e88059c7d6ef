package table

import (
	"testing"

	"github.com/yllada/event-table/common"
	"github.com/yllada/event-table/events"
)

func TestRender_Rows(t *testing.T) {
	l := NewDefault().Render()

	if len(l.Header) != 5 || l.Header[0] != "Name" {
		t.Errorf("Header = %v", l.Header)
	}
	if len(l.Rows) != 15 {
		t.Fatalf("len(Rows) = %d, want 15", len(l.Rows))
	}

	first := l.Rows[0]
	if first.Time.Text != "120 min" || first.Time.Tone != events.ToneWarning {
		t.Errorf("first row time = %+v", first.Time)
	}
	if first.Price.Text != "Free" || !first.Price.Centered || first.Price.Tone != events.ToneSuccess {
		t.Errorf("first row price = %+v", first.Price)
	}
	if first.Rating.Tone != events.ToneSuccess {
		t.Errorf("first row rating tone = %v", first.Rating.Tone)
	}

	hotdog := l.Rows[2]
	if hotdog.Rating.Tone != events.ToneDanger {
		t.Errorf("hot dog rating tone = %v, want danger", hotdog.Rating.Tone)
	}
	if hotdog.Details != (ShowDetails{Row: 2}) {
		t.Errorf("Details = %+v, want ShowDetails{2}", hotdog.Details)
	}

	tattoo := l.Rows[14]
	if tattoo.Price.Text != "$200.00" || tattoo.Price.Tone != events.ToneWarning || tattoo.Price.Centered {
		t.Errorf("tattoo price = %+v", tattoo.Price)
	}
}

func TestRender_Sliders(t *testing.T) {
	tbl := NewDefault()
	l := tbl.Render()

	if len(l.Sliders) != 2 {
		t.Fatalf("len(Sliders) = %d, want 2", len(l.Sliders))
	}
	pad, sep := l.Sliders[0], l.Sliders[1]
	if pad.Label != "Padding" || pad.Max != 30 || sep.Label != "Separator" || sep.Max != 5 {
		t.Errorf("sliders = %+v / %+v", pad, sep)
	}
	if x, y := pad.Tooltips(); x != "10px" || y != "5px" {
		t.Errorf("padding tooltips = %q %q", x, y)
	}

	tbl.Update(pad.Change(Pair{X: 22, Y: 7}))
	tbl.Update(sep.Change(Pair{X: 3, Y: 4}))
	if tbl.Padding() != (Pair{X: 22, Y: 7}) || tbl.Separator() != (Pair{X: 3, Y: 4}) {
		t.Errorf("slider change messages not applied: %+v %+v", tbl.Padding(), tbl.Separator())
	}
}

func TestRender_Idempotent(t *testing.T) {
	tbl := NewDefault()
	tbl.Update(ShowDetails{Row: 4})

	a, b := tbl.Render(), tbl.Render()
	if a.Overlay.Kind != b.Overlay.Kind || a.Overlay.Title != b.Overlay.Title || len(a.Rows) != len(b.Rows) {
		t.Error("Render should not depend on previous renders")
	}
}

func TestRender_NoOverlay(t *testing.T) {
	if got := NewDefault().Render().Overlay.Kind; got != OverlayNone {
		t.Errorf("Overlay.Kind = %v, want none", got)
	}
}

func TestRender_DetailsModal(t *testing.T) {
	tbl := NewDefault()
	tbl.Update(ShowDetails{Row: 11})
	ov := tbl.Render().Overlay

	if ov.Kind != OverlayDetails || ov.Row != 11 {
		t.Fatalf("Overlay = %+v", ov)
	}
	if ov.Title != "Name: Visit the Museum of Obsolete APIs" {
		t.Errorf("Title = %q", ov.Title)
	}
	want := []string{"Duration: 60 min", "Price: $9.99", "Rating: 4.20"}
	for i, line := range want {
		if ov.Lines[i] != line {
			t.Errorf("Lines[%d] = %q, want %q", i, ov.Lines[i], line)
		}
	}
	if len(ov.Actions) != 1 || ov.Actions[0].Msg != (HideDetails{}) {
		t.Errorf("Actions = %+v", ov.Actions)
	}
}

func TestRender_OutOfRangeSelectionHasNoModal(t *testing.T) {
	for _, row := range []int{15, 16, 1 << 20} {
		tbl := NewDefault()
		tbl.Update(ShowDetails{Row: row})
		if got := tbl.Render().Overlay.Kind; got != OverlayNone {
			t.Errorf("row %d: Overlay.Kind = %v, want none", row, got)
		}
	}
}

func TestRender_ContextMenu(t *testing.T) {
	tests := []struct {
		x      float32
		indent float32
	}{
		{0, 0},
		{50, 0},
		{250, 150},
		{1000, 600},
	}

	for _, tt := range tests {
		tbl := NewDefault()
		tbl.Update(Pointer{Event: PressedAt(ButtonRight, tt.x, 100)})
		ov := tbl.Render().Overlay

		if ov.Kind != OverlayContextMenu || ov.Row != 1 {
			t.Fatalf("x=%v: Overlay = %+v", tt.x, ov)
		}
		if ov.Indent != tt.indent {
			t.Errorf("x=%v: Indent = %v, want %v", tt.x, ov.Indent, tt.indent)
		}
		if ov.Actions[0].Msg != (ShowDetails{Row: 1}) || ov.Actions[1].Msg != (HideContext{}) {
			t.Errorf("x=%v: Actions = %+v", tt.x, ov.Actions)
		}
	}
}

func TestRender_DetailsTakePrecedence(t *testing.T) {
	tbl := NewDefault()
	tbl.Update(Pointer{Event: PressedAt(ButtonRight, 200, 100)})
	tbl.Update(ShowDetails{Row: 1})

	if got := tbl.Render().Overlay.Kind; got != OverlayDetails {
		t.Fatalf("Overlay.Kind = %v, want details", got)
	}

	tbl.Update(HideDetails{})
	if got := tbl.Render().Overlay.Kind; got != OverlayContextMenu {
		t.Errorf("Overlay.Kind = %v, want the context menu back", got)
	}
}

func TestLayout_InnerHeight(t *testing.T) {
	tests := []struct {
		name      string
		padding   Pair
		separator Pair
		want      int
	}{
		{"defaults", Pair{X: 10, Y: 5}, Pair{X: 1, Y: 1}, 25},
		{"no spacing", Pair{}, Pair{}, 36},
		{"max spacing clamps at zero", Pair{Y: 30}, Pair{Y: 5}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := NewDefault(WithPadding(tt.padding), WithSeparator(tt.separator))
			if got := tbl.Render().InnerHeight(common.RowHeight); got != tt.want {
				t.Errorf("InnerHeight() = %d, want %d", got, tt.want)
			}
		})
	}
}
