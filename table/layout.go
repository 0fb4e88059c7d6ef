package table

import (
	"fmt"

	"github.com/yllada/event-table/common"
	"github.com/yllada/event-table/events"
)

// Column widths in pixels, in header order.
var ColumnWidths = []int{300, 80, 80, 80, 0}

// Header holds the column titles; the last column holds row actions.
var Header = []string{"Name", "Time", "Price", "Rating", ""}

// DetailsGlyph labels the per-row details button.
const DetailsGlyph = "⋮"

// Cell is one rendered table cell.
type Cell struct {
	Text     string
	Tone     events.Tone
	Centered bool
}

// RowView is one rendered event row.
type RowView struct {
	Index  int
	Name   Cell
	Time   Cell
	Price  Cell
	Rating Cell
	// Details is sent by the row's details button.
	Details Msg
}

// SliderView describes a labelled pair of sliders.
type SliderView struct {
	Label    string
	Min, Max float32
	Value    Pair
	// Change builds the message for a new value pair.
	Change func(Pair) Msg
}

// Tooltips returns the pixel labels shown next to each slider.
func (s SliderView) Tooltips() (string, string) {
	return fmt.Sprintf("%.0fpx", s.Value.X), fmt.Sprintf("%.0fpx", s.Value.Y)
}

// OverlayKind says which overlay, if any, covers the table.
type OverlayKind int

const (
	OverlayNone OverlayKind = iota
	OverlayContextMenu
	OverlayDetails
)

// Action is a labelled button inside an overlay.
type Action struct {
	Label string
	Msg   Msg
}

// Overlay is the context menu or the details modal.
type Overlay struct {
	Kind OverlayKind
	Row  int
	// Indent shifts the context menu towards the cursor.
	Indent float32
	// Title and Lines are the details modal body.
	Title   string
	Lines   []string
	Actions []Action
}

// Layout is everything a front end needs to draw the table.
type Layout struct {
	Header    []string
	Rows      []RowView
	Padding   Pair
	Separator Pair
	Sliders   []SliderView
	Overlay   Overlay
}

// InnerHeight is the content height that keeps a band of the given
// height once vertical padding on both sides and the separator gap are
// added. Widgets sized this way line up with RowAt.
func (l Layout) InnerHeight(band float32) int {
	inner := band - 2*l.Padding.Y - l.Separator.Y
	if inner < 0 {
		return 0
	}
	return int(inner)
}

// Render builds the layout for the current state. It has no side effects.
func (t *Table) Render() Layout {
	l := Layout{
		Header:    Header,
		Rows:      make([]RowView, 0, len(t.events)),
		Padding:   t.padding,
		Separator: t.separator,
		Sliders: []SliderView{
			{
				Label: "Padding", Min: common.PaddingMin, Max: common.PaddingMax, Value: t.padding,
				Change: func(p Pair) Msg { return PaddingChanged{Value: p} },
			},
			{
				Label: "Separator", Min: common.SeparatorMin, Max: common.SeparatorMax, Value: t.separator,
				Change: func(p Pair) Msg { return SeparatorChanged{Value: p} },
			},
		},
	}

	for i, ev := range t.events {
		l.Rows = append(l.Rows, RowView{
			Index:   i,
			Name:    Cell{Text: ev.Name},
			Time:    Cell{Text: ev.TimeText(), Tone: ev.DurationTone()},
			Price:   Cell{Text: ev.PriceText(), Tone: ev.PriceTone(), Centered: ev.IsFree()},
			Rating:  Cell{Text: ev.RatingText(), Tone: ev.RatingTone()},
			Details: ShowDetails{Row: i},
		})
	}

	l.Overlay = t.overlay()
	return l
}

// overlay picks the details modal over the context menu when both apply.
func (t *Table) overlay() Overlay {
	if row, ok := t.Selected(); ok && row < len(t.events) {
		ev := t.events[row]
		return Overlay{
			Kind:  OverlayDetails,
			Row:   row,
			Title: "Name: " + ev.Name,
			Lines: []string{
				"Duration: " + ev.TimeText(),
				fmt.Sprintf("Price: $%.2f", ev.Price),
				"Rating: " + ev.RatingText(),
			},
			Actions: []Action{{Label: "Close", Msg: HideDetails{}}},
		}
	}

	if menu, ok := t.ContextMenu(); ok {
		var indent float32
		if menu.At.X > 0 {
			indent = common.Clamp(menu.At.X-common.ContextMenuIndentOffset, 0, common.ContextMenuMaxIndent)
		}
		return Overlay{
			Kind:   OverlayContextMenu,
			Row:    menu.Row,
			Indent: indent,
			Actions: []Action{
				{Label: "Show details", Msg: ShowDetails{Row: menu.Row}},
				{Label: "Close menu", Msg: HideContext{}},
			},
		}
	}

	return Overlay{Kind: OverlayNone}
}
