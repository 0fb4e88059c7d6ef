// Package table implements the event table component: its state, the
// messages that mutate it and the layout it renders to.
//
// Front ends feed Msg values into Update and rebuild their widgets from
// Render. The table never touches a widget toolkit itself.
package table

import (
	"github.com/yllada/event-table/common"
	"github.com/yllada/event-table/events"
)

// Pair is a two-value slider setting (horizontal, vertical).
type Pair struct {
	X, Y float32
}

// Point is a position in window pixels.
type Point struct {
	X, Y float32
}

// ContextMenu records the row a right click landed on and where.
type ContextMenu struct {
	Row int
	At  Point
}

// Table holds the event list and all UI-only state around it.
type Table struct {
	events    []events.Event
	padding   Pair
	separator Pair

	selected    int // -1 when nothing is selected
	lastCursor  *Point
	contextMenu *ContextMenu
}

// Option customizes a new Table.
type Option func(*Table)

// WithPadding seeds the padding sliders.
func WithPadding(p Pair) Option {
	return func(t *Table) { t.padding = p }
}

// WithSeparator seeds the separator sliders.
func WithSeparator(p Pair) Option {
	return func(t *Table) { t.separator = p }
}

// New creates a table over list.
func New(list []events.Event, opts ...Option) *Table {
	t := &Table{
		events:    list,
		padding:   Pair{X: 10, Y: 5},
		separator: Pair{X: 1, Y: 1},
		selected:  -1,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewDefault creates a table over the sample fixture.
func NewDefault(opts ...Option) *Table {
	return New(events.Fixture(), opts...)
}

// Update applies a message. Invalid row indices are accepted and simply
// render nothing.
func (t *Table) Update(msg Msg) {
	switch m := msg.(type) {
	case PaddingChanged:
		t.padding = m.Value
	case SeparatorChanged:
		t.separator = m.Value
	case ShowDetails:
		t.selected = m.Row
	case HideDetails:
		t.selected = -1
	case HideContext:
		t.contextMenu = nil
	case Pointer:
		t.handlePointer(m.Event)
	case Description:
		for _, ev := range ParseDescription(m.Text) {
			t.handlePointer(ev)
		}
	}
}

// Events returns the rows shown by the table.
func (t *Table) Events() []events.Event {
	return t.events
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.events)
}

// Padding returns the current padding pair.
func (t *Table) Padding() Pair {
	return t.padding
}

// Separator returns the current separator pair.
func (t *Table) Separator() Pair {
	return t.separator
}

// Selected returns the row chosen for the details view, if any. The index
// is not guaranteed to be in range.
func (t *Table) Selected() (int, bool) {
	return t.selected, t.selected >= 0
}

// LastCursor returns the last pointer position seen, if any.
func (t *Table) LastCursor() (Point, bool) {
	if t.lastCursor == nil {
		return Point{}, false
	}
	return *t.lastCursor, true
}

// Event returns the event at row, reporting false when row is out of range.
func (t *Table) Event(row int) (events.Event, bool) {
	if row < 0 || row >= len(t.events) {
		return events.Event{}, false
	}
	return t.events[row], true
}

// ContextMenu returns the open context menu, if any.
func (t *Table) ContextMenu() (ContextMenu, bool) {
	if t.contextMenu == nil {
		return ContextMenu{}, false
	}
	return *t.contextMenu, true
}

// RowAt maps a window y coordinate to a row index. It reports false for
// the header and for positions below the last row.
func (t *Table) RowAt(y float32) (int, bool) {
	if y <= common.HeaderHeight {
		return 0, false
	}
	// Compare before converting: huge or NaN values have no int form.
	idx := (y - common.HeaderHeight) / common.RowHeight
	if !(idx < float32(len(t.events))) {
		return 0, false
	}
	return int(idx), true
}
