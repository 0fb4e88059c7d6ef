package table

import "github.com/yllada/event-table/common"

// PointerKind distinguishes motion from button transitions.
type PointerKind int

const (
	PointerMoved PointerKind = iota
	PointerPressed
	PointerReleased
)

func (k PointerKind) String() string {
	switch k {
	case PointerMoved:
		return "Moved"
	case PointerPressed:
		return "Pressed"
	case PointerReleased:
		return "Released"
	default:
		return "Unknown"
	}
}

// Button identifies a mouse button.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "Left"
	case ButtonMiddle:
		return "Middle"
	case ButtonRight:
		return "Right"
	default:
		return "None"
	}
}

// PointerEvent is a pointer event in window pixels. Located is false when
// the source did not report a position; the last known cursor is used.
type PointerEvent struct {
	Kind    PointerKind
	Button  Button
	At      Point
	Located bool
}

// MovedTo builds a located motion event.
func MovedTo(x, y float32) PointerEvent {
	return PointerEvent{Kind: PointerMoved, At: Point{X: x, Y: y}, Located: true}
}

// PressedAt builds a located button press.
func PressedAt(b Button, x, y float32) PointerEvent {
	return PointerEvent{Kind: PointerPressed, Button: b, At: Point{X: x, Y: y}, Located: true}
}

func (t *Table) handlePointer(ev PointerEvent) {
	if ev.Located {
		at := ev.At
		t.lastCursor = &at
	}

	if ev.Kind != PointerPressed || ev.Button != ButtonRight || t.lastCursor == nil {
		return
	}

	cursor := *t.lastCursor
	row, ok := t.RowAt(cursor.Y)
	if !ok {
		return
	}
	common.LogDebug("Context menu opened for row %d at (%.0f, %.0f)", row, cursor.X, cursor.Y)
	t.contextMenu = &ContextMenu{Row: row, At: cursor}
}
