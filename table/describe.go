package table

import (
	"strconv"
	"strings"
)

// Markers recognised in textual event dumps. Different window backends
// print slightly different names for the same event.
var (
	moveMarkers  = []string{"CursorMoved", "Moved(", "MovedPoint"}
	pressMarkers = []string{"MouseInput", "MouseButton", "ButtonPressed", "Pressed"}
)

const rightMarker = "Right"

// ParseDescription recovers pointer events from a textual event dump such
// as "CursorMoved { position: Point { x: 12, y: 100 } }". A dump may yield
// a motion event, a right-button press, both (motion first) or nothing.
// Parsing is best effort: anything unrecognised is ignored.
func ParseDescription(text string) []PointerEvent {
	var out []PointerEvent

	if containsAny(text, moveMarkers) {
		x, okX := numberAfter(text, "x:")
		y, okY := numberAfter(text, "y:")
		if okX && okY {
			out = append(out, MovedTo(x, y))
		}
	}

	if containsAny(text, pressMarkers) && strings.Contains(text, rightMarker) {
		out = append(out, PointerEvent{Kind: PointerPressed, Button: ButtonRight})
	}

	return out
}

// Describe renders ev in the dump format ParseDescription reads.
func Describe(ev PointerEvent) string {
	var b strings.Builder
	switch ev.Kind {
	case PointerMoved:
		writePosition(&b, ev.At)
		return b.String()
	case PointerPressed:
		b.WriteString("ButtonPressed(")
	default:
		b.WriteString("ButtonReleased(")
	}
	b.WriteString(ev.Button.String())
	b.WriteString(")")
	if ev.Located {
		b.WriteString(" at ")
		writePosition(&b, ev.At)
	}
	return b.String()
}

func writePosition(b *strings.Builder, p Point) {
	b.WriteString("CursorMoved { position: Point { x: ")
	b.WriteString(formatCoord(p.X))
	b.WriteString(", y: ")
	b.WriteString(formatCoord(p.Y))
	b.WriteString(" } }")
}

func formatCoord(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// numberAfter parses the number following the first occurrence of label.
func numberAfter(s, label string) (float32, bool) {
	idx := strings.Index(s, label)
	if idx < 0 {
		return 0, false
	}
	tail := strings.TrimLeft(s[idx+len(label):], " \t")
	end := strings.IndexFunc(tail, func(r rune) bool {
		return !(r >= '0' && r <= '9' || r == '.' || r == '-')
	})
	if end < 0 {
		end = len(tail)
	}
	v, err := strconv.ParseFloat(tail[:end], 32)
	if err != nil {
		return 0, false
	}
	return float32(v), true
}
