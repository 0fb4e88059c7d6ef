package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yllada/event-table/events"
	"github.com/yllada/event-table/shell"
	"github.com/yllada/event-table/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
	focusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#3584e4")).Bold(true)
	dialogStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	menuStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	toneWarning = lipgloss.NewStyle().Foreground(lipgloss.Color("#e5a50a"))
	toneSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("#2ec27e"))
	toneDanger  = lipgloss.NewStyle().Foreground(lipgloss.Color("#e01b24"))
)

const (
	sliderCells  = 20
	sliderFilled = "█"
	sliderEmpty  = "░"
	detailsCells = 3
)

func toneStyle(t events.Tone) lipgloss.Style {
	switch t {
	case events.ToneWarning:
		return toneWarning
	case events.ToneSuccess:
		return toneSuccess
	case events.ToneDanger:
		return toneDanger
	default:
		return lipgloss.NewStyle()
	}
}

// columnCells returns the width of each column in terminal cells.
func columnCells() []int {
	cells := make([]int, len(table.ColumnWidths))
	for i, px := range table.ColumnWidths {
		cells[i] = int(float32(px) / cellWidth)
	}
	cells[len(cells)-1] = detailsCells
	return cells
}

func gapCells(separator table.Pair) int {
	return int(separator.X + 0.5)
}

// detailsColumn is the first terminal column of the details button.
func detailsColumn(separator table.Pair) int {
	cells := columnCells()
	col := 0
	for _, w := range cells[:len(cells)-1] {
		col += w + gapCells(separator)
	}
	return col
}

// View implements tea.Model.
func (m Model) View() string {
	screen := m.shell.Render()

	switch {
	case screen.Confirming:
		return m.place(m.confirmView(screen))
	case screen.Table.Overlay.Kind == table.OverlayDetails:
		return m.place(m.detailsView(screen.Table.Overlay))
	}

	var b strings.Builder
	b.WriteString(m.tableView(screen.Table))
	if screen.Table.Overlay.Kind == table.OverlayContextMenu {
		b.WriteString("\n")
		b.WriteString(menuView(screen.Table.Overlay))
	}
	b.WriteString("\n\n")
	b.WriteString(m.slidersView(screen.Table.Sliders))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// place centres a dialog in the terminal, or returns it as is before the
// first size message.
func (m Model) place(body string) string {
	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m Model) confirmView(screen shell.Screen) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		headerStyle.Render(screen.Prompt),
		"",
		m.help.View(confirmKeys{m.keys}),
	)
	return dialogStyle.Render(body)
}

func (m Model) detailsView(overlay table.Overlay) string {
	lines := []string{headerStyle.Render(overlay.Title), ""}
	lines = append(lines, overlay.Lines...)
	for _, action := range overlay.Actions {
		lines = append(lines, "", dimStyle.Render("esc/enter "+strings.ToLower(action.Label)))
	}
	return dialogStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// tableView renders the header on the first line and one line per event.
func (m Model) tableView(layout table.Layout) string {
	cells := columnCells()
	gap := strings.Repeat(" ", gapCells(layout.Separator))
	pad := int(layout.Padding.X / cellWidth)

	cell := func(c table.Cell, col int, style lipgloss.Style) string {
		align := lipgloss.Left
		if c.Centered {
			align = lipgloss.Center
		}
		return style.
			Width(cells[col]).
			PaddingLeft(pad).
			Align(align).
			Render(truncate(c.Text, cells[col]-pad))
	}

	lines := make([]string, 0, len(layout.Rows)+1)

	header := make([]string, len(layout.Header))
	for col, title := range layout.Header {
		header[col] = cell(table.Cell{Text: title}, col, headerStyle)
	}
	lines = append(lines, strings.Join(header, gap))

	for _, row := range layout.Rows {
		parts := []string{
			cell(row.Name, 0, toneStyle(row.Name.Tone)),
			cell(row.Time, 1, toneStyle(row.Time.Tone)),
			cell(row.Price, 2, toneStyle(row.Price.Tone)),
			cell(row.Rating, 3, toneStyle(row.Rating.Tone)),
			cell(table.Cell{Text: table.DetailsGlyph, Centered: true}, 4, lipgloss.NewStyle()),
		}
		line := strings.Join(parts, gap)
		if row.Index == m.cursor {
			line = cursorStyle.Render(line)
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// truncate shortens s to n cells so every row stays on one line.
func truncate(s string, n int) string {
	if lipgloss.Width(s) <= n {
		return s
	}
	if n <= 1 {
		return "…"
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r)) > n-1 {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}

func menuView(overlay table.Overlay) string {
	body := []string{dimStyle.Render(fmt.Sprintf("Row %d", overlay.Row+1))}
	keys := []string{"enter", "esc"}
	for i, action := range overlay.Actions {
		hint := ""
		if i < len(keys) {
			hint = dimStyle.Render(keys[i] + " ")
		}
		body = append(body, hint+action.Label)
	}
	return menuStyle.
		MarginLeft(int(overlay.Indent / cellWidth)).
		Render(strings.Join(body, "\n"))
}

func (m Model) slidersView(sliders []table.SliderView) string {
	lines := make([]string, 0, len(sliders))
	for i, s := range sliders {
		tipX, tipY := s.Tooltips()
		x := m.bar(s, s.Value.X, m.focus == i*2) + " " + tipX
		y := m.bar(s, s.Value.Y, m.focus == i*2+1) + " " + tipY
		lines = append(lines, fmt.Sprintf("%-10s %s   %s", s.Label, x, y))
	}
	return strings.Join(lines, "\n")
}

func (m Model) bar(s table.SliderView, v float32, focused bool) string {
	filled := 0
	if s.Max > s.Min {
		filled = int((v - s.Min) / (s.Max - s.Min) * sliderCells)
	}
	bar := "[" + strings.Repeat(sliderFilled, filled) + strings.Repeat(sliderEmpty, sliderCells-filled) + "]"
	if focused {
		return focusStyle.Render(bar)
	}
	return bar
}
