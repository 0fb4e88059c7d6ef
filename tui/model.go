// Package tui is the terminal front end: a bubbletea program over the
// same shell the desktop window drives.
//
// Terminal cells are mapped into the table's pixel space so mouse input
// goes through the same pointer handling as the desktop window. Each
// line is one header or row band and each column is cellWidth pixels.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yllada/event-table/common"
	"github.com/yllada/event-table/shell"
	"github.com/yllada/event-table/table"
	"github.com/yllada/event-table/tray"
)

// cellWidth is the width of one terminal column in table pixels.
const cellWidth float32 = 8

// tickMsg drives tray polling and shutdown detection.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(common.TrayPollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the bubbletea model.
type Model struct {
	shell  *shell.Shell
	bridge *tray.Bridge
	keys   keyMap
	help   help.Model

	// cursor is the highlighted row.
	cursor int
	// focus selects one of the four slider values: slider*2 + axis.
	focus int

	width, height int
}

// New creates a model over sh. bridge may be nil when the tray is off.
func New(sh *shell.Shell, bridge *tray.Bridge) Model {
	return Model{
		shell:  sh,
		bridge: bridge,
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tick()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tickMsg:
		cmd = m.handleTick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	case tea.MouseMsg:
		cmd = m.handleMouse(msg)
	}
	return m, cmd
}

func (m *Model) handleTick() tea.Cmd {
	if m.bridge != nil {
		for _, action := range m.bridge.Poll() {
			common.LogDebug("Tray action: %s", action)
			if cmd := m.dispatch(shell.TrayMsg{Action: action}); cmd != nil {
				return cmd
			}
		}
	}

	select {
	case <-m.shell.Done():
		return tea.Quit
	default:
		return tick()
	}
}

// dispatch applies msg to the shell and turns the effect into a command.
func (m *Model) dispatch(msg shell.Msg) tea.Cmd {
	switch effect := m.shell.Update(msg); effect {
	case shell.EffectQuit:
		return tea.Quit
	case shell.EffectShowWindow:
		// The terminal is already in front.
		common.LogDebug("Ignoring %s effect in terminal mode", effect)
	}
	return nil
}

func (m *Model) send(msg table.Msg) tea.Cmd {
	return m.dispatch(shell.TableMsg{Msg: msg})
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.shell.Confirming() {
		switch {
		case key.Matches(msg, m.keys.Confirm):
			return m.dispatch(shell.ConfirmExit{})
		case key.Matches(msg, m.keys.Cancel):
			return m.dispatch(shell.CancelExit{})
		}
		return nil
	}

	tbl := m.shell.Table()
	overlay := tbl.Render().Overlay

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.dispatch(shell.RequestExit{})

	case key.Matches(msg, m.keys.Close):
		switch overlay.Kind {
		case table.OverlayDetails:
			return m.send(table.HideDetails{})
		case table.OverlayContextMenu:
			return m.send(table.HideContext{})
		}

	case key.Matches(msg, m.keys.Details):
		switch overlay.Kind {
		case table.OverlayDetails:
			return m.send(table.HideDetails{})
		case table.OverlayContextMenu:
			return m.send(table.ShowDetails{Row: overlay.Row})
		default:
			if tbl.Len() > 0 {
				return m.send(table.ShowDetails{Row: m.cursor})
			}
		}

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < tbl.Len()-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Menu):
		// A right click at the start of the highlighted row.
		x, y := m.toPixels(0, m.cursor+1)
		m.send(table.Pointer{Event: table.MovedTo(x, y)})
		return m.send(table.Pointer{Event: table.PressedAt(table.ButtonRight, x, y)})

	case key.Matches(msg, m.keys.Focus):
		m.focus = (m.focus + 1) % 4

	case key.Matches(msg, m.keys.Less):
		return m.nudge(-1)

	case key.Matches(msg, m.keys.More):
		return m.nudge(1)
	}
	return nil
}

// nudge moves the focused slider value by delta within its range.
func (m *Model) nudge(delta float32) tea.Cmd {
	sliders := m.shell.Table().Render().Sliders
	slider := sliders[m.focus/2]

	value := slider.Value
	if m.focus%2 == 0 {
		value.X = common.Clamp(value.X+delta, slider.Min, slider.Max)
	} else {
		value.Y = common.Clamp(value.Y+delta, slider.Min, slider.Max)
	}
	return m.send(slider.Change(value))
}

// toPixels maps a terminal cell to the centre of its table pixel band.
func (m *Model) toPixels(col, line int) (float32, float32) {
	x := float32(col) * cellWidth
	y := float32(line)*common.RowHeight + common.RowHeight/2
	return x, y
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	x, y := m.toPixels(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionMotion:
		return m.send(table.Pointer{Event: table.MovedTo(x, y)})

	case tea.MouseActionPress:
		button := buttonFromTea(msg.Button)
		if button == table.ButtonNone {
			return nil
		}
		if cmd := m.send(table.Pointer{Event: table.PressedAt(button, x, y)}); cmd != nil {
			return cmd
		}
		if button == table.ButtonLeft && !m.shell.Confirming() {
			return m.clickRow(msg.X, msg.Y)
		}
	}
	return nil
}

// clickRow highlights the clicked row and opens details from its button.
func (m *Model) clickRow(col, line int) tea.Cmd {
	row := line - 1
	if row < 0 || row >= m.shell.Table().Len() {
		return nil
	}
	m.cursor = row

	if col >= detailsColumn(m.shell.Table().Separator()) {
		return m.send(table.ShowDetails{Row: row})
	}
	return nil
}

func buttonFromTea(b tea.MouseButton) table.Button {
	switch b {
	case tea.MouseButtonLeft:
		return table.ButtonLeft
	case tea.MouseButtonMiddle:
		return table.ButtonMiddle
	case tea.MouseButtonRight:
		return table.ButtonRight
	default:
		return table.ButtonNone
	}
}

// Cursor returns the highlighted row.
func (m Model) Cursor() int {
	return m.cursor
}

// Run starts the terminal program and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, sh *shell.Shell, bridge *tray.Bridge) error {
	p := tea.NewProgram(
		New(sh, bridge),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
