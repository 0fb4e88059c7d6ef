// Package shell is the top-level application state: the exit
// confirmation flow wrapped around the event table, plus routing of
// tray actions.
//
// Shutdown is requested, never forced: Update reports EffectQuit and
// cancels the shell context so front ends and background workers can
// stop in their own way.
package shell

import (
	"context"
	"sync"

	"github.com/yllada/event-table/common"
	"github.com/yllada/event-table/table"
	"github.com/yllada/event-table/tray"
)

// ConfirmPrompt is shown while an exit is pending.
const ConfirmPrompt = "Are you sure you want to exit?"

// Effect tells the front end what to do after a message.
type Effect int

const (
	EffectNone Effect = iota
	EffectShowWindow
	EffectQuit
)

func (e Effect) String() string {
	switch e {
	case EffectShowWindow:
		return "ShowWindow"
	case EffectQuit:
		return "Quit"
	default:
		return "None"
	}
}

// Msg is a message understood by Shell.Update.
type Msg interface {
	shellMsg()
}

// CloseRequested is sent when the window manager asks to close the window.
type CloseRequested struct{}

// RequestExit is sent by an explicit quit control.
type RequestExit struct{}

// ConfirmExit accepts the pending exit.
type ConfirmExit struct{}

// CancelExit dismisses the pending exit.
type CancelExit struct{}

// TableMsg forwards a message to the table.
type TableMsg struct{ Msg table.Msg }

// TrayMsg carries an action resolved from a tray click.
type TrayMsg struct{ Action tray.Action }

func (CloseRequested) shellMsg() {}
func (RequestExit) shellMsg()    {}
func (ConfirmExit) shellMsg()    {}
func (CancelExit) shellMsg()     {}
func (TableMsg) shellMsg()       {}
func (TrayMsg) shellMsg()        {}

// Shell owns the confirmation flag and the table. It is driven from a
// single UI goroutine; only Done and Err are safe to use elsewhere.
type Shell struct {
	confirming bool
	table      *table.Table

	ctx      context.Context
	cancel   context.CancelFunc
	stopOnce sync.Once
}

// New creates a shell around tbl. The shell context derives from parent
// so an external signal also counts as a shutdown request.
func New(parent context.Context, tbl *table.Table) *Shell {
	ctx, cancel := context.WithCancel(parent)
	return &Shell{
		table:  tbl,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Update applies msg and returns what the front end should do next.
// Table messages are applied whether or not an exit is pending.
func (s *Shell) Update(msg Msg) Effect {
	switch m := msg.(type) {
	case CloseRequested, RequestExit:
		s.confirming = true
	case CancelExit:
		s.confirming = false
	case ConfirmExit:
		s.shutdown("exit confirmed")
		return EffectQuit
	case TableMsg:
		if m.Msg != nil {
			s.table.Update(m.Msg)
		}
	case TrayMsg:
		switch m.Action {
		case tray.ActionQuit:
			s.shutdown("quit from tray")
			return EffectQuit
		case tray.ActionShow:
			return EffectShowWindow
		}
	}
	return EffectNone
}

func (s *Shell) shutdown(reason string) {
	s.stopOnce.Do(func() {
		common.LogInfo("Shutdown requested: %s", reason)
		s.cancel()
	})
}

// Confirming reports whether the exit confirmation is showing.
func (s *Shell) Confirming() bool {
	return s.confirming
}

// Table returns the table component.
func (s *Shell) Table() *table.Table {
	return s.table
}

// Context is cancelled once shutdown has been requested.
func (s *Shell) Context() context.Context {
	return s.ctx
}

// Done is closed once shutdown has been requested.
func (s *Shell) Done() <-chan struct{} {
	return s.ctx.Done()
}

// Screen is the rendered shell.
type Screen struct {
	Confirming bool
	Prompt     string
	Confirm    Msg
	Cancel     Msg
	Table      table.Layout
}

// Render builds the screen for the current state.
func (s *Shell) Render() Screen {
	sc := Screen{
		Confirming: s.confirming,
		Table:      s.table.Render(),
	}
	if s.confirming {
		sc.Prompt = ConfirmPrompt
		sc.Confirm = ConfirmExit{}
		sc.Cancel = CancelExit{}
	}
	return sc
}
