package shell

import (
	"context"
	"testing"

	"github.com/yllada/event-table/table"
	"github.com/yllada/event-table/tray"
)

func newShell(t *testing.T) *Shell {
	t.Helper()
	return New(context.Background(), table.NewDefault())
}

func isDone(s *Shell) bool {
	select {
	case <-s.Done():
		return true
	default:
		return false
	}
}

func TestShell_InitialState(t *testing.T) {
	s := newShell(t)

	if s.Confirming() {
		t.Error("new shell should not be confirming")
	}
	if isDone(s) {
		t.Error("new shell should not be shut down")
	}
	if sc := s.Render(); sc.Confirming || sc.Prompt != "" {
		t.Errorf("Render() = %+v", sc)
	}
}

func TestShell_ExitRequestsConfirm(t *testing.T) {
	for _, msg := range []Msg{CloseRequested{}, RequestExit{}} {
		s := newShell(t)
		if eff := s.Update(msg); eff != EffectNone {
			t.Errorf("%T: effect = %v, want none", msg, eff)
		}
		if !s.Confirming() {
			t.Errorf("%T should start the exit confirmation", msg)
		}
		sc := s.Render()
		if sc.Prompt != ConfirmPrompt || sc.Confirm != (ConfirmExit{}) || sc.Cancel != (CancelExit{}) {
			t.Errorf("%T: Render() = %+v", msg, sc)
		}
	}
}

func TestShell_CancelKeepsTable(t *testing.T) {
	s := newShell(t)
	s.Update(TableMsg{Msg: table.PaddingChanged{Value: table.Pair{X: 4, Y: 2}}})
	s.Update(TableMsg{Msg: table.ShowDetails{Row: 3}})

	s.Update(CloseRequested{})
	s.Update(CancelExit{})

	if s.Confirming() {
		t.Error("CancelExit should return to the normal state")
	}
	if isDone(s) {
		t.Error("CancelExit must not shut down")
	}
	if s.Table().Padding() != (table.Pair{X: 4, Y: 2}) {
		t.Errorf("padding changed to %+v", s.Table().Padding())
	}
	if row, ok := s.Table().Selected(); !ok || row != 3 {
		t.Errorf("selection changed to %d, %v", row, ok)
	}
}

func TestShell_ConfirmShutsDown(t *testing.T) {
	s := newShell(t)
	s.Update(RequestExit{})

	if eff := s.Update(ConfirmExit{}); eff != EffectQuit {
		t.Errorf("ConfirmExit effect = %v, want quit", eff)
	}
	if !isDone(s) {
		t.Error("ConfirmExit should cancel the shell context")
	}

	// A second confirm is harmless.
	if eff := s.Update(ConfirmExit{}); eff != EffectQuit {
		t.Errorf("second ConfirmExit effect = %v", eff)
	}
}

func TestShell_TrayActions(t *testing.T) {
	tests := []struct {
		action tray.Action
		effect Effect
		done   bool
	}{
		{tray.ActionNone, EffectNone, false},
		{tray.ActionShow, EffectShowWindow, false},
		{tray.ActionQuit, EffectQuit, true},
	}

	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			s := newShell(t)
			if eff := s.Update(TrayMsg{Action: tt.action}); eff != tt.effect {
				t.Errorf("effect = %v, want %v", eff, tt.effect)
			}
			if isDone(s) != tt.done {
				t.Errorf("done = %v, want %v", isDone(s), tt.done)
			}
		})
	}
}

func TestShell_TableMessagesWhileConfirming(t *testing.T) {
	s := newShell(t)
	s.Update(CloseRequested{})
	s.Update(TableMsg{Msg: table.SeparatorChanged{Value: table.Pair{X: 2, Y: 3}}})

	if s.Table().Separator() != (table.Pair{X: 2, Y: 3}) {
		t.Error("table messages should apply while the confirmation is showing")
	}
	if !s.Confirming() {
		t.Error("table messages should not dismiss the confirmation")
	}
}

func TestShell_ParentCancellation(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	s := New(parent, table.NewDefault())

	cancel()
	if !isDone(s) {
		t.Error("cancelling the parent context should shut the shell down")
	}
}

func TestShell_NilTableMsg(t *testing.T) {
	s := newShell(t)
	if eff := s.Update(TableMsg{}); eff != EffectNone {
		t.Errorf("effect = %v", eff)
	}
}
