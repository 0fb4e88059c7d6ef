package tray

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/yllada/event-table/common"
)

type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) record(level, msg string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, level+" "+fmt.Sprintf(msg, args...))
}

func (l *recordingLogger) Debug(msg string, args ...interface{}) { l.record("DEBUG", msg, args...) }
func (l *recordingLogger) Info(msg string, args ...interface{})  { l.record("INFO", msg, args...) }
func (l *recordingLogger) Warn(msg string, args ...interface{})  { l.record("WARN", msg, args...) }
func (l *recordingLogger) Error(msg string, args ...interface{}) { l.record("ERROR", msg, args...) }

func (l *recordingLogger) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.lines)
}

func TestAction_String(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{ActionNone, "None"},
		{ActionShow, "Show"},
		{ActionQuit, "Quit"},
		{Action(9), "None"},
	}
	for _, tt := range tests {
		if got := tt.action.String(); got != tt.want {
			t.Errorf("Action(%d).String() = %q, want %q", tt.action, got, tt.want)
		}
	}
}

func TestDefaultRegistry_Resolve(t *testing.T) {
	reg := DefaultRegistry()

	showID, ok := reg.Lookup(LabelShow)
	if !ok {
		t.Fatal("Show should be registered")
	}
	quitID, ok := reg.Lookup(LabelQuit)
	if !ok {
		t.Fatal("Quit should be registered")
	}
	if showID == quitID {
		t.Fatal("items need distinct ids")
	}

	if got := reg.Resolve(showID); got != ActionShow {
		t.Errorf("Resolve(show) = %v", got)
	}
	if got := reg.Resolve(quitID); got != ActionQuit {
		t.Errorf("Resolve(quit) = %v", got)
	}
	for _, other := range []ItemID{0, quitID + 1, 9999} {
		if got := reg.Resolve(other); got != ActionNone {
			t.Errorf("Resolve(%d) = %v, want none", other, got)
		}
	}
	if _, ok := reg.Lookup("Settings"); ok {
		t.Error("Lookup of an unregistered label should fail")
	}
}

func TestRegistry_Entries(t *testing.T) {
	reg := DefaultRegistry()
	entries := reg.Entries()

	if len(entries) != 2 || entries[0].Label != LabelShow || entries[1].Label != LabelQuit {
		t.Fatalf("Entries() = %+v", entries)
	}

	entries[0].Label = "changed"
	if reg.Entries()[0].Label != LabelShow {
		t.Error("Entries should return a copy")
	}
}

func TestRegistry_DuplicateLabel(t *testing.T) {
	reg := NewRegistry()
	if _, err := reg.Register("Show", "", ActionShow); err != nil {
		t.Fatal(err)
	}
	if _, err := reg.Register("Show", "", ActionQuit); !errors.Is(err, common.ErrTrayMenu) {
		t.Errorf("Register() error = %v, want ErrTrayMenu", err)
	}
}

func TestBridge_PollResolves(t *testing.T) {
	reg := DefaultRegistry()
	log := &recordingLogger{}
	b := NewBridge(reg, log)

	showID, _ := reg.Lookup(LabelShow)
	quitID, _ := reg.Lookup(LabelQuit)

	for _, id := range []ItemID{showID, 77, quitID} {
		if err := b.Forward(id); err != nil {
			t.Fatalf("Forward(%d) error = %v", id, err)
		}
	}

	got := b.Poll()
	if len(got) != 2 || got[0] != ActionShow || got[1] != ActionQuit {
		t.Errorf("Poll() = %v, want [Show Quit]", got)
	}
	if again := b.Poll(); len(again) != 0 {
		t.Errorf("second Poll() = %v, want empty", again)
	}
}

func TestBridge_FullQueueDrops(t *testing.T) {
	log := &recordingLogger{}
	b := NewBridgeSize(DefaultRegistry(), 2, log)

	_ = b.Forward(1)
	_ = b.Forward(2)
	err := b.Forward(1)

	if !errors.Is(err, common.ErrTrayQueueFull) {
		t.Errorf("Forward on a full queue error = %v", err)
	}
	if log.count() != 1 {
		t.Errorf("expected one logged warning, got %d", log.count())
	}
	if ids := b.Drain(); len(ids) != 2 {
		t.Errorf("Drain() = %v, want the two queued ids", ids)
	}
	if err := b.Forward(2); err != nil {
		t.Errorf("Forward after drain error = %v", err)
	}
}

func TestBridge_Pump(t *testing.T) {
	reg := DefaultRegistry()
	b := NewBridge(reg, &recordingLogger{})
	quitID, _ := reg.Lookup(LabelQuit)

	ctx, cancel := context.WithCancel(context.Background())
	clicks := make(chan struct{})
	done := make(chan struct{})
	go func() {
		b.Pump(ctx, clicks, quitID)
		close(done)
	}()

	clicks <- struct{}{}
	clicks <- struct{}{}
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Pump should return after cancel")
	}

	got := b.Poll()
	if len(got) != 2 || got[0] != ActionQuit {
		t.Errorf("Poll() = %v, want two Quit actions", got)
	}
}

func TestBridge_PumpStopsOnClose(t *testing.T) {
	b := NewBridge(DefaultRegistry(), &recordingLogger{})
	clicks := make(chan struct{})
	close(clicks)

	finished := make(chan struct{})
	go func() {
		b.Pump(context.Background(), clicks, 1)
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("Pump should return when the click channel closes")
	}
}

func TestLoadIcon(t *testing.T) {
	icon, err := LoadIcon()
	if err != nil {
		t.Fatalf("LoadIcon() error = %v", err)
	}
	if w, h := icon.Size(); w != 22 || h != 22 {
		t.Errorf("Size() = %dx%d, want 22x22", w, h)
	}
	if len(icon.Pixels.Pix) != 22*22*4 {
		t.Errorf("len(Pix) = %d", len(icon.Pixels.Pix))
	}
	// The header band is opaque blue.
	if c := icon.Pixels.RGBAAt(5, 5); c.B < 200 || c.A != 255 {
		t.Errorf("pixel (5,5) = %+v", c)
	}
}

func TestDecodeIcon_Invalid(t *testing.T) {
	_, err := DecodeIcon([]byte("not a png"))
	if !errors.Is(err, common.ErrIconDecode) {
		t.Errorf("DecodeIcon() error = %v, want ErrIconDecode", err)
	}
}
