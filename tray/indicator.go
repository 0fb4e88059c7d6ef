package tray

import (
	"context"

	"fyne.io/systray"

	"github.com/yllada/event-table/common"
)

// Indicator shows the tray icon and its menu.
type Indicator struct {
	bridge *Bridge
	icon   *Icon
}

// NewIndicator creates an indicator whose menu is the bridge registry.
func NewIndicator(bridge *Bridge, icon *Icon) *Indicator {
	return &Indicator{
		bridge: bridge,
		icon:   icon,
	}
}

// Run shows the tray icon and blocks until ctx is done.
// Call it from its own goroutine.
func (i *Indicator) Run(ctx context.Context) {
	systray.Run(func() { i.onReady(ctx) }, i.onExit)
}

// onReady builds the menu from the registry. The registry is complete
// before Run, so every click resolves.
func (i *Indicator) onReady(ctx context.Context) {
	w, h := i.icon.Size()
	common.LogDebug("Tray: icon %dx%d", w, h)
	systray.SetIcon(i.icon.PNG)
	systray.SetTitle(common.AppName)
	systray.SetTooltip(common.AppName)

	entries := i.bridge.Registry().Entries()
	for n, entry := range entries {
		if entry.Action == ActionQuit && n > 0 {
			systray.AddSeparator()
		}
		item := systray.AddMenuItem(entry.Label, entry.Tooltip)
		go i.bridge.Pump(ctx, item.ClickedCh, entry.ID)
	}
	common.LogInfo("Tray: menu ready with %d items", len(entries))

	go func() {
		<-ctx.Done()
		systray.Quit()
	}()
}

func (i *Indicator) onExit() {
	common.LogInfo("Tray indicator stopped")
}
