package ui

import (
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/yllada/event-table/common"
	"github.com/yllada/event-table/config"
	"github.com/yllada/event-table/shell"
	"github.com/yllada/event-table/tray"
)

// Application represents the main application
type Application struct {
	app     *gtk.Application
	window  *MainWindow
	shell   *shell.Shell
	config  *config.Config
	version string

	bridge *tray.Bridge
	tray   *tray.Indicator
}

// Options configures a new Application.
type Options struct {
	Shell   *shell.Shell
	Config  *config.Config
	Version string
	// Bridge and Indicator are nil when the tray is disabled.
	Bridge    *tray.Bridge
	Indicator *tray.Indicator
}

// NewApplication creates a new application
func NewApplication(opts Options) *Application {
	app := gtk.NewApplication(common.AppID, gio.ApplicationFlagsNone)

	application := &Application{
		app:     app,
		shell:   opts.Shell,
		config:  opts.Config,
		version: opts.Version,
		bridge:  opts.Bridge,
		tray:    opts.Indicator,
	}

	app.ConnectActivate(application.onActivate)
	app.ConnectShutdown(application.onShutdown)

	return application
}

// Run runs the application
func (a *Application) Run(args []string) int {
	return a.app.Run(args)
}

// onActivate is called when the application is activated
func (a *Application) onActivate() {
	if a.window != nil {
		a.window.Present()
		return
	}

	a.ApplyTheme(a.config.Theme)
	LoadStyles()

	a.window = NewMainWindow(a)
	a.window.Render()
	a.window.Show()

	if a.tray != nil {
		go a.tray.Run(a.shell.Context())
	}

	// The tick also notices shutdown requested from outside the UI,
	// such as SIGTERM cancelling the shell context.
	glib.TimeoutAdd(uint(common.TrayPollInterval.Milliseconds()), a.onTick)
}

func (a *Application) onShutdown() {
	common.LogInfo("GTK application shut down")
}

// onTick drains tray clicks into the shell. Returning false stops the timer.
func (a *Application) onTick() bool {
	if a.bridge != nil {
		for _, action := range a.bridge.Poll() {
			common.LogDebug("Tray action: %s", action)
			a.Dispatch(shell.TrayMsg{Action: action})
		}
	}

	select {
	case <-a.shell.Done():
		a.app.Quit()
		return false
	default:
		return true
	}
}

// Dispatch applies msg to the shell and carries out the resulting effect.
func (a *Application) Dispatch(msg shell.Msg) {
	switch a.shell.Update(msg) {
	case shell.EffectQuit:
		a.Quit()
		return
	case shell.EffectShowWindow:
		if a.window != nil {
			a.window.Present()
		}
	}
	if a.window != nil {
		a.window.Render()
	}
}

// ApplyTheme applies the specified theme to the application.
// Supported values: "auto" (system default), "light", "dark"
func (a *Application) ApplyTheme(theme string) {
	settings := gtk.SettingsGetDefault()
	if settings == nil {
		return
	}

	switch theme {
	case common.ThemeLight:
		settings.SetObjectProperty("gtk-application-prefer-dark-theme", false)
	case common.ThemeDark:
		settings.SetObjectProperty("gtk-application-prefer-dark-theme", true)
	default:
		// "auto" leaves the system preference alone
	}
}

// Quit closes the application
func (a *Application) Quit() {
	a.app.Quit()
}
