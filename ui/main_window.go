package ui

import (
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/yllada/event-table/common"
	"github.com/yllada/event-table/shell"
	"github.com/yllada/event-table/table"
)

// MainWindow represents the main application window.
type MainWindow struct {
	app       *Application
	window    *gtk.ApplicationWindow
	headerBar *gtk.HeaderBar
	content   *gtk.Box
	tableView *TableView

	// current is the widget shown inside content.
	current gtk.Widgetter
}

// NewMainWindow creates a new main window.
func NewMainWindow(app *Application) *MainWindow {
	mw := &MainWindow{
		app: app,
	}

	mw.window = gtk.NewApplicationWindow(app.app)
	mw.window.SetTitle(common.AppName)
	mw.window.SetDefaultSize(app.config.WindowWidth, app.config.WindowHeight)
	mw.window.SetSizeRequest(common.MinWindowWidth, common.MinWindowHeight)

	// Closing only asks for confirmation; the shell decides when to quit.
	mw.window.ConnectCloseRequest(func() bool {
		mw.app.Dispatch(shell.CloseRequested{})
		return true
	})

	mw.createLayout()

	return mw
}

// createLayout creates the window layout.
func (mw *MainWindow) createLayout() {
	mw.headerBar = gtk.NewHeaderBar()

	menuButton := gtk.NewMenuButton()
	menuButton.SetIconName("open-menu-symbolic")
	menuButton.SetTooltipText("Menu")
	menuButton.SetMenuModel(mw.createMenu())
	mw.headerBar.PackEnd(menuButton)

	mw.window.SetTitlebar(mw.headerBar)

	mw.content = gtk.NewBox(gtk.OrientationVertical, 0)
	mw.content.SetHExpand(true)
	mw.content.SetVExpand(true)

	mw.tableView = NewTableView(mw)

	mw.window.SetChild(mw.content)
}

// createMenu creates the application menu.
func (mw *MainWindow) createMenu() *gio.Menu {
	menu := gio.NewMenu()

	settingsSection := gio.NewMenu()
	settingsSection.Append("Preferences", "app.preferences")
	menu.AppendSection("", &settingsSection.MenuModel)

	appSection := gio.NewMenu()
	appSection.Append("About", "app.about")
	appSection.Append("Quit", "app.quit")
	menu.AppendSection("", &appSection.MenuModel)

	mw.setupActions()

	return menu
}

// setupActions configures menu actions.
func (mw *MainWindow) setupActions() {
	// Preferences action (Ctrl+,)
	preferencesAction := gio.NewSimpleAction("preferences", nil)
	preferencesAction.ConnectActivate(func(_ *glib.Variant) {
		mw.onPreferences()
	})
	mw.app.app.AddAction(preferencesAction)
	mw.app.app.SetAccelsForAction("app.preferences", []string{"<Control>comma"})

	aboutAction := gio.NewSimpleAction("about", nil)
	aboutAction.ConnectActivate(func(_ *glib.Variant) {
		mw.onAbout()
	})
	mw.app.app.AddAction(aboutAction)

	// Quit action (Ctrl+Q) goes through the same confirmation as the close button
	quitAction := gio.NewSimpleAction("quit", nil)
	quitAction.ConnectActivate(func(_ *glib.Variant) {
		mw.app.Dispatch(shell.RequestExit{})
	})
	mw.app.app.AddAction(quitAction)
	mw.app.app.SetAccelsForAction("app.quit", []string{"<Control>q"})

	// Escape dismisses whatever overlay is open
	escapeAction := gio.NewSimpleAction("dismiss", nil)
	escapeAction.ConnectActivate(func(_ *glib.Variant) {
		mw.dismiss()
	})
	mw.app.app.AddAction(escapeAction)
	mw.app.app.SetAccelsForAction("app.dismiss", []string{"Escape"})
}

// Render redraws the window content from the shell state.
func (mw *MainWindow) Render() {
	screen := mw.app.shell.Render()

	var next gtk.Widgetter
	switch {
	case screen.Confirming:
		next = mw.confirmView(screen)
	case screen.Table.Overlay.Kind == table.OverlayDetails:
		next = mw.detailsView(screen.Table.Overlay)
	default:
		mw.tableView.Update(screen.Table)
		next = mw.tableView.Widget()
	}

	if mw.current != nil && mw.current != next {
		mw.content.Remove(mw.current)
	}
	if mw.current != next {
		mw.content.Append(next)
		mw.current = next
	}
}

// confirmView asks whether to exit.
func (mw *MainWindow) confirmView(screen shell.Screen) gtk.Widgetter {
	box := dialogBox()

	prompt := gtk.NewLabel(screen.Prompt)
	prompt.AddCSSClass("title-3")
	prompt.SetWrap(true)
	box.Append(prompt)

	buttons := gtk.NewBox(gtk.OrientationHorizontal, 12)
	buttons.SetHAlign(gtk.AlignCenter)

	confirmBtn := gtk.NewButtonWithLabel("Confirm")
	confirmBtn.AddCSSClass("destructive-action")
	confirm := screen.Confirm
	confirmBtn.ConnectClicked(func() {
		mw.app.Dispatch(confirm)
	})
	buttons.Append(confirmBtn)

	cancelBtn := gtk.NewButtonWithLabel("Cancel")
	cancel := screen.Cancel
	cancelBtn.ConnectClicked(func() {
		mw.app.Dispatch(cancel)
	})
	buttons.Append(cancelBtn)

	box.Append(buttons)
	return centered(box)
}

// detailsView shows one event in place of the table.
func (mw *MainWindow) detailsView(overlay table.Overlay) gtk.Widgetter {
	box := dialogBox()

	title := gtk.NewLabel(overlay.Title)
	title.AddCSSClass("title-3")
	title.SetXAlign(0)
	box.Append(title)

	for _, line := range overlay.Lines {
		lbl := gtk.NewLabel(line)
		lbl.SetXAlign(0)
		box.Append(lbl)
	}

	for _, action := range overlay.Actions {
		btn := gtk.NewButtonWithLabel(action.Label)
		btn.SetHAlign(gtk.AlignEnd)
		msg := action.Msg
		btn.ConnectClicked(func() {
			mw.app.Dispatch(shell.TableMsg{Msg: msg})
		})
		box.Append(btn)
	}

	return centered(box)
}

func dialogBox() *gtk.Box {
	box := gtk.NewBox(gtk.OrientationVertical, 12)
	box.AddCSSClass("dialog-card")
	box.SetSizeRequest(common.DialogWidth, -1)
	box.SetMarginTop(common.DialogMargin)
	box.SetMarginBottom(common.DialogMargin)
	box.SetMarginStart(common.DialogMargin)
	box.SetMarginEnd(common.DialogMargin)
	return box
}

// centered wraps child in an expanding backdrop.
func centered(child gtk.Widgetter) gtk.Widgetter {
	backdrop := gtk.NewBox(gtk.OrientationVertical, 0)
	backdrop.AddCSSClass("backdrop")
	backdrop.SetHExpand(true)
	backdrop.SetVExpand(true)
	backdrop.SetHAlign(gtk.AlignFill)
	backdrop.SetVAlign(gtk.AlignFill)

	inner := gtk.NewBox(gtk.OrientationVertical, 0)
	inner.SetHAlign(gtk.AlignCenter)
	inner.SetVAlign(gtk.AlignCenter)
	inner.SetVExpand(true)
	inner.Append(child)

	backdrop.Append(inner)
	return backdrop
}

// dismiss closes the topmost overlay, or cancels a pending exit.
func (mw *MainWindow) dismiss() {
	screen := mw.app.shell.Render()
	switch {
	case screen.Confirming:
		mw.app.Dispatch(shell.CancelExit{})
	case screen.Table.Overlay.Kind == table.OverlayDetails:
		mw.app.Dispatch(shell.TableMsg{Msg: table.HideDetails{}})
	case screen.Table.Overlay.Kind == table.OverlayContextMenu:
		mw.app.Dispatch(shell.TableMsg{Msg: table.HideContext{}})
	}
}

// Show displays the window.
func (mw *MainWindow) Show() {
	mw.window.Show()
}

// Present raises the window, showing it first if it was hidden.
func (mw *MainWindow) Present() {
	mw.window.Present()
}

// Event handlers

func (mw *MainWindow) onPreferences() {
	prefsDialog := NewPreferencesDialog(mw)
	prefsDialog.Show()
}

func (mw *MainWindow) onAbout() {
	about := gtk.NewAboutDialog()
	about.SetTransientFor(&mw.window.Window)
	about.SetModal(true)

	about.SetProgramName(common.AppName)
	about.SetVersion(mw.app.version)
	about.SetComments("A table of sample events with a details view,\na row context menu and a tray icon.")
	about.SetLicenseType(gtk.LicenseMITX11)

	about.Show()
}

// showError displays an error dialog.
func (mw *MainWindow) showError(title, message string) {
	window := gtk.NewWindow()
	window.SetTitle(title)
	window.SetTransientFor(&mw.window.Window)
	window.SetModal(true)
	window.SetDefaultSize(350, 150)
	window.SetResizable(false)

	mainBox := gtk.NewBox(gtk.OrientationVertical, 12)
	mainBox.SetMarginTop(24)
	mainBox.SetMarginBottom(24)
	mainBox.SetMarginStart(24)
	mainBox.SetMarginEnd(24)
	mainBox.SetHAlign(gtk.AlignCenter)

	icon := gtk.NewImage()
	icon.SetFromIconName("dialog-error-symbolic")
	icon.SetPixelSize(48)
	mainBox.Append(icon)

	msgLabel := gtk.NewLabel(message)
	msgLabel.SetWrap(true)
	mainBox.Append(msgLabel)

	okBtn := gtk.NewButtonWithLabel("OK")
	okBtn.ConnectClicked(func() {
		window.Close()
	})
	mainBox.Append(okBtn)

	window.SetChild(mainBox)
	window.Show()
}
