package ui

import (
	"strings"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/diamondburned/gotk4/pkg/pango"

	"github.com/yllada/event-table/common"
	"github.com/yllada/event-table/config"
)

// PreferencesDialog represents the preferences dialog.
type PreferencesDialog struct {
	window        *gtk.Window
	mainWindow    *MainWindow
	config        *config.Config
	traySwitch    *gtk.Switch
	spacingSwitch *gtk.Switch
	themeDropDown *gtk.DropDown
	levelDropDown *gtk.DropDown
	themeIDs      []string
	levelIDs      []string
}

// NewPreferencesDialog creates a new preferences dialog.
func NewPreferencesDialog(mainWindow *MainWindow) *PreferencesDialog {
	pd := &PreferencesDialog{
		mainWindow: mainWindow,
		config:     mainWindow.app.config,
		themeIDs:   []string{common.ThemeAuto, common.ThemeLight, common.ThemeDark},
		levelIDs:   []string{"debug", "info", "warn", "error"},
	}

	pd.build()
	return pd
}

func (pd *PreferencesDialog) build() {
	pd.window = gtk.NewWindow()
	pd.window.SetTitle("Settings")
	pd.window.SetTransientFor(&pd.mainWindow.window.Window)
	pd.window.SetModal(true)
	pd.window.SetDefaultSize(460, 420)
	pd.window.SetResizable(false)

	rootBox := gtk.NewBox(gtk.OrientationVertical, 0)

	mainBox := gtk.NewBox(gtk.OrientationVertical, 20)
	mainBox.SetMarginTop(24)
	mainBox.SetMarginBottom(16)
	mainBox.SetMarginStart(24)
	mainBox.SetMarginEnd(24)

	// Appearance
	appearSection := pd.createSection("Appearance", "preferences-desktop-theme-symbolic")
	appearCard := pd.createCard()

	pd.themeDropDown = gtk.NewDropDown(gtk.NewStringList([]string{"System Default", "Light", "Dark"}), nil)
	pd.themeDropDown.SetSelected(indexOf(pd.themeIDs, pd.config.Theme))
	pd.themeDropDown.SetVAlign(gtk.AlignCenter)
	appearCard.Append(pd.createSettingRow(
		"Theme",
		"Choose the visual appearance of the application",
		pd.themeDropDown,
	))

	appearCard.Append(pd.createSeparator())

	pd.spacingSwitch = gtk.NewSwitch()
	pd.spacingSwitch.SetVAlign(gtk.AlignCenter)
	appearCard.Append(pd.createSettingRow(
		"Remember Spacing",
		"Start with the current padding and separator values",
		pd.spacingSwitch,
	))

	appearSection.Append(appearCard)
	mainBox.Append(appearSection)

	// System
	systemSection := pd.createSection("System", "preferences-system-symbolic")
	systemCard := pd.createCard()

	pd.traySwitch = gtk.NewSwitch()
	pd.traySwitch.SetActive(pd.config.TrayEnabled)
	pd.traySwitch.SetVAlign(gtk.AlignCenter)
	systemCard.Append(pd.createSettingRow(
		"Tray Icon",
		"Show the tray icon next time the application starts",
		pd.traySwitch,
	))

	systemCard.Append(pd.createSeparator())

	pd.levelDropDown = gtk.NewDropDown(gtk.NewStringList([]string{"Debug", "Info", "Warning", "Error"}), nil)
	pd.levelDropDown.SetSelected(indexOf(pd.levelIDs, strings.ToLower(pd.config.LogLevel)))
	pd.levelDropDown.SetVAlign(gtk.AlignCenter)
	systemCard.Append(pd.createSettingRow(
		"Log Level",
		"Minimum severity written to the log",
		pd.levelDropDown,
	))

	systemSection.Append(systemCard)
	mainBox.Append(systemSection)

	rootBox.Append(mainBox)

	buttonBar := gtk.NewBox(gtk.OrientationHorizontal, 12)
	buttonBar.SetHAlign(gtk.AlignEnd)
	buttonBar.SetMarginTop(16)
	buttonBar.SetMarginBottom(20)
	buttonBar.SetMarginStart(24)
	buttonBar.SetMarginEnd(24)

	cancelBtn := gtk.NewButtonWithLabel("Cancel")
	cancelBtn.ConnectClicked(func() {
		pd.window.Close()
	})
	buttonBar.Append(cancelBtn)

	saveBtn := gtk.NewButtonWithLabel("Save")
	saveBtn.AddCSSClass("suggested-action")
	saveBtn.ConnectClicked(func() {
		pd.savePreferences()
		pd.window.Close()
	})
	buttonBar.Append(saveBtn)

	rootBox.Append(buttonBar)

	pd.window.SetChild(rootBox)
}

// createSection creates a section with icon and title.
func (pd *PreferencesDialog) createSection(title string, iconName string) *gtk.Box {
	section := gtk.NewBox(gtk.OrientationVertical, 8)

	headerBox := gtk.NewBox(gtk.OrientationHorizontal, 8)

	icon := gtk.NewImage()
	icon.SetFromIconName(iconName)
	icon.SetPixelSize(18)
	icon.AddCSSClass("dim-label")
	headerBox.Append(icon)

	label := gtk.NewLabel(title)
	label.SetXAlign(0)
	label.AddCSSClass("heading")
	label.AddCSSClass("dim-label")
	headerBox.Append(label)

	section.Append(headerBox)

	return section
}

func (pd *PreferencesDialog) createCard() *gtk.Box {
	card := gtk.NewBox(gtk.OrientationVertical, 0)
	card.AddCSSClass("card")
	card.AddCSSClass("preferences-card")
	return card
}

// createSettingRow creates a row with title, description, and widget.
func (pd *PreferencesDialog) createSettingRow(title string, description string, widget gtk.Widgetter) *gtk.Box {
	row := gtk.NewBox(gtk.OrientationHorizontal, 12)
	row.SetMarginTop(14)
	row.SetMarginBottom(14)
	row.SetMarginStart(16)
	row.SetMarginEnd(16)

	textBox := gtk.NewBox(gtk.OrientationVertical, 4)
	textBox.SetHExpand(true)

	titleLabel := gtk.NewLabel(title)
	titleLabel.SetXAlign(0)
	titleLabel.AddCSSClass("settings-title")
	textBox.Append(titleLabel)

	descLabel := gtk.NewLabel(description)
	descLabel.SetXAlign(0)
	descLabel.AddCSSClass("dim-label")
	descLabel.AddCSSClass("caption")
	descLabel.SetWrap(true)
	descLabel.SetWrapMode(pango.WrapWordChar)
	textBox.Append(descLabel)

	row.Append(textBox)
	row.Append(widget)

	return row
}

func (pd *PreferencesDialog) createSeparator() *gtk.Separator {
	sep := gtk.NewSeparator(gtk.OrientationHorizontal)
	sep.SetMarginStart(16)
	sep.SetMarginEnd(16)
	return sep
}

// indexOf returns the position of id in ids, or 0 if not found.
func indexOf(ids []string, id string) uint {
	for i, v := range ids {
		if v == id {
			return uint(i)
		}
	}
	return 0
}

// savePreferences writes the dialog state to the config file and applies
// what can change without a restart.
func (pd *PreferencesDialog) savePreferences() {
	pd.config.TrayEnabled = pd.traySwitch.Active()

	if idx := pd.themeDropDown.Selected(); int(idx) < len(pd.themeIDs) {
		pd.config.Theme = pd.themeIDs[idx]
	}
	if idx := pd.levelDropDown.Selected(); int(idx) < len(pd.levelIDs) {
		pd.config.LogLevel = pd.levelIDs[idx]
	}

	if pd.spacingSwitch.Active() {
		tbl := pd.mainWindow.app.shell.Table()
		pd.config.Padding = config.Pair(tbl.Padding())
		pd.config.Separator = config.Pair(tbl.Separator())
	}

	if err := pd.config.Save(); err != nil {
		common.LogError("Could not save preferences: %v", err)
		pd.mainWindow.showError("Error", "Could not save preferences: "+err.Error())
		return
	}

	pd.mainWindow.app.ApplyTheme(pd.config.Theme)
	if level, ok := common.ParseLogLevel(pd.config.LogLevel); ok {
		common.GetLogger().SetLevel(level)
	}
	common.LogInfo("Settings saved to %s", pd.config.Path())
}

// Show displays the preferences dialog.
func (pd *PreferencesDialog) Show() {
	pd.window.Show()
}
