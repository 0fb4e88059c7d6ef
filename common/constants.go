// Package common provides shared constants, types, and utilities
// used across the Event Table application.
package common

import "time"

// Application metadata.
const (
	// AppID is the unique identifier for the application.
	AppID = "com.eventtable.app"
	// AppName is the display name of the application.
	AppName = "Event Table"
	// ConfigDirName is the name of the configuration directory.
	ConfigDirName = "event-table"
)

// File names used by the application.
const (
	ConfigFileName = "config.yaml"
	LogFileName    = "event-table.log"
)

// Intervals.
const (
	// TrayPollInterval is how often the UI loop drains tray clicks.
	TrayPollInterval = 100 * time.Millisecond
)

// Table geometry. Pointer coordinates are mapped to rows with these.
const (
	// HeaderHeight is the height of the table header in pixels.
	HeaderHeight float32 = 36
	// RowHeight is the height of a single event row in pixels.
	RowHeight float32 = 36
	// ContextMenuWidth is the width of the row context menu.
	ContextMenuWidth = 200
	// ContextMenuMaxIndent caps how far right the context menu is shifted.
	ContextMenuMaxIndent float32 = 600
	// ContextMenuIndentOffset is subtracted from the cursor x to get the indent.
	ContextMenuIndentOffset float32 = 100
)

// Slider ranges.
const (
	PaddingMin   float32 = 0
	PaddingMax   float32 = 30
	SeparatorMin float32 = 0
	SeparatorMax float32 = 5
)

// UI constants.
const (
	// DefaultWindowWidth is the default main window width.
	DefaultWindowWidth = 760
	// DefaultWindowHeight is the default main window height.
	DefaultWindowHeight = 640
	// MinWindowWidth is the minimum window width.
	MinWindowWidth = 480
	// MinWindowHeight is the minimum window height.
	MinWindowHeight = 360
	// DialogWidth is the width of the details and confirm dialogs.
	DialogWidth = 400
	// DialogMargin is the standard margin for dialog content.
	DialogMargin = 16
)

// Theme values.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)
