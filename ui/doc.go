// Package ui provides the GTK4 desktop front end for Event Table.
//
// The window is a view of shell.Shell: every user action becomes a
// shell.Msg passed to Application.Dispatch, which updates the shell and
// redraws the window from shell.Render.
//
// # Architecture
//
//   - Application: GTK application lifecycle, tray polling, dispatch
//   - MainWindow: header bar, menu actions and screen switching
//   - TableView: the event grid, context menu and slider controls
//   - PreferencesDialog: settings persisted through package config
//
// # Thread Safety
//
// GTK operations must execute on the main thread. The tray indicator runs
// on its own goroutine and only talks to the UI through tray.Bridge,
// which the application drains from a glib timeout on the main loop.
//
// # File Organization
//
//   - app.go: application lifecycle, dispatch and tray polling
//   - main_window.go: window layout, menu and confirm/details screens
//   - table_view.go: event grid, pointer controllers and sliders
//   - preferences.go: settings dialog
//   - styles.go: CSS styling
package ui
