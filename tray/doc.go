// Package tray provides the system tray icon and the bridge that carries
// its menu clicks into the UI event loop.
//
// The tray runs on its own goroutine and never touches UI state. Each
// click is forwarded as an ItemID over the Bridge; the UI loop polls the
// bridge on a fixed tick and resolves ids to Actions through the
// Registry the bridge owns.
//
//	reg := tray.NewRegistry()
//	bridge := tray.NewBridge(reg, common.GetLogger())
//	ind := tray.NewIndicator(bridge, icon)
//	go ind.Run(ctx)
//
//	// on every UI tick
//	for _, action := range bridge.Poll() {
//	    shell.Update(shell.TrayMsg{Action: action})
//	}
package tray
