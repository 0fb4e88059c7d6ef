// Package main provides the entry point for Event Table.
// Event Table shows a list of sample events in a GTK4 window, with a
// details view, a row context menu, spacing sliders and a tray icon.
//
// Features:
//   - GTK4 desktop window (default)
//   - Terminal front end driven by the same state (--tui)
//   - Headless listing and pointer-event replay (--list, --replay)
//   - System tray icon with Show and Quit
//
// Usage:
//
//	event-table [options]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/yllada/event-table/cli"
	"github.com/yllada/event-table/common"
	"github.com/yllada/event-table/config"
	"github.com/yllada/event-table/shell"
	"github.com/yllada/event-table/table"
	"github.com/yllada/event-table/tray"
	"github.com/yllada/event-table/tui"
	"github.com/yllada/event-table/ui"
)

// Build-time variables injected via ldflags (-X main.appVersion=x.y.z)
// Default values are used for local development builds
var (
	appVersion = "dev"
	buildTime  = "unknown"
	commitSHA  = "unknown"
)

var (
	// General flags
	showVersion = flag.Bool("version", false, "Show version and exit")
	verbose     = flag.Bool("verbose", false, "Enable verbose logging")
	showHelp    = flag.Bool("help", false, "Show help message")
	configPath  = flag.String("config", "", "Path to the configuration file")

	// Front end flags
	useTUI = flag.Bool("tui", false, "Run in the terminal")
	noTray = flag.Bool("no-tray", false, "Do not show the tray icon")

	// CLI flags
	listEvents = flag.Bool("list", false, "Print the event table")
	replayFile = flag.String("replay", "", "Replay pointer-event descriptions from a file")
)

func main() {
	flag.Parse()

	if *showHelp {
		cli.PrintHelp()
		os.Exit(0)
	}

	if *showVersion {
		fmt.Printf("%s v%s\n", common.AppName, appVersion)
		if buildTime != "unknown" {
			fmt.Printf("  Build:  %s\n", buildTime)
			fmt.Printf("  Commit: %s\n", commitSHA)
		}
		os.Exit(0)
	}

	os.Exit(run())
}

func run() int {
	headless := *listEvents || *replayFile != ""

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	initLogging(cfg, headless)
	defer common.CloseLogger()

	// Setup graceful shutdown context
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	setupSignalHandler(cancel)

	tbl := table.NewDefault(
		table.WithPadding(table.Pair(cfg.Padding)),
		table.WithSeparator(table.Pair(cfg.Separator)),
	)

	if headless {
		return runCLI(tbl)
	}

	sh := shell.New(ctx, tbl)

	var (
		bridge    *tray.Bridge
		indicator *tray.Indicator
	)
	if cfg.TrayEnabled && !*noTray {
		icon, err := tray.LoadIcon()
		if err != nil {
			common.LogError("Startup failed: %v", err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		bridge = tray.NewBridge(tray.DefaultRegistry(), common.GetLogger())
		indicator = tray.NewIndicator(bridge, icon)
	}

	common.LogInfo("Starting %s v%s", common.AppName, appVersion)

	if *useTUI {
		if indicator != nil {
			go indicator.Run(sh.Context())
		}
		if err := tui.Run(ctx, sh, bridge); err != nil {
			common.LogError("Terminal front end failed: %v", err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	app := ui.NewApplication(ui.Options{
		Shell:     sh,
		Config:    cfg,
		Version:   appVersion,
		Bridge:    bridge,
		Indicator: indicator,
	})
	// GTK gets the program name and anything after "--".
	exitCode := app.Run(append([]string{os.Args[0]}, flag.Args()...))
	if exitCode != 0 {
		common.LogWarn("Application exited with code %d", exitCode)
	}
	return exitCode
}

func loadConfig() (*config.Config, error) {
	if *configPath != "" {
		return config.LoadFrom(*configPath)
	}
	return config.Load()
}

// initLogging keeps stdout clean for headless output and the terminal
// front end.
func initLogging(cfg *config.Config, headless bool) {
	level, _ := common.ParseLogLevel(cfg.LogLevel)
	if *verbose {
		level = common.LevelDebug
	}

	logCfg := common.LogConfig{
		Level:       level,
		EnableFile:  !headless,
		MaxFileSize: 5 * 1024 * 1024, // 5MB
		MaxBackups:  5,
	}
	switch {
	case headless:
		logCfg.Console = os.Stderr
	case *useTUI:
		logCfg.Console = io.Discard
	}

	if err := common.InitLogger(logCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize file logging: %v\n", err)
	}
}

// runCLI handles the headless commands.
func runCLI(tbl *table.Table) int {
	c := cli.New(os.Stdout, tbl)

	var err error
	switch {
	case *listEvents:
		err = c.ListEvents()
	case *replayFile != "":
		err = replay(c, *replayFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func replay(c *cli.CLI, path string) error {
	in := os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("%w: %v", common.ErrReplayRead, err)
		}
		defer f.Close()
		in = f
	}
	_, err := c.Replay(in)
	return err
}

// setupSignalHandler configures graceful shutdown on SIGINT/SIGTERM.
// Cancelling the context reaches the shell, the tray and the front end.
func setupSignalHandler(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		common.LogInfo("Received signal %v, initiating graceful shutdown...", sig)
		cancel()
	}()
}
