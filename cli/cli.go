// Package cli provides the headless commands: listing the sample events
// and replaying recorded pointer-event descriptions through the table
// without opening a window.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/yllada/event-table/common"
	"github.com/yllada/event-table/events"
	"github.com/yllada/event-table/table"
)

// minNameWidth is the narrowest the NAME column is truncated to.
const minNameWidth = 12

// fixedColumnsWidth approximates the cells taken by the other columns.
const fixedColumnsWidth = 44

// CLI represents the command-line interface.
type CLI struct {
	out   io.Writer
	table *table.Table
	// width is the terminal width, or 0 when out is not a terminal.
	width int
}

// New creates a CLI writing to out and driving tbl.
func New(out io.Writer, tbl *table.Table) *CLI {
	return &CLI{
		out:   out,
		table: tbl,
		width: terminalWidth(out),
	}
}

func terminalWidth(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		common.LogDebug("Could not read terminal size: %v", err)
		return 0
	}
	return width
}

// ListEvents prints the event table with its threshold flags.
func (c *CLI) ListEvents() error {
	maxName := 0
	if c.width > 0 {
		maxName = c.width - fixedColumnsWidth
		if maxName < minNameWidth {
			maxName = minNameWidth
		}
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tNAME\tTIME\tPRICE\tRATING\tFLAGS")
	fmt.Fprintln(w, "-\t----\t----\t-----\t------\t-----")

	for i, ev := range c.table.Events() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			i+1, truncate(ev.Name, maxName), ev.TimeText(), ev.PriceText(), ev.RatingText(), flags(ev))
	}

	return w.Flush()
}

// flags names the thresholds an event crosses.
func flags(ev events.Event) string {
	var out []string
	if ev.DurationTone() == events.ToneWarning {
		out = append(out, "long")
	}
	switch ev.PriceTone() {
	case events.ToneSuccess:
		out = append(out, "free")
	case events.ToneWarning:
		out = append(out, "pricey")
	}
	switch ev.RatingTone() {
	case events.ToneSuccess:
		out = append(out, "top-rated")
	case events.ToneDanger:
		out = append(out, "poorly-rated")
	}
	if len(out) == 0 {
		return "-"
	}
	return strings.Join(out, ",")
}

// truncate shortens s to max runes. A max of 0 disables truncation.
func truncate(s string, max int) string {
	r := []rune(s)
	if max <= 0 || len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

// ReplayStats summarises a replay run.
type ReplayStats struct {
	Lines   int
	Applied int
	Ignored int
}

// Replay feeds one event description per line through the table.
// Blank lines and lines starting with # are skipped. Every context menu
// change is reported, followed by the final cursor and menu state.
func (c *CLI) Replay(r io.Reader) (ReplayStats, error) {
	var stats ReplayStats

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		stats.Lines++

		if len(table.ParseDescription(line)) == 0 {
			common.LogDebug("Replay line %d not recognised: %q", lineNo, line)
			stats.Ignored++
			continue
		}
		stats.Applied++

		before, hadMenu := c.table.ContextMenu()
		c.table.Update(table.Description{Text: line})
		after, hasMenu := c.table.ContextMenu()

		if hasMenu && (!hadMenu || before != after) {
			fmt.Fprintf(c.out, "line %d: context menu on row %d at (%s)\n",
				lineNo, after.Row+1, formatPoint(after.At))
		}
	}
	if err := scanner.Err(); err != nil {
		return stats, common.WrapError(fmt.Errorf("%w: %v", common.ErrReplayRead, err), fmt.Sprintf("line %d", lineNo))
	}

	c.printState(stats)
	return stats, nil
}

func (c *CLI) printState(stats ReplayStats) {
	cursor := "none"
	if at, ok := c.table.LastCursor(); ok {
		cursor = formatPoint(at)
	}
	menu := "closed"
	if m, ok := c.table.ContextMenu(); ok {
		menu = fmt.Sprintf("row %d", m.Row+1)
		if ev, ok := c.table.Event(m.Row); ok {
			menu += ", " + ev.Name
		}
	}

	fmt.Fprintf(c.out, "cursor: %s\n", cursor)
	fmt.Fprintf(c.out, "menu:   %s\n", menu)
	fmt.Fprintf(c.out, "lines:  %d applied, %d ignored\n", stats.Applied, stats.Ignored)
}

func formatPoint(p table.Point) string {
	return fmt.Sprintf("%.0f, %.0f", p.X, p.Y)
}

// PrintHelp prints CLI usage help.
func PrintHelp() {
	fmt.Println(`Event Table - a table of sample events

Usage:
  event-table [OPTIONS]

Options:
  --version         Show version and exit
  --verbose         Enable verbose logging
  --config PATH     Use an alternative configuration file
  --tui             Run in the terminal instead of a window
  --no-tray         Do not show the tray icon
  --list            Print the event table and exit
  --replay FILE     Replay pointer-event descriptions from FILE ("-" for stdin)
  --help            Show this help message

Replay files hold one event description per line, for example:
  CursorMoved { position: Point { x: 120, y: 90 } }
  ButtonPressed(Right)

Examples:
  event-table --list
  event-table --replay events.txt
  event-table --tui

Notes:
  - Run without options to open the window
  - Closing the window asks for confirmation`)
}
