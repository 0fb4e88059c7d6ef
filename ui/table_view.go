package ui

import (
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/diamondburned/gotk4/pkg/pango"

	"github.com/yllada/event-table/common"
	"github.com/yllada/event-table/events"
	"github.com/yllada/event-table/shell"
	"github.com/yllada/event-table/table"
)

// TableView draws table.Layout: the event grid, the row context menu and
// the padding/separator sliders.
type TableView struct {
	mw       *MainWindow
	root     *gtk.Box
	scrolled *gtk.ScrolledWindow
	menuSlot *gtk.Box
	controls *gtk.Box

	sliders []*sliderRow
}

// sliderRow is one labelled pair of scales.
type sliderRow struct {
	x, y    *gtk.Scale
	view    table.SliderView
	syncing bool
}

// NewTableView creates the table widget. Call Update to fill it.
func NewTableView(mw *MainWindow) *TableView {
	tv := &TableView{mw: mw}

	tv.root = gtk.NewBox(gtk.OrientationVertical, 0)
	tv.root.SetVExpand(true)

	tv.scrolled = gtk.NewScrolledWindow()
	tv.scrolled.SetVExpand(true)
	tv.root.Append(tv.scrolled)

	tv.menuSlot = gtk.NewBox(gtk.OrientationVertical, 0)
	tv.root.Append(tv.menuSlot)

	tv.controls = gtk.NewBox(gtk.OrientationVertical, 6)
	tv.controls.AddCSSClass("controls")
	tv.controls.SetMarginTop(12)
	tv.controls.SetMarginBottom(12)
	tv.controls.SetMarginStart(12)
	tv.controls.SetMarginEnd(12)
	tv.root.Append(tv.controls)

	return tv
}

// Widget returns the root widget.
func (tv *TableView) Widget() gtk.Widgetter {
	return tv.root
}

// Update redraws the grid and context menu and syncs the sliders.
// The sliders are built once so a drag in progress is not interrupted.
func (tv *TableView) Update(layout table.Layout) {
	tv.scrolled.SetChild(tv.buildGrid(layout))
	tv.buildMenu(layout.Overlay)

	if tv.sliders == nil {
		for _, view := range layout.Sliders {
			row := tv.newSliderRow(view)
			tv.sliders = append(tv.sliders, row)
		}
	}
	for i, view := range layout.Sliders {
		if i < len(tv.sliders) {
			tv.sliders[i].sync(view)
		}
	}
}

func (tv *TableView) buildGrid(layout table.Layout) *gtk.Grid {
	grid := gtk.NewGrid()
	grid.AddCSSClass("event-table")
	grid.SetRowSpacing(uint(layout.Separator.Y))
	grid.SetColumnSpacing(uint(layout.Separator.X))
	grid.SetVAlign(gtk.AlignStart)

	for col, title := range layout.Header {
		lbl := tv.cellLabel(table.Cell{Text: title}, layout.Padding, col)
		lbl.AddCSSClass("table-header")
		lbl.SetSizeRequest(columnWidth(col), layout.InnerHeight(common.HeaderHeight))
		grid.Attach(lbl, col, 0, 1, 1)
	}

	for _, row := range layout.Rows {
		r := row.Index + 1
		for col, cell := range []table.Cell{row.Name, row.Time, row.Price, row.Rating} {
			lbl := tv.cellLabel(cell, layout.Padding, col)
			lbl.SetSizeRequest(columnWidth(col), layout.InnerHeight(common.RowHeight))
			grid.Attach(lbl, col, r, 1, 1)
		}

		details := gtk.NewButtonWithLabel(table.DetailsGlyph)
		details.AddCSSClass("flat")
		details.AddCSSClass("row-button")
		details.SetVAlign(gtk.AlignCenter)
		details.SetTooltipText("Show details")
		msg := row.Details
		details.ConnectClicked(func() {
			tv.mw.app.Dispatch(shell.TableMsg{Msg: msg})
		})
		grid.Attach(details, len(layout.Header)-1, r, 1, 1)
	}

	tv.attachPointer(grid)
	return grid
}

func columnWidth(col int) int {
	if col < len(table.ColumnWidths) && table.ColumnWidths[col] > 0 {
		return table.ColumnWidths[col]
	}
	return -1
}

func (tv *TableView) cellLabel(cell table.Cell, padding table.Pair, col int) *gtk.Label {
	lbl := gtk.NewLabel(cell.Text)
	lbl.AddCSSClass(toneClass(cell.Tone))
	if cell.Centered {
		lbl.SetXAlign(0.5)
	} else {
		lbl.SetXAlign(0)
	}
	if col == 0 {
		lbl.SetEllipsize(pango.EllipsizeEnd)
	}
	lbl.SetMarginStart(int(padding.X))
	lbl.SetMarginEnd(int(padding.X))
	lbl.SetMarginTop(int(padding.Y))
	lbl.SetMarginBottom(int(padding.Y))
	return lbl
}

func toneClass(t events.Tone) string {
	return "tone-" + t.String()
}

// attachPointer turns GTK motion and clicks on the grid into pointer
// events. Grid coordinates are used so scrolling does not shift rows.
func (tv *TableView) attachPointer(grid *gtk.Grid) {
	motion := gtk.NewEventControllerMotion()
	motion.ConnectMotion(func(x, y float64) {
		tv.sendPointer(table.MovedTo(float32(x), float32(y)))
	})
	grid.AddController(motion)

	click := gtk.NewGestureClick()
	click.SetButton(0) // every button
	click.ConnectPressed(func(_ int, x, y float64) {
		button := buttonFromGDK(click.CurrentButton())
		tv.sendPointer(table.PressedAt(button, float32(x), float32(y)))
	})
	grid.AddController(click)
}

func (tv *TableView) sendPointer(ev table.PointerEvent) {
	if ev.Kind != table.PointerMoved {
		common.LogDebug("Pointer: %s", table.Describe(ev))
	}
	before, _ := tv.mw.app.shell.Table().ContextMenu()
	tv.mw.app.shell.Update(shell.TableMsg{Msg: table.Pointer{Event: ev}})

	// Motion only moves the cursor; redraw when the menu changed.
	after, _ := tv.mw.app.shell.Table().ContextMenu()
	if ev.Kind != table.PointerMoved || before != after {
		tv.mw.Render()
	}
}

func buttonFromGDK(b uint) table.Button {
	switch b {
	case gdk.BUTTON_PRIMARY:
		return table.ButtonLeft
	case gdk.BUTTON_MIDDLE:
		return table.ButtonMiddle
	case gdk.BUTTON_SECONDARY:
		return table.ButtonRight
	default:
		return table.ButtonNone
	}
}

// buildMenu fills the slot below the table with the row context menu.
func (tv *TableView) buildMenu(overlay table.Overlay) {
	for child := tv.menuSlot.FirstChild(); child != nil; child = tv.menuSlot.FirstChild() {
		tv.menuSlot.Remove(child)
	}
	if overlay.Kind != table.OverlayContextMenu {
		return
	}

	menu := gtk.NewBox(gtk.OrientationVertical, 4)
	menu.AddCSSClass("context-menu")
	menu.SetHAlign(gtk.AlignStart)
	menu.SetSizeRequest(common.ContextMenuWidth, -1)
	menu.SetMarginStart(int(overlay.Indent))
	menu.SetMarginTop(6)

	for _, action := range overlay.Actions {
		btn := gtk.NewButtonWithLabel(action.Label)
		btn.AddCSSClass("flat")
		msg := action.Msg
		btn.ConnectClicked(func() {
			tv.mw.app.Dispatch(shell.TableMsg{Msg: msg})
		})
		menu.Append(btn)
	}

	tv.menuSlot.Append(menu)
}

func (tv *TableView) newSliderRow(view table.SliderView) *sliderRow {
	row := &sliderRow{view: view}

	box := gtk.NewBox(gtk.OrientationHorizontal, 12)

	label := gtk.NewLabel(view.Label)
	label.AddCSSClass("slider-label")
	label.SetSizeRequest(90, -1)
	label.SetXAlign(0)
	box.Append(label)

	row.x = newScale(view)
	row.y = newScale(view)
	box.Append(row.x)
	box.Append(row.y)

	changed := func() {
		if row.syncing {
			return
		}
		value := table.Pair{X: float32(row.x.Value()), Y: float32(row.y.Value())}
		tv.mw.app.Dispatch(shell.TableMsg{Msg: row.view.Change(value)})
	}
	row.x.ConnectValueChanged(changed)
	row.y.ConnectValueChanged(changed)

	tv.controls.Append(box)
	return row
}

func newScale(view table.SliderView) *gtk.Scale {
	scale := gtk.NewScaleWithRange(gtk.OrientationHorizontal, float64(view.Min), float64(view.Max), 1)
	scale.SetHExpand(true)
	scale.SetDrawValue(false)
	return scale
}

// sync moves the scales to the state value without feeding it back.
func (r *sliderRow) sync(view table.SliderView) {
	r.view = view
	r.syncing = true
	if float32(r.x.Value()) != view.Value.X {
		r.x.SetValue(float64(view.Value.X))
	}
	if float32(r.y.Value()) != view.Value.Y {
		r.y.SetValue(float64(view.Value.Y))
	}
	r.syncing = false

	tipX, tipY := view.Tooltips()
	r.x.SetTooltipText(tipX)
	r.y.SetTooltipText(tipY)
}
