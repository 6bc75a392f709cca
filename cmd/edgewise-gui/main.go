package main

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"edgewise/internal/config"
	"edgewise/internal/parse"
	"edgewise/internal/tape"
	"edgewise/pkg/geometry"
	"edgewise/pkg/units"
)

// App wires the measurement panel to a tape session. The entry fields
// stand in for the host's selection state: vertices one x,y,z per line,
// edges one x1,y1,z1:x2,y2,z2 per line.
type App struct {
	window fyne.Window

	session tape.Session

	modeSelect  *widget.Select
	imperial    *widget.Check
	vertexEntry *widget.Entry
	edgeEntry   *widget.Entry
	cursorEntry *widget.Entry
	resultLabel *widget.Label
}

func main() {
	a := app.New()
	w := a.NewWindow("EdgeWise - Tape Measure")

	panel := &App{window: w}
	panel.buildUI()

	if cfg, _, err := config.Load(); err == nil {
		if system, err := cfg.UnitSystem(); err == nil && system == units.Imperial {
			panel.imperial.SetChecked(true)
		}
	}

	w.Resize(fyne.NewSize(420, 640))
	w.ShowAndRun()
}

func (a *App) buildUI() {
	a.modeSelect = widget.NewSelect([]string{"Vertex", "Edge"}, nil)
	a.modeSelect.SetSelected("Vertex")

	a.imperial = widget.NewCheck("Imperial units (ft)", nil)

	a.vertexEntry = widget.NewMultiLineEntry()
	a.vertexEntry.SetPlaceHolder("Selected vertices, one x,y,z per line")

	a.edgeEntry = widget.NewMultiLineEntry()
	a.edgeEntry.SetPlaceHolder("Selected edges, one x1,y1,z1:x2,y2,z2 per line")

	a.cursorEntry = widget.NewEntry()
	a.cursorEntry.SetText("0,0,0")

	a.resultLabel = widget.NewLabel("")
	a.resultLabel.TextStyle = fyne.TextStyle{Bold: true}

	measureButton := widget.NewButton("Measure Edges/Vertices", a.onMeasure)
	angleButton := widget.NewButton("Measure Edge Angles", a.onAngle)

	axisRow := container.NewHBox(
		widget.NewButton("X", func() { a.onAxis(geometry.AxisX) }),
		widget.NewButton("Y", func() { a.onAxis(geometry.AxisY) }),
		widget.NewButton("Z", func() { a.onAxis(geometry.AxisZ) }),
		layout.NewSpacer(),
	)

	content := container.NewVBox(
		widget.NewLabel("Selection mode:"),
		a.modeSelect,
		a.imperial,
		widget.NewSeparator(),
		widget.NewLabel("Vertices:"),
		a.vertexEntry,
		widget.NewLabel("Edges:"),
		a.edgeEntry,
		widget.NewSeparator(),
		measureButton,
		angleButton,
		widget.NewSeparator(),
		widget.NewLabel("Vertex distance from cursor:"),
		container.NewHBox(widget.NewLabel("Cursor:"), a.cursorEntry),
		axisRow,
		widget.NewSeparator(),
		container.NewHBox(widget.NewLabel("Result:"), a.resultLabel),
	)

	a.window.SetContent(container.NewPadded(content))
}

func (a *App) onMeasure() {
	sel, err := a.selection()
	if err != nil {
		a.showError(err)
		return
	}

	// A mode switch clears the stale result even when the measurement
	// itself fails, so refresh before reporting.
	_, err = a.session.Measure(sel)
	a.refresh()
	if err != nil {
		a.showError(err)
	}
}

func (a *App) onAngle() {
	sel, err := a.selection()
	if err != nil {
		a.showError(err)
		return
	}

	if _, err := a.session.MeasureAngle(sel); err != nil {
		a.showError(err)
		return
	}
	a.refresh()
}

func (a *App) onAxis(axis geometry.Axis) {
	sel, err := a.selection()
	if err != nil {
		a.showError(err)
		return
	}

	if _, err := a.session.MeasureAxisDistance(sel, axis); err != nil {
		a.showError(err)
		return
	}
	a.refresh()
}

// selection snapshots the panel inputs the way the host would hand over
// its edit state.
func (a *App) selection() (tape.Selection, error) {
	sel := tape.Selection{Mode: a.mode(), Units: a.unitSystem()}

	verts, err := parse.Vectors(lines(a.vertexEntry.Text))
	if err != nil {
		return tape.Selection{}, err
	}
	sel.Vertices = verts

	edges, err := parse.Edges(lines(a.edgeEntry.Text))
	if err != nil {
		return tape.Selection{}, err
	}
	sel.Edges = edges

	cursor, err := parse.Vector(a.cursorEntry.Text)
	if err != nil {
		return tape.Selection{}, fmt.Errorf("cursor: %w", err)
	}
	sel.Cursor = cursor

	return sel, nil
}

func (a *App) mode() tape.Mode {
	switch a.modeSelect.Selected {
	case "Vertex":
		return tape.ModeVertex
	case "Edge":
		return tape.ModeEdge
	}
	return tape.ModeNone
}

func (a *App) unitSystem() units.System {
	if a.imperial.Checked {
		return units.Imperial
	}
	return units.Metric
}

func (a *App) refresh() {
	a.resultLabel.SetText(a.session.Result)
}

func (a *App) showError(err error) {
	dialog.ShowError(err, a.window)
}

func lines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
