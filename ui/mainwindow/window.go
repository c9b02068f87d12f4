// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"inkpad/internal/app"
	"inkpad/internal/version"
	"inkpad/pkg/geometry"
	"inkpad/ui/board"
	"inkpad/ui/prefs"
)

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app   fyne.App
	state *app.State
	prefs *prefs.Prefs

	board     *board.BoardCanvas
	statusBar *widget.Label
	toolGroup *widget.RadioGroup
}

// New creates the main window over the given state and preferences.
func New(fyneApp fyne.App, state *app.State, p *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow("Inkpad " + version.Version)

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		prefs:  p,
	}

	mw.setupUI()
	mw.setupEventHandlers()
	mw.restorePreferences()

	win.SetCloseIntercept(func() {
		mw.SavePreferences()
		fyneApp.Quit()
	})

	return mw
}

// setupUI creates the main layout: toolbar, board, status bar.
func (mw *MainWindow) setupUI() {
	mw.board = board.New(mw.state)
	mw.statusBar = widget.NewLabel("Ready")

	mw.board.OnPointerMoved = func(p geometry.Point2D, active bool) {
		suffix := ""
		if active {
			suffix = fmt.Sprintf(" [%s]", mw.board.Tool())
		}
		mw.statusBar.SetText(fmt.Sprintf("%.0f, %.0f%s — %d curves",
			p.X, p.Y, suffix, mw.state.CurveCount()))
	}

	content := container.NewBorder(
		mw.createToolbar(),                // top
		container.NewPadded(mw.statusBar), // bottom
		nil,                               // left
		nil,                               // right
		mw.board,                          // center
	)

	mw.SetContent(content)
}

// createToolbar creates the tool selector and canvas actions.
func (mw *MainWindow) createToolbar() fyne.CanvasObject {
	mw.toolGroup = widget.NewRadioGroup([]string{"Pen", "Eraser"}, func(sel string) {
		if sel == "Eraser" {
			mw.board.SetTool(board.ToolEraser)
		} else {
			mw.board.SetTool(board.ToolPen)
		}
	})
	mw.toolGroup.Horizontal = true
	mw.toolGroup.SetSelected("Pen")

	clearBtn := widget.NewButton("Clear", func() {
		mw.state.Clear()
		mw.board.Refresh()
	})

	boundsCheck := widget.NewCheck("Bounding boxes", func(on bool) {
		mw.board.SetShowBounds(on)
	})
	boundsCheck.SetChecked(mw.prefs.Bool(prefs.KeyShowBounds, false))

	return container.NewHBox(
		widget.NewLabel("Tool:"),
		mw.toolGroup,
		widget.NewSeparator(),
		clearBtn,
		boundsCheck,
	)
}

// setupEventHandlers wires state events into the status bar.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventStrokeCommitted, func(interface{}) {
		mw.statusBar.SetText(fmt.Sprintf("Stroke committed — %d curves", mw.state.CurveCount()))
	})
	mw.state.On(app.EventStrokeDiscarded, func(interface{}) {
		mw.statusBar.SetText("Stroke too short, discarded")
	})
	mw.state.On(app.EventCurvesErased, func(interface{}) {
		mw.statusBar.SetText(fmt.Sprintf("Erased — %d curves remain", mw.state.CurveCount()))
	})
	mw.state.On(app.EventCanvasCleared, func(interface{}) {
		mw.statusBar.SetText("Canvas cleared")
	})
}

// restorePreferences applies persisted window and tool settings.
func (mw *MainWindow) restorePreferences() {
	w := mw.prefs.Float(prefs.KeyWindowWidth, 1000)
	h := mw.prefs.Float(prefs.KeyWindowHeight, 700)
	mw.Resize(fyne.NewSize(float32(w), float32(h)))

	tool := board.ParseTool(mw.prefs.String(prefs.KeyLastTool, "pen"))
	mw.board.SetTool(tool)
	if tool == board.ToolEraser {
		mw.toolGroup.SetSelected("Eraser")
	}
}

// SavePreferences persists window and tool settings to disk.
func (mw *MainWindow) SavePreferences() {
	size := mw.Canvas().Size()
	mw.prefs.SetFloat(prefs.KeyWindowWidth, float64(size.Width))
	mw.prefs.SetFloat(prefs.KeyWindowHeight, float64(size.Height))
	mw.prefs.SetString(prefs.KeyLastTool, mw.board.Tool().String())
	mw.prefs.SetBool(prefs.KeyShowBounds, mw.board.ShowBounds())
	_ = mw.prefs.Save()
}
