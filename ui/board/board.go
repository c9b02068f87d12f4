// Package board provides the drawing surface widget: it translates mouse
// events into the sketch engine's draw/erase protocols and renders the
// committed and in-progress curves.
package board

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"inkpad/internal/app"
	"inkpad/pkg/geometry"
)

// Tool represents the active interaction tool.
type Tool int

const (
	ToolPen Tool = iota
	ToolEraser
)

// String returns the preference-file name of the tool.
func (t Tool) String() string {
	if t == ToolEraser {
		return "eraser"
	}
	return "pen"
}

// ParseTool converts a preference-file name back to a Tool.
func ParseTool(name string) Tool {
	if name == "eraser" {
		return ToolEraser
	}
	return ToolPen
}

// session tracks which protocol the current mouse interaction drives.
type session int

const (
	sessionNone session = iota
	sessionDraw
	sessionErase
)

// BoardCanvas is the drawing surface. The primary mouse button drives the
// active tool; the secondary button always erases, so the eraser is one
// button away regardless of toolbar state.
type BoardCanvas struct {
	widget.BaseWidget

	state      *app.State
	tool       Tool
	showBounds bool
	session    session

	// OnPointerMoved, if set, receives pointer positions in canvas
	// coordinates for the status bar readout.
	OnPointerMoved func(p geometry.Point2D, active bool)
}

var _ fyne.Widget = (*BoardCanvas)(nil)
var _ fyne.Draggable = (*BoardCanvas)(nil)
var _ desktop.Mouseable = (*BoardCanvas)(nil)
var _ desktop.Hoverable = (*BoardCanvas)(nil)

// New creates a board widget over the given application state.
func New(state *app.State) *BoardCanvas {
	b := &BoardCanvas{
		state: state,
		tool:  ToolPen,
	}
	b.ExtendBaseWidget(b)
	return b
}

// SetTool selects the tool driven by the primary mouse button.
func (b *BoardCanvas) SetTool(tool Tool) {
	b.tool = tool
}

// Tool returns the active tool.
func (b *BoardCanvas) Tool() Tool {
	return b.tool
}

// SetShowBounds toggles the diagnostic bounding-box overlay.
func (b *BoardCanvas) SetShowBounds(show bool) {
	b.showBounds = show
	b.Refresh()
}

// ShowBounds reports whether the bounding-box overlay is enabled.
func (b *BoardCanvas) ShowBounds() bool {
	return b.showBounds
}

// MouseDown begins a draw or erase session at the pointer position.
func (b *BoardCanvas) MouseDown(ev *desktop.MouseEvent) {
	p := toPoint(ev.Position)

	if ev.Button == desktop.MouseButtonSecondary || b.tool == ToolEraser {
		if err := b.state.BeginErasure(p); err != nil {
			logrus.WithError(err).Debug("begin erasure skipped")
			return
		}
		b.session = sessionErase
	} else {
		if err := b.state.BeginStroke(p); err != nil {
			logrus.WithError(err).Debug("begin stroke skipped")
			return
		}
		b.session = sessionDraw
	}
	b.Refresh()
}

// Dragged extends the active session to the pointer position.
func (b *BoardCanvas) Dragged(ev *fyne.DragEvent) {
	p := toPoint(ev.Position)
	b.reportPointer(p, true)

	switch b.session {
	case sessionDraw:
		if err := b.state.ContinueStroke(p); err != nil {
			logrus.WithError(err).Debug("continue stroke skipped")
			return
		}
	case sessionErase:
		if err := b.state.ContinueErasure(p); err != nil {
			logrus.WithError(err).Debug("continue erasure skipped")
			return
		}
	default:
		return
	}
	b.Refresh()
}

// MouseUp ends the active session. A stroke shorter than two points is
// discarded by the engine rather than committed.
func (b *BoardCanvas) MouseUp(ev *desktop.MouseEvent) {
	switch b.session {
	case sessionDraw:
		if err := b.state.EndStroke(); err != nil {
			logrus.WithError(err).Debug("end stroke skipped")
		}
	case sessionErase:
		if err := b.state.EndErasure(); err != nil {
			logrus.WithError(err).Debug("end erasure skipped")
		}
	default:
		return
	}
	b.session = sessionNone
	b.Refresh()
}

// DragEnd is handled by MouseUp; the engine rejects a double end anyway.
func (b *BoardCanvas) DragEnd() {}

func (b *BoardCanvas) MouseIn(ev *desktop.MouseEvent) {
	b.reportPointer(toPoint(ev.Position), false)
}

func (b *BoardCanvas) MouseMoved(ev *desktop.MouseEvent) {
	b.reportPointer(toPoint(ev.Position), false)
}

func (b *BoardCanvas) MouseOut() {}

func (b *BoardCanvas) reportPointer(p geometry.Point2D, active bool) {
	if b.OnPointerMoved != nil {
		b.OnPointerMoved(p, active)
	}
}

// CreateRenderer builds the widget renderer drawing the canvas contents.
func (b *BoardCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newBoardRenderer(b)
}

func toPoint(pos fyne.Position) geometry.Point2D {
	return geometry.NewPoint2D(float64(pos.X), float64(pos.Y))
}
