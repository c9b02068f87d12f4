package board

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"golang.org/x/image/colornames"

	"inkpad/pkg/geometry"
)

const strokeWidth = 3

var (
	inkColor    = colornames.Steelblue
	boundsColor = colornames.Crimson
	paperColor  = color.White
)

// boardRenderer renders the board by rebuilding its object list from the
// canvas contents on every refresh.
type boardRenderer struct {
	board      *BoardCanvas
	background *canvas.Rectangle
}

func newBoardRenderer(b *BoardCanvas) *boardRenderer {
	return &boardRenderer{
		board:      b,
		background: canvas.NewRectangle(paperColor),
	}
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	builder := &objectBuilder{
		objects:    []fyne.CanvasObject{r.background},
		showBounds: r.board.showBounds,
	}
	r.board.state.Render(builder)
	return builder.objects
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *boardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardRenderer) Refresh() {
	canvas.Refresh(r.board)
}

func (r *boardRenderer) Destroy() {}

// objectBuilder implements sketch.Renderer by collecting Fyne canvas
// objects: one line per polyline segment, plus an outline rectangle per
// bounding box when the diagnostic overlay is enabled.
type objectBuilder struct {
	objects    []fyne.CanvasObject
	showBounds bool
}

func (ob *objectBuilder) DrawPolyline(points []geometry.Point2D) {
	for i := 1; i < len(points); i++ {
		line := canvas.NewLine(inkColor)
		line.StrokeWidth = strokeWidth
		line.Position1 = toPos(points[i-1])
		line.Position2 = toPos(points[i])
		ob.objects = append(ob.objects, line)
	}
}

func (ob *objectBuilder) DrawBox(box geometry.Box) {
	if !ob.showBounds {
		return
	}
	rect := canvas.NewRectangle(color.Transparent)
	rect.StrokeColor = boundsColor
	rect.StrokeWidth = 1
	rect.Move(toPos(box.P1))
	rect.Resize(fyne.NewSize(float32(box.Width()), float32(box.Height())))
	ob.objects = append(ob.objects, rect)
}

func toPos(p geometry.Point2D) fyne.Position {
	return fyne.NewPos(float32(p.X), float32(p.Y))
}
