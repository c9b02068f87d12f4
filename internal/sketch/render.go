package sketch

import (
	"inkpad/pkg/geometry"
)

// Renderer is the drawing collaborator consumed by Canvas.Render. The
// engine produces ordered point sequences; how they become pixels is the
// renderer's business.
type Renderer interface {
	// DrawPolyline draws the consecutive segments of an ordered point
	// sequence. The slice must not be retained or modified.
	DrawPolyline(points []geometry.Point2D)

	// DrawBox draws a curve's bounding box. This is a diagnostic overlay
	// only; implementations that don't want it should no-op.
	DrawBox(box geometry.Box)
}

// Render hands every committed curve, in insertion order, and then the
// in-progress stroke if any, to the renderer. Rendering reads the canvas
// without mutating it: two consecutive calls with no operations in between
// produce the same sequence.
func (cv *Canvas) Render(r Renderer) {
	for _, c := range cv.curves {
		renderCurve(r, c)
	}
	if cv.current != nil {
		renderCurve(r, cv.current)
	}
}

func renderCurve(r Renderer, c *Curve) {
	r.DrawPolyline(c.Points())
	r.DrawBox(c.Bounds())
}
