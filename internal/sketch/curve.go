// Package sketch implements the stroke and curve management engine:
// the curve data model, the draw and erase session state machines, and
// intersection-based deletion of committed curves.
package sketch

import (
	"github.com/google/uuid"

	"inkpad/pkg/geometry"
)

// Curve is an ordered, non-empty sequence of points (a polyline) with a
// bounding box kept incrementally up to date. No thickness information is
// attached. A curve accumulates points only while a stroke is in progress;
// once committed to a Canvas it is read-only.
//
// The bounding box lets callers quickly discard curves that are nowhere
// near a query region before running the exact per-segment test.
type Curve struct {
	id     string
	points []geometry.Point2D
	bounds geometry.Box
}

// NewCurve creates a one-point curve. Its bounding box is the degenerate
// box at the first point.
func NewCurve(first geometry.Point2D) *Curve {
	return &Curve{
		id:     uuid.NewString(),
		points: []geometry.Point2D{first},
		bounds: geometry.BoxAt(first),
	}
}

// AddPoint appends p to the curve and expands the bounding box to contain
// it. Amortized O(1).
func (c *Curve) AddPoint(p geometry.Point2D) {
	c.points = append(c.points, p)
	c.bounds.ExpandToContain(p)
}

// ID returns the curve's unique identifier.
func (c *Curve) ID() string {
	return c.id
}

// Points returns the curve's point sequence in drawing order. The slice is
// the curve's backing storage; callers must not modify it.
func (c *Curve) Points() []geometry.Point2D {
	return c.points
}

// Len returns the number of points on the curve.
func (c *Curve) Len() int {
	return len(c.points)
}

// Bounds returns the minimal axis-aligned box containing every point on
// the curve.
func (c *Curve) Bounds() geometry.Box {
	return c.bounds
}

// intersectsSegment reports whether the curve's polyline shares at least
// one point with the segment [a, b]. The bounding box is consulted first
// as a fast reject; the authoritative answer is the exact per-segment test.
func (c *Curve) intersectsSegment(a, b geometry.Point2D) bool {
	if !c.bounds.Overlaps(geometry.BoxOf(a, b)) {
		return false
	}
	return geometry.PolylineIntersectsSegment(c.points, a, b)
}
