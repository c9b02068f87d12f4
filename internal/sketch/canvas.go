package sketch

import (
	"errors"

	"inkpad/pkg/geometry"
)

// Protocol errors. Both signal a caller sequencing bug, never bad geometry;
// the canvas state is left untouched and the caller is expected to skip or
// correct its own call sequence.
var (
	// ErrAlreadyInProgress is returned by BeginStroke or BeginErasure when
	// that session is already active.
	ErrAlreadyInProgress = errors.New("session already in progress")

	// ErrNotInProgress is returned by the continue and end operations when
	// that session is not active.
	ErrNotInProgress = errors.New("no session in progress")
)

// Canvas owns the committed curves, the at-most-one in-progress stroke,
// and the at-most-one in-progress eraser path. The draw and erase sessions
// are independent; they share only the committed-curve collection.
//
// A Canvas is not safe for concurrent use. All operations are synchronous
// and complete before returning; callers drive it serially from their
// input/render loop.
type Canvas struct {
	curves    []*Curve
	current   *Curve            // in-progress stroke, nil when idle
	prevErase *geometry.Point2D // last observed eraser position, nil when idle
}

// NewCanvas creates an empty canvas.
func NewCanvas() *Canvas {
	return &Canvas{}
}

// BeginStroke starts drawing a new stroke seeded with firstPoint.
// Returns ErrAlreadyInProgress if a stroke is being drawn; the existing
// in-progress curve is untouched.
func (cv *Canvas) BeginStroke(firstPoint geometry.Point2D) error {
	if cv.current != nil {
		return ErrAlreadyInProgress
	}
	cv.current = NewCurve(firstPoint)
	return nil
}

// ContinueStroke appends p to the stroke currently being drawn.
// Returns ErrNotInProgress if no stroke is active.
func (cv *Canvas) ContinueStroke(p geometry.Point2D) error {
	if cv.current == nil {
		return ErrNotInProgress
	}
	cv.current.AddPoint(p)
	return nil
}

// EndStroke finishes the current stroke. A stroke with at least two points
// is committed to the canvas and frozen; a single-point stroke is discarded
// silently, since it has no segment to render or intersect. Returns the
// committed curve, or nil if the stroke was discarded.
// Returns ErrNotInProgress if no stroke is active.
func (cv *Canvas) EndStroke() (*Curve, error) {
	if cv.current == nil {
		return nil, ErrNotInProgress
	}
	curve := cv.current
	cv.current = nil
	if curve.Len() < 2 {
		return nil, nil
	}
	cv.curves = append(cv.curves, curve)
	return curve, nil
}

// StrokeInProgress reports whether a stroke is currently being drawn.
func (cv *Canvas) StrokeInProgress() bool {
	return cv.current != nil
}

// BeginErasure starts an erase session at firstPoint. No deletion happens
// on begin; a single point has no segment to sweep. Returns
// ErrAlreadyInProgress if an erase session is already active.
func (cv *Canvas) BeginErasure(firstPoint geometry.Point2D) error {
	if cv.prevErase != nil {
		return ErrAlreadyInProgress
	}
	p := firstPoint
	cv.prevErase = &p
	return nil
}

// ContinueErasure moves the eraser to p, deleting every committed curve
// that intersects the segment from the previous eraser position to p, and
// remembers p for the next movement. Returns the erased curves (nil when
// nothing was hit). Returns ErrNotInProgress if no erase session is active.
//
// Fast motion between two observed positions is bridged by sweeping the
// full segment; erasure granularity is therefore only as fine as the
// positions the input layer reports.
func (cv *Canvas) ContinueErasure(p geometry.Point2D) ([]*Curve, error) {
	if cv.prevErase == nil {
		return nil, ErrNotInProgress
	}
	erased := cv.eraseSegment(*cv.prevErase, p)
	*cv.prevErase = p
	return erased, nil
}

// EndErasure finishes the current erase session.
// Returns ErrNotInProgress if no erase session is active.
func (cv *Canvas) EndErasure() error {
	if cv.prevErase == nil {
		return ErrNotInProgress
	}
	cv.prevErase = nil
	return nil
}

// ErasureInProgress reports whether an erase session is active.
func (cv *Canvas) ErasureInProgress() bool {
	return cv.prevErase != nil
}

// eraseSegment removes every committed curve intersecting the zero-width
// eraser segment [p1, p2] and returns the removed curves. Surviving curves
// keep their insertion order.
func (cv *Canvas) eraseSegment(p1, p2 geometry.Point2D) []*Curve {
	var erased []*Curve
	kept := cv.curves[:0]
	for _, c := range cv.curves {
		if c.intersectsSegment(p1, p2) {
			erased = append(erased, c)
		} else {
			kept = append(kept, c)
		}
	}
	// Release references past the compacted tail.
	for i := len(kept); i < len(cv.curves); i++ {
		cv.curves[i] = nil
	}
	cv.curves = kept
	return erased
}

// Curves returns the committed curves in insertion order. The returned
// slice is a copy; the curves themselves are shared and read-only.
func (cv *Canvas) Curves() []*Curve {
	out := make([]*Curve, len(cv.curves))
	copy(out, cv.curves)
	return out
}

// CurveCount returns the number of committed curves.
func (cv *Canvas) CurveCount() int {
	return len(cv.curves)
}

// CurrentCurve returns the in-progress stroke, or nil when idle.
func (cv *Canvas) CurrentCurve() *Curve {
	return cv.current
}

// Clear removes all committed curves. In-progress sessions are unaffected.
func (cv *Canvas) Clear() {
	cv.curves = nil
}
