package geometry

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Rectangle is a rectangle with an orientation: the quadrilateral formed by
// walking a, a+AB, a+AB+AD, a+AD back to a. A is one corner; AB and AD are
// the side vectors adjacent to it. The containment test assumes AB and AD
// are orthogonal; callers supplying a non-orthogonal pair get an undefined
// result, the same way NaN coordinates propagate undetected elsewhere in
// this package.
type Rectangle struct {
	A  Point2D
	AB r2.Vec
	AD r2.Vec
}

// RectangleAlongSegment builds a rectangle of width w centered on the
// segment [p, p+v]:
//
//	---------------------       ---
//	|                   |        |
//	p *-----------------> v      w
//	|                   |        |
//	---------------------       ---
//
// A zero-length v yields a degenerate rectangle with zero-width sides
// rather than a division error; callers needing robustness should treat
// that as "no rectangle".
func RectangleAlongSegment(p Point2D, v r2.Vec, w float64) Rectangle {
	ad := r2.Scale(w, normalizeOrZero(perp(v)))
	return Rectangle{
		A:  p.Add(r2.Scale(-0.5, ad)),
		AB: v,
		AD: ad,
	}
}

// Contains returns true if p is inside the rectangle, boundary included.
// p is inside iff the projection of the vector A->p onto each side vector
// lies within that side's own squared length, i.e. the normalized
// projection is in [0, 1] for both bases.
func (r Rectangle) Contains(p Point2D) bool {
	ap := p.Sub(r.A)
	for _, basis := range []r2.Vec{r.AB, r.AD} {
		proj := r2.Dot(ap, basis)
		if proj < 0 || proj > r2.Dot(basis, basis) {
			return false
		}
	}
	return true
}

// perp returns v rotated 90 degrees counterclockwise.
func perp(v r2.Vec) r2.Vec {
	return r2.Vec{X: -v.Y, Y: v.X}
}

// normalizeOrZero returns the unit vector in the direction of v, or the
// zero vector if v has zero length.
func normalizeOrZero(v r2.Vec) r2.Vec {
	n := r2.Norm(v)
	if n == 0 {
		return r2.Vec{}
	}
	return r2.Scale(1/n, v)
}
