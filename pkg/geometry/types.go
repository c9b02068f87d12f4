// Package geometry provides the 2D primitives used by the sketch engine:
// points, axis-aligned boxes, oriented rectangles, and segment intersection.
package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point2D represents a 2D point with floating-point coordinates.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewPoint2D creates a new Point2D.
func NewPoint2D(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// Vec returns the point as a gonum r2 vector.
func (p Point2D) Vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// FromVec converts a gonum r2 vector to a Point2D.
func FromVec(v r2.Vec) Point2D {
	return Point2D{X: v.X, Y: v.Y}
}

// Add returns the point translated by v.
func (p Point2D) Add(v r2.Vec) Point2D {
	return Point2D{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from other to p.
func (p Point2D) Sub(other Point2D) r2.Vec {
	return r2.Vec{X: p.X - other.X, Y: p.Y - other.Y}
}

// Distance returns the Euclidean distance to another point.
func (p Point2D) Distance(other Point2D) float64 {
	return r2.Norm(p.Sub(other))
}

// Box is an axis-aligned bounding region defined by two corners.
// Invariant: P1.X <= P2.X and P1.Y <= P2.Y after every mutation.
// A Box only ever grows; it is an acceleration hint, never the source
// of truth for curve intersection.
type Box struct {
	P1 Point2D `json:"p1"`
	P2 Point2D `json:"p2"`
}

// BoxAt returns the degenerate (zero-area) box at p.
func BoxAt(p Point2D) Box {
	return Box{P1: p, P2: p}
}

// BoxOf returns the minimal box containing both a and b.
func BoxOf(a, b Point2D) Box {
	box := BoxAt(a)
	box.ExpandToContain(b)
	return box
}

// ExpandToContain grows the box exactly as much as needed to contain p.
// The new region always contains the old one.
func (b *Box) ExpandToContain(p Point2D) {
	b.P1.X = math.Min(b.P1.X, p.X)
	b.P1.Y = math.Min(b.P1.Y, p.Y)
	b.P2.X = math.Max(b.P2.X, p.X)
	b.P2.Y = math.Max(b.P2.Y, p.Y)
}

// Contains returns true if p is in the box, boundary included.
// A box built from a single point contains exactly that point.
func (b Box) Contains(p Point2D) bool {
	return b.P1.X <= p.X && p.X <= b.P2.X &&
		b.P1.Y <= p.Y && p.Y <= b.P2.Y
}

// Overlaps returns true if the two boxes share at least one point,
// boundary included. Touching edges count as overlap, matching the
// boundary-inclusive containment contract.
func (b Box) Overlaps(other Box) bool {
	return b.P1.X <= other.P2.X && other.P1.X <= b.P2.X &&
		b.P1.Y <= other.P2.Y && other.P1.Y <= b.P2.Y
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float64 {
	return b.P2.X - b.P1.X
}

// Height returns the vertical extent of the box.
func (b Box) Height() float64 {
	return b.P2.Y - b.P1.Y
}
