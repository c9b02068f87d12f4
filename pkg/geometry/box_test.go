package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoxAtIsDegenerate(t *testing.T) {
	p := NewPoint2D(3, -7)
	box := BoxAt(p)

	assert.Equal(t, p, box.P1)
	assert.Equal(t, p, box.P2)
	assert.True(t, box.Contains(p), "degenerate box must contain its own point")
	assert.Zero(t, box.Width())
	assert.Zero(t, box.Height())
}

func TestBoxExpandContainsEveryPoint(t *testing.T) {
	points := []Point2D{
		{X: 0, Y: 0},
		{X: 10, Y: -4},
		{X: -3, Y: 8},
		{X: 2, Y: 2},
		{X: -3, Y: -9},
	}

	box := BoxAt(points[0])
	for _, p := range points[1:] {
		box.ExpandToContain(p)

		// Corner ordering holds after every mutation.
		assert.LessOrEqual(t, box.P1.X, box.P2.X)
		assert.LessOrEqual(t, box.P1.Y, box.P2.Y)
	}

	for _, p := range points {
		assert.True(t, box.Contains(p), "box must contain %v", p)
	}
	assert.Equal(t, NewPoint2D(-3, -9), box.P1)
	assert.Equal(t, NewPoint2D(10, 8), box.P2)
}

func TestBoxExpandIsMonotonic(t *testing.T) {
	box := BoxOf(NewPoint2D(0, 0), NewPoint2D(4, 4))
	inside := NewPoint2D(2, 2)

	// Expanding by an interior point changes nothing.
	box.ExpandToContain(inside)
	assert.Equal(t, BoxOf(NewPoint2D(0, 0), NewPoint2D(4, 4)), box)
}

func TestBoxContainsBoundaryInclusive(t *testing.T) {
	box := BoxOf(NewPoint2D(0, 0), NewPoint2D(10, 10))

	tests := []struct {
		name string
		p    Point2D
		want bool
	}{
		{"corner min", NewPoint2D(0, 0), true},
		{"corner max", NewPoint2D(10, 10), true},
		{"center", NewPoint2D(5, 5), true},
		{"edge", NewPoint2D(10, 5), true},
		{"just outside x", NewPoint2D(10.0001, 5), false},
		{"just outside y", NewPoint2D(5, -0.0001), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, box.Contains(tt.p))
		})
	}
}

func TestBoxOverlaps(t *testing.T) {
	a := BoxOf(NewPoint2D(0, 0), NewPoint2D(10, 10))

	tests := []struct {
		name string
		b    Box
		want bool
	}{
		{"identical", a, true},
		{"contained", BoxOf(NewPoint2D(2, 2), NewPoint2D(3, 3)), true},
		{"partial", BoxOf(NewPoint2D(5, 5), NewPoint2D(15, 15)), true},
		{"touching edge", BoxOf(NewPoint2D(10, 0), NewPoint2D(20, 10)), true},
		{"touching corner", BoxOf(NewPoint2D(10, 10), NewPoint2D(20, 20)), true},
		{"disjoint", BoxOf(NewPoint2D(11, 11), NewPoint2D(20, 20)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(a), "overlap must be symmetric")
		})
	}
}
