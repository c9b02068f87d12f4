package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestRectangleAlongSegmentContains(t *testing.T) {
	// Horizontal segment from (0,0) to (10,0), width 4: the band
	// 0 <= x <= 10, -2 <= y <= 2.
	rect := RectangleAlongSegment(NewPoint2D(0, 0), r2.Vec{X: 10, Y: 0}, 4)

	tests := []struct {
		name string
		p    Point2D
		want bool
	}{
		{"midpoint", NewPoint2D(5, 0), true},
		{"inside above axis", NewPoint2D(5, 1.9), true},
		{"inside below axis", NewPoint2D(5, -1.9), true},
		{"on long edge", NewPoint2D(5, 2), true},
		{"start corner", NewPoint2D(0, -2), true},
		{"end corner", NewPoint2D(10, 2), true},
		{"beyond long edge", NewPoint2D(5, 2.1), false},
		{"before segment start", NewPoint2D(-0.1, 0), false},
		{"past segment end", NewPoint2D(10.1, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rect.Contains(tt.p))
		})
	}
}

func TestRectangleAlongDiagonalSegment(t *testing.T) {
	rect := RectangleAlongSegment(NewPoint2D(0, 0), r2.Vec{X: 10, Y: 10}, 2)

	assert.True(t, rect.Contains(NewPoint2D(5, 5)), "axis midpoint")
	assert.True(t, rect.Contains(NewPoint2D(5.5, 4.5)), "offset within half-width")
	assert.False(t, rect.Contains(NewPoint2D(7, 3)), "offset beyond half-width")
	assert.False(t, rect.Contains(NewPoint2D(-1, -1)), "behind the start")
}

func TestRectangleVerticalSegment(t *testing.T) {
	rect := RectangleAlongSegment(NewPoint2D(0, 0), r2.Vec{X: 0, Y: 10}, 6)

	assert.True(t, rect.Contains(NewPoint2D(0, 5)))
	assert.True(t, rect.Contains(NewPoint2D(2.9, 5)))
	assert.True(t, rect.Contains(NewPoint2D(-2.9, 5)))
	assert.False(t, rect.Contains(NewPoint2D(3.1, 5)))
	assert.False(t, rect.Contains(NewPoint2D(0, 10.1)))
}
