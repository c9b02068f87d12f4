package sketch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkpad/pkg/geometry"
)

// drawSegment commits a two-point curve through the stroke protocol.
func drawSegment(t *testing.T, cv *Canvas, a, b geometry.Point2D) *Curve {
	t.Helper()
	require.NoError(t, cv.BeginStroke(a))
	require.NoError(t, cv.ContinueStroke(b))
	curve, err := cv.EndStroke()
	require.NoError(t, err)
	require.NotNil(t, curve)
	return curve
}

func TestSinglePointStrokeDiscarded(t *testing.T) {
	cv := NewCanvas()

	require.NoError(t, cv.BeginStroke(geometry.NewPoint2D(0, 0)))
	curve, err := cv.EndStroke()

	assert.NoError(t, err)
	assert.Nil(t, curve, "single-point stroke must be discarded")
	assert.Zero(t, cv.CurveCount())
	assert.False(t, cv.StrokeInProgress())
}

func TestTwoPointStrokeCommitted(t *testing.T) {
	cv := NewCanvas()

	require.NoError(t, cv.BeginStroke(geometry.NewPoint2D(0, 0)))
	require.NoError(t, cv.ContinueStroke(geometry.NewPoint2D(1, 1)))
	curve, err := cv.EndStroke()

	require.NoError(t, err)
	require.NotNil(t, curve)
	assert.Equal(t, 2, curve.Len())
	assert.Equal(t, 1, cv.CurveCount())
	assert.Same(t, curve, cv.Curves()[0])
}

func TestStrokeProtocolErrors(t *testing.T) {
	cv := NewCanvas()

	assert.ErrorIs(t, cv.ContinueStroke(geometry.NewPoint2D(0, 0)), ErrNotInProgress)
	_, err := cv.EndStroke()
	assert.ErrorIs(t, err, ErrNotInProgress)

	require.NoError(t, cv.BeginStroke(geometry.NewPoint2D(0, 0)))
	require.NoError(t, cv.ContinueStroke(geometry.NewPoint2D(1, 0)))

	// A second begin fails and must not disturb the accumulated points.
	assert.ErrorIs(t, cv.BeginStroke(geometry.NewPoint2D(9, 9)), ErrAlreadyInProgress)
	require.NotNil(t, cv.CurrentCurve())
	assert.Equal(t, 2, cv.CurrentCurve().Len())
	assert.Equal(t, geometry.NewPoint2D(0, 0), cv.CurrentCurve().Points()[0])

	curve, err := cv.EndStroke()
	require.NoError(t, err)
	assert.Equal(t, 2, curve.Len())
}

func TestEraseSweepDeletesCrossedCurve(t *testing.T) {
	cv := NewCanvas()
	hit := drawSegment(t, cv, geometry.NewPoint2D(0, 0), geometry.NewPoint2D(10, 0))
	survivor := drawSegment(t, cv, geometry.NewPoint2D(0, 100), geometry.NewPoint2D(10, 100))

	require.NoError(t, cv.BeginErasure(geometry.NewPoint2D(5, -5)))
	erased, err := cv.ContinueErasure(geometry.NewPoint2D(5, 5))
	require.NoError(t, err)
	require.NoError(t, cv.EndErasure())

	require.Len(t, erased, 1)
	assert.Same(t, hit, erased[0])
	require.Equal(t, 1, cv.CurveCount())
	assert.Same(t, survivor, cv.Curves()[0])
}

func TestEraseBridgesFastMotion(t *testing.T) {
	cv := NewCanvas()
	drawSegment(t, cv, geometry.NewPoint2D(50, -10), geometry.NewPoint2D(50, 10))

	// One continue call far from the begin point still sweeps the whole
	// segment in between.
	require.NoError(t, cv.BeginErasure(geometry.NewPoint2D(0, 0)))
	erased, err := cv.ContinueErasure(geometry.NewPoint2D(100, 0))
	require.NoError(t, err)

	assert.Len(t, erased, 1)
	assert.Zero(t, cv.CurveCount())
}

func TestErasePreservesInsertionOrder(t *testing.T) {
	cv := NewCanvas()
	first := drawSegment(t, cv, geometry.NewPoint2D(0, 0), geometry.NewPoint2D(10, 0))
	middle := drawSegment(t, cv, geometry.NewPoint2D(0, 50), geometry.NewPoint2D(10, 50))
	last := drawSegment(t, cv, geometry.NewPoint2D(0, 100), geometry.NewPoint2D(10, 100))

	require.NoError(t, cv.BeginErasure(geometry.NewPoint2D(5, 40)))
	erased, err := cv.ContinueErasure(geometry.NewPoint2D(5, 60))
	require.NoError(t, err)
	require.NoError(t, cv.EndErasure())

	require.Len(t, erased, 1)
	assert.Same(t, middle, erased[0])
	require.Equal(t, 2, cv.CurveCount())
	assert.Same(t, first, cv.Curves()[0])
	assert.Same(t, last, cv.Curves()[1])
}

func TestEraseTouchingEndpointDeletes(t *testing.T) {
	cv := NewCanvas()
	drawSegment(t, cv, geometry.NewPoint2D(0, 0), geometry.NewPoint2D(10, 0))

	// The sweep ends exactly on the curve; boundary contact counts.
	require.NoError(t, cv.BeginErasure(geometry.NewPoint2D(5, -5)))
	erased, err := cv.ContinueErasure(geometry.NewPoint2D(5, 0))
	require.NoError(t, err)

	assert.Len(t, erased, 1)
	assert.Zero(t, cv.CurveCount())
}

func TestEraseMissesNothing(t *testing.T) {
	cv := NewCanvas()
	drawSegment(t, cv, geometry.NewPoint2D(0, 0), geometry.NewPoint2D(10, 0))

	require.NoError(t, cv.BeginErasure(geometry.NewPoint2D(20, -5)))
	erased, err := cv.ContinueErasure(geometry.NewPoint2D(20, 5))
	require.NoError(t, err)

	assert.Empty(t, erased)
	assert.Equal(t, 1, cv.CurveCount())
}

func TestErasureProtocolErrors(t *testing.T) {
	cv := NewCanvas()

	_, err := cv.ContinueErasure(geometry.NewPoint2D(0, 0))
	assert.ErrorIs(t, err, ErrNotInProgress)
	assert.ErrorIs(t, cv.EndErasure(), ErrNotInProgress)

	require.NoError(t, cv.BeginErasure(geometry.NewPoint2D(0, 0)))
	assert.ErrorIs(t, cv.BeginErasure(geometry.NewPoint2D(1, 1)), ErrAlreadyInProgress)
	assert.True(t, cv.ErasureInProgress())

	require.NoError(t, cv.EndErasure())
	assert.False(t, cv.ErasureInProgress())
}

func TestDrawAndEraseSessionsAreIndependent(t *testing.T) {
	cv := NewCanvas()
	drawSegment(t, cv, geometry.NewPoint2D(0, 0), geometry.NewPoint2D(10, 0))

	require.NoError(t, cv.BeginStroke(geometry.NewPoint2D(0, 50)))
	require.NoError(t, cv.BeginErasure(geometry.NewPoint2D(5, -5)))

	erased, err := cv.ContinueErasure(geometry.NewPoint2D(5, 5))
	require.NoError(t, err)
	assert.Len(t, erased, 1)

	// The in-progress stroke is not a committed curve and cannot be erased.
	assert.True(t, cv.StrokeInProgress())
	require.NoError(t, cv.EndErasure())
	require.NoError(t, cv.ContinueStroke(geometry.NewPoint2D(10, 50)))
	curve, err := cv.EndStroke()
	require.NoError(t, err)
	assert.NotNil(t, curve)
}

func TestClear(t *testing.T) {
	cv := NewCanvas()
	drawSegment(t, cv, geometry.NewPoint2D(0, 0), geometry.NewPoint2D(10, 0))
	drawSegment(t, cv, geometry.NewPoint2D(0, 10), geometry.NewPoint2D(10, 10))

	require.NoError(t, cv.BeginStroke(geometry.NewPoint2D(0, 20)))
	cv.Clear()

	assert.Zero(t, cv.CurveCount())
	assert.True(t, cv.StrokeInProgress(), "clear leaves the in-progress session alone")
}
