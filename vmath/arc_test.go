package vmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-countdown/parameter"
)

// TestSweepAngleEndpoints verifies the wipe starts near zero and ends at a full turn
func TestSweepAngleEndpoints(t *testing.T) {
	assert.InDelta(t, 0.0, SweepAngle(300, 300), 1e-9)
	assert.Equal(t, 360.0, SweepAngle(0, 300))
	assert.InDelta(t, 354.0, SweepAngle(5, 300), 1e-9)
	assert.InDelta(t, 180.0, SweepAngle(150, 300), 1e-9)
}

// TestSweepAngleMonotonic verifies the angle never decreases as remaining time drops
func TestSweepAngleMonotonic(t *testing.T) {
	prev := SweepAngle(300, 300)
	for remaining := 300.0; remaining >= 0; remaining -= 0.25 {
		angle := SweepAngle(remaining, 300)
		assert.GreaterOrEqual(t, angle, prev, "remaining=%v", remaining)
		assert.GreaterOrEqual(t, angle, -1e-9)
		assert.LessOrEqual(t, angle, 360.0)
		prev = angle
	}
}

// TestSweepPathFloorsAtEpsilon verifies a zero sweep becomes a thin sliver, not an empty path
func TestSweepPathFloorsAtEpsilon(t *testing.T) {
	center := Point{X: 50, Y: 50}
	path := SweepPath(0, center, 10, 20)

	assert.Equal(t, parameter.MinSweepAngle, path.Sector.End)
	assert.Equal(t, 0.0, path.Sector.Start)
	require.Len(t, path.Segments, 5)
	assert.Equal(t, SegmentMove, path.Segments[0].Kind)
	assert.Equal(t, SegmentClose, path.Segments[4].Kind)
	assert.False(t, path.Segments[1].LargeArc)
}

// TestSweepPathOpenSector verifies the outline order of a partial sector
func TestSweepPathOpenSector(t *testing.T) {
	center := Point{X: 0, Y: 0}
	path := SweepPath(90, center, 10, 20)

	require.Len(t, path.Segments, 5)

	// Outer start at 12 o'clock
	assert.InDelta(t, 0.0, path.Segments[0].To.X, 1e-9)
	assert.InDelta(t, -20.0, path.Segments[0].To.Y, 1e-9)

	// Outer arc clockwise to 3 o'clock
	arc := path.Segments[1]
	assert.Equal(t, SegmentArc, arc.Kind)
	assert.True(t, arc.Clockwise)
	assert.Equal(t, 20.0, arc.Radius)
	assert.InDelta(t, 20.0, arc.To.X, 1e-9)
	assert.InDelta(t, 0.0, arc.To.Y, 1e-9)

	// Radial edge inward
	assert.Equal(t, SegmentLine, path.Segments[2].Kind)
	assert.InDelta(t, 10.0, path.Segments[2].To.X, 1e-9)

	// Inner arc back, counter-clockwise
	inner := path.Segments[3]
	assert.False(t, inner.Clockwise)
	assert.Equal(t, 10.0, inner.Radius)
	assert.InDelta(t, -10.0, inner.To.Y, 1e-9)
}

// TestSweepPathLargeArc verifies the large-arc flag flips past half a turn
func TestSweepPathLargeArc(t *testing.T) {
	path := SweepPath(270, Point{}, 10, 20)
	assert.True(t, path.Segments[1].LargeArc)
	assert.True(t, path.Segments[3].LargeArc)
}

// TestSweepPathFullRing verifies a full turn yields two closed circles
func TestSweepPathFullRing(t *testing.T) {
	path := SweepPath(360, Point{X: 5, Y: 5}, 10, 20)

	assert.True(t, path.Sector.IsFullRing())
	require.Len(t, path.Segments, 8)

	closes := 0
	for _, seg := range path.Segments {
		if seg.Kind == SegmentClose {
			closes++
		}
	}
	assert.Equal(t, 2, closes)
	assert.Equal(t, path, RingPath(Point{X: 5, Y: 5}, 10, 20))
}

// TestSweepPathClampsAboveFullTurn verifies out-of-contract input stays total
func TestSweepPathClampsAboveFullTurn(t *testing.T) {
	path := SweepPath(400, Point{}, 10, 20)
	assert.Equal(t, 360.0, path.Sector.End)
}

// TestAnnularSectorContains verifies point containment by radius and angle
func TestAnnularSectorContains(t *testing.T) {
	sector := SweepPath(90, Point{X: 0, Y: 0}, 10, 20).Sector

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"inside first quadrant", PointOnCircle(Point{}, 15, 45), true},
		{"at start edge", PointOnCircle(Point{}, 15, 0.05), true},
		{"past end angle", PointOnCircle(Point{}, 15, 135), false},
		{"inside hole", PointOnCircle(Point{}, 5, 45), false},
		{"outside ring", PointOnCircle(Point{}, 25, 45), false},
		{"opposite side", PointOnCircle(Point{}, 15, 270), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sector.Contains(tt.p))
		})
	}

	full := RingPath(Point{}, 10, 20).Sector
	assert.True(t, full.Contains(PointOnCircle(Point{}, 15, 270)))
}

// TestBandPosition verifies normalized position across the ring band
func TestBandPosition(t *testing.T) {
	sector := RingPath(Point{}, 10, 20).Sector
	assert.InDelta(t, 0.0, sector.BandPosition(Point{X: 10}), 1e-9)
	assert.InDelta(t, 0.5, sector.BandPosition(Point{X: 15}), 1e-9)
	assert.InDelta(t, 1.0, sector.BandPosition(Point{X: 30}), 1e-9)
}

// TestClockAngle verifies the clockwise-from-top convention
func TestClockAngle(t *testing.T) {
	c := Point{X: 10, Y: 10}
	assert.InDelta(t, 0.0, ClockAngle(c, Point{X: 10, Y: 0}), 1e-9)
	assert.InDelta(t, 90.0, ClockAngle(c, Point{X: 20, Y: 10}), 1e-9)
	assert.InDelta(t, 180.0, ClockAngle(c, Point{X: 10, Y: 20}), 1e-9)
	assert.InDelta(t, 270.0, ClockAngle(c, Point{X: 0, Y: 10}), 1e-9)
}
