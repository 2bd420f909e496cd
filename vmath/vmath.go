package vmath

import "math"

// FullTurn is one revolution in degrees
const FullTurn = 360.0

// Point is a position in surface pixel space, y grows downward
type Point struct {
	X, Y float64
}

// Add returns p translated by q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector from q to p
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Dist returns the euclidean distance between p and q
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Radians converts degrees to radians
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// PointOnCircle returns the point at deg degrees clockwise from 12 o'clock
func PointOnCircle(center Point, radius, deg float64) Point {
	rad := Radians(deg)
	return Point{
		X: center.X + radius*math.Sin(rad),
		Y: center.Y - radius*math.Cos(rad),
	}
}

// ClockAngle returns the angle of p around center, clockwise from 12 o'clock, in [0, 360)
func ClockAngle(center, p Point) float64 {
	deg := math.Atan2(p.X-center.X, center.Y-p.Y) * 180 / math.Pi
	if deg < 0 {
		deg += FullTurn
	}
	return deg
}
