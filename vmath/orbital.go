package vmath

import "github.com/lixenwraith/vi-countdown/parameter"

// MarkerPosition returns the center of the per-second marker
// secondIndex is a position on a 60-step clock face, clockwise from 12 o'clock
// The marker rides orbitRadius-markerRadius from center so its extent stays inside the orbit
func MarkerPosition(center Point, secondIndex int, markerRadius, orbitRadius float64) Point {
	idx := secondIndex % parameter.MarkerCycleSeconds
	if idx < 0 {
		idx += parameter.MarkerCycleSeconds
	}
	deg := float64(idx) * FullTurn / parameter.MarkerCycleSeconds
	return PointOnCircle(center, orbitRadius-markerRadius, deg)
}

// Disc is a filled circle
type Disc struct {
	Center Point
	Radius float64
}

// Contains reports whether p lies inside the disc
func (d Disc) Contains(p Point) bool {
	dx, dy := p.X-d.Center.X, p.Y-d.Center.Y
	return dx*dx+dy*dy <= d.Radius*d.Radius
}
