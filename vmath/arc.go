package vmath

import (
	"math"

	"github.com/lixenwraith/vi-countdown/parameter"
)

// SweepAngle maps remaining seconds to the wiped angle of the ring
// Linear in elapsed time: ~0 at full duration, 360 at zero remaining
func SweepAngle(secondsRemaining, durationSeconds float64) float64 {
	return FullTurn - (FullTurn/durationSeconds)*secondsRemaining
}

// SegmentKind identifies a path drawing command
type SegmentKind uint8

const (
	SegmentMove SegmentKind = iota
	SegmentLine
	SegmentArc
	SegmentClose
)

// PathSegment is one drawing command of a PathDescription
// Radius, LargeArc and Clockwise apply to SegmentArc only
type PathSegment struct {
	Kind      SegmentKind
	To        Point
	Radius    float64
	LargeArc  bool
	Clockwise bool
}

// AnnularSector is the region between two concentric circles bounded by two radii
// Angles are degrees clockwise from 12 o'clock, Start <= End
type AnnularSector struct {
	Center Point
	Inner  float64
	Outer  float64
	Start  float64
	End    float64
}

// Span returns the angular extent in degrees
func (s AnnularSector) Span() float64 {
	return s.End - s.Start
}

// IsFullRing returns true if the sector covers the whole ring
func (s AnnularSector) IsFullRing() bool {
	return s.Span() >= FullTurn
}

// Contains reports whether p lies inside the sector, boundaries included
func (s AnnularSector) Contains(p Point) bool {
	d := p.Dist(s.Center)
	if d < s.Inner || d > s.Outer {
		return false
	}
	if s.IsFullRing() {
		return true
	}
	rel := math.Mod(ClockAngle(s.Center, p)-s.Start+2*FullTurn, FullTurn)
	return rel <= s.Span()
}

// BandPosition returns where p sits across the ring band: 0 at the inner edge, 1 at the outer
func (s AnnularSector) BandPosition(p Point) float64 {
	width := s.Outer - s.Inner
	if width <= 0 {
		return 0
	}
	return Clamp((p.Dist(s.Center)-s.Inner)/width, 0, 1)
}

// PathDescription is a vector outline of an annular sector
// Segments are ordered for a path builder; Sector is kept for raster backends
type PathDescription struct {
	Sector   AnnularSector
	Segments []PathSegment
}

// SweepPath returns the outline of the sector from 0 degrees clockwise to angle
// Angles below MinSweepAngle are floored to it so the path never degenerates
// 360 yields the full ring as two closed circles (outer clockwise, inner counter-clockwise)
func SweepPath(angle float64, center Point, inner, outer float64) PathDescription {
	angle = Clamp(angle, parameter.MinSweepAngle, FullTurn)
	sector := AnnularSector{
		Center: center,
		Inner:  inner,
		Outer:  outer,
		Start:  0,
		End:    angle,
	}
	return PathDescription{Sector: sector, Segments: sectorSegments(sector)}
}

// RingPath returns the full ring outline
func RingPath(center Point, inner, outer float64) PathDescription {
	return SweepPath(FullTurn, center, inner, outer)
}

func sectorSegments(s AnnularSector) []PathSegment {
	if s.IsFullRing() {
		return []PathSegment{
			{Kind: SegmentMove, To: PointOnCircle(s.Center, s.Outer, 0)},
			{Kind: SegmentArc, To: PointOnCircle(s.Center, s.Outer, 180), Radius: s.Outer, Clockwise: true},
			{Kind: SegmentArc, To: PointOnCircle(s.Center, s.Outer, 0), Radius: s.Outer, Clockwise: true},
			{Kind: SegmentClose},
			{Kind: SegmentMove, To: PointOnCircle(s.Center, s.Inner, 0)},
			{Kind: SegmentArc, To: PointOnCircle(s.Center, s.Inner, 180), Radius: s.Inner},
			{Kind: SegmentArc, To: PointOnCircle(s.Center, s.Inner, 0), Radius: s.Inner},
			{Kind: SegmentClose},
		}
	}

	large := s.Span() > FullTurn/2
	return []PathSegment{
		{Kind: SegmentMove, To: PointOnCircle(s.Center, s.Outer, s.Start)},
		{Kind: SegmentArc, To: PointOnCircle(s.Center, s.Outer, s.End), Radius: s.Outer, LargeArc: large, Clockwise: true},
		{Kind: SegmentLine, To: PointOnCircle(s.Center, s.Inner, s.End)},
		{Kind: SegmentArc, To: PointOnCircle(s.Center, s.Inner, s.Start), Radius: s.Inner, LargeArc: large},
		{Kind: SegmentClose},
	}
}
