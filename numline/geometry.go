package numline

import (
	"github.com/gradus/numline/scene"
)

// AxisGeometry owns the metric relationship between interval numbers
// and scene points: the placed line segment plus the interval it spans.
// The segment may be rotated and translated after construction; both
// transforms read its current endpoints, so they stay self-consistent.
type AxisGeometry struct {
	interval Interval
	segment  *scene.Segment
}

// NewAxisGeometry builds the placed segment for an interval. When
// length > 0 the raw segment is rescaled to that geometric length and
// the unit size follows from it; otherwise the raw unit-step segment is
// scaled by unitSize directly. Either way the segment ends up centered
// at the origin, un-rotated.
func NewAxisGeometry(interval Interval, unitSize, length float64) (*AxisGeometry, error) {
	if err := interval.validate(); err != nil {
		return nil, err
	}
	seg := scene.NewSegment(scene.Vec2{X: interval.Min}, scene.Vec2{X: interval.Max})
	if length > 0 {
		seg.SetLength(length)
	} else {
		if unitSize <= 0 {
			unitSize = 1
		}
		seg.Scale(unitSize)
	}
	seg.Center()
	return &AxisGeometry{interval: interval, segment: seg}, nil
}

func (g *AxisGeometry) Interval() Interval      { return g.interval }
func (g *AxisGeometry) Segment() *scene.Segment { return g.segment }

// NumberToPoint maps an interval number to its point on the segment.
// Numbers outside the interval extrapolate along the line.
func (g *AxisGeometry) NumberToPoint(x float64) scene.Vec2 {
	alpha := (x - g.interval.Min) / g.interval.Width()
	return scene.Lerp(g.segment.Start(), g.segment.End(), alpha)
}

// PointToNumber is the inverse of NumberToPoint for points on the line.
// Off-line points map to the number of the nearest point on the line's
// infinite extension. Projecting both the query offset and the full
// span onto the unit direction makes the proportion independent of the
// segment's stored scale, rotation and translation.
func (g *AxisGeometry) PointToNumber(p scene.Vec2) float64 {
	start, end := g.segment.Start(), g.segment.End()
	unit := end.Sub(start).Normalize()
	proportion := p.Sub(start).Dot(unit) / end.Sub(start).Dot(unit)
	return g.interval.Min + proportion*g.interval.Width()
}

// UnitSize returns scene distance per interval unit, computed from the
// segment's current geometric length so later scaling is reflected.
func (g *AxisGeometry) UnitSize() float64 {
	return g.segment.Length() / g.interval.Width()
}

// UnitVector returns the segment direction scaled to one interval unit.
func (g *AxisGeometry) UnitVector() scene.Vec2 {
	return g.segment.UnitVector().Mul(g.UnitSize())
}

// Rotate rotates the geometry by angle about the given pivot.
func (g *AxisGeometry) Rotate(angle float64, about scene.Vec2) {
	g.segment.Rotate(angle, about)
}
