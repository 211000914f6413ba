package numline

import (
	"github.com/gradus/numline/scene"
)

// TickRange enumerates this line's tick numbers from its configuration.
func (nl *NumberLine) TickRange() []float64 {
	iv := nl.cfg.Range
	return TickRange(iv.Min, iv.Max, iv.Step, nl.cfg.IncludeTip, nl.cfg.ExcludeOriginTick)
}

// AddTicks rebuilds the tick group from the current tick range,
// replacing any previous group.
func (nl *NumberLine) AddTicks() {
	ticks := scene.NewGroup("ticks")
	elongated := nl.cfg.TickSize * nl.cfg.LongerTickMultiple
	for _, x := range nl.TickRange() {
		size := nl.cfg.TickSize
		if containsExact(nl.cfg.ElongatedTicks, x) {
			size = elongated
		}
		ticks.Add(nl.Tick(x, size))
	}
	nl.ticks = ticks
}

// Tick builds one mark: a segment of length 2*size centered on the
// number's point, rotated to the line's current angle so it stays
// perpendicular, with the line's style.
func (nl *NumberLine) Tick(x, size float64) *scene.Segment {
	mark := scene.NewSegment(scene.Vec2{Y: -size}, scene.Vec2{Y: size})
	mark.Rotate(nl.geom.Segment().Angle(), mark.Mid())
	mark.MoveTo(nl.geom.NumberToPoint(x))
	mark.MatchStyle(nl.geom.Segment().Style)
	return mark
}

// containsExact tests membership with exact float equality. Elongation
// and exclusion are defined in terms of the values the generator
// actually produced; tolerant matching would change which ticks they
// touch.
func containsExact(set []float64, x float64) bool {
	for _, v := range set {
		if v == x {
			return true
		}
	}
	return false
}
