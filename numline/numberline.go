// Package numline implements a drawable number line: a placed line
// segment, floating-point-safe tick discretization, and label placement
// anchored to the ticks. Geometry lives in scene primitives; rendering
// and typesetting are supplied by collaborators.
package numline

import (
	"github.com/gradus/numline/scene"
)

// NumberLine composes an AxisGeometry with its tick marks, optional
// arrowhead and optional label groups. Construction runs a fixed
// sequence: normalize options, build the centered geometry, attach the
// tip, build ticks, rotate the assembled body, then add labels (which
// therefore stay upright). A new configuration means a new instance;
// the Add* methods replace their group wholesale, so re-invoking one
// never accumulates duplicate visuals.
type NumberLine struct {
	cfg  config
	geom *AxisGeometry

	tip     *scene.Tip
	ticks   *scene.Group
	numbers *scene.Group
	labels  *scene.Group
}

// New builds a number line from options. It fails fast on a degenerate
// interval, a non-positive step, or on numbering without a typesetter.
func New(opts Options) (*NumberLine, error) {
	cfg, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	geom, err := NewAxisGeometry(cfg.Range, cfg.UnitSize, cfg.Length)
	if err != nil {
		return nil, err
	}
	geom.Segment().Style = scene.Style{Stroke: cfg.Color, StrokeWidth: cfg.StrokeWidth}

	nl := &NumberLine{cfg: cfg, geom: geom}

	if cfg.IncludeTip {
		nl.tip = geom.Segment().AttachTip(cfg.TipWidth, cfg.TipHeight)
		nl.tip.MatchStyle(geom.Segment().Style)
		fill := cfg.Color
		nl.tip.Fill = &fill
	}
	if !cfg.OmitTicks {
		nl.AddTicks()
	}
	if cfg.Rotation != 0 {
		pivot := geom.Segment().Mid()
		for _, v := range nl.visuals() {
			v.Rotate(cfg.Rotation, pivot)
		}
	}
	if cfg.IncludeNumbers || cfg.NumbersToInclude != nil {
		if err := nl.AddNumbers(cfg.NumbersToInclude, cfg.NumbersToExclude); err != nil {
			return nil, err
		}
	}
	return nl, nil
}

// Geometry exposes the coordinate transforms.
func (nl *NumberLine) Geometry() *AxisGeometry { return nl.geom }

// Interval returns the configured numeric range.
func (nl *NumberLine) Interval() Interval { return nl.cfg.Range }

// NumberToPoint maps an interval number to scene space.
func (nl *NumberLine) NumberToPoint(x float64) scene.Vec2 { return nl.geom.NumberToPoint(x) }

// PointToNumber maps a scene point back to an interval number.
func (nl *NumberLine) PointToNumber(p scene.Vec2) float64 { return nl.geom.PointToNumber(p) }

// UnitSize returns scene distance per interval unit.
func (nl *NumberLine) UnitSize() float64 { return nl.geom.UnitSize() }

// UnitVector returns the line direction scaled to one interval unit.
func (nl *NumberLine) UnitVector() scene.Vec2 { return nl.geom.UnitVector() }

// Tip returns the arrowhead, or nil when none was requested.
func (nl *NumberLine) Tip() *scene.Tip { return nl.tip }

// Ticks returns the tick mark group, or nil before AddTicks.
func (nl *NumberLine) Ticks() *scene.Group { return nl.ticks }

// Numbers returns the auto-generated number label group, or nil.
func (nl *NumberLine) Numbers() *scene.Group { return nl.numbers }

// Labels returns the explicit label group, or nil.
func (nl *NumberLine) Labels() *scene.Group { return nl.labels }

// Visuals returns the drawable parts in paint order.
func (nl *NumberLine) Visuals() []scene.Visual { return nl.visuals() }

func (nl *NumberLine) visuals() []scene.Visual {
	vs := []scene.Visual{nl.geom.Segment()}
	if nl.tip != nil {
		vs = append(vs, nl.tip)
	}
	for _, g := range []*scene.Group{nl.ticks, nl.numbers, nl.labels} {
		if g != nil {
			vs = append(vs, g)
		}
	}
	return vs
}

// Bounds returns the bounding box of every visual part.
func (nl *NumberLine) Bounds() scene.Rect {
	vs := nl.visuals()
	b := vs[0].Bounds()
	for _, v := range vs[1:] {
		b = b.Union(v.Bounds())
	}
	return b
}

// Shift translates the whole line.
func (nl *NumberLine) Shift(d scene.Vec2) {
	for _, v := range nl.visuals() {
		v.Shift(d)
	}
}

// Rotate rotates the whole line about its segment midpoint.
func (nl *NumberLine) Rotate(angle float64) {
	nl.RotateAbout(angle, nl.geom.Segment().Mid())
}

// RotateAboutNumber rotates the whole line about the point of a given
// number. The pivot is computed before anything moves, so it reflects
// the pre-rotation geometry.
func (nl *NumberLine) RotateAboutNumber(x, angle float64) {
	nl.RotateAbout(angle, nl.geom.NumberToPoint(x))
}

// RotateAboutZero rotates about the origin tick's point.
func (nl *NumberLine) RotateAboutZero(angle float64) {
	nl.RotateAboutNumber(0, angle)
}

// RotateAbout rotates every visual part about an explicit pivot.
func (nl *NumberLine) RotateAbout(angle float64, pivot scene.Vec2) {
	for _, v := range nl.visuals() {
		v.Rotate(angle, pivot)
	}
}
