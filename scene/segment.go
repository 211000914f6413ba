package scene

import "math"

// Segment is a straight stroke between two endpoints. It is the base
// geometry of a number line and of every tick mark on it.
type Segment struct {
	start, end Vec2
	Style
}

func NewSegment(start, end Vec2) *Segment {
	return &Segment{start: start, end: end}
}

func (s *Segment) Start() Vec2 { return s.start }
func (s *Segment) End() Vec2   { return s.end }

// Mid returns the midpoint of the segment.
func (s *Segment) Mid() Vec2 { return Lerp(s.start, s.end, 0.5) }

func (s *Segment) Length() float64 { return s.end.Sub(s.start).Length() }

// Angle returns the direction of the segment in radians.
func (s *Segment) Angle() float64 {
	d := s.end.Sub(s.start)
	return math.Atan2(d.Y, d.X)
}

// UnitVector returns the unit direction from start to end.
func (s *Segment) UnitVector() Vec2 { return s.end.Sub(s.start).Normalize() }

func (s *Segment) Rotate(angle float64, about Vec2) {
	s.start = s.start.RotateAbout(angle, about)
	s.end = s.end.RotateAbout(angle, about)
}

func (s *Segment) Shift(d Vec2) {
	s.start = s.start.Add(d)
	s.end = s.end.Add(d)
}

// Scale scales the segment about its midpoint.
func (s *Segment) Scale(f float64) {
	mid := s.Mid()
	s.start = mid.Add(s.start.Sub(mid).Mul(f))
	s.end = mid.Add(s.end.Sub(mid).Mul(f))
}

// SetLength rescales the segment about its midpoint so its geometric
// length becomes l. A degenerate segment is left untouched.
func (s *Segment) SetLength(l float64) {
	cur := s.Length()
	if cur == 0 {
		return
	}
	s.Scale(l / cur)
}

// MoveTo translates the segment so its midpoint lands on p.
func (s *Segment) MoveTo(p Vec2) { s.Shift(p.Sub(s.Mid())) }

// Center moves the segment's midpoint to the origin.
func (s *Segment) Center() { s.MoveTo(Origin) }

func (s *Segment) Bounds() Rect { return RectFrom(s.start, s.end) }

// AttachTip builds an arrowhead at the segment's end, pointing along
// the segment's direction. The tip is a separate visual; the segment
// itself is unchanged.
func (s *Segment) AttachTip(width, height float64) *Tip {
	return &Tip{
		apex:   s.end,
		angle:  s.Angle(),
		width:  width,
		height: height,
	}
}

// Tip is a filled triangular arrowhead terminating a segment.
type Tip struct {
	apex          Vec2
	angle         float64
	width, height float64
	Style
}

func (t *Tip) Apex() Vec2 { return t.apex }

// Points returns the triangle corners: apex first, then the two base
// corners.
func (t *Tip) Points() [3]Vec2 {
	dir := Vec2{1, 0}.Rotate(t.angle)
	perp := Vec2{-dir.Y, dir.X}
	base := t.apex.Sub(dir.Mul(t.height))
	return [3]Vec2{
		t.apex,
		base.Add(perp.Mul(t.width / 2)),
		base.Sub(perp.Mul(t.width / 2)),
	}
}

func (t *Tip) Rotate(angle float64, about Vec2) {
	t.apex = t.apex.RotateAbout(angle, about)
	t.angle += angle
}

func (t *Tip) Shift(d Vec2) { t.apex = t.apex.Add(d) }

func (t *Tip) Bounds() Rect {
	p := t.Points()
	return RectFrom(p[0], p[1], p[2])
}
