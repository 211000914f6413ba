package scene

import "math"

// Vec2 is a point or direction in scene space. Scene space is a plain
// Cartesian plane with y pointing up; one unit is one scene unit, the
// renderer decides how many millimeters that becomes.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Canonical directions used for label placement and tick construction.
var (
	Origin = Vec2{0, 0}
	Up     = Vec2{0, 1}
	Down   = Vec2{0, -1}
	Left   = Vec2{-1, 0}
	Right  = Vec2{1, 0}
)

func (v Vec2) Add(o Vec2) Vec2    { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2    { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Mul(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

func (v Vec2) Length() float64 { return math.Hypot(v.X, v.Y) }

// Normalize returns the unit vector in the direction of v. The zero
// vector normalizes to itself.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Rotate rotates v counterclockwise by angle radians about the origin.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// RotateAbout rotates v counterclockwise by angle radians about a pivot.
func (v Vec2) RotateAbout(angle float64, about Vec2) Vec2 {
	return v.Sub(about).Rotate(angle).Add(about)
}

// Lerp interpolates linearly between a and b at parameter t. Values of
// t outside [0,1] extrapolate.
func Lerp(a, b Vec2, t float64) Vec2 {
	return Vec2{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

// Rect is an axis-aligned bounding box.
type Rect struct {
	Min, Max Vec2
}

// RectFrom returns the smallest Rect containing all points.
func RectFrom(points ...Vec2) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	r := Rect{points[0], points[0]}
	for _, p := range points[1:] {
		r.Min.X = math.Min(r.Min.X, p.X)
		r.Min.Y = math.Min(r.Min.Y, p.Y)
		r.Max.X = math.Max(r.Max.X, p.X)
		r.Max.Y = math.Max(r.Max.Y, p.Y)
	}
	return r
}

// Union returns the smallest Rect containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return RectFrom(r.Min, r.Max, o.Min, o.Max)
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

func (r Rect) Center() Vec2 {
	return Vec2{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}
