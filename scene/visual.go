package scene

// Visual is anything that can be placed in a scene: a segment, an
// arrowhead, a text label, or a group of those. Rotations act about an
// explicit pivot so composite shapes can rotate as one rigid body.
type Visual interface {
	Rotate(angle float64, about Vec2)
	Shift(d Vec2)
	Bounds() Rect
}

// Group is an ordered, named collection of visuals. The composition
// root uses named groups ("ticks", "numbers", "labels") so callers can
// address sub-visuals after construction.
type Group struct {
	name     string
	children []Visual
}

func NewGroup(name string) *Group { return &Group{name: name} }

func (g *Group) Name() string { return g.name }

func (g *Group) Add(vs ...Visual) { g.children = append(g.children, vs...) }

func (g *Group) Children() []Visual { return g.children }

func (g *Group) Len() int { return len(g.children) }

func (g *Group) Rotate(angle float64, about Vec2) {
	for _, c := range g.children {
		c.Rotate(angle, about)
	}
}

func (g *Group) Shift(d Vec2) {
	for _, c := range g.children {
		c.Shift(d)
	}
}

func (g *Group) Bounds() Rect {
	if len(g.children) == 0 {
		return Rect{}
	}
	b := g.children[0].Bounds()
	for _, c := range g.children[1:] {
		b = b.Union(c.Bounds())
	}
	return b
}
