package scene

// Glyph is one typeset rune with its horizontal advance in scene units.
// Advances are kept per glyph so callers can reason about individual
// characters (a number label aligns on the width of its minus sign).
type Glyph struct {
	Text    string  `json:"text"`
	Advance float64 `json:"advance"`
}

// Text is a typeset visual anchored at its center. The glyph advances
// and height come from a typesetter; Text itself only does placement.
type Text struct {
	content string
	font    string
	size    float64
	glyphs  []Glyph
	height  float64
	pos     Vec2
	Style
}

// NewText builds a typeset visual. font is a typesetter family key,
// size is the nominal font size in scene units, and height is the
// typeset cap height at that size.
func NewText(content, font string, size float64, glyphs []Glyph, height float64) *Text {
	return &Text{content: content, font: font, size: size, glyphs: glyphs, height: height}
}

func (t *Text) Content() string { return t.content }
func (t *Text) Font() string    { return t.font }
func (t *Text) Size() float64   { return t.size }
func (t *Text) Glyphs() []Glyph { return t.glyphs }
func (t *Text) Height() float64 { return t.height }
func (t *Text) Pos() Vec2       { return t.pos }

// Width is the sum of all glyph advances.
func (t *Text) Width() float64 {
	var w float64
	for _, g := range t.glyphs {
		w += g.Advance
	}
	return w
}

// FirstGlyphWidth returns the advance of the leading glyph, or zero for
// empty text.
func (t *Text) FirstGlyphWidth() float64 {
	if len(t.glyphs) == 0 {
		return 0
	}
	return t.glyphs[0].Advance
}

// Scale scales the text uniformly about its anchor.
func (t *Text) Scale(f float64) {
	t.size *= f
	t.height *= f
	for i := range t.glyphs {
		t.glyphs[i].Advance *= f
	}
}

// NextTo anchors the text adjacent to a point: offset by buff along
// direction, plus the text's own half extent so the bounding box edge
// nearest the point sits at the buffered distance.
func (t *Text) NextTo(point, direction Vec2, buff float64) {
	half := Vec2{direction.X * t.Width() / 2, direction.Y * t.Height() / 2}
	t.pos = point.Add(direction.Mul(buff)).Add(half)
}

func (t *Text) Shift(d Vec2) { t.pos = t.pos.Add(d) }

// Rotate orbits the anchor about the pivot. The glyphs themselves stay
// upright; labels keep reading horizontally on a rotated line.
func (t *Text) Rotate(angle float64, about Vec2) {
	t.pos = t.pos.RotateAbout(angle, about)
}

func (t *Text) Bounds() Rect {
	half := Vec2{t.Width() / 2, t.Height() / 2}
	return Rect{Min: t.pos.Sub(half), Max: t.pos.Add(half)}
}
