// Package canvasrenderer draws built scenes via github.com/tdewolff/canvas
// and implements the typesetting backend labels are measured with.
package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/color"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/svg"

	"github.com/gradus/numline/numline"
	"github.com/gradus/numline/fonts"
	"github.com/gradus/numline/layout"
	"github.com/gradus/numline/renderer"
	"github.com/gradus/numline/scene"
)

// Format selects the output encoding.
type Format int

const (
	FormatSVG Format = iota
	FormatPDF
)

// Conversion constants between pt and mm.
const (
	PtToMm = 0.352777
	MmToPt = 1.0 / PtToMm
)

const (
	defaultUnitMM   = 10.0 // millimeters per scene unit
	defaultMarginMM = 10.0

	// refFontPt is the size glyphs are measured at; only ratios of the
	// resulting metrics matter.
	refFontPt = 32.0
	// labelCapHeight is the cap height of an unscaled label in scene
	// units.
	labelCapHeight = 0.5
)

// Options configures the canvas renderer.
type Options struct {
	Format Format
	// UnitSize is millimeters per scene unit; 0 means 10.
	UnitSize float64
	// Margin is the page margin in millimeters; 0 means 10.
	Margin float64
}

// Renderer draws scenes via tdewolff/canvas. It doubles as the
// numline.Typesetter labels are measured with, so placement and
// rendering share one set of font metrics.
type Renderer struct {
	format Format
	unitMM float64
	margin float64

	fontMu   sync.Mutex
	families map[string]*canvas.FontFamily
}

var (
	_ renderer.Renderer  = (*Renderer)(nil)
	_ numline.Typesetter = (*Renderer)(nil)
)

// New creates a renderer with default page scaling.
func New(format Format) *Renderer { return NewWithOptions(Options{Format: format}) }

// NewWithOptions creates a renderer with explicit page scaling.
func NewWithOptions(opts Options) *Renderer {
	r := &Renderer{
		format:   opts.Format,
		unitMM:   opts.UnitSize,
		margin:   opts.Margin,
		families: map[string]*canvas.FontFamily{},
	}
	if r.unitMM <= 0 {
		r.unitMM = defaultUnitMM
	}
	if r.margin <= 0 {
		r.margin = defaultMarginMM
	}
	return r
}

// TypesetNumber implements numline.Typesetter for decimal labels, using
// the math face.
func (r *Renderer) TypesetNumber(value float64, cfg numline.DecimalConfig) (*scene.Text, error) {
	return r.typeset(fonts.Math, cfg.Format(value))
}

// TypesetText implements numline.Typesetter for plain labels.
func (r *Renderer) TypesetText(content string) (*scene.Text, error) {
	return r.typeset(fonts.Text, content)
}

// typeset measures the content glyph by glyph at a reference size and
// rescales the metrics so an unscaled label has labelCapHeight-tall
// digits in scene units.
func (r *Renderer) typeset(family, content string) (*scene.Text, error) {
	face, err := r.fontFace(family, refFontPt, canvas.Black)
	if err != nil {
		return nil, err
	}
	metrics := face.Metrics()
	capH := metrics.CapHeight
	if capH <= 0 {
		capH = metrics.Ascent
	}
	if capH <= 0 {
		return nil, fmt.Errorf("canvasrenderer: face %s has no usable metrics", family)
	}
	perUnit := labelCapHeight / capH

	glyphs := make([]scene.Glyph, 0, len(content))
	for _, g := range content {
		s := string(g)
		glyphs = append(glyphs, scene.Glyph{Text: s, Advance: face.TextWidth(s) * perUnit})
	}
	size := refFontPt * perUnit
	return scene.NewText(content, family, size, glyphs, labelCapHeight), nil
}

// Render encodes the scene in the configured format.
func (r *Renderer) Render(result *layout.Result) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("canvasrenderer: empty result")
	}
	if len(result.Lines) == 0 {
		return nil, fmt.Errorf("canvasrenderer: nothing to render")
	}

	bounds := result.Bounds
	width := bounds.Width()*r.unitMM + 2*r.margin
	height := bounds.Height()*r.unitMM + 2*r.margin
	c := canvas.New(width, height)
	ctx := canvas.NewContext(c)

	toPage := func(p scene.Vec2) scene.Vec2 {
		return scene.Vec2{
			X: (p.X-bounds.Min.X)*r.unitMM + r.margin,
			Y: (p.Y-bounds.Min.Y)*r.unitMM + r.margin,
		}
	}
	if err := r.drawVisuals(ctx, result.Visuals(), toPage); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	switch r.format {
	case FormatPDF:
		writer := pdf.New(&buf, width, height, nil)
		c.RenderTo(writer)
		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("canvasrenderer: write pdf: %w", err)
		}
	case FormatSVG:
		writer := svg.New(&buf, width, height, nil)
		c.RenderTo(writer)
		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("canvasrenderer: write svg: %w", err)
		}
	default:
		return nil, fmt.Errorf("canvasrenderer: unknown format %d", r.format)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) drawVisuals(ctx *canvas.Context, vs []scene.Visual, toPage func(scene.Vec2) scene.Vec2) error {
	for _, v := range vs {
		switch t := v.(type) {
		case *scene.Group:
			if err := r.drawVisuals(ctx, t.Children(), toPage); err != nil {
				return err
			}
		case *scene.Segment:
			r.drawSegment(ctx, t, toPage)
		case *scene.Tip:
			r.drawTip(ctx, t, toPage)
		case *scene.Text:
			if err := r.drawText(ctx, t, toPage); err != nil {
				return err
			}
		default:
			return fmt.Errorf("canvasrenderer: unknown visual %T", v)
		}
	}
	return nil
}

func (r *Renderer) drawSegment(ctx *canvas.Context, s *scene.Segment, toPage func(scene.Vec2) scene.Vec2) {
	start, end := toPage(s.Start()), toPage(s.End())
	ctx.SetStrokeColor(colorFrom(s.Stroke))
	ctx.SetStrokeWidth(strokeMM(s.StrokeWidth))
	p := &canvas.Path{}
	p.MoveTo(0, 0)
	p.LineTo(end.X-start.X, end.Y-start.Y)
	ctx.DrawPath(start.X, start.Y, p)
}

func (r *Renderer) drawTip(ctx *canvas.Context, t *scene.Tip, toPage func(scene.Vec2) scene.Vec2) {
	pts := t.Points()
	apex, left, right := toPage(pts[0]), toPage(pts[1]), toPage(pts[2])
	fill := t.Stroke
	if t.Fill != nil {
		fill = *t.Fill
	}
	ctx.SetFillColor(colorFrom(fill))
	ctx.SetStrokeColor(colorFrom(t.Stroke))
	ctx.SetStrokeWidth(strokeMM(t.StrokeWidth))
	p := &canvas.Path{}
	p.MoveTo(0, 0)
	p.LineTo(left.X-apex.X, left.Y-apex.Y)
	p.LineTo(right.X-apex.X, right.Y-apex.Y)
	p.Close()
	ctx.DrawPath(apex.X, apex.Y, p)
}

func (r *Renderer) drawText(ctx *canvas.Context, t *scene.Text, toPage func(scene.Vec2) scene.Vec2) error {
	sizePt := t.Size() * r.unitMM * MmToPt
	face, err := r.fontFace(t.Font(), sizePt, colorFrom(t.Stroke))
	if err != nil {
		return err
	}
	// Anchor: the stored position is the label center; digits sit on
	// the baseline half a cap height below it.
	pos := toPage(t.Pos())
	x := pos.X - t.Width()/2*r.unitMM
	y := pos.Y - t.Height()/2*r.unitMM
	line := canvas.NewTextLine(face, t.Content(), canvas.Left)
	ctx.DrawText(x, y, line)
	return nil
}

func (r *Renderer) fontFace(family string, sizePt float64, col color.Color) (*canvas.FontFace, error) {
	fam, err := r.ensureFontFamily(family)
	if err != nil {
		return nil, err
	}
	return fam.Face(sizePt, col, canvas.FontRegular, canvas.FontNormal), nil
}

func (r *Renderer) ensureFontFamily(name string) (*canvas.FontFamily, error) {
	r.fontMu.Lock()
	defer r.fontMu.Unlock()

	if fam, ok := r.families[name]; ok {
		return fam, nil
	}
	data, err := fonts.Load(name)
	if err != nil {
		return nil, err
	}
	fam := canvas.NewFontFamily(name)
	if err := fam.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("canvasrenderer: load font %s: %w", name, err)
	}
	r.families[name] = fam
	return fam, nil
}

func colorFrom(c scene.Color) color.Color {
	return canvas.RGBA(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, 1.0)
}

// strokeMM converts a stroke width given in points to millimeters.
func strokeMM(w float64) float64 {
	if w <= 0 {
		w = 1
	}
	return w * PtToMm
}
