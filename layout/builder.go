package layout

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/gradus/numline/numline"
	"github.com/gradus/numline/binding"
	"github.com/gradus/numline/dsl"
	"github.com/gradus/numline/scene"
)

// lineSpacing is the vertical buffer between stacked number lines.
const lineSpacing = 1.0

// sceneConstraint is the scene-file version range this builder accepts.
var sceneConstraint = func() *semver.Constraints {
	c, err := semver.NewConstraint("^1")
	if err != nil {
		panic(err)
	}
	return c
}()

// Build assembles the scene: one NumberLine per numberline section,
// stacked top to bottom with a buffer, first line centered at the
// origin. data feeds ${path} placeholders in label strings.
func Build(doc *dsl.Document, data any, opts BuildOptions) (*Result, error) {
	if doc == nil {
		return nil, fmt.Errorf("layout: empty document")
	}
	if opts.Typesetter == nil {
		return nil, fmt.Errorf("layout: missing typesetter backend")
	}
	if err := checkVersion(string(doc.Version)); err != nil {
		return nil, err
	}
	if len(doc.Lines) == 0 {
		return nil, fmt.Errorf("layout: scene %q declares no number lines", doc.Name)
	}

	result := &Result{
		Meta: Meta{Name: doc.Name, Version: string(doc.Version)},
	}
	floor := math.Inf(1) // bottom edge of everything placed so far
	for _, section := range doc.Lines {
		nl, err := buildLine(section, data, opts)
		if err != nil {
			return nil, err
		}
		bounds := nl.Bounds()
		if !math.IsInf(floor, 1) {
			nl.Shift(scene.Vec2{Y: floor - lineSpacing - bounds.Max.Y})
			bounds = nl.Bounds()
		}
		floor = bounds.Min.Y

		line := &Line{
			Name:       section.Name,
			Interval:   nl.Interval(),
			Ticks:      nl.TickRange(),
			Bounds:     bounds,
			NumberLine: nl,
		}
		if opts.Debug.TickPoints {
			for _, x := range line.Ticks {
				line.TickPoints = append(line.TickPoints, nl.NumberToPoint(x))
			}
		}
		result.Lines = append(result.Lines, line)
		if len(result.Lines) == 1 {
			result.Bounds = bounds
		} else {
			result.Bounds = result.Bounds.Union(bounds)
		}
	}
	return result, nil
}

func checkVersion(version string) error {
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("layout: invalid scene version %q: %w", version, err)
	}
	if !sceneConstraint.Check(v) {
		return fmt.Errorf("layout: unsupported scene version %s (supported: %s)", v, sceneConstraint)
	}
	return nil
}

// buildLine maps one numberline section onto numline.Options, builds
// the line, and attaches any explicit labels.
func buildLine(section *dsl.LineSection, data any, opts BuildOptions) (*numline.NumberLine, error) {
	o := numline.Options{Typesetter: opts.Typesetter}
	var labelEntries map[float64]numline.LabelContent

	if section.Block == nil {
		return nil, fmt.Errorf("layout: numberline %s has no body", section.Name)
	}
	for _, stmt := range section.Block.Statements {
		switch {
		case stmt.Labels != nil:
			entries, err := parseLabelEntries(stmt.Labels, data)
			if err != nil {
				return nil, fmt.Errorf("layout: numberline %s: %w", section.Name, err)
			}
			labelEntries = entries
		case stmt.Assignment != nil:
			if err := applyAssignment(&o, stmt.Assignment); err != nil {
				return nil, fmt.Errorf("layout: numberline %s: %w", section.Name, err)
			}
		}
	}

	nl, err := numline.New(o)
	if err != nil {
		return nil, fmt.Errorf("layout: numberline %s: %w", section.Name, err)
	}
	if labelEntries != nil {
		if err := nl.AddLabels(labelEntries, scene.Vec2{}, 0); err != nil {
			return nil, fmt.Errorf("layout: numberline %s: %w", section.Name, err)
		}
	}
	return nl, nil
}

func applyAssignment(o *numline.Options, a *dsl.Assignment) error {
	wrap := func(err error) error {
		if err != nil {
			return fmt.Errorf("%s (%s): %w", a.Key, a.Pos, err)
		}
		return nil
	}
	switch a.Key {
	case "range":
		vals, err := valueFloats(a.Value)
		if err != nil {
			return wrap(err)
		}
		iv, err := intervalFrom(vals)
		if err != nil {
			return wrap(err)
		}
		o.Range = &iv
	case "length":
		return wrap(setFloat(&o.Length, a.Value))
	case "unit-size":
		return wrap(setFloat(&o.UnitSize, a.Value))
	case "tick-size":
		return wrap(setFloat(&o.TickSize, a.Value))
	case "longer-tick-multiple":
		return wrap(setFloat(&o.LongerTickMultiple, a.Value))
	case "stroke-width":
		return wrap(setFloat(&o.StrokeWidth, a.Value))
	case "tip-width":
		return wrap(setFloat(&o.TipWidth, a.Value))
	case "tip-height":
		return wrap(setFloat(&o.TipHeight, a.Value))
	case "number-scale":
		return wrap(setFloat(&o.NumberScale, a.Value))
	case "label-buff":
		return wrap(setFloat(&o.LineToNumberBuff, a.Value))
	case "rotation":
		angle, err := valueAngle(a.Value)
		if err != nil {
			return wrap(err)
		}
		o.Rotation = angle
	case "include-ticks":
		b, err := valueBool(a.Value)
		if err != nil {
			return wrap(err)
		}
		o.OmitTicks = !b
	case "include-tip":
		return wrap(setBool(&o.IncludeTip, a.Value))
	case "include-numbers":
		return wrap(setBool(&o.IncludeNumbers, a.Value))
	case "exclude-origin-tick":
		return wrap(setBool(&o.ExcludeOriginTick, a.Value))
	case "color":
		c, err := valueColor(a.Value)
		if err != nil {
			return wrap(err)
		}
		o.Color = c
	case "label-direction":
		d, err := valueDirection(a.Value)
		if err != nil {
			return wrap(err)
		}
		o.LabelDirection = d
	case "elongated-ticks":
		vals, err := valueFloats(a.Value)
		if err != nil {
			return wrap(err)
		}
		o.ElongatedTicks = vals
	case "exclude":
		vals, err := valueFloats(a.Value)
		if err != nil {
			return wrap(err)
		}
		o.NumbersToExclude = vals
	case "include":
		vals, err := valueFloats(a.Value)
		if err != nil {
			return wrap(err)
		}
		o.NumbersToInclude = vals
	case "decimal-places":
		f, err := valueFloat(a.Value)
		if err != nil {
			return wrap(err)
		}
		o.Decimal = &numline.DecimalConfig{NumDecimalPlaces: int(f)}
	default:
		return fmt.Errorf("unknown assignment %q (%s)", a.Key, a.Pos)
	}
	return nil
}

func parseLabelEntries(block *dsl.LabelsBlock, data any) (map[float64]numline.LabelContent, error) {
	entries := make(map[float64]numline.LabelContent, len(block.Entries))
	for _, e := range block.Entries {
		at, _, err := splitNumberToken(e.At)
		if err != nil {
			return nil, fmt.Errorf("label position %q (%s): %w", e.At, e.Pos, err)
		}
		switch {
		case e.Value != nil && e.Value.String != nil:
			entries[at] = numline.TextContent(binding.Interpolate(string(*e.Value.String), data))
		case e.Value != nil && e.Value.Number != nil:
			v, _, err := splitNumberToken(*e.Value.Number)
			if err != nil {
				return nil, fmt.Errorf("label value at %g (%s): %w", at, e.Pos, err)
			}
			entries[at] = numline.NumberContent(v)
		default:
			return nil, fmt.Errorf("label at %g (%s): want number or string, got %s", at, e.Pos, e.Value.Kind())
		}
	}
	return entries, nil
}

func intervalFrom(vals []float64) (numline.Interval, error) {
	switch len(vals) {
	case 2:
		return numline.NewInterval(vals[0], vals[1], 1)
	case 3:
		return numline.NewInterval(vals[0], vals[1], vals[2])
	default:
		return numline.Interval{}, fmt.Errorf("range wants [min, max] or [min, max, step], got %d values", len(vals))
	}
}

func setFloat(dst *float64, v *dsl.Value) error {
	f, err := valueFloat(v)
	if err != nil {
		return err
	}
	*dst = f
	return nil
}

func setBool(dst *bool, v *dsl.Value) error {
	b, err := valueBool(v)
	if err != nil {
		return err
	}
	*dst = b
	return nil
}

func valueFloat(v *dsl.Value) (float64, error) {
	if v == nil || v.Number == nil {
		return 0, fmt.Errorf("want number, got %s", v.Kind())
	}
	f, unit, err := splitNumberToken(*v.Number)
	if err != nil {
		return 0, err
	}
	if unit != "" && unit != "x" {
		return 0, fmt.Errorf("unexpected unit %q on %s", unit, *v.Number)
	}
	return f, nil
}

// valueAngle accepts "15deg", "0.3rad" or a bare radian number.
func valueAngle(v *dsl.Value) (float64, error) {
	if v == nil || v.Number == nil {
		return 0, fmt.Errorf("want angle, got %s", v.Kind())
	}
	f, unit, err := splitNumberToken(*v.Number)
	if err != nil {
		return 0, err
	}
	switch unit {
	case "deg":
		return f * math.Pi / 180, nil
	case "", "rad":
		return f, nil
	default:
		return 0, fmt.Errorf("unknown angle unit %q on %s", unit, *v.Number)
	}
}

func valueBool(v *dsl.Value) (bool, error) {
	if v == nil || v.Ident == nil {
		return false, fmt.Errorf("want true or false, got %s", v.Kind())
	}
	switch strings.ToLower(*v.Ident) {
	case "true", "yes", "on":
		return true, nil
	case "false", "no", "off":
		return false, nil
	}
	return false, fmt.Errorf("want true or false, got %q", *v.Ident)
}

func valueFloats(v *dsl.Value) ([]float64, error) {
	if v == nil || v.Array == nil {
		return nil, fmt.Errorf("want array, got %s", v.Kind())
	}
	out := make([]float64, 0, len(v.Array.Values))
	for _, item := range v.Array.Values {
		f, err := valueFloat(item)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func valueColor(v *dsl.Value) (scene.Color, error) {
	if v == nil || v.Color == nil {
		return scene.Color{}, fmt.Errorf("want #rrggbb color, got %s", v.Kind())
	}
	return parseHexColor(*v.Color)
}

func valueDirection(v *dsl.Value) (scene.Vec2, error) {
	if v == nil || v.Ident == nil {
		return scene.Vec2{}, fmt.Errorf("want direction name, got %s", v.Kind())
	}
	switch strings.ToLower(*v.Ident) {
	case "up":
		return scene.Up, nil
	case "down":
		return scene.Down, nil
	case "left":
		return scene.Left, nil
	case "right":
		return scene.Right, nil
	}
	return scene.Vec2{}, fmt.Errorf("unknown direction %q", *v.Ident)
}

// parseHexColor decodes a #rgb, #rrggbb or #rrggbbaa token. The alpha
// channel, when present, is ignored.
func parseHexColor(tok string) (scene.Color, error) {
	hex := strings.TrimPrefix(tok, "#")
	switch len(hex) {
	case 3:
		return scene.Color{
			R: mustHex(strings.Repeat(string(hex[0]), 2)),
			G: mustHex(strings.Repeat(string(hex[1]), 2)),
			B: mustHex(strings.Repeat(string(hex[2]), 2)),
		}, nil
	case 6, 8:
		return scene.Color{
			R: mustHex(hex[0:2]),
			G: mustHex(hex[2:4]),
			B: mustHex(hex[4:6]),
		}, nil
	default:
		return scene.Color{}, fmt.Errorf("invalid color %q: want #rgb or #rrggbb", tok)
	}
}

// mustHex is only fed lexer-validated hex digit pairs.
func mustHex(s string) int {
	v, _ := strconv.ParseInt(s, 16, 64)
	return int(v)
}

// splitNumberToken separates a DSL number token into its numeric value
// and trailing unit suffix ("deg", "rad", "x" or empty).
func splitNumberToken(tok string) (float64, string, error) {
	num := tok
	unit := ""
	for _, suffix := range []string{"deg", "rad", "x"} {
		if strings.HasSuffix(tok, suffix) {
			num = strings.TrimSuffix(tok, suffix)
			unit = suffix
			break
		}
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, "", fmt.Errorf("invalid number %q", tok)
	}
	return f, unit, nil
}
