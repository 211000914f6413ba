package numline

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/gradus/numline/scene"
)

// Typesetter turns a number or a string into a typeset visual with
// per-glyph advances. The canvas renderer implements it; tests use a
// stub with synthetic metrics.
type Typesetter interface {
	// TypesetNumber renders a decimal value with the given precision.
	TypesetNumber(value float64, cfg DecimalConfig) (*scene.Text, error)
	// TypesetText renders plain text.
	TypesetText(content string) (*scene.Text, error)
}

func formatDecimal(value float64, places int) string {
	return strconv.FormatFloat(value, 'f', places, 64)
}

// LabelContent is a tagged union over the three things a caller may
// attach at a number: a numeric value (math-typeset), a plain string
// (text-typeset), or an already-built visual (passed through). The tag
// is resolved once at label creation.
type LabelContent struct {
	kind   labelKind
	number float64
	text   string
	visual *scene.Text
}

type labelKind int

const (
	labelNumber labelKind = iota
	labelText
	labelVisual
)

// NumberContent labels with a decimal value.
func NumberContent(v float64) LabelContent { return LabelContent{kind: labelNumber, number: v} }

// TextContent labels with plain text.
func TextContent(s string) LabelContent { return LabelContent{kind: labelText, text: s} }

// VisualContent attaches a pre-built visual unchanged.
func VisualContent(t *scene.Text) LabelContent { return LabelContent{kind: labelVisual, visual: t} }

// NumberLabel typesets one numeric label, scales it, and anchors it
// next to the number's point offset by buff along direction. Negative
// numbers placed with no horizontal direction component are shifted
// left by half the minus glyph's width so their digits, not the sign,
// sit centered under the tick like their positive siblings.
func (nl *NumberLine) NumberLabel(x float64, direction scene.Vec2, buff float64) (*scene.Text, error) {
	if nl.cfg.Typesetter == nil {
		return nil, fmt.Errorf("numline: label for %g requested without a typesetter", x)
	}
	label, err := nl.cfg.Typesetter.TypesetNumber(x, nl.cfg.Decimal)
	if err != nil {
		return nil, err
	}
	label.Scale(nl.cfg.NumberScale)
	label.NextTo(nl.geom.NumberToPoint(x), direction, buff)
	if x < 0 && direction.X == 0 {
		label.Shift(scene.Left.Mul(label.FirstGlyphWidth() / 2))
	}
	return label, nil
}

// AddNumbers rebuilds the auto number group. A nil values slice means
// the full tick range; a nil excluding slice means the configured
// exclusions. Exclusion is exact-equality filtering, so an interval
// with no ticks yields an empty group rather than an error.
func (nl *NumberLine) AddNumbers(values, excluding []float64) error {
	if values == nil {
		values = nl.TickRange()
	}
	if excluding == nil {
		excluding = nl.cfg.NumbersToExclude
	}
	numbers := scene.NewGroup("numbers")
	for _, x := range values {
		if containsExact(excluding, x) {
			continue
		}
		label, err := nl.NumberLabel(x, nl.cfg.LabelDirection, nl.cfg.LineToNumberBuff)
		if err != nil {
			return err
		}
		numbers.Add(label)
	}
	nl.numbers = numbers
	return nil
}

// AddLabels rebuilds the explicit label group from a value-to-content
// mapping, anchored like number labels. A zero direction falls back to
// the configured label direction, a zero buff to the configured buffer.
// Entries are placed in ascending key order.
func (nl *NumberLine) AddLabels(entries map[float64]LabelContent, direction scene.Vec2, buff float64) error {
	if direction == (scene.Vec2{}) {
		direction = nl.cfg.LabelDirection
	}
	if buff == 0 {
		buff = nl.cfg.LineToNumberBuff
	}

	keys := make([]float64, 0, len(entries))
	for x := range entries {
		keys = append(keys, x)
	}
	slices.Sort(keys)

	labels := scene.NewGroup("labels")
	for _, x := range keys {
		label, err := nl.newLabel(entries[x])
		if err != nil {
			return err
		}
		label.Scale(nl.cfg.NumberScale)
		label.NextTo(nl.geom.NumberToPoint(x), direction, buff)
		labels.Add(label)
	}
	nl.labels = labels
	return nil
}

func (nl *NumberLine) newLabel(content LabelContent) (*scene.Text, error) {
	if content.kind != labelVisual && nl.cfg.Typesetter == nil {
		return nil, fmt.Errorf("numline: labels requested without a typesetter")
	}
	switch content.kind {
	case labelNumber:
		return nl.cfg.Typesetter.TypesetNumber(content.number, nl.cfg.Decimal)
	case labelText:
		return nl.cfg.Typesetter.TypesetText(content.text)
	case labelVisual:
		if content.visual == nil {
			return nil, fmt.Errorf("numline: nil visual label")
		}
		return content.visual, nil
	default:
		return nil, fmt.Errorf("numline: unknown label content kind %d", content.kind)
	}
}
