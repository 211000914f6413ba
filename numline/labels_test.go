package numline

import (
	"math"
	"testing"

	"github.com/gradus/numline/scene"
)

func TestFormatDecimal(t *testing.T) {
	table := []struct {
		value  float64
		places int
		want   string
	}{
		{3, 0, "3"},
		{-3, 0, "-3"},
		{1.5, 1, "1.5"},
		{0.25, 2, "0.25"},
		{2, 2, "2.00"},
	}
	for _, row := range table {
		if got := formatDecimal(row.value, row.places); got != row.want {
			t.Errorf("formatDecimal(%g, %d): got %q, want %q", row.value, row.places, got, row.want)
		}
	}
}

// labelAt finds the typeset label with the given content.
func labelAt(t *testing.T, g *scene.Group, content string) *scene.Text {
	t.Helper()
	for _, v := range g.Children() {
		txt, ok := v.(*scene.Text)
		if !ok {
			t.Fatalf("label group holds a %T", v)
		}
		if txt.Content() == content {
			return txt
		}
	}
	t.Fatalf("no label %q", content)
	return nil
}

func TestNumbersPlacedBelowTicks(t *testing.T) {
	nl, err := New(Options{
		Range:          &Interval{Min: -5, Max: 5, Step: 1},
		IncludeNumbers: true,
		Typesetter:     stubTypesetter{},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := nl.Numbers().Len(); got != 11 {
		t.Fatalf("label count: got %d, want 11", got)
	}
	// Stub glyphs are 0.4 wide and 0.5 tall, scaled by the default 0.75:
	// advance 0.3, height 0.375. Below a tick the label center sits at
	// buff plus half the height under the line.
	label := labelAt(t, nl.Numbers(), "3")
	wantY := -(MedSmallBuff + 0.375/2)
	approx(t, label.Pos().X, nl.NumberToPoint(3).X, 1e-12, "label x")
	approx(t, label.Pos().Y, wantY, 1e-12, "label y")
}

func TestNegativeLabelsAlignOnDigits(t *testing.T) {
	nl, err := New(Options{
		Range:          &Interval{Min: -5, Max: 5, Step: 1},
		IncludeNumbers: true,
		Typesetter:     stubTypesetter{},
	})
	if err != nil {
		t.Fatal(err)
	}
	pos := labelAt(t, nl.Numbers(), "3")
	neg := labelAt(t, nl.Numbers(), "-3")
	approx(t, pos.Pos().X, nl.NumberToPoint(3).X, 1e-12, "positive label centered")
	// The minus glyph advance is 0.4*0.75 = 0.3; the whole label shifts
	// left by half of that so the digit stays centered under the tick.
	wantX := nl.NumberToPoint(-3).X - 0.3/2
	approx(t, neg.Pos().X, wantX, 1e-12, "negative label shifted by half the sign width")
}

func TestHorizontalDirectionSkipsSignShift(t *testing.T) {
	nl, err := New(Options{
		Range:      &Interval{Min: -5, Max: 5, Step: 1},
		Typesetter: stubTypesetter{},
	})
	if err != nil {
		t.Fatal(err)
	}
	label, err := nl.NumberLabel(-3, scene.Right, MedSmallBuff)
	if err != nil {
		t.Fatal(err)
	}
	// "-3" is two glyphs: width 0.6 after scaling.
	wantX := nl.NumberToPoint(-3).X + MedSmallBuff + 0.6/2
	approx(t, label.Pos().X, wantX, 1e-12, "right-placed label not shifted")
}

func TestAddNumbersExclusion(t *testing.T) {
	nl, err := New(Options{
		Range:            &Interval{Min: -2, Max: 2, Step: 1},
		IncludeNumbers:   true,
		NumbersToExclude: []float64{0},
		Typesetter:       stubTypesetter{},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := nl.Numbers().Len(); got != 4 {
		t.Fatalf("label count with exclusion: got %d, want 4", got)
	}
	for _, v := range nl.Numbers().Children() {
		if v.(*scene.Text).Content() == "0" {
			t.Fatal("excluded number labeled")
		}
	}
}

func TestNumbersToIncludeReplacesTickRange(t *testing.T) {
	nl, err := New(Options{
		Range:            &Interval{Min: -5, Max: 5, Step: 1},
		NumbersToInclude: []float64{-2, 2},
		Typesetter:       stubTypesetter{},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := nl.Numbers().Len(); got != 2 {
		t.Fatalf("label count: got %d, want 2", got)
	}
	labelAt(t, nl.Numbers(), "-2")
	labelAt(t, nl.Numbers(), "2")
}

func TestAddNumbersRebuildsWholesale(t *testing.T) {
	nl, err := New(Options{
		Range:          &Interval{Min: 0, Max: 3, Step: 1},
		IncludeNumbers: true,
		Typesetter:     stubTypesetter{},
	})
	if err != nil {
		t.Fatal(err)
	}
	before := nl.Numbers().Len()
	if err := nl.AddNumbers(nil, nil); err != nil {
		t.Fatal(err)
	}
	if got := nl.Numbers().Len(); got != before {
		t.Fatalf("repeated AddNumbers accumulated: %d then %d", before, got)
	}
}

func TestAddLabelsDispatch(t *testing.T) {
	nl, err := New(Options{
		Range:      &Interval{Min: -5, Max: 5, Step: 1},
		Decimal:    &DecimalConfig{NumDecimalPlaces: 1},
		Typesetter: stubTypesetter{},
	})
	if err != nil {
		t.Fatal(err)
	}
	err = nl.AddLabels(map[float64]LabelContent{
		-2: TextContent("start"),
		0:  NumberContent(1.5),
		2:  VisualContent(stubText("v")),
	}, scene.Vec2{}, 0)
	if err != nil {
		t.Fatal(err)
	}
	labels := nl.Labels()
	if labels.Len() != 3 {
		t.Fatalf("label count: got %d, want 3", labels.Len())
	}
	labelAt(t, labels, "start")
	labelAt(t, labels, "1.5")
	labelAt(t, labels, "v")

	// Entries are placed in ascending key order.
	var prevX float64 = math.Inf(-1)
	for _, v := range labels.Children() {
		x := v.(*scene.Text).Pos().X
		if x <= prevX {
			t.Fatalf("labels out of order at x=%g", x)
		}
		prevX = x
	}
}

func TestAddLabelsNoSignShift(t *testing.T) {
	nl, err := New(Options{
		Range:      &Interval{Min: -5, Max: 5, Step: 1},
		Typesetter: stubTypesetter{},
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := nl.AddLabels(map[float64]LabelContent{-3: NumberContent(-3)}, scene.Vec2{}, 0); err != nil {
		t.Fatal(err)
	}
	label := labelAt(t, nl.Labels(), "-3")
	// Unlike auto numbers, explicit labels center on the whole glyph box.
	approx(t, label.Pos().X, nl.NumberToPoint(-3).X, 1e-12, "explicit label centered")
}

func TestAddLabelsWithoutTypesetter(t *testing.T) {
	nl, err := New(Options{Range: &Interval{Min: 0, Max: 3, Step: 1}})
	if err != nil {
		t.Fatal(err)
	}
	err = nl.AddLabels(map[float64]LabelContent{1: TextContent("x")}, scene.Vec2{}, 0)
	if err == nil {
		t.Fatal("text label without a typesetter accepted")
	}
	// A pre-built visual needs no typesetter.
	if err := nl.AddLabels(map[float64]LabelContent{1: VisualContent(stubText("ok"))}, scene.Vec2{}, 0); err != nil {
		t.Fatal(err)
	}
}

func TestLabelsStayUprightUnderRotation(t *testing.T) {
	nl, err := New(Options{
		Range:          &Interval{Min: -2, Max: 2, Step: 1},
		Rotation:       math.Pi / 3,
		IncludeNumbers: true,
		Typesetter:     stubTypesetter{},
	})
	if err != nil {
		t.Fatal(err)
	}
	// Labels are attached after the body rotates: each hangs straight
	// below its rotated tick point.
	label := labelAt(t, nl.Numbers(), "1")
	anchor := nl.NumberToPoint(1)
	approx(t, label.Pos().X, anchor.X, 1e-12, "label x under rotation")
	approx(t, label.Pos().Y, anchor.Y-(MedSmallBuff+0.375/2), 1e-12, "label y under rotation")
}
