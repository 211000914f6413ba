package layout_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gradus/numline/numline"
	"github.com/gradus/numline/dsl"
	"github.com/gradus/numline/layout"
	"github.com/gradus/numline/scene"
)

type stubTypesetter struct{}

func (stubTypesetter) TypesetNumber(value float64, cfg numline.DecimalConfig) (*scene.Text, error) {
	return stubText(cfg.Format(value)), nil
}

func (stubTypesetter) TypesetText(content string) (*scene.Text, error) {
	return stubText(content), nil
}

func stubText(content string) *scene.Text {
	glyphs := make([]scene.Glyph, 0, len(content))
	for _, r := range content {
		glyphs = append(glyphs, scene.Glyph{Text: string(r), Advance: 0.4})
	}
	return scene.NewText(content, "stub", 0.5, glyphs, 0.5)
}

func parse(t *testing.T, input string) *dsl.Document {
	t.Helper()
	doc, err := dsl.ParseString(input)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return doc
}

func build(t *testing.T, input string, data any) *layout.Result {
	t.Helper()
	res, err := layout.Build(parse(t, input), data, layout.BuildOptions{Typesetter: stubTypesetter{}})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	return res
}

const twoLineScene = `
scene demo "1.2.0" {
    numberline top {
        range: [-10, 10, 2]
        length: 10
        color: #5899ff
        include-numbers: true
    }

    numberline bottom {
        range: [0, 1, 0.5]
        unit-size: 8
    }
}
`

func TestBuildAssignsOptions(t *testing.T) {
	res := build(t, twoLineScene, nil)

	if res.Meta.Name != "demo" || res.Meta.Version != "1.2.0" {
		t.Fatalf("meta: got %+v", res.Meta)
	}
	if len(res.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(res.Lines))
	}

	top := res.Lines[0]
	if top.Name != "top" {
		t.Fatalf("expected line top, got %s", top.Name)
	}
	if top.Interval != (numline.Interval{Min: -10, Max: 10, Step: 2}) {
		t.Fatalf("top interval: got %+v", top.Interval)
	}
	seg := top.NumberLine.Geometry().Segment()
	if math.Abs(seg.Length()-10) > 1e-9 {
		t.Fatalf("top length: got %g", seg.Length())
	}
	if seg.Stroke != (scene.Color{R: 0x58, G: 0x99, B: 0xff}) {
		t.Fatalf("top color: got %+v", seg.Stroke)
	}
	if top.NumberLine.Numbers() == nil || top.NumberLine.Numbers().Len() == 0 {
		t.Fatal("top numbers missing")
	}

	bottom := res.Lines[1]
	if math.Abs(bottom.NumberLine.UnitSize()-8) > 1e-9 {
		t.Fatalf("bottom unit size: got %g", bottom.NumberLine.UnitSize())
	}
}

func TestBuildStacksLinesWithoutOverlap(t *testing.T) {
	res := build(t, twoLineScene, nil)

	top, bottom := res.Lines[0], res.Lines[1]
	if bottom.Bounds.Max.Y > top.Bounds.Min.Y-1.0+1e-9 {
		t.Fatalf("lines overlap: top floor %g, bottom ceiling %g",
			top.Bounds.Min.Y, bottom.Bounds.Max.Y)
	}
	// The first line stays where construction centered it.
	if math.Abs(top.NumberLine.Geometry().Segment().Mid().Y) > 1e-9 {
		t.Fatalf("first line moved: mid %+v", top.NumberLine.Geometry().Segment().Mid())
	}
	// Overall bounds cover both lines.
	want := top.Bounds.Union(bottom.Bounds)
	if res.Bounds != want {
		t.Fatalf("scene bounds: got %+v, want %+v", res.Bounds, want)
	}
}

func TestBuildLabelsWithBinding(t *testing.T) {
	input := `
scene s "1.0.0" {
    numberline axis {
        range: [-5, 5]
        labels {
            -2: "${names.low}"
            4: 4.5
        }
    }
}
`
	var data any = map[string]any{
		"names": map[string]any{"low": "floor"},
	}
	res := build(t, input, data)

	labels := res.Lines[0].NumberLine.Labels()
	if labels == nil || labels.Len() != 2 {
		t.Fatalf("expected 2 labels, got %+v", labels)
	}
	contents := make([]string, 0, labels.Len())
	for _, v := range labels.Children() {
		contents = append(contents, v.(*scene.Text).Content())
	}
	if contents[0] != "floor" {
		t.Fatalf("bound label: got %q", contents[0])
	}
	// Numeric label precision follows the interval step (here 1, so no
	// decimal places) and rounds accordingly.
	if contents[1] != "4" && contents[1] != "5" {
		t.Fatalf("numeric label: got %q", contents[1])
	}
}

func TestBuildRotationAndAngleUnits(t *testing.T) {
	input := `
scene s "1.0.0" {
    numberline a {
        range: [0, 4]
        rotation: 90deg
    }
    numberline b {
        range: [0, 4]
        rotation: 0.5rad
    }
}
`
	res := build(t, input, nil)
	a := res.Lines[0].NumberLine.Geometry().Segment()
	if math.Abs(a.Angle()-math.Pi/2) > 1e-9 {
		t.Fatalf("deg rotation: got %g", a.Angle())
	}
	b := res.Lines[1].NumberLine.Geometry().Segment()
	if math.Abs(b.Angle()-0.5) > 1e-9 {
		t.Fatalf("rad rotation: got %g", b.Angle())
	}
}

func TestBuildRejectsUnknownKey(t *testing.T) {
	input := `
scene s "1.0.0" {
    numberline a {
        rnage: [0, 4]
    }
}
`
	_, err := layout.Build(parse(t, input), nil, layout.BuildOptions{Typesetter: stubTypesetter{}})
	if err == nil || !strings.Contains(err.Error(), "rnage") {
		t.Fatalf("expected unknown-key error naming the key, got %v", err)
	}
}

func TestBuildRejectsVersions(t *testing.T) {
	for _, version := range []string{"2.0.0", "0.9.0", "not-a-version"} {
		input := `
scene s "` + version + `" {
    numberline a { range: [0, 4] }
}
`
		if _, err := layout.Build(parse(t, input), nil, layout.BuildOptions{Typesetter: stubTypesetter{}}); err == nil {
			t.Errorf("accepted scene version %q", version)
		}
	}
}

func TestBuildRejectsEmptyInput(t *testing.T) {
	if _, err := layout.Build(nil, nil, layout.BuildOptions{Typesetter: stubTypesetter{}}); err == nil {
		t.Fatal("accepted nil document")
	}
	doc := parse(t, `
scene s "1.0.0" {
}
`)
	if _, err := layout.Build(doc, nil, layout.BuildOptions{Typesetter: stubTypesetter{}}); err == nil {
		t.Fatal("accepted scene without number lines")
	}
	withLine := parse(t, `
scene s "1.0.0" {
    numberline a { range: [0, 4] }
}
`)
	if _, err := layout.Build(withLine, nil, layout.BuildOptions{}); err == nil {
		t.Fatal("accepted missing typesetter")
	}
}

func TestBuildDebugTickPoints(t *testing.T) {
	doc := parse(t, `
scene s "1.0.0" {
    numberline a { range: [0, 4] }
}
`)
	res, err := layout.Build(doc, nil, layout.BuildOptions{
		Typesetter: stubTypesetter{},
		Debug:      layout.DebugOptions{TickPoints: true},
	})
	if err != nil {
		t.Fatal(err)
	}
	line := res.Lines[0]
	if len(line.TickPoints) != len(line.Ticks) {
		t.Fatalf("tick points: got %d for %d ticks", len(line.TickPoints), len(line.Ticks))
	}
	for i, p := range line.TickPoints {
		got := line.NumberLine.PointToNumber(p)
		if math.Abs(got-line.Ticks[i]) > 1e-9 {
			t.Fatalf("tick point %d maps to %g, want %g", i, got, line.Ticks[i])
		}
	}
}

func TestWriteDebugJSON(t *testing.T) {
	res := build(t, twoLineScene, nil)
	path := filepath.Join(t.TempDir(), "scene.json")
	if err := layout.WriteDebugJSON(res, path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"name": "demo"`, `"ticks"`, `"bounds"`} {
		if !strings.Contains(string(data), want) {
			t.Fatalf("debug JSON missing %s:\n%s", want, data)
		}
	}
}
