package layout

// This file defines the built-scene result shared by the renderer and
// the debug JSON dump.

import (
	"github.com/gradus/numline/numline"
	"github.com/gradus/numline/scene"
)

// Result holds the assembled scene: every number line placed in its
// final position, plus overall bounds in scene units.
type Result struct {
	Meta   Meta       `json:"meta"`
	Lines  []*Line    `json:"lines"`
	Bounds scene.Rect `json:"bounds"`
}

// Meta records the scene header.
type Meta struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Line pairs a built number line with the summary the debug dump
// exposes. NumberLine itself stays out of the JSON; its tick values,
// interval and placed bounds are what a caller debugging a scene needs.
type Line struct {
	Name     string           `json:"name"`
	Interval numline.Interval `json:"interval"`
	Ticks    []float64        `json:"ticks"`
	Bounds   scene.Rect       `json:"bounds"`
	// TickPoints holds the mapped scene point of every tick, filled
	// only when DebugOptions.TickPoints is set.
	TickPoints []scene.Vec2 `json:"tickPoints,omitempty"`

	NumberLine *numline.NumberLine `json:"-"`
}

// Visuals returns every drawable in paint order, line by line.
func (r *Result) Visuals() []scene.Visual {
	var vs []scene.Visual
	for _, l := range r.Lines {
		vs = append(vs, l.NumberLine.Visuals()...)
	}
	return vs
}
