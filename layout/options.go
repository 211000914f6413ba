package layout

import "github.com/gradus/numline/numline"

// BuildOptions configures scene assembly, notably the typesetting
// backend labels are rendered with.
type BuildOptions struct {
	Typesetter numline.Typesetter
	Debug      DebugOptions
}

// DebugOptions controls extra fields in the debug JSON.
type DebugOptions struct {
	TickPoints bool // include each tick's mapped scene point
}
