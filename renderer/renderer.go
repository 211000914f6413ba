package renderer

import "github.com/gradus/numline/layout"

// Renderer encodes a built scene into final file bytes, for example an
// SVG or PDF document.
type Renderer interface {
	Render(result *layout.Result) ([]byte, error)
}
