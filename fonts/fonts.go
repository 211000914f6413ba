// Package fonts serves the built-in label fonts. Numeric (math-typeset)
// labels use Latin Modern Roman, the TeX text face; plain labels use Go
// Regular. Both come from published font modules, so no binary assets
// live in this repository.
package fonts

import (
	"fmt"
	"strings"

	"github.com/go-fonts/latin-modern/lmroman10regular"
	"golang.org/x/image/font/gofont/goregular"
)

// Family keys understood by Load and by the typesetter.
const (
	Math = "math"
	Text = "text"
)

// Load returns the font bytes for a built-in family. Names may carry an
// "embed:" prefix for symmetry with resource paths elsewhere.
func Load(name string) ([]byte, error) {
	switch strings.TrimPrefix(name, "embed:") {
	case Math, "lmroman10-regular":
		return lmroman10regular.TTF, nil
	case Text, "go-regular":
		return goregular.TTF, nil
	}
	return nil, fmt.Errorf("fonts: unknown built-in font %q", name)
}
