package fonts_test

import (
	"testing"

	"github.com/gradus/numline/fonts"
)

func TestLoadBuiltins(t *testing.T) {
	for _, name := range []string{fonts.Math, fonts.Text, "embed:math", "lmroman10-regular", "go-regular"} {
		data, err := fonts.Load(name)
		if err != nil {
			t.Errorf("Load(%q): %v", name, err)
			continue
		}
		if len(data) == 0 {
			t.Errorf("Load(%q): empty font data", name)
		}
	}
}

func TestLoadUnknown(t *testing.T) {
	if _, err := fonts.Load("comic-sans"); err == nil {
		t.Fatal("unknown font accepted")
	}
}
