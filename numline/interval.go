package numline

import (
	"fmt"
	"strconv"
	"strings"
)

// Interval is the numeric range of a number line: [Min, Max] marked
// every Step. Construct through NewInterval; both coordinate transforms
// divide by the interval width, so a degenerate interval must never
// reach them.
type Interval struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step"`
}

// NewInterval validates and returns an interval.
func NewInterval(min, max, step float64) (Interval, error) {
	iv := Interval{Min: min, Max: max, Step: step}
	return iv, iv.validate()
}

func (iv Interval) validate() error {
	if iv.Step <= 0 {
		return fmt.Errorf("numline: step must be positive, got %g", iv.Step)
	}
	if iv.Max == iv.Min {
		return fmt.Errorf("numline: degenerate interval [%g, %g]", iv.Min, iv.Max)
	}
	if iv.Max < iv.Min {
		return fmt.Errorf("numline: interval bounds out of order [%g, %g]", iv.Min, iv.Max)
	}
	return nil
}

// Width returns Max - Min.
func (iv Interval) Width() float64 { return iv.Max - iv.Min }

// DecimalPlaces derives the default label precision from the textual
// form of the step: a step of 0.25 labels with two decimal places, a
// step of 2 with none.
func (iv Interval) DecimalPlaces() int {
	s := strconv.FormatFloat(iv.Step, 'f', -1, 64)
	_, frac, ok := strings.Cut(s, ".")
	if !ok {
		return 0
	}
	return len(frac)
}
