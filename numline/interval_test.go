package numline

import "testing"

func TestNewIntervalRejectsBadBounds(t *testing.T) {
	if _, err := NewInterval(0, 5, 0); err == nil {
		t.Fatal("zero step accepted")
	}
	if _, err := NewInterval(0, 5, -1); err == nil {
		t.Fatal("negative step accepted")
	}
	if _, err := NewInterval(3, 3, 1); err == nil {
		t.Fatal("degenerate interval accepted")
	}
	if _, err := NewInterval(5, -5, 1); err == nil {
		t.Fatal("reversed bounds accepted")
	}
	if _, err := NewInterval(-5, 5, 1); err != nil {
		t.Fatalf("valid interval rejected: %v", err)
	}
}

func TestDecimalPlacesFromStep(t *testing.T) {
	table := []struct {
		step float64
		want int
	}{
		{1, 0},
		{2, 0},
		{10, 0},
		{0.5, 1},
		{0.1, 1},
		{2.5, 1},
		{0.25, 2},
		{0.125, 3},
	}
	for _, row := range table {
		iv := Interval{Min: 0, Max: 10, Step: row.step}
		if got := iv.DecimalPlaces(); got != row.want {
			t.Errorf("step %g: got %d decimal places, want %d", row.step, got, row.want)
		}
	}
}
