package scene

// Color uses 0-255 RGB values.
type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// Style carries the stroke and fill configuration shared by all
// visuals. Fill is nil for unfilled shapes.
type Style struct {
	Stroke      Color   `json:"stroke"`
	StrokeWidth float64 `json:"strokeWidth"`
	Fill        *Color  `json:"fill,omitempty"`
}

// MatchStyle copies another visual's style wholesale.
func (s *Style) MatchStyle(o Style) {
	*s = o
	if o.Fill != nil {
		fill := *o.Fill
		s.Fill = &fill
	}
}
