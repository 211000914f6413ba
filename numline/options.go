package numline

import (
	"fmt"
	"math"
	"slices"

	"github.com/gradus/numline/scene"
)

// Defaults applied by Options.normalize. Exported so presets and the
// scene builder can reference them.
const (
	// DefaultFrameHalfWidth is half the width of a 16:9 frame that is 8
	// scene units tall; an unset range becomes [-round(h), round(h), 1].
	DefaultFrameHalfWidth = 64.0 / 9.0

	DefaultTickSize           = 0.1
	DefaultLongerTickMultiple = 2.0
	DefaultStrokeWidth        = 2.0
	DefaultTipWidth           = 0.25
	DefaultTipHeight          = 0.25
	DefaultNumberScale        = 0.75

	// MedSmallBuff is the default gap between the line and its labels.
	MedSmallBuff = 0.25
)

// LightGrey is the default line color.
var LightGrey = scene.Color{R: 187, G: 187, B: 187}

// DecimalConfig controls how numeric labels are formatted. The zero
// value means "no decimal places"; when the whole config is left unset
// on Options the precision is derived from the interval step instead.
type DecimalConfig struct {
	NumDecimalPlaces int `json:"numDecimalPlaces"`
}

// Format renders a value at the configured precision.
func (c DecimalConfig) Format(value float64) string {
	return formatDecimal(value, c.NumDecimalPlaces)
}

// Options configures a NumberLine. The zero value of each field means
// "use the default" documented on it; defaults are resolved once at
// construction and never shared between instances.
type Options struct {
	// Range is the numeric interval. Nil derives it from
	// FrameHalfWidth; a Range with Step 0 gets Step 1.
	Range *Interval
	// FrameHalfWidth seeds the default range; 0 means
	// DefaultFrameHalfWidth.
	FrameHalfWidth float64

	// Length fixes the geometric length of the line; when 0 the line is
	// scaled by UnitSize instead (0 meaning 1).
	Length   float64
	UnitSize float64

	// OmitTicks suppresses tick marks (they are included by default).
	OmitTicks bool
	// TickSize is the half-length of a tick mark; 0 means 0.1.
	TickSize float64
	// ElongatedTicks lists values whose ticks are drawn longer.
	// Membership is exact float equality against the generated tick
	// numbers; values that match no tick silently have no effect.
	ElongatedTicks []float64
	// LongerTickMultiple scales elongated ticks; 0 means 2.
	LongerTickMultiple float64
	// ExcludeOriginTick drops the tick at zero on straddling intervals.
	ExcludeOriginTick bool

	// Color is the stroke color; the zero value means LightGrey.
	Color scene.Color
	// Rotation is applied to the assembled line (ticks and tip
	// included) about its center, in radians.
	Rotation float64
	// StrokeWidth of the line; 0 means 2.
	StrokeWidth float64

	// IncludeTip appends an arrowhead at the max end.
	IncludeTip bool
	// TipWidth and TipHeight size the arrowhead; 0 means 0.25.
	TipWidth  float64
	TipHeight float64

	// IncludeNumbers labels every generated tick.
	IncludeNumbers bool
	// LabelDirection offsets labels from their tick; the zero vector
	// means scene.Down.
	LabelDirection scene.Vec2
	// LineToNumberBuff is the gap between line and label; 0 means
	// MedSmallBuff.
	LineToNumberBuff float64
	// Decimal overrides the step-derived label precision.
	Decimal *DecimalConfig
	// NumbersToExclude filters auto labels by exact equality.
	NumbersToExclude []float64
	// NumbersToInclude labels exactly these values instead of the tick
	// range (and implies numbering).
	NumbersToInclude []float64
	// NumberScale scales label visuals; 0 means 0.75.
	NumberScale float64

	// Typesetter renders label visuals. Required whenever numbering or
	// labeling is requested.
	Typesetter Typesetter
}

// config is the resolved form of Options.
type config struct {
	Range              Interval
	Length             float64
	UnitSize           float64
	OmitTicks          bool
	TickSize           float64
	ElongatedTicks     []float64
	LongerTickMultiple float64
	ExcludeOriginTick  bool
	Color              scene.Color
	Rotation           float64
	StrokeWidth        float64
	IncludeTip         bool
	TipWidth           float64
	TipHeight          float64
	IncludeNumbers     bool
	LabelDirection     scene.Vec2
	LineToNumberBuff   float64
	Decimal            DecimalConfig
	NumbersToExclude   []float64
	NumbersToInclude   []float64
	NumberScale        float64
	Typesetter         Typesetter
}

func (o Options) normalize() (config, error) {
	cfg := config{
		Length:             o.Length,
		UnitSize:           o.UnitSize,
		OmitTicks:          o.OmitTicks,
		TickSize:           o.TickSize,
		ElongatedTicks:     slices.Clone(o.ElongatedTicks),
		LongerTickMultiple: o.LongerTickMultiple,
		ExcludeOriginTick:  o.ExcludeOriginTick,
		Color:              o.Color,
		Rotation:           o.Rotation,
		StrokeWidth:        o.StrokeWidth,
		IncludeTip:         o.IncludeTip,
		TipWidth:           o.TipWidth,
		TipHeight:          o.TipHeight,
		IncludeNumbers:     o.IncludeNumbers,
		LabelDirection:     o.LabelDirection,
		LineToNumberBuff:   o.LineToNumberBuff,
		NumbersToExclude:   slices.Clone(o.NumbersToExclude),
		NumbersToInclude:   slices.Clone(o.NumbersToInclude),
		NumberScale:        o.NumberScale,
		Typesetter:         o.Typesetter,
	}

	if o.Range != nil {
		cfg.Range = *o.Range
		if cfg.Range.Step == 0 {
			cfg.Range.Step = 1
		}
	} else {
		half := o.FrameHalfWidth
		if half <= 0 {
			half = DefaultFrameHalfWidth
		}
		cfg.Range = Interval{Min: -math.Round(half), Max: math.Round(half), Step: 1}
	}
	if err := cfg.Range.validate(); err != nil {
		return config{}, err
	}

	if cfg.UnitSize <= 0 {
		cfg.UnitSize = 1
	}
	if cfg.TickSize <= 0 {
		cfg.TickSize = DefaultTickSize
	}
	if cfg.LongerTickMultiple <= 0 {
		cfg.LongerTickMultiple = DefaultLongerTickMultiple
	}
	if cfg.Color == (scene.Color{}) {
		cfg.Color = LightGrey
	}
	if cfg.StrokeWidth <= 0 {
		cfg.StrokeWidth = DefaultStrokeWidth
	}
	if cfg.TipWidth <= 0 {
		cfg.TipWidth = DefaultTipWidth
	}
	if cfg.TipHeight <= 0 {
		cfg.TipHeight = DefaultTipHeight
	}
	if cfg.LabelDirection == (scene.Vec2{}) {
		cfg.LabelDirection = scene.Down
	}
	if cfg.LineToNumberBuff <= 0 {
		cfg.LineToNumberBuff = MedSmallBuff
	}
	if o.Decimal != nil {
		cfg.Decimal = *o.Decimal
	} else {
		cfg.Decimal = DecimalConfig{NumDecimalPlaces: cfg.Range.DecimalPlaces()}
	}
	if cfg.NumberScale <= 0 {
		cfg.NumberScale = DefaultNumberScale
	}

	if (cfg.IncludeNumbers || cfg.NumbersToInclude != nil) && cfg.Typesetter == nil {
		return config{}, fmt.Errorf("numline: numbering requested without a typesetter")
	}
	return cfg, nil
}
