package numline

// NewUnitInterval builds the [0, 1] preset: ten scene units long,
// ticks every 0.1 with the bounds elongated, labels with one decimal
// place. Any explicitly set option other than the range is respected.
func NewUnitInterval(opts Options) (*NumberLine, error) {
	opts.Range = &Interval{Min: 0, Max: 1, Step: 0.1}
	if opts.UnitSize <= 0 && opts.Length <= 0 {
		opts.UnitSize = 10
	}
	if opts.ElongatedTicks == nil {
		opts.ElongatedTicks = []float64{0, 1}
	}
	if opts.Decimal == nil {
		opts.Decimal = &DecimalConfig{NumDecimalPlaces: 1}
	}
	return New(opts)
}
