package options

// WithEpsilon sets the tolerance used by the sweep's order comparator
// (internal/active) and turn classifier (internal/orient). A negative
// epsilon clamps to 0 rather than disabling the tolerance entirely.
func WithEpsilon(epsilon float64) GeometryOptionsFunc {
	return func(opts *GeometryOptions) {
		if epsilon < 0 {
			epsilon = 0
		}
		opts.Epsilon = epsilon
	}
}
