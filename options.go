package canvas

// Option configures a Canvas during creation.
//
// Example:
//
//	// Retina display with antialiased strokes
//	c := canvas.New(canvas.WithDevicePixelRatio(2), canvas.WithAntialias(true))
type Option func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	ratio     float32
	antialias bool
	stroke    Stroke

	// Explicit overrides win over values derived from ratio.
	tol       float32
	hasTol    bool
	fringe    float32
	hasFringe bool
}

// DefaultTolerance is the point-merge tolerance at a device pixel ratio of 1.
const DefaultTolerance = 0.01

// defaultOptions returns the default canvas options.
func defaultOptions() canvasOptions {
	return canvasOptions{
		ratio:  1,
		stroke: DefaultStroke(),
	}
}

// tolerance returns the point-merge and tessellation tolerance.
func (o *canvasOptions) tolerance() float32 {
	if o.hasTol {
		return o.tol
	}
	return DefaultTolerance / o.ratio
}

// fringeWidth returns the antialiasing fringe width.
func (o *canvasOptions) fringeWidth() float32 {
	if o.hasFringe {
		return o.fringe
	}
	if o.antialias {
		return 1 / o.ratio
	}
	return 0
}

// WithTolerance sets the distance below which consecutive points merge.
// It overrides the value derived from WithDevicePixelRatio.
func WithTolerance(tol float32) Option {
	return func(o *canvasOptions) {
		o.tol = tol
		o.hasTol = true
	}
}

// WithFringeWidth sets the antialiasing fringe width.
// Zero disables the fringe gradient. It overrides WithAntialias.
func WithFringeWidth(w float32) Option {
	return func(o *canvasOptions) {
		o.fringe = w
		o.hasFringe = true
	}
}

// WithDevicePixelRatio scales the tolerance and the antialiasing fringe
// for high density displays. Non-positive ratios are ignored.
func WithDevicePixelRatio(ratio float32) Option {
	return func(o *canvasOptions) {
		if ratio > 0 {
			o.ratio = ratio
		}
	}
}

// WithAntialias enables a one device pixel fringe around strokes.
func WithAntialias(enabled bool) Option {
	return func(o *canvasOptions) {
		o.antialias = enabled
	}
}

// WithStroke sets the initial stroke style.
func WithStroke(s Stroke) Option {
	return func(o *canvasOptions) {
		o.stroke = s
	}
}
