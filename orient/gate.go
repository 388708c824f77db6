package orient

import "fmt"

// Validator runs the once-per-stream compatibility checks. The zero
// value is not usable; NewValidator installs the package's standard
// collaborators, and callers integrating a different orientation
// negotiation or format registry may replace them.
type Validator struct {
	// Resolve determines which transform two orientations imply.
	Resolve func(src, dst Orientation) Transform

	// Layout resolves the plane layout of a pixel format.
	Layout func(PixelFormat) (*ChromaLayout, error)
}

// NewValidator returns a Validator wired to ResolveTransform and
// LookupChromaLayout.
func NewValidator() *Validator {
	return &Validator{
		Resolve: ResolveTransform,
		Layout:  LookupChromaLayout,
	}
}

// Validate checks that the change from src to dst is realizable by this
// engine and, if so, returns the negotiated transform table. It runs once
// per proposed format pair, never per frame.
//
// Rejections: ErrNotApplicable when the orientations imply the identity
// transform, ErrUnsupportedGeometry when the destination geometry is not
// exactly the transformed source geometry (this engine cannot rescale),
// when the pixel format is unknown, or when a swap-class transform meets
// a plane with non-square sample density, and ErrUnsupportedElementWidth
// when any plane's element width falls outside {1, 2, 4} bytes.
func (v *Validator) Validate(src, dst Format) (*TransformTable, error) {
	kind := v.Resolve(src.Orientation, dst.Orientation)
	if kind == TransformIdentity {
		return nil, ErrNotApplicable
	}

	if !src.TransformedBy(kind).sameGeometry(dst) {
		return nil, fmt.Errorf("%w: %v of %dx%d source does not yield destination geometry",
			ErrUnsupportedGeometry, kind, src.VisibleWidth, src.VisibleHeight)
	}

	layout, err := v.Layout(src.Pixel)
	if err != nil {
		return nil, err
	}

	if kind.IsSwap() {
		// Non-square samples cannot be swapped without resampling.
		for i := 0; i < layout.PlaneCount; i++ {
			if !layout.Planes[i].square() {
				return nil, fmt.Errorf("%w: plane %d of %v has non-square sample density",
					ErrUnsupportedGeometry, i, src.Pixel)
			}
		}
	}

	return buildTransformTable(kind, src.Pixel, layout, dst)
}

// Validate runs the compatibility gate with the standard collaborators.
func Validate(src, dst Format) (*TransformTable, error) {
	return NewValidator().Validate(src, dst)
}
