package orient

import "fmt"

// TransformTable is the per-plane function table negotiated for one
// stream. It is immutable after construction and safe to share across
// concurrent frame conversions.
type TransformTable struct {
	Kind Transform
	Out  Format // destination geometry, used to size allocated frames

	planeCount int
	planes     [MaxPlanes]PlaneFunc
}

// PlaneCount returns the number of planes the table covers.
func (t *TransformTable) PlaneCount() int {
	return t.planeCount
}

// packedChromaOverride forces a plane of an interleaved-chroma format to
// be moved in wider units, so the two channels sharing a storage unit are
// never split or reordered independently. Keyed by format identity rather
// than inferred, to keep the default dispatch path free of special cases.
type packedChromaOverride struct {
	plane int
	width int // element width in bytes for that plane
}

var packedChroma = map[PixelFormat]packedChromaOverride{
	PixelNV12: {plane: 1, width: 2},
	PixelNV21: {plane: 1, width: 2},
}

// buildTransformTable resolves one primitive per plane: every plane uses
// the function chosen for the primary plane's element width, except where
// a packed-chroma override applies. It fails when any resolved width is
// outside {1, 2, 4}.
func buildTransformTable(kind Transform, pixel PixelFormat, layout *ChromaLayout, out Format) (*TransformTable, error) {
	if int(kind) >= len(catalog) || catalog[kind] == nil {
		return nil, ErrNotApplicable
	}
	d := catalog[kind]

	fn := d.forWidth(layout.PixelSize)
	if fn == nil {
		return nil, fmt.Errorf("%w: %d-byte samples in %v", ErrUnsupportedElementWidth, layout.PixelSize, pixel)
	}

	t := &TransformTable{Kind: kind, Out: out, planeCount: layout.PlaneCount}
	for i := range t.planes {
		t.planes[i] = fn
	}

	if ov, ok := packedChroma[pixel]; ok {
		wfn := d.forWidth(ov.width)
		if wfn == nil {
			return nil, fmt.Errorf("%w: %d-byte chroma units in %v", ErrUnsupportedElementWidth, ov.width, pixel)
		}
		t.planes[ov.plane] = wfn
	}
	return t, nil
}
