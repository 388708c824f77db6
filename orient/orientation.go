package orient

// Transform identifies one of the eight plane-rectangular reorientations.
//
// The encoding is a three-bit description of the operation, applied in a
// fixed order: bit 2 transposes (exchanges the axes) first, then bit 0
// mirrors horizontally and bit 1 mirrors vertically in the transposed
// space. Every dihedral-group element has exactly one encoding, and
// composition and inversion reduce to bit arithmetic.
type Transform uint8

const (
	TransformIdentity      Transform = 0
	TransformHFlip         Transform = 1
	TransformVFlip         Transform = 2
	TransformR180          Transform = 3
	TransformTranspose     Transform = 4
	TransformR90           Transform = 5 // 90 degrees clockwise
	TransformR270          Transform = 6 // 90 degrees counter-clockwise
	TransformAntiTranspose Transform = 7
)

const (
	transformHFlipBit = 1
	transformVFlipBit = 2
	transformSwapBit  = 4
)

// String returns a short lower-case name for the transform.
func (t Transform) String() string {
	switch t {
	case TransformIdentity:
		return "identity"
	case TransformHFlip:
		return "hflip"
	case TransformVFlip:
		return "vflip"
	case TransformR180:
		return "r180"
	case TransformTranspose:
		return "transpose"
	case TransformR90:
		return "r90"
	case TransformR270:
		return "r270"
	case TransformAntiTranspose:
		return "antitranspose"
	default:
		return "unknown"
	}
}

// IsSwap reports whether the transform exchanges width and height between
// source and destination.
func (t Transform) IsSwap() bool {
	return t&transformSwapBit != 0
}

// IsMirror reports whether the transform changes chirality (an odd number
// of mirror operations).
func (t Transform) IsMirror() bool {
	n := t&transformHFlipBit + (t&transformVFlipBit)>>1 + (t&transformSwapBit)>>2
	return n&1 != 0
}

// swapFlips exchanges the horizontal and vertical mirror bits.
func swapFlips(t Transform) Transform {
	return t&^3 | (t&transformHFlipBit)<<1 | (t&transformVFlipBit)>>1
}

// Compose returns the transform equivalent to applying first, then second.
func Compose(first, second Transform) Transform {
	flips := first & 3
	if second&transformSwapBit != 0 {
		// Transposing afterwards exchanges the roles of the two mirrors.
		flips = swapFlips(flips)
	}
	return (first^second)&transformSwapBit | (flips ^ second&3)
}

// Inverse returns the transform that undoes t.
func (t Transform) Inverse() Transform {
	if t&transformSwapBit != 0 {
		return swapFlips(t)
	}
	return t
}

// Apply maps a source coordinate to its destination coordinate under the
// forward transform. w and h are the source dimensions; for swap-class
// transforms the destination is h wide and w high.
func (t Transform) Apply(x, y, w, h int) (int, int) {
	if t&transformSwapBit != 0 {
		x, y = y, x
		w, h = h, w
	}
	if t&transformHFlipBit != 0 {
		x = w - 1 - x
	}
	if t&transformVFlipBit != 0 {
		y = h - 1 - y
	}
	return x, y
}

// Orientation describes how stored pixel data relates to the upright
// image: the stored image is the upright image with the named operation
// applied. Values share the Transform encoding.
type Orientation uint8

const (
	OrientNormal         Orientation = Orientation(TransformIdentity)
	OrientHFlipped       Orientation = Orientation(TransformHFlip)
	OrientVFlipped       Orientation = Orientation(TransformVFlip)
	OrientRotated180     Orientation = Orientation(TransformR180)
	OrientTransposed     Orientation = Orientation(TransformTranspose)
	OrientRotated90      Orientation = Orientation(TransformR90)
	OrientRotated270     Orientation = Orientation(TransformR270)
	OrientAntiTransposed Orientation = Orientation(TransformAntiTranspose)
)

// String returns a short lower-case name for the orientation.
func (o Orientation) String() string {
	if o == OrientNormal {
		return "normal"
	}
	return Transform(o).String()
}

// OrientationFromEXIF maps an EXIF orientation tag (1..8) to an
// Orientation. Out-of-range values map to OrientNormal, matching the
// usual lenient handling of missing or corrupt tags.
func OrientationFromEXIF(tag int) Orientation {
	switch tag {
	case 2:
		return OrientHFlipped
	case 3:
		return OrientRotated180
	case 4:
		return OrientVFlipped
	case 5:
		return OrientTransposed
	case 6:
		return OrientRotated90
	case 7:
		return OrientAntiTransposed
	case 8:
		return OrientRotated270
	default:
		return OrientNormal
	}
}

// ResolveTransform returns the transform that converts pixel data stored
// with orientation src into data stored with orientation dst. The result
// may be TransformIdentity when the two orientations already agree.
func ResolveTransform(src, dst Orientation) Transform {
	return Compose(Transform(src).Inverse(), Transform(dst))
}
