package orient

// MapPointerBack translates a pointer coordinate given in destination
// (post-transform) space back into source space. dw and dh are the
// destination's visible dimensions. The transform must be one of the
// seven non-identity kinds; identity is never routed here because the
// compatibility gate rejects it before a stream is set up.
func MapPointerBack(t Transform, dw, dh, dx, dy int) (sx, sy int) {
	switch t {
	case TransformHFlip, TransformR180:
		sx = dw - 1 - dx
	case TransformVFlip:
		sx = dx
	case TransformTranspose, TransformR90:
		sx = dy
	case TransformR270, TransformAntiTranspose:
		sx = dh - 1 - dy
	}

	switch t {
	case TransformHFlip:
		sy = dy
	case TransformVFlip, TransformR180:
		sy = dh - 1 - dy
	case TransformTranspose, TransformR270:
		sy = dx
	case TransformR90, TransformAntiTranspose:
		sy = dw - 1 - dx
	}
	return sx, sy
}
