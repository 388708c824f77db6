package orient

// PlaneFunc applies one primitive transform from a source plane to a
// distinct destination plane. Dimensions are taken from the source; for
// swap-class transforms the destination must be sized with the axes
// exchanged.
type PlaneFunc func(dst, src *Plane)

// transformDesc holds one primitive per supported element width.
type transformDesc struct {
	plane8  PlaneFunc
	plane16 PlaneFunc
	plane32 PlaneFunc
}

// forWidth selects the primitive for an element width in bytes.
func (d *transformDesc) forWidth(size int) PlaneFunc {
	switch size {
	case 1:
		return d.plane8
	case 2:
		return d.plane16
	case 4:
		return d.plane32
	default:
		return nil
	}
}

func desc(p8, p16, p32 PlaneFunc) *transformDesc {
	return &transformDesc{plane8: p8, plane16: p16, plane32: p32}
}

// catalog maps each non-identity transform to its primitives. It is built
// once and read-only thereafter; TransformIdentity has no entry because
// the compatibility gate rejects it upstream.
var catalog = [8]*transformDesc{
	TransformHFlip:         desc(HFlip[uint8], HFlip[uint16], HFlip[uint32]),
	TransformVFlip:         desc(VFlip[uint8], VFlip[uint16], VFlip[uint32]),
	TransformR180:          desc(R180[uint8], R180[uint16], R180[uint32]),
	TransformTranspose:     desc(Transpose[uint8], Transpose[uint16], Transpose[uint32]),
	TransformR90:           desc(R90[uint8], R90[uint16], R90[uint32]),
	TransformR270:          desc(R270[uint8], R270[uint16], R270[uint32]),
	TransformAntiTranspose: desc(AntiTranspose[uint8], AntiTranspose[uint16], AntiTranspose[uint32]),
}
