// Package orient provides stride-aware geometric reorientation of raster
// image planes: horizontal/vertical flips, 90/180/270 degree rotations,
// transpose and anti-transpose, each generic over 1, 2 and 4 byte sample
// units.
//
// The package operates on caller-owned plane buffers and never allocates
// pixel memory on the transform path. A transform is negotiated once per
// stream with Validate, which yields an immutable TransformTable; every
// frame of that stream is then processed through the table:
//
//	table, err := orient.Validate(srcFormat, dstFormat)
//	if err != nil {
//	    // identity, rescale request, or unsupported layout
//	}
//	conv := orient.NewConverter(orient.HeapAllocator{}, table)
//	dst, err := conv.Convert(src) // src is released exactly once
//
// Pointer coordinates in transformed output space translate back to source
// space with MapPointerBack, using the same negotiated transform.
//
// All exported state is read-only after construction: a TransformTable and
// the transform catalog may be shared across goroutines without locking,
// and distinct frames may be converted fully in parallel.
package orient
