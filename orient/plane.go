package orient

import "unsafe"

// The primitives below follow one scheme: a plane is traversed through a
// view holding element storage, a base index and a signed row stride in
// elements. hflip, vflip and transpose are written once; r180, r90, r270
// and antitranspose reuse them with the base moved to the last row (or
// column) and the stride negated, so the reversed-direction traversal
// shares the forward code path.
//
// Contract for every primitive: dst and src must not overlap, zero width
// or height is a no-op, and no byte outside the visible width/height is
// read or written even when the stride carries padding.

// view is a reinterpreted plane for one element width.
type view[T Element] struct {
	px     []T
	base   int // element index of the first visible sample
	stride int // signed element distance between row starts
}

func sizeOf[T Element]() int {
	var z T
	return int(unsafe.Sizeof(z))
}

// asView reinterprets the plane storage as elements of T. The byte stride
// must be a multiple of the element size, which holds for any sanely
// aligned buffer.
func asView[T Element](p *Plane) view[T] {
	size := sizeOf[T]()
	if len(p.Pix) < size {
		return view[T]{}
	}
	px := unsafe.Slice((*T)(unsafe.Pointer(&p.Pix[0])), len(p.Pix)/size)
	return view[T]{px: px, stride: p.Stride / size}
}

// widthIn converts the plane's visible width to elements of T. The
// dispatcher may pick an element width other than the plane's nominal one
// (packed chroma), so the conversion goes through bytes.
func widthIn[T Element](p *Plane) int {
	return p.VisibleBytes() / sizeOf[T]()
}

func hflip[T Element](dst, src view[T], width, height int) {
	d := dst.base + width - 1
	s := src.base
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dst.px[d-x] = src.px[s+x]
		}
		s += src.stride
		d += dst.stride
	}
}

func transpose[T Element](dst, src view[T], srcWidth, srcHeight int) {
	s := src.base
	d := dst.base
	for y := 0; y < srcHeight; y++ {
		for x := 0; x < srcWidth; x++ {
			dst.px[d+x*dst.stride] = src.px[s+x]
		}
		s += src.stride
		d++
	}
}

// vflipRows copies whole rows in reverse order. No intra-row reordering
// happens, so a single byte-granular routine serves every element width.
func vflipRows(dst, src *Plane, rowBytes, height int) {
	d := height * dst.Stride
	s := 0
	for y := 0; y < height; y++ {
		d -= dst.Stride
		copy(dst.Pix[d:d+rowBytes], src.Pix[s:s+rowBytes])
		s += src.Stride
	}
}

// HFlip mirrors each row: dst[y][x] = src[y][width-1-x].
func HFlip[T Element](dst, src *Plane) {
	hflip(asView[T](dst), asView[T](src), widthIn[T](src), src.Height)
}

// VFlip reverses row order: dst[height-1-y] = src[y].
func VFlip[T Element](dst, src *Plane) {
	vflipRows(dst, src, src.VisibleBytes(), src.Height)
}

// R180 rotates by 180 degrees: dst[y][x] = src[height-1-y][width-1-x].
// It is hflip over the source rows read bottom-up.
func R180[T Element](dst, src *Plane) {
	height := src.Height
	s := asView[T](src)
	s.base += (height - 1) * s.stride
	s.stride = -s.stride
	hflip(asView[T](dst), s, widthIn[T](src), height)
}

// Transpose exchanges the axes: dst[x][y] = src[y][x]. The destination is
// srcHeight wide and srcWidth high.
func Transpose[T Element](dst, src *Plane) {
	transpose(asView[T](dst), asView[T](src), widthIn[T](src), src.Height)
}

// R90 rotates 90 degrees clockwise: dst[x][y] = src[srcHeight-1-y][x].
// It is a transpose of the source read bottom-up.
func R90[T Element](dst, src *Plane) {
	height := src.Height
	s := asView[T](src)
	s.base += (height - 1) * s.stride
	s.stride = -s.stride
	transpose(asView[T](dst), s, widthIn[T](src), height)
}

// R270 rotates 90 degrees counter-clockwise:
// dst[srcWidth-1-x][y] = src[y][x]. It is a transpose written into the
// destination rows bottom-up.
func R270[T Element](dst, src *Plane) {
	width := widthIn[T](src)
	d := asView[T](dst)
	d.base += (width - 1) * d.stride
	d.stride = -d.stride
	transpose(d, asView[T](src), width, src.Height)
}

// AntiTranspose mirrors across the anti-diagonal:
// dst[x][y] = src[srcHeight-1-y][srcWidth-1-x]. It is r270 of the source
// read bottom-up.
func AntiTranspose[T Element](dst, src *Plane) {
	width := widthIn[T](src)
	height := src.Height
	s := asView[T](src)
	s.base += (height - 1) * s.stride
	s.stride = -s.stride

	d := asView[T](dst)
	d.base += (width - 1) * d.stride
	d.stride = -d.stride
	transpose(d, s, width, height)
}
