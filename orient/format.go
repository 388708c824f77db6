package orient

import "fmt"

// PixelFormat identifies the pixel encoding of a frame.
type PixelFormat uint32

const (
	PixelUnknown PixelFormat = iota
	PixelGrey                // 8-bit luma only
	PixelGrey16              // 16-bit luma only
	PixelI420                // planar YUV 4:2:0, Y then U then V
	PixelYV12                // planar YUV 4:2:0, Y then V then U
	PixelI422                // planar YUV 4:2:2
	PixelI444                // planar YUV 4:4:4
	PixelI42010              // planar YUV 4:2:0, 10 bits in 16-bit units
	PixelNV12                // Y plane plus interleaved UV plane
	PixelNV21                // Y plane plus interleaved VU plane
	PixelRGBA                // packed 8-bit RGBA
	PixelBGRA                // packed 8-bit BGRA
	PixelRGB24               // packed 8-bit RGB, 3 bytes per pixel
)

// String returns the conventional short name of the format.
func (p PixelFormat) String() string {
	if d, ok := chromaTable[p]; ok {
		return d.name
	}
	return fmt.Sprintf("pixelformat(%d)", uint32(p))
}

// SampleRatio is a rational sample density of a secondary plane relative
// to the primary plane, e.g. 1/2 for halved chroma resolution.
type SampleRatio struct {
	Num, Den int
}

// PlaneLayout describes the sample density of one plane along each axis.
type PlaneLayout struct {
	W, H SampleRatio
}

// square reports whether the horizontal and vertical densities agree.
// Planes with unequal densities cannot be geometrically swapped without
// resampling.
func (l PlaneLayout) square() bool {
	return l.W.Num*l.H.Den == l.H.Num*l.W.Den
}

// ChromaLayout describes how a pixel format maps onto planes: how many
// there are, the nominal size of one sample, and the per-plane sample
// densities relative to the primary plane.
type ChromaLayout struct {
	PlaneCount int
	PixelSize  int // bytes per sample
	Planes     [MaxPlanes]PlaneLayout
}

type chromaDesc struct {
	name   string
	layout ChromaLayout
}

func full() PlaneLayout {
	return PlaneLayout{W: SampleRatio{1, 1}, H: SampleRatio{1, 1}}
}

func sub(wDen, hDen int) PlaneLayout {
	return PlaneLayout{W: SampleRatio{1, wDen}, H: SampleRatio{1, hDen}}
}

func planar(name string, size, wDen, hDen int) chromaDesc {
	return chromaDesc{
		name: name,
		layout: ChromaLayout{
			PlaneCount: 3,
			PixelSize:  size,
			Planes:     [MaxPlanes]PlaneLayout{full(), sub(wDen, hDen), sub(wDen, hDen)},
		},
	}
}

func packed(name string, size int) chromaDesc {
	return chromaDesc{
		name: name,
		layout: ChromaLayout{
			PlaneCount: 1,
			PixelSize:  size,
			Planes:     [MaxPlanes]PlaneLayout{full()},
		},
	}
}

func semiplanar(name string) chromaDesc {
	// The chroma plane keeps full row width (U and V bytes interleaved)
	// at half the line count, hence the unequal densities.
	return chromaDesc{
		name: name,
		layout: ChromaLayout{
			PlaneCount: 2,
			PixelSize:  1,
			Planes:     [MaxPlanes]PlaneLayout{full(), sub(1, 2)},
		},
	}
}

var chromaTable = map[PixelFormat]chromaDesc{
	PixelGrey:   packed("grey", 1),
	PixelGrey16: packed("grey16", 2),
	PixelI420:   planar("i420", 1, 2, 2),
	PixelYV12:   planar("yv12", 1, 2, 2),
	PixelI422:   planar("i422", 1, 2, 1),
	PixelI444:   planar("i444", 1, 1, 1),
	PixelI42010: planar("i420_10", 2, 2, 2),
	PixelNV12:   semiplanar("nv12"),
	PixelNV21:   semiplanar("nv21"),
	PixelRGBA:   packed("rgba", 4),
	PixelBGRA:   packed("bgra", 4),
	PixelRGB24:  packed("rgb24", 3),
}

// LookupChromaLayout resolves the plane layout of a pixel format. Unknown
// formats fail with ErrUnsupportedGeometry.
func LookupChromaLayout(p PixelFormat) (*ChromaLayout, error) {
	d, ok := chromaTable[p]
	if !ok {
		return nil, fmt.Errorf("%w: unknown pixel format %v", ErrUnsupportedGeometry, p)
	}
	layout := d.layout
	return &layout, nil
}

// Format describes the geometry and encoding of a video frame stream.
type Format struct {
	Pixel         PixelFormat
	Width         int // full buffer width in primary-plane samples
	Height        int // full buffer height in lines
	VisibleWidth  int
	VisibleHeight int
	XOffset       int // left edge of the visible area
	YOffset       int // top edge of the visible area
	Orientation   Orientation
}

// sameGeometry reports whether two formats agree on everything a
// transform preserves: encoding, dimensions and visible placement.
// Orientation is deliberately excluded.
func (f Format) sameGeometry(o Format) bool {
	return f.Pixel == o.Pixel &&
		f.Width == o.Width && f.Height == o.Height &&
		f.VisibleWidth == o.VisibleWidth && f.VisibleHeight == o.VisibleHeight &&
		f.XOffset == o.XOffset && f.YOffset == o.YOffset
}

// TransformedBy returns the format geometry after applying t to the pixel
// content: swap-class transforms exchange the axes, and mirrored axes
// relocate the visible area within the full buffer.
func (f Format) TransformedBy(t Transform) Format {
	o := f
	if t.IsSwap() {
		o.Width, o.Height = f.Height, f.Width
		o.VisibleWidth, o.VisibleHeight = f.VisibleHeight, f.VisibleWidth
		o.XOffset, o.YOffset = f.YOffset, f.XOffset
	}
	if t&transformHFlipBit != 0 {
		o.XOffset = o.Width - o.VisibleWidth - o.XOffset
	}
	if t&transformVFlipBit != 0 {
		o.YOffset = o.Height - o.VisibleHeight - o.YOffset
	}
	o.Orientation = Orientation(Compose(Transform(f.Orientation), t))
	return o
}
