package orient

// MaxPlanes is the largest number of planes a Frame can carry.
// Three suffices for planar YUV; five leaves room for alpha and
// padding planes the way typical picture pools do.
const MaxPlanes = 5

// Element is a constraint for the storage unit of one pixel sample:
// 1, 2 or 4 bytes. Every plane transform is instantiated once per width.
type Element interface {
	~uint8 | ~uint16 | ~uint32
}

// Plane is a view over a caller-owned pixel buffer. The engine never
// allocates or frees plane memory; source and destination planes of a
// transform must not overlap.
type Plane struct {
	// Pix is the pixel storage. Row y starts at byte offset y*Stride.
	Pix []byte

	// Stride is the byte distance between the starts of consecutive rows.
	// It may exceed Width*PixelBytes; the padding is neither read nor
	// written by any transform.
	Stride int

	// Width is the visible width in elements of PixelBytes each.
	Width int

	// Height is the number of visible lines.
	Height int

	// PixelBytes is the nominal size of one element in bytes.
	PixelBytes int
}

// VisibleBytes returns the number of meaningful bytes in one row.
func (p *Plane) VisibleBytes() int {
	return p.Width * p.PixelBytes
}

// FrameMeta carries the non-pixel attributes of a frame. It is copied
// verbatim from source to destination after a transform.
type FrameMeta struct {
	PTS      int64
	DTS      int64
	Duration int64
	Sequence uint64
	KeyFrame bool
}

// Frame is one image: an ordered sequence of planes plus metadata.
type Frame struct {
	Format     Format
	Planes     [MaxPlanes]Plane
	PlaneCount int
	Meta       FrameMeta

	release func()
}

// SetRelease installs a function invoked when the frame is released,
// typically returning the buffers to a pool.
func (f *Frame) SetRelease(fn func()) {
	f.release = fn
}

// Release returns the frame to its owner. It is safe to call on frames
// without a release function and runs the function at most once.
func (f *Frame) Release() {
	if f == nil || f.release == nil {
		return
	}
	fn := f.release
	f.release = nil
	fn()
}

// CopyFrameMetadata copies the non-pixel attributes of src to dst.
func CopyFrameMetadata(dst, src *Frame) {
	dst.Meta = src.Meta
}
