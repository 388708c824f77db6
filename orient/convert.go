package orient

import (
	"fmt"
	"sync/atomic"
)

// FrameAllocator supplies destination frames. Implementations may pool
// buffers; a pooled frame should carry a release function returning it.
type FrameAllocator interface {
	NewFrame(f Format) (*Frame, error)
}

// HeapAllocator allocates frame buffers on the Go heap.
type HeapAllocator struct{}

// strideAlign pads row strides to a multiple of 16 bytes, the common
// alignment expectation of downstream consumers.
const strideAlign = 16

func alignUp(n, a int) int {
	return (n + a - 1) / a * a
}

// NewFrame allocates a frame laid out per the format's chroma layout.
// Each plane covers the full (not just visible) area, with the visible
// dimensions recorded on the plane.
func (HeapAllocator) NewFrame(f Format) (*Frame, error) {
	layout, err := LookupChromaLayout(f.Pixel)
	if err != nil {
		return nil, err
	}

	frame := &Frame{Format: f, PlaneCount: layout.PlaneCount}
	for i := 0; i < layout.PlaneCount; i++ {
		pl := layout.Planes[i]
		fullW := f.Width * pl.W.Num / pl.W.Den
		fullH := f.Height * pl.H.Num / pl.H.Den
		stride := alignUp(fullW*layout.PixelSize, strideAlign)
		frame.Planes[i] = Plane{
			Pix:        make([]byte, stride*fullH),
			Stride:     stride,
			Width:      f.VisibleWidth * pl.W.Num / pl.W.Den,
			Height:     f.VisibleHeight * pl.H.Num / pl.H.Den,
			PixelBytes: layout.PixelSize,
		}
	}
	return frame, nil
}

// TransformFrame applies the negotiated table to every plane of src into
// a freshly allocated destination, copies the frame metadata, and
// releases the source exactly once whether or not the transform
// succeeded. On allocation failure no destination is produced and the
// error wraps ErrAllocationFailure; the stream remains usable.
func TransformFrame(t *TransformTable, alloc FrameAllocator, src *Frame) (*Frame, error) {
	defer src.Release()

	dst, err := alloc.NewFrame(t.Out)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAllocationFailure, err)
	}

	n := src.PlaneCount
	if n > t.planeCount {
		n = t.planeCount
	}
	for i := 0; i < n; i++ {
		t.planes[i](&dst.Planes[i], &src.Planes[i])
	}

	CopyFrameMetadata(dst, src)
	return dst, nil
}

// Converter binds a negotiated transform table to an allocator for the
// lifetime of a stream. The table is held behind an atomic pointer so a
// format renegotiation swaps it copy-on-write: conversions already in
// flight keep the table they loaded, new conversions observe the
// replacement.
type Converter struct {
	alloc FrameAllocator
	table atomic.Pointer[TransformTable]
}

// NewConverter returns a converter using table for every frame until a
// renegotiation replaces it.
func NewConverter(alloc FrameAllocator, table *TransformTable) *Converter {
	c := &Converter{alloc: alloc}
	c.table.Store(table)
	return c
}

// Table returns the table currently in effect.
func (c *Converter) Table() *TransformTable {
	return c.table.Load()
}

// Renegotiate validates a new format pair and, on success, swaps the
// transform table. On failure the previous table stays in effect.
func (c *Converter) Renegotiate(src, dst Format) error {
	t, err := Validate(src, dst)
	if err != nil {
		return err
	}
	c.table.Store(t)
	return nil
}

// Convert transforms one frame. The source frame is consumed: it is
// released exactly once regardless of success or failure.
func (c *Converter) Convert(src *Frame) (*Frame, error) {
	return TransformFrame(c.table.Load(), c.alloc, src)
}

// MapPointer translates a pointer coordinate from the converter's output
// space back to its source space.
func (c *Converter) MapPointer(dx, dy int) (sx, sy int) {
	t := c.table.Load()
	return MapPointerBack(t.Kind, t.Out.VisibleWidth, t.Out.VisibleHeight, dx, dy)
}
