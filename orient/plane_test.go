package orient

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// testPad is the sentinel byte used to fill plane storage so tests can
// verify that stride padding is never written.
const testPad = 0xAA

// mkPlane builds a plane from row data with padElems extra elements of
// stride padding per row, every byte pre-filled with the sentinel.
func mkPlane[T Element](rows [][]T, padElems int) *Plane {
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	size := sizeOf[T]()
	stride := (w + padElems) * size
	pix := make([]byte, stride*h)
	for i := range pix {
		pix[i] = testPad
	}
	p := &Plane{Pix: pix, Stride: stride, Width: w, Height: h, PixelBytes: size}
	v := asView[T](p)
	for y, row := range rows {
		for x, val := range row {
			v.px[y*v.stride+x] = val
		}
	}
	return p
}

// emptyPlane builds an all-sentinel destination plane.
func emptyPlane[T Element](w, h, padElems int) *Plane {
	size := sizeOf[T]()
	stride := (w + padElems) * size
	pix := make([]byte, stride*h)
	for i := range pix {
		pix[i] = testPad
	}
	return &Plane{Pix: pix, Stride: stride, Width: w, Height: h, PixelBytes: size}
}

// rowsOf reads back the visible region of a plane.
func rowsOf[T Element](p *Plane) [][]T {
	v := asView[T](p)
	out := make([][]T, p.Height)
	for y := range out {
		row := make([]T, p.Width)
		copy(row, v.px[y*v.stride:y*v.stride+p.Width])
		out[y] = row
	}
	return out
}

// randPlane fills a w x h plane with random values.
func randPlane[T Element](rng *rand.Rand, w, h, padElems int) *Plane {
	rows := make([][]T, h)
	for y := range rows {
		rows[y] = make([]T, w)
		for x := range rows[y] {
			rows[y][x] = T(rng.Uint64())
		}
	}
	return mkPlane(rows, padElems)
}

// apply runs fn into a fresh destination sized for the transform.
func apply[T Element](fn PlaneFunc, src *Plane, swap bool, padElems int) *Plane {
	w, h := src.Width, src.Height
	if swap {
		w, h = h, w
	}
	dst := emptyPlane[T](w, h, padElems)
	fn(dst, src)
	return dst
}

func runPrimitiveScenarios[T Element](t *testing.T) {
	tests := []struct {
		name string
		fn   PlaneFunc
		swap bool
		in   [][]T
		want [][]T
	}{
		{
			name: "hflip row",
			fn:   HFlip[T],
			in:   [][]T{{1, 2, 3, 4}},
			want: [][]T{{4, 3, 2, 1}},
		},
		{
			name: "vflip 2x2",
			fn:   VFlip[T],
			in:   [][]T{{1, 2}, {3, 4}},
			want: [][]T{{3, 4}, {1, 2}},
		},
		{
			name: "r180 2x2",
			fn:   R180[T],
			in:   [][]T{{1, 2}, {3, 4}},
			want: [][]T{{4, 3}, {2, 1}},
		},
		{
			name: "transpose 3x2",
			fn:   Transpose[T],
			swap: true,
			in:   [][]T{{1, 2, 3}, {4, 5, 6}},
			want: [][]T{{1, 4}, {2, 5}, {3, 6}},
		},
		{
			name: "r90 2x2",
			fn:   R90[T],
			swap: true,
			in:   [][]T{{1, 2}, {3, 4}},
			want: [][]T{{3, 1}, {4, 2}},
		},
		{
			name: "r270 3x2",
			fn:   R270[T],
			swap: true,
			in:   [][]T{{1, 2, 3}, {4, 5, 6}},
			want: [][]T{{3, 6}, {2, 5}, {1, 4}},
		},
		{
			name: "antitranspose 3x2",
			fn:   AntiTranspose[T],
			swap: true,
			in:   [][]T{{1, 2, 3}, {4, 5, 6}},
			want: [][]T{{6, 3}, {5, 2}, {4, 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Exercise both tight and padded strides.
			for _, pad := range []int{0, 3} {
				src := mkPlane(tt.in, pad)
				dst := apply[T](tt.fn, src, tt.swap, pad)
				require.Equal(t, tt.want, rowsOf[T](dst), "pad=%d", pad)
			}
		})
	}
}

func TestPrimitives_8(t *testing.T)  { runPrimitiveScenarios[uint8](t) }
func TestPrimitives_16(t *testing.T) { runPrimitiveScenarios[uint16](t) }
func TestPrimitives_32(t *testing.T) { runPrimitiveScenarios[uint32](t) }

// Transforms must leave stride padding untouched: it is skipped, never
// zero-filled or copied.
func TestPaddingUntouched(t *testing.T) {
	src := mkPlane([][]uint8{{1, 2, 3}, {4, 5, 6}}, 5)
	dst := apply[uint8](R90[uint8], src, true, 5)

	v := asView[uint8](dst)
	for y := 0; y < dst.Height; y++ {
		for x := dst.Width; x < v.stride; x++ {
			require.Equal(t, uint8(testPad), v.px[y*v.stride+x],
				"padding written at row %d col %d", y, x)
		}
	}
}

func TestZeroSizedPlanes(t *testing.T) {
	fns := map[string]struct {
		fn   PlaneFunc
		swap bool
	}{
		"hflip":         {HFlip[uint8], false},
		"vflip":         {VFlip[uint8], false},
		"r180":          {R180[uint8], false},
		"transpose":     {Transpose[uint8], true},
		"r90":           {R90[uint8], true},
		"r270":          {R270[uint8], true},
		"antitranspose": {AntiTranspose[uint8], true},
	}

	for name, tc := range fns {
		t.Run(name, func(t *testing.T) {
			for _, dims := range [][2]int{{0, 0}, {0, 4}, {4, 0}} {
				src := emptyPlane[uint8](dims[0], dims[1], 2)
				dst := apply[uint8](tc.fn, src, tc.swap, 2)
				// Zero copied bytes: everything still sentinel.
				for _, b := range dst.Pix {
					require.Equal(t, byte(testPad), b)
				}
			}
		})
	}
}

func TestOneByOnePlane(t *testing.T) {
	for kind := TransformHFlip; kind <= TransformAntiTranspose; kind++ {
		src := mkPlane([][]uint16{{42}}, 1)
		dst := apply[uint16](catalog[kind].plane16, src, kind.IsSwap(), 1)
		require.Equal(t, [][]uint16{{42}}, rowsOf[uint16](dst), "kind %v", kind)
	}
}

func runAlgebraicProperties[T Element](t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const w, h = 7, 5

	src := randPlane[T](rng, w, h, 3)
	orig := rowsOf[T](src)

	t.Run("involutions", func(t *testing.T) {
		for _, fn := range []PlaneFunc{HFlip[T], VFlip[T], R180[T]} {
			once := apply[T](fn, src, false, 1)
			twice := apply[T](fn, once, false, 0)
			require.Equal(t, orig, rowsOf[T](twice))
		}
	})

	t.Run("r90 four times", func(t *testing.T) {
		p := src
		for i := 0; i < 4; i++ {
			p = apply[T](R90[T], p, true, i)
		}
		require.Equal(t, orig, rowsOf[T](p))
	})

	t.Run("transpose twice", func(t *testing.T) {
		once := apply[T](Transpose[T], src, true, 2)
		twice := apply[T](Transpose[T], once, true, 0)
		require.Equal(t, orig, rowsOf[T](twice))
	})

	t.Run("r180 equals flip compositions", func(t *testing.T) {
		want := rowsOf[T](apply[T](R180[T], src, false, 0))

		hv := apply[T](VFlip[T], apply[T](HFlip[T], src, false, 1), false, 0)
		vh := apply[T](HFlip[T], apply[T](VFlip[T], src, false, 1), false, 0)
		require.Equal(t, want, rowsOf[T](hv))
		require.Equal(t, want, rowsOf[T](vh))
	})

	t.Run("antitranspose equals transpose then r180", func(t *testing.T) {
		want := rowsOf[T](apply[T](AntiTranspose[T], src, true, 0))
		got := apply[T](R180[T], apply[T](Transpose[T], src, true, 1), false, 0)
		require.Equal(t, want, rowsOf[T](got))
	})

	t.Run("antitranspose equals vflip then r270", func(t *testing.T) {
		want := rowsOf[T](apply[T](AntiTranspose[T], src, true, 0))
		got := apply[T](R270[T], apply[T](VFlip[T], src, false, 1), true, 0)
		require.Equal(t, want, rowsOf[T](got))
	})
}

func TestAlgebraicProperties_8(t *testing.T)  { runAlgebraicProperties[uint8](t) }
func TestAlgebraicProperties_16(t *testing.T) { runAlgebraicProperties[uint16](t) }
func TestAlgebraicProperties_32(t *testing.T) { runAlgebraicProperties[uint32](t) }

// Every primitive must agree with the forward coordinate mapping of its
// transform kind.
func TestPrimitivesMatchCoordinateMapping(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	const w, h = 6, 4
	src := randPlane[uint8](rng, w, h, 2)
	in := rowsOf[uint8](src)

	for kind := TransformHFlip; kind <= TransformAntiTranspose; kind++ {
		dst := apply[uint8](catalog[kind].plane8, src, kind.IsSwap(), 2)
		out := rowsOf[uint8](dst)

		want := make([][]uint8, dst.Height)
		for y := range want {
			want[y] = make([]uint8, dst.Width)
		}
		for sy := 0; sy < h; sy++ {
			for sx := 0; sx < w; sx++ {
				dx, dy := kind.Apply(sx, sy, w, h)
				want[dy][dx] = in[sy][sx]
			}
		}
		if diff := cmp.Diff(want, out); diff != "" {
			t.Errorf("%v output mismatch (-want +got):\n%s", kind, diff)
		}
	}
}

// An interleaved-chroma row moved in 2-byte units must keep each pair
// intact; moving it bytewise would reorder the two channels.
func TestHFlipKeepsInterleavedPairs(t *testing.T) {
	// U0 V0 U1 V1 U2 V2 as single bytes.
	src := mkPlane([][]uint8{{10, 20, 11, 21, 12, 22}}, 0)
	dst := emptyPlane[uint8](6, 1, 0)
	HFlip[uint16](dst, src)
	require.Equal(t, [][]uint8{{12, 22, 11, 21, 10, 20}}, rowsOf[uint8](dst))
}
