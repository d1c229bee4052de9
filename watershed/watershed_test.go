package watershed_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmorph/arith"
	"github.com/katalvlaran/lvmorph/core"
	"github.com/katalvlaran/lvmorph/grid"
	"github.com/katalvlaran/lvmorph/watershed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testW = 64
	testH = 16
)

// wall returns a zero relief crossed by a vertical wall of 255 at column x.
func wall(t *testing.T, depth core.Depth, x int, v uint32) *core.Image {
	t.Helper()
	img := core.MustCreate(testW, testH, depth)
	for y := 0; y < testH; y++ {
		require.NoError(t, img.SetPixel(x, y, v))
	}
	return img
}

// wells seeds label 50 left of the wall and label 100 right of it.
func wells(t *testing.T) *core.Image {
	t.Helper()
	m := core.MustCreate(testW, testH, core.Long)
	require.NoError(t, m.SetPixel(testW/4-1, testH/2, 50))
	require.NoError(t, m.SetPixel(3*testW/4, testH/2, 100))
	return m
}

// labelVolume sums the low byte of every marker pixel.
func labelVolume(t *testing.T, marker *core.Image) uint64 {
	t.Helper()
	plane := core.MustCreate(marker.Width(), marker.Height(), core.Grey)
	require.NoError(t, arith.CopyBytePlane(marker, plane, 0))
	return core.Volume(plane)
}

// lineColumn reports whether the line byte is 255 exactly on column x.
func lineColumn(t *testing.T, marker *core.Image, x int) {
	t.Helper()
	for y := 0; y < marker.Height(); y++ {
		for i := 0; i < marker.Width(); i++ {
			v, _ := marker.Pixel(i, y)
			if i == x {
				require.Equal(t, watershed.Line, v&watershed.StatusMask, "(%d,%d)", i, y)
			} else {
				require.Zero(t, v&watershed.StatusMask, "(%d,%d)", i, y)
			}
		}
	}
}

func TestBasins_Wall(t *testing.T) {
	for _, g := range []grid.Grid{grid.Square, grid.Hexagonal} {
		t.Run(g.String(), func(t *testing.T) {
			for x := testW / 4; x < 3*testW/4; x++ {
				in := wall(t, core.Grey, x, 255)
				marker := wells(t)
				require.NoError(t, watershed.Basins(in, marker, watershed.WithGrid(g)))

				base := uint64(x*50+(testW-1-x)*100) * testH
				vol := labelVolume(t, marker)
				assert.GreaterOrEqual(t, vol, base+50*testH, "wall at %d", x)
				assert.LessOrEqual(t, vol, base+100*testH, "wall at %d", x)
			}
		})
	}
}

// TestBasins_StatusIgnored seeds a marker whose status byte is already set.
func TestBasins_StatusIgnored(t *testing.T) {
	x := testW / 2
	in := wall(t, core.Grey, x, 255)
	marker := core.MustCreate(testW, testH, core.Long)
	marker.Fill(0x01000000)
	require.NoError(t, marker.SetPixel(testW/4-1, testH/2, 0x01000000+50))
	require.NoError(t, marker.SetPixel(3*testW/4, testH/2, 0x01000000+100))

	require.NoError(t, watershed.Basins(in, marker, watershed.WithGrid(grid.Square)))
	base := uint64(x*50+(testW-1-x)*100) * testH
	vol := labelVolume(t, marker)
	assert.GreaterOrEqual(t, vol, base+50*testH)
	assert.LessOrEqual(t, vol, base+100*testH)
}

// TestBasins_MaxLevel floods a ramp column by column.
func TestBasins_MaxLevel(t *testing.T) {
	in := core.MustCreate(testW, testH, core.Grey)
	for y := 0; y < testH; y++ {
		for x := 0; x < testW; x++ {
			require.NoError(t, in.SetPixel(x, y, uint32(x)))
		}
	}
	for _, level := range []int{0, 1, 2, 10, 63, 64, 100, 256} {
		marker := core.MustCreate(testW, testH, core.Long)
		require.NoError(t, marker.SetPixel(0, 0, 1))
		require.NoError(t, watershed.Basins(in, marker, watershed.WithMaxLevel(level)))

		want := uint64(1)
		if level > 0 {
			want = min(uint64(level+1)*testH, testW*testH)
		}
		assert.Equal(t, want, labelVolume(t, marker), "level %d", level)
	}
}

func TestSegment_WallLine(t *testing.T) {
	for _, g := range []grid.Grid{grid.Square, grid.Hexagonal} {
		t.Run(g.String(), func(t *testing.T) {
			x := testW / 2
			in := wall(t, core.Grey, x, 255)
			marker := wells(t)
			levels := map[int]int{}
			require.NoError(t, watershed.Segment(in, marker,
				watershed.WithGrid(g),
				watershed.WithOnLevel(func(l, n int) { levels[l] += n })))

			lineColumn(t, marker, x)
			left, _ := marker.Pixel(0, 0)
			right, _ := marker.Pixel(testW-1, testH-1)
			assert.Equal(t, uint32(50), left)
			assert.Equal(t, uint32(100), right)
			assert.Equal(t, map[int]int{0: testW*testH - testH, 255: testH}, levels)
		})
	}
}

func TestSegment_Deterministic(t *testing.T) {
	in := core.MustCreate(testW, testH, core.Grey)
	for i := 0; i < in.Len(); i++ {
		in.Set(i, uint32(i*7919%251))
	}
	seed := func() *core.Image {
		m := core.MustCreate(testW, testH, core.Long)
		require.NoError(t, m.SetPixel(3, 3, 1))
		require.NoError(t, m.SetPixel(40, 12, 2))
		require.NoError(t, m.SetPixel(60, 1, 3))
		return m
	}
	a, b := seed(), seed()
	require.NoError(t, watershed.Segment(in, a))
	require.NoError(t, watershed.Segment(in, b))
	assert.True(t, core.Equal(a, b))

	for _, v := range a.Pix32() {
		s := v & watershed.StatusMask
		require.True(t, s == 0 || s == watershed.Line, "status %#x", s)
	}
}

// TestSegment_Partial stops the flood and keeps the flood states.
func TestSegment_Partial(t *testing.T) {
	in := core.MustCreate(testW, testH, core.Grey)
	in.Fill(30)
	marker := core.MustCreate(testW, testH, core.Long)
	require.NoError(t, marker.SetPixel(0, 0, 7))

	require.NoError(t, watershed.Segment(in, marker, watershed.WithMaxLevel(30), watershed.WithGrid(grid.Square)))
	v, _ := marker.Pixel(0, 0)
	assert.Equal(t, uint32(7), v)
	v, _ = marker.Pixel(1, 1)
	assert.Equal(t, uint32(0x02000000), v)
	v, _ = marker.Pixel(10, 10)
	assert.Equal(t, uint32(0x01000000), v)
}

func TestSegment32_Wall(t *testing.T) {
	for _, h := range []uint32{200, 1143, 70000} {
		x := testW / 2
		in := wall(t, core.Long, x, h)
		marker := wells(t)
		require.NoError(t, watershed.Segment32(in, marker, watershed.WithGrid(grid.Square)))
		lineColumn(t, marker, x)

		marker = wells(t)
		require.NoError(t, watershed.Segment32(in, marker, watershed.WithMaxLevel(int(h)+1)))
		lineColumn(t, marker, x)
	}
}

// TestSegment32_PartialRamp stops a flood over a 0..1008 ramp at 600, in
// the third Grey window.
func TestSegment32_PartialRamp(t *testing.T) {
	in := core.MustCreate(testW, testH, core.Long)
	for y := 0; y < testH; y++ {
		for x := 0; x < testW; x++ {
			in.Set(in.Index(x, y), uint32(16*x))
		}
	}
	seed := func() *core.Image {
		m := core.MustCreate(testW, testH, core.Long)
		require.NoError(t, m.SetPixel(0, testH/2, 7))
		return m
	}

	marker := seed()
	require.NoError(t, watershed.Segment32(in, marker, watershed.WithGrid(grid.Square), watershed.WithMaxLevel(600)))
	for y := 0; y < testH; y++ {
		for x := 0; x < testW; x++ {
			v, _ := marker.Pixel(x, y)
			switch {
			case x <= 37: // 16*37 = 592
				require.Equal(t, uint32(7), v, "(%d,%d)", x, y)
			case x == 38:
				require.Equal(t, uint32(0x02000000), v, "(%d,%d)", x, y)
			default:
				require.Equal(t, uint32(0x01000000), v, "(%d,%d)", x, y)
			}
		}
	}

	// Basins hands the label over on push, so the first dry column is
	// labelled too.
	marker = seed()
	require.NoError(t, watershed.Basins32(in, marker, watershed.WithGrid(grid.Square), watershed.WithMaxLevel(600)))
	for y := 0; y < testH; y++ {
		for x := 0; x < testW; x++ {
			v, _ := marker.Pixel(x, y)
			if x <= 38 {
				require.Equal(t, uint32(7), v, "(%d,%d)", x, y)
			} else {
				require.Zero(t, v, "(%d,%d)", x, y)
			}
		}
	}
}

// TestSegment32_MatchesGrey floods a relief below 256 both ways. Only the
// label bits under line pixels may differ.
func TestSegment32_MatchesGrey(t *testing.T) {
	r := rand.New(rand.NewSource(3 ^ 5<<32))
	grey := core.MustCreate(testW, testH, core.Grey)
	long := core.MustCreate(testW, testH, core.Long)
	for i := 0; i < grey.Len(); i++ {
		v := 10 + uint32(r.Int63n(240))
		grey.Set(i, v)
		long.Set(i, v)
	}

	for _, g := range []grid.Grid{grid.Hexagonal, grid.Square} {
		seeds := core.MustCreate(testW, testH, core.Long)
		require.NoError(t, seeds.SetPixel(5, 3, 1))
		require.NoError(t, seeds.SetPixel(40, 12, 2))
		require.NoError(t, seeds.SetPixel(60, 1, 3))
		m8, m32 := seeds.Clone(), seeds.Clone()

		require.NoError(t, watershed.Segment(grey, m8, watershed.WithGrid(g)))
		require.NoError(t, watershed.Segment32(long, m32, watershed.WithGrid(g)))
		for i, v := range m8.Pix32() {
			w := m32.Pix32()[i]
			if v&watershed.StatusMask == watershed.Line {
				require.Equal(t, watershed.Line, w&watershed.StatusMask, "%s pixel %d", g, i)
				continue
			}
			require.Equal(t, v, w, "%s pixel %d", g, i)
		}
	}
}

func TestBasins32(t *testing.T) {
	x := testW / 2
	in := wall(t, core.Long, x, 5000)
	marker := wells(t)
	require.NoError(t, watershed.Basins32(in, marker))
	for _, v := range marker.Pix32() {
		require.Contains(t, []uint32{50, 100}, v)
	}
	base := uint64(x*50+(testW-1-x)*100) * testH
	vol := labelVolume(t, marker)
	assert.GreaterOrEqual(t, vol, base+50*testH)
	assert.LessOrEqual(t, vol, base+100*testH)
}

func TestWatershed_Errors(t *testing.T) {
	grey := core.MustCreate(testW, testH, core.Grey)
	long := core.MustCreate(testW, testH, core.Long)
	small := core.MustCreate(testW, testH/2, core.Long)

	assert.ErrorIs(t, watershed.Segment(grey, grey), core.ErrBadDepth)
	assert.ErrorIs(t, watershed.Basins(long, long), core.ErrBadDepth)
	assert.ErrorIs(t, watershed.Segment(grey, small), core.ErrSizeMismatch)
	assert.ErrorIs(t, watershed.Segment32(grey, long), core.ErrBadDepth)
	for _, l := range []int{257, 300, 1000} {
		assert.ErrorIs(t, watershed.Basins(grey, long, watershed.WithMaxLevel(l)), core.ErrBadValue)
	}
	assert.ErrorIs(t, watershed.Segment(grey, long, watershed.WithGrid(grid.Grid(5))), core.ErrBadParameter)
}

// quadrants marks the centres of the four quadrants of a 64x64 image.
func quadrants(t *testing.T) *core.Image {
	t.Helper()
	in := core.MustCreate(64, 64, core.Binary)
	for _, p := range [][2]int{{16, 16}, {48, 16}, {16, 48}, {48, 48}} {
		require.NoError(t, in.SetPixel(p[0], p[1], 1))
	}
	return in
}

func TestFastSKIZ_Quadrants(t *testing.T) {
	in := quadrants(t)
	out := core.MustCreate(64, 64, core.Binary)
	require.NoError(t, watershed.FastSKIZ(in, out, watershed.WithGrid(grid.Square)))

	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			v, _ := out.Pixel(x, y)
			if x == 32 || y == 32 {
				require.Zero(t, v, "(%d,%d)", x, y)
			} else {
				require.Equal(t, uint32(1), v, "(%d,%d)", x, y)
			}
		}
	}
	assert.Equal(t, uint64(64*64-127), core.Volume(out))
}

func TestGeodesicSKIZ_TwoRects(t *testing.T) {
	mask := core.MustCreate(64, 24, core.Binary)
	for y := 2; y <= 20; y++ {
		for x := 2; x <= 20; x++ {
			require.NoError(t, mask.SetPixel(x, y, 1))
		}
		for x := 30; x <= 60; x++ {
			require.NoError(t, mask.SetPixel(x, y, 1))
		}
	}
	in := core.MustCreate(64, 24, core.Binary)
	for _, x := range []int{10, 35, 55} {
		require.NoError(t, in.SetPixel(x, 10, 1))
	}
	out := core.MustCreate(64, 24, core.Binary)
	require.NoError(t, watershed.GeodesicSKIZ(in, mask, out, watershed.WithGrid(grid.Square)))

	assert.Equal(t, uint64(19*19+31*19-19), core.Volume(out))
	for y := 2; y <= 20; y++ {
		v, _ := out.Pixel(45, y)
		assert.Zero(t, v, "line at (45,%d)", y)
	}
	v, _ := out.Pixel(25, 10)
	assert.Zero(t, v, "outside the mask")
}

func TestValued_Wall(t *testing.T) {
	in := core.MustCreate(testW, testH, core.Grey)
	for y := 0; y < testH; y++ {
		for x := 0; x < testW; x++ {
			v := uint32(10)
			switch {
			case x == testW/2:
				v = 200
			case x > testW/2:
				v = 20
			}
			require.NoError(t, in.SetPixel(x, y, v))
		}
	}
	out := core.MustCreate(testW, testH, core.Grey)
	require.NoError(t, watershed.Valued(in, out))
	assert.Equal(t, uint64(200*testH), core.Volume(out))
	v, _ := out.Pixel(testW/2, 3)
	assert.Equal(t, uint32(200), v)
}

// step is 40 left of column 32 and 120 from it on.
func step(t *testing.T) *core.Image {
	t.Helper()
	in := core.MustCreate(64, 64, core.Grey)
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			v := uint32(40)
			if x >= 32 {
				v = 120
			}
			require.NoError(t, in.SetPixel(x, y, v))
		}
	}
	return in
}

func TestMosaic_Step(t *testing.T) {
	in := step(t)
	out := core.MustCreate(64, 64, core.Grey)
	wts := core.MustCreate(64, 64, core.Grey)
	require.NoError(t, watershed.Mosaic(in, out, wts, watershed.WithGrid(grid.Square)))

	assert.Equal(t, uint64(255*64), core.Volume(wts))
	for y := 0; y < 64; y++ {
		v, _ := wts.Pixel(32, y)
		require.Equal(t, uint32(255), v)
	}
	for _, c := range []struct {
		x    int
		want uint32
	}{{0, 40}, {10, 40}, {31, 40}, {32, 120}, {50, 120}, {63, 120}} {
		v, _ := out.Pixel(c.x, 7)
		assert.Equal(t, c.want, v, "x=%d", c.x)
	}
}

func TestMosaicGradient_Step(t *testing.T) {
	in := step(t)
	out := core.MustCreate(64, 64, core.Grey)
	require.NoError(t, watershed.MosaicGradient(in, out, watershed.WithGrid(grid.Square)))
	assert.Equal(t, uint64(80*64), core.Volume(out))
	v, _ := out.Pixel(32, 20)
	assert.Equal(t, uint32(80), v)
}

func TestDerived_Errors(t *testing.T) {
	bin := core.MustCreate(32, 32, core.Binary)
	grey := core.MustCreate(32, 32, core.Grey)
	small := core.MustCreate(32, 16, core.Grey)

	assert.ErrorIs(t, watershed.FastSKIZ(grey, bin), core.ErrBadDepth)
	assert.ErrorIs(t, watershed.GeodesicSKIZ(bin, bin, grey), core.ErrBadDepth)
	assert.ErrorIs(t, watershed.MarkerControlled(grey, bin, small), core.ErrSizeMismatch)
	assert.ErrorIs(t, watershed.Mosaic(grey, grey, bin), core.ErrBadDepth)
	assert.ErrorIs(t, watershed.MosaicGradient(grey, bin), core.ErrBadDepth)
}
