package neighbor_test

import (
	"testing"

	"github.com/katalvlaran/lvmorph/core"
	"github.com/katalvlaran/lvmorph/grid"
	"github.com/katalvlaran/lvmorph/neighbor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testW = 64
	testH = 8
)

func newImage(t *testing.T, depth core.Depth) *core.Image {
	t.Helper()
	img, err := core.Create(testW, testH, depth)
	require.NoError(t, err)
	return img
}

// TestSupNeighbor_FilledEdge floods an empty image from a filled border:
// only pixels whose neighbor lies outside pick up the edge value.
func TestSupNeighbor_FilledEdge(t *testing.T) {
	cases := []struct {
		g    grid.Grid
		want []uint64
	}{
		{grid.Hexagonal, []uint64{0, testW + testH/2, testH, testW + testH/2 - 1, testW + testH/2, testH, testW + testH/2 - 1}},
		{grid.Square, []uint64{0, testW, testH + testW - 1, testH, testW + testH - 1, testW, testW + testH - 1, testH, testH + testW - 1}},
	}
	for _, tc := range cases {
		for d, want := range tc.want {
			in := newImage(t, core.Binary)
			out := newImage(t, core.Binary)
			require.NoError(t, neighbor.SupNeighbor(in, out, d,
				neighbor.WithGrid(tc.g), neighbor.WithEdge(core.Filled)))
			assert.Equal(t, want, core.Volume(out), "%s direction %d", tc.g, d)
		}
	}
}

// TestInfNeighbor_EmptyEdge is the dual fixture: a full image loses the
// pixels whose neighbor lies outside.
func TestInfNeighbor_EmptyEdge(t *testing.T) {
	in := newImage(t, core.Grey)
	in.Fill(255)
	out := in.Clone()
	require.NoError(t, neighbor.InfNeighbor(in, out, 1, neighbor.WithEdge(core.Empty)))
	zeros := uint64(in.Len()) - core.Volume(out)/255
	assert.Equal(t, uint64(testW+testH/2), zeros)
}

func TestInfNeighbor_DefaultFilled(t *testing.T) {
	in := newImage(t, core.Long)
	in.Fill(9)
	out := in.Clone()
	require.NoError(t, neighbor.InfNeighbor(in, out, 4))
	assert.True(t, core.Equal(in, out))
}

func TestRepeat(t *testing.T) {
	img := newImage(t, core.Binary)
	require.NoError(t, img.SetPixel(10, 4, 1))

	once := img.Clone()
	require.NoError(t, neighbor.SupNeighbor(once, once, 7, neighbor.WithGrid(grid.Square)))
	assert.Equal(t, uint64(2), core.Volume(once))

	require.NoError(t, neighbor.SupNeighborRepeat(img, 7, 3, neighbor.WithGrid(grid.Square)))
	assert.Equal(t, uint64(4), core.Volume(img))
	v, _ := img.Pixel(13, 4)
	assert.Equal(t, uint32(1), v)

	require.NoError(t, neighbor.InfNeighborRepeat(img, 7, 2, neighbor.WithGrid(grid.Square)))
	assert.Equal(t, uint64(2), core.Volume(img))

	assert.ErrorIs(t, neighbor.SupNeighborRepeat(img, 7, -1), core.ErrBadValue)
}

func TestDiffNeighbor(t *testing.T) {
	in := newImage(t, core.Grey)
	require.NoError(t, in.SetPixel(10, 4, 50))
	require.NoError(t, in.SetPixel(11, 4, 80))
	out := newImage(t, core.Grey)

	// direction 3 compares each pixel with its right-hand neighbor
	require.NoError(t, neighbor.DiffNeighbor(in, out, 3, neighbor.WithGrid(grid.Square)))
	assert.Equal(t, uint64(80), core.Volume(out))

	l := newImage(t, core.Long)
	assert.ErrorIs(t, neighbor.DiffNeighbor(l, l.Clone(), 3), core.ErrBadDepth)
}

func TestShift(t *testing.T) {
	in := newImage(t, core.Binary)
	require.NoError(t, in.SetPixel(10, 4, 1))
	out := newImage(t, core.Binary)

	require.NoError(t, neighbor.Shift(in, out, 3, 5, 0, neighbor.WithGrid(grid.Square)))
	v, _ := out.Pixel(15, 4)
	assert.Equal(t, uint32(1), v)
	assert.Equal(t, uint64(1), core.Volume(out))

	require.NoError(t, neighbor.Shift(in, out, 3, 2, 0))
	v, _ = out.Pixel(11, 6)
	assert.Equal(t, uint32(1), v)
	assert.Equal(t, uint64(1), core.Volume(out))

	require.NoError(t, neighbor.Shift(in, out, 1, 3, 1, neighbor.WithGrid(grid.Square)))
	assert.Equal(t, uint64(3*testW+1), core.Volume(out))

	require.NoError(t, neighbor.Shift(in, out, 2, 0, 1))
	assert.True(t, core.Equal(in, out))
}

func TestShiftVector(t *testing.T) {
	in := newImage(t, core.Grey)
	require.NoError(t, in.SetPixel(10, 4, 7))
	out := newImage(t, core.Grey)
	require.NoError(t, neighbor.ShiftVector(in, out, -3, 2, 0))
	v, _ := out.Pixel(7, 6)
	assert.Equal(t, uint32(7), v)
}

func TestSupInfVector(t *testing.T) {
	in := newImage(t, core.Grey)
	require.NoError(t, in.SetPixel(10, 4, 100))

	sup := newImage(t, core.Grey)
	sup.Fill(20)
	require.NoError(t, neighbor.SupVector(in, sup, 3, -2))
	v, _ := sup.Pixel(13, 2)
	assert.Equal(t, uint32(100), v)
	v, _ = sup.Pixel(10, 4)
	assert.Equal(t, uint32(20), v)
	assert.Equal(t, uint64(20*(testW*testH-1)+100), core.Volume(sup))

	inf := newImage(t, core.Grey)
	inf.Fill(255)
	require.NoError(t, neighbor.InfVector(in, inf, 3, -2))
	v, _ = inf.Pixel(13, 2)
	assert.Equal(t, uint32(100), v)
	v, _ = inf.Pixel(20, 2)
	assert.Equal(t, uint32(0), v)
	// Columns 0..2 and rows 6..7 read outside the image.
	v, _ = inf.Pixel(1, 3)
	assert.Equal(t, uint32(255), v)
	v, _ = inf.Pixel(30, 7)
	assert.Equal(t, uint32(255), v)

	require.NoError(t, neighbor.InfVector(in, inf, 3, -2, neighbor.WithEdge(core.Empty)))
	v, _ = inf.Pixel(30, 7)
	assert.Equal(t, uint32(0), v)

	small, err := core.Create(testW, testH*2, core.Grey)
	require.NoError(t, err)
	assert.ErrorIs(t, neighbor.SupVector(in, small, 1, 1), core.ErrSizeMismatch)
	assert.ErrorIs(t, neighbor.InfVector(in, newImage(t, core.Long), 1, 1), core.ErrBadDepth)
}

func TestFarNeighbor(t *testing.T) {
	in := newImage(t, core.Binary)
	require.NoError(t, in.SetPixel(10, 4, 1))
	out := newImage(t, core.Binary)
	require.NoError(t, neighbor.SupFarNeighbor(in, out, 3, 4, neighbor.WithGrid(grid.Square)))
	v, _ := out.Pixel(6, 4)
	assert.Equal(t, uint32(1), v)
	assert.Equal(t, uint64(1), core.Volume(out))

	full := newImage(t, core.Binary)
	full.Fill(1)
	res := full.Clone()
	require.NoError(t, neighbor.InfFarNeighbor(full, res, 3, 4, neighbor.WithGrid(grid.Square), neighbor.WithEdge(core.Empty)))
	assert.Equal(t, uint64(full.Len()-4*testH), core.Volume(res))
}

func TestBuildNeighbor_Cascades(t *testing.T) {
	mask := newImage(t, core.Binary)
	for x := 0; x <= 20; x++ {
		require.NoError(t, mask.SetPixel(x, 0, 1))
	}
	marker := newImage(t, core.Binary)
	require.NoError(t, marker.SetPixel(0, 0, 1))

	vol, err := neighbor.BuildNeighbor(mask, marker, 3, neighbor.WithGrid(grid.Square))
	require.NoError(t, err)
	assert.Equal(t, uint64(21), vol)

	// the opposite direction has nothing left to spread
	vol, err = neighbor.BuildNeighbor(mask, marker, 7, neighbor.WithGrid(grid.Square))
	require.NoError(t, err)
	assert.Equal(t, uint64(21), vol)
}

func TestDualBuildNeighbor(t *testing.T) {
	mask := newImage(t, core.Binary)
	require.NoError(t, mask.SetPixel(30, 0, 1))
	marker := newImage(t, core.Binary)
	marker.Fill(1)
	require.NoError(t, marker.SetPixel(5, 0, 0))

	vol, err := neighbor.DualBuildNeighbor(mask, marker, 3, neighbor.WithGrid(grid.Square))
	require.NoError(t, err)
	assert.Equal(t, uint64(marker.Len()-25), vol)
}

func TestErrors(t *testing.T) {
	a := newImage(t, core.Grey)
	b := core.MustCreate(128, testH, core.Grey)
	c := newImage(t, core.Long)

	assert.ErrorIs(t, neighbor.SupNeighbor(a, b, 1), core.ErrSizeMismatch)
	assert.ErrorIs(t, neighbor.SupNeighbor(a, c, 1), core.ErrBadDepth)
	assert.ErrorIs(t, neighbor.SupNeighbor(a, a.Clone(), 7), core.ErrBadDirection)
	assert.ErrorIs(t, neighbor.SupNeighbor(a, a.Clone(), 1, neighbor.WithGrid(grid.Grid(9))), core.ErrBadParameter)
	assert.ErrorIs(t, neighbor.SupNeighbor(a, a.Clone(), 1, neighbor.WithEdge(core.Edge(4))), core.ErrBadParameter)
}
