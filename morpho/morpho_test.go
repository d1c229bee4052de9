package morpho_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmorph/arith"
	"github.com/katalvlaran/lvmorph/core"
	"github.com/katalvlaran/lvmorph/grid"
	"github.com/katalvlaran/lvmorph/morpho"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func point(t *testing.T, depth core.Depth, x, y int) *core.Image {
	t.Helper()
	img := core.MustCreate(64, 16, depth)
	require.NoError(t, img.SetPixel(x, y, depth.Max()))
	return img
}

func noise(seed int64, depth core.Depth) *core.Image {
	rng := rand.New(rand.NewSource(seed))
	img := core.MustCreate(64, 16, depth)
	for i := 0; i < img.Len(); i++ {
		img.Set(i, rng.Uint32())
	}
	return img
}

func TestDilate_Point(t *testing.T) {
	cases := []struct {
		name string
		se   grid.SE
		want uint64
	}{
		{"hexagon", grid.Hexagon, 7},
		{"square", grid.Square3x3, 9},
		{"segment", grid.Segment, 2},
		{"triangle", grid.Triangle, 3},
		{"diamond", grid.Diamond, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := point(t, core.Binary, 20, 8)
			out := core.MustCreate(64, 16, core.Binary)
			require.NoError(t, morpho.Dilate(in, out, 1, morpho.WithSE(tc.se)))
			assert.Equal(t, tc.want, core.Volume(out))
		})
	}
}

// TestDilate_NoCenter checks that an element without direction 0 moves
// the point instead of growing it.
func TestDilate_NoCenter(t *testing.T) {
	se := grid.MustSE(grid.Square, 3)
	in := point(t, core.Grey, 20, 8)
	out := core.MustCreate(64, 16, core.Grey)
	require.NoError(t, morpho.Dilate(in, out, 2, morpho.WithSE(se)))
	v, _ := out.Pixel(18, 8)
	assert.Equal(t, uint32(255), v)
	assert.Equal(t, uint64(255), core.Volume(out))
}

func TestDilate_ZeroIterationsCopies(t *testing.T) {
	in := noise(3, core.Long)
	out := core.MustCreate(64, 16, core.Long)
	require.NoError(t, morpho.Dilate(in, out, 0))
	assert.True(t, core.Equal(in, out))
}

// TestErodeDilate_Duality verifies Erode(A) == Negate(Dilate(Negate(A)))
// with the default edges on every depth.
func TestErodeDilate_Duality(t *testing.T) {
	for _, depth := range []core.Depth{core.Binary, core.Grey, core.Long} {
		for _, se := range []grid.SE{grid.Hexagon, grid.Square3x3, grid.Tripod, grid.Square2x2} {
			a := noise(int64(depth), depth)
			ero := core.MustCreate(64, 16, depth)
			require.NoError(t, morpho.Erode(a, ero, 2, morpho.WithSE(se)))

			neg := core.MustCreate(64, 16, depth)
			require.NoError(t, arith.Negate(a, neg))
			dil := core.MustCreate(64, 16, depth)
			require.NoError(t, morpho.Dilate(neg, dil, 2, morpho.WithSE(se)))
			require.NoError(t, arith.Negate(dil, dil))

			assert.True(t, core.Equal(ero, dil), "%s %s", depth, se)
		}
	}
}

func TestOpen_Idempotent(t *testing.T) {
	a := noise(11, core.Grey)
	once := core.MustCreate(64, 16, core.Grey)
	require.NoError(t, morpho.Open(a, once, 1))
	twice := core.MustCreate(64, 16, core.Grey)
	require.NoError(t, morpho.Open(once, twice, 1))
	assert.True(t, core.Equal(once, twice))

	// closing is extensive
	closed := core.MustCreate(64, 16, core.Grey)
	require.NoError(t, morpho.Close(a, closed, 1))
	sup := core.MustCreate(64, 16, core.Grey)
	require.NoError(t, arith.Sup(a, closed, sup))
	assert.True(t, core.Equal(sup, closed))
}

func TestGradient_Constant(t *testing.T) {
	in := core.MustCreate(64, 16, core.Grey)
	in.Fill(90)
	out := core.MustCreate(64, 16, core.Grey)
	require.NoError(t, morpho.Gradient(in, out, 1))
	assert.True(t, core.IsEmpty(out))
}

func TestHalfGradientTopHat(t *testing.T) {
	in := point(t, core.Binary, 20, 8)
	out := core.MustCreate(64, 16, core.Binary)

	require.NoError(t, morpho.HalfGradient(in, out, morpho.Intern, 1))
	assert.Equal(t, uint64(1), core.Volume(out))
	require.NoError(t, morpho.HalfGradient(in, out, morpho.Extern, 1))
	assert.Equal(t, uint64(6), core.Volume(out))
	require.NoError(t, morpho.Gradient(in, out, 1))
	assert.Equal(t, uint64(7), core.Volume(out))

	require.NoError(t, morpho.WhiteTopHat(in, out, 1))
	assert.True(t, core.Equal(in, out))

	hole := core.MustCreate(64, 16, core.Grey)
	hole.Fill(200)
	require.NoError(t, hole.SetPixel(20, 8, 0))
	g := core.MustCreate(64, 16, core.Grey)
	require.NoError(t, morpho.BlackTopHat(hole, g, 1))
	assert.Equal(t, uint64(200), core.Volume(g))
}

func TestLinearAndDoublePoint(t *testing.T) {
	in := point(t, core.Binary, 20, 8)
	out := core.MustCreate(64, 16, core.Binary)

	require.NoError(t, morpho.LinearDilate(in, out, 7, 3, morpho.WithGrid(grid.Square)))
	assert.Equal(t, uint64(4), core.Volume(out))

	require.NoError(t, morpho.LinearErode(out, out, 3, 3, morpho.WithGrid(grid.Square)))
	assert.True(t, core.Equal(in, out))

	require.NoError(t, morpho.DoublePointDilate(in, out, 3, 5, morpho.WithGrid(grid.Square)))
	assert.Equal(t, uint64(2), core.Volume(out))
	v, _ := out.Pixel(15, 8)
	assert.Equal(t, uint32(1), v)

	assert.ErrorIs(t, morpho.LinearDilate(in, out, 8, 1), core.ErrBadDirection)
}

func TestLargeShapes(t *testing.T) {
	in := point(t, core.Binary, 20, 8)
	out := core.MustCreate(64, 16, core.Binary)

	require.NoError(t, morpho.ConjugateHexagonDilate(in, out, 1))
	assert.Equal(t, uint64(13), core.Volume(out))
	require.NoError(t, morpho.ConjugateHexagonErode(out, out, 1))
	assert.True(t, core.Equal(in, out))

	require.NoError(t, morpho.OctagonDilate(in, out, 2))
	assert.Equal(t, uint64(21), core.Volume(out))

	// size 2 is a single conjugate hexagon step
	require.NoError(t, morpho.DodecagonDilate(in, out, 2))
	assert.Equal(t, uint64(13), core.Volume(out))
}

func TestErrors(t *testing.T) {
	a := core.MustCreate(64, 16, core.Grey)
	b := core.MustCreate(64, 32, core.Grey)
	assert.ErrorIs(t, morpho.Dilate(a, b, 1), core.ErrSizeMismatch)
	assert.ErrorIs(t, morpho.Erode(a, a, -1), core.ErrBadValue)
	assert.ErrorIs(t, morpho.Erode(a, a, 1, morpho.WithSE(grid.SE{})), core.ErrBadParameter)
	assert.ErrorIs(t, morpho.Erode(a, a, 1, morpho.WithGrid(grid.Grid(3))), core.ErrBadParameter)
}

// speckled returns a 200 block on rows 3..12 with a one-pixel pit, and a
// lone 200 speck, over a background of 50.
func speckled() (in, clean *core.Image) {
	in = core.MustCreate(64, 16, core.Grey)
	in.Fill(50)
	for y := 3; y <= 12; y++ {
		for x := 10; x <= 19; x++ {
			in.Set(in.Index(x, y), 200)
		}
	}
	clean = in.Clone()
	in.Set(in.Index(14, 7), 50)
	in.Set(in.Index(40, 8), 200)
	return in, clean
}

func TestAlternateFilters(t *testing.T) {
	sq := morpho.WithSE(grid.Square3x3)
	for _, openFirst := range []bool{true, false} {
		in, clean := speckled()
		out := core.MustCreate(64, 16, core.Grey)

		require.NoError(t, morpho.AlternateFilter(in, out, 1, openFirst, sq))
		assert.True(t, core.Equal(clean, out), "alternate, openFirst=%v", openFirst)

		require.NoError(t, morpho.FullAlternateFilter(in, out, 2, openFirst, sq))
		assert.True(t, core.Equal(clean, out), "full, openFirst=%v", openFirst)
	}

	in, clean := speckled()
	out := core.MustCreate(64, 16, core.Grey)
	require.NoError(t, morpho.AutoMedian(in, out, 1, sq))
	assert.True(t, core.Equal(clean, out))

	require.NoError(t, morpho.FullAlternateFilter(in, out, 0, true))
	assert.True(t, core.Equal(in, out))
}

func TestRegularisedGradient(t *testing.T) {
	step := core.MustCreate(64, 16, core.Grey)
	ramp := core.MustCreate(64, 16, core.Grey)
	for y := 0; y < 16; y++ {
		for x := 0; x < 64; x++ {
			if x >= 32 {
				step.Set(step.Index(x, y), 200)
			}
			ramp.Set(ramp.Index(x, y), uint32(4*x))
		}
	}
	out := core.MustCreate(64, 16, core.Grey)
	sq := morpho.WithGrid(grid.Square)

	// A sharp step leaves a contour two pixels wide.
	require.NoError(t, morpho.RegularisedGradient(step, out, 1, sq))
	assert.Equal(t, uint64(200*2*16), core.Volume(out))
	v, _ := out.Pixel(31, 5)
	assert.Equal(t, uint32(200), v)
	v, _ = out.Pixel(32, 5)
	assert.Equal(t, uint32(200), v)

	// A gentle ramp has no thin contour.
	require.NoError(t, morpho.RegularisedGradient(ramp, out, 1, sq))
	assert.Equal(t, uint64(0), core.Volume(out))

	assert.ErrorIs(t, morpho.RegularisedGradient(step, out, 0), core.ErrBadValue)
}
