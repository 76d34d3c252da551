package raycast

import (
	"math"
	"testing"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, s Stepper, origin, dir mgl64.Vec3, maxDist float64) []Voxel {
	t.Helper()
	var voxels []Voxel
	require.NoError(t, Traverse(s, origin, dir, maxDist, func(v Voxel) bool {
		voxels = append(voxels, v)
		return true
	}))
	return voxels
}

func TestVoxelsAxisAligned(t *testing.T) {
	voxels := collect(t, DDA{}, mgl64.Vec3{0.5, 0.5, 0.5}, mgl64.Vec3{0, 0, -1}, 3)
	require.Len(t, voxels, 4)

	require.Equal(t, Voxel{Pos: cube.Pos{0, 0, 0}, Entry: mgl64.Vec3{0.5, 0.5, 0.5}}, voxels[0])
	for i, v := range voxels[1:] {
		require.Equal(t, cube.Pos{0, 0, -i - 1}, v.Pos)
		require.Equal(t, mgl64.Vec3{0, 0, 1}, v.Normal)
		require.Equal(t, float64(-i), v.Entry.Z())
		require.InDelta(t, 0.5+float64(i), v.Distance, 1e-12)
	}
}

func TestVoxelsDiagonalOrder(t *testing.T) {
	origin := mgl64.Vec3{0.3, 64.7, -3.2}
	dir := mgl64.Vec3{-0.6, -0.3, 0.74}
	voxels := collect(t, DDA{}, origin, dir, 25)
	require.Greater(t, len(voxels), 25)

	unit := dir.Normalize()
	for i := 1; i < len(voxels); i++ {
		prev, v := voxels[i-1], voxels[i]
		require.GreaterOrEqual(t, v.Distance, prev.Distance)
		require.LessOrEqual(t, v.Distance, 25.0)

		// Consecutive cells share a face, and the entry point is on it.
		diff := [3]int{v.Pos[0] - prev.Pos[0], v.Pos[1] - prev.Pos[1], v.Pos[2] - prev.Pos[2]}
		require.Equal(t, mgl64.Vec3{-float64(diff[0]), -float64(diff[1]), -float64(diff[2])}, v.Normal)
		require.InDelta(t, 1, v.Normal.Len(), 1e-12)

		expected := origin.Add(unit.Mul(v.Distance))
		for axis := range 3 {
			require.InDelta(t, expected[axis], v.Entry[axis], 1e-9)
			require.GreaterOrEqual(t, v.Entry[axis], float64(v.Pos[axis])-1e-9)
			require.LessOrEqual(t, v.Entry[axis], float64(v.Pos[axis]+1)+1e-9)
		}
	}
}

func TestVoxelsIntegerOriginNegativeDirection(t *testing.T) {
	voxels := collect(t, DDA{}, mgl64.Vec3{1, 0.5, 0.5}, mgl64.Vec3{-1, 0, 0}, 1.5)
	require.Len(t, voxels, 3)
	require.Equal(t, cube.Pos{1, 0, 0}, voxels[0].Pos)
	require.Equal(t, cube.Pos{0, 0, 0}, voxels[1].Pos)
	require.Zero(t, voxels[1].Distance)
	require.Equal(t, cube.Pos{-1, 0, 0}, voxels[2].Pos)
	require.Equal(t, 1.0, voxels[2].Distance)
}

func TestVoxelsZeroDistance(t *testing.T) {
	voxels := collect(t, DDA{}, mgl64.Vec3{-0.5, 3.5, 7.5}, mgl64.Vec3{1, 1, 1}, 0)
	require.Equal(t, []Voxel{{Pos: cube.Pos{-1, 3, 7}, Entry: mgl64.Vec3{-0.5, 3.5, 7.5}}}, voxels)
}

func TestVoxelsEarlyExit(t *testing.T) {
	n := 0
	for range Voxels(mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}, 100) {
		n++
		if n == 5 {
			break
		}
	}
	require.Equal(t, 5, n)
}

func TestTraverseNormalizes(t *testing.T) {
	var got mgl64.Vec3
	s := StepperFunc(func(origin, dir mgl64.Vec3, maxDist float64, f func(v Voxel) bool) {
		got = dir
	})
	require.NoError(t, Traverse(s, mgl64.Vec3{}, mgl64.Vec3{0, 3, 4}, 1, nil))
	require.InDelta(t, 0.6, got.Y(), 1e-15)
	require.InDelta(t, 0.8, got.Z(), 1e-15)

	require.ErrorIs(t, Traverse(s, mgl64.Vec3{}, mgl64.Vec3{}, 1, nil), ErrZeroDirection)
	require.ErrorIs(t, Traverse(nil, mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}, math.Inf(1), nil), ErrInvalidDistance)
}

func TestTraceStepper(t *testing.T) {
	voxels := collect(t, TraceStepper{}, mgl64.Vec3{0.5, 0.5, 0.5}, mgl64.Vec3{1, 0, 0}, 3)
	require.GreaterOrEqual(t, len(voxels), 4)

	require.Equal(t, cube.Pos{0, 0, 0}, voxels[0].Pos)
	require.Equal(t, mgl64.Vec3{0.5, 0.5, 0.5}, voxels[0].Entry)
	for i := 1; i < 4; i++ {
		v := voxels[i]
		require.Equal(t, cube.Pos{i, 0, 0}, v.Pos)
		require.Equal(t, mgl64.Vec3{-1, 0, 0}, v.Normal)
		require.InDelta(t, float64(i), v.Entry.X(), 1e-9)
		require.InDelta(t, float64(i)-0.5, v.Distance, 1e-9)
	}
}

func TestTraceStepperZeroDistance(t *testing.T) {
	voxels := collect(t, TraceStepper{}, mgl64.Vec3{2.5, 2.5, 2.5}, mgl64.Vec3{0, 1, 0}, 0)
	require.Equal(t, []Voxel{{Pos: cube.Pos{2, 2, 2}, Entry: mgl64.Vec3{2.5, 2.5, 2.5}}}, voxels)
}

func TestTraceStepperCast(t *testing.T) {
	w := newMockWorld(map[cube.Pos]Block{{0, 0, 4}: full})
	trail := NewTrail()
	c := Caster{Stepper: TraceStepper{}, HitsOnly: true, StrictOrder: true}
	require.NoError(t, c.Cast(w, centre, mgl64.Vec3{0, 0, 1}, 10, Record[World](trail, 1)))

	h, ok := trail.First()
	require.True(t, ok)
	require.Equal(t, cube.Pos{0, 0, 4}, h.Pos)
	require.Equal(t, mgl64.Vec3{0, 0, -1}, h.Normal)
	require.InDelta(t, 3.5, h.Distance, 1e-12)
}
