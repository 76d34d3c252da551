package raycast

import (
	"iter"
	"math"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
)

// DDA is the default Stepper. It walks the grid with the Amanatides-Woo voxel
// traversal algorithm.
type DDA struct{}

// Step walks the cells yielded by Voxels.
func (DDA) Step(origin, dir mgl64.Vec3, maxDist float64, f func(v Voxel) bool) {
	for v := range Voxels(origin, dir, maxDist) {
		if !f(v) {
			return
		}
	}
}

// Voxels returns the cells along the ray starting at origin with the unit
// direction dir, up to maxDist. The cell holding origin is always yielded
// first, even if maxDist is 0.
// https://github.com/pmmp/Math/blob/stable/src/VoxelRayTrace.php#L67
func Voxels(origin, dir mgl64.Vec3, maxDist float64) iter.Seq[Voxel] {
	return func(yield func(Voxel) bool) {
		pos := cube.PosFromVec3(origin)
		if !yield(Voxel{Pos: pos, Entry: origin}) {
			return
		}

		var (
			step   [3]int
			tMax   [3]float64
			tDelta [3]float64
		)
		for i := range 3 {
			step[i] = sign(dir[i])
			tMax[i] = distanceToBoundary(origin[i], dir[i])
			tDelta[i] = math.Inf(1)
			if dir[i] != 0 {
				tDelta[i] = float64(step[i]) / dir[i]
			}
		}

		for {
			axis := 2
			if tMax[0] < tMax[1] && tMax[0] < tMax[2] {
				axis = 0
			} else if tMax[1] < tMax[2] {
				axis = 1
			}

			t := tMax[axis]
			if t > maxDist || math.IsInf(t, 1) {
				return
			}
			pos[axis] += step[axis]
			tMax[axis] += tDelta[axis]

			v := Voxel{Pos: pos, Entry: origin.Add(dir.Mul(t)), Distance: t}
			v.Normal[axis] = -float64(step[axis])
			// The entry point lies on the boundary plane of the new cell.
			if step[axis] > 0 {
				v.Entry[axis] = float64(pos[axis])
			} else {
				v.Entry[axis] = float64(pos[axis] + 1)
			}
			if !yield(v) {
				return
			}
		}
	}
}

// distanceToBoundary returns the ray parameter at which a ray starting at s
// with the direction component ds crosses the next integer boundary.
// https://github.com/pmmp/Math/blob/stable/src/VoxelRayTrace.php#L134
func distanceToBoundary(s, ds float64) float64 {
	if ds == 0 {
		return math.Inf(1)
	}

	if ds < 0 {
		s = -s
		ds = -ds

		if math.Floor(s) == s {
			return 0
		}
	}

	return (1 - (s - math.Floor(s))) / ds
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
