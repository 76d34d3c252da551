package raycast

import (
	"math"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/blockray/oerror"
)

var (
	// ErrZeroDirection is returned when a ray has a zero length direction.
	ErrZeroDirection = oerror.New("raycast: ray direction has zero length")
	// ErrInvalidDirection is returned when a ray direction contains NaN or infinite components.
	ErrInvalidDirection = oerror.New("raycast: ray direction is not finite")
	// ErrInvalidDistance is returned when the max distance of a ray is not a finite, non-negative number.
	ErrInvalidDistance = oerror.New("raycast: max distance must be a finite, non-negative number")
)

// Stepper enumerates the cells intersected by a ray without looking at any
// geometry.
//
// Step calls f for every cell the ray passes through within maxDist of origin,
// in non-decreasing order of Voxel.Distance, and returns as soon as f returns
// false. dir is always unit length and maxDist is always finite. The refinement done by a Caster relies
// on the ordering: a Stepper that yields cells out of order makes a cast
// report hits behind the ones it should have found first.
type Stepper interface {
	Step(origin, dir mgl64.Vec3, maxDist float64, f func(v Voxel) bool)
}

// StepperFunc is a function implementing Stepper.
type StepperFunc func(origin, dir mgl64.Vec3, maxDist float64, f func(v Voxel) bool)

// Step calls s(origin, dir, maxDist, f).
func (s StepperFunc) Step(origin, dir mgl64.Vec3, maxDist float64, f func(v Voxel) bool) {
	s(origin, dir, maxDist, f)
}

// Traverse normalizes dir and walks the cells along the ray with s, passing
// each of them to f unchanged and in the order s produced them. f returning
// false stops the traversal. If s is nil, DDA is used.
//
// No cell is visited and an error is returned if dir has zero length or is
// not finite, or if maxDist is negative or not finite.
func Traverse(s Stepper, origin, dir mgl64.Vec3, maxDist float64, f func(v Voxel) bool) error {
	dir, err := normalizeRay(dir, maxDist)
	if err != nil {
		return err
	}
	step(s, origin, dir, maxDist, f)
	return nil
}

// step delegates to s, or DDA if s is nil. dir must already be unit length.
func step(s Stepper, origin, dir mgl64.Vec3, maxDist float64, f func(v Voxel) bool) {
	if s == nil {
		s = DDA{}
	}
	s.Step(origin, dir, maxDist, f)
}

// normalizeRay validates the ray parameters and returns dir scaled to unit length.
func normalizeRay(dir mgl64.Vec3, maxDist float64) (mgl64.Vec3, error) {
	if math.IsNaN(maxDist) || math.IsInf(maxDist, 0) || maxDist < 0 {
		return dir, ErrInvalidDistance
	}
	for _, c := range dir {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return dir, ErrInvalidDirection
		}
	}
	// Scale by the largest component first so that neither huge nor tiny
	// directions overflow or underflow in Len.
	m := math.Max(math.Abs(dir[0]), math.Max(math.Abs(dir[1]), math.Abs(dir[2])))
	if m == 0 {
		return dir, ErrZeroDirection
	}
	dir = mgl64.Vec3{dir[0] / m, dir[1] / m, dir[2] / m}
	return dir.Mul(1 / dir.Len()), nil
}

// faceNormal returns the outward unit normal of face.
func faceNormal(face cube.Face) mgl64.Vec3 {
	return cube.Pos{}.Side(face).Vec3()
}
