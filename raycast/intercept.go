package raycast

import (
	"math"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
)

// Interception is the result of intersecting a ray with a bounding box.
type Interception struct {
	// Distance is the ray parameter at which the ray enters the box.
	Distance float64
	// Point is the point at which the ray enters the box. The coordinate on
	// the axis of Normal lies exactly on the face plane.
	Point mgl64.Vec3
	// Normal is the outward normal of the entered face, or the zero vector if
	// Inside is true.
	Normal mgl64.Vec3
	// Inside is true if the origin of the ray lies within the box. Distance
	// is 0 and Point is the origin in that case.
	Inside bool
}

// Intercept intersects the ray starting at origin with the unit direction dir
// with bb using the slab method. The box is solid: a ray starting inside it
// hits it immediately. A hit further than maxDist along the ray is a miss. On
// an axis the ray runs parallel to, it only hits if the origin lies within
// the slab of bb on that axis, bounds included.
func Intercept(bb cube.BBox, origin, dir mgl64.Vec3, maxDist float64) (Interception, bool) {
	minV, maxV := bb.Min(), bb.Max()
	tNear, tFar := math.Inf(-1), math.Inf(1)
	nearAxis := -1

	for axis := range 3 {
		o, d := origin[axis], dir[axis]
		if d == 0 {
			if o < minV[axis] || o > maxV[axis] {
				return Interception{}, false
			}
			continue
		}

		t1 := (minV[axis] - o) / d
		t2 := (maxV[axis] - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tNear {
			tNear, nearAxis = t1, axis
		}
		if t2 < tFar {
			tFar = t2
		}
		if tNear > tFar {
			return Interception{}, false
		}
	}

	if tFar < 0 {
		// The box lies behind the origin.
		return Interception{}, false
	}
	if nearAxis == -1 || tNear < 0 {
		return Interception{Point: origin, Inside: true}, true
	}
	if tNear > maxDist {
		return Interception{}, false
	}

	in := Interception{Distance: tNear, Point: origin.Add(dir.Mul(tNear))}
	if dir[nearAxis] > 0 {
		in.Normal[nearAxis] = -1
		in.Point[nearAxis] = minV[nearAxis]
	} else {
		in.Normal[nearAxis] = 1
		in.Point[nearAxis] = maxV[nearAxis]
	}
	return in, true
}
