// Package raycast answers precise ray queries against a sparse voxel grid whose
// cells may hold any number of axis-aligned collision boxes.
//
// A coarse Stepper enumerates the cells along a ray in order of distance. For
// every cell the Caster looks up the block occupying it, intersects the ray
// with each of the block's collision boxes and hands the refined result to a
// Visitor, which decides whether the cast continues.
package raycast

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
)

// Block is the collision geometry occupying a single cell.
type Block interface {
	// CollisionBoxes returns the boxes of the block in cell-local space, where
	// the cell spans [0, 1] on every axis. The range is not enforced.
	CollisionBoxes() []cube.BBox
}

// Boxes is a Block made of a fixed list of cell-local boxes.
type Boxes []cube.BBox

// CollisionBoxes returns b itself.
func (b Boxes) CollisionBoxes() []cube.BBox {
	return b
}

// World is a read-only view of a voxel grid.
type World interface {
	// Block returns the block at pos. ok is false if the cell holds no block.
	Block(pos cube.Pos) (b Block, ok bool)
}

// MutableWorld is a World that may be changed by a Visitor while a cast is
// running.
type MutableWorld interface {
	World
	// LiveBlock returns the block at pos. Unlike Block, it must reflect every
	// change made to the world so far, including changes made by the visitor
	// earlier in the same cast.
	LiveBlock(pos cube.Pos) (b Block, ok bool)
}

// Visitor is called for every cell visited by a cast. It receives the world
// the cast runs on, so that a mutable cast can change it. Returning false
// stops the cast.
type Visitor[W any] func(w W, h Hit) bool

// HitKind tells what a cast found in a visited cell.
type HitKind uint8

const (
	// KindNoBlock means the cell holds no block.
	KindNoBlock HitKind = iota
	// KindMiss means the cell holds a block but the ray intersects none of its
	// collision boxes.
	KindMiss
	// KindHit means the ray intersects a collision box of the block.
	KindHit
)

func (k HitKind) String() string {
	switch k {
	case KindNoBlock:
		return "no_block"
	case KindMiss:
		return "miss"
	case KindHit:
		return "hit"
	default:
		return "unknown"
	}
}

// Hit is the refined result for a single visited cell. Point, Normal, Distance
// and Box are only set when Kind is KindHit.
type Hit struct {
	Kind HitKind
	// Pos is the cell visited.
	Pos cube.Pos
	// Point is the world-space intersection point.
	Point mgl64.Vec3
	// Normal is the outward normal of the face the ray entered through. It is
	// the zero vector if the ray starts inside Box.
	Normal mgl64.Vec3
	// Distance is the distance travelled along the ray to Point.
	Distance float64
	// Box is the world-space collision box that was hit.
	Box cube.BBox
	// Inside is true if the origin of the ray lies within Box.
	Inside bool
}

// Face returns the face of the cell the ray hit through, derived from Normal.
// ok is false if there is no hit or the ray started inside the box.
func (h Hit) Face() (face cube.Face, ok bool) {
	if h.Kind != KindHit || h.Normal == (mgl64.Vec3{}) {
		return 0, false
	}
	for _, f := range cube.Faces() {
		if faceNormal(f) == h.Normal {
			return f, true
		}
	}
	return 0, false
}

// Voxel is a single cell produced by a Stepper.
type Voxel struct {
	Pos cube.Pos
	// Entry is the point at which the ray enters the cell. For the cell that
	// contains the origin it is the origin itself.
	Entry mgl64.Vec3
	// Normal is the outward normal of the cell face the ray entered through,
	// or the zero vector for the origin cell.
	Normal mgl64.Vec3
	// Distance is the ray parameter at Entry.
	Distance float64
}
