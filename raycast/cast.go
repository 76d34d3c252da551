package raycast

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/blockray/assert"
)

// orderTolerance is the amount a Voxel.Distance may fall behind the previous
// one before StrictOrder treats it as out of order.
const orderTolerance = 1e-9

// Selection decides which hit is reported for a cell whose collision boxes
// are intersected more than once.
type Selection uint8

const (
	// SelectLast reports the hit on the box that comes last in the block's
	// collision box list, regardless of distance.
	SelectLast Selection = iota
	// SelectNearest reports the hit closest to the origin of the ray. If two
	// boxes are hit at the same distance, the first of them in the list wins.
	SelectNearest
)

// Caster casts rays through a World. The zero value is ready to use and
// walks the grid with DDA.
type Caster struct {
	// Stepper enumerates the cells along the ray. DDA is used if nil.
	Stepper Stepper
	// Selection picks the hit reported for a cell with several intersected boxes.
	Selection Selection
	// HitsOnly restricts the visitor to cells of KindHit. Other cells are
	// skipped and the cast continues past them.
	HitsOnly bool
	// StrictOrder makes the cast panic if the Stepper yields a cell closer to
	// the origin than the one before it.
	StrictOrder bool

	// Debugf receives a trace line for every refined cell.
	Debugf func(format string, args ...any)
}

// Cast casts a ray through w with the zero Caster. See Caster.Cast.
func Cast(w World, origin, dir mgl64.Vec3, maxDist float64, visit Visitor[World]) error {
	return Caster{}.Cast(w, origin, dir, maxDist, visit)
}

// Cast casts the ray starting at origin in the direction dir through w, up to
// maxDist. dir does not need to be normalized. visit is called with the
// refined result of every cell along the ray, nearest first, until it returns
// false or the ray runs out. Blocks are looked up with World.Block.
//
// An error is returned, and no cell is visited, if dir has zero length or is
// not finite, or if maxDist is negative or not finite.
func (c Caster) Cast(w World, origin, dir mgl64.Vec3, maxDist float64, visit Visitor[World]) error {
	return cast(c, w, World.Block, origin, dir, maxDist, visit)
}

// CastMutable casts a ray through w like c.Cast, but passes w to visit with
// its own type so that the visitor may change the world. Blocks are looked up
// with MutableWorld.LiveBlock, so a change made by the visitor is seen by the
// lookups of every cell visited after it.
func CastMutable[W MutableWorld](c Caster, w W, origin, dir mgl64.Vec3, maxDist float64, visit Visitor[W]) error {
	return cast(c, w, func(w W, pos cube.Pos) (Block, bool) { return w.LiveBlock(pos) }, origin, dir, maxDist, visit)
}

// cast runs the traversal shared by Cast and CastMutable. lookup is the only
// part that differs between them.
func cast[W any](c Caster, w W, lookup func(W, cube.Pos) (Block, bool), origin, dir mgl64.Vec3, maxDist float64, visit Visitor[W]) error {
	unit, err := normalizeRay(dir, maxDist)
	if err != nil {
		return err
	}

	var (
		last    float64
		visited bool
	)
	step(c.Stepper, origin, unit, maxDist, func(v Voxel) bool {
		if c.StrictOrder {
			assert.IsTrue(!visited || v.Distance+orderTolerance >= last, "raycast: stepper yielded %v at %v after %v", v.Pos, v.Distance, last)
			last, visited = v.Distance, true
		}

		b, ok := lookup(w, v.Pos)
		h := c.refine(v.Pos, b, ok, origin, unit, maxDist)
		if c.Debugf != nil {
			c.Debugf("raycast: cell=%v kind=%v point=%v normal=%v dist=%v", h.Pos, h.Kind, h.Point, h.Normal, h.Distance)
		}
		if c.HitsOnly && h.Kind != KindHit {
			return true
		}
		return visit(w, h)
	})
	return nil
}

// refine intersects the ray with the collision boxes of the block b found at
// pos. ok is false if the cell holds no block.
func (c Caster) refine(pos cube.Pos, b Block, ok bool, origin, dir mgl64.Vec3, maxDist float64) Hit {
	h := Hit{Kind: KindNoBlock, Pos: pos}
	if !ok || b == nil {
		return h
	}
	h.Kind = KindMiss

	offset := pos.Vec3()
	for _, local := range b.CollisionBoxes() {
		bb := local.Translate(offset)
		in, ok := Intercept(bb, origin, dir, maxDist)
		if !ok {
			continue
		}
		if c.Selection == SelectNearest && h.Kind == KindHit && in.Distance >= h.Distance {
			continue
		}
		h = Hit{
			Kind:     KindHit,
			Pos:      pos,
			Point:    in.Point,
			Normal:   in.Normal,
			Distance: in.Distance,
			Box:      bb,
			Inside:   in.Inside,
		}
	}
	return h
}

// Traverse walks the cells along the ray with the Stepper of c without
// consulting any geometry. See Traverse.
func (c Caster) Traverse(origin, dir mgl64.Vec3, maxDist float64, f func(v Voxel) bool) error {
	return Traverse(c.Stepper, origin, dir, maxDist, f)
}
