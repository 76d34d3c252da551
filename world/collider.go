package world

import (
	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/blockray/raycast"
)

// Occupant is a block found in a cell by a Collider. It is the raycast.Block
// handed to visitors, so that they can tell which block they hit.
type Occupant struct {
	// Block is the dragonfly block occupying the cell. If the cell is empty
	// but the block below it reaches into it, Block is that block.
	Block world.Block
	// Boxes are the cell-local collision boxes of the cell. They include the
	// parts of the boxes of the block below that reach above it, such as
	// those of walls and fences.
	Boxes []cube.BBox
	// Below is true if Block is the block below the cell rather than the one
	// in it.
	Below bool
}

// CollisionBoxes returns o.Boxes.
func (o Occupant) CollisionBoxes() []cube.BBox {
	return o.Boxes
}

// occupant looks up the block at pos in s, along with any boxes of the block
// below pos that reach into its cell. An empty cell with nothing reaching
// into it has no occupant.
func occupant(s world.BlockSource, pos cube.Pos) (raycast.Block, bool) {
	below := pos.Side(cube.FaceDown)
	under := s.Block(below)
	overhang := overhanging(CollisionBoxes(under, below, s))

	b := s.Block(pos)
	if IsAir(b) {
		if len(overhang) == 0 {
			return nil, false
		}
		return Occupant{Block: under, Boxes: overhang, Below: true}, true
	}
	// The boxes of the cell's own block come last so that they are preferred
	// by last-box-wins selection.
	return Occupant{Block: b, Boxes: append(overhang, CollisionBoxes(b, pos, s)...)}, true
}

// overhanging returns the boxes reaching above the top of their cell, moved
// down a block so that they are local to the cell above.
func overhanging(bbs []cube.BBox) []cube.BBox {
	var out []cube.BBox
	for _, bb := range bbs {
		if bb.Max().Y() > 1 {
			out = append(out, bb.Translate(mgl64.Vec3{0, -1, 0}))
		}
	}
	return out
}

// Collider is a read-only raycast.World backed by a dragonfly block source.
// Lookups are memoized, so changes made to the source after a cell was first
// looked up are not seen until Reset is called.
type Collider struct {
	source world.BlockSource
	cache  map[cube.Pos]raycast.Block
}

// NewCollider returns a Collider reading blocks from s.
func NewCollider(s world.BlockSource) *Collider {
	return &Collider{source: s, cache: make(map[cube.Pos]raycast.Block)}
}

// Block returns the occupant of the cell at pos.
func (c *Collider) Block(pos cube.Pos) (raycast.Block, bool) {
	if b, ok := c.cache[pos]; ok {
		return b, b != nil
	}
	b, ok := occupant(c.source, pos)
	c.cache[pos] = b
	return b, ok
}

// Reset clears the lookups memoized by the Collider.
func (c *Collider) Reset() {
	clear(c.cache)
}

// MutableSource is a block source that can be written to, such as *Grid or a
// dragonfly *world.Tx.
type MutableSource interface {
	world.BlockSource
	SetBlock(pos cube.Pos, b world.Block, opts *world.SetOpts)
}

// MutableCollider is a raycast.MutableWorld backed by a writable block
// source. It never caches: every lookup reads the source.
type MutableCollider struct {
	source MutableSource
}

// NewMutableCollider returns a MutableCollider reading from and writing to s.
func NewMutableCollider(s MutableSource) MutableCollider {
	return MutableCollider{source: s}
}

// Source returns the block source of the collider.
func (c MutableCollider) Source() MutableSource {
	return c.source
}

// Block returns the occupant of the cell at pos.
func (c MutableCollider) Block(pos cube.Pos) (raycast.Block, bool) {
	return occupant(c.source, pos)
}

// LiveBlock returns the occupant of the cell at pos as currently found in the source.
func (c MutableCollider) LiveBlock(pos cube.Pos) (raycast.Block, bool) {
	return occupant(c.source, pos)
}

// SetBlock sets the block at pos.
func (c MutableCollider) SetBlock(pos cube.Pos, b world.Block) {
	c.source.SetBlock(pos, b, nil)
}

// RemoveBlock replaces the block at pos with air.
func (c MutableCollider) RemoveBlock(pos cube.Pos) {
	c.source.SetBlock(pos, block.Air{}, nil)
}
