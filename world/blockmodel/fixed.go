package blockmodel

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/world"
)

// Fixed is a model with the same collision boxes regardless of its
// surroundings. Its faces are never solid.
type Fixed []cube.BBox

// BBox ...
func (f Fixed) BBox(cube.Pos, world.BlockSource) []cube.BBox {
	return f
}

// FaceSolid ...
func (Fixed) FaceSolid(cube.Pos, cube.Face, world.BlockSource) bool {
	return false
}

// NoCollision is a model without any collision boxes, such as pressure plates
// or rails. Solid controls whether its faces count as solid for neighbours.
type NoCollision struct {
	Solid bool
}

// BBox ...
func (NoCollision) BBox(cube.Pos, world.BlockSource) []cube.BBox {
	return nil
}

// FaceSolid ...
func (n NoCollision) FaceSolid(cube.Pos, cube.Face, world.BlockSource) bool {
	return n.Solid
}
