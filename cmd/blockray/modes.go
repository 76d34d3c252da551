package main

import (
	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/block/cube"
	dfworld "github.com/df-mc/dragonfly/server/world"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/blockray/raycast"
	"github.com/oomph-ac/blockray/world"
)

// ray is a single ray query.
type ray struct {
	origin, dir mgl64.Vec3
	maxDist     float64
}

// flatWorld returns a grid holding a square plane of dirt at height y,
// reaching radius blocks from the origin on X and Z.
func flatWorld(radius, y int) *world.Grid {
	g := world.NewGrid(dfworld.Overworld.Range(), nil)
	for x := -radius; x <= radius; x++ {
		for z := -radius; z <= radius; z++ {
			g.SetBlock(cube.Pos{x, y, z}, block.Dirt{}, nil)
		}
	}
	return g
}

// trace casts r through g and records every cell visited.
func trace(c raycast.Caster, g *world.Grid, r ray) (*raycast.Trail, error) {
	trail := raycast.NewTrail()
	if err := c.Cast(world.NewCollider(g), r.origin, r.dir, r.maxDist, raycast.Record[raycast.World](trail, 0)); err != nil {
		return nil, err
	}
	return trail, nil
}

// fill walks the cells along r without looking at block geometry, placing
// glass in every empty cell until the ray reaches a block or falls to
// planeY. It returns the positions filled.
func fill(c raycast.Caster, g *world.Grid, r ray, planeY int) (filled []cube.Pos, err error) {
	err = c.Traverse(r.origin, r.dir, r.maxDist, func(v raycast.Voxel) bool {
		if v.Pos.Y() <= planeY || !world.IsAir(g.Block(v.Pos)) {
			return false
		}
		g.SetBlock(v.Pos, block.Glass{}, nil)
		filled = append(filled, v.Pos)
		return true
	})
	return filled, err
}

// dig removes the first block hit by r and casts r again to find the block
// behind it. dug is false if r hit nothing.
func dig(c raycast.Caster, g *world.Grid, r ray) (removed, next raycast.Hit, dug, found bool, err error) {
	c.HitsOnly = true
	w := world.NewMutableCollider(g)

	err = raycast.CastMutable(c, w, r.origin, r.dir, r.maxDist, func(w world.MutableCollider, h raycast.Hit) bool {
		w.RemoveBlock(h.Pos)
		removed, dug = h, true
		return false
	})
	if err != nil || !dug {
		return
	}
	err = raycast.CastMutable(c, w, r.origin, r.dir, r.maxDist, func(_ world.MutableCollider, h raycast.Hit) bool {
		next, found = h, true
		return false
	})
	return
}
