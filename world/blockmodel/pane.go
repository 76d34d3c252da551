package blockmodel

import (
	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/world"
)

// Pane is the model of iron bars and glass panes. Its boxes stretch towards
// every neighbour it connects to, producing up to two boxes per cell.
type Pane struct{}

// BBox ...
func (p Pane) BBox(pos cube.Pos, s world.BlockSource) (bbs []cube.BBox) {
	const (
		insetDefault    = 7.0 / 16.0
		insetConnecting = 8.0 / 16.0
	)
	full := cube.Box(0, 0, 0, 1, 1, 1)

	west, east := p.connects(pos, cube.FaceWest, s), p.connects(pos, cube.FaceEast, s)
	if west || east {
		bb := full.Stretch(cube.Z, -insetDefault)
		if !west {
			bb = bb.ExtendTowards(cube.FaceWest, -insetConnecting)
		} else if !east {
			bb = bb.ExtendTowards(cube.FaceEast, -insetConnecting)
		}
		bbs = append(bbs, bb)
	}

	north, south := p.connects(pos, cube.FaceNorth, s), p.connects(pos, cube.FaceSouth, s)
	if north || south {
		bb := full.Stretch(cube.X, -insetDefault)
		if !north {
			bb = bb.ExtendTowards(cube.FaceNorth, -insetConnecting)
		} else if !south {
			bb = bb.ExtendTowards(cube.FaceSouth, -insetConnecting)
		}
		bbs = append(bbs, bb)
	}

	// Unconnected panes are a post in the middle of the cell.
	if len(bbs) == 0 {
		bbs = append(bbs, full.Stretch(cube.X, -insetDefault).Stretch(cube.Z, -insetDefault))
	}
	return
}

// FaceSolid ...
func (Pane) FaceSolid(cube.Pos, cube.Face, world.BlockSource) bool {
	return true
}

// connects checks if the pane at pos connects to its neighbour on face f.
func (Pane) connects(pos cube.Pos, f cube.Face, s world.BlockSource) bool {
	side := pos.Side(f)
	b := s.Block(side)
	switch b.(type) {
	case block.IronBars, block.Wall, block.GlassPane:
		return true
	}
	return b.Model().FaceSolid(side, f.Opposite(), s)
}
