package blockmodel

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/world"
)

// Candle is the model of one to four candles placed in the same cell. Counts
// outside of that range are treated as a single candle.
type Candle struct {
	Count int32
}

// BBox ...
func (c Candle) BBox(cube.Pos, world.BlockSource) []cube.BBox {
	const (
		inset1       = 7.0 / 16.0
		inset2       = 6.0 / 16.0
		inset3       = 5.0 / 16.0
		downardInset = 10.0 / 16.0
	)

	bb := cube.Box(0, 0, 0, 1, 1, 1)
	switch c.Count {
	case 2:
		bb = bb.Stretch(cube.X, -inset3).
			ExtendTowards(cube.FaceUp, -inset1).
			ExtendTowards(cube.FaceDown, -inset2)
	case 3:
		bb = bb.ExtendTowards(cube.FaceWest, -inset3).
			ExtendTowards(cube.FaceEast, -inset2).
			ExtendTowards(cube.FaceNorth, -inset2).
			ExtendTowards(cube.FaceSouth, -inset3)
	case 4:
		bb = bb.Stretch(cube.X, -inset3).
			ExtendTowards(cube.FaceNorth, -inset3).
			ExtendTowards(cube.FaceSouth, -inset2)
	default:
		bb = bb.Stretch(cube.X, -inset1).
			Stretch(cube.Z, -inset1)
	}
	return []cube.BBox{bb.ExtendTowards(cube.FaceUp, -downardInset)}
}

// FaceSolid ...
func (Candle) FaceSolid(cube.Pos, cube.Face, world.BlockSource) bool {
	return true
}
