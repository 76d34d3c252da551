package world

import (
	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/oomph-ac/blockray/raycast"
)

// FromDragonflyPos converts a dragonfly block position to a float32-cube one.
func FromDragonflyPos(pos df_cube.Pos) cube.Pos {
	return cube.Pos{pos.X(), pos.Y(), pos.Z()}
}

// ToDragonflyPos converts a float32-cube block position to a dragonfly one.
func ToDragonflyPos(pos cube.Pos) df_cube.Pos {
	return df_cube.Pos{pos.X(), pos.Y(), pos.Z()}
}

// FromDragonflyBox converts a dragonfly bounding box to a float32-cube one.
func FromDragonflyBox(b df_cube.BBox) cube.BBox {
	return cube.Box(
		float32(b.Min().X()), float32(b.Min().Y()), float32(b.Min().Z()),
		float32(b.Max().X()), float32(b.Max().Y()), float32(b.Max().Z()),
	)
}

// ToDragonflyBox converts a float32-cube bounding box to a dragonfly one.
func ToDragonflyBox(b cube.BBox) df_cube.BBox {
	return df_cube.Box(
		float64(b.Min().X()), float64(b.Min().Y()), float64(b.Min().Z()),
		float64(b.Max().X()), float64(b.Max().Y()), float64(b.Max().Z()),
	)
}

// Boxes32 returns a raycast.Block made up of cell-local float32-cube boxes, as
// used by movement simulation code. The boxes are widened to float64.
func Boxes32(bbs []cube.BBox) raycast.Boxes {
	out := make(raycast.Boxes, len(bbs))
	for i, bb := range bbs {
		out[i] = ToDragonflyBox(bb)
	}
	return out
}
