package world

import (
	"strings"

	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/block/model"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/oomph-ac/blockray/world/blockmodel"
)

// BlockName returns the name of the block.
func BlockName(b world.Block) string {
	n, _ := b.EncodeBlock()
	return n
}

// IsAir returns true if b is nil or air.
func IsAir(b world.Block) bool {
	if b == nil {
		return true
	}
	_, ok := b.(block.Air)
	return ok
}

// CollisionModel returns the model describing the collision boxes of b. For
// most blocks this is b.Model(), but some blocks collide differently from
// how they are modelled by dragonfly.
func CollisionModel(b world.Block) world.BlockModel {
	switch BlockName(b) {
	case "minecraft:portal", "minecraft:end_portal",
		"minecraft:redstone_wire", "minecraft:lever",
		"minecraft:golden_rail", "minecraft:detector_rail", "minecraft:activator_rail", "minecraft:rail",
		"minecraft:redstone_torch", "minecraft:unlit_redstone_torch",
		"minecraft:vine", "minecraft:cave_vines", "minecraft:cave_vines_body_with_berries", "minecraft:cave_vines_head_with_berries",
		"minecraft:twisting_vines", "minecraft:weeping_vines",
		"minecraft:tallgrass", "minecraft:fern", "minecraft:large_fern", "minecraft:rose_bush", "minecraft:peony",
		"minecraft:red_mushroom", "minecraft:brown_mushroom":
		return blockmodel.NoCollision{}
	case "minecraft:web", "minecraft:bamboo_sapling", "minecraft:bamboo":
		return blockmodel.Fixed{cube.Box(0, 0, 0, 1, 1, 1)}
	case "minecraft:bed":
		return blockmodel.Fixed{cube.Box(0, 0, 0, 1, 9.0/16.0, 1)}
	case "minecraft:waterlily":
		return blockmodel.Fixed{cube.Box(0, 0, 0, 1, 1.0/64.0, 1)}
	case "minecraft:soul_sand":
		return blockmodel.Fixed{cube.Box(0, 0, 0, 1, 7.0/8.0, 1)}
	case "minecraft:repeater", "minecraft:unpowered_repeater", "minecraft:powered_repeater",
		"minecraft:comparator", "minecraft:unpowered_comparator", "minecraft:powered_comparator":
		return blockmodel.Fixed{cube.Box(0, 0, 0, 1, 1.0/8.0, 1)}
	case "minecraft:daylight_detector", "minecraft:daylight_detector_inverted":
		return blockmodel.Fixed{cube.Box(0, 0, 0, 1, 3.0/8.0, 1)}
	case "minecraft:flower_pot":
		return blockmodel.Fixed{cube.Box(5/16.0, 0, 5/16.0, 11/16.0, 3/8.0, 11/16.0)}
	case "minecraft:black_candle":
		return blockmodel.Fixed{cube.Box(0, 0, 0, 1, 1, 1)}
	case "minecraft:end_portal_frame":
		return blockmodel.Fixed{cube.Box(0, 0, 0, 1, 13.0/16.0, 1)}
	case "minecraft:snow_layer":
		_, props := b.EncodeBlock()
		height, ok := props["height"].(int32)
		if !ok {
			return blockmodel.NoCollision{}
		}
		return blockmodel.Fixed{cube.Box(0, 0, 0, 1, float64(height)/8.0, 1)}
	}

	if name := BlockName(b); name == "minecraft:candle" || strings.HasSuffix(name, "_candle") {
		_, props := b.EncodeBlock()
		if candles, ok := props["candles"].(int32); ok {
			return blockmodel.Candle{Count: candles + 1}
		}
	}

	m := b.Model()
	if w, ok := m.(model.Wall); ok {
		return blockmodel.Wall{
			NorthConnection: w.NorthConnection,
			EastConnection:  w.EastConnection,
			SouthConnection: w.SouthConnection,
			WestConnection:  w.WestConnection,
			Post:            w.Post,
		}
	}
	if _, ok := b.(block.IronBars); ok {
		return blockmodel.Pane{}
	}
	return m
}

// CollisionBoxes returns the cell-local collision boxes of the block b at pos.
// s is used by models whose boxes depend on neighbouring blocks. Air has no
// collision boxes.
func CollisionBoxes(b world.Block, pos cube.Pos, s world.BlockSource) []cube.BBox {
	if IsAir(b) {
		return nil
	}
	return CollisionModel(b).BBox(pos, s)
}
