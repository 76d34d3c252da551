package raycast

import "github.com/df-mc/dragonfly/server/block/cube"

// full is a block filling its entire cell.
var full = Boxes{cube.Box(0, 0, 0, 1, 1, 1)}

type mockWorld struct {
	blocks  map[cube.Pos]Block
	lookups int
}

func newMockWorld(blocks map[cube.Pos]Block) *mockWorld {
	if blocks == nil {
		blocks = make(map[cube.Pos]Block)
	}
	return &mockWorld{blocks: blocks}
}

func (w *mockWorld) Block(pos cube.Pos) (Block, bool) {
	w.lookups++
	b, ok := w.blocks[pos]
	return b, ok
}

func (w *mockWorld) LiveBlock(pos cube.Pos) (Block, bool) {
	return w.Block(pos)
}

func (w *mockWorld) remove(pos cube.Pos) {
	delete(w.blocks, pos)
}
