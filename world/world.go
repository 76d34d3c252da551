package world

import (
	"log/slog"

	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
	"github.com/sasha-s/go-deadlock"
)

// Grid is a sparse, in-memory block store. Blocks are grouped by the chunk
// column they are in. Cells that were never set, or were set to air, hold no
// block. A Grid is safe for concurrent use, but a ray cast running on it is
// not serialized against writers: callers sharing a Grid across goroutines
// must order their casts and writes themselves.
type Grid struct {
	r      cube.Range
	chunks map[protocol.ChunkPos]map[cube.Pos]world.Block
	count  int

	logger *slog.Logger

	mu deadlock.RWMutex
}

// NewGrid returns an empty Grid holding blocks within the vertical range r.
// logger may be nil.
func NewGrid(r cube.Range, logger *slog.Logger) *Grid {
	return &Grid{
		r:      r,
		chunks: make(map[protocol.ChunkPos]map[cube.Pos]world.Block),
		logger: logger,
	}
}

// Range returns the vertical range of the grid.
func (g *Grid) Range() cube.Range {
	return g.r
}

// Block returns the block at the position passed, or air if there is none.
func (g *Grid) Block(pos cube.Pos) world.Block {
	if pos.OutOfBounds(g.r) {
		return block.Air{}
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if b, ok := g.chunks[chunkPosOf(pos)][pos]; ok {
		return b
	}
	return block.Air{}
}

// SetBlock sets the block at the position passed. Setting air removes the
// block. Positions outside the range of the grid are ignored.
func (g *Grid) SetBlock(pos cube.Pos, b world.Block, _ *world.SetOpts) {
	if pos.OutOfBounds(g.r) {
		return
	}
	if IsAir(b) {
		g.RemoveBlock(pos)
		return
	}
	chunkPos := chunkPosOf(pos)

	g.mu.Lock()
	defer g.mu.Unlock()

	c, ok := g.chunks[chunkPos]
	if !ok {
		c = make(map[cube.Pos]world.Block)
		g.chunks[chunkPos] = c
	}
	if _, exists := c[pos]; !exists {
		g.count++
	}
	c[pos] = b
}

// RemoveBlock removes the block at the position passed, if any. A chunk left
// without blocks is dropped.
func (g *Grid) RemoveBlock(pos cube.Pos) {
	chunkPos := chunkPosOf(pos)

	g.mu.Lock()
	defer g.mu.Unlock()

	c, ok := g.chunks[chunkPos]
	if !ok {
		return
	}
	if _, exists := c[pos]; !exists {
		return
	}
	delete(c, pos)
	g.count--
	if len(c) == 0 {
		delete(g.chunks, chunkPos)
	}
}

// Len returns the amount of blocks in the grid.
func (g *Grid) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.count
}

// Chunks returns the amount of chunk columns holding at least one block.
func (g *Grid) Chunks() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.chunks)
}

// CleanChunks removes every chunk further than radius chunks away from pos,
// and returns how many were removed.
func (g *Grid) CleanChunks(radius int32, pos protocol.ChunkPos) (removed int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for chunkPos, c := range g.chunks {
		if chunkInRange(radius, chunkPos, pos) {
			continue
		}
		g.count -= len(c)
		delete(g.chunks, chunkPos)
		removed++
		if g.logger != nil {
			g.logger.Debug("removed chunk out of range", "chunkPos", chunkPos, "radius", radius, "pos", pos)
		}
	}
	return removed
}

// PurgeChunks removes all blocks from the grid.
func (g *Grid) PurgeChunks() {
	g.mu.Lock()
	defer g.mu.Unlock()

	clear(g.chunks)
	g.count = 0
}

// chunkPosOf returns the position of the chunk column holding pos.
func chunkPosOf(pos cube.Pos) protocol.ChunkPos {
	return protocol.ChunkPos{int32(pos[0] >> 4), int32(pos[2] >> 4)}
}

// chunkInRange returns true if the chunk position is within the given radius of the chunk position.
func chunkInRange(radius int32, chunkPos, pos protocol.ChunkPos) bool {
	diffX, diffZ := int64(pos[0]-chunkPos[0]), int64(pos[1]-chunkPos[1])
	return diffX*diffX+diffZ*diffZ <= int64(radius)*int64(radius)
}
