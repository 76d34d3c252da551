package raycast

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/elliotchance/orderedmap/v2"
)

// Trail records the results of a cast in the order the cells were visited.
// A Trail is not safe for concurrent use.
type Trail struct {
	cells *orderedmap.OrderedMap[cube.Pos, Hit]
	hits  int
}

// NewTrail returns an empty Trail.
func NewTrail() *Trail {
	return &Trail{cells: orderedmap.NewOrderedMap[cube.Pos, Hit]()}
}

// Record returns a Visitor that adds every visited cell to t. It stops the
// cast once limit cells of KindHit have been recorded, or never if limit is 0.
func Record[W any](t *Trail, limit int) Visitor[W] {
	return func(_ W, h Hit) bool {
		t.Add(h)
		return limit <= 0 || t.hits < limit
	}
}

// Add adds h to the trail. A cell that was already recorded keeps its place
// in the order but has its result replaced.
func (t *Trail) Add(h Hit) {
	if old, ok := t.cells.Get(h.Pos); ok && old.Kind == KindHit {
		t.hits--
	}
	if h.Kind == KindHit {
		t.hits++
	}
	t.cells.Set(h.Pos, h)
}

// Len returns the amount of cells recorded.
func (t *Trail) Len() int {
	return t.cells.Len()
}

// HitCount returns the amount of recorded cells of KindHit.
func (t *Trail) HitCount() int {
	return t.hits
}

// Get returns the result recorded for pos.
func (t *Trail) Get(pos cube.Pos) (Hit, bool) {
	return t.cells.Get(pos)
}

// Cells returns every recorded result in visit order.
func (t *Trail) Cells() []Hit {
	cells := make([]Hit, 0, t.cells.Len())
	for el := t.cells.Front(); el != nil; el = el.Next() {
		cells = append(cells, el.Value)
	}
	return cells
}

// Hits returns the recorded results of KindHit in visit order.
func (t *Trail) Hits() []Hit {
	hits := make([]Hit, 0, t.hits)
	for el := t.cells.Front(); el != nil; el = el.Next() {
		if el.Value.Kind == KindHit {
			hits = append(hits, el.Value)
		}
	}
	return hits
}

// First returns the first recorded result of KindHit.
func (t *Trail) First() (Hit, bool) {
	for el := t.cells.Front(); el != nil; el = el.Next() {
		if el.Value.Kind == KindHit {
			return el.Value, true
		}
	}
	return Hit{}, false
}
