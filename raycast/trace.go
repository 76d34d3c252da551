package raycast

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/block/cube/trace"
	"github.com/go-gl/mathgl/mgl64"
)

// minTraceLength is the shortest segment handed to trace.TraverseBlocks, which
// panics on segments of (near) zero length.
const minTraceLength = 1e-4

// unitCell is the bounding box of the cell at cube.Pos{0, 0, 0}.
var unitCell = cube.Box(0, 0, 0, 1, 1, 1)

// TraceStepper is a Stepper backed by dragonfly's trace.TraverseBlocks. The
// entry point and face of each cell are derived by intercepting the segment
// with the bounds of the cell.
type TraceStepper struct{}

// Step walks the cells between origin and the point maxDist along dir.
// maxDist must be finite; Traverse and Caster reject rays that are not.
func (TraceStepper) Step(origin, dir mgl64.Vec3, maxDist float64, f func(v Voxel) bool) {
	start := cube.PosFromVec3(origin)
	if maxDist < minTraceLength {
		f(Voxel{Pos: start, Entry: origin})
		return
	}

	end := origin.Add(dir.Mul(maxDist))
	last := 0.0
	trace.TraverseBlocks(origin, end, func(pos cube.Pos) bool {
		if pos == start {
			return f(Voxel{Pos: pos, Entry: origin})
		}

		v := Voxel{Pos: pos, Entry: origin.Add(dir.Mul(last)), Distance: last}
		if res, ok := trace.BBoxIntercept(unitCell.Translate(pos.Vec3()), origin, end); ok {
			if d := res.Position().Sub(origin).Len(); d >= last {
				v.Entry, v.Distance, last = res.Position(), d, d
			}
			v.Normal = faceNormal(res.Face())
		}
		return f(v)
	})
}
