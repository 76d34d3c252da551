package raycast

import (
	"testing"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
)

func TestInterceptMisses(t *testing.T) {
	bb := cube.Box(0, 0, 0, 1, 1, 1)
	tests := []struct {
		name   string
		origin mgl64.Vec3
		dir    mgl64.Vec3
	}{
		{name: "parallel outside slab", origin: mgl64.Vec3{-1, 1.5, 0.5}, dir: mgl64.Vec3{1, 0, 0}},
		{name: "box behind origin", origin: mgl64.Vec3{2, 0.5, 0.5}, dir: mgl64.Vec3{1, 0, 0}},
		{name: "passes beside", origin: mgl64.Vec3{-1, 0.5, 2}, dir: mgl64.Vec3{1, 0, 0}},
		{name: "diagonal past corner", origin: mgl64.Vec3{-1, 1.5, 0.5}, dir: mgl64.Vec3{1, 1, 0}.Normalize()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if in, ok := Intercept(bb, tt.origin, tt.dir, 10); ok {
				t.Fatalf("expected miss, got %+v", in)
			}
		})
	}
}

func TestInterceptParallelOnBoundary(t *testing.T) {
	bb := cube.Box(0, 0, 0, 1, 1, 1)
	in, ok := Intercept(bb, mgl64.Vec3{-1, 1, 0.5}, mgl64.Vec3{1, 0, 0}, 10)
	if !ok {
		t.Fatal("expected a ray grazing the top face to hit")
	}
	if in.Distance != 1 || in.Normal != (mgl64.Vec3{-1, 0, 0}) {
		t.Fatalf("unexpected interception %+v", in)
	}
}

func TestInterceptMaxDistance(t *testing.T) {
	bb := cube.Box(2, 0, 0, 3, 1, 1)
	origin, dir := mgl64.Vec3{0, 0.5, 0.5}, mgl64.Vec3{1, 0, 0}

	if _, ok := Intercept(bb, origin, dir, 2); !ok {
		t.Fatal("expected a hit at exactly the max distance")
	}
	if _, ok := Intercept(bb, origin, dir, 1.999); ok {
		t.Fatal("expected a miss just short of the box")
	}
}

func TestInterceptDiagonal(t *testing.T) {
	bb := cube.Box(1, 1, 1, 2, 2, 2)
	dir := mgl64.Vec3{1, 0.5, 0.25}.Normalize()
	in, ok := Intercept(bb, mgl64.Vec3{0, 0.8, 0.9}, dir, 10)
	if !ok {
		t.Fatal("expected a hit")
	}
	// x reaches the box last, so the west face is entered.
	if in.Normal != (mgl64.Vec3{-1, 0, 0}) {
		t.Fatalf("unexpected normal %v", in.Normal)
	}
	if in.Point.X() != 1 {
		t.Fatalf("hit point %v does not lie on the west face", in.Point)
	}
	if !mgl64.FloatEqualThreshold(in.Point.Y(), 1.3, 1e-12) || !mgl64.FloatEqualThreshold(in.Point.Z(), 1.15, 1e-12) {
		t.Fatalf("unexpected hit point %v", in.Point)
	}
}

func TestInterceptInside(t *testing.T) {
	bb := cube.Box(0, 0, 0, 1, 1, 1)
	origin := mgl64.Vec3{0.2, 0.3, 0.4}
	in, ok := Intercept(bb, origin, mgl64.Vec3{0, 0, -1}, 0)
	if !ok || !in.Inside {
		t.Fatalf("expected an inside hit, got %+v (ok=%v)", in, ok)
	}
	if in.Point != origin || in.Normal != (mgl64.Vec3{}) || in.Distance != 0 {
		t.Fatalf("unexpected inside interception %+v", in)
	}
}

func TestInterceptOnFaceMovingIn(t *testing.T) {
	bb := cube.Box(0, 0, 0, 1, 1, 1)
	in, ok := Intercept(bb, mgl64.Vec3{0.5, 1, 0.5}, mgl64.Vec3{0, -1, 0}, 5)
	if !ok || in.Inside {
		t.Fatalf("expected a surface hit, got %+v (ok=%v)", in, ok)
	}
	if in.Distance != 0 || in.Normal != (mgl64.Vec3{0, 1, 0}) {
		t.Fatalf("unexpected interception %+v", in)
	}
}
