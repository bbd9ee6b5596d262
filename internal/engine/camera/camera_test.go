package camera

import (
	gomath "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

func TestResizeUpdatesAspect(t *testing.T) {
	tests := []struct {
		w, h int
		want float32
	}{
		{800, 600, 800.0 / 600.0},
		{1920, 1080, 1920.0 / 1080.0},
		{600, 800, 0.75},
		{100, 100, 1},
	}

	c := New(DefaultConfig())
	f := float32(1 / gomath.Tan(float64(mgl32.DegToRad(60))/2))

	for _, tt := range tests {
		c.Resize(tt.w, tt.h)
		if abs(c.Aspect()-tt.want) > 1e-6 {
			t.Errorf("Resize(%d, %d): aspect %f, want %f", tt.w, tt.h, c.Aspect(), tt.want)
		}
		// Column-major: [0] is f/aspect, [5] is f.
		p := c.Projection()
		if abs(p[0]-f/tt.want) > 1e-4 {
			t.Errorf("Resize(%d, %d): p[0]=%f, want %f", tt.w, tt.h, p[0], f/tt.want)
		}
		if abs(p[5]-f) > 1e-4 {
			t.Errorf("Resize(%d, %d): p[5]=%f, want %f", tt.w, tt.h, p[5], f)
		}
	}
}

func TestResizeLeavesViewUnchanged(t *testing.T) {
	c := New(DefaultConfig())
	before := c.View()

	c.Resize(1024, 768)
	c.Resize(10, 3000)

	if c.View() != before {
		t.Errorf("view changed after resize:\n%v\n%v", before, c.View())
	}
}

func TestResizeZeroHeight(t *testing.T) {
	c := New(DefaultConfig())
	c.Resize(640, 0)

	if c.Aspect() != 640 {
		t.Errorf("aspect: got %f, want 640", c.Aspect())
	}
	for i, v := range c.Projection() {
		if gomath.IsNaN(float64(v)) || gomath.IsInf(float64(v), 0) {
			t.Fatalf("projection[%d] is not finite: %f", i, v)
		}
	}
}

func TestViewMapsTargetOntoAxis(t *testing.T) {
	c := New(DefaultConfig())

	// The origin sits straight ahead on -Z at distance |eye|.
	p := mgl32.TransformCoordinate(mgl32.Vec3{0, 0, 0}, c.View())
	dist := float32(gomath.Sqrt(75))
	if abs(p[0]) > 1e-4 || abs(p[1]) > 1e-4 || abs(p[2]+dist) > 1e-4 {
		t.Errorf("origin in view space: got %v, want (0, 0, %f)", p, -dist)
	}

	// The eye maps to the view-space origin.
	e := mgl32.TransformCoordinate(mgl32.Vec3{5, 5, 5}, c.View())
	if e.Len() > 1e-4 {
		t.Errorf("eye in view space: got %v, want origin", e)
	}
}

func TestMVP(t *testing.T) {
	c := New(DefaultConfig())
	c.Resize(800, 600)

	want := c.Projection().Mul4(c.View())
	if !c.MVP().ApproxEqual(want) {
		t.Errorf("MVP: got %v, want %v", c.MVP(), want)
	}

	// Origin lands in the middle of the screen.
	clip := mgl32.TransformCoordinate(mgl32.Vec3{0, 0, 0}, c.MVP())
	if abs(clip[0]) > 1e-4 || abs(clip[1]) > 1e-4 {
		t.Errorf("origin in NDC: got %v, want centre", clip)
	}
	if clip[2] <= -1 || clip[2] >= 1 {
		t.Errorf("origin depth %f outside clip range", clip[2])
	}
}
