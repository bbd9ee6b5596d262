package grid

import (
	"errors"
	gomath "math"
	"testing"
)

const eps = 1e-3

func TestBuildVertexCount(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
	}{
		{"single cell", Spec{Width: 1, Depth: 1, StepsW: 1, StepsD: 1}},
		{"rectangular", Spec{Width: 10, Depth: 4, StepsW: 7, StepsD: 3}},
		{"default demo", Spec{Width: 60, Depth: 60, StepsW: 240, StepsD: 240}},
		{"awkward step", Spec{Width: 1, Depth: 1, StepsW: 3, StepsD: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verts, err := Build(tt.spec)
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			want := 6 * tt.spec.StepsW * tt.spec.StepsD
			if len(verts) != want {
				t.Errorf("got %d vertices, want %d", len(verts), want)
			}
			if tt.spec.VertexCount() != want {
				t.Errorf("VertexCount: got %d, want %d", tt.spec.VertexCount(), want)
			}
		})
	}
}

func TestBuildBounds(t *testing.T) {
	s := Spec{Width: 60, Depth: 30, StepsW: 24, StepsD: 12}
	verts, err := Build(s)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	w2, d2 := s.Width/2, s.Depth/2
	for i, v := range verts {
		if v[0] < -w2-eps || v[0] > w2+eps {
			t.Fatalf("vertex %d: x=%f outside [%f, %f]", i, v[0], -w2, w2)
		}
		if v[2] < -d2-eps || v[2] > d2+eps {
			t.Fatalf("vertex %d: z=%f outside [%f, %f]", i, v[2], -d2, d2)
		}
		if v[1] != 0 {
			t.Fatalf("vertex %d: y=%f, want 0", i, v[1])
		}
	}

	// The first vertex of a cell carries the cell's x origin, which must
	// stay in [-W/2, W/2); its z is the far edge, in (-D/2, D/2].
	for c := 0; c < len(verts); c += VerticesPerCell {
		x, z := verts[c][0], verts[c][2]
		if x < -w2-eps || x >= w2-eps {
			t.Fatalf("cell %d: x origin %f outside [%f, %f)", c/6, x, -w2, w2)
		}
		if z <= -d2+eps || z > d2+eps {
			t.Fatalf("cell %d: far z %f outside (%f, %f]", c/6, z, -d2, d2)
		}
	}
}

func TestBuildCellLayout(t *testing.T) {
	verts, err := Build(Spec{Width: 2, Depth: 2, StepsW: 2, StepsD: 2})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	// First cell sits at the (-1, -1) corner with unit steps.
	want := []Vertex{
		{-1, 0, 0}, {0, 0, 0}, {-1, 0, -1},
		{-1, 0, -1}, {0, 0, -1}, {0, 0, 0},
	}
	for i, w := range want {
		if verts[i] != w {
			t.Errorf("vertex %d: got %v, want %v", i, verts[i], w)
		}
	}

	// Second cell moves along X first.
	if verts[6][0] != 0 || verts[6][2] != 0 {
		t.Errorf("second cell origin: got %v, want x=0 z=0", verts[6])
	}
}

func TestBuildRejectsBadSteps(t *testing.T) {
	tests := []Spec{
		{Width: 1, Depth: 1, StepsW: 0, StepsD: 1},
		{Width: 1, Depth: 1, StepsW: 1, StepsD: 0},
		{Width: 1, Depth: 1, StepsW: -3, StepsD: 2},
		{Width: 1, Depth: 1, StepsW: 2, StepsD: -1},
	}

	for _, s := range tests {
		verts, err := Build(s)
		if !errors.Is(err, ErrInvalidSteps) {
			t.Errorf("Build(%+v): got err %v, want ErrInvalidSteps", s, err)
		}
		if verts != nil {
			t.Errorf("Build(%+v): expected nil vertices on error", s)
		}
	}
}

func TestBuildRejectsBadExtent(t *testing.T) {
	tests := []Spec{
		{Width: 0, Depth: 1, StepsW: 1, StepsD: 1},
		{Width: 1, Depth: -2, StepsW: 1, StepsD: 1},
		{Width: float32(gomath.Inf(1)), Depth: 1, StepsW: 1, StepsD: 1},
		{Width: 1, Depth: float32(gomath.NaN()), StepsW: 1, StepsD: 1},
	}

	for _, s := range tests {
		if _, err := Build(s); !errors.Is(err, ErrInvalidExtent) {
			t.Errorf("Build(%+v): got err %v, want ErrInvalidExtent", s, err)
		}
	}
}
