// Package grid builds flat, unindexed triangle meshes tiling a rectangle.
package grid

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is a mesh position. Only Y changes after the mesh is built.
type Vertex = mgl32.Vec3

// VerticesPerCell is the number of vertices emitted for each grid cell
// (two triangles, not indexed).
const VerticesPerCell = 6

var (
	// ErrInvalidSteps is returned when a subdivision count is zero or negative.
	ErrInvalidSteps = errors.New("grid steps must be positive")
	// ErrInvalidExtent is returned when the plane width or depth is not a positive finite number.
	ErrInvalidExtent = errors.New("grid extent must be positive and finite")
)

// Spec describes the plane to tile.
type Spec struct {
	Width  float32 // extent along X, centred on the origin
	Depth  float32 // extent along Z, centred on the origin
	StepsW int     // cells along X
	StepsD int     // cells along Z
}

// Validate checks the plane parameters.
func (s Spec) Validate() error {
	if s.StepsW <= 0 || s.StepsD <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSteps, s.StepsW, s.StepsD)
	}
	if !positiveFinite(s.Width) || !positiveFinite(s.Depth) {
		return fmt.Errorf("%w: got %gx%g", ErrInvalidExtent, s.Width, s.Depth)
	}
	return nil
}

// VertexCount returns the number of vertices Build produces for s.
func (s Spec) VertexCount() int {
	return VerticesPerCell * s.StepsW * s.StepsD
}

// Build returns the vertices of a y=0 plane centred on the origin.
//
// Each cell is emitted as two triangles:
//
//	3
//	| \
//	|  \
//	1---2
//
// Rows run along Z (outer loop), columns along X (inner loop).
func Build(s Spec) ([]Vertex, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	w2 := s.Width / 2
	d2 := s.Depth / 2
	dx := s.Width / float32(s.StepsW)
	dz := s.Depth / float32(s.StepsD)

	verts := make([]Vertex, 0, s.VertexCount())
	for j := 0; j < s.StepsD; j++ {
		// Cell origins come from integer indices so rounding never adds a row.
		z := -d2 + float32(j)*dz
		for i := 0; i < s.StepsW; i++ {
			x := -w2 + float32(i)*dx

			// first triangle
			verts = append(verts,
				Vertex{x, 0, z + dz},
				Vertex{x + dx, 0, z + dz},
				Vertex{x, 0, z},
			)
			// second triangle
			verts = append(verts,
				Vertex{x, 0, z},
				Vertex{x + dx, 0, z},
				Vertex{x + dx, 0, z + dz},
			)
		}
	}

	return verts, nil
}

func positiveFinite(f float32) bool {
	v := float64(f)
	return v > 0 && !gomath.IsInf(v, 0) && !gomath.IsNaN(v)
}
