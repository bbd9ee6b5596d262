// Package water provides the sine ripple animation applied to grid vertices.
package water

import (
	gomath "math"

	"github.com/Faultbox/ripplegrid/internal/engine/grid"
)

// DefaultStep is the animation time added on every tick.
const DefaultStep = 0.1

// Ripple advances a fixed amount of animation time per tick. Elapsed time
// depends only on the number of ticks, never on wall-clock time.
type Ripple struct {
	Time float32 // accumulated animation time
	Step float32 // time added per tick
}

// NewRipple creates a ripple starting at t=0.
func NewRipple(step float32) *Ripple {
	return &Ripple{Step: step}
}

// Tick advances time by one step and displaces every vertex for the new time.
func (r *Ripple) Tick(verts []grid.Vertex) {
	r.Time += r.Step
	Displace(verts, r.Time)
}

// Height returns the surface height at (x, z) for time t.
func Height(x, z, t float32) float32 {
	return float32(gomath.Sin(float64(x+t))) + float32(gomath.Sin(float64(z+t*2)))
}

// Displace sets y = sin(x + t) + sin(z + 2t) for each vertex. X and Z are untouched.
func Displace(verts []grid.Vertex, t float32) {
	for i := range verts {
		verts[i][1] = Height(verts[i][0], verts[i][2], t)
	}
}
