// Package camera provides the fixed look-at camera used by the grid view.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Config holds camera placement and lens settings.
type Config struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3
	FovDeg float32 // vertical field of view in degrees
	Near   float32
	Far    float32
}

// DefaultConfig looks at the origin from (5, 5, 5) with a 60 degree lens.
func DefaultConfig() Config {
	return Config{
		Eye:    mgl32.Vec3{5, 5, 5},
		Target: mgl32.Vec3{0, 0, 0},
		Up:     mgl32.Vec3{0, 1, 0},
		FovDeg: 60,
		Near:   0.5,
		Far:    20,
	}
}

// Camera has a view matrix fixed at construction and a projection
// that follows the viewport size.
type Camera struct {
	config     Config
	view       mgl32.Mat4
	projection mgl32.Mat4
	aspect     float32
}

// New creates a camera. The view is computed once here and never changes.
// Projection starts as a square viewport until the first Resize.
func New(cfg Config) *Camera {
	c := &Camera{
		config: cfg,
		view:   mgl32.LookAtV(cfg.Eye, cfg.Target, cfg.Up),
	}
	c.Resize(1, 1)
	return c
}

// Resize recomputes the projection for a viewport of w x h.
// A non-positive height is treated as 1.
func (c *Camera) Resize(w, h int) {
	if h <= 0 {
		h = 1
	}
	if w <= 0 {
		w = 1
	}
	c.aspect = float32(w) / float32(h)
	c.projection = mgl32.Perspective(
		mgl32.DegToRad(c.config.FovDeg),
		c.aspect,
		c.config.Near,
		c.config.Far,
	)
}

// Aspect returns the aspect ratio used by the current projection.
func (c *Camera) Aspect() float32 {
	return c.aspect
}

// View returns the view matrix.
func (c *Camera) View() mgl32.Mat4 {
	return c.view
}

// Projection returns the current projection matrix.
func (c *Camera) Projection() mgl32.Mat4 {
	return c.projection
}

// MVP returns projection * view. There is no per-object model transform.
func (c *Camera) MVP() mgl32.Mat4 {
	return c.projection.Mul4(c.view)
}
