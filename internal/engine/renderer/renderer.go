// Package renderer provides the OpenGL graphics context used by the view:
// GL loading, global render state, named shader programs and uniforms.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/ripplegrid/internal/engine/shader"
	"github.com/Faultbox/ripplegrid/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	ClearColour mgl32.Vec4
	Multisample bool
}

// program is a linked shader program with its resolved uniforms.
type program struct {
	id       uint32
	uniforms map[string]int32
}

// Context is an explicitly owned graphics context. Create one after the
// window's GL context is current and pass it to whatever draws.
type Context struct {
	config   Config
	programs map[string]*program
	active   *program

	width  int
	height int
}

// New loads OpenGL entry points and sets up default state.
// IMPORTANT: Must be called AFTER the OpenGL context is created!
func New(cfg Config) (*Context, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("vendor", gl.GoStr(gl.GetString(gl.VENDOR))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
	)

	c := &Context{
		config:   cfg,
		programs: make(map[string]*program),
	}

	bg := cfg.ClearColour
	gl.ClearColor(bg[0], bg[1], bg[2], bg[3])
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	if cfg.Multisample {
		gl.Enable(gl.MULTISAMPLE)
	}

	return c, nil
}

// Close deletes every program owned by the context.
func (c *Context) Close() {
	logger.Info("closing renderer")
	for name, p := range c.programs {
		gl.DeleteProgram(p.id)
		delete(c.programs, name)
	}
	c.active = nil
}

// LoadProgram compiles and registers a program under name.
func (c *Context) LoadProgram(name, vertexSrc, fragmentSrc string) error {
	if _, ok := c.programs[name]; ok {
		return fmt.Errorf("program %q already loaded", name)
	}

	id, err := shader.CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return fmt.Errorf("program %q: %w", name, err)
	}
	c.programs[name] = &program{id: id, uniforms: make(map[string]int32)}

	logger.Debug("shader program created", zap.String("name", name), zap.Uint32("program", id))
	return nil
}

// Use makes the named program current.
func (c *Context) Use(name string) error {
	p, ok := c.programs[name]
	if !ok {
		return fmt.Errorf("program %q not loaded", name)
	}
	gl.UseProgram(p.id)
	c.active = p
	return nil
}

// uniform resolves a uniform of the active program, caching the location.
func (c *Context) uniform(name string) (int32, error) {
	if c.active == nil {
		return -1, fmt.Errorf("set uniform %q: no active program", name)
	}
	if loc, ok := c.active.uniforms[name]; ok {
		return loc, nil
	}
	loc, err := shader.LookupUniform(c.active.id, name)
	if err != nil {
		return -1, err
	}
	c.active.uniforms[name] = loc
	return loc, nil
}

// SetMat4 uploads a matrix uniform to the active program.
func (c *Context) SetMat4(name string, m mgl32.Mat4) error {
	loc, err := c.uniform(name)
	if err != nil {
		return err
	}
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
	return nil
}

// SetVec4 uploads a vec4 uniform to the active program.
func (c *Context) SetVec4(name string, v mgl32.Vec4) error {
	loc, err := c.uniform(name)
	if err != nil {
		return err
	}
	gl.Uniform4f(loc, v[0], v[1], v[2], v[3])
	return nil
}

// Resize records the framebuffer size used by Begin.
func (c *Context) Resize(width, height int) {
	c.width = width
	c.height = height
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin clears colour and depth and sets the viewport for a new frame.
func (c *Context) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Viewport(0, 0, int32(c.width), int32(c.height))
}

// SetWireframe switches polygon rasterisation between lines and fill.
func (c *Context) SetWireframe(on bool) {
	mode := uint32(gl.FILL)
	if on {
		mode = gl.LINE
	}
	gl.PolygonMode(gl.FRONT_AND_BACK, mode)
}

// ReadPixels reads the back buffer as tightly packed RGBA rows,
// bottom row first.
func (c *Context) ReadPixels() ([]byte, int, int) {
	w, h := c.width, c.height
	if w <= 0 || h <= 0 {
		return nil, 0, 0
	}
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}
