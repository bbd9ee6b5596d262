// Package app implements the grid view: it owns the window, the graphics
// context and the mesh, and runs the event loop that animates and draws it.
package app

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/ripplegrid/internal/config"
	"github.com/Faultbox/ripplegrid/internal/engine/camera"
	"github.com/Faultbox/ripplegrid/internal/engine/clock"
	"github.com/Faultbox/ripplegrid/internal/engine/debug"
	"github.com/Faultbox/ripplegrid/internal/engine/gpubuf"
	"github.com/Faultbox/ripplegrid/internal/engine/grid"
	"github.com/Faultbox/ripplegrid/internal/engine/input"
	"github.com/Faultbox/ripplegrid/internal/engine/renderer"
	"github.com/Faultbox/ripplegrid/internal/engine/shader/shaders"
	"github.com/Faultbox/ripplegrid/internal/engine/water"
	"github.com/Faultbox/ripplegrid/internal/engine/window"
	"github.com/Faultbox/ripplegrid/internal/logger"
)

const colourProgram = "colour"

// App is the grid view.
type App struct {
	config *config.Config

	window   *window.Window
	gfx      *renderer.Context
	input    *input.Input
	camera   *camera.Camera
	mesh     *gpubuf.Buffer
	ripple   *water.Ripple
	ticker   *clock.Ticker
	delta    clock.DeltaTimer
	shots    *debug.ScreenshotCapture
	controls Controls

	colour      mgl32.Vec4
	running     bool
	redraw      bool
	captureNext bool
}

// New creates the window and GL context, compiles the shader and uploads
// the mesh. Any failure is returned with everything already created released.
func New(cfg *config.Config) (a *App, err error) {
	logger.Info("initializing grid view",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	spec := grid.Spec{
		Width:  cfg.Grid.Width,
		Depth:  cfg.Grid.Depth,
		StepsW: cfg.Grid.StepsW,
		StepsD: cfg.Grid.StepsD,
	}
	// Validate before opening a window so bad parameters fail fast.
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid mesh: %w", err)
	}

	a = &App{
		config: cfg,
		input:  input.New(),
		ripple: water.NewRipple(cfg.Animation.Step),
		ticker: clock.NewTicker(cfg.Animation.TickInterval, cfg.Animation.MaxTicksPerFrame),
		shots:  debug.NewScreenshotCapture(cfg.Capture.Dir, cfg.Capture.Prefix, cfg.Capture.Format),
		colour: mgl32.Vec4(cfg.Render.Colour),
		camera: camera.New(camera.Config{
			Eye:    mgl32.Vec3(cfg.Camera.Eye),
			Target: mgl32.Vec3(cfg.Camera.Target),
			Up:     mgl32.Vec3{0, 1, 0},
			FovDeg: cfg.Camera.FovDeg,
			Near:   cfg.Camera.Near,
			Far:    cfg.Camera.Far,
		}),
	}
	defer func() {
		if err != nil {
			a.Close()
			a = nil
		}
	}()

	logger.Debug("view matrix", zap.String("view", a.camera.View().String()))

	// Window first, the GL context must exist before the renderer
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
		Samples:    cfg.Render.Samples,
	})
	if err != nil {
		return a, fmt.Errorf("failed to create window: %w", err)
	}

	a.gfx, err = renderer.New(renderer.Config{
		ClearColour: mgl32.Vec4(cfg.Render.ClearColour),
		Multisample: cfg.Render.Samples > 0,
	})
	if err != nil {
		return a, fmt.Errorf("failed to create renderer: %w", err)
	}

	if err = a.gfx.LoadProgram(colourProgram, shaders.ColourVertexShader, shaders.ColourFragmentShader); err != nil {
		return a, err
	}
	if err = a.gfx.Use(colourProgram); err != nil {
		return a, err
	}
	if err = a.gfx.SetVec4("Colour", a.colour); err != nil {
		return a, err
	}

	verts, err := grid.Build(spec)
	if err != nil {
		return a, fmt.Errorf("building mesh: %w", err)
	}
	a.mesh, err = gpubuf.New(verts)
	if err != nil {
		return a, fmt.Errorf("uploading mesh: %w", err)
	}
	logger.Info("mesh built",
		zap.Int("cells_w", spec.StepsW),
		zap.Int("cells_d", spec.StepsD),
		zap.Int("vertices", a.mesh.Len()),
	)

	a.controls.Wireframe = cfg.Render.Wireframe
	a.gfx.SetWireframe(a.controls.Wireframe)

	a.resize(a.window.GetSize())

	logger.Info("grid view initialized")
	return a, nil
}

// Run drives the event loop until quit is requested.
func (a *App) Run() error {
	a.running = true
	a.redraw = true

	logger.Info("starting event loop", zap.Duration("tick", a.ticker.Period))

	for a.running {
		if a.input.Update() {
			a.running = false
			break
		}

		for _, event := range a.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				a.resize(event.Width, event.Height)
			case input.EventKeyDown:
				a.handleKey(event.Key)
			}
		}
		if !a.running {
			break
		}

		for n := a.ticker.Advance(a.delta.Next()); n > 0; n-- {
			if err := a.tick(); err != nil {
				return fmt.Errorf("animation tick: %w", err)
			}
		}

		if !a.redraw {
			sdl.Delay(1)
			continue
		}

		if err := a.render(); err != nil {
			return fmt.Errorf("render error: %w", err)
		}
		a.window.SwapBuffers()
		a.redraw = false
	}

	logger.Info("event loop stopped", zap.Uint64("ticks", a.ticker.Total()))
	return nil
}

// Close releases GPU objects, the shader programs and the window.
func (a *App) Close() {
	logger.Info("shutting down, removing VAOs and shaders")

	if a.mesh != nil {
		a.mesh.Delete()
		a.mesh = nil
	}
	if a.gfx != nil {
		a.gfx.Close()
		a.gfx = nil
	}
	if a.window != nil {
		a.window.Close()
		a.window = nil
	}
}

// requestRedraw marks the frame as stale.
func (a *App) requestRedraw() {
	a.redraw = true
}

// resize takes window-space size, as delivered by SDL.
func (a *App) resize(w, h int) {
	fbW, fbH := a.window.DrawableSize()
	a.gfx.Resize(fbW, fbH)
	a.camera.Resize(w, h)

	logger.Debug("projection matrix", zap.String("projection", a.camera.Projection().String()))
	a.requestRedraw()
}

func (a *App) handleKey(key sdl.Scancode) {
	action := a.controls.HandleKey(key)
	switch action {
	case ActionNone:
		return
	case ActionQuit:
		a.running = false
	case ActionWireframe, ActionFill:
		a.gfx.SetWireframe(a.controls.Wireframe)
	case ActionScreenshot:
		a.captureNext = true
	}

	logger.Info("key action", zap.Stringer("action", action))
	a.requestRedraw()
}

// tick advances the ripple by one step directly in GPU memory.
func (a *App) tick() error {
	err := a.mesh.Update(func(verts []grid.Vertex) error {
		a.ripple.Tick(verts)
		return nil
	})
	if err != nil {
		return err
	}
	a.requestRedraw()
	return nil
}

func (a *App) render() error {
	a.gfx.Begin()

	if err := a.gfx.SetMat4("MVP", a.camera.MVP()); err != nil {
		return err
	}
	if err := a.gfx.SetVec4("Colour", a.colour); err != nil {
		return err
	}
	a.mesh.Draw()

	if a.captureNext {
		a.captureNext = false
		a.screenshot()
	}
	return nil
}

// screenshot reads the back buffer. Failures are logged, never fatal.
func (a *App) screenshot() {
	pixels, w, h := a.gfx.ReadPixels()
	path, err := a.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}
