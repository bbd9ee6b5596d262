package app

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
)

// Action is what a key press asks the view to do.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionReset
	ActionWireframe
	ActionFill
	ActionScreenshot
)

func (a Action) String() string {
	switch a {
	case ActionQuit:
		return "quit"
	case ActionReset:
		return "reset"
	case ActionWireframe:
		return "wireframe"
	case ActionFill:
		return "fill"
	case ActionScreenshot:
		return "screenshot"
	default:
		return "none"
	}
}

// Controls is the keyboard state machine. SpinX, SpinY and ModelPos are
// pose state kept for the reset key; nothing draws with them.
type Controls struct {
	SpinX     float32
	SpinY     float32
	ModelPos  mgl32.Vec3
	Wireframe bool
}

// HandleKey applies a key press and returns the resulting action.
func (c *Controls) HandleKey(key sdl.Scancode) Action {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		return ActionQuit
	case sdl.SCANCODE_SPACE:
		c.SpinX = 0
		c.SpinY = 0
		c.ModelPos = mgl32.Vec3{}
		return ActionReset
	case sdl.SCANCODE_W:
		c.Wireframe = true
		return ActionWireframe
	case sdl.SCANCODE_S:
		c.Wireframe = false
		return ActionFill
	case sdl.SCANCODE_P:
		return ActionScreenshot
	default:
		return ActionNone
	}
}
