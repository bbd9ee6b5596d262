// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// ColourVertexShader transforms positions by the MVP uniform.
//
//go:embed colour.vert
var ColourVertexShader string

// ColourFragmentShader fills every fragment with the Colour uniform.
//
//go:embed colour.frag
var ColourFragmentShader string
