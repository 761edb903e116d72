// Package shaders provides the GLSL sources for the demo, embedded at build
// time and optionally overridden from a directory on disk.
package shaders

import _ "embed"

// FlatVertexShader draws the full-screen background quad.
//
//go:embed flat.vert
var FlatVertexShader string

// FlatFragmentShader fills the background with u_Color.
//
//go:embed flat.frag
var FlatFragmentShader string

// LambertVertexShader displaces vertices along their normals into a flame.
//
//go:embed lambert.vert
var LambertVertexShader string

// LambertFragmentShader applies a single directional Lambert term.
//
//go:embed lambert.frag
var LambertFragmentShader string
