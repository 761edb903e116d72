package shader

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/flame/pkg/math"
)

// API is the slice of OpenGL a Program touches after linking.
type API interface {
	UseProgram(id uint32)
	DeleteProgram(id uint32)
	UniformLocation(id uint32, name string) int32
	AttribLocation(id uint32, name string) int32
	Uniform1f(loc int32, v float32)
	Uniform4f(loc int32, v [4]float32)
	UniformMatrix4fv(loc int32, m *math.Mat4)
}

// GL forwards to the current OpenGL context.
type GL struct{}

func (GL) UseProgram(id uint32)    { gl.UseProgram(id) }
func (GL) DeleteProgram(id uint32) { gl.DeleteProgram(id) }

func (GL) UniformLocation(id uint32, name string) int32 {
	return gl.GetUniformLocation(id, gl.Str(name+"\x00"))
}

func (GL) AttribLocation(id uint32, name string) int32 {
	return gl.GetAttribLocation(id, gl.Str(name+"\x00"))
}

func (GL) Uniform1f(loc int32, v float32)    { gl.Uniform1f(loc, v) }
func (GL) Uniform4f(loc int32, v [4]float32) { gl.Uniform4f(loc, v[0], v[1], v[2], v[3]) }

func (GL) UniformMatrix4fv(loc int32, m *math.Mat4) {
	gl.UniformMatrix4fv(loc, 1, false, m.Ptr())
}
