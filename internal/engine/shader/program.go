package shader

import (
	"fmt"

	"github.com/Faultbox/flame/pkg/math"
)

// Vertex attribute slots shared by every shader in the demo.
const (
	AttribPosition = 0 // vs_Pos
	AttribNormal   = 1 // vs_Nor
)

// Uniform names.
const (
	UniformTime        = "u_Time"
	UniformFreq        = "u_Freq"
	UniformAmp         = "u_Amp"
	UniformFlameHeight = "u_FlameHeight"
	UniformColor       = "u_Color"
	UniformModel       = "u_Model"
	UniformViewProj    = "u_ViewProj"
)

// Program is a linked shader program with its locations resolved once.
// A location of -1 means the program does not use that input, and the
// matching setter does nothing.
type Program struct {
	Name string

	api API
	id  uint32

	attrPos int32
	attrNor int32

	unifTime        int32
	unifFreq        int32
	unifAmp         int32
	unifFlameHeight int32
	unifColor       int32
	unifModel       int32
	unifViewProj    int32
}

// NewProgram compiles and links a vertex/fragment pair. It needs a current
// OpenGL context.
func NewProgram(name, vertexSrc, fragmentSrc string) (*Program, error) {
	id, err := compileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("program %s: %w", name, err)
	}
	return Wrap(GL{}, name, id), nil
}

// Wrap resolves the locations of an already linked program.
func Wrap(api API, name string, id uint32) *Program {
	return &Program{
		Name:            name,
		api:             api,
		id:              id,
		attrPos:         api.AttribLocation(id, "vs_Pos"),
		attrNor:         api.AttribLocation(id, "vs_Nor"),
		unifTime:        api.UniformLocation(id, UniformTime),
		unifFreq:        api.UniformLocation(id, UniformFreq),
		unifAmp:         api.UniformLocation(id, UniformAmp),
		unifFlameHeight: api.UniformLocation(id, UniformFlameHeight),
		unifColor:       api.UniformLocation(id, UniformColor),
		unifModel:       api.UniformLocation(id, UniformModel),
		unifViewProj:    api.UniformLocation(id, UniformViewProj),
	}
}

// ID returns the GL program handle.
func (p *Program) ID() uint32 { return p.id }

// HasPosition reports whether the program reads vs_Pos.
func (p *Program) HasPosition() bool { return p.attrPos >= 0 }

// HasNormal reports whether the program reads vs_Nor.
func (p *Program) HasNormal() bool { return p.attrNor >= 0 }

// Use makes the program current. The setters below assume it is.
func (p *Program) Use() {
	p.api.UseProgram(p.id)
}

func (p *Program) SetTime(t float32) {
	if p.unifTime != -1 {
		p.api.Uniform1f(p.unifTime, t)
	}
}

func (p *Program) SetFreq(f float32) {
	if p.unifFreq != -1 {
		p.api.Uniform1f(p.unifFreq, f)
	}
}

func (p *Program) SetAmp(a float32) {
	if p.unifAmp != -1 {
		p.api.Uniform1f(p.unifAmp, a)
	}
}

func (p *Program) SetFlameHeight(h float32) {
	if p.unifFlameHeight != -1 {
		p.api.Uniform1f(p.unifFlameHeight, h)
	}
}

// SetGeometryColor takes an RGBA color already normalized to 0..1.
func (p *Program) SetGeometryColor(c [4]float32) {
	if p.unifColor != -1 {
		p.api.Uniform4f(p.unifColor, c)
	}
}

func (p *Program) SetModelMatrix(m math.Mat4) {
	if p.unifModel != -1 {
		p.api.UniformMatrix4fv(p.unifModel, &m)
	}
}

func (p *Program) SetViewProjMatrix(m math.Mat4) {
	if p.unifViewProj != -1 {
		p.api.UniformMatrix4fv(p.unifViewProj, &m)
	}
}

// Delete releases the GL program.
func (p *Program) Delete() {
	if p.id != 0 {
		p.api.DeleteProgram(p.id)
		p.id = 0
	}
}
