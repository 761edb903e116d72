// Package drawable uploads geometry meshes to GPU buffers.
package drawable

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/flame/internal/engine/shader"
	"github.com/Faultbox/flame/internal/geometry"
)

// Mesh is a geometry.Mesh living in a vertex array with index, position and
// normal buffers. Positions and normals are vec4 attributes.
type Mesh struct {
	vao      uint32
	idxBuf   uint32
	posBuf   uint32
	norBuf   uint32
	count    int32
	vertices int
}

// Upload validates m and copies it into new GPU buffers. It needs a current
// OpenGL context.
func Upload(m *geometry.Mesh) (*Mesh, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("uploading mesh: %w", err)
	}
	if len(m.Indices) == 0 {
		return nil, fmt.Errorf("uploading mesh: no triangles")
	}

	d := &Mesh{
		count:    int32(len(m.Indices)),
		vertices: m.VertexCount(),
	}

	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)

	gl.GenBuffers(1, &d.idxBuf)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, d.idxBuf)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	d.posBuf = attribBuffer(shader.AttribPosition, m.Positions)
	d.norBuf = attribBuffer(shader.AttribNormal, m.Normals)

	// The element buffer binding is VAO state, so only the array buffer is reset.
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return d, nil
}

func attribBuffer(loc uint32, data []float32) uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	gl.BindBuffer(gl.ARRAY_BUFFER, buf)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	gl.VertexAttribPointer(loc, 4, gl.FLOAT, false, 0, nil)
	gl.EnableVertexAttribArray(loc)
	return buf
}

// VertexArray returns the VAO to bind before drawing.
func (d *Mesh) VertexArray() uint32 { return d.vao }

// IndexCount returns the number of indices to draw.
func (d *Mesh) IndexCount() int32 { return d.count }

// VertexCount returns the number of uploaded vertices.
func (d *Mesh) VertexCount() int { return d.vertices }

// Release deletes the GPU buffers. It is safe to call twice.
func (d *Mesh) Release() {
	for _, buf := range []*uint32{&d.idxBuf, &d.posBuf, &d.norBuf} {
		if *buf != 0 {
			gl.DeleteBuffers(1, buf)
			*buf = 0
		}
	}
	if d.vao != 0 {
		gl.DeleteVertexArrays(1, &d.vao)
		d.vao = 0
	}
	d.count = 0
}
