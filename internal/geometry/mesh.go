// Package geometry builds the CPU-side triangle meshes drawn by the demo.
//
// Meshes are flat arrays ready for buffer upload: 4 floats per position
// (w=1), 4 floats per normal (w=0) and 3 indices per triangle.
package geometry

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/flame/pkg/math"
)

// Mesh holds vertex data for one indexed triangle list.
type Mesh struct {
	Positions []float32
	Normals   []float32
	Indices   []uint32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 4
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Position returns vertex i as a homogeneous point.
func (m *Mesh) Position(i int) math.Vec4 {
	return math.Vec4(m.Positions[i*4 : i*4+4])
}

// Normal returns the normal of vertex i.
func (m *Mesh) Normal(i int) math.Vec4 {
	return math.Vec4(m.Normals[i*4 : i*4+4])
}

// Validate checks the layout invariants and returns the first violation.
func (m *Mesh) Validate() error {
	if len(m.Positions)%4 != 0 {
		return fmt.Errorf("positions length %d is not a multiple of 4", len(m.Positions))
	}
	if len(m.Positions) != len(m.Normals) {
		return fmt.Errorf("positions length %d != normals length %d", len(m.Positions), len(m.Normals))
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("index count %d is not a multiple of 3", len(m.Indices))
	}
	n := uint32(m.VertexCount())
	for i, idx := range m.Indices {
		if idx >= n {
			return fmt.Errorf("index %d at %d out of range (%d vertices)", idx, i, n)
		}
	}
	for i := 0; i < m.VertexCount(); i++ {
		if w := m.Position(i)[3]; w != 1 {
			return fmt.Errorf("vertex %d: position w is %g, want 1", i, w)
		}
		nor := m.Normal(i)
		if nor[3] != 0 || math32.Abs(nor.XYZ().Length()-1) > 1e-3 {
			return fmt.Errorf("vertex %d: normal %v is not a unit direction", i, nor)
		}
	}
	return nil
}

// appendVertex adds one position/normal pair and returns its index.
func (m *Mesh) appendVertex(pos, nor math.Vec3) uint32 {
	idx := uint32(len(m.Positions) / 4)
	p, n := pos.Point(), nor.Direction()
	m.Positions = append(m.Positions, p[:]...)
	m.Normals = append(m.Normals, n[:]...)
	return idx
}
