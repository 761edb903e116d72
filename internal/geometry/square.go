package geometry

import "github.com/Faultbox/flame/pkg/math"

// Square returns a 2x2 quad in the z=0 plane around center, facing +Z.
func Square(center math.Vec3) *Mesh {
	corners := [4]math.Vec3{
		{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1},
	}
	m := &Mesh{
		Positions: make([]float32, 0, 16),
		Normals:   make([]float32, 0, 16),
		Indices:   []uint32{0, 1, 2, 0, 2, 3},
	}
	for _, c := range corners {
		m.appendVertex(center.Add(c), math.Vec3{Z: 1})
	}
	return m
}
