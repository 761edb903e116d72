package geometry

import "github.com/Faultbox/flame/pkg/math"

// cubeFaces lists each face as its outward normal and four corners in
// counter-clockwise order seen from outside.
var cubeFaces = [6]struct {
	normal  math.Vec3
	corners [4]math.Vec3
}{
	{math.Vec3{Z: 1}, [4]math.Vec3{{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1}}},
	{math.Vec3{Z: -1}, [4]math.Vec3{{X: 1, Y: -1, Z: -1}, {X: -1, Y: -1, Z: -1}, {X: -1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: -1}}},
	{math.Vec3{X: 1}, [4]math.Vec3{{X: 1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: 1}}},
	{math.Vec3{X: -1}, [4]math.Vec3{{X: -1, Y: -1, Z: -1}, {X: -1, Y: -1, Z: 1}, {X: -1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: -1}}},
	{math.Vec3{Y: 1}, [4]math.Vec3{{X: -1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1}}},
	{math.Vec3{Y: -1}, [4]math.Vec3{{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: 1}, {X: -1, Y: -1, Z: 1}}},
}

// Cube returns an axis-aligned cube with half extent 1 around center.
// Corners are duplicated per face so every face gets a flat normal:
// 24 vertices and 12 triangles.
func Cube(center math.Vec3) *Mesh {
	m := &Mesh{
		Positions: make([]float32, 0, 24*4),
		Normals:   make([]float32, 0, 24*4),
		Indices:   make([]uint32, 0, 36),
	}
	for _, f := range cubeFaces {
		base := uint32(m.VertexCount())
		for _, c := range f.corners {
			m.appendVertex(center.Add(c), f.normal)
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}
