package geometry

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/flame/pkg/math"
)

// MaxSubdivisions is the highest level the controls allow.
const MaxSubdivisions = 8

// Icosphere builds a sphere of the given radius around center by
// subdividing a regular icosahedron level times.
//
// Level 0 is the icosahedron itself (12 vertices, 20 faces). Every level
// multiplies the face count by 4; vertices are shared between adjacent
// faces, giving 10*4^level + 2 of them.
func Icosphere(center math.Vec3, radius float32, level int) *Mesh {
	if level < 0 {
		level = 0
	}

	verts, faces := icosahedron()
	for i := 0; i < level; i++ {
		verts, faces = subdivide(verts, faces)
	}

	m := &Mesh{
		Positions: make([]float32, 0, len(verts)*4),
		Normals:   make([]float32, 0, len(verts)*4),
		Indices:   make([]uint32, 0, len(faces)*3),
	}
	for _, v := range verts {
		m.appendVertex(center.Add(v.Scale(radius)), v)
	}
	for _, f := range faces {
		m.Indices = append(m.Indices, f[0], f[1], f[2])
	}
	return m
}

// IcosphereVertexCount returns the vertex count Icosphere produces for level.
func IcosphereVertexCount(level int) int {
	return 10*(1<<(2*level)) + 2
}

// IcosphereTriangleCount returns the triangle count Icosphere produces for level.
func IcosphereTriangleCount(level int) int {
	return 20 * (1 << (2 * level))
}

type face [3]uint32

// icosahedron returns the unit-sphere icosahedron with counter-clockwise faces.
func icosahedron() ([]math.Vec3, []face) {
	t := (1 + math32.Sqrt(5)) / 2

	verts := []math.Vec3{
		{X: -1, Y: t}, {X: 1, Y: t}, {X: -1, Y: -t}, {X: 1, Y: -t},
		{Y: -1, Z: t}, {Y: 1, Z: t}, {Y: -1, Z: -t}, {Y: 1, Z: -t},
		{X: t, Z: -1}, {X: t, Z: 1}, {X: -t, Z: -1}, {X: -t, Z: 1},
	}
	for i := range verts {
		verts[i] = verts[i].Normalize()
	}

	faces := []face{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}
	return verts, faces
}

// edgeKey identifies an edge independent of direction.
func edgeKey(a, b uint32) uint64 {
	if a > b {
		a, b = b, a
	}
	return uint64(a)<<32 | uint64(b)
}

// subdivide splits every face into four. The midpoint cache lives for one
// pass only, so each shared edge yields exactly one new vertex.
func subdivide(verts []math.Vec3, faces []face) ([]math.Vec3, []face) {
	midpoints := make(map[uint64]uint32, len(faces)*3/2)
	midpoint := func(a, b uint32) uint32 {
		key := edgeKey(a, b)
		if idx, ok := midpoints[key]; ok {
			return idx
		}
		idx := uint32(len(verts))
		verts = append(verts, verts[a].Midpoint(verts[b]).Normalize())
		midpoints[key] = idx
		return idx
	}

	out := make([]face, 0, len(faces)*4)
	for _, f := range faces {
		ab := midpoint(f[0], f[1])
		bc := midpoint(f[1], f[2])
		ca := midpoint(f[2], f[0])
		out = append(out,
			face{f[0], ab, ca},
			face{f[1], bc, ab},
			face{f[2], ca, bc},
			face{ab, bc, ca},
		)
	}
	return verts, out
}
