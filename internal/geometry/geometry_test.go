package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/flame/pkg/math"
)

const radiusTol = 1e-4

func TestIcosphereCounts(t *testing.T) {
	wantVerts := []int{12, 42, 162, 642, 2562}
	for level, want := range wantVerts {
		m := Icosphere(math.Vec3{}, 1, level)
		assert.Equal(t, want, m.VertexCount(), "level %d vertices", level)
		assert.Equal(t, IcosphereVertexCount(level), m.VertexCount(), "level %d vertices", level)
		assert.Equal(t, IcosphereTriangleCount(level), m.TriangleCount(), "level %d triangles", level)
	}
}

func TestIcosphereOnSphere(t *testing.T) {
	maxLevel := MaxSubdivisions
	if testing.Short() {
		maxLevel = 5
	}
	center := math.V3(1.5, -2, 0.25)
	const radius = 2.5

	for level := 0; level <= maxLevel; level++ {
		m := Icosphere(center, radius, level)
		require.NoError(t, m.Validate(), "level %d", level)
		require.Equal(t, 20<<(2*level), m.TriangleCount(), "level %d triangles", level)

		for i := 0; i < m.VertexCount(); i++ {
			p := m.Position(i)
			require.Equal(t, float32(1), p[3], "level %d vertex %d w", level, i)
			d := p.XYZ().Distance(center)
			require.InDelta(t, radius, d, radiusTol*radius, "level %d vertex %d", level, i)
		}
	}
}

func TestIcosphereNormals(t *testing.T) {
	center := math.V3(0, 1, 0)
	m := Icosphere(center, 3, 2)
	for i := 0; i < m.VertexCount(); i++ {
		n := m.Normal(i)
		assert.Equal(t, float32(0), n[3], "normal w must be 0")
		assert.InDelta(t, 1, n.XYZ().Length(), 1e-5)

		dir := m.Position(i).XYZ().Sub(center).Normalize()
		assert.InDelta(t, 1, dir.Dot(n.XYZ()), 1e-5, "normal should point away from center")
	}
}

func TestIcosphereLevelZeroIsIcosahedron(t *testing.T) {
	m := Icosphere(math.Vec3{}, 1, 0)
	verts, faces := icosahedron()
	require.Equal(t, len(verts), m.VertexCount())
	require.Equal(t, len(faces), m.TriangleCount())
	for i, v := range verts {
		assert.Equal(t, v.Point(), m.Position(i))
	}
}

func TestIcosphereNegativeLevel(t *testing.T) {
	m := Icosphere(math.Vec3{}, 1, -3)
	assert.Equal(t, 12, m.VertexCount())
}

func TestIcosphereOutwardWinding(t *testing.T) {
	m := Icosphere(math.Vec3{}, 1, 1)
	for tri := 0; tri < m.TriangleCount(); tri++ {
		a := m.Position(int(m.Indices[tri*3])).XYZ()
		b := m.Position(int(m.Indices[tri*3+1])).XYZ()
		c := m.Position(int(m.Indices[tri*3+2])).XYZ()
		n := b.Sub(a).Cross(c.Sub(a))
		assert.Greater(t, n.Dot(a.Add(b).Add(c)), float32(0), "triangle %d faces inward", tri)
	}
}

func TestSubdivideSharesMidpoints(t *testing.T) {
	verts, faces := icosahedron()
	verts, faces = subdivide(verts, faces)

	// 30 icosahedron edges each contribute one vertex.
	assert.Len(t, verts, 12+30)
	assert.Len(t, faces, 80)

	seen := make(map[math.Vec3]int)
	for i, v := range verts {
		if j, ok := seen[v]; ok {
			t.Fatalf("vertex %d duplicates vertex %d", i, j)
		}
		seen[v] = i
	}
}

func TestEdgeKeyUnordered(t *testing.T) {
	assert.Equal(t, edgeKey(3, 9), edgeKey(9, 3))
	assert.NotEqual(t, edgeKey(3, 9), edgeKey(3, 10))
}

func TestCube(t *testing.T) {
	center := math.V3(2, 0, -1)
	m := Cube(center)
	require.NoError(t, m.Validate())
	assert.Equal(t, 24, m.VertexCount())
	assert.Len(t, m.Indices, 36)

	for i := 0; i < m.VertexCount(); i++ {
		p := m.Position(i).XYZ().Sub(center)
		n := m.Normal(i).XYZ()
		// Every corner sits on the face its normal names.
		assert.InDelta(t, 1, p.Dot(n), 1e-6, "vertex %d", i)
	}
}

func TestSquare(t *testing.T) {
	center := math.V3(0, 0, 0.5)
	m := Square(center)
	require.NoError(t, m.Validate())
	assert.Equal(t, 4, m.VertexCount())
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, m.Indices)
	for i := 0; i < 4; i++ {
		assert.Equal(t, float32(0.5), m.Position(i)[2])
		assert.Equal(t, math.Vec4{0, 0, 1, 0}, m.Normal(i))
	}
}

func TestFixedShapesOutwardWinding(t *testing.T) {
	center := math.V3(0.5, -1, 3)
	for name, m := range map[string]*Mesh{"cube": Cube(center), "square": Square(center)} {
		t.Run(name, func(t *testing.T) {
			for tri := 0; tri < m.TriangleCount(); tri++ {
				ia, ib, ic := int(m.Indices[tri*3]), int(m.Indices[tri*3+1]), int(m.Indices[tri*3+2])
				a, b, c := m.Position(ia).XYZ(), m.Position(ib).XYZ(), m.Position(ic).XYZ()
				face := b.Sub(a).Cross(c.Sub(a))

				// Counter-clockwise seen along the stored normal, so culling keeps it.
				for _, i := range []int{ia, ib, ic} {
					assert.Greater(t, face.Dot(m.Normal(i).XYZ()), float32(0), "triangle %d vertex %d", tri, i)
				}
				if name == "cube" {
					out := a.Add(b).Add(c).Scale(1.0 / 3).Sub(center)
					assert.Greater(t, face.Dot(out), float32(0), "triangle %d faces inward", tri)
				}
			}
		})
	}
}

func TestFixedShapesDeterministic(t *testing.T) {
	tests := []struct {
		name  string
		build func(math.Vec3) *Mesh
	}{
		{"cube", Cube},
		{"square", Square},
	}
	centers := []math.Vec3{{}, math.V3(1, 2, 3), math.V3(-0.5, 7, 0.125)}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, c := range centers {
				a, b := tt.build(c), tt.build(c)
				assert.Equal(t, a, b)
				// Separate calls never share backing arrays.
				a.Positions[0]++
				assert.NotEqual(t, a.Positions[0], b.Positions[0])
			}
		})
	}
}

func triangle() Mesh {
	var m Mesh
	for _, p := range []math.Vec3{{}, {X: 1}, {Y: 1}} {
		m.appendVertex(p, math.Vec3{Z: 1})
	}
	m.Indices = []uint32{0, 1, 2}
	return m
}

func TestValidate(t *testing.T) {
	badW := triangle()
	badW.Positions[3] = 0
	shortNormal := triangle()
	shortNormal.Normals[2] = 0.5
	pointNormal := triangle()
	pointNormal.Normals[3] = 1

	tests := []struct {
		name string
		mesh Mesh
		ok   bool
	}{
		{"empty", Mesh{}, true},
		{"ragged positions", Mesh{Positions: make([]float32, 6), Normals: make([]float32, 6)}, false},
		{"normals mismatch", Mesh{Positions: make([]float32, 12), Normals: make([]float32, 8)}, false},
		{"partial triangle", Mesh{Positions: make([]float32, 12), Normals: make([]float32, 12), Indices: []uint32{0, 1}}, false},
		{"index out of range", Mesh{Positions: make([]float32, 12), Normals: make([]float32, 12), Indices: []uint32{0, 1, 3}}, false},
		{"valid triangle", triangle(), true},
		{"position w", badW, false},
		{"short normal", shortNormal, false},
		{"normal with w", pointNormal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mesh.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
