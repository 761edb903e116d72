package math

// Vec4 is a 4-component vector. Meshes store positions with w=1 and
// normals with w=0.
type Vec4 [4]float32

// XYZ drops the w component.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}
