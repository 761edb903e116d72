package math

import "github.com/chewxy/math32"

// Mat4 is a column-major 4x4 matrix, the layout glUniformMatrix4fv takes
// with transpose=false. Row r of column c is m[c*4+r].
type Mat4 [16]float32

// Identity returns the identity matrix.
func Identity() Mat4 {
	var m Mat4
	for i := 0; i < 4; i++ {
		m[i*5] = 1
	}
	return m
}

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * math32.Pi / 180
}

// Perspective builds a right-handed projection mapping view-space depth
// [-near, -far] to clip depth [-1, 1]. fovY is in radians.
func Perspective(fovY, aspect, near, far float32) Mat4 {
	focal := 1 / math32.Tan(fovY/2)
	depth := near - far

	var m Mat4
	m[0] = focal / aspect
	m[5] = focal
	m[10] = (far + near) / depth
	m[11] = -1
	m[14] = 2 * far * near / depth
	return m
}

// LookAt builds a view matrix for an eye looking at target. up must not be
// parallel to target-eye.
func LookAt(eye, target, up Vec3) Mat4 {
	fwd := target.Sub(eye).Normalize()
	right := fwd.Cross(up).Normalize()
	camUp := right.Cross(fwd)

	m := Identity()
	m[0], m[4], m[8] = right.X, right.Y, right.Z
	m[1], m[5], m[9] = camUp.X, camUp.Y, camUp.Z
	m[2], m[6], m[10] = -fwd.X, -fwd.Y, -fwd.Z
	m[12] = -right.Dot(eye)
	m[13] = -camUp.Dot(eye)
	m[14] = fwd.Dot(eye)
	return m
}

// Translate returns a matrix moving points by v.
func Translate(v Vec3) Mat4 {
	m := Identity()
	m[12], m[13], m[14] = v.X, v.Y, v.Z
	return m
}

// Mul returns m*o, so o is applied first.
func (m Mat4) Mul(o Mat4) Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			for k := 0; k < 4; k++ {
				out[c*4+r] += m[k*4+r] * o[c*4+k]
			}
		}
	}
	return out
}

// Ptr returns a pointer to the first element for GL uniform uploads.
func (m *Mat4) Ptr() *float32 {
	return &m[0]
}
