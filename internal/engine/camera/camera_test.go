package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/flame/pkg/math"
)

const eps = 1e-4

// toNDC returns p in normalized device coordinates under m.
func toNDC(m math.Mat4, p math.Vec3) math.Vec3 {
	in := p.Point()
	var out math.Vec4
	for row := 0; row < 4; row++ {
		for k := 0; k < 4; k++ {
			out[row] += m[k*4+row] * in[k]
		}
	}
	return out.XYZ().Scale(1 / out[3])
}

func TestNewOrbitCameraDefaults(t *testing.T) {
	c := NewOrbitCamera(DefaultOptions())

	assert.Equal(t, math.V3(0, 0, 5), c.Eye)
	assert.Equal(t, math.V3(0, 0, 0), c.Target)
	assert.InDelta(t, 5, c.Distance(), eps)
	assert.Equal(t, c.Projection.Mul(c.View), c.ViewProjection())

	// The target projects to the center of the screen.
	p := toNDC(c.ViewProjection(), c.Target)
	assert.InDelta(t, 0, p.X, eps)
	assert.InDelta(t, 0, p.Y, eps)
}

func TestAspectRatio(t *testing.T) {
	c := NewOrbitCamera(DefaultOptions())
	before := c.Projection

	c.SetAspectRatio(2)
	c.UpdateProjectionMatrix()

	assert.Equal(t, float32(2), c.Aspect)
	assert.InDelta(t, before[0]/2, c.Projection[0], eps)
	assert.Equal(t, before[5], c.Projection[5])
	assert.Equal(t, c.Projection.Mul(c.View), c.ViewProj)

	c.SetAspectRatio(0)
	assert.Equal(t, float32(2), c.Aspect, "zero aspect from a minimized window is ignored")
}

func TestHandleDragKeepsDistance(t *testing.T) {
	c := NewOrbitCamera(DefaultOptions())

	c.HandleDrag(120, -40)

	assert.InDelta(t, 5, c.Distance(), eps)
	assert.NotEqual(t, math.V3(0, 0, 5), c.Eye)
	p := toNDC(c.ViewProjection(), c.Target)
	assert.InDelta(t, 0, p.X, eps)
	assert.InDelta(t, 0, p.Y, eps)
}

func TestHandleDragClampsPitch(t *testing.T) {
	c := NewOrbitCamera(DefaultOptions())

	c.HandleDrag(0, 100000)
	_, pitch, _ := c.angles()
	assert.InDelta(t, c.MaxPitch, pitch, eps)

	c.HandleDrag(0, -100000)
	_, pitch, _ = c.angles()
	assert.InDelta(t, -c.MaxPitch, pitch, eps)
}

func TestHandleZoomClamps(t *testing.T) {
	c := NewOrbitCamera(DefaultOptions())

	c.HandleZoom(1)
	assert.InDelta(t, 4.5, c.Distance(), eps)

	for i := 0; i < 100; i++ {
		c.HandleZoom(1)
	}
	assert.InDelta(t, c.MinDistance, c.Distance(), eps)

	for i := 0; i < 100; i++ {
		c.HandleZoom(-1)
	}
	assert.InDelta(t, c.MaxDistance, c.Distance(), eps)
}

func TestReset(t *testing.T) {
	c := NewOrbitCamera(DefaultOptions())
	home := c.ViewProj

	c.HandleDrag(50, 50)
	c.HandleZoom(2)
	c.Reset()

	assert.Equal(t, math.V3(0, 0, 5), c.Eye)
	assert.Equal(t, home, c.ViewProj)
}
