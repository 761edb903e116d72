// Package camera provides the orbit camera that frames the flame.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/flame/pkg/math"
)

// Options fixes the projection and the home position.
type Options struct {
	FovDegrees float32
	Near, Far  float32
	Eye        math.Vec3
	Target     math.Vec3
}

// DefaultOptions matches the demo's initial framing.
func DefaultOptions() Options {
	return Options{
		FovDegrees: 45,
		Near:       0.1,
		Far:        1000,
		Eye:        math.V3(0, 0, 5),
	}
}

// OrbitCamera looks from Eye at Target and orbits around Target.
type OrbitCamera struct {
	Eye    math.Vec3
	Target math.Vec3
	Up     math.Vec3

	FovY   float32 // radians
	Aspect float32
	Near   float32
	Far    float32

	View       math.Mat4
	Projection math.Mat4
	ViewProj   math.Mat4

	// Constraints
	MinDistance float32
	MaxDistance float32
	MaxPitch    float32 // radians above or below the horizon

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32

	homeEye    math.Vec3
	homeTarget math.Vec3
}

// NewOrbitCamera creates a camera at the home position with aspect 1.
func NewOrbitCamera(opts Options) *OrbitCamera {
	c := &OrbitCamera{
		Up:              math.V3(0, 1, 0),
		FovY:            math.Radians(opts.FovDegrees),
		Aspect:          1,
		Near:            opts.Near,
		Far:             opts.Far,
		MinDistance:     1.5,
		MaxDistance:     50,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		homeEye:         opts.Eye,
		homeTarget:      opts.Target,
	}
	c.Reset()
	c.UpdateProjectionMatrix()
	return c
}

// Reset returns to the home eye and target.
func (c *OrbitCamera) Reset() {
	c.Eye = c.homeEye
	c.Target = c.homeTarget
	c.Update()
}

// SetAspectRatio stores width/height. Call UpdateProjectionMatrix afterwards.
func (c *OrbitCamera) SetAspectRatio(aspect float32) {
	if aspect > 0 {
		c.Aspect = aspect
	}
}

// UpdateProjectionMatrix rebuilds the projection from fov, aspect and clip planes.
func (c *OrbitCamera) UpdateProjectionMatrix() {
	c.Projection = math.Perspective(c.FovY, c.Aspect, c.Near, c.Far)
	c.ViewProj = c.Projection.Mul(c.View)
}

// Update recomputes the view and view-projection from Eye and Target.
func (c *OrbitCamera) Update() {
	c.View = math.LookAt(c.Eye, c.Target, c.Up)
	c.ViewProj = c.Projection.Mul(c.View)
}

// ViewProjection returns projection * view.
func (c *OrbitCamera) ViewProjection() math.Mat4 {
	return c.ViewProj
}

// Distance returns the eye-to-target distance.
func (c *OrbitCamera) Distance() float32 {
	return c.Eye.Distance(c.Target)
}

// angles returns the orbit as yaw around +Y and pitch above the XZ plane.
func (c *OrbitCamera) angles() (yaw, pitch, dist float32) {
	off := c.Eye.Sub(c.Target)
	dist = off.Length()
	if dist == 0 {
		return 0, 0, 0
	}
	yaw = math32.Atan2(off.X, off.Z)
	pitch = math32.Asin(clamp(off.Y/dist, -1, 1))
	return yaw, pitch, dist
}

func (c *OrbitCamera) place(yaw, pitch, dist float32) {
	cp := math32.Cos(pitch)
	c.Eye = c.Target.Add(math.V3(
		dist*cp*math32.Sin(yaw),
		dist*math32.Sin(pitch),
		dist*cp*math32.Cos(yaw),
	))
	c.Update()
}

// HandleDrag orbits the eye around the target from a mouse drag delta in pixels.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	yaw, pitch, dist := c.angles()
	if dist == 0 {
		return
	}
	yaw -= deltaX * c.DragSensitivity
	pitch = clamp(pitch+deltaY*c.DragSensitivity, -c.MaxPitch, c.MaxPitch)
	c.place(yaw, pitch, dist)
}

// HandleZoom moves the eye toward the target for positive wheel deltas.
func (c *OrbitCamera) HandleZoom(delta float32) {
	yaw, pitch, dist := c.angles()
	if dist == 0 {
		return
	}
	dist = clamp(dist-delta*dist*c.ZoomSensitivity, c.MinDistance, c.MaxDistance)
	c.place(yaw, pitch, dist)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
