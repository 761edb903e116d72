// Package controls holds the user-editable scene parameters and the table
// that binds them to GUI widgets and keyboard shortcuts.
package controls

// Default values restored by Reset.
var (
	DefaultColor = [4]float32{255, 186, 152, 0}
)

const (
	DefaultTesselations = 5
	DefaultFrequency    = 1
	DefaultAmplitude    = 1
	DefaultFlameHeight  = 1

	MinTesselations = 0
	MaxTesselations = 8
)

// Controls is the live parameter set read once per frame.
type Controls struct {
	Tesselations int32      // icosphere subdivision level
	Color        [4]float32 // RGBA, 0-255 per channel
	Frequency    float32
	Amplitude    float32
	FlameHeight  float32
	ShowCube     bool // draw the cube instead of the icosphere
}

// Default returns the controls the demo starts with.
func Default() Controls {
	c := Controls{Tesselations: DefaultTesselations}
	c.Reset()
	return c
}

// Reset restores color, frequency, amplitude and height. Tessellation and
// the shape toggle are left alone.
func (c *Controls) Reset() {
	c.Color = DefaultColor
	c.Frequency = DefaultFrequency
	c.Amplitude = DefaultAmplitude
	c.FlameHeight = DefaultFlameHeight
}

// NormalizedColor returns Color scaled to 0-1 for the shader.
func (c *Controls) NormalizedColor() [4]float32 {
	return [4]float32{c.Color[0] / 255, c.Color[1] / 255, c.Color[2] / 255, c.Color[3] / 255}
}

// Clamp forces every value into the range its binding declares.
func (c *Controls) Clamp() {
	for _, b := range Bindings() {
		b.clamp(c)
	}
}
