package config

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/Faultbox/flame/internal/controls"
	"github.com/Faultbox/flame/pkg/math"
)

// cameraUp is the fixed up vector of the orbit camera.
var cameraUp = math.V3(0, 1, 0)

// Validate reports every out-of-range setting at once.
func (c *Config) Validate() error {
	var err error

	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("graphics: window size %dx%d must be positive", c.Graphics.Width, c.Graphics.Height))
	}

	s := c.Scene
	if s.Tesselations < controls.MinTesselations || s.Tesselations > controls.MaxTesselations {
		err = multierr.Append(err, fmt.Errorf("scene: tesselations %d outside [%d, %d]", s.Tesselations, controls.MinTesselations, controls.MaxTesselations))
	}
	for i, ch := range s.Color {
		if ch < 0 || ch > 255 {
			err = multierr.Append(err, fmt.Errorf("scene: color channel %d value %g outside [0, 255]", i, ch))
		}
	}
	err = multierr.Append(err, inRange("scene: frequency", s.Frequency, 1, 10))
	err = multierr.Append(err, inRange("scene: amplitude", s.Amplitude, 1, 10))
	err = multierr.Append(err, inRange("scene: flame_height", s.FlameHeight, 1, 10))
	if s.Radius <= 0 {
		err = multierr.Append(err, fmt.Errorf("scene: radius %g must be positive", s.Radius))
	}

	cam := c.Camera
	if cam.FovDegrees <= 0 || cam.FovDegrees >= 180 {
		err = multierr.Append(err, fmt.Errorf("camera: fov_degrees %g outside (0, 180)", cam.FovDegrees))
	}
	if cam.Near <= 0 || cam.Near >= cam.Far {
		err = multierr.Append(err, fmt.Errorf("camera: need 0 < near (%g) < far (%g)", cam.Near, cam.Far))
	}
	eye := math.V3(cam.Eye[0], cam.Eye[1], cam.Eye[2])
	target := math.V3(cam.Target[0], cam.Target[1], cam.Target[2])
	if view := target.Sub(eye); view.Length() == 0 {
		err = multierr.Append(err, fmt.Errorf("camera: eye and target coincide at %v", cam.Eye))
	} else if view.Normalize().Cross(cameraUp).Length() < 1e-4 {
		err = multierr.Append(err, fmt.Errorf("camera: eye %v is straight above or below target %v", cam.Eye, cam.Target))
	}

	if c.Shaders.Watch && c.Shaders.Dir == "" {
		err = multierr.Append(err, fmt.Errorf("shaders: watch requires dir"))
	}

	switch c.Debug.ScreenshotFormat {
	case "png", "bmp":
	default:
		err = multierr.Append(err, fmt.Errorf("debug: unknown screenshot_format %q", c.Debug.ScreenshotFormat))
	}

	return err
}

func inRange(name string, v, lo, hi float32) error {
	if v < lo || v > hi {
		return fmt.Errorf("%s %g outside [%g, %g]", name, v, lo, hi)
	}
	return nil
}
