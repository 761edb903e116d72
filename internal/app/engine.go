// Package app wires the scene, shaders, camera and renderer into the two
// demo frontends.
package app

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/flame/internal/config"
	"github.com/Faultbox/flame/internal/controls"
	"github.com/Faultbox/flame/internal/engine/camera"
	"github.com/Faultbox/flame/internal/engine/debug"
	"github.com/Faultbox/flame/internal/engine/drawable"
	"github.com/Faultbox/flame/internal/engine/renderer"
	"github.com/Faultbox/flame/internal/engine/shader"
	"github.com/Faultbox/flame/internal/engine/shaders"
	"github.com/Faultbox/flame/internal/geometry"
	"github.com/Faultbox/flame/internal/logger"
	"github.com/Faultbox/flame/internal/scene"
	"github.com/Faultbox/flame/pkg/math"
)

// ErrNoOpenGL is returned when the driver lacks an OpenGL 4.1 core context.
var ErrNoOpenGL = errors.New("OpenGL 4.1 core profile is not supported")

// NoOpenGLMessage is shown to the user when ErrNoOpenGL occurs.
const NoOpenGLMessage = "WebGL2-class OpenGL 4.1 is not supported on this system."

// StartupAlert returns the message to show the user for a startup error.
// Only a missing GL context is user-visible; every other error is left to
// the log.
func StartupAlert(err error) (string, bool) {
	if errors.Is(err, ErrNoOpenGL) {
		return NoOpenGLMessage, true
	}
	return "", false
}

// NoContext marks a window or context creation failure as ErrNoOpenGL.
func NoContext(err error) error {
	return fmt.Errorf("%w: %v", ErrNoOpenGL, err)
}

// gpuUploader uploads meshes with the current GL context.
type gpuUploader struct{}

func (gpuUploader) Upload(m *geometry.Mesh) (scene.Drawable, error) {
	d, err := drawable.Upload(m)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Engine renders one frame of the demo per call to Frame. All methods must
// run on the thread owning the GL context.
type Engine struct {
	Controls controls.Controls
	Camera   *camera.OrbitCamera
	Stats    *FrameStats

	cfg      *config.Config
	renderer *renderer.Renderer
	scene    *scene.Scene
	programs map[scene.PassKind]*shader.Program
	watcher  *shaders.Watcher
	shots    *debug.ScreenshotCapture
	log      *zap.Logger

	screenshotPending bool
}

// NewEngine loads OpenGL and builds the scene. The GL context must be current.
func NewEngine(cfg *config.Config) (*Engine, error) {
	if err := renderer.Init(); err != nil {
		return nil, NoContext(err)
	}

	e := &Engine{
		Controls: cfg.Controls(),
		Camera: camera.NewOrbitCamera(camera.Options{
			FovDegrees: cfg.Camera.FovDegrees,
			Near:       cfg.Camera.Near,
			Far:        cfg.Camera.Far,
			Eye:        vec3(cfg.Camera.Eye),
			Target:     vec3(cfg.Camera.Target),
		}),
		Stats:    NewFrameStats(),
		cfg:      cfg,
		renderer: renderer.New(cfg.Graphics.ClearColor),
		shots:    debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "flame", cfg.Debug.ScreenshotFormat),
		log:      logger.Named("engine"),
	}

	src, err := shaders.Load(cfg.Shaders.Dir)
	if err != nil {
		return nil, fmt.Errorf("loading shaders: %w", err)
	}
	if e.programs, err = compilePrograms(src); err != nil {
		return nil, fmt.Errorf("compiling shaders: %w", err)
	}
	if len(src.Overridden) > 0 {
		e.log.Info("using shader overrides", zap.Strings("files", src.Overridden))
	}

	if cfg.Shaders.Watch {
		if e.watcher, err = shaders.Watch(cfg.Shaders.Dir); err != nil {
			e.log.Warn("shader hot reload disabled", zap.Error(err))
		}
	}

	e.scene = scene.New(gpuUploader{}, scene.Options{
		Position: vec3(cfg.Scene.Position),
		Radius:   cfg.Scene.Radius,
	})
	if err := e.scene.Load(e.Controls); err != nil {
		e.Close()
		return nil, fmt.Errorf("loading scene: %w", err)
	}

	return e, nil
}

func vec3(v [3]float32) math.Vec3 {
	return math.V3(v[0], v[1], v[2])
}

func compilePrograms(src shaders.Sources) (map[scene.PassKind]*shader.Program, error) {
	flat, err := shader.NewProgram("flat", src.FlatVert, src.FlatFrag)
	if err != nil {
		return nil, err
	}
	lambert, err := shader.NewProgram("lambert", src.LambertVert, src.LambertFrag)
	if err != nil {
		flat.Delete()
		return nil, err
	}
	checkAttributes(flat, lambert)
	return map[scene.PassKind]*shader.Program{
		scene.PassFlat:    flat,
		scene.PassLambert: lambert,
	}, nil
}

// checkAttributes warns about programs that ignore mesh attributes. The
// flat pass only needs positions; the lambert pass also shades by normal.
func checkAttributes(flat, lambert *shader.Program) []string {
	var missing []string
	if !flat.HasPosition() {
		missing = append(missing, "flat: vs_Pos")
	}
	if !lambert.HasPosition() {
		missing = append(missing, "lambert: vs_Pos")
	}
	if !lambert.HasNormal() {
		missing = append(missing, "lambert: vs_Nor")
	}
	if len(missing) > 0 {
		logger.Warn("shader attributes not used", zap.Strings("attributes", missing))
	}
	return missing
}

// Resize sets the viewport and the camera aspect ratio.
func (e *Engine) Resize(width, height int) {
	e.renderer.SetSize(width, height, e.Camera)
}

// Frame advances the scene by one tick and draws it into the bound framebuffer.
func (e *Engine) Frame() error {
	e.Stats.Tick()
	e.reloadShaders()

	frame, err := e.scene.Tick(e.Controls)
	if err != nil {
		return err
	}

	e.renderer.Clear()
	for _, pass := range frame.Passes {
		prog := e.programs[pass.Kind]
		prog.Use()
		applyUniforms(prog, &e.Controls, frame.Time, pass.Model)

		meshes := make([]renderer.Drawable, len(pass.Meshes))
		for i, m := range pass.Meshes {
			meshes[i] = m
		}
		e.renderer.Render(e.Camera, prog, meshes)
	}

	if e.screenshotPending {
		e.screenshotPending = false
		e.saveScreenshot()
	}
	return nil
}

// applyUniforms pushes the per-frame values. Programs ignore what they
// do not declare.
func applyUniforms(p *shader.Program, c *controls.Controls, time float32, model math.Mat4) {
	p.SetTime(time)
	p.SetFreq(c.Frequency)
	p.SetAmp(c.Amplitude)
	p.SetFlameHeight(c.FlameHeight)
	p.SetGeometryColor(c.NormalizedColor())
	p.SetModelMatrix(model)
}

func (e *Engine) reloadShaders() {
	if e.watcher == nil || !e.watcher.Changed() {
		return
	}
	src, err := shaders.Load(e.cfg.Shaders.Dir)
	if err == nil {
		var programs map[scene.PassKind]*shader.Program
		if programs, err = compilePrograms(src); err == nil {
			e.deletePrograms()
			e.programs = programs
			e.log.Info("shaders reloaded", zap.Strings("files", src.Overridden))
			return
		}
	}
	e.log.Error("shader reload failed, keeping previous programs", zap.Error(err))
}

// LoadScene rebuilds every mesh from the current controls.
func (e *Engine) LoadScene() error {
	return e.scene.Load(e.Controls)
}

// Reset restores the default look and the home camera position.
func (e *Engine) Reset() {
	e.Controls.Reset()
	e.Camera.Reset()
	e.log.Debug("controls reset")
}

// RequestScreenshot saves the next rendered frame.
func (e *Engine) RequestScreenshot() {
	e.screenshotPending = true
}

func (e *Engine) saveScreenshot() {
	w, h := e.renderer.Size()
	path, err := e.shots.CaptureFromPixels(e.renderer.ReadPixels(), w, h)
	if err != nil {
		e.log.Error("screenshot failed", zap.Error(err))
		return
	}
	e.log.Info("screenshot saved", zap.String("path", path))
}

// DrawCalls returns the draws issued by the last frame.
func (e *Engine) DrawCalls() int {
	return e.renderer.DrawCalls()
}

// Close releases meshes, programs and the shader watcher.
func (e *Engine) Close() {
	if e.scene != nil {
		e.scene.Close()
	}
	e.deletePrograms()
	if e.watcher != nil {
		if err := e.watcher.Close(); err != nil {
			e.log.Warn("closing shader watcher", zap.Error(err))
		}
		e.watcher = nil
	}
}

func (e *Engine) deletePrograms() {
	for _, p := range e.programs {
		p.Delete()
	}
	e.programs = nil
}
