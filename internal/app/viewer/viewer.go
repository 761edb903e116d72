// Package viewer is the GUI frontend: an ImGui controls panel beside the
// scene rendered into an offscreen target.
package viewer

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/flame/internal/app"
	"github.com/Faultbox/flame/internal/config"
	"github.com/Faultbox/flame/internal/engine/framebuffer"
	"github.com/Faultbox/flame/internal/engine/ui"
	"github.com/Faultbox/flame/internal/logger"
)

const panelWidth = 320

// Viewer shows the controls panel next to a scene view rendered offscreen.
type Viewer struct {
	backend *ui.Backend
	engine  *app.Engine
	target  *framebuffer.Target
	cfg     *config.Config
	log     *zap.Logger

	lastMouse imgui.Vec2
	frameErr  error
	shownFPS  float64
}

// New opens the GUI window. If the GL context is unusable it shows a
// blocking alert before returning the error.
func New(cfg *config.Config) (*Viewer, error) {
	b, err := ui.NewBackend("Flame", cfg.Graphics.Width, cfg.Graphics.Height, cfg.Graphics.ClearColor)
	if err != nil {
		return nil, startupFailed(app.NoContext(err))
	}

	e, err := app.NewEngine(cfg)
	if err != nil {
		return nil, startupFailed(err)
	}

	target, err := framebuffer.New(int32(cfg.Graphics.Width-panelWidth), int32(cfg.Graphics.Height))
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("scene view: %w", err)
	}

	return &Viewer{
		backend: b,
		engine:  e,
		target:  target,
		cfg:     cfg,
		log:     logger.Named("viewer"),
	}, nil
}

// startupFailed alerts for a missing GL context. The caller logs err.
func startupFailed(err error) error {
	if msg, ok := app.StartupAlert(err); ok {
		ui.Alert("Flame", msg)
	}
	return err
}

// Run blocks until the window is closed.
func (v *Viewer) Run() {
	v.log.Info("starting viewer loop")
	v.backend.Run(v.render)
}

// Close releases GPU resources.
func (v *Viewer) Close() {
	v.target.Destroy()
	v.engine.Close()
}

func (v *Viewer) render() {
	if ui.IsKeyPressed(imgui.KeyF12) {
		v.engine.RequestScreenshot()
	}
	if ui.IsKeyPressed(imgui.KeyEscape) {
		v.backend.Close()
	}
	if fps := v.engine.Stats.FPS(); fps != v.shownFPS {
		v.shownFPS = fps
		v.backend.SetWindowTitle(fmt.Sprintf("Flame - %.0f FPS", fps))
	}

	pos, size := ui.Viewport()
	flags := imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse

	imgui.SetNextWindowPos(pos)
	imgui.SetNextWindowSize(imgui.NewVec2(panelWidth, size.Y))
	if imgui.BeginV("Controls", nil, flags) {
		v.controlsPanel()
	}
	imgui.End()

	imgui.SetNextWindowPos(imgui.NewVec2(pos.X+panelWidth, pos.Y))
	imgui.SetNextWindowSize(imgui.NewVec2(size.X-panelWidth, size.Y))
	if imgui.BeginV("Scene", nil, flags|imgui.WindowFlagsNoScrollbar) {
		v.sceneView()
	}
	imgui.End()
}

func (v *Viewer) controlsPanel() {
	act := ui.ControlsPanel(&v.engine.Controls)
	if act.LoadScene {
		if err := v.engine.LoadScene(); err != nil {
			v.log.Error("load scene failed", zap.Error(err))
		}
	}
	if act.Reset {
		v.engine.Reset()
	}
	if act.Screenshot {
		v.engine.RequestScreenshot()
	}

	if v.cfg.Debug.ShowFPS {
		imgui.Separator()
		ui.StatsLine(ui.Stats{
			FPS:       v.engine.Stats.FPS(),
			FrameTime: v.engine.Stats.FrameTime(),
			DrawCalls: v.engine.DrawCalls(),
		})
	}
	imgui.TextDisabled("Drag to orbit, scroll to zoom, F12 screenshot, Esc quit")
}

func (v *Viewer) sceneView() {
	avail := imgui.ContentRegionAvail()
	w, h := int32(avail.X), int32(avail.Y)
	if w < 1 || h < 1 {
		return
	}

	v.target.Resize(w, h)
	tw, th := v.target.Size()
	restore := v.target.Bind()
	v.engine.Resize(int(tw), int(th))
	err := v.engine.Frame()
	restore()

	// Log a failing frame once instead of every tick.
	if err != nil && (v.frameErr == nil || err.Error() != v.frameErr.Error()) {
		v.log.Error("frame failed", zap.Error(err))
	}
	v.frameErr = err

	// OpenGL textures start at the bottom, so flip V.
	texRef := imgui.NewTextureRefTextureID(imgui.TextureID(v.target.Texture()))
	imgui.ImageWithBgV(
		*texRef,
		imgui.NewVec2(avail.X, avail.Y),
		imgui.NewVec2(0, 1),
		imgui.NewVec2(1, 0),
		imgui.NewVec4(0, 0, 0, 1),
		imgui.NewVec4(1, 1, 1, 1),
	)

	if imgui.IsItemHovered() {
		mouse := imgui.MousePos()
		if imgui.IsMouseDragging(imgui.MouseButtonLeft) {
			v.engine.Camera.HandleDrag(mouse.X-v.lastMouse.X, mouse.Y-v.lastMouse.Y)
		}
		v.lastMouse = mouse

		if wheel := imgui.CurrentIO().MouseWheel(); wheel != 0 {
			v.engine.Camera.HandleZoom(wheel)
		}
	}
}
