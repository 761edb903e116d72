// Package standalone drives the demo in a plain SDL window with keyboard
// controls.
package standalone

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/flame/internal/app"
	"github.com/Faultbox/flame/internal/config"
	"github.com/Faultbox/flame/internal/controls"
	"github.com/Faultbox/flame/internal/engine/input"
	"github.com/Faultbox/flame/internal/engine/window"
	"github.com/Faultbox/flame/internal/logger"
)

// Standalone drives the engine in a plain SDL window with keyboard controls.
type Standalone struct {
	window *window.Window
	input  *input.Input
	engine *app.Engine
	log    *zap.Logger

	running  bool
	shownFPS float64
}

// New opens the window. On a missing or unusable GL context it
// shows an SDL message box before returning the error.
func New(cfg *config.Config) (*Standalone, error) {
	win, err := window.New(window.Config{
		Title:      "Flame",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, startupFailed(app.NoContext(err))
	}

	e, err := app.NewEngine(cfg)
	if err != nil {
		win.Close()
		return nil, startupFailed(err)
	}

	return &Standalone{
		window: win,
		input:  input.New(),
		engine: e,
		log:    logger.Named("standalone"),
	}, nil
}

// startupFailed alerts for a missing GL context. The caller logs err.
func startupFailed(err error) error {
	if msg, ok := app.StartupAlert(err); ok {
		window.ShowError("Flame", msg)
	}
	return err
}

// Run drives frames until the window closes or Escape is pressed.
func (s *Standalone) Run() error {
	s.engine.Resize(s.window.DrawableSize())
	s.running = true
	s.log.Info("starting frame loop")

	for s.running {
		if s.input.Update() {
			break
		}
		for _, ev := range s.input.Events() {
			s.handle(ev)
		}

		if err := s.engine.Frame(); err != nil {
			return fmt.Errorf("frame: %w", err)
		}
		s.window.SwapBuffers()

		if fps := s.engine.Stats.FPS(); fps != s.shownFPS {
			s.shownFPS = fps
			s.window.SetTitle(fmt.Sprintf("Flame - %.0f FPS", fps))
		}
	}
	return nil
}

func (s *Standalone) handle(ev input.Event) {
	switch ev.Type {
	case input.EventWindowResize:
		s.engine.Resize(s.window.DrawableSize())
	case input.EventMouseDrag:
		s.engine.Camera.HandleDrag(ev.DeltaX, ev.DeltaY)
	case input.EventMouseWheel:
		s.engine.Camera.HandleZoom(ev.WheelY)
	case input.EventKeyDown:
		s.key(ev)
	}
}

func (s *Standalone) key(ev input.Event) {
	a, ok := controls.KeyActionFor(ev.Key)
	if !ok {
		return
	}
	switch a.Command {
	case controls.CommandNudge:
		a.Apply(&s.engine.Controls)
		s.log.Debug("control nudged", zap.String("key", ev.Key), zap.String("binding", a.Binding))
	case controls.CommandLoadScene:
		if ev.Repeat {
			return
		}
		if err := s.engine.LoadScene(); err != nil {
			s.log.Error("load scene failed", zap.Error(err))
		}
	case controls.CommandReset:
		s.engine.Reset()
	case controls.CommandScreenshot:
		if !ev.Repeat {
			s.engine.RequestScreenshot()
		}
	case controls.CommandQuit:
		s.running = false
	}
}

// Close releases GPU resources and the window.
func (s *Standalone) Close() {
	s.engine.Close()
	s.window.Close()
}
