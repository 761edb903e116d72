// Package ui provides the ImGui window and the demo's control widgets.
package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
)

// Backend wraps the ImGui SDL backend. The backend owns the window and the
// OpenGL context; both exist once NewBackend returns.
type Backend struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
}

// NewBackend creates the window with a background color used behind all panels.
func NewBackend(title string, width, height int, bg [4]float32) (*Backend, error) {
	b := &Backend{}

	var err error
	b.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	b.backend.SetAfterCreateContextHook(func() {
		imgui.StyleColorsDark()
		imgui.CurrentIO().SetIniFilename("")
	})

	b.backend.SetBgColor(imgui.NewVec4(bg[0], bg[1], bg[2], bg[3]))
	b.backend.CreateWindow(title, width, height)

	return b, nil
}

// Run starts the main render loop. It returns when the window closes.
func (b *Backend) Run(renderFunc func()) {
	b.backend.Run(renderFunc)
}

// SetWindowTitle updates the window title.
func (b *Backend) SetWindowTitle(title string) {
	b.backend.SetWindowTitle(title)
}

// Close asks the loop to stop after the current frame.
func (b *Backend) Close() {
	b.backend.SetShouldClose(true)
}

// Viewport returns the main viewport work area.
func Viewport() (pos, size imgui.Vec2) {
	viewport := imgui.MainViewport()
	return viewport.WorkPos(), viewport.WorkSize()
}

// IsKeyPressed checks if a key was pressed this frame.
func IsKeyPressed(key imgui.Key) bool {
	return imgui.IsKeyChordPressed(imgui.KeyChord(key))
}
