// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/flame/internal/engine/shader"
	"github.com/Faultbox/flame/internal/logger"
	"github.com/Faultbox/flame/pkg/math"
)

// Drawable is an uploaded mesh.
type Drawable interface {
	VertexArray() uint32
	IndexCount() int32
}

// ViewProjector supplies the combined view-projection matrix.
type ViewProjector interface {
	ViewProjection() math.Mat4
}

// AspectReceiver is told about viewport changes.
type AspectReceiver interface {
	SetAspectRatio(aspect float32)
	UpdateProjectionMatrix()
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	clearColor [4]float32
	width      int
	height     int
	draws      int
	log        *zap.Logger
}

// Init loads the OpenGL function pointers for the current context. It fails
// when the driver does not provide a 4.1 core profile.
func Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	return nil
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER Init on the thread that owns the context.
func New(clearColor [4]float32) *Renderer {
	r := &Renderer{
		clearColor: clearColor,
		log:        logger.Named("renderer"),
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)

	return r
}

// Clear clears color and depth.
func (r *Renderer) Clear() {
	c := r.clearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	r.draws = 0
}

// Render makes prog current, uploads the camera's view-projection and
// draws each mesh in order with one indexed draw call.
func (r *Renderer) Render(cam ViewProjector, prog *shader.Program, meshes []Drawable) {
	prog.Use()
	prog.SetViewProjMatrix(cam.ViewProjection())

	for _, m := range meshes {
		if m.IndexCount() == 0 {
			continue
		}
		gl.BindVertexArray(m.VertexArray())
		gl.DrawElements(gl.TRIANGLES, m.IndexCount(), gl.UNSIGNED_INT, nil)
		r.draws++
	}
	gl.BindVertexArray(0)
}

// DrawCalls returns the number of draws issued since the last Clear.
func (r *Renderer) DrawCalls() int {
	return r.draws
}

// SetSize resizes the viewport and passes the new aspect ratio to cam.
func (r *Renderer) SetSize(width, height int, cam AspectReceiver) {
	if width < 1 || height < 1 {
		return
	}
	if width == r.width && height == r.height {
		return
	}
	r.width, r.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))

	if cam != nil {
		cam.SetAspectRatio(float32(width) / float32(height))
		cam.UpdateProjectionMatrix()
	}
	r.log.Debug("viewport resized", zap.Int("width", width), zap.Int("height", height))
}

// Size returns the current viewport size.
func (r *Renderer) Size() (width, height int) {
	return r.width, r.height
}

// ReadPixels reads the bound framebuffer as RGBA rows, bottom row first.
func (r *Renderer) ReadPixels() []byte {
	pixels := make([]byte, r.width*r.height*4)
	if len(pixels) == 0 {
		return pixels
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(r.width), int32(r.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}
