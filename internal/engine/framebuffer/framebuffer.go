// Package framebuffer provides an offscreen render target whose color
// attachment can be shown as a texture in the GUI.
package framebuffer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Target is a framebuffer with an RGBA8 color texture and a depth renderbuffer.
type Target struct {
	fbo    uint32
	color  uint32
	depth  uint32
	width  int32
	height int32
}

// New creates a target of at least 1x1 pixels.
func New(width, height int32) (*Target, error) {
	t := &Target{}
	gl.GenFramebuffers(1, &t.fbo)
	gl.GenTextures(1, &t.color)
	gl.GenRenderbuffers(1, &t.depth)

	t.allocate(width, height)

	gl.BindFramebuffer(gl.FRAMEBUFFER, t.fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, t.color, 0)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, t.depth)
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	if status != gl.FRAMEBUFFER_COMPLETE {
		t.Destroy()
		return nil, fmt.Errorf("framebuffer incomplete: 0x%x", status)
	}
	return t, nil
}

// allocate (re)sizes both attachments.
func (t *Target) allocate(width, height int32) {
	t.width, t.height = max(width, 1), max(height, 1)

	gl.BindTexture(gl.TEXTURE_2D, t.color)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, t.width, t.height, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.BindRenderbuffer(gl.RENDERBUFFER, t.depth)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, t.width, t.height)
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)
}

// Bind makes the target current and returns a function restoring the
// previous framebuffer and viewport.
func (t *Target) Bind() (restore func()) {
	var prevFBO int32
	var prevViewport [4]int32
	gl.GetIntegerv(gl.FRAMEBUFFER_BINDING, &prevFBO)
	gl.GetIntegerv(gl.VIEWPORT, &prevViewport[0])

	gl.BindFramebuffer(gl.FRAMEBUFFER, t.fbo)
	gl.Viewport(0, 0, t.width, t.height)

	return func() {
		gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(prevFBO))
		gl.Viewport(prevViewport[0], prevViewport[1], prevViewport[2], prevViewport[3])
	}
}

// Resize reallocates the attachments when the size changed.
func (t *Target) Resize(width, height int32) {
	if max(width, 1) == t.width && max(height, 1) == t.height {
		return
	}
	t.allocate(width, height)
}

// Texture returns the color attachment.
func (t *Target) Texture() uint32 { return t.color }

// Size returns the attachment size in pixels.
func (t *Target) Size() (width, height int32) { return t.width, t.height }

// Destroy releases all GL objects.
func (t *Target) Destroy() {
	if t.fbo != 0 {
		gl.DeleteFramebuffers(1, &t.fbo)
		t.fbo = 0
	}
	if t.color != 0 {
		gl.DeleteTextures(1, &t.color)
		t.color = 0
	}
	if t.depth != 0 {
		gl.DeleteRenderbuffers(1, &t.depth)
		t.depth = 0
	}
}
