// Package scene owns the demo's meshes and frame counter and decides what
// each frame draws.
package scene

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/flame/internal/controls"
	"github.com/Faultbox/flame/internal/geometry"
	"github.com/Faultbox/flame/internal/logger"
	"github.com/Faultbox/flame/pkg/math"
)

// Drawable is a mesh resident on the GPU.
type Drawable interface {
	VertexArray() uint32
	IndexCount() int32
	VertexCount() int
	Release()
}

// Uploader turns CPU geometry into drawables.
type Uploader interface {
	Upload(m *geometry.Mesh) (Drawable, error)
}

// PassKind selects the shader program for a pass.
type PassKind int

const (
	PassFlat PassKind = iota
	PassLambert
)

func (k PassKind) String() string {
	switch k {
	case PassFlat:
		return "flat"
	case PassLambert:
		return "lambert"
	}
	return fmt.Sprintf("PassKind(%d)", int(k))
}

// Pass is one program applied to a list of meshes.
type Pass struct {
	Kind   PassKind
	Model  math.Mat4
	Meshes []Drawable
}

// Frame is everything one tick asks the renderer to draw, in order.
type Frame struct {
	Time   float32
	Passes []Pass
}

// Options places the shapes. Meshes are built around the origin so the
// displacement runs in object space; Position moves the lambert pass.
type Options struct {
	Position math.Vec3
	Radius   float32
}

// Scene is the application state between frames.
type Scene struct {
	up   Uploader
	opts Options
	log  *zap.Logger

	time  uint64
	level int32

	icosphere Drawable
	cube      Drawable
	square    Drawable

	regenerations int
	failedLevel   int32
}

// New creates an empty scene. Meshes are built by Load or the first Tick.
func New(up Uploader, opts Options) *Scene {
	if opts.Radius <= 0 {
		opts.Radius = 1
	}
	return &Scene{
		up:          up,
		opts:        opts,
		log:         logger.Named("scene"),
		level:       -1,
		failedLevel: -1,
	}
}

// Load rebuilds every mesh from c. Old meshes are released only after the
// new ones upload.
func (s *Scene) Load(c controls.Controls) error {
	level := clampLevel(c.Tesselations)

	ico, err := s.up.Upload(geometry.Icosphere(math.Vec3{}, s.opts.Radius, int(level)))
	if err != nil {
		return fmt.Errorf("icosphere: %w", err)
	}
	cube, err := s.up.Upload(geometry.Cube(math.Vec3{}))
	if err != nil {
		ico.Release()
		return fmt.Errorf("cube: %w", err)
	}
	square, err := s.up.Upload(geometry.Square(math.Vec3{}))
	if err != nil {
		ico.Release()
		cube.Release()
		return fmt.Errorf("square: %w", err)
	}

	s.release()
	s.icosphere, s.cube, s.square = ico, cube, square
	s.level = level
	s.failedLevel = -1

	s.log.Info("scene loaded",
		zap.Int32("tesselations", level),
		zap.Int("vertices", ico.VertexCount()),
	)
	return nil
}

// Tick advances the frame counter, regenerates the icosphere when the
// tessellation level changed, and returns the passes to draw. A failed
// regeneration keeps the current icosphere and is retried on the next
// tick. Only the initial load returns an error.
func (s *Scene) Tick(c controls.Controls) (Frame, error) {
	if s.square == nil {
		if err := s.Load(c); err != nil {
			return Frame{}, err
		}
	}

	s.time++

	if level := clampLevel(c.Tesselations); level != s.level {
		if err := s.regenerate(level); err != nil {
			if level != s.failedLevel {
				s.log.Error("keeping current icosphere", zap.Error(err))
			}
			s.failedLevel = level
		}
	} else {
		s.failedLevel = -1
	}

	shape := s.icosphere
	if c.ShowCube {
		shape = s.cube
	}
	return Frame{
		Time: float32(s.time),
		Passes: []Pass{
			{Kind: PassFlat, Model: math.Identity(), Meshes: []Drawable{s.square}},
			{Kind: PassLambert, Model: math.Translate(s.opts.Position), Meshes: []Drawable{shape}},
		},
	}, nil
}

func (s *Scene) regenerate(level int32) error {
	ico, err := s.up.Upload(geometry.Icosphere(math.Vec3{}, s.opts.Radius, int(level)))
	if err != nil {
		return fmt.Errorf("regenerating icosphere at level %d: %w", level, err)
	}
	if s.icosphere != nil {
		s.icosphere.Release()
	}
	s.icosphere = ico
	s.regenerations++

	s.log.Debug("icosphere regenerated",
		zap.Int32("from", s.level),
		zap.Int32("to", level),
		zap.Int("vertices", ico.VertexCount()),
	)
	s.level = level
	s.failedLevel = -1
	return nil
}

// RegenerationFailed reports whether the last tick could not build the
// requested tessellation level.
func (s *Scene) RegenerationFailed() bool {
	return s.failedLevel >= 0
}

// Time returns the number of ticks so far.
func (s *Scene) Time() float32 { return float32(s.time) }

// Level returns the subdivision level of the current icosphere, or -1
// before the first load.
func (s *Scene) Level() int32 { return s.level }

// Regenerations counts icosphere rebuilds caused by tessellation changes.
func (s *Scene) Regenerations() int { return s.regenerations }

// Icosphere returns the current icosphere mesh.
func (s *Scene) Icosphere() Drawable { return s.icosphere }

// Close releases all meshes.
func (s *Scene) Close() {
	s.release()
	s.level = -1
}

func (s *Scene) release() {
	for _, d := range []*Drawable{&s.icosphere, &s.cube, &s.square} {
		if *d != nil {
			(*d).Release()
			*d = nil
		}
	}
}

func clampLevel(l int32) int32 {
	return min(max(l, controls.MinTesselations), controls.MaxTesselations)
}
