package app

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/flame/internal/logger"
)

// FrameStats counts frames per wall-clock second.
type FrameStats struct {
	now func() time.Time

	windowStart time.Time
	lastFrame   time.Time
	frames      int

	fps       float64
	frameTime time.Duration
}

// NewFrameStats starts counting from now.
func NewFrameStats() *FrameStats {
	return newFrameStats(time.Now)
}

func newFrameStats(now func() time.Time) *FrameStats {
	t := now()
	return &FrameStats{now: now, windowStart: t, lastFrame: t}
}

// Tick records one frame. It returns true when a second has passed and the
// FPS value was refreshed.
func (s *FrameStats) Tick() bool {
	t := s.now()
	s.frameTime = t.Sub(s.lastFrame)
	s.lastFrame = t
	s.frames++

	elapsed := t.Sub(s.windowStart)
	if elapsed < time.Second {
		return false
	}
	s.fps = float64(s.frames) / elapsed.Seconds()
	s.frames = 0
	s.windowStart = t

	logger.Debug("fps",
		zap.Float64("fps", s.fps),
		zap.Duration("frame_time", s.frameTime),
	)
	return true
}

// FPS returns the rate measured over the last full second.
func (s *FrameStats) FPS() float64 { return s.fps }

// FrameTime returns the duration of the last frame.
func (s *FrameStats) FrameTime() time.Duration { return s.frameTime }
