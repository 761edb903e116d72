package debug

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

// twoRows is a 1x2 image as OpenGL returns it: red bottom row, blue top row.
var twoRows = []byte{
	255, 0, 0, 255,
	0, 0, 255, 255,
}

func TestFlipRGBA(t *testing.T) {
	img, err := FlipRGBA(twoRows, 1, 2)
	require.NoError(t, err)

	assert.Equal(t, color.RGBA{0, 0, 255, 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(0, 1))
}

func TestFlipRGBARejectsBadInput(t *testing.T) {
	_, err := FlipRGBA(twoRows, 2, 2)
	assert.Error(t, err)

	_, err = FlipRGBA(nil, 0, 0)
	assert.Error(t, err)
}

func fixedClock() time.Time {
	return time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
}

func TestCaptureFormats(t *testing.T) {
	tests := []struct {
		format string
		ext    string
		decode func(f *os.File) (image.Image, error)
	}{
		{"png", ".png", func(f *os.File) (image.Image, error) { return png.Decode(f) }},
		{"bmp", ".bmp", func(f *os.File) (image.Image, error) { return bmp.Decode(f) }},
		{"gif", ".png", func(f *os.File) (image.Image, error) { return png.Decode(f) }},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "shots")
			sc := NewScreenshotCapture(dir, "flame", tt.format)
			sc.now = fixedClock

			path, err := sc.CaptureFromPixels(twoRows, 1, 2)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, "flame_2024-03-01_12-30-00.000"+tt.ext), path)

			f, err := os.Open(path)
			require.NoError(t, err)
			defer f.Close()

			img, err := tt.decode(f)
			require.NoError(t, err)
			r, _, b, _ := img.At(0, 0).RGBA()
			assert.Zero(t, r)
			assert.NotZero(t, b, "top row should be the last row read from GL")
		})
	}
}

func TestCaptureSizeMismatch(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "flame", "png")
	_, err := sc.CaptureFromPixels(twoRows[:4], 1, 2)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "mismatch"))
}
