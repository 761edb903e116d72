package controls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyActionsReferToBindings(t *testing.T) {
	for key, a := range keyActions {
		if a.Command != CommandNudge {
			continue
		}
		_, ok := Lookup(a.Binding)
		assert.True(t, ok, "key %s names unknown binding %q", key, a.Binding)
		assert.NotZero(t, a.Steps, key)
	}
}

func TestKeyActionApply(t *testing.T) {
	tests := []struct {
		key    string
		verify func(t *testing.T, c Controls)
	}{
		{"Up", func(t *testing.T, c Controls) { assert.Equal(t, int32(6), c.Tesselations) }},
		{"Down", func(t *testing.T, c Controls) { assert.Equal(t, int32(4), c.Tesselations) }},
		{"F", func(t *testing.T, c Controls) { assert.Equal(t, float32(2), c.Frequency) }},
		{"A", func(t *testing.T, c Controls) { assert.Equal(t, float32(2), c.Amplitude) }},
		{"H", func(t *testing.T, c Controls) { assert.InDelta(t, 1.1, c.FlameHeight, 1e-6) }},
		{"C", func(t *testing.T, c Controls) { assert.True(t, c.ShowCube) }},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			a, ok := KeyActionFor(tt.key)
			require.True(t, ok)

			c := Default()
			require.True(t, a.Apply(&c))
			tt.verify(t, c)
		})
	}
}

func TestKeyActionLowerBound(t *testing.T) {
	a, _ := KeyActionFor("V")
	c := Default()
	a.Apply(&c)
	assert.Equal(t, float32(1), c.Frequency)
}

func TestKeyCommands(t *testing.T) {
	for key, want := range map[string]Command{
		"L":      CommandLoadScene,
		"R":      CommandReset,
		"F12":    CommandScreenshot,
		"Escape": CommandQuit,
	} {
		a, ok := KeyActionFor(key)
		require.True(t, ok, key)
		assert.Equal(t, want, a.Command, key)

		c := Default()
		assert.False(t, a.Apply(&c), key)
		assert.Equal(t, Default(), c, key)
	}

	_, ok := KeyActionFor("Q")
	assert.False(t, ok)
}
