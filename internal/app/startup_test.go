package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/flame/internal/engine/shaders"
)

func TestStartupAlertOnlyForMissingContext(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, shaders.LambertVertFile), 0755))
	_, loadErr := shaders.Load(dir)
	require.Error(t, loadErr)

	tests := []struct {
		name  string
		err   error
		alert bool
	}{
		{"gl init", NoContext(errors.New("gl: missing entry point")), true},
		{"wrapped context", fmt.Errorf("viewer: %w", NoContext(errors.New("no GL 4.1 context"))), true},
		{"unreadable shader dir", fmt.Errorf("loading shaders: %w", loadErr), false},
		{"shader compile", fmt.Errorf("compiling shaders: %w", errors.New("lambert: vertex shader: compile: 0:12: syntax error")), false},
		{"scene upload", fmt.Errorf("loading scene: %w", errors.New("icosphere: out of memory")), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, ok := StartupAlert(tt.err)
			assert.Equal(t, tt.alert, ok)
			assert.Equal(t, tt.alert, errors.Is(tt.err, ErrNoOpenGL))
			if tt.alert {
				assert.Equal(t, NoOpenGLMessage, msg)
			} else {
				assert.Empty(t, msg)
			}
		})
	}
}
