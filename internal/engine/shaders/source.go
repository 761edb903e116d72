package shaders

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File names looked up in an override directory.
const (
	FlatVertFile    = "flat.vert"
	FlatFragFile    = "flat.frag"
	LambertVertFile = "lambert.vert"
	LambertFragFile = "lambert.frag"
)

// Sources holds the two vertex/fragment pairs the demo compiles.
type Sources struct {
	FlatVert    string
	FlatFrag    string
	LambertVert string
	LambertFrag string

	// Overridden lists the files read from disk instead of the embedded copy.
	Overridden []string
}

// Embedded returns the built-in sources.
func Embedded() Sources {
	return Sources{
		FlatVert:    FlatVertexShader,
		FlatFrag:    FlatFragmentShader,
		LambertVert: LambertVertexShader,
		LambertFrag: LambertFragmentShader,
	}
}

// Load reads sources from dir, falling back to the embedded copy for each
// file that is missing. An empty dir returns the embedded sources.
func Load(dir string) (Sources, error) {
	src := Embedded()
	if dir == "" {
		return src, nil
	}

	targets := []struct {
		name string
		dst  *string
	}{
		{FlatVertFile, &src.FlatVert},
		{FlatFragFile, &src.FlatFrag},
		{LambertVertFile, &src.LambertVert},
		{LambertFragFile, &src.LambertFrag},
	}
	for _, t := range targets {
		data, err := os.ReadFile(filepath.Join(dir, t.name))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Sources{}, fmt.Errorf("reading %s: %w", t.name, err)
		}
		*t.dst = string(data)
		src.Overridden = append(src.Overridden, t.name)
	}
	return src, nil
}

// IsShaderFile reports whether name is one of the files Load looks at.
func IsShaderFile(name string) bool {
	switch filepath.Base(name) {
	case FlatVertFile, FlatFragFile, LambertVertFile, LambertFragFile:
		return true
	}
	return false
}
