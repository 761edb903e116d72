package shader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/flame/pkg/math"
)

type call struct {
	name string
	loc  int32
	val  any
}

// fakeAPI hands out locations for the names in active and records writes.
type fakeAPI struct {
	active  map[string]int32
	calls   []call
	used    []uint32
	deleted []uint32
}

func newFakeAPI(names ...string) *fakeAPI {
	f := &fakeAPI{active: map[string]int32{}}
	for i, n := range names {
		f.active[n] = int32(i)
	}
	return f
}

func (f *fakeAPI) lookup(name string) int32 {
	if loc, ok := f.active[name]; ok {
		return loc
	}
	return -1
}

func (f *fakeAPI) UseProgram(id uint32)                        { f.used = append(f.used, id) }
func (f *fakeAPI) DeleteProgram(id uint32)                     { f.deleted = append(f.deleted, id) }
func (f *fakeAPI) UniformLocation(_ uint32, name string) int32 { return f.lookup(name) }
func (f *fakeAPI) AttribLocation(_ uint32, name string) int32  { return f.lookup(name) }

func (f *fakeAPI) Uniform1f(loc int32, v float32) {
	f.calls = append(f.calls, call{"1f", loc, v})
}

func (f *fakeAPI) Uniform4f(loc int32, v [4]float32) {
	f.calls = append(f.calls, call{"4f", loc, v})
}

func (f *fakeAPI) UniformMatrix4fv(loc int32, m *math.Mat4) {
	f.calls = append(f.calls, call{"mat4", loc, *m})
}

func setAll(p *Program) {
	p.SetTime(3)
	p.SetFreq(2)
	p.SetAmp(4)
	p.SetFlameHeight(5)
	p.SetGeometryColor([4]float32{1, 0.5, 0.25, 0})
	p.SetModelMatrix(math.Identity())
	p.SetViewProjMatrix(math.Translate(math.V3(1, 2, 3)))
}

func TestProgramSettersSkipMissingUniforms(t *testing.T) {
	api := newFakeAPI()
	p := Wrap(api, "empty", 7)

	setAll(p)

	assert.Empty(t, api.calls)
	assert.False(t, p.HasPosition())
	assert.False(t, p.HasNormal())
}

func TestProgramSettersWriteActiveUniforms(t *testing.T) {
	api := newFakeAPI("vs_Pos", "vs_Nor", UniformTime, UniformFreq, UniformAmp,
		UniformFlameHeight, UniformColor, UniformModel, UniformViewProj)
	p := Wrap(api, "lambert", 3)

	p.Use()
	setAll(p)

	require.Equal(t, []uint32{3}, api.used)
	require.Len(t, api.calls, 7)
	assert.Equal(t, call{"1f", 2, float32(3)}, api.calls[0])
	assert.Equal(t, call{"1f", 3, float32(2)}, api.calls[1])
	assert.Equal(t, call{"1f", 4, float32(4)}, api.calls[2])
	assert.Equal(t, call{"1f", 5, float32(5)}, api.calls[3])
	assert.Equal(t, call{"4f", 6, [4]float32{1, 0.5, 0.25, 0}}, api.calls[4])
	assert.Equal(t, call{"mat4", 7, math.Identity()}, api.calls[5])
	assert.Equal(t, call{"mat4", 8, math.Translate(math.V3(1, 2, 3))}, api.calls[6])
	assert.True(t, p.HasPosition())
	assert.True(t, p.HasNormal())
}

func TestProgramPartialUniforms(t *testing.T) {
	// The flat shader only reads the color.
	api := newFakeAPI("vs_Pos", UniformColor)
	p := Wrap(api, "flat", 1)

	setAll(p)

	require.Len(t, api.calls, 1)
	assert.Equal(t, "4f", api.calls[0].name)
	assert.True(t, p.HasPosition())
	assert.False(t, p.HasNormal())
}

func TestProgramDeleteOnce(t *testing.T) {
	api := newFakeAPI()
	p := Wrap(api, "flat", 9)

	p.Delete()
	p.Delete()

	assert.Equal(t, []uint32{9}, api.deleted)
	assert.Zero(t, p.ID())
}

func TestInfoLog(t *testing.T) {
	assert.Equal(t, "(no info log)", infoLog(0, func([]uint8) { t.Fatal("read called") }))

	msg := "0:3: error\n\x00"
	got := infoLog(int32(len(msg)), func(buf []uint8) {
		copy(buf, msg)
	})
	assert.Equal(t, "0:3: error", got)
}
