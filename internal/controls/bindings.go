package controls

import "github.com/chewxy/math32"

// Kind is the widget type a binding is edited with.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindColor
	KindToggle
)

// Binding ties one named control to its field and bounds.
// Exactly one accessor matching Kind is set.
type Binding struct {
	Name   string
	Kind   Kind
	Min    float32
	Max    float32
	Step   float32
	Format string // printf format for slider labels

	Int    func(*Controls) *int32
	Float  func(*Controls) *float32
	Color  func(*Controls) *[4]float32
	Toggle func(*Controls) *bool
}

// Bindings returns the fixed list of editable controls in display order.
func Bindings() []Binding {
	return []Binding{
		{
			Name: "tesselations", Kind: KindInt,
			Min: MinTesselations, Max: MaxTesselations, Step: 1, Format: "%d",
			Int: func(c *Controls) *int32 { return &c.Tesselations },
		},
		{
			Name: "color", Kind: KindColor,
			Min: 0, Max: 255, Step: 1,
			Color: func(c *Controls) *[4]float32 { return &c.Color },
		},
		{
			Name: "frequency", Kind: KindFloat,
			Min: 1, Max: 10, Step: 1, Format: "%.0f",
			Float: func(c *Controls) *float32 { return &c.Frequency },
		},
		{
			Name: "amplitude", Kind: KindFloat,
			Min: 1, Max: 10, Step: 1, Format: "%.0f",
			Float: func(c *Controls) *float32 { return &c.Amplitude },
		},
		{
			Name: "flame height", Kind: KindFloat,
			Min: 1, Max: 10, Step: 0.01, Format: "%.2f",
			Float: func(c *Controls) *float32 { return &c.FlameHeight },
		},
		{
			Name: "cube", Kind: KindToggle,
			Toggle: func(c *Controls) *bool { return &c.ShowCube },
		},
	}
}

// Lookup returns the binding with the given name.
func Lookup(name string) (Binding, bool) {
	for _, b := range Bindings() {
		if b.Name == name {
			return b, true
		}
	}
	return Binding{}, false
}

// Nudge moves the control by steps*Step and clamps the result. Toggles
// flip on any non-zero step; colors scale every RGB channel together.
func (b Binding) Nudge(c *Controls, steps int) {
	if steps == 0 {
		return
	}
	delta := float32(steps) * b.Step
	switch b.Kind {
	case KindInt:
		v := b.Int(c)
		*v += int32(delta)
	case KindFloat:
		v := b.Float(c)
		*v = snap(*v+delta, b.Step)
	case KindColor:
		v := b.Color(c)
		for i := 0; i < 3; i++ {
			v[i] += delta
		}
	case KindToggle:
		v := b.Toggle(c)
		*v = !*v
	}
	b.clamp(c)
}

// Snap rounds a float control to a multiple of Step within the bounds.
// Sliders call it after a drag so edits land on the same grid as nudges.
func (b Binding) Snap(c *Controls) {
	if b.Kind == KindFloat {
		v := b.Float(c)
		*v = snap(*v, b.Step)
	}
	b.clamp(c)
}

func (b Binding) clamp(c *Controls) {
	switch b.Kind {
	case KindInt:
		v := b.Int(c)
		*v = int32(clamp(float32(*v), b.Min, b.Max))
	case KindFloat:
		v := b.Float(c)
		*v = clamp(*v, b.Min, b.Max)
	case KindColor:
		v := b.Color(c)
		for i := range v {
			v[i] = clamp(v[i], b.Min, b.Max)
		}
	}
}

func clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, v))
}

// snap rounds v to the nearest multiple of step to stop float drift from
// repeated nudges.
func snap(v, step float32) float32 {
	if step <= 0 {
		return v
	}
	return math32.Floor(v/step+0.5) * step
}
