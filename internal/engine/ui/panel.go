package ui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Faultbox/flame/internal/controls"
)

// Actions are the buttons clicked during one frame.
type Actions struct {
	LoadScene  bool
	Reset      bool
	Screenshot bool
}

// Stats is the frame timing shown under the controls.
type Stats struct {
	FPS       float64
	FrameTime time.Duration
	DrawCalls int
}

var labelCase = cases.Title(language.English)

// label turns a binding name such as "flame height" into "Flame Height".
func label(name string) string {
	return labelCase.String(name)
}

// ControlsPanel draws one widget per binding, in binding order, followed by
// the scene buttons. It edits c in place.
func ControlsPanel(c *controls.Controls) Actions {
	var act Actions

	for _, b := range controls.Bindings() {
		name := label(b.Name)
		switch b.Kind {
		case controls.KindInt:
			imgui.SliderIntV(name, b.Int(c), int32(b.Min), int32(b.Max), b.Format, imgui.SliderFlagsAlwaysClamp)
			if b.Name == "tesselations" {
				act.LoadScene = imgui.Button("Load Scene")
			}
		case controls.KindFloat:
			if imgui.SliderFloatV(name, b.Float(c), b.Min, b.Max, b.Format, imgui.SliderFlagsAlwaysClamp) {
				b.Snap(c)
			}
		case controls.KindColor:
			col := b.Color(c)
			scaled := [4]float32{col[0] / b.Max, col[1] / b.Max, col[2] / b.Max, col[3] / b.Max}
			if imgui.ColorEdit4(name, &scaled) {
				for i := range col {
					col[i] = scaled[i] * b.Max
				}
			}
		case controls.KindToggle:
			imgui.Checkbox(name, b.Toggle(c))
		}
	}

	imgui.Separator()
	act.Reset = imgui.Button("Reset")
	imgui.SameLine()
	act.Screenshot = imgui.Button("Screenshot")

	return act
}

// StatsLine draws the frame counter readout.
func StatsLine(s Stats) {
	imgui.Text(fmt.Sprintf("%.0f FPS  %.2f ms  %d draws", s.FPS, float64(s.FrameTime.Microseconds())/1000, s.DrawCalls))
}
