package controls

// Command is what a key press asks the frontend to do.
type Command int

const (
	CommandNone Command = iota
	CommandNudge
	CommandLoadScene
	CommandReset
	CommandScreenshot
	CommandQuit
)

// KeyAction is the effect of one key. Nudge actions name a binding.
type KeyAction struct {
	Command Command
	Binding string
	Steps   int
}

// keyActions is keyed by SDL scancode names.
var keyActions = map[string]KeyAction{
	"Up":     {Command: CommandNudge, Binding: "tesselations", Steps: 1},
	"Down":   {Command: CommandNudge, Binding: "tesselations", Steps: -1},
	"F":      {Command: CommandNudge, Binding: "frequency", Steps: 1},
	"V":      {Command: CommandNudge, Binding: "frequency", Steps: -1},
	"A":      {Command: CommandNudge, Binding: "amplitude", Steps: 1},
	"Z":      {Command: CommandNudge, Binding: "amplitude", Steps: -1},
	"H":      {Command: CommandNudge, Binding: "flame height", Steps: 10},
	"N":      {Command: CommandNudge, Binding: "flame height", Steps: -10},
	"C":      {Command: CommandNudge, Binding: "cube", Steps: 1},
	"L":      {Command: CommandLoadScene},
	"R":      {Command: CommandReset},
	"F12":    {Command: CommandScreenshot},
	"Escape": {Command: CommandQuit},
}

// KeyActionFor returns the action bound to a key name.
func KeyActionFor(key string) (KeyAction, bool) {
	a, ok := keyActions[key]
	return a, ok
}

// Apply performs a nudge on c. Other commands are left to the caller and
// report false.
func (a KeyAction) Apply(c *Controls) bool {
	if a.Command != CommandNudge {
		return false
	}
	b, ok := Lookup(a.Binding)
	if !ok {
		return false
	}
	b.Nudge(c, a.Steps)
	return true
}
