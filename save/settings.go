package save

// ControlMode selects how horizontal input moves the player.
type ControlMode string

const (
	// ControlDrag follows the pointer.
	ControlDrag ControlMode = "drag"
	// ControlKeys steps with the arrow keys.
	ControlKeys ControlMode = "keys"
)

type Settings struct {
	Control   ControlMode `yaml:"control"`
	ShowDebug bool        `yaml:"show_debug"`
	Sound     bool        `yaml:"sound"`
	// Vibration is kept for parity with touch builds; desktop ignores it.
	Vibration bool `yaml:"vibration"`
}

func DefaultSettings() Settings {
	return Settings{Control: ControlDrag, Sound: true, Vibration: true}
}

func (s *Settings) normalize() {
	if s.Control != ControlDrag && s.Control != ControlKeys {
		s.Control = ControlDrag
	}
}

// NextControl cycles the control mode.
func (s Settings) NextControl() ControlMode {
	if s.Control == ControlKeys {
		return ControlDrag
	}
	return ControlKeys
}
