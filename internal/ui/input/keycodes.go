// Package input turns raw key events into dispatched input actions:
// key-code tables per platform, repeat throttling and the keyboard handler.
package input

// Key codes as reported by the DOM keyCode of TV and console browsers.
const (
	KeycodeBackspace   = 8
	KeycodeEnter       = 13
	KeycodePause       = 19
	KeycodeEscape      = 27
	KeycodeLeft        = 37
	KeycodeUp          = 38
	KeycodeRight       = 39
	KeycodeDown        = 40
	KeycodeMediaToggle = 179
	KeycodeRewind      = 412
	KeycodeStop        = 413
	KeycodePlay        = 415
	KeycodeFastForward = 417
	KeycodeInfo        = 457
	KeycodeWebOSBack   = 461
	KeycodeTizenBack   = 10009
	KeycodeTizenExit   = 10182
	KeycodeTizenToggle = 10252
)

// Gamepad key codes reported by console browsers (Xbox Edge).
const (
	KeycodeGamepadA         = 195
	KeycodeGamepadB         = 196
	KeycodeGamepadX         = 197
	KeycodeGamepadY         = 198
	KeycodeGamepadMenu      = 207
	KeycodeGamepadDPadUp    = 203
	KeycodeGamepadDPadDown  = 204
	KeycodeGamepadDPadLeft  = 205
	KeycodeGamepadDPadRight = 206
)

var keycodeByName = map[string]int{
	"backspace":    KeycodeBackspace,
	"enter":        KeycodeEnter,
	"return":       KeycodeEnter,
	"esc":          KeycodeEscape,
	"escape":       KeycodeEscape,
	"left":         KeycodeLeft,
	"up":           KeycodeUp,
	"right":        KeycodeRight,
	"down":         KeycodeDown,
	"pause":        KeycodePause,
	"play":         KeycodePlay,
	"stop":         KeycodeStop,
	"rewind":       KeycodeRewind,
	"fast_forward": KeycodeFastForward,
	"info":         KeycodeInfo,
	"media_toggle": KeycodeMediaToggle,
	"webos_back":   KeycodeWebOSBack,
	"tizen_back":   KeycodeTizenBack,
	"tizen_exit":   KeycodeTizenExit,
	"tizen_toggle": KeycodeTizenToggle,
	"gamepad_a":    KeycodeGamepadA,
	"gamepad_b":    KeycodeGamepadB,
	"gamepad_x":    KeycodeGamepadX,
	"gamepad_y":    KeycodeGamepadY,
	"gamepad_menu": KeycodeGamepadMenu,
}

// KeycodeByName resolves a symbolic key name (as used in config files) to a key code.
func KeycodeByName(name string) (int, bool) {
	code, ok := keycodeByName[name]
	return code, ok
}
