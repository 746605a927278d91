// Package host implements the CHIP-8 emulator's host adapter: the thin
// windowing/input/audio layer spec.md treats as an external collaborator
// (§6) and specifies only by contract. chip8vm's one implementation uses
// faiface/pixel + pixelgl for the window and faiface/beep for the beeper.
package host

// Rect is a screen-space rectangle passed to DrawRect. Coordinates are in
// window pixels with the origin at the bottom-left, matching pixel.Rect.
type Rect struct {
	X, Y, W, H float64
}

// Color is an RGBA color in the 0-255 range per channel.
type Color struct {
	R, G, B, A uint8
}

var (
	// ColorOn is the color used for a set display pixel.
	ColorOn = Color{R: 255, G: 255, B: 255, A: 255}
	// ColorOff is the window clear color, a set display pixel's background.
	ColorOff = Color{R: 0, G: 0, B: 0, A: 255}
)

// Hotkey is the opaque enumeration of physical keys the host adapter can
// report, mirroring the reference implementation's event model (spec §6).
// Only a subset maps to a CHIP-8 hex key; see HexKeymap.
type Hotkey uint8

// Hotkey values. Letters mirror the reference's A-Z set; Num1-Num4 extend
// it to cover the AZERTY keymap's numeric row, which the original event
// enumeration omitted.
const (
	HotkeyA Hotkey = iota
	HotkeyB
	HotkeyC
	HotkeyD
	HotkeyE
	HotkeyF
	HotkeyG
	HotkeyH
	HotkeyI
	HotkeyJ
	HotkeyK
	HotkeyL
	HotkeyM
	HotkeyN
	HotkeyO
	HotkeyP
	HotkeyQ
	HotkeyR
	HotkeyS
	HotkeyT
	HotkeyU
	HotkeyV
	HotkeyW
	HotkeyX
	HotkeyY
	HotkeyZ
	HotkeyNum1
	HotkeyNum2
	HotkeyNum3
	HotkeyNum4
	HotkeyLeft
	HotkeyRight
	HotkeyUp
	HotkeyDown
	HotkeyUnknown
)

// MouseEvent carries pointer coordinates. The interpreter never consumes
// these; the driver simply drops them (spec §6: "Mouse (ignored)").
type MouseEvent struct {
	X, Y int
}

// EventKind tags which field of Event is populated.
type EventKind uint8

const (
	// EventKindHotkey means the Hotkey field is populated.
	EventKindHotkey EventKind = iota
	// EventKindMouse means the Mouse field is populated.
	EventKindMouse
)

// Event is one polled input event: either a pressed hotkey or a mouse
// action. Mouse events are always ignored by the driver.
type Event struct {
	Kind   EventKind
	Hotkey Hotkey
	Mouse  MouseEvent
}
