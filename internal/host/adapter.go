package host

// Adapter is the contract the driver loop consumes (spec §6). The core
// interpreter never sees this interface; only the driver mediates between
// Interpreter and Adapter.
type Adapter interface {
	// Events returns the input events observed since the last call, polled
	// once per driver iteration.
	Events() []Event
	// Clear erases the back buffer ahead of a fresh frame.
	Clear()
	// DrawRect draws a filled rectangle in the given color.
	DrawRect(rect Rect, color Color)
	// Display presents the back buffer and pumps the window's event queue.
	Display()
	// Poll pumps the window's event queue without presenting a new frame,
	// for cycles where VRAM did not change (spec §2: "redraws if dirty").
	Poll()
	// IsWindowOpen reports whether the window is still open.
	IsWindowOpen() bool
	// WindowSize returns the current window dimensions in pixels.
	WindowSize() (width, height int)
	// ResumeBeep starts (or continues) the looped beep tone.
	ResumeBeep()
	// PauseBeep stops the beep tone.
	PauseBeep()
}

// HexKeymap maps a CHIP-8 hex key index (0x0-0xF) to the Hotkey the
// fixed AZERTY-flavored layout reports for it (spec §6). Row 1: 1 2 3 4 ->
// 0x1,0x2,0x3,0xC. Row 2: A Z E R -> 0x4,0x5,0x6,0xD. Row 3: Q S D F ->
// 0x7,0x8,0x9,0xE. Row 4: W X C V -> 0xA,0x0,0xB,0xF.
var HexKeymap = map[int]Hotkey{
	0x1: HotkeyNum1, 0x2: HotkeyNum2, 0x3: HotkeyNum3, 0xC: HotkeyNum4,
	0x4: HotkeyA, 0x5: HotkeyZ, 0x6: HotkeyE, 0xD: HotkeyR,
	0x7: HotkeyQ, 0x8: HotkeyS, 0x9: HotkeyD, 0xE: HotkeyF,
	0xA: HotkeyW, 0x0: HotkeyX, 0xB: HotkeyC, 0xF: HotkeyV,
}
