package host

import (
	"fmt"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"golang.org/x/image/colornames"
)

// hotkeyButtons maps each Hotkey this adapter can report to the pixelgl
// button that produces it. pixelgl (like GLFW) names buttons by their
// physical QWERTY position, so the AZERTY-labeled keymap in adapter.go is
// realized here by physical position rather than by the GLFW constant's US
// label — KeyQ is the physical key an AZERTY board prints "A" on, etc.
// This is exactly the teacher's own keymap, lifted out of the chip8 VM and
// given hex-key-independent names.
var hotkeyButtons = map[Hotkey]pixelgl.Button{
	HotkeyNum1: pixelgl.Key1, HotkeyNum2: pixelgl.Key2,
	HotkeyNum3: pixelgl.Key3, HotkeyNum4: pixelgl.Key4,
	HotkeyA: pixelgl.KeyQ, HotkeyZ: pixelgl.KeyW,
	HotkeyE: pixelgl.KeyE, HotkeyR: pixelgl.KeyR,
	HotkeyQ: pixelgl.KeyA, HotkeyS: pixelgl.KeyS,
	HotkeyD: pixelgl.KeyD, HotkeyF: pixelgl.KeyF,
	HotkeyW: pixelgl.KeyZ, HotkeyX: pixelgl.KeyX,
	HotkeyC: pixelgl.KeyC, HotkeyV: pixelgl.KeyV,
}

// PixelAdapter implements Adapter on top of a faiface/pixel + pixelgl
// window. It is the one Adapter this module ships; §9's design note on
// polymorphic dispatch favors a single concrete implementation with
// configuration flags over a pluggable family here, since only one
// windowing backend is actually wired (see DESIGN.md).
type PixelAdapter struct {
	win    *pixelgl.Window
	imDraw *imdraw.IMDraw
	beeper *beeper
}

// NewPixelAdapter opens a window of the given title and size.
func NewPixelAdapter(title string, width, height int) (*PixelAdapter, error) {
	cfg := pixelgl.WindowConfig{
		Title:  title,
		Bounds: pixel.R(0, 0, float64(width), float64(height)),
		VSync:  true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("host: error creating window: %w", err)
	}

	return &PixelAdapter{
		win:    win,
		imDraw: imdraw.New(nil),
		beeper: newBeeper(),
	}, nil
}

// Events polls every mapped hotkey and reports the ones currently held
// down. Mouse input is not read; spec §6 has the driver ignore it anyway.
func (a *PixelAdapter) Events() []Event {
	var events []Event
	for hk, button := range hotkeyButtons {
		if a.win.Pressed(button) {
			events = append(events, Event{Kind: EventKindHotkey, Hotkey: hk})
		}
	}
	return events
}

// Clear erases the back buffer to the "off" color.
func (a *PixelAdapter) Clear() {
	a.win.Clear(colornames.Black)
	a.imDraw.Clear()
	a.imDraw.Color = pixel.RGB(1, 1, 1)
}

// DrawRect queues a filled rectangle in the back buffer.
func (a *PixelAdapter) DrawRect(rect Rect, color Color) {
	a.imDraw.Color = pixel.RGBA{
		R: float64(color.R) / 255,
		G: float64(color.G) / 255,
		B: float64(color.B) / 255,
		A: float64(color.A) / 255,
	}
	a.imDraw.Push(pixel.V(rect.X, rect.Y))
	a.imDraw.Push(pixel.V(rect.X+rect.W, rect.Y+rect.H))
	a.imDraw.Rectangle(0)
}

// Display flushes queued draws to the window and pumps its event queue.
func (a *PixelAdapter) Display() {
	a.imDraw.Draw(a.win)
	a.win.Update()
}

// Poll pumps the window's event queue without presenting a new frame,
// mirroring the teacher's UpdateInput path for non-drawing cycles.
func (a *PixelAdapter) Poll() {
	a.win.UpdateInput()
}

// IsWindowOpen reports whether the window is still open.
func (a *PixelAdapter) IsWindowOpen() bool {
	return !a.win.Closed()
}

// WindowSize returns the window's current pixel dimensions.
func (a *PixelAdapter) WindowSize() (int, int) {
	bounds := a.win.Bounds()
	return int(bounds.W()), int(bounds.H())
}

// ResumeBeep starts the looped beep tone.
func (a *PixelAdapter) ResumeBeep() {
	a.beeper.resume()
}

// PauseBeep stops the beep tone.
func (a *PixelAdapter) PauseBeep() {
	a.beeper.pause()
}
