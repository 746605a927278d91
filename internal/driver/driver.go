// Package driver paces Interpreter.Step calls against a host Adapter: it
// is the "driver loop" external collaborator from spec.md §2/§5, owning
// both the interpreter and the host adapter so neither holds a reference
// back to the other (spec §9, no cyclic ownership).
package driver

import (
	"time"

	"github.com/bradford-hamilton/chip8vm/internal/chip8"
	"github.com/bradford-hamilton/chip8vm/internal/host"
)

// MinCPUHz and MaxCPUHz bound the configurable CPU clock (spec §5).
const (
	MinCPUHz     = 500
	MaxCPUHz     = 2000
	DefaultCPUHz = 500
)

// hexKeys is HexKeymap inverted: Hotkey -> hex index, built once so Driver
// doesn't re-derive it every frame.
var hexKeys = invertKeymap()

func invertKeymap() map[host.Hotkey]int {
	m := make(map[host.Hotkey]int, len(host.HexKeymap))
	for hex, hk := range host.HexKeymap {
		m[hk] = hex
	}
	return m
}

// Driver owns an Interpreter and a host Adapter and mediates between them:
// collect input -> Step -> redraw if dirty -> gate beeper -> sleep.
type Driver struct {
	interp  *chip8.Interpreter
	adapter host.Adapter
	cycle   *chip8.Clock

	shutdown chan struct{}
}

// New returns a Driver that paces interp's Step calls at cpuHz against
// adapter, clamped to [MinCPUHz, MaxCPUHz].
func New(interp *chip8.Interpreter, adapter host.Adapter, cpuHz int) *Driver {
	if cpuHz < MinCPUHz {
		cpuHz = MinCPUHz
	}
	if cpuHz > MaxCPUHz {
		cpuHz = MaxCPUHz
	}
	return &Driver{
		interp:   interp,
		adapter:  adapter,
		cycle:    chip8.NewClock(time.Second / time.Duration(cpuHz)),
		shutdown: make(chan struct{}),
	}
}

// Run drives the emulator until the window closes or Shutdown is called.
// Per spec §5 ordering: keypad latch -> timer tick -> fetch -> execute ->
// PC advance happens inside Step; Run is responsible only for pacing,
// redraw-on-dirty, and beeper gating around it.
func (d *Driver) Run() {
	for d.adapter.IsWindowOpen() {
		select {
		case <-d.shutdown:
			return
		default:
		}

		if !d.cycle.TryReset() {
			time.Sleep(time.Millisecond)
			continue
		}

		inputs := d.pollInputs()
		dirty := d.interp.Step(inputs)

		if dirty {
			d.redraw()
		} else {
			d.adapter.Poll()
		}

		if d.interp.Beep() {
			d.adapter.ResumeBeep()
		} else {
			d.adapter.PauseBeep()
		}
	}
}

// Shutdown signals Run to stop at the next iteration.
func (d *Driver) Shutdown() {
	close(d.shutdown)
}

// pollInputs polls the adapter once and converts the reported hotkeys into
// the hex key indices Step expects, dropping anything outside the fixed
// keymap (spec §4.6 step 1) and ignoring mouse events entirely (spec §6).
func (d *Driver) pollInputs() []int {
	events := d.adapter.Events()
	inputs := make([]int, 0, len(events))
	for _, ev := range events {
		if ev.Kind != host.EventKindHotkey {
			continue
		}
		if hex, ok := hexKeys[ev.Hotkey]; ok {
			inputs = append(inputs, hex)
		}
	}
	return inputs
}

// redraw clears the window and draws one rectangle per set VRAM pixel,
// scaled to fill the current window size.
func (d *Driver) redraw() {
	d.adapter.Clear()

	fb := d.interp.Framebuffer()
	winW, winH := d.adapter.WindowSize()
	cellW := float64(winW) / 64
	cellH := float64(winH) / 32

	for y := 0; y < 32; y++ {
		for x := 0; x < 64; x++ {
			if fb[y*64+x] == 0 {
				continue
			}
			// VRAM row 0 is the top of the display; pixel.Rect coordinates
			// grow upward from the window's bottom-left, so flip y.
			rect := host.Rect{
				X: cellW * float64(x),
				Y: cellH * float64(31-y),
				W: cellW,
				H: cellH,
			}
			d.adapter.DrawRect(rect, host.ColorOn)
		}
	}

	d.adapter.Display()
}
