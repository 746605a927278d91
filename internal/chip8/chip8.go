// Package chip8 implements the CHIP-8 interpreter core: the fetch/decode/
// execute engine and its data model (RAM, registers, stack, program
// counter, timers, VRAM, keypad). The host windowing/audio backend and the
// driver loop that paces Step calls live outside this package; chip8 never
// touches the filesystem, the screen, or a clock beyond its own internal
// 60Hz timer gate.
//
//		System memory map
// 		+---------------+= 0xFFF (4095) End Chip-8 RAM
// 		| 0x200 to 0xFFF|
// 		|     Chip-8    |
// 		| Program / Data|
// 		|     Space     |
// 		+---------------+= 0x200 (512) Start of most Chip-8 programs
// 		| 0x000 to 0x1FF|
// 		| Font set lives|
// 		|  at 0x000     |
// 		+---------------+= 0x000 (0) Begin Chip-8 RAM.
package chip8

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
)

// Memory layout and timing constants.
const (
	memSize     = 4096
	fontBase    = 0x000
	programBase = 0x200
	maxROMSize  = memSize - programBase
	timerHz     = 60
	stackDepth  = 16
	numRegs     = 16
	vfIndex     = 0xF
)

// timerPeriod is the fixed interval between 60Hz timer decrements,
// independent of the CPU clock that paces Step calls (spec §5).
const timerPeriod = time.Second / timerHz

// fontSet is the built-in 4x5 hexadecimal digit font, loaded at RAM[0:80].
var fontSet = [80]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// runState models the two interpreter states from spec §4.9.
type runState uint8

const (
	running runState = iota
	waitingForKey
)

// Interpreter owns the entire CHIP-8 machine state and exposes the public
// contract consumed by a driver: Step, LoadProgram, Framebuffer, Beep.
// There are no suspension points inside Step; it is meant to be called
// sequentially by a single driver goroutine (spec §5).
type Interpreter struct {
	memory [memSize]byte
	v      [numRegs]byte
	i      uint16
	pc     ProgramCounter
	stack  [stackDepth]uint16
	sp     uint8

	vram   VRAM
	dt, st uint8

	keys Keypad

	state   runState
	waitReg uint8

	timerGate *Clock

	originalLoad  bool
	originalShift bool

	dirty bool
}

// New returns an interpreter in its canonical initial state: RAM zeroed
// except the font at RAM[0:80], PC=0x200, SP=0, timers at 0, VRAM clear,
// keys up, wait latch clear, quirks false.
func New() *Interpreter {
	in := &Interpreter{
		pc:        newProgramCounter(programBase),
		timerGate: NewClock(timerPeriod),
	}
	copy(in.memory[fontBase:], fontSet[:])
	return in
}

// SetOriginalLoad toggles the Fx55/Fx65 "I += x+1" quirk.
func (in *Interpreter) SetOriginalLoad(v bool) { in.originalLoad = v }

// SetOriginalShift toggles whether 8xy6/8xyE shift Vy (true, the COSMAC-VIP
// original) or Vx in place (false, the modern default).
func (in *Interpreter) SetOriginalShift(v bool) { in.originalShift = v }

// LoadProgram copies bytes into RAM starting at 0x200. ROMs larger than the
// 3584-byte usable region are rejected outright rather than silently
// truncated, so a caller always knows whether its ROM fit.
func (in *Interpreter) LoadProgram(program []byte) error {
	if len(program) > maxROMSize {
		return errors.Errorf("chip8: rom too large: %d bytes (max %d)", len(program), maxROMSize)
	}
	copy(in.memory[programBase:], program)
	return nil
}

// Framebuffer returns a read-only snapshot of the display for the host
// adapter to draw.
func (in *Interpreter) Framebuffer() Snapshot {
	return in.vram.Snapshot()
}

// Beep reports whether the sound timer is active.
func (in *Interpreter) Beep() bool {
	return in.st > 0
}

// Step executes exactly one CPU cycle per the algorithm in spec §4.6:
// latch input, (when not waiting on a key) tick timers, fetch, decode,
// execute, advance PC. inputs is the list of hex key indices (0-15)
// currently pressed; anything else is dropped by Keypad.Latch. Step never
// panics on a valid 16-bit instruction stream. It returns true iff VRAM
// changed (CLS or DRW executed) during this call.
func (in *Interpreter) Step(inputs []int) bool {
	in.pc.ResetTransition()
	in.dirty = false

	in.keys.Latch(inputs)

	if in.state == waitingForKey {
		for idx := 0; idx < KeyCount; idx++ {
			if in.keys.Down(uint8(idx)) {
				in.v[in.waitReg] = byte(idx)
				in.state = running
				break
			}
		}
		return false
	}

	if in.timerGate.TryReset() {
		if in.dt > 0 {
			in.dt--
		}
		if in.st > 0 {
			in.st--
		}
	}

	op := Opcode(in.fetch())
	in.execute(op)

	in.pc.Apply()
	return in.dirty
}

// fetch reads the big-endian 16-bit word at PC, masking the address to 12
// bits so the read always stays within the 4096-byte RAM.
func (in *Interpreter) fetch() uint16 {
	addr := in.pc.Value()
	hi := uint16(in.memory[addr])
	lo := uint16(in.memory[(addr+1)&0x0FFF])
	return hi<<8 | lo
}

// randByte returns a pseudo-random byte for Cxkk. A package-level source
// keeps Interpreter free of global mutable state beyond Go's own rand seed.
func randByte() byte {
	return byte(rand.Intn(256))
}
