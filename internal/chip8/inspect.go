package chip8

import "fmt"

// Register returns the current value of Vn (0-15). Exposed for tests and
// diagnostics; not part of the driver-facing contract.
func (in *Interpreter) Register(n uint8) byte {
	return in.v[n&0x0F]
}

// I returns the current value of the index register.
func (in *Interpreter) I() uint16 {
	return in.i
}

// PC returns the current program counter value.
func (in *Interpreter) PC() uint16 {
	return in.pc.Value()
}

// SP returns the current stack pointer.
func (in *Interpreter) SP() uint8 {
	return in.sp
}

// DT returns the current delay timer value.
func (in *Interpreter) DT() uint8 {
	return in.dt
}

// ST returns the current sound timer value.
func (in *Interpreter) ST() uint8 {
	return in.st
}

// PeekMemory returns the byte at addr, masked to the 12 meaningful bits.
func (in *Interpreter) PeekMemory(addr uint16) byte {
	return in.memory[addr&0x0FFF]
}

// String renders a compact register dump, in the spirit of the teacher's
// own debug printer.
func (in *Interpreter) String() string {
	return fmt.Sprintf(
		"pc=%#04x sp=%d i=%#04x dt=%d st=%d v=%02x",
		in.pc.Value(), in.sp, in.i, in.dt, in.st, in.v,
	)
}
