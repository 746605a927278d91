package chip8

// KeyCount is the number of keys on the CHIP-8 hex keypad.
const KeyCount = 16

// Keypad is the 16-entry hex keypad down-state vector. Per the reference
// implementation's deliberate choice (spec §4.6 step 3, §9), the vector is
// fully rebuilt every cycle from the host's current input snapshot rather
// than accumulating press/release edges across cycles, so a keypress held
// for less than one CPU period may be missed — that tradeoff is accepted
// here rather than latching until an explicit key-up.
type Keypad struct {
	down [KeyCount]bool
}

// Latch clears the keypad and marks every index in pressed as down. pressed
// entries outside 0..15 are ignored.
func (k *Keypad) Latch(pressed []int) {
	k.down = [KeyCount]bool{}
	for _, idx := range pressed {
		if idx >= 0 && idx < KeyCount {
			k.down[idx] = true
		}
	}
}

// Down reports whether hex key idx is currently pressed.
func (k *Keypad) Down(idx uint8) bool {
	return k.down[idx&0x0F]
}
