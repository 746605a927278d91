package chip8

// WaitingForKey reports whether the interpreter is currently parked in the
// Fx0A wait-for-key state (spec §4.9). Exposed for tests and for a driver
// that wants to suppress unrelated UI state (e.g. a blinking cursor) while
// waiting.
func (in *Interpreter) WaitingForKey() bool {
	return in.state == waitingForKey
}
