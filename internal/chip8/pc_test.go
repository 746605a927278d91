package chip8

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgramCounterTransitions(t *testing.T) {
	pc := newProgramCounter(0x200)

	pc.ResetTransition()
	pc.Apply()
	assert.Equal(t, uint16(0x202), pc.Value())

	pc.ResetTransition()
	pc.SetSkip()
	pc.Apply()
	assert.Equal(t, uint16(0x206), pc.Value())

	pc.ResetTransition()
	pc.SetJump(0x400)
	pc.Apply()
	assert.Equal(t, uint16(0x400), pc.Value())
}
