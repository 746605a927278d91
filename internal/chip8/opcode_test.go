package chip8

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpcodeDecode(t *testing.T) {
	op := Opcode(0xD123)

	assert.Equal(t, uint8(0xD), op.Op())
	assert.Equal(t, uint8(0x1), op.X())
	assert.Equal(t, uint8(0x2), op.Y())
	assert.Equal(t, uint8(0x3), op.N())
	assert.Equal(t, uint8(0x23), op.KK())
	assert.Equal(t, uint16(0x123), op.NNN())

	gotOp, gotX, gotY, gotN := op.Quad()
	assert.Equal(t, [4]uint8{0xD, 0x1, 0x2, 0x3}, [4]uint8{gotOp, gotX, gotY, gotN})
}
