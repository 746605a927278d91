package chip8

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVRAMGetPutWrap(t *testing.T) {
	var v VRAM

	v.Put(0, 0, 1)
	assert.Equal(t, byte(1), v.Get(64, 32)) // wraps to (0,0)

	w, h := v.Dimensions()
	assert.Equal(t, 64, w)
	assert.Equal(t, 32, h)

	v.Clear()
	assert.Equal(t, byte(0), v.Get(0, 0))
}

func TestVRAMSnapshotIsACopy(t *testing.T) {
	var v VRAM
	v.Put(5, 5, 1)

	snap := v.Snapshot()
	v.Put(5, 5, 0)

	assert.Equal(t, byte(1), snap[5*vramWidth+5])
	assert.Equal(t, byte(0), v.Get(5, 5))
}
