package driver

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bradford-hamilton/chip8vm/internal/chip8"
	"github.com/bradford-hamilton/chip8vm/internal/host"
)

// fakeAdapter is an in-memory host.Adapter for driver tests: no window, no
// audio device, just counters and a scripted close.
type fakeAdapter struct {
	mu sync.Mutex

	open       bool
	displays   int
	polls      int
	beepOn     bool
	pendingKey []host.Event
}

func newFakeAdapter() *fakeAdapter {
	return &fakeAdapter{open: true}
}

func (f *fakeAdapter) Events() []host.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	ev := f.pendingKey
	f.pendingKey = nil
	return ev
}

func (f *fakeAdapter) Clear()                        {}
func (f *fakeAdapter) DrawRect(host.Rect, host.Color) {}
func (f *fakeAdapter) WindowSize() (int, int)         { return 640, 320 }

func (f *fakeAdapter) Display() { f.mu.Lock(); f.displays++; f.mu.Unlock() }
func (f *fakeAdapter) Poll()    { f.mu.Lock(); f.polls++; f.mu.Unlock() }

func (f *fakeAdapter) ResumeBeep() { f.mu.Lock(); f.beepOn = true; f.mu.Unlock() }
func (f *fakeAdapter) PauseBeep()  { f.mu.Lock(); f.beepOn = false; f.mu.Unlock() }

func (f *fakeAdapter) IsWindowOpen() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.open
}

func (f *fakeAdapter) close() {
	f.mu.Lock()
	f.open = false
	f.mu.Unlock()
}

var _ host.Adapter = (*fakeAdapter)(nil)

func TestNewClampsCPUHz(t *testing.T) {
	interp := chip8.New()
	adapter := newFakeAdapter()

	tooLow := New(interp, adapter, 1)
	tooHigh := New(interp, adapter, 100000)

	assert.Equal(t, time.Second/time.Duration(MinCPUHz), tooLow.cycle.Interval())
	assert.Equal(t, time.Second/time.Duration(MaxCPUHz), tooHigh.cycle.Interval())
}

func TestRunStopsOnWindowClose(t *testing.T) {
	interp := chip8.New()
	adapter := newFakeAdapter()
	d := New(interp, adapter, MaxCPUHz)

	done := make(chan struct{})
	go func() {
		d.Run()
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	adapter.close()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after window close")
	}
}

func TestRunStopsOnShutdown(t *testing.T) {
	interp := chip8.New()
	adapter := newFakeAdapter()
	d := New(interp, adapter, MaxCPUHz)

	done := make(chan struct{})
	go func() {
		d.Run()
		close(done)
	}()

	time.Sleep(5 * time.Millisecond)
	d.Shutdown()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Shutdown")
	}
}

func TestInvertKeymapCoversAllHexDigits(t *testing.T) {
	for hex := 0; hex < chip8.KeyCount; hex++ {
		hk, ok := host.HexKeymap[hex]
		require.True(t, ok, "hex key %x missing from HexKeymap", hex)
		_, ok = hexKeys[hk]
		assert.True(t, ok, "hex key %x not recoverable from inverted keymap", hex)
	}
}
