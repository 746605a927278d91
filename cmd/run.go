package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bradford-hamilton/chip8vm/internal/chip8"
	"github.com/bradford-hamilton/chip8vm/internal/driver"
	"github.com/bradford-hamilton/chip8vm/internal/host"
)

// Window dimensions default to a 20x scale of the 64x32 CHIP-8 display
// (spec §6).
const (
	gridWidth   = 64
	gridHeight  = 32
	defaultCell = 20
)

var (
	flagWidth         int
	flagHeight        int
	flagAPI           string
	flagInterpreter   string
	flagCycles        int
	flagOriginalLoad  bool
	flagOriginalShift bool
)

// runCmd runs the chip8vm virtual machine against a ROM file until the
// window is closed.
var runCmd = &cobra.Command{
	Use:   "run `path/to/rom`",
	Short: "run the chip8vm emulator",
	Args:  cobra.ExactArgs(1),
	RunE:  runChip8vm,
}

func init() {
	flags := runCmd.Flags()
	flags.IntVar(&flagWidth, "width", gridWidth*defaultCell, "window width in pixels")
	flags.IntVar(&flagHeight, "height", gridHeight*defaultCell, "window height in pixels")
	flags.StringVar(&flagAPI, "api", "sdl", "graphical backend: sdl|sfml")
	flags.StringVar(&flagInterpreter, "interpreter", "original", "interpreter variant")
	flags.IntVar(&flagCycles, "cycles", driver.DefaultCPUHz, "CPU cycles per second, clamped to [500, 2000]")
	flags.BoolVar(&flagOriginalLoad, "original-load", false, "Fx55/Fx65 advance I by x+1 (COSMAC-VIP behavior)")
	flags.BoolVar(&flagOriginalShift, "original-shift", false, "8xy6/8xyE shift Vy into Vx (COSMAC-VIP behavior)")
}

func runChip8vm(cmd *cobra.Command, args []string) error {
	if flagAPI != "sdl" && flagAPI != "sfml" {
		return errors.Errorf("unknown --api %q, accepted values: sdl, sfml", flagAPI)
	}
	if flagAPI == "sfml" {
		return errors.New("--api sfml is recognized but not implemented; use --api sdl")
	}
	if flagInterpreter != "original" {
		return errors.Errorf("unknown --interpreter %q, accepted values: original", flagInterpreter)
	}

	romPath := args[0]
	rom, err := os.ReadFile(romPath)
	if err != nil {
		return errors.Wrapf(err, "reading rom %q", romPath)
	}

	interp := chip8.New()
	interp.SetOriginalLoad(flagOriginalLoad)
	interp.SetOriginalShift(flagOriginalShift)
	if err := interp.LoadProgram(rom); err != nil {
		return errors.Wrap(err, "loading rom")
	}

	adapter, err := host.NewPixelAdapter("chip8vm", flagWidth, flagHeight)
	if err != nil {
		return errors.Wrap(err, "opening window")
	}

	d := driver.New(interp, adapter, flagCycles)
	d.Run()

	return nil
}
