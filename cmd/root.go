package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bradford-hamilton/chip8vm/internal/driver"
)

// currentReleaseVersion is the emulator's own release version, reported by
// `chip8vm version`.
const currentReleaseVersion = "v0.1.0"

// rootCmd is the base for all commands.
var rootCmd = &cobra.Command{
	Use:   "chip8vm [command]",
	Short: "chip8vm is a CHIP-8 emulator",
	Long: fmt.Sprintf(
		"chip8vm is a CHIP-8 emulator.\n\n"+
			"Run a ROM with `chip8vm run path/to/rom`. The CPU clock is configurable\n"+
			"from %d to %d Hz (--cycles), and the two COSMAC-VIP load/shift quirks\n"+
			"(--original-load, --original-shift) are off by default.",
		driver.MinCPUHz, driver.MaxCPUHz,
	),
	// Execute reports errors itself; keep cobra from printing them (and the
	// usage text) a second time.
	SilenceErrors: true,
	SilenceUsage:  true,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return errors.New("requires at least 1 argument")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Unknown command. Try `chip8vm help` for more information")
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Retrieve the currently installed chip8vm version",
		Long:  "Run `chip8vm version` to get your current chip8vm version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(currentReleaseVersion)
		},
	})
}

// Execute runs chip8vm according to the user's command/subcommand/flags. A
// non-nil error from any subcommand is printed to stderr and causes a
// non-zero exit (spec §7): no panics, a single human-readable line.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
