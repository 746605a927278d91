package main

import (
	"github.com/faiface/pixel/pixelgl"

	"github.com/bradford-hamilton/chip8vm/cmd"
)

func main() {
	// pixelgl needs access to the main thread, so cobra's command tree runs
	// inside its callback rather than directly from main.
	pixelgl.Run(cmd.Execute)
}
