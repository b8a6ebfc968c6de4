// DVD opens an 800x600 window with the bouncing, color-cycling logo.
// Press Escape or close the window to quit. The frame rate is printed to
// stdout once per second.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/phanxgames/bounce"
	"github.com/phanxgames/bounce/ebitenrender"
)

const (
	showFPS = false
	debug   = false
)

func main() {
	cfg := bounce.DefaultConfig()
	cfg.ShowFPS = showFPS
	cfg.Debug = debug

	if err := ebitenrender.Run(cfg, os.Stdout); err != nil {
		var serr *ebitenrender.ShaderError
		if errors.As(err, &serr) {
			fmt.Fprintln(os.Stderr, serr.Log)
			os.Exit(1)
		}
		log.Fatal(err)
	}
}
