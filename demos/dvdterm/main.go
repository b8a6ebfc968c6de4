// Dvdterm runs the bouncing logo inside the terminal using half-block
// characters. Press Esc, q or Ctrl-C to quit.
package main

import (
	"log"

	"github.com/phanxgames/bounce"
	"github.com/phanxgames/bounce/termrender"
)

const (
	showFPS = true
	sound   = true
)

func main() {
	cfg := bounce.DefaultConfig()
	cfg.ShowFPS = showFPS
	cfg.Sound = sound

	if err := termrender.Run(cfg); err != nil {
		log.Fatal(err)
	}
}
