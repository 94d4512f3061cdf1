// Command mandelbrot-ascii prints the Mandelbrot set as text.
package main

import (
	"log"
	"os"

	"github.com/joshvictor1024/sdl-mandelbrot/pkg/fractal"
)

func main() {
	if err := fractal.Print(os.Stdout, fractal.ConsoleRect); err != nil {
		log.SetFlags(0)
		log.SetPrefix("mandelbrot-ascii: ")
		log.Fatalf("ERROR: %v", err)
	}
}
