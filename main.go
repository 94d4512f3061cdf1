package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/joshvictor1024/sdl-mandelbrot/pkg/fractal"
	"github.com/joshvictor1024/sdl-mandelbrot/pkg/view"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	windowTitle = "Mandelbrot"
	windowX     = 20
	windowY     = 20
	// milliseconds to idle between loop iterations
	refreshDelay = 2
)

func init() {
	// SDL calls must stay on the thread that did INIT_VIDEO
	runtime.LockOSThread()
}

func sdlInit(windowTitle string, w, h int) (*sdl.Window, *sdl.Renderer, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, nil, fmt.Errorf("unable to init SDL: %w", err)
	}

	window, err := sdl.CreateWindow(
		windowTitle,
		windowX, windowY,
		int32(w), int32(h), sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return nil, nil, fmt.Errorf("unable to create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, nil, fmt.Errorf("unable to create renderer: %w", err)
	}

	return window, renderer, nil
}

func sdlClose(window *sdl.Window, renderer *sdl.Renderer) {
	renderer.Destroy()
	window.Destroy()
	sdl.Quit()
}

func run(cfg view.Config) error {
	state, err := view.NewState(cfg)
	if err != nil {
		return fmt.Errorf("bad configuration: %w", err)
	}
	palette, err := fractal.DefaultPalette()
	if err != nil {
		return fmt.Errorf("unable to create color palette: %w", err)
	}

	window, renderer, err := sdlInit(windowTitle, state.Width, state.Height)
	if err != nil {
		return err
	}
	defer sdlClose(window, renderer)

	c, err := newCanvas(renderer, state.Width, state.Height)
	if err != nil {
		return err
	}
	defer c.close()

	return newScene(state, palette, c).loop()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("mandelbrot: ")

	if err := run(view.DefaultConfig()); err != nil {
		log.Printf("ERROR: %v", err)
		os.Exit(1)
	}
}
