package main

import (
	"fmt"

	"github.com/joshvictor1024/sdl-mandelbrot/pkg/fractal"
	"github.com/joshvictor1024/sdl-mandelbrot/pkg/overlay"
	"github.com/joshvictor1024/sdl-mandelbrot/pkg/types"
	"github.com/joshvictor1024/sdl-mandelbrot/pkg/view"
	"github.com/veandco/go-sdl2/sdl"
)

type scene struct {
	state   *view.State
	palette fractal.Palette
	canvas  *canvas
	input   input
	actions types.Queue[view.Action]
}

func newScene(state *view.State, palette fractal.Palette, c *canvas) *scene {
	return &scene{
		state:   state,
		palette: palette,
		canvas:  c,
	}
}

// loop polls, applies, renders at most once, then idles, until quit.
func (s *scene) loop() error {
	for s.state.Running {
		s.input.poll(&s.actions)
		if s.state.Drain(&s.actions) && s.state.Running {
			if err := s.update(); err != nil {
				return err
			}
			s.state.Changed = false
		}
		sdl.Delay(refreshDelay)
	}
	return nil
}

func (s *scene) update() error {
	buf, err := fractal.Render(s.state.Rect(), s.state.Width, s.state.Height, s.palette, canvasLayout)
	if err != nil {
		return fmt.Errorf("unable to create pixels: %w", err)
	}
	if s.state.Overlay {
		overlay.Draw(buf, s.state.Viewport)
	}
	return s.canvas.draw(buf)
}
