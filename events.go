package main

import (
	"log"

	"github.com/joshvictor1024/sdl-mandelbrot/pkg/types"
	"github.com/joshvictor1024/sdl-mandelbrot/pkg/view"
	"github.com/veandco/go-sdl2/sdl"
)

// input turns SDL events into viewer actions. It remembers where the left
// button went down so a release can become a drag.
type input struct {
	mouseDown types.Pointi
	dragging  bool
}

// poll drains every pending event without blocking.
func (in *input) poll(q *types.Queue[view.Action]) {
	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		if a, ok := in.translate(e); ok {
			q.Push(a)
		}
	}
}

func (in *input) translate(e sdl.Event) (view.Action, bool) {
	switch t := e.(type) {
	case *sdl.QuitEvent:
		log.Print("quit event")
		return view.Action{Kind: view.ActionQuit}, true
	case *sdl.KeyboardEvent:
		if t.Type != sdl.KEYDOWN {
			return view.Action{}, false
		}
		return keyAction(t.Keysym.Sym)
	case *sdl.MouseWheelEvent:
		if t.Y < 0 {
			return view.Action{Kind: view.ActionZoomIn}, true
		} else if t.Y > 0 {
			return view.Action{Kind: view.ActionZoomOut}, true
		}
	case *sdl.MouseButtonEvent:
		pos := types.Pointi{X: int(t.X), Y: int(t.Y)}
		switch {
		case t.Type == sdl.MOUSEBUTTONDOWN && t.Button == sdl.BUTTON_RIGHT:
			log.Printf("recenter at (%d, %d)", pos.X, pos.Y)
			return view.Action{Kind: view.ActionRecenter, Pos: pos}, true
		case t.Type == sdl.MOUSEBUTTONDOWN && t.Button == sdl.BUTTON_LEFT:
			in.mouseDown = pos
			in.dragging = true
		case t.Type == sdl.MOUSEBUTTONUP && t.Button == sdl.BUTTON_LEFT && in.dragging:
			in.dragging = false
			delta := types.Pointi{
				X: in.mouseDown.X - pos.X,
				Y: in.mouseDown.Y - pos.Y,
			}
			if delta != (types.Pointi{}) {
				return view.Action{Kind: view.ActionDrag, Delta: delta}, true
			}
		}
	}
	return view.Action{}, false
}

func keyAction(sym sdl.Keycode) (view.Action, bool) {
	pan := func(d view.Direction) (view.Action, bool) {
		return view.Action{Kind: view.ActionPan, Direction: d}, true
	}
	switch sym {
	case sdl.K_UP, sdl.K_k:
		return pan(view.Up)
	case sdl.K_DOWN, sdl.K_j:
		return pan(view.Down)
	case sdl.K_LEFT, sdl.K_h:
		return pan(view.Left)
	case sdl.K_RIGHT, sdl.K_l:
		return pan(view.Right)
	case sdl.K_PLUS, sdl.K_KP_PLUS, sdl.K_p:
		return view.Action{Kind: view.ActionZoomIn}, true
	case sdl.K_MINUS, sdl.K_KP_MINUS, sdl.K_m:
		return view.Action{Kind: view.ActionZoomOut}, true
	case sdl.K_i:
		return view.Action{Kind: view.ActionToggleOverlay}, true
	case sdl.K_q, sdl.K_ESCAPE:
		log.Print("quit key")
		return view.Action{Kind: view.ActionQuit}, true
	}
	return view.Action{}, false
}
