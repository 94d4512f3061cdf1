package view

import (
	"github.com/joshvictor1024/sdl-mandelbrot/pkg/fractal"
	"github.com/joshvictor1024/sdl-mandelbrot/pkg/types"
)

type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionPan
	ActionZoomIn
	ActionZoomOut
	ActionRecenter
	ActionDrag
	ActionToggleOverlay
	ActionQuit
)

// Action is one input already translated from the window system.
// Pos is used by ActionRecenter, Delta by ActionDrag.
type Action struct {
	Kind      ActionKind
	Direction Direction
	Pos       types.Pointi
	Delta     types.Pointi
}

// State is everything the viewer loop owns.
type State struct {
	Viewport Viewport
	Width    int
	Height   int
	Running  bool
	// Changed asks for one render on the next loop iteration.
	Changed bool
	Overlay bool
}

func NewState(cfg Config) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &State{
		Viewport: Viewport{
			Center:    types.Pointf64{X: cfg.CenterX, Y: cfg.CenterY},
			RealRange: cfg.RealRange,
			ImagRange: cfg.ImagRange,
		},
		Width:   cfg.WindowW,
		Height:  cfg.WindowH,
		Running: true,
		Changed: true,
		Overlay: true,
	}, nil
}

func (s *State) Rect() fractal.Rect {
	return s.Viewport.Rect()
}

// Apply runs one action. Unknown kinds leave the state untouched.
func (s *State) Apply(a Action) {
	switch a.Kind {
	case ActionPan:
		s.Viewport.Pan(a.Direction)
	case ActionZoomIn:
		s.Viewport.ZoomIn(ZoomRatio)
	case ActionZoomOut:
		s.Viewport.ZoomOut(ZoomRatio)
	case ActionRecenter:
		s.Viewport.Recenter(a.Pos, s.Width, s.Height)
	case ActionDrag:
		s.Viewport.Drag(a.Delta, s.Width, s.Height)
	case ActionToggleOverlay:
		s.Overlay = !s.Overlay
	case ActionQuit:
		s.Running = false
	default:
		return
	}
	s.Changed = true
}

// Drain applies every queued action and reports whether a render is due.
func (s *State) Drain(q *types.Queue[Action]) bool {
	for {
		a, ok := q.Pop()
		if !ok {
			return s.Changed
		}
		s.Apply(a)
	}
}
