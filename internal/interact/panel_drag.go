package interact

import (
	"go.uber.org/zap"

	"dockyard/internal/dock"
)

// DragThreshold is how far, in pixels, the pointer must travel from the
// press before a press on a tab becomes a drag.
const DragThreshold float32 = 5

// DragState is the phase of a panel drag.
type DragState int

const (
	DragIdle DragState = iota
	DragPotential
	DragActive
)

func (s DragState) String() string {
	switch s {
	case DragIdle:
		return "idle"
	case DragPotential:
		return "potential"
	case DragActive:
		return "active"
	default:
		return "unknown"
	}
}

// DragSession is the state of a panel drag in progress.
type DragSession struct {
	Panel dock.PanelID
	// Source is the container the panel was pressed in, or the floating
	// window id when FromFloating is set.
	Source       dock.DockID
	FromFloating bool
	Press        dock.Vec2
	Pointer      dock.Vec2

	HasTarget bool
	Target    dock.DockID
	Zone      dock.DropZone
}

// OutcomeKind says what a frame of the panel drag produced.
type OutcomeKind int

const (
	OutcomeNone OutcomeKind = iota
	// OutcomeClick: released before the threshold. The host decides what a
	// click on a tab means.
	OutcomeClick
	// OutcomeDropped: the panel was moved within the tree.
	OutcomeDropped
	// OutcomeRedocked: a floating window was docked into the tree.
	OutcomeRedocked
	// OutcomeUndocked: the panel was moved into a new floating window.
	OutcomeUndocked
	// OutcomeCancelled: released with no usable target; nothing changed.
	OutcomeCancelled
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeNone:
		return "none"
	case OutcomeClick:
		return "click"
	case OutcomeDropped:
		return "dropped"
	case OutcomeRedocked:
		return "redocked"
	case OutcomeUndocked:
		return "undocked"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Outcome reports the result of a frame.
type Outcome struct {
	Kind   OutcomeKind
	Panel  dock.PanelID
	Source dock.DockID
	Target dock.DockID
	Zone   dock.DropZone
	// Window is the floating window created by an undock or consumed by a
	// redock.
	Window dock.DockID
}

// PanelDragController moves panels by drag and drop:
// Idle -> PotentialDrag -> ActiveDrag -> Idle.
// The tree is changed only on release over a target, never while dragging.
type PanelDragController struct {
	// FloatingSize is the size given to windows created by dropping a panel
	// on the floating area.
	FloatingSize dock.Vec2

	state   DragState
	session DragSession
	log     *zap.Logger
}

// NewPanelDragController returns an idle controller. log may be nil.
func NewPanelDragController(log *zap.Logger) *PanelDragController {
	if log == nil {
		log = zap.NewNop()
	}
	return &PanelDragController{
		FloatingSize: dock.Vec2{X: 400, Y: 300},
		log:          log,
	}
}

// State returns the current phase.
func (c *PanelDragController) State() DragState {
	return c.state
}

// Session returns the session in progress.
func (c *PanelDragController) Session() (DragSession, bool) {
	if c.state == DragIdle {
		return DragSession{}, false
	}
	return c.session, true
}

func (c *PanelDragController) reset() {
	c.state = DragIdle
	c.session = DragSession{}
}

// Update advances the state machine by one frame.
func (c *PanelDragController) Update(l *dock.Layout, f Frame) Outcome {
	switch c.state {
	case DragIdle:
		c.begin(f)
		return Outcome{}
	case DragPotential:
		if f.Released {
			out := Outcome{Kind: OutcomeClick, Panel: c.session.Panel, Source: c.session.Source}
			c.reset()
			return out
		}
		if !f.Held {
			c.reset()
			return Outcome{}
		}
		if d := distance(c.session.Press, f.Pointer); d > DragThreshold {
			c.state = DragActive
			c.log.Debug("panel drag started",
				zap.String("panel", string(c.session.Panel)), zap.Float32("distance", d))
		} else {
			return Outcome{}
		}
		fallthrough
	case DragActive:
		c.track(f)
		if f.Released || !f.Held {
			return c.drop(l, f)
		}
	}
	return Outcome{}
}

func (c *PanelDragController) begin(f Frame) {
	if !f.Pressed {
		return
	}
	switch {
	case f.Over.Header != nil:
		c.session = DragSession{
			Panel:   f.Over.Header.Panel,
			Source:  f.Over.Header.Container,
			Press:   f.Pointer,
			Pointer: f.Pointer,
		}
	case f.Over.Floating != nil:
		c.session = DragSession{
			Source:       f.Over.Floating.Window,
			FromFloating: true,
			Press:        f.Pointer,
			Pointer:      f.Pointer,
		}
	default:
		return
	}
	c.state = DragPotential
}

func (c *PanelDragController) track(f Frame) {
	c.session.Pointer = f.Pointer
	if f.Over.Container == nil {
		c.session.HasTarget = false
		c.session.Target = 0
		c.session.Zone = dock.Center
		return
	}
	c.session.HasTarget = true
	c.session.Target = f.Over.Container.ID
	c.session.Zone = dock.Classify(f.Over.Container.Norm.X, f.Over.Container.Norm.Y)
}

func (c *PanelDragController) drop(l *dock.Layout, f Frame) Outcome {
	s := c.session
	c.reset()

	out := Outcome{Kind: OutcomeCancelled, Panel: s.Panel, Source: s.Source, Target: s.Target, Zone: s.Zone}

	if !s.HasTarget {
		if f.Over.FloatingArea && !s.FromFloating {
			if win, ok := l.UndockPanel(s.Panel, f.Pointer, c.FloatingSize); ok {
				out.Kind = OutcomeUndocked
				out.Window = win
			}
		}
		return out
	}

	if l.Container(s.Target) == nil {
		c.log.Debug("drop target is gone", zap.Stringer("target", s.Target))
		return out
	}

	if s.FromFloating {
		if l.DockFloatingWindow(s.Source, s.Target, s.Zone) {
			out.Kind = OutcomeRedocked
			out.Window = s.Source
		}
		return out
	}

	if _, ok := l.RemovePanel(s.Panel); !ok {
		c.log.Debug("dragged panel is no longer docked", zap.String("panel", string(s.Panel)))
		return out
	}
	if _, ok := l.Apply(s.Panel, s.Target, s.Zone); !ok {
		c.log.Warn("drop failed after removal, restoring panel", zap.String("panel", string(s.Panel)))
		l.AddPanelToContainer(s.Panel, s.Source)
		return out
	}
	out.Kind = OutcomeDropped
	return out
}
