package interact

import (
	"go.uber.org/zap"

	"dockyard/internal/dock"
)

// Controllers runs both state machines against one layout. A press starts at
// most one session, and while either session is open the other controller
// does not see input.
type Controllers struct {
	Panels   *PanelDragController
	Dividers *DividerResizeController
}

// Result is what a frame produced.
type Result struct {
	Panel   Outcome
	Resized bool
}

// Changed reports whether the frame edited the layout.
func (r Result) Changed() bool {
	switch r.Panel.Kind {
	case OutcomeDropped, OutcomeRedocked, OutcomeUndocked:
		return true
	}
	return r.Resized
}

// NewControllers returns idle controllers sharing a logger.
func NewControllers(log *zap.Logger) *Controllers {
	return &Controllers{
		Panels:   NewPanelDragController(log),
		Dividers: NewDividerResizeController(log),
	}
}

// Busy reports whether any session is open.
func (c *Controllers) Busy() bool {
	return c.Panels.State() != DragIdle || c.Dividers.Dragging()
}

// Update feeds the frame to whichever controller owns the pointer.
func (c *Controllers) Update(l *dock.Layout, f Frame) Result {
	switch {
	case c.Dividers.Dragging():
		return Result{Resized: c.Dividers.Update(l, f)}
	case c.Panels.State() != DragIdle:
		return Result{Panel: c.Panels.Update(l, f)}
	}

	if f.Pressed && f.Over.Divider != nil {
		c.Dividers.Update(l, f)
		if c.Dividers.Dragging() {
			return Result{}
		}
	}
	return Result{Panel: c.Panels.Update(l, f)}
}
