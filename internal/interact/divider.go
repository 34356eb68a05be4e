package interact

import (
	"go.uber.org/zap"

	"dockyard/internal/dock"
)

// DividerSession is the state of a divider drag in progress.
type DividerSession struct {
	Split      dock.DockID
	Direction  dock.SplitDirection
	StartRatio float32
	Press      dock.Vec2
	Extent     float32
}

// DividerResizeController resizes splits: Idle -> Dragging -> Idle. Any
// movement while held resizes; there is no threshold.
type DividerResizeController struct {
	active  bool
	session DividerSession
	log     *zap.Logger
}

// NewDividerResizeController returns an idle controller. log may be nil.
func NewDividerResizeController(log *zap.Logger) *DividerResizeController {
	if log == nil {
		log = zap.NewNop()
	}
	return &DividerResizeController{log: log}
}

// Dragging reports whether a divider is held.
func (c *DividerResizeController) Dragging() bool {
	return c.active
}

// Session returns the session in progress.
func (c *DividerResizeController) Session() (DividerSession, bool) {
	return c.session, c.active
}

func (c *DividerResizeController) reset() {
	c.active = false
	c.session = DividerSession{}
}

// Update advances the state machine by one frame and reports whether the
// layout changed.
func (c *DividerResizeController) Update(l *dock.Layout, f Frame) bool {
	if !c.active {
		c.begin(l, f)
		return false
	}
	if f.Released || !f.Held {
		c.reset()
		return false
	}

	s := c.session
	var delta float32
	if s.Direction == dock.Horizontal {
		delta = f.Pointer.X - s.Press.X
	} else {
		delta = f.Pointer.Y - s.Press.Y
	}

	before, ok := l.SplitRatio(s.Split)
	if !ok {
		c.log.Debug("resized split is gone", zap.Stringer("split", s.Split))
		c.reset()
		return false
	}
	l.UpdateSplitRatio(s.Split, s.StartRatio+delta/s.Extent)
	after, _ := l.SplitRatio(s.Split)
	return after != before
}

func (c *DividerResizeController) begin(l *dock.Layout, f Frame) {
	if !f.Pressed || f.Over.Divider == nil {
		return
	}
	d := f.Over.Divider
	if d.Extent <= 0 {
		return
	}
	ratio, ok := l.SplitRatio(d.Split)
	if !ok {
		return
	}
	c.active = true
	c.session = DividerSession{
		Split:      d.Split,
		Direction:  d.Direction,
		StartRatio: ratio,
		Press:      f.Pointer,
		Extent:     d.Extent,
	}
}
