package dock

import (
	"go.uber.org/zap"
)

// Vec2 is a screen-space point or extent.
type Vec2 struct {
	X float32
	Y float32
}

// FloatingWindow holds undocked panels outside the tree.
type FloatingWindow struct {
	Panels   []PanelID
	Active   int
	Position Vec2
	Size     Vec2
	ID       DockID
}

// ActivePanel returns the foreground panel of the window.
func (w FloatingWindow) ActivePanel() (PanelID, bool) {
	if len(w.Panels) == 0 || w.Active < 0 || w.Active >= len(w.Panels) {
		return "", false
	}
	return w.Panels[w.Active], true
}

func (w FloatingWindow) clone() FloatingWindow {
	w.Panels = append([]PanelID(nil), w.Panels...)
	return w
}

func (w FloatingWindow) equal(o FloatingWindow) bool {
	if w.ID != o.ID || w.Active != o.Active || w.Position != o.Position || w.Size != o.Size {
		return false
	}
	if len(w.Panels) != len(o.Panels) {
		return false
	}
	for i := range w.Panels {
		if w.Panels[i] != o.Panels[i] {
			return false
		}
	}
	return true
}

// FloatingWindow returns the floating window with the given id.
func (l *Layout) FloatingWindow(id DockID) (FloatingWindow, bool) {
	for _, w := range l.Floating {
		if w.ID == id {
			return w, true
		}
	}
	return FloatingWindow{}, false
}

func (l *Layout) floatingHolding(panel PanelID) (int, bool) {
	for i, w := range l.Floating {
		for _, p := range w.Panels {
			if p == panel {
				return i, true
			}
		}
	}
	return -1, false
}

// UndockPanel removes panel from the tree and places it alone in a new
// floating window. It returns the window id.
func (l *Layout) UndockPanel(panel PanelID, position, size Vec2) (DockID, bool) {
	removed, ok := l.RemovePanel(panel)
	if !ok {
		return 0, false
	}
	w := FloatingWindow{
		Panels:   []PanelID{removed},
		Position: position,
		Size:     size,
		ID:       NewID(),
	}
	l.Floating = append(l.Floating, w)
	l.touch()
	return w.ID, true
}

// DockFloatingWindow removes the floating window and inserts each of its
// panels, in window order, into the tree according to zone. For edge zones
// every panel splits the target container separately, so one tabbed window
// can end up spread across several containers.
//
// The window is left untouched when the target container does not exist.
func (l *Layout) DockFloatingWindow(window DockID, target DockID, zone DropZone) bool {
	pos := -1
	for i, w := range l.Floating {
		if w.ID == window {
			pos = i
			break
		}
	}
	if pos < 0 {
		l.logger().Debug("dock window: no such window", zap.Stringer("window", window))
		return false
	}
	if l.Container(target) == nil {
		l.logger().Debug("dock window: no such container", zap.Stringer("container", target))
		return false
	}

	w := l.Floating[pos]
	l.Floating = append(l.Floating[:pos], l.Floating[pos+1:]...)
	l.touch()

	for _, panel := range w.Panels {
		res, ok := l.Apply(panel, target, zone)
		if !ok {
			l.logger().Warn("dock window: panel not inserted",
				zap.String("panel", string(panel)), zap.Stringer("zone", zone))
			continue
		}
		if zone != Center {
			target = res.Original
		}
	}
	return true
}
