package dock

import (
	"errors"
	"fmt"
)

// ErrInvalidLayout is wrapped by every error Validate returns.
var ErrInvalidLayout = errors.New("invalid layout")

// Validate checks the structural invariants a layout from outside the
// process (a loaded file) must satisfy: unique ids, unique panels, active
// indexes in range, ratios in range, and well-formed splits. The largest
// DockID is reserved: the allocator could not move past it.
func (l *Layout) Validate() error {
	ids := make(map[DockID]bool)
	panels := make(map[PanelID]bool)

	claimID := func(id DockID) error {
		if id == MaxDockID {
			return fmt.Errorf("%w: id %d is reserved", ErrInvalidLayout, id)
		}
		if ids[id] {
			return fmt.Errorf("%w: duplicate id %d", ErrInvalidLayout, id)
		}
		ids[id] = true
		return nil
	}
	claimPanels := func(owner DockID, list []PanelID, active int) error {
		for _, p := range list {
			if panels[p] {
				return fmt.Errorf("%w: panel %q appears twice", ErrInvalidLayout, p)
			}
			panels[p] = true
		}
		if active < 0 || (len(list) > 0 && active >= len(list)) || (len(list) == 0 && active != 0) {
			return fmt.Errorf("%w: %d: active index %d out of range for %d panels", ErrInvalidLayout, owner, active, len(list))
		}
		return nil
	}

	var err error
	l.Root.Walk(func(n *Node) bool {
		if err = claimID(n.ID); err != nil {
			return false
		}
		switch n.Kind {
		case KindPanel:
			err = claimPanels(n.ID, n.Panels, n.Active)
		case KindSplit:
			switch {
			case n.First == nil || n.Second == nil:
				err = fmt.Errorf("%w: split %d is missing a child", ErrInvalidLayout, n.ID)
			case n.Ratio < MinRatio || n.Ratio > MaxRatio || n.Ratio != n.Ratio:
				err = fmt.Errorf("%w: split %d ratio %v outside [%v, %v]", ErrInvalidLayout, n.ID, n.Ratio, MinRatio, MaxRatio)
			case n.Direction != Horizontal && n.Direction != Vertical:
				err = fmt.Errorf("%w: split %d has unknown direction %d", ErrInvalidLayout, n.ID, n.Direction)
			}
		default:
			err = fmt.Errorf("%w: node %d has unknown kind %d", ErrInvalidLayout, n.ID, n.Kind)
		}
		return err == nil
	})
	if err != nil {
		return err
	}

	for _, w := range l.Floating {
		if err := claimID(w.ID); err != nil {
			return err
		}
		if len(w.Panels) == 0 {
			return fmt.Errorf("%w: floating window %d is empty", ErrInvalidLayout, w.ID)
		}
		if err := claimPanels(w.ID, w.Panels, w.Active); err != nil {
			return err
		}
	}
	return nil
}
