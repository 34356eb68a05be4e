// Package interact turns per-frame pointer facts into docking edits. It holds
// the two interaction state machines: dragging a panel to a new place in the
// tree, and dragging a split divider to resize.
//
// Sessions store only ids. Each frame the controllers look the ids up again
// in the layout, so a session that outlives its node simply does nothing.
package interact

import (
	"math"

	"dockyard/internal/dock"
)

// PanelRef is a tab or panel header under the pointer.
type PanelRef struct {
	Panel     dock.PanelID
	Container dock.DockID
}

// FloatingRef is the header of a floating window under the pointer.
type FloatingRef struct {
	Window dock.DockID
}

// DividerRef is a split divider under the pointer. Extent is the split's
// size in pixels along its axis (width for Horizontal, height for Vertical).
type DividerRef struct {
	Split     dock.DockID
	Direction dock.SplitDirection
	Extent    float32
}

// ContainerRef is the container under the pointer, with the pointer
// position normalized to its bounds.
type ContainerRef struct {
	ID   dock.DockID
	Norm dock.Vec2
}

// Hover describes what the presentation layer found under the pointer this
// frame. At most one of Header, Floating and Divider is set at a press; the
// container is reported independently because it underlies its own header.
type Hover struct {
	Header    *PanelRef
	Floating  *FloatingRef
	Divider   *DividerRef
	Container *ContainerRef
	// FloatingArea is true when the pointer is over the region where
	// undocked windows live rather than over the tree.
	FloatingArea bool
}

// Frame is the input for one update pass.
type Frame struct {
	Pointer dock.Vec2
	// Pressed and Released are button edges this frame; Held is the level.
	Pressed  bool
	Released bool
	Held     bool
	Over     Hover
}

func distance(a, b dock.Vec2) float32 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return float32(math.Hypot(dx, dy))
}
