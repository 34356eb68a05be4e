package dock

// DropZone is the region of a container a dragged panel is released over.
type DropZone int

const (
	Center DropZone = iota
	Left
	Right
	Top
	Bottom
)

func (z DropZone) String() string {
	switch z {
	case Center:
		return "center"
	case Left:
		return "left"
	case Right:
		return "right"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Edge thresholds, as fractions of the container's width or height.
const (
	EdgeLow  float32 = 0.3
	EdgeHigh float32 = 0.7
)

// DropSplitRatio is the ratio used when a drop splits a container.
const DropSplitRatio float32 = 0.5

// Classify maps a cursor position normalized to the container's bounds
// ((0,0) top-left, (1,1) bottom-right) to a drop zone. Horizontal edges win
// over vertical ones; positions exactly on a threshold fall inward.
func Classify(x, y float32) DropZone {
	switch {
	case x < EdgeLow:
		return Left
	case x > EdgeHigh:
		return Right
	case y < EdgeLow:
		return Top
	case y > EdgeHigh:
		return Bottom
	default:
		return Center
	}
}

// Action describes the tree operation a zone maps to.
type Action struct {
	// Tab is true when the panel joins the container as a tab.
	Tab bool
	// Direction and Ratio apply when Tab is false.
	Direction SplitDirection
	Ratio     float32
}

// Action returns the tree operation for the zone. Left and Right both split
// horizontally and Top and Bottom both split vertically; the new panel is
// always the second child.
func (z DropZone) Action() Action {
	switch z {
	case Left, Right:
		return Action{Direction: Horizontal, Ratio: DropSplitRatio}
	case Top, Bottom:
		return Action{Direction: Vertical, Ratio: DropSplitRatio}
	default:
		return Action{Tab: true}
	}
}

// Apply inserts panel into the tree relative to the target container as
// zone dictates. For split zones the result carries the new ids; for Center
// it is zero.
func (l *Layout) Apply(panel PanelID, target DockID, zone DropZone) (SplitResult, bool) {
	a := zone.Action()
	if a.Tab {
		return SplitResult{}, l.AddPanelToContainer(panel, target)
	}
	return l.SplitContainer(target, a.Direction, panel, a.Ratio)
}
