package dock

import (
	"go.uber.org/zap"
)

// Layout is the unit of persistence: the docking tree plus the floating
// windows. Mutate it only through its methods so that Revision tracks changes.
type Layout struct {
	Root     *Node
	Floating []FloatingWindow

	revision uint64
	log      *zap.Logger
}

// NewLayout returns a layout with the given root and no floating windows.
func NewLayout(root *Node) *Layout {
	return &Layout{Root: root}
}

// SetLogger attaches a logger; stale-reference no-ops are logged at debug.
func (l *Layout) SetLogger(log *zap.Logger) {
	l.log = log
}

func (l *Layout) logger() *zap.Logger {
	if l.log == nil {
		return zap.NewNop()
	}
	return l.log
}

// Revision increases every time an operation changes the layout. Presenters
// compare it against the last revision they rendered.
func (l *Layout) Revision() uint64 {
	return l.revision
}

func (l *Layout) touch() {
	l.revision++
}

// Clone returns a deep copy with the same ids. The copy shares the logger
// and starts at revision zero.
func (l *Layout) Clone() *Layout {
	c := &Layout{Root: l.Root.Clone(), log: l.log}
	for _, w := range l.Floating {
		c.Floating = append(c.Floating, w.clone())
	}
	return c
}

// Equal reports structural equality: tree shape, ids, ratios, panels and
// floating windows.
func (l *Layout) Equal(o *Layout) bool {
	if l == nil || o == nil {
		return l == nil && o == nil
	}
	if !l.Root.Equal(o.Root) || len(l.Floating) != len(o.Floating) {
		return false
	}
	for i := range l.Floating {
		if !l.Floating[i].equal(o.Floating[i]) {
			return false
		}
	}
	return true
}

// AllPanelIDs returns every docked panel in pre-order. Floating panels are
// not included.
func (l *Layout) AllPanelIDs() []PanelID {
	return l.Root.AllPanels()
}

// FindContainer returns the container holding panel, or nil.
func (l *Layout) FindContainer(panel PanelID) *Node {
	return l.Root.FindContainer(panel)
}

// FindNode returns the tree node with the given id, or nil.
func (l *Layout) FindNode(id DockID) *Node {
	return l.Root.Find(id)
}

// Container returns the container with the given id, or nil when the id is
// unknown or names a split.
func (l *Layout) Container(id DockID) *Node {
	n := l.FindNode(id)
	if !n.IsContainer() {
		return nil
	}
	return n
}

// SplitRatio returns the ratio of the split with the given id.
func (l *Layout) SplitRatio(id DockID) (float32, bool) {
	n := l.FindNode(id)
	if !n.IsSplit() {
		return 0, false
	}
	return n.Ratio, true
}

// IsPlaced reports whether panel is docked in the tree or held by a
// floating window.
func (l *Layout) IsPlaced(panel PanelID) bool {
	if l.FindContainer(panel) != nil {
		return true
	}
	_, ok := l.floatingHolding(panel)
	return ok
}

// MaxID returns the largest id in the tree and floating windows.
func (l *Layout) MaxID() (DockID, bool) {
	max, ok := l.Root.maxID()
	for _, w := range l.Floating {
		if !ok || w.ID > max {
			max = w.ID
			ok = true
		}
	}
	return max, ok
}

// ReserveIDs advances the id allocator past every id in the layout. Call it
// after loading a layout and before minting new ids.
func (l *Layout) ReserveIDs() {
	if max, ok := l.MaxID(); ok {
		ReserveIDs(max)
	}
}

// AddPanelToContainer appends panel to the container and makes it active.
// Unknown containers, splits and already placed panels are ignored.
func (l *Layout) AddPanelToContainer(panel PanelID, container DockID) bool {
	c := l.Container(container)
	if c == nil {
		l.logger().Debug("add panel: no such container",
			zap.String("panel", string(panel)), zap.Stringer("container", container))
		return false
	}
	if l.IsPlaced(panel) {
		l.logger().Debug("add panel: already placed", zap.String("panel", string(panel)))
		return false
	}
	c.Panels = append(c.Panels, panel)
	c.Active = len(c.Panels) - 1
	l.touch()
	return true
}

// RemovePanel removes panel from whichever container holds it. The container
// stays in the tree even when it becomes empty.
func (l *Layout) RemovePanel(panel PanelID) (PanelID, bool) {
	c := l.FindContainer(panel)
	if c == nil {
		l.logger().Debug("remove panel: not docked", zap.String("panel", string(panel)))
		return "", false
	}
	pos := c.indexOf(panel)
	removed := c.Panels[pos]
	c.Panels = append(c.Panels[:pos], c.Panels[pos+1:]...)
	switch {
	case len(c.Panels) == 0:
		c.Active = 0
	case c.Active >= len(c.Panels):
		c.Active = len(c.Panels) - 1
	}
	l.touch()
	return removed, true
}

// SetActivePanel brings panel to the foreground of the container.
func (l *Layout) SetActivePanel(container DockID, panel PanelID) bool {
	c := l.Container(container)
	if c == nil {
		return false
	}
	i := c.indexOf(panel)
	if i < 0 {
		return false
	}
	if c.Active != i {
		c.Active = i
		l.touch()
	}
	return true
}

// SplitResult reports the ids created by SplitContainer.
type SplitResult struct {
	// Split is the new split node that took the container's place.
	Split DockID
	// Original is the new id of the container that was split.
	Original DockID
	// Added is the id of the new single-panel container.
	Added DockID
}

// SplitContainer replaces the container in place with a split. The original
// container becomes First under a fresh id; a new container holding panel
// becomes Second.
func (l *Layout) SplitContainer(container DockID, dir SplitDirection, panel PanelID, ratio float32) (SplitResult, bool) {
	c := l.Container(container)
	if c == nil {
		l.logger().Debug("split: no such container", zap.Stringer("container", container))
		return SplitResult{}, false
	}
	if l.IsPlaced(panel) {
		l.logger().Debug("split: panel already placed", zap.String("panel", string(panel)))
		return SplitResult{}, false
	}

	original := &Node{
		Kind:   KindPanel,
		ID:     NewID(),
		Panels: c.Panels,
		Active: c.Active,
	}
	added := NewContainer(panel)
	*c = *NewSplit(dir, ratio, original, added)
	l.touch()

	return SplitResult{Split: c.ID, Original: original.ID, Added: added.ID}, true
}

// UpdateSplitRatio sets the split's ratio, clamped to [MinRatio, MaxRatio].
func (l *Layout) UpdateSplitRatio(split DockID, ratio float32) bool {
	n := l.FindNode(split)
	if !n.IsSplit() {
		l.logger().Debug("update ratio: no such split", zap.Stringer("split", split))
		return false
	}
	clamped := ClampRatio(ratio)
	if n.Ratio != clamped {
		n.Ratio = clamped
		l.touch()
	}
	return true
}
