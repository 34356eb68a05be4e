package dock

// PanelID names a panel. The engine never interprets it.
type PanelID string

// Kind tags the variant of a Node.
type Kind int

const (
	KindPanel Kind = iota
	KindSplit
)

func (k Kind) String() string {
	switch k {
	case KindPanel:
		return "panel"
	case KindSplit:
		return "split"
	default:
		return "unknown"
	}
}

// SplitDirection is the axis a split divides along.
type SplitDirection int

const (
	// Horizontal places children left and right of a vertical divider.
	Horizontal SplitDirection = iota
	// Vertical places children above and below a horizontal divider.
	Vertical
)

func (d SplitDirection) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Ratio bounds for splits. Neither side of a split may collapse.
const (
	MinRatio float32 = 0.1
	MaxRatio float32 = 0.9
)

// ClampRatio limits r to [MinRatio, MaxRatio].
func ClampRatio(r float32) float32 {
	if r != r { // NaN
		return 0.5
	}
	if r < MinRatio {
		return MinRatio
	}
	if r > MaxRatio {
		return MaxRatio
	}
	return r
}

// Node is one element of the docking tree. Panel nodes (containers) use
// Panels and Active; Split nodes use Direction, Ratio, First and Second.
type Node struct {
	Kind Kind
	ID   DockID

	// Panel variant.
	Panels []PanelID
	Active int

	// Split variant. Ratio is the share of space given to First.
	Direction SplitDirection
	Ratio     float32
	First     *Node
	Second    *Node
}

// NewContainer returns a Panel node with a fresh id holding panels in tab order.
func NewContainer(panels ...PanelID) *Node {
	return &Node{
		Kind:   KindPanel,
		ID:     NewID(),
		Panels: append([]PanelID(nil), panels...),
	}
}

// NewSplit returns a Split node with a fresh id. The ratio is clamped.
func NewSplit(dir SplitDirection, ratio float32, first, second *Node) *Node {
	return &Node{
		Kind:      KindSplit,
		ID:        NewID(),
		Direction: dir,
		Ratio:     ClampRatio(ratio),
		First:     first,
		Second:    second,
	}
}

// IsContainer reports whether n is a Panel node.
func (n *Node) IsContainer() bool {
	return n != nil && n.Kind == KindPanel
}

// IsSplit reports whether n is a Split node.
func (n *Node) IsSplit() bool {
	return n != nil && n.Kind == KindSplit
}

// ActivePanel returns the foreground panel of a container.
func (n *Node) ActivePanel() (PanelID, bool) {
	if !n.IsContainer() || len(n.Panels) == 0 || n.Active < 0 || n.Active >= len(n.Panels) {
		return "", false
	}
	return n.Panels[n.Active], true
}

// HasPanel reports whether the container holds id.
func (n *Node) HasPanel(id PanelID) bool {
	return n.indexOf(id) >= 0
}

func (n *Node) indexOf(id PanelID) int {
	if !n.IsContainer() {
		return -1
	}
	for i, p := range n.Panels {
		if p == id {
			return i
		}
	}
	return -1
}

// AllPanels returns the panel ids of the subtree in pre-order.
func (n *Node) AllPanels() []PanelID {
	var out []PanelID
	n.Walk(func(c *Node) bool {
		if c.IsContainer() {
			out = append(out, c.Panels...)
		}
		return true
	})
	return out
}

// Walk visits the subtree in pre-order, First before Second. Returning false
// from fn stops the walk.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	if n.IsSplit() {
		if !n.First.Walk(fn) {
			return false
		}
		return n.Second.Walk(fn)
	}
	return true
}

// Find returns the node in the subtree with the given id.
func (n *Node) Find(id DockID) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if c.ID == id {
			found = c
			return false
		}
		return true
	})
	return found
}

// FindContainer returns the first container in the subtree holding panel.
func (n *Node) FindContainer(panel PanelID) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if c.HasPanel(panel) {
			found = c
			return false
		}
		return true
	})
	return found
}

// Clone returns a deep copy of the subtree, ids included.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := *n
	if n.Panels != nil {
		c.Panels = append([]PanelID(nil), n.Panels...)
	}
	c.First = n.First.Clone()
	c.Second = n.Second.Clone()
	return &c
}

// Equal reports whether two subtrees have the same shape, ids, panels,
// active indexes and ratios.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == nil && o == nil
	}
	if n.Kind != o.Kind || n.ID != o.ID {
		return false
	}
	switch n.Kind {
	case KindPanel:
		if n.Active != o.Active || len(n.Panels) != len(o.Panels) {
			return false
		}
		for i := range n.Panels {
			if n.Panels[i] != o.Panels[i] {
				return false
			}
		}
		return true
	case KindSplit:
		return n.Direction == o.Direction &&
			n.Ratio == o.Ratio &&
			n.First.Equal(o.First) &&
			n.Second.Equal(o.Second)
	}
	return false
}

// maxID returns the largest id in the subtree.
func (n *Node) maxID() (DockID, bool) {
	var max DockID
	seen := false
	n.Walk(func(c *Node) bool {
		if !seen || c.ID > max {
			max = c.ID
			seen = true
		}
		return true
	})
	return max, seen
}
