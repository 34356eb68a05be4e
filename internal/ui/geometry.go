package ui

import (
	"math"
	"strconv"

	"dockyard/internal/dock"
	"dockyard/internal/interact"
	"dockyard/internal/ui/textutil"
)

const (
	shelfHeight  = 3 // bordered, one row of chips
	statusHeight = 1
	shelfLabel   = "floating: "
)

// Rect is a cell rectangle.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) is inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether r has no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// TabBox is the clickable label of one panel in a container's header.
type TabBox struct {
	Panel  dock.PanelID
	Label  string
	Rect   Rect
	Active bool
}

// ContainerBox is the on-screen box of a container.
type ContainerBox struct {
	ID   dock.DockID
	Rect Rect
	Tabs []TabBox
}

// DividerBox is the one-cell strip between the children of a split.
type DividerBox struct {
	Split     dock.DockID
	Direction dock.SplitDirection
	Rect      Rect
	// Extent is the split's size along its axis.
	Extent int
}

// FloatingBox is a floating window's chip on the shelf.
type FloatingBox struct {
	Window dock.DockID
	Label  string
	Rect   Rect
}

// Arrangement is the screen geometry of a layout.
type Arrangement struct {
	Tree       Rect
	Shelf      Rect
	Status     Rect
	Containers []ContainerBox
	Dividers   []DividerBox
	Floating   []FloatingBox
}

// Container returns the box of the container with the given id.
func (a *Arrangement) Container(id dock.DockID) (ContainerBox, bool) {
	for _, c := range a.Containers {
		if c.ID == id {
			return c, true
		}
	}
	return ContainerBox{}, false
}

// Arrange computes the geometry of l on a width x height screen: the tree on
// top, the floating shelf and the status line below it.
func Arrange(l *dock.Layout, width, height int) Arrangement {
	treeH := height - shelfHeight - statusHeight
	if treeH < 0 {
		treeH = 0
	}
	a := Arrangement{
		Tree:   Rect{X: 0, Y: 0, W: width, H: treeH},
		Shelf:  Rect{X: 0, Y: treeH, W: width, H: shelfHeight},
		Status: Rect{X: 0, Y: treeH + shelfHeight, W: width, H: statusHeight},
	}
	if l == nil {
		return a
	}
	a.arrangeNode(l.Root, a.Tree)

	x := a.Shelf.X + 2 + textutil.Width(shelfLabel)
	limit := a.Shelf.X + a.Shelf.W - 2
	for _, w := range l.Floating {
		label := chipLabel(w)
		cw := textutil.Width(label)
		if x+cw > limit {
			break
		}
		a.Floating = append(a.Floating, FloatingBox{
			Window: w.ID,
			Label:  label,
			Rect:   Rect{X: x, Y: a.Shelf.Y + 1, W: cw, H: 1},
		})
		x += cw + 1
	}
	return a
}

func chipLabel(w dock.FloatingWindow) string {
	title, _ := w.ActivePanel()
	if n := len(w.Panels); n > 1 {
		return "[ " + string(title) + " +" + strconv.Itoa(n-1) + " ]"
	}
	return "[ " + string(title) + " ]"
}

func (a *Arrangement) arrangeNode(n *dock.Node, r Rect) {
	if n == nil || r.Empty() {
		return
	}
	if n.IsContainer() {
		a.Containers = append(a.Containers, ContainerBox{
			ID:   n.ID,
			Rect: r,
			Tabs: arrangeTabs(n, r),
		})
		return
	}

	total := r.W
	if n.Direction == dock.Vertical {
		total = r.H
	}
	first, second, ok := splitSizes(total, n.Ratio)
	if !ok {
		a.arrangeNode(n.First, r)
		return
	}
	if n.Direction == dock.Horizontal {
		a.arrangeNode(n.First, Rect{X: r.X, Y: r.Y, W: first, H: r.H})
		a.Dividers = append(a.Dividers, DividerBox{
			Split: n.ID, Direction: n.Direction, Extent: r.W,
			Rect: Rect{X: r.X + first, Y: r.Y, W: 1, H: r.H},
		})
		a.arrangeNode(n.Second, Rect{X: r.X + first + 1, Y: r.Y, W: second, H: r.H})
		return
	}
	a.arrangeNode(n.First, Rect{X: r.X, Y: r.Y, W: r.W, H: first})
	a.Dividers = append(a.Dividers, DividerBox{
		Split: n.ID, Direction: n.Direction, Extent: r.H,
		Rect: Rect{X: r.X, Y: r.Y + first, W: r.W, H: 1},
	})
	a.arrangeNode(n.Second, Rect{X: r.X, Y: r.Y + first + 1, W: r.W, H: second})
}

// splitSizes divides total cells between two children and a one-cell
// divider. ok is false when there is no room for all three.
func splitSizes(total int, ratio float32) (first, second int, ok bool) {
	usable := total - 1
	if usable < 2 {
		return 0, 0, false
	}
	first = int(math.Round(float64(usable) * float64(ratio)))
	if first < 1 {
		first = 1
	}
	if first > usable-1 {
		first = usable - 1
	}
	return first, usable - first, true
}

// arrangeTabs lays out tab labels on the first row inside the border.
func arrangeTabs(n *dock.Node, r Rect) []TabBox {
	if r.W < 3 || r.H < 3 {
		return nil
	}
	var tabs []TabBox
	x := r.X + 1
	limit := r.X + r.W - 1
	for i, p := range n.Panels {
		label := " " + string(p) + " "
		w := textutil.Width(label)
		if x+w > limit {
			w = limit - x
			if w <= 0 {
				break
			}
			label = textutil.Truncate(label, w)
		}
		tabs = append(tabs, TabBox{
			Panel:  p,
			Label:  label,
			Rect:   Rect{X: x, Y: r.Y + 1, W: w, H: 1},
			Active: i == n.Active,
		})
		x += w
	}
	return tabs
}

// HitTest reports what lies under the cell (x, y).
func (a *Arrangement) HitTest(x, y int) interact.Hover {
	var h interact.Hover
	for _, d := range a.Dividers {
		if d.Rect.Contains(x, y) {
			h.Divider = &interact.DividerRef{
				Split:     d.Split,
				Direction: d.Direction,
				Extent:    float32(d.Extent),
			}
			return h
		}
	}
	for _, c := range a.Containers {
		if !c.Rect.Contains(x, y) {
			continue
		}
		h.Container = &interact.ContainerRef{
			ID: c.ID,
			Norm: dock.Vec2{
				X: (float32(x-c.Rect.X) + 0.5) / float32(c.Rect.W),
				Y: (float32(y-c.Rect.Y) + 0.5) / float32(c.Rect.H),
			},
		}
		for _, t := range c.Tabs {
			if t.Rect.Contains(x, y) {
				h.Header = &interact.PanelRef{Panel: t.Panel, Container: c.ID}
				break
			}
		}
		return h
	}
	if a.Shelf.Contains(x, y) {
		h.FloatingArea = true
		for _, f := range a.Floating {
			if f.Rect.Contains(x, y) {
				h.Floating = &interact.FloatingRef{Window: f.Window}
				break
			}
		}
	}
	return h
}
