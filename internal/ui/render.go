package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dockyard/internal/dock"
	"dockyard/internal/interact"
	"dockyard/internal/ui/textutil"
)

// Preview is the transient drag state drawn on top of the layout.
type Preview struct {
	Dragging  bool
	Panel     dock.PanelID
	HasTarget bool
	Target    dock.DockID
	Zone      dock.DropZone
	OverShelf bool

	Resizing bool
	Split    dock.DockID
}

// PreviewOf reads the preview from the controllers' open sessions.
func PreviewOf(c *interact.Controllers, over interact.Hover) Preview {
	var p Preview
	if s, ok := c.Dividers.Session(); ok {
		p.Resizing = true
		p.Split = s.Split
	}
	if c.Panels.State() == interact.DragActive {
		s, _ := c.Panels.Session()
		p.Dragging = true
		p.Panel = s.Panel
		p.HasTarget = s.HasTarget
		p.Target = s.Target
		p.Zone = s.Zone
		p.OverShelf = !s.HasTarget && over.FloatingArea
	}
	return p
}

type frameKey struct {
	layout   *dock.Layout
	revision uint64
	width    int
	height   int
	focus    dock.DockID
	preview  Preview
	status   string
}

// TerminalPresenter draws a layout with lipgloss and answers hit tests
// against the geometry of the last presented layout.
type TerminalPresenter struct {
	Content ContentProvider
	Focus   dock.DockID
	Preview Preview

	width, height int
	layout        *dock.Layout
	revision      uint64
	arr           Arrangement
	arranged      bool

	lastKey   frameKey
	lastFrame string
}

var _ LayoutPresenter = (*TerminalPresenter)(nil)

// NewTerminalPresenter returns a presenter. content may be nil.
func NewTerminalPresenter(content ContentProvider) *TerminalPresenter {
	if content == nil {
		content = PlaceholderContent
	}
	return &TerminalPresenter{Content: content}
}

// Resize sets the screen size in cells.
func (p *TerminalPresenter) Resize(width, height int) {
	if width == p.width && height == p.height {
		return
	}
	p.width, p.height = width, height
	p.arranged = false
}

// Present re-arranges l when it is a different layout, its revision moved or
// the screen was resized.
func (p *TerminalPresenter) Present(l *dock.Layout) {
	var rev uint64
	if l != nil {
		rev = l.Revision()
	}
	if p.arranged && l == p.layout && rev == p.revision {
		return
	}
	p.layout = l
	p.revision = rev
	p.arr = Arrange(l, p.width, p.height)
	p.arranged = true
}

// Arrangement returns the geometry of the last presented layout.
func (p *TerminalPresenter) Arrangement() *Arrangement {
	return &p.arr
}

// HitTest implements LayoutPresenter.
func (p *TerminalPresenter) HitTest(x, y int) interact.Hover {
	return p.arr.HitTest(x, y)
}

// Render draws the last presented layout with status in the bottom line.
func (p *TerminalPresenter) Render(status string) string {
	key := frameKey{
		layout: p.layout, revision: p.revision,
		width: p.width, height: p.height,
		focus: p.Focus, preview: p.Preview, status: status,
	}
	if p.lastFrame != "" && key == p.lastKey {
		return p.lastFrame
	}
	if p.width < 4 || p.height < shelfHeight+statusHeight {
		return ""
	}

	var parts []string
	if !p.arr.Tree.Empty() {
		var root *dock.Node
		if p.layout != nil {
			root = p.layout.Root
		}
		parts = append(parts, p.renderNode(root, p.arr.Tree))
	}
	parts = append(parts, p.renderShelf(), statusLine(status, p.width))

	p.lastKey = key
	p.lastFrame = lipgloss.JoinVertical(lipgloss.Left, parts...)
	return p.lastFrame
}

func (p *TerminalPresenter) renderNode(n *dock.Node, r Rect) string {
	if n == nil {
		return textutil.Block("", r.W, r.H)
	}
	if n.IsContainer() {
		return p.renderContainer(n, r)
	}

	total := r.W
	if n.Direction == dock.Vertical {
		total = r.H
	}
	first, second, ok := splitSizes(total, n.Ratio)
	if !ok {
		return p.renderNode(n.First, r)
	}
	div := Styles.Divider
	if p.Preview.Resizing && p.Preview.Split == n.ID {
		div = Styles.DividerActive
	}
	if n.Direction == dock.Horizontal {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			p.renderNode(n.First, Rect{X: r.X, Y: r.Y, W: first, H: r.H}),
			div.Render(strings.TrimSuffix(strings.Repeat("│\n", r.H), "\n")),
			p.renderNode(n.Second, Rect{X: r.X + first + 1, Y: r.Y, W: second, H: r.H}),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		p.renderNode(n.First, Rect{X: r.X, Y: r.Y, W: r.W, H: first}),
		div.Render(strings.Repeat("─", r.W)),
		p.renderNode(n.Second, Rect{X: r.X, Y: r.Y + first + 1, W: r.W, H: second}),
	)
}

func (p *TerminalPresenter) renderContainer(n *dock.Node, r Rect) string {
	if r.W < 3 || r.H < 3 {
		return textutil.Block("", r.W, r.H)
	}
	innerW, innerH := r.W-2, r.H-2
	target := p.Preview.Dragging && p.Preview.HasTarget && p.Preview.Target == n.ID

	box, _ := p.arr.Container(n.ID)
	header, used := renderTabs(box.Tabs)
	if target {
		marker := " ▸ " + p.Preview.Zone.String()
		if used+textutil.Width(marker) <= innerW {
			header += strings.Repeat(" ", innerW-used-textutil.Width(marker)) + Styles.Zone.Render(marker)
			used = innerW
		}
	}
	if used < innerW {
		header += strings.Repeat(" ", innerW-used)
	}

	body := header
	if innerH > 1 {
		content := textutil.Block("", innerW, innerH-1)
		if panel, ok := n.ActivePanel(); ok {
			content = p.Content.Content(panel, innerW, innerH-1)
		}
		body += "\n" + content
	}

	style := Styles.Container
	switch {
	case target:
		style = Styles.ContainerTarget
	case n.ID == p.Focus:
		style = Styles.ContainerFocused
	}
	return style.
		Width(innerW).
		Height(innerH).
		MaxWidth(r.W).
		MaxHeight(r.H).
		Render(body)
}

func renderTabs(tabs []TabBox) (string, int) {
	var b strings.Builder
	used := 0
	for _, t := range tabs {
		if t.Active {
			b.WriteString(Styles.TabActive.Render(t.Label))
		} else {
			b.WriteString(Styles.Tab.Render(t.Label))
		}
		used += t.Rect.W
	}
	return b.String(), used
}

func (p *TerminalPresenter) renderShelf() string {
	r := p.arr.Shelf
	var b strings.Builder
	b.WriteString(shelfLabel)
	for i, f := range p.arr.Floating {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(Styles.Chip.Render(f.Label))
	}
	if p.layout != nil && len(p.arr.Floating) < len(p.layout.Floating) {
		b.WriteString(" …")
	}

	style := Styles.Shelf
	if p.Preview.OverShelf {
		style = style.BorderForeground(lipgloss.Color(ColorHighlight))
	}
	return style.
		Width(r.W - 2).
		MaxWidth(r.W).
		MaxHeight(r.H).
		Render(b.String())
}

// statusLine fits styled status text into one row.
func statusLine(s string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		MaxWidth(width).
		MaxHeight(1).
		Render(s)
}
