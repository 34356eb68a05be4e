package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dockyard/internal/dock"
)

func assertScreen(t *testing.T, out string, width, height int) {
	t.Helper()
	lines := strings.Split(out, "\n")
	require.Len(t, lines, height)
	for i, line := range lines {
		assert.Equal(t, width, lipgloss.Width(line), "line %d", i)
	}
}

func TestTerminalPresenter_Render(t *testing.T) {
	l, _, _ := twoColumns()
	p := NewTerminalPresenter(nil)
	p.Resize(40, 20)
	p.Present(l)

	out := p.Render("ready")
	assertScreen(t, out, 40, 20)
	assert.Contains(t, out, "Alpha")
	assert.Contains(t, out, "Beta")
	assert.Contains(t, out, "Gamma")
	assert.Contains(t, out, "Alpha slot")
	assert.Contains(t, out, "floating:")
	assert.Contains(t, out, "ready")
}

func TestTerminalPresenter_RenderVerticalAndFloating(t *testing.T) {
	l := dock.DefaultLayout()
	_, ok := l.UndockPanel(dock.PanelInspector, dock.Vec2{}, dock.Vec2{X: 24, Y: 8})
	require.True(t, ok)

	p := NewTerminalPresenter(ContentFunc(func(panel dock.PanelID, width, height int) string {
		return "content of " + string(panel)
	}))
	p.Resize(60, 24)
	p.Present(l)

	out := p.Render("")
	assertScreen(t, out, 60, 24)
	assert.Contains(t, out, "[ "+string(dock.PanelInspector)+" ]")
	assert.Contains(t, out, "content of "+string(dock.PanelViewport))
}

func TestTerminalPresenter_PresentTracksRevision(t *testing.T) {
	l, left, _ := twoColumns()
	p := NewTerminalPresenter(nil)
	p.Resize(40, 20)
	p.Present(l)
	require.Len(t, p.Arrangement().Containers, 2)

	_, ok := l.SplitContainer(left.ID, dock.Vertical, "Delta", 0.5)
	require.True(t, ok)
	p.Present(l)
	assert.Len(t, p.Arrangement().Containers, 3)

	p.Present(dock.NewLayout(dock.NewContainer("Solo")))
	assert.Len(t, p.Arrangement().Containers, 1)
}

func TestTerminalPresenter_RenderCachesFrames(t *testing.T) {
	l, _, right := twoColumns()
	p := NewTerminalPresenter(nil)
	p.Resize(40, 20)
	p.Present(l)

	first := p.Render("x")
	assert.Equal(t, first, p.Render("x"))

	p.Preview = Preview{Dragging: true, HasTarget: true, Target: right.ID, Zone: dock.Left}
	marked := p.Render("x")
	assert.NotEqual(t, first, marked)
	assert.Contains(t, marked, "▸ left")
	assertScreen(t, marked, 40, 20)
}

func TestTerminalPresenter_TinyScreen(t *testing.T) {
	l, _, _ := twoColumns()
	p := NewTerminalPresenter(nil)
	p.Resize(3, 3)
	p.Present(l)
	assert.Equal(t, "", p.Render("x"))
	assert.Empty(t, p.Arrangement().Containers)
}
