package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dockyard/internal/dock"
	"dockyard/internal/interact"
	"dockyard/internal/ui/textutil"
)

// twoColumns is Split(H, 0.5){[Alpha, Beta], [Gamma]}.
func twoColumns() (*dock.Layout, *dock.Node, *dock.Node) {
	left := dock.NewContainer("Alpha", "Beta")
	right := dock.NewContainer("Gamma")
	return dock.NewLayout(dock.NewSplit(dock.Horizontal, 0.5, left, right)), left, right
}

func TestSplitSizes(t *testing.T) {
	tests := []struct {
		total         int
		ratio         float32
		first, second int
		ok            bool
	}{
		{40, 0.5, 20, 19, true},
		{10, 0.1, 1, 8, true},
		{10, 0.9, 8, 1, true},
		{3, 0.5, 1, 1, true},
		{2, 0.5, 0, 0, false},
	}
	for _, tt := range tests {
		first, second, ok := splitSizes(tt.total, tt.ratio)
		assert.Equal(t, tt.ok, ok, "total=%d ratio=%v", tt.total, tt.ratio)
		assert.Equal(t, tt.first, first, "total=%d ratio=%v", tt.total, tt.ratio)
		assert.Equal(t, tt.second, second, "total=%d ratio=%v", tt.total, tt.ratio)
	}
}

func TestArrange_HorizontalSplit(t *testing.T) {
	l, left, right := twoColumns()
	a := Arrange(l, 40, 20)

	assert.Equal(t, Rect{X: 0, Y: 0, W: 40, H: 16}, a.Tree)
	assert.Equal(t, Rect{X: 0, Y: 16, W: 40, H: 3}, a.Shelf)
	assert.Equal(t, Rect{X: 0, Y: 19, W: 40, H: 1}, a.Status)

	require.Len(t, a.Containers, 2)
	lb, ok := a.Container(left.ID)
	require.True(t, ok)
	assert.Equal(t, Rect{X: 0, Y: 0, W: 20, H: 16}, lb.Rect)
	rb, ok := a.Container(right.ID)
	require.True(t, ok)
	assert.Equal(t, Rect{X: 21, Y: 0, W: 19, H: 16}, rb.Rect)

	require.Len(t, a.Dividers, 1)
	d := a.Dividers[0]
	assert.Equal(t, l.Root.ID, d.Split)
	assert.Equal(t, Rect{X: 20, Y: 0, W: 1, H: 16}, d.Rect)
	assert.Equal(t, 40, d.Extent)

	require.Len(t, lb.Tabs, 2)
	assert.Equal(t, TabBox{Panel: "Alpha", Label: " Alpha ", Rect: Rect{X: 1, Y: 1, W: 7, H: 1}, Active: true}, lb.Tabs[0])
	assert.Equal(t, TabBox{Panel: "Beta", Label: " Beta ", Rect: Rect{X: 8, Y: 1, W: 6, H: 1}}, lb.Tabs[1])
}

func TestArrange_VerticalSplit(t *testing.T) {
	top := dock.NewContainer("Alpha")
	bottom := dock.NewContainer("Beta")
	l := dock.NewLayout(dock.NewSplit(dock.Vertical, 0.25, top, bottom))
	a := Arrange(l, 30, 24)

	tb, _ := a.Container(top.ID)
	bb, _ := a.Container(bottom.ID)
	assert.Equal(t, Rect{X: 0, Y: 0, W: 30, H: 5}, tb.Rect)
	assert.Equal(t, Rect{X: 0, Y: 6, W: 30, H: 14}, bb.Rect)
	require.Len(t, a.Dividers, 1)
	assert.Equal(t, Rect{X: 0, Y: 5, W: 30, H: 1}, a.Dividers[0].Rect)
	assert.Equal(t, 20, a.Dividers[0].Extent)
}

func TestArrange_TooSmallSplitShowsFirstChild(t *testing.T) {
	l, left, right := twoColumns()
	a := Arrange(l, 2, 10)

	require.Len(t, a.Containers, 1)
	assert.Equal(t, left.ID, a.Containers[0].ID)
	_, ok := a.Container(right.ID)
	assert.False(t, ok)
	assert.Empty(t, a.Dividers)
}

func TestArrange_TruncatesTabs(t *testing.T) {
	l := dock.NewLayout(dock.NewContainer("Inspector", "Hierarchy"))
	a := Arrange(l, 8, 10)

	require.Len(t, a.Containers, 1)
	tabs := a.Containers[0].Tabs
	require.Len(t, tabs, 1)
	assert.Equal(t, 6, tabs[0].Rect.W)
	assert.Equal(t, 6, textutil.Width(tabs[0].Label))
}

func TestArrange_NilLayout(t *testing.T) {
	a := Arrange(nil, 40, 20)
	assert.Empty(t, a.Containers)
	assert.Empty(t, a.Floating)

	l := &dock.Layout{}
	a = Arrange(l, 40, 20)
	assert.Empty(t, a.Containers)
}

func TestArrange_FloatingChips(t *testing.T) {
	l, _, _ := twoColumns()
	win, ok := l.UndockPanel("Beta", dock.Vec2{}, dock.Vec2{X: 24, Y: 8})
	require.True(t, ok)

	a := Arrange(l, 40, 20)
	require.Len(t, a.Floating, 1)
	assert.Equal(t, FloatingBox{
		Window: win,
		Label:  "[ Beta ]",
		Rect:   Rect{X: 12, Y: 17, W: 8, H: 1},
	}, a.Floating[0])
}

func TestHitTest(t *testing.T) {
	l, left, right := twoColumns()
	win, ok := l.UndockPanel("Gamma", dock.Vec2{}, dock.Vec2{X: 24, Y: 8})
	require.True(t, ok)
	a := Arrange(l, 40, 20)

	t.Run("divider", func(t *testing.T) {
		h := a.HitTest(20, 5)
		require.NotNil(t, h.Divider)
		assert.Equal(t, l.Root.ID, h.Divider.Split)
		assert.Equal(t, dock.Horizontal, h.Divider.Direction)
		assert.Equal(t, float32(40), h.Divider.Extent)
		assert.Nil(t, h.Container)
		assert.Nil(t, h.Header)
	})

	t.Run("tab", func(t *testing.T) {
		h := a.HitTest(9, 1)
		require.NotNil(t, h.Header)
		assert.Equal(t, dock.PanelID("Beta"), h.Header.Panel)
		assert.Equal(t, left.ID, h.Header.Container)
		require.NotNil(t, h.Container)
		assert.Equal(t, left.ID, h.Container.ID)
	})

	t.Run("container body", func(t *testing.T) {
		h := a.HitTest(10, 8)
		assert.Nil(t, h.Header)
		require.NotNil(t, h.Container)
		assert.Equal(t, left.ID, h.Container.ID)
		assert.InDelta(t, 10.5/20.0, h.Container.Norm.X, 1e-6)
		assert.InDelta(t, 8.5/16.0, h.Container.Norm.Y, 1e-6)
	})

	t.Run("empty container is still a target", func(t *testing.T) {
		h := a.HitTest(35, 10)
		require.NotNil(t, h.Container)
		assert.Equal(t, right.ID, h.Container.ID)
		assert.InDelta(t, 14.5/19.0, h.Container.Norm.X, 1e-6)
	})

	t.Run("floating chip", func(t *testing.T) {
		h := a.HitTest(13, 17)
		assert.True(t, h.FloatingArea)
		require.NotNil(t, h.Floating)
		assert.Equal(t, win, h.Floating.Window)
		assert.Nil(t, h.Container)
	})

	t.Run("shelf", func(t *testing.T) {
		h := a.HitTest(3, 17)
		assert.True(t, h.FloatingArea)
		assert.Nil(t, h.Floating)
	})

	t.Run("status line", func(t *testing.T) {
		assert.Equal(t, interact.Hover{}, a.HitTest(3, 19))
	})
}
