package interact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dockyard/internal/dock"
)

func pt(x, y float32) dock.Vec2 { return dock.Vec2{X: x, Y: y} }

func press(at dock.Vec2, panel dock.PanelID, container dock.DockID) Frame {
	return Frame{
		Pointer: at,
		Pressed: true,
		Held:    true,
		Over:    Hover{Header: &PanelRef{Panel: panel, Container: container}},
	}
}

func hold(at dock.Vec2, over *ContainerRef) Frame {
	return Frame{Pointer: at, Held: true, Over: Hover{Container: over}}
}

func release(at dock.Vec2, over *ContainerRef) Frame {
	return Frame{Pointer: at, Released: true, Over: Hover{Container: over}}
}

func over(id dock.DockID, x, y float32) *ContainerRef {
	return &ContainerRef{ID: id, Norm: pt(x, y)}
}

func TestPanelDrag_ClickBelowThresholdNeverMutates(t *testing.T) {
	l := dock.DefaultLayout()
	src := l.FindContainer(dock.PanelHierarchy).ID
	dst := l.FindContainer(dock.PanelViewport).ID
	before := l.Clone()
	rev := l.Revision()

	c := NewPanelDragController(nil)
	c.Update(l, press(pt(100, 100), dock.PanelHierarchy, src))
	assert.Equal(t, DragPotential, c.State())

	c.Update(l, hold(pt(103, 104), over(dst, 0.5, 0.5))) // exactly 5px
	assert.Equal(t, DragPotential, c.State())

	out := c.Update(l, release(pt(103, 104), over(dst, 0.5, 0.5)))
	assert.Equal(t, OutcomeClick, out.Kind)
	assert.Equal(t, dock.PanelHierarchy, out.Panel)
	assert.Equal(t, src, out.Source)
	assert.Equal(t, DragIdle, c.State())

	assert.True(t, before.Equal(l))
	assert.Equal(t, rev, l.Revision())
}

func TestPanelDrag_DropCenterAddsTab(t *testing.T) {
	l := dock.DefaultLayout()
	src := l.FindContainer(dock.PanelHierarchy).ID
	dst := l.FindContainer(dock.PanelViewport).ID

	c := NewPanelDragController(nil)
	c.Update(l, press(pt(100, 100), dock.PanelHierarchy, src))
	c.Update(l, hold(pt(110, 100), nil))
	require.Equal(t, DragActive, c.State())

	s, ok := c.Session()
	require.True(t, ok)
	assert.False(t, s.HasTarget)

	c.Update(l, hold(pt(300, 200), over(dst, 0.5, 0.5)))
	s, _ = c.Session()
	assert.True(t, s.HasTarget)
	assert.Equal(t, dst, s.Target)
	assert.Equal(t, dock.Center, s.Zone)

	out := c.Update(l, release(pt(300, 200), over(dst, 0.5, 0.5)))
	assert.Equal(t, OutcomeDropped, out.Kind)
	assert.Equal(t, DragIdle, c.State())

	target := l.Container(dst)
	assert.Equal(t, []dock.PanelID{dock.PanelViewport, dock.PanelHierarchy}, target.Panels)
	assert.Equal(t, 1, target.Active)
	assert.Empty(t, l.Container(src).Panels, "source container is left empty, not pruned")
}

func TestPanelDrag_DropEdgeSplitsTarget(t *testing.T) {
	l := dock.DefaultLayout()
	src := l.FindContainer(dock.PanelInspector).ID
	dst := l.FindContainer(dock.PanelViewport).ID

	c := NewPanelDragController(nil)
	c.Update(l, press(pt(0, 0), dock.PanelInspector, src))
	c.Update(l, hold(pt(20, 0), over(dst, 0.1, 0.5)))
	out := c.Update(l, release(pt(20, 0), over(dst, 0.1, 0.5)))

	require.Equal(t, OutcomeDropped, out.Kind)
	assert.Equal(t, dock.Left, out.Zone)

	left := l.Root.First
	require.True(t, left.IsSplit())
	assert.Equal(t, dock.Horizontal, left.Direction)
	assert.Equal(t, []dock.PanelID{dock.PanelViewport}, left.First.Panels)
	assert.Equal(t, []dock.PanelID{dock.PanelInspector}, left.Second.Panels)
	assert.NoError(t, l.Validate())
}

func TestPanelDrag_ZoneFollowsLastFrame(t *testing.T) {
	l := dock.DefaultLayout()
	src := l.FindContainer(dock.PanelInspector).ID
	dst := l.FindContainer(dock.PanelViewport).ID

	c := NewPanelDragController(nil)
	c.Update(l, press(pt(0, 0), dock.PanelInspector, src))
	c.Update(l, hold(pt(20, 0), over(dst, 0.5, 0.9)))
	s, _ := c.Session()
	assert.Equal(t, dock.Bottom, s.Zone)

	c.Update(l, hold(pt(40, 0), over(dst, 0.5, 0.1)))
	s, _ = c.Session()
	assert.Equal(t, dock.Top, s.Zone)

	c.Update(l, hold(pt(60, 0), nil))
	s, _ = c.Session()
	assert.False(t, s.HasTarget)
}

func TestPanelDrag_ReleaseOverNothingCancels(t *testing.T) {
	l := dock.DefaultLayout()
	src := l.FindContainer(dock.PanelHierarchy).ID
	dst := l.FindContainer(dock.PanelViewport).ID
	before := l.Clone()

	c := NewPanelDragController(nil)
	c.Update(l, press(pt(0, 0), dock.PanelHierarchy, src))
	c.Update(l, hold(pt(50, 50), over(dst, 0.5, 0.5)))
	out := c.Update(l, release(pt(900, 900), nil))

	assert.Equal(t, OutcomeCancelled, out.Kind)
	assert.Equal(t, DragIdle, c.State())
	assert.True(t, before.Equal(l))
}

func TestPanelDrag_StaleTargetKeepsPanel(t *testing.T) {
	l := dock.DefaultLayout()
	src := l.FindContainer(dock.PanelHierarchy).ID
	dst := l.FindContainer(dock.PanelViewport).ID

	c := NewPanelDragController(nil)
	c.Update(l, press(pt(0, 0), dock.PanelHierarchy, src))
	c.Update(l, hold(pt(50, 0), over(dst, 0.5, 0.5)))

	// The target is re-keyed by a split made elsewhere mid-drag.
	_, ok := l.SplitContainer(dst, dock.Vertical, "Assets", 0.5)
	require.True(t, ok)
	before := l.Clone()

	out := c.Update(l, release(pt(50, 0), over(dst, 0.5, 0.5)))
	assert.Equal(t, OutcomeCancelled, out.Kind)
	assert.True(t, before.Equal(l))
	assert.NotNil(t, l.FindContainer(dock.PanelHierarchy))
}

func TestPanelDrag_DropOnFloatingAreaUndocks(t *testing.T) {
	l := dock.DefaultLayout()
	src := l.FindContainer(dock.PanelHierarchy).ID

	c := NewPanelDragController(nil)
	c.FloatingSize = pt(40, 10)
	c.Update(l, press(pt(0, 0), dock.PanelHierarchy, src))
	c.Update(l, hold(pt(30, 30), nil))
	out := c.Update(l, Frame{Pointer: pt(30, 30), Released: true, Over: Hover{FloatingArea: true}})

	require.Equal(t, OutcomeUndocked, out.Kind)
	require.Len(t, l.Floating, 1)
	w := l.Floating[0]
	assert.Equal(t, out.Window, w.ID)
	assert.Equal(t, []dock.PanelID{dock.PanelHierarchy}, w.Panels)
	assert.Equal(t, pt(30, 30), w.Position)
	assert.Equal(t, pt(40, 10), w.Size)
}

func TestPanelDrag_FloatingWindowRedocks(t *testing.T) {
	l := dock.DefaultLayout()
	win, ok := l.UndockPanel(dock.PanelInspector, pt(0, 0), pt(10, 10))
	require.True(t, ok)
	dst := l.FindContainer(dock.PanelHierarchy).ID

	c := NewPanelDragController(nil)
	c.Update(l, Frame{Pointer: pt(5, 5), Pressed: true, Held: true, Over: Hover{Floating: &FloatingRef{Window: win}}})
	require.Equal(t, DragPotential, c.State())
	c.Update(l, hold(pt(50, 50), over(dst, 0.5, 0.5)))
	out := c.Update(l, release(pt(50, 50), over(dst, 0.5, 0.5)))

	assert.Equal(t, OutcomeRedocked, out.Kind)
	assert.Equal(t, win, out.Window)
	assert.Empty(t, l.Floating)
	assert.Equal(t, []dock.PanelID{dock.PanelHierarchy, dock.PanelInspector}, l.Container(dst).Panels)
}

func TestPanelDrag_PressElsewhereStaysIdle(t *testing.T) {
	l := dock.DefaultLayout()
	c := NewPanelDragController(nil)
	out := c.Update(l, Frame{Pointer: pt(1, 1), Pressed: true, Held: true, Over: Hover{Container: over(l.Root.First.ID, 0.5, 0.5)}})
	assert.Equal(t, OutcomeNone, out.Kind)
	assert.Equal(t, DragIdle, c.State())
	_, ok := c.Session()
	assert.False(t, ok)
}

func TestPanelDrag_ThresholdCrossedAndDroppedSameFrame(t *testing.T) {
	l := dock.DefaultLayout()
	src := l.FindContainer(dock.PanelHierarchy).ID
	dst := l.FindContainer(dock.PanelViewport).ID

	c := NewPanelDragController(nil)
	c.Update(l, press(pt(0, 0), dock.PanelHierarchy, src))
	out := c.Update(l, Frame{Pointer: pt(6, 0), Held: false, Released: true, Over: Hover{Container: over(dst, 0.5, 0.5)}})

	// Released before the threshold frame was ever held: a click.
	assert.Equal(t, OutcomeClick, out.Kind)
	assert.Equal(t, []dock.PanelID{dock.PanelViewport}, l.Container(dst).Panels)
}
