package dock

// Panels of the default layout.
const (
	PanelViewport  PanelID = "Viewport"
	PanelHierarchy PanelID = "Hierarchy"
	PanelInspector PanelID = "Inspector"
)

// DefaultLayout returns the layout used when nothing was saved: the viewport
// on the left taking 70%, and a sidebar split evenly between the hierarchy
// and the inspector.
func DefaultLayout() *Layout {
	sidebar := NewSplit(Vertical, 0.5,
		NewContainer(PanelHierarchy),
		NewContainer(PanelInspector),
	)
	return NewLayout(NewSplit(Horizontal, 0.7, NewContainer(PanelViewport), sidebar))
}
