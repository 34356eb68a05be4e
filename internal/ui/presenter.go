package ui

import (
	"fmt"

	"dockyard/internal/dock"
	"dockyard/internal/interact"
	"dockyard/internal/ui/textutil"
)

// LayoutPresenter is the contract between the docking engine and whatever
// draws it. Present is called with the current layout whenever it may have
// changed; HitTest reports what lies under a pointer position, tagged with
// the DockIDs and PanelIDs the engine understands.
type LayoutPresenter interface {
	Present(l *dock.Layout)
	HitTest(x, y int) interact.Hover
}

// ContentProvider fills a panel slot. The engine never looks inside a
// panel; the host maps panel ids to content.
type ContentProvider interface {
	Content(panel dock.PanelID, width, height int) string
}

// ContentFunc adapts a function to ContentProvider.
type ContentFunc func(panel dock.PanelID, width, height int) string

// Content implements ContentProvider.
func (f ContentFunc) Content(panel dock.PanelID, width, height int) string {
	return f(panel, width, height)
}

// PlaceholderContent labels each slot with its panel id.
var PlaceholderContent ContentProvider = ContentFunc(func(panel dock.PanelID, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	return Styles.Slot.Render(textutil.Block(fmt.Sprintf("%s slot", panel), width, height))
})
