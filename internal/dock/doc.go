// Package dock holds the docking tree: containers of tabbed panels, splits
// that divide space between two children, and floating windows that live
// outside the tree.
//
// Nodes are addressed by DockID and panels by PanelID. There are no parent
// pointers; every operation searches top-down from the root. Operations given
// an id that no longer exists do nothing, because interaction sessions hold
// ids across frames while the tree changes underneath them.
package dock
