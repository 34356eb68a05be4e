// Package ui hosts a docking layout in the terminal with Bubble Tea.
//
// Core pieces:
//   - LayoutPresenter: the contract a renderer fulfils for the engine
//   - Arrange: cell geometry of containers, tabs, dividers and the floating shelf
//   - TerminalPresenter: lipgloss rendering plus hit testing
//   - FocusManager: keyboard focus across containers
//   - AppModel: turns mouse events into interaction frames
package ui
