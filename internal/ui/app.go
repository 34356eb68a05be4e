package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"dockyard/internal/dock"
	"dockyard/internal/interact"
	"dockyard/internal/persist"
	"dockyard/internal/trace"
)

// SavedMsg reports the result of saving the layout.
type SavedMsg struct {
	Path string
	Err  error
}

// AppModel hosts a docking layout in the terminal. Mouse events become
// interaction frames for the controllers; keys save, reset and move focus.
type AppModel struct {
	Layout      *dock.Layout
	Store       *persist.Store
	Tracer      *trace.Provider
	Controllers *interact.Controllers
	Presenter   *TerminalPresenter
	Focus       FocusManager
	Keys        KeyMap
	Log         *zap.Logger

	help        help.Model
	held        bool
	resizing    bool
	resizeSplit dock.DockID
	status      string
	statusErr   bool
}

// NewAppModel creates the root model. store, tracer and log may be nil.
func NewAppModel(l *dock.Layout, store *persist.Store, tracer *trace.Provider, log *zap.Logger) *AppModel {
	if log == nil {
		log = zap.NewNop()
	}
	if l == nil {
		l = dock.DefaultLayout()
	}
	l.SetLogger(log)
	a := &AppModel{
		Layout:      l,
		Store:       store,
		Tracer:      tracer,
		Controllers: interact.NewControllers(log),
		Presenter:   NewTerminalPresenter(nil),
		Keys:        DefaultKeyMap(),
		Log:         log,
		help:        newHelpModel(),
	}
	a.present()
	return a
}

// SetStatus shows msg in the status line until the next message.
func (a *AppModel) SetStatus(msg string) {
	a.status = msg
	a.statusErr = false
}

func (a *AppModel) setError(msg string) {
	a.status = msg
	a.statusErr = true
}

// Status returns the current status message.
func (a *AppModel) Status() string {
	return a.status
}

// present brings geometry and focus up to date with the layout.
func (a *AppModel) present() {
	a.Presenter.Present(a.Layout)
	a.Focus.Sync(a.Layout)
	a.Presenter.Focus = a.Focus.Current
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.Presenter.Resize(msg.Width, msg.Height)
		a.help.Width = msg.Width
		a.present()
	case tea.KeyMsg:
		return a, a.handleKey(msg)
	case tea.MouseMsg:
		a.handleMouse(msg)
	case SavedMsg:
		if msg.Err != nil {
			a.Log.Error("save layout", zap.String("path", msg.Path), zap.Error(msg.Err))
			a.setError(fmt.Sprintf("save failed: %v", msg.Err))
		} else {
			a.SetStatus("saved " + msg.Path)
		}
	}
	return a, nil
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	a.present()
	status := Styles.Status.Render(a.help.View(a.Keys))
	if a.status != "" {
		msg := Styles.Status.Render(a.status)
		if a.statusErr {
			msg = Styles.Error.Render(a.status)
		}
		status = msg + "  " + status
	}
	return a.Presenter.Render(status)
}

func (a *AppModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.Keys.Quit):
		return tea.Quit
	case key.Matches(msg, a.Keys.Save):
		return a.saveCmd()
	case key.Matches(msg, a.Keys.Reset):
		if a.Controllers.Busy() {
			return nil
		}
		a.Layout = dock.DefaultLayout()
		a.Layout.SetLogger(a.Log)
		a.present()
		a.SetStatus("layout reset")
	case key.Matches(msg, a.Keys.FocusNext):
		a.Focus.Next()
		a.Presenter.Focus = a.Focus.Current
	case key.Matches(msg, a.Keys.FocusPrev):
		a.Focus.Prev()
		a.Presenter.Focus = a.Focus.Current
	case key.Matches(msg, a.Keys.NextTab):
		a.cycleTab(1)
	case key.Matches(msg, a.Keys.PrevTab):
		a.cycleTab(-1)
	}
	return nil
}

// cycleTab activates the neighbouring tab in the focused container.
func (a *AppModel) cycleTab(step int) {
	c := a.Layout.Container(a.Focus.Current)
	if c == nil || len(c.Panels) < 2 {
		return
	}
	i := (c.Active + step + len(c.Panels)) % len(c.Panels)
	a.Layout.SetActivePanel(c.ID, c.Panels[i])
	a.present()
}

// saveCmd saves a snapshot so the write never races later edits.
func (a *AppModel) saveCmd() tea.Cmd {
	if a.Store == nil {
		a.setError("no layout store configured")
		return nil
	}
	snapshot := a.Layout.Clone()
	store := a.Store
	return func() tea.Msg {
		err := store.Save(context.Background(), snapshot)
		return SavedMsg{Path: store.Path(), Err: err}
	}
}

// frameFor converts a mouse event into an interaction frame. ok is false
// for events the controllers do not consume.
func (a *AppModel) frameFor(msg tea.MouseMsg) (interact.Frame, bool) {
	ev := tea.MouseEvent(msg)
	if ev.IsWheel() {
		return interact.Frame{}, false
	}
	f := interact.Frame{
		Pointer: dock.Vec2{X: float32(msg.X), Y: float32(msg.Y)},
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return interact.Frame{}, false
		}
		f.Pressed = !a.held
		a.held = true
	case tea.MouseActionRelease:
		f.Released = a.held
		a.held = false
	}
	f.Held = a.held
	f.Over = a.Presenter.HitTest(msg.X, msg.Y)
	return f, true
}

func (a *AppModel) handleMouse(msg tea.MouseMsg) {
	a.present()
	f, ok := a.frameFor(msg)
	if !ok {
		return
	}

	res := a.Controllers.Update(a.Layout, f)
	a.handleOutcome(res.Panel)

	resizing := a.Controllers.Dividers.Dragging()
	if a.resizing && !resizing {
		a.traceResize()
	}
	if resizing {
		if s, ok := a.Controllers.Dividers.Session(); ok {
			a.resizeSplit = s.Split
		}
	}
	a.resizing = resizing

	a.present()
	a.Presenter.Preview = PreviewOf(a.Controllers, f.Over)
}

func (a *AppModel) handleOutcome(o interact.Outcome) {
	switch o.Kind {
	case interact.OutcomeNone:
		return
	case interact.OutcomeClick:
		a.Layout.SetActivePanel(o.Source, o.Panel)
		a.Focus.SetFocus(o.Source)
		return
	case interact.OutcomeCancelled:
		a.SetStatus("drop cancelled")
	case interact.OutcomeDropped:
		a.SetStatus(fmt.Sprintf("moved %s to %s of %s", o.Panel, o.Zone, o.Target))
	case interact.OutcomeUndocked:
		a.SetStatus(fmt.Sprintf("undocked %s", o.Panel))
	case interact.OutcomeRedocked:
		a.SetStatus(fmt.Sprintf("docked %s at %s of %s", o.Window, o.Zone, o.Target))
	}
	a.Log.Debug("panel drop",
		zap.Stringer("outcome", o.Kind),
		zap.String("panel", string(o.Panel)),
		zap.Stringer("target", o.Target),
		zap.Stringer("zone", o.Zone))

	_, span := a.Tracer.Start(context.Background(), "dock.drop", map[string]string{
		"outcome": o.Kind.String(),
		"panel":   string(o.Panel),
		"source":  o.Source.String(),
		"target":  o.Target.String(),
		"zone":    o.Zone.String(),
	})
	trace.End(span, nil)
}

func (a *AppModel) traceResize() {
	ratio, ok := a.Layout.SplitRatio(a.resizeSplit)
	if !ok {
		return
	}
	_, span := a.Tracer.Start(context.Background(), "dock.resize", map[string]string{
		"split": a.resizeSplit.String(),
		"ratio": fmt.Sprintf("%.3f", ratio),
	})
	trace.End(span, nil)
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}
