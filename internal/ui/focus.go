package ui

import "dockyard/internal/dock"

// FocusManager tracks which container has keyboard focus. Order is the
// containers in tree order and is refreshed from the layout after every
// edit, so focus survives drops as long as its container does.
type FocusManager struct {
	Current  dock.DockID
	Order    []dock.DockID
	OnChange func(from, to dock.DockID)
}

// Sync replaces Order with the containers of l. Focus moves to the first
// container when the focused one is gone.
func (f *FocusManager) Sync(l *dock.Layout) {
	f.Order = f.Order[:0]
	if l != nil && l.Root != nil {
		l.Root.Walk(func(n *dock.Node) bool {
			if n.IsContainer() {
				f.Order = append(f.Order, n.ID)
			}
			return true
		})
	}
	if f.indexOf(f.Current) >= 0 {
		return
	}
	var to dock.DockID
	if len(f.Order) > 0 {
		to = f.Order[0]
	}
	f.set(to)
}

// Next advances focus to the next container in order.
func (f *FocusManager) Next() dock.DockID {
	if len(f.Order) == 0 {
		return f.Current
	}
	f.set(f.Order[(f.indexOf(f.Current)+1)%len(f.Order)])
	return f.Current
}

// Prev moves focus to the previous container in order.
func (f *FocusManager) Prev() dock.DockID {
	if len(f.Order) == 0 {
		return f.Current
	}
	i := f.indexOf(f.Current) - 1
	if i < 0 {
		i = len(f.Order) - 1
	}
	f.set(f.Order[i])
	return f.Current
}

// SetFocus focuses id. Returns false if id is not a known container.
func (f *FocusManager) SetFocus(id dock.DockID) bool {
	if f.indexOf(id) < 0 {
		return false
	}
	f.set(id)
	return true
}

func (f *FocusManager) set(id dock.DockID) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}

func (f *FocusManager) indexOf(id dock.DockID) int {
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}
