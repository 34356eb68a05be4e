package persist

import (
	"fmt"

	"dockyard/internal/dock"
)

// formatVersion is written to every document; documents from a newer
// format are rejected.
const formatVersion = 1

const (
	typePanel = "panel"
	typeSplit = "split"

	dirHorizontal = "horizontal"
	dirVertical   = "vertical"
)

type document struct {
	Version  int              `json:"version" yaml:"version"`
	Root     *nodeRecord      `json:"root" yaml:"root"`
	Floating []floatingRecord `json:"floating" yaml:"floating"`
}

type nodeRecord struct {
	Type string `json:"type" yaml:"type"`
	ID   uint64 `json:"id" yaml:"id"`

	Panels []string `json:"panels,omitempty" yaml:"panels,omitempty"`
	Active int      `json:"active,omitempty" yaml:"active,omitempty"`

	Direction string      `json:"direction,omitempty" yaml:"direction,omitempty"`
	Ratio     float32     `json:"ratio,omitempty" yaml:"ratio,omitempty"`
	First     *nodeRecord `json:"first,omitempty" yaml:"first,omitempty"`
	Second    *nodeRecord `json:"second,omitempty" yaml:"second,omitempty"`
}

type vecRecord struct {
	X float32 `json:"x" yaml:"x"`
	Y float32 `json:"y" yaml:"y"`
}

type floatingRecord struct {
	ID       uint64    `json:"id" yaml:"id"`
	Panels   []string  `json:"panels" yaml:"panels"`
	Active   int       `json:"active" yaml:"active"`
	Position vecRecord `json:"position" yaml:"position"`
	Size     vecRecord `json:"size" yaml:"size"`
}

func toDocument(l *dock.Layout) document {
	doc := document{
		Version:  formatVersion,
		Root:     toNodeRecord(l.Root),
		Floating: make([]floatingRecord, 0, len(l.Floating)),
	}
	for _, w := range l.Floating {
		doc.Floating = append(doc.Floating, floatingRecord{
			ID:       uint64(w.ID),
			Panels:   panelStrings(w.Panels),
			Active:   w.Active,
			Position: vecRecord{X: w.Position.X, Y: w.Position.Y},
			Size:     vecRecord{X: w.Size.X, Y: w.Size.Y},
		})
	}
	return doc
}

func toNodeRecord(n *dock.Node) *nodeRecord {
	if n == nil {
		return nil
	}
	if n.IsContainer() {
		return &nodeRecord{
			Type:   typePanel,
			ID:     uint64(n.ID),
			Panels: panelStrings(n.Panels),
			Active: n.Active,
		}
	}
	dir := dirHorizontal
	if n.Direction == dock.Vertical {
		dir = dirVertical
	}
	return &nodeRecord{
		Type:      typeSplit,
		ID:        uint64(n.ID),
		Direction: dir,
		Ratio:     n.Ratio,
		First:     toNodeRecord(n.First),
		Second:    toNodeRecord(n.Second),
	}
}

func fromDocument(doc document) (*dock.Layout, error) {
	if doc.Version > formatVersion {
		return nil, fmt.Errorf("unsupported layout format version %d", doc.Version)
	}
	root, err := fromNodeRecord(doc.Root, "root")
	if err != nil {
		return nil, err
	}
	l := dock.NewLayout(root)
	for _, w := range doc.Floating {
		l.Floating = append(l.Floating, dock.FloatingWindow{
			ID:       dock.DockID(w.ID),
			Panels:   panelIDs(w.Panels),
			Active:   w.Active,
			Position: dock.Vec2{X: w.Position.X, Y: w.Position.Y},
			Size:     dock.Vec2{X: w.Size.X, Y: w.Size.Y},
		})
	}
	return l, nil
}

func fromNodeRecord(r *nodeRecord, path string) (*dock.Node, error) {
	if r == nil {
		return nil, nil
	}
	switch r.Type {
	case typePanel:
		return &dock.Node{
			Kind:   dock.KindPanel,
			ID:     dock.DockID(r.ID),
			Panels: panelIDs(r.Panels),
			Active: r.Active,
		}, nil
	case typeSplit:
		var dir dock.SplitDirection
		switch r.Direction {
		case dirHorizontal:
			dir = dock.Horizontal
		case dirVertical:
			dir = dock.Vertical
		default:
			return nil, fmt.Errorf("%s: unknown split direction %q", path, r.Direction)
		}
		if r.First == nil || r.Second == nil {
			return nil, fmt.Errorf("%s: split %d needs two children", path, r.ID)
		}
		first, err := fromNodeRecord(r.First, path+".first")
		if err != nil {
			return nil, err
		}
		second, err := fromNodeRecord(r.Second, path+".second")
		if err != nil {
			return nil, err
		}
		return &dock.Node{
			Kind:      dock.KindSplit,
			ID:        dock.DockID(r.ID),
			Direction: dir,
			Ratio:     r.Ratio,
			First:     first,
			Second:    second,
		}, nil
	default:
		return nil, fmt.Errorf("%s: unknown node type %q", path, r.Type)
	}
}

func panelStrings(ids []dock.PanelID) []string {
	if len(ids) == 0 {
		return nil
	}
	out := make([]string, len(ids))
	for i, p := range ids {
		out[i] = string(p)
	}
	return out
}

func panelIDs(s []string) []dock.PanelID {
	if len(s) == 0 {
		return nil
	}
	out := make([]dock.PanelID, len(s))
	for i, p := range s {
		out[i] = dock.PanelID(p)
	}
	return out
}
