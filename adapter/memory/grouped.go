package memory

import (
	"go.llib.dev/datasource/port/datasource"
	"go.llib.dev/frameless/pkg/errorkit"
)

const ErrMissingKeyFunc errorkit.Error = "memory.Grouped: missing KeyOf function"

// Grouped is a sectioned source where the sections are derived from the items.
// Items sharing the same key end up in the same section,
// and sections follow the order in which their key was first seen.
// The section value is the key itself.
//
// KeyOf is required, use NewGrouped to construct one.
// Adding items to a Grouped without KeyOf panics with ErrMissingKeyFunc.
type Grouped[Item any, Key comparable] struct {
	datasource.Reload
	// KeyOf tells which section an item belongs to.
	KeyOf func(Item) Key
	// Title is optional, and when set, it is used to make the header title of a section.
	Title func(Key) string

	keys   []Key
	groups map[Key][]Item
}

var _ datasource.SectionedSource[any, string] = (*Grouped[any, string])(nil)

func NewGrouped[Item any, Key comparable](keyOf func(Item) Key, items ...Item) *Grouped[Item, Key] {
	g := &Grouped[Item, Key]{KeyOf: keyOf}
	g.add(items)
	return g
}

func (g *Grouped[Item, Key]) Append(items ...Item) {
	if len(items) == 0 {
		return
	}
	g.add(items)
	g.Notify()
}

func (g *Grouped[Item, Key]) add(items []Item) {
	if len(items) == 0 {
		return
	}
	if g.KeyOf == nil {
		panic(ErrMissingKeyFunc)
	}
	if g.groups == nil {
		g.groups = make(map[Key][]Item)
	}
	for _, item := range items {
		key := g.KeyOf(item)
		if _, ok := g.groups[key]; !ok {
			g.keys = append(g.keys, key)
		}
		g.groups[key] = append(g.groups[key], item)
	}
}

func (g *Grouped[Item, Key]) ItemCount() int {
	var n int
	for _, items := range g.groups {
		n += len(items)
	}
	return n
}

func (g *Grouped[Item, Key]) Item(at datasource.IndexPath) (Item, bool) {
	items := g.itemsIn(at.Section)
	if at.Item < 0 || len(items) <= at.Item {
		var zero Item
		return zero, false
	}
	return items[at.Item], true
}

func (g *Grouped[Item, Key]) SectionCount() int { return len(g.keys) }

func (g *Grouped[Item, Key]) Sections() []Key {
	return append([]Key{}, g.keys...)
}

func (g *Grouped[Item, Key]) ItemCountIn(section int) int {
	return len(g.itemsIn(section))
}

func (g *Grouped[Item, Key]) HeaderTitle(section int) (string, bool) {
	if g.Title == nil || section < 0 || len(g.keys) <= section {
		return "", false
	}
	return g.Title(g.keys[section]), true
}

// FooterTitle is always absent, as groups only have a header.
func (g *Grouped[Item, Key]) FooterTitle(int) (string, bool) {
	return "", false
}

func (g *Grouped[Item, Key]) itemsIn(section int) []Item {
	if section < 0 || len(g.keys) <= section {
		return nil
	}
	return g.groups[g.keys[section]]
}
