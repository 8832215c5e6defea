// Package memory implements the datasource ports with in-memory storage.
// Every mutating method signals the consumer through the reload callback.
package memory

import (
	"slices"

	"go.llib.dev/datasource/port/datasource"
)

// List is a slice backed datasource.ListSource.
// The zero value is an empty list that is ready to use.
type List[Item any] struct {
	datasource.Reload
	items []Item
}

var _ datasource.ListSource[any] = (*List[any])(nil)

func NewList[Item any](items ...Item) *List[Item] {
	return &List[Item]{items: slices.Clone(items)}
}

func (l *List[Item]) ItemCount() int { return len(l.items) }

func (l *List[Item]) Item(at datasource.IndexPath) (Item, bool) {
	if at.Section != 0 || at.Item < 0 || len(l.items) <= at.Item {
		var zero Item
		return zero, false
	}
	return l.items[at.Item], true
}

// Items returns a copy of the list's content.
func (l *List[Item]) Items() []Item { return slices.Clone(l.items) }

func (l *List[Item]) Append(items ...Item) {
	if len(items) == 0 {
		return
	}
	l.items = append(l.items, items...)
	l.Notify()
}

// Set replaces the item at the given index.
// It reports false when the index is out of range.
func (l *List[Item]) Set(index int, item Item) bool {
	if index < 0 || len(l.items) <= index {
		return false
	}
	l.items[index] = item
	l.Notify()
	return true
}

// Reset replaces the whole content of the list.
func (l *List[Item]) Reset(items ...Item) {
	l.items = slices.Clone(items)
	l.Notify()
}
