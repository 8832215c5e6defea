// Package datasource contains the ports for list-like data sources,
// the kind a table or list view consumes to know what to display.
package datasource

import "go.llib.dev/frameless/pkg/errorkit"

const (
	// ErrNotBound is the fault raised when a type erased data source is used without a wrapped source.
	// This is a programming error, and it only happens when the zero value of AnyList or AnySectioned is used.
	ErrNotBound errorkit.Error = "ErrNotBound"
	// ErrInconsistent is returned by Validate when a source reports counts that contradict each other.
	ErrInconsistent errorkit.Error = "ErrInconsistent"
)

// IndexPath points to an item in a data source.
// Flat lists only use the first section, so their Section is always 0.
type IndexPath struct {
	Section int
	Item    int
}

// ReloadFunc is the callback a data source invokes to signal its consumer that it should refresh its view of the data.
type ReloadFunc func()

// ListSource is the role interface of a flat list of items.
type ListSource[Item any] interface {
	// ItemCount returns the number of items.
	// For a sectioned source, it is the total amount across all the sections.
	ItemCount() int
	// Item looks up an item by its position.
	// Out of range positions are reported as missing, and not as a fault.
	Item(at IndexPath) (Item, bool)
	// ReloadFunc returns the currently set reload callback, or nil when none is set.
	ReloadFunc() ReloadFunc
	// SetReloadFunc replaces the reload callback.
	// Passing nil clears it.
	SetReloadFunc(fn ReloadFunc)
}

// SectionedSource is a ListSource where the items are grouped into ordered sections.
type SectionedSource[Item, Section any] interface {
	ListSource[Item]
	// SectionCount must be equal to the length of Sections.
	SectionCount() int
	Sections() []Section
	// ItemCountIn returns the number of items in a given section.
	// An unknown section has no items.
	ItemCountIn(section int) int
	HeaderTitle(section int) (string, bool)
	FooterTitle(section int) (string, bool)
}

// Reload is a mutable reference cell for the reload callback.
// Embed it into a concrete source to implement the reload slot of ListSource.
//
// Reload must be used through a pointer,
// otherwise a callback set through a proxy would only land in a copy.
type Reload struct {
	fn ReloadFunc
}

func (r *Reload) ReloadFunc() ReloadFunc { return r.fn }

func (r *Reload) SetReloadFunc(fn ReloadFunc) { r.fn = fn }

// Notify calls the reload callback when one is set.
func (r *Reload) Notify() {
	if r.fn != nil {
		r.fn()
	}
}
