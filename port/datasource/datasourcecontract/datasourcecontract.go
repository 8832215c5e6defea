// Package datasourcecontract holds the behavioural contracts of the datasource ports.
// An implementation is expected to pass them regardless of how it stores its items.
package datasourcecontract

import (
	"testing"

	"go.llib.dev/datasource/port/datasource"
	"go.llib.dev/frameless/pkg/zerokit"
	"go.llib.dev/frameless/port/option"
)

type Option[Item any] interface {
	option.Option[Config[Item]]
}

type Config[Item any] struct {
	// Change modifies the source made by the Make function.
	// When it is provided, the contracts also verify that the source calls its reload callback on a change.
	// It receives the subject's Source as it was made, so it can be asserted back to its concrete type.
	Change func(tb testing.TB, src datasource.ListSource[Item])
}

var _ Option[any] = Config[any]{}

func (c Config[Item]) Configure(o *Config[Item]) {
	o.Change = zerokit.Coalesce(c.Change, o.Change)
}

// ListSubject is what a List contract Make function has to provide:
// a source and the items it was made with, in order.
type ListSubject[Item any] struct {
	Source   datasource.ListSource[Item]
	Expected []Item
}

// SectionedSubject is what a Sectioned contract Make function has to provide:
// a source and the sections it was made with, in order.
type SectionedSubject[Item, Section any] struct {
	Source   datasource.SectionedSource[Item, Section]
	Expected []SectionFixture[Item, Section]
}

type SectionFixture[Item, Section any] struct {
	Section Section
	// Header is nil when the section has no header title.
	Header *string
	// Footer is nil when the section has no footer title.
	Footer *string
	Items  []Item
}

func (subject SectionedSubject[Item, Section]) totalItems() int {
	var n int
	for _, sf := range subject.Expected {
		n += len(sf.Items)
	}
	return n
}

func (subject SectionedSubject[Item, Section]) sections() []Section {
	var sections = make([]Section, 0, len(subject.Expected))
	for _, sf := range subject.Expected {
		sections = append(sections, sf.Section)
	}
	return sections
}
