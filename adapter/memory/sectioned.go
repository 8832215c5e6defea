package memory

import (
	"go.llib.dev/datasource/port/datasource"
)

// Sectioned is an in-memory datasource.SectionedSource with explicitly declared sections.
type Sectioned[Item, Section any] struct {
	datasource.Reload
	sections []section[Item, Section]
}

var _ datasource.SectionedSource[any, any] = (*Sectioned[any, any])(nil)

type section[Item, Section any] struct {
	value  Section
	header title
	footer title
	items  []Item
}

type title struct {
	text string
	ok   bool
}

// AddSection appends a new section with its initial items, and returns the index of the new section.
func (s *Sectioned[Item, Section]) AddSection(value Section, items ...Item) int {
	s.sections = append(s.sections, section[Item, Section]{
		value: value,
		items: append([]Item(nil), items...),
	})
	s.Notify()
	return len(s.sections) - 1
}

// Append adds items to the end of an existing section.
func (s *Sectioned[Item, Section]) Append(sectionIndex int, items ...Item) bool {
	sec, ok := s.lookup(sectionIndex)
	if !ok {
		return false
	}
	sec.items = append(sec.items, items...)
	s.Notify()
	return true
}

func (s *Sectioned[Item, Section]) SetHeader(sectionIndex int, text string) bool {
	sec, ok := s.lookup(sectionIndex)
	if !ok {
		return false
	}
	sec.header = title{text: text, ok: true}
	s.Notify()
	return true
}

func (s *Sectioned[Item, Section]) SetFooter(sectionIndex int, text string) bool {
	sec, ok := s.lookup(sectionIndex)
	if !ok {
		return false
	}
	sec.footer = title{text: text, ok: true}
	s.Notify()
	return true
}

func (s *Sectioned[Item, Section]) ItemCount() int {
	var n int
	for _, sec := range s.sections {
		n += len(sec.items)
	}
	return n
}

func (s *Sectioned[Item, Section]) Item(at datasource.IndexPath) (Item, bool) {
	sec, ok := s.lookup(at.Section)
	if !ok || at.Item < 0 || len(sec.items) <= at.Item {
		var zero Item
		return zero, false
	}
	return sec.items[at.Item], true
}

func (s *Sectioned[Item, Section]) SectionCount() int { return len(s.sections) }

func (s *Sectioned[Item, Section]) Sections() []Section {
	var out = make([]Section, 0, len(s.sections))
	for _, sec := range s.sections {
		out = append(out, sec.value)
	}
	return out
}

func (s *Sectioned[Item, Section]) ItemCountIn(sectionIndex int) int {
	sec, ok := s.lookup(sectionIndex)
	if !ok {
		return 0
	}
	return len(sec.items)
}

func (s *Sectioned[Item, Section]) HeaderTitle(sectionIndex int) (string, bool) {
	sec, ok := s.lookup(sectionIndex)
	if !ok {
		return "", false
	}
	return sec.header.text, sec.header.ok
}

func (s *Sectioned[Item, Section]) FooterTitle(sectionIndex int) (string, bool) {
	sec, ok := s.lookup(sectionIndex)
	if !ok {
		return "", false
	}
	return sec.footer.text, sec.footer.ok
}

func (s *Sectioned[Item, Section]) lookup(index int) (*section[Item, Section], bool) {
	if index < 0 || len(s.sections) <= index {
		return nil, false
	}
	return &s.sections[index], true
}
