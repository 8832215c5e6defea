package datasource

import (
	"errors"
	"iter"

	"go.llib.dev/frameless/pkg/errorkit"
)

// Items iterates over every item of a sectioned source, section by section.
func Items[Item, Section any](src SectionedSource[Item, Section]) iter.Seq2[IndexPath, Item] {
	return func(yield func(IndexPath, Item) bool) {
		for section := 0; section < src.SectionCount(); section++ {
			for i := 0; i < src.ItemCountIn(section); i++ {
				at := IndexPath{Section: section, Item: i}
				item, ok := src.Item(at)
				if !ok {
					continue
				}
				if !yield(at, item) {
					return
				}
			}
		}
	}
}

// Validate checks that the counts a sectioned source reports are consistent with each other.
// Keeping them consistent is the source's own responsibility, Validate only reports the violations.
func Validate[Item, Section any](src SectionedSource[Item, Section]) error {
	var errs []error

	if sectionCount, sectionsLen := src.SectionCount(), len(src.Sections()); sectionCount != sectionsLen {
		errs = append(errs, ErrInconsistent.F("section count is %d, but there are %d sections", sectionCount, sectionsLen))
	}

	var total int
	for section := 0; section < src.SectionCount(); section++ {
		n := src.ItemCountIn(section)
		total += n
		for i := 0; i < n; i++ {
			if _, ok := src.Item(IndexPath{Section: section, Item: i}); !ok {
				errs = append(errs, ErrInconsistent.F("item #%d in section #%d is counted but missing", i, section))
			}
		}
		if _, ok := src.Item(IndexPath{Section: section, Item: n}); ok {
			errs = append(errs, ErrInconsistent.F("section #%d has more items than its count of %d", section, n))
		}
	}

	if itemCount := src.ItemCount(); itemCount != total {
		errs = append(errs, ErrInconsistent.F("item count is %d, but the sections hold %d", itemCount, total))
	}

	return errorkit.Merge(errs...)
}

// IsNotBound reports whether a recovered panic value is the fault of an unbound type erased source.
func IsNotBound(v any) bool {
	err, ok := v.(error)
	return ok && errors.Is(err, ErrNotBound)
}
