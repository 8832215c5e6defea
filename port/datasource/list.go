package datasource

// NoSection is the section type of a flat list viewed as a SectionedSource.
type NoSection struct{}

// SectionedList presents a ListSource as a SectionedSource with a single untitled section.
type SectionedList[Item any] struct {
	List ListSource[Item]
}

var _ SectionedSource[any, NoSection] = SectionedList[any]{}

func (sl SectionedList[Item]) ItemCount() int { return sl.List.ItemCount() }

func (sl SectionedList[Item]) Item(at IndexPath) (Item, bool) {
	if at.Section != 0 {
		var zero Item
		return zero, false
	}
	return sl.List.Item(at)
}

func (sl SectionedList[Item]) ReloadFunc() ReloadFunc { return sl.List.ReloadFunc() }

func (sl SectionedList[Item]) SetReloadFunc(fn ReloadFunc) { sl.List.SetReloadFunc(fn) }

func (sl SectionedList[Item]) SectionCount() int { return 1 }

func (sl SectionedList[Item]) Sections() []NoSection { return []NoSection{{}} }

func (sl SectionedList[Item]) ItemCountIn(section int) int {
	if section != 0 {
		return 0
	}
	return sl.List.ItemCount()
}

func (sl SectionedList[Item]) HeaderTitle(int) (string, bool) { return "", false }

func (sl SectionedList[Item]) FooterTitle(int) (string, bool) { return "", false }
