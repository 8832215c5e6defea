package datasource

// AnySectioned is a type erased SectionedSource.
// It lets you hold any sectioned source with the matching Item and Section types,
// without exposing the concrete type of the source or its additional type parameters.
//
// Every call is forwarded unchanged to the wrapped source.
// The zero value has no source, and using it panics with ErrNotBound.
type AnySectioned[Item, Section any] struct {
	proxy sectionedProxy[Item, Section]
}

var _ SectionedSource[any, any] = AnySectioned[any, any]{}

// EraseSectioned wraps a concrete SectionedSource into an AnySectioned.
//
//	src := datasource.EraseSectioned[Product, Category](catalog)
func EraseSectioned[Item, Section any, Source SectionedSource[Item, Section]](source Source) AnySectioned[Item, Section] {
	return AnySectioned[Item, Section]{proxy: &sectionedBox[Item, Section, Source]{source: source}}
}

func (ds AnySectioned[Item, Section]) ItemCount() int {
	return ds.box().ItemCount()
}

func (ds AnySectioned[Item, Section]) Item(at IndexPath) (Item, bool) {
	return ds.box().Item(at)
}

func (ds AnySectioned[Item, Section]) ReloadFunc() ReloadFunc {
	return ds.box().ReloadFunc()
}

func (ds AnySectioned[Item, Section]) SetReloadFunc(fn ReloadFunc) {
	ds.box().SetReloadFunc(fn)
}

func (ds AnySectioned[Item, Section]) SectionCount() int {
	return ds.box().SectionCount()
}

func (ds AnySectioned[Item, Section]) Sections() []Section {
	return ds.box().Sections()
}

func (ds AnySectioned[Item, Section]) ItemCountIn(section int) int {
	return ds.box().ItemCountIn(section)
}

func (ds AnySectioned[Item, Section]) HeaderTitle(section int) (string, bool) {
	return ds.box().HeaderTitle(section)
}

func (ds AnySectioned[Item, Section]) FooterTitle(section int) (string, bool) {
	return ds.box().FooterTitle(section)
}

// Unwrap returns the wrapped source, so it can be type asserted back to its concrete type.
func (ds AnySectioned[Item, Section]) Unwrap() any {
	return ds.box().unwrap()
}

func (ds AnySectioned[Item, Section]) box() sectionedProxy[Item, Section] {
	if ds.proxy == nil {
		panic(ErrNotBound.F("%T has no wrapped source", ds))
	}
	return ds.proxy
}

// sectionedProxy is the forwarding surface between AnySectioned and the concrete source.
// Only sectionedBox implements it.
type sectionedProxy[Item, Section any] interface {
	SectionedSource[Item, Section]
	unwrap() any
}

type sectionedBox[Item, Section any, Source SectionedSource[Item, Section]] struct {
	source Source
}

func (b *sectionedBox[Item, Section, Source]) ItemCount() int {
	return b.source.ItemCount()
}

func (b *sectionedBox[Item, Section, Source]) Item(at IndexPath) (Item, bool) {
	return b.source.Item(at)
}

func (b *sectionedBox[Item, Section, Source]) ReloadFunc() ReloadFunc {
	return b.source.ReloadFunc()
}

func (b *sectionedBox[Item, Section, Source]) SetReloadFunc(fn ReloadFunc) {
	b.source.SetReloadFunc(fn)
}

func (b *sectionedBox[Item, Section, Source]) SectionCount() int {
	return b.source.SectionCount()
}

func (b *sectionedBox[Item, Section, Source]) Sections() []Section {
	return b.source.Sections()
}

func (b *sectionedBox[Item, Section, Source]) ItemCountIn(section int) int {
	return b.source.ItemCountIn(section)
}

func (b *sectionedBox[Item, Section, Source]) HeaderTitle(section int) (string, bool) {
	return b.source.HeaderTitle(section)
}

func (b *sectionedBox[Item, Section, Source]) FooterTitle(section int) (string, bool) {
	return b.source.FooterTitle(section)
}

func (b *sectionedBox[Item, Section, Source]) unwrap() any { return b.source }

// AnyList is the type erased form of a ListSource.
// The zero value has no source, and using it panics with ErrNotBound.
type AnyList[Item any] struct {
	proxy listProxy[Item]
}

var _ ListSource[any] = AnyList[any]{}

// EraseList wraps a concrete ListSource into an AnyList.
func EraseList[Item any, Source ListSource[Item]](source Source) AnyList[Item] {
	return AnyList[Item]{proxy: &listBox[Item, Source]{source: source}}
}

func (ds AnyList[Item]) ItemCount() int {
	return ds.box().ItemCount()
}

func (ds AnyList[Item]) Item(at IndexPath) (Item, bool) {
	return ds.box().Item(at)
}

func (ds AnyList[Item]) ReloadFunc() ReloadFunc {
	return ds.box().ReloadFunc()
}

func (ds AnyList[Item]) SetReloadFunc(fn ReloadFunc) {
	ds.box().SetReloadFunc(fn)
}

func (ds AnyList[Item]) Unwrap() any {
	return ds.box().unwrap()
}

func (ds AnyList[Item]) box() listProxy[Item] {
	if ds.proxy == nil {
		panic(ErrNotBound.F("%T has no wrapped source", ds))
	}
	return ds.proxy
}

type listProxy[Item any] interface {
	ListSource[Item]
	unwrap() any
}

type listBox[Item any, Source ListSource[Item]] struct {
	source Source
}

func (b *listBox[Item, Source]) ItemCount() int {
	return b.source.ItemCount()
}

func (b *listBox[Item, Source]) Item(at IndexPath) (Item, bool) {
	return b.source.Item(at)
}

func (b *listBox[Item, Source]) ReloadFunc() ReloadFunc {
	return b.source.ReloadFunc()
}

func (b *listBox[Item, Source]) SetReloadFunc(fn ReloadFunc) {
	b.source.SetReloadFunc(fn)
}

func (b *listBox[Item, Source]) unwrap() any { return b.source }
