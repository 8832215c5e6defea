package datasource_test

import (
	"errors"
	"testing"

	"go.llib.dev/datasource/adapter/memory"
	"go.llib.dev/datasource/port/datasource"
	"go.llib.dev/datasource/port/datasource/datasourcecontract"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

func TestReload(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("Notify without a callback is a no-op", func(t *testcase.T) {
		var r datasource.Reload
		assert.NotPanic(t, r.Notify)
	})

	s.Test("Notify calls the current callback", func(t *testcase.T) {
		var (
			r     datasource.Reload
			calls int
		)
		r.SetReloadFunc(func() { calls++ })
		r.Notify()
		r.Notify()
		assert.Equal(t, 2, calls)
	})
}

func TestSectionedList_contract(t *testing.T) {
	datasourcecontract.Sectioned(func(tb testing.TB) datasourcecontract.SectionedSubject[string, datasource.NoSection] {
		t := testcase.ToT(&tb)
		items := random.Slice(t.Random.IntBetween(1, 7), t.Random.String)
		return datasourcecontract.SectionedSubject[string, datasource.NoSection]{
			Source: datasource.SectionedList[string]{List: memory.NewList(items...)},
			Expected: []datasourcecontract.SectionFixture[string, datasource.NoSection]{
				{Items: items},
			},
		}
	}).Test(t)
}

func TestSectionedList_erased(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("a flat list can be held as a type erased sectioned source", func(t *testcase.T) {
		list := memory.NewList("foo", "bar")
		ds := datasource.EraseSectioned[string, datasource.NoSection](datasource.SectionedList[string]{List: list})

		assert.Equal(t, 1, ds.SectionCount())
		assert.Equal(t, 2, ds.ItemCountIn(0))
		got, ok := ds.Item(datasource.IndexPath{Item: 1})
		assert.True(t, ok)
		assert.Equal(t, "bar", got)

		var calls int
		ds.SetReloadFunc(func() { calls++ })
		list.Append("baz")
		assert.Equal(t, 1, calls)
		assert.Equal(t, 3, ds.ItemCountIn(0))
	})
}

func TestItems(t *testing.T) {
	s := testcase.NewSpec(t)

	src := &memory.Sectioned[string, string]{}
	src.AddSection("A", "a1", "a2")
	src.AddSection("B")
	src.AddSection("C", "c1")

	s.Test("items are visited section by section", func(t *testcase.T) {
		var (
			paths []datasource.IndexPath
			items []string
		)
		for at, item := range datasource.Items[string, string](src) {
			paths = append(paths, at)
			items = append(items, item)
		}
		assert.Equal(t, []string{"a1", "a2", "c1"}, items)
		assert.Equal(t, []datasource.IndexPath{
			{Section: 0, Item: 0},
			{Section: 0, Item: 1},
			{Section: 2, Item: 0},
		}, paths)
	})

	s.Test("iteration can be stopped early", func(t *testcase.T) {
		var n int
		for range datasource.Items[string, string](src) {
			n++
			break
		}
		assert.Equal(t, 1, n)
	})
}

func TestValidate(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("consistent source", func(t *testcase.T) {
		src := &memory.Sectioned[int, string]{}
		src.AddSection("A", 1, 2, 3)
		src.AddSection("B", 4)
		assert.NoError(t, datasource.Validate[int, string](src))
	})

	s.Test("empty source", func(t *testcase.T) {
		assert.NoError(t, datasource.Validate[int, string](&memory.Sectioned[int, string]{}))
	})

	s.Test("inconsistent source", func(t *testcase.T) {
		err := datasource.Validate[int, string](&LyingSource{})
		assert.Error(t, err)
		assert.True(t, errors.Is(err, datasource.ErrInconsistent))
	})
}

// LyingSource reports counts that contradict its content.
type LyingSource struct {
	datasource.Reload
}

func (LyingSource) ItemCount() int { return 10 }

func (LyingSource) Item(at datasource.IndexPath) (int, bool) {
	return at.Item, at.Section == 0 && 0 <= at.Item && at.Item < 5
}

func (LyingSource) SectionCount() int { return 2 }

func (LyingSource) Sections() []string { return []string{"only"} }

func (LyingSource) ItemCountIn(section int) int { return 3 }

func (LyingSource) HeaderTitle(int) (string, bool) { return "", false }

func (LyingSource) FooterTitle(int) (string, bool) { return "", false }
