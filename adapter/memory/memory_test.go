package memory_test

import (
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/Pallinder/go-randomdata"

	"go.llib.dev/datasource/adapter/memory"
	"go.llib.dev/datasource/port/datasource"
	"go.llib.dev/datasource/port/datasource/datasourcecontract"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
)

func TestList_contract(t *testing.T) {
	datasourcecontract.List(func(tb testing.TB) datasourcecontract.ListSubject[string] {
		t := testcase.ToT(&tb)
		items := random.Slice(t.Random.IntBetween(0, 7), func() string {
			return randomdata.SillyName()
		})
		return datasourcecontract.ListSubject[string]{
			Source:   memory.NewList(items...),
			Expected: items,
		}
	}, datasourcecontract.Config[string]{
		Change: func(tb testing.TB, src datasource.ListSource[string]) {
			src.(*memory.List[string]).Append(randomdata.SillyName())
		},
	}).Test(t)
}

func TestSectioned_contract(t *testing.T) {
	datasourcecontract.Sectioned(func(tb testing.TB) datasourcecontract.SectionedSubject[int, string] {
		t := testcase.ToT(&tb)
		return MakeSectioned(t)
	}, datasourcecontract.Config[int]{
		Change: func(tb testing.TB, src datasource.ListSource[int]) {
			src.(*memory.Sectioned[int, string]).AddSection(randomdata.Noun(), testcase.ToT(&tb).Random.Int())
		},
	}).Test(t)
}

func TestGrouped_contract(t *testing.T) {
	datasourcecontract.Sectioned(func(tb testing.TB) datasourcecontract.SectionedSubject[string, string] {
		t := testcase.ToT(&tb)
		src := memory.NewGrouped(initial)
		src.Title = func(key string) string { return "Starts with " + key }

		var subject = datasourcecontract.SectionedSubject[string, string]{Source: src}
		var index = map[string]int{}
		t.Random.Repeat(0, 12, func() {
			name := randomdata.SillyName()
			src.Append(name)
			key := src.KeyOf(name)
			i, ok := index[key]
			if !ok {
				header := "Starts with " + key
				subject.Expected = append(subject.Expected, datasourcecontract.SectionFixture[string, string]{
					Section: key,
					Header:  &header,
				})
				i = len(subject.Expected) - 1
				index[key] = i
			}
			subject.Expected[i].Items = append(subject.Expected[i].Items, name)
		})
		return subject
	}, datasourcecontract.Config[string]{
		Change: func(tb testing.TB, src datasource.ListSource[string]) {
			src.(*memory.Grouped[string, string]).Append(randomdata.SillyName())
		},
	}).Test(t)
}

func initial(name string) string {
	r, _ := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r))
}

func MakeSectioned(t *testcase.T) datasourcecontract.SectionedSubject[int, string] {
	src := &memory.Sectioned[int, string]{}
	var subject = datasourcecontract.SectionedSubject[int, string]{Source: src}
	t.Random.Repeat(0, 5, func() {
		fixture := datasourcecontract.SectionFixture[int, string]{
			Section: randomdata.Noun(),
			Items:   random.Slice(t.Random.IntBetween(0, 5), t.Random.Int),
		}
		i := src.AddSection(fixture.Section, fixture.Items...)
		if t.Random.Bool() {
			header := randomdata.Adjective()
			src.SetHeader(i, header)
			fixture.Header = &header
		}
		if t.Random.Bool() {
			footer := randomdata.SillyName()
			src.SetFooter(i, footer)
			fixture.Footer = &footer
		}
		subject.Expected = append(subject.Expected, fixture)
	})
	return subject
}

func TestList(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		reloads = let.VarOf(s, 0)
		list    = let.Var(s, func(t *testcase.T) *memory.List[string] {
			l := memory.NewList(t.Random.String(), t.Random.String())
			l.SetReloadFunc(func() { reloads.Set(t, reloads.Get(t)+1) })
			return l
		})
	)

	s.Test("zero value is an empty list", func(t *testcase.T) {
		var l memory.List[string]
		assert.Equal(t, 0, l.ItemCount())
		_, ok := l.Item(datasource.IndexPath{})
		assert.False(t, ok)
		assert.Nil(t, l.ReloadFunc())
	})

	s.Test("items are copied on construction", func(t *testcase.T) {
		items := []string{"foo", "bar"}
		l := memory.NewList(items...)
		items[0] = "baz"
		assert.Equal(t, []string{"foo", "bar"}, l.Items())
	})

	s.Test("an item outside of the first section is missing", func(t *testcase.T) {
		_, ok := list.Get(t).Item(datasource.IndexPath{Section: 1, Item: 0})
		assert.False(t, ok)
	})

	s.Describe("#Append", func(s *testcase.Spec) {
		s.Test("appended items are available and the consumer is notified", func(t *testcase.T) {
			v := t.Random.String()
			list.Get(t).Append(v)
			assert.Equal(t, 3, list.Get(t).ItemCount())
			got, ok := list.Get(t).Item(datasource.IndexPath{Item: 2})
			assert.True(t, ok)
			assert.Equal(t, v, got)
			assert.Equal(t, 1, reloads.Get(t))
		})

		s.Test("appending nothing is not a change", func(t *testcase.T) {
			list.Get(t).Append()
			assert.Equal(t, 0, reloads.Get(t))
		})
	})

	s.Describe("#Set", func(s *testcase.Spec) {
		s.Test("in range", func(t *testcase.T) {
			v := t.Random.String()
			assert.True(t, list.Get(t).Set(1, v))
			got, _ := list.Get(t).Item(datasource.IndexPath{Item: 1})
			assert.Equal(t, v, got)
			assert.Equal(t, 1, reloads.Get(t))
		})

		s.Test("out of range", func(t *testcase.T) {
			assert.False(t, list.Get(t).Set(2, t.Random.String()))
			assert.False(t, list.Get(t).Set(-1, t.Random.String()))
			assert.Equal(t, 0, reloads.Get(t))
		})
	})

	s.Test("#Reset", func(t *testcase.T) {
		list.Get(t).Reset("foo")
		assert.Equal(t, []string{"foo"}, list.Get(t).Items())
		assert.Equal(t, 1, reloads.Get(t))
	})
}

func TestSectioned(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		reloads = let.VarOf(s, 0)
		src     = let.Var(s, func(t *testcase.T) *memory.Sectioned[string, string] {
			src := &memory.Sectioned[string, string]{}
			src.AddSection("A", "a1", "a2", "a3")
			src.AddSection("B", "b1")
			src.SetReloadFunc(func() { reloads.Set(t, reloads.Get(t)+1) })
			return src
		})
	)

	s.Test("mutations on unknown sections are rejected", func(t *testcase.T) {
		assert.False(t, src.Get(t).Append(2, "c1"))
		assert.False(t, src.Get(t).SetHeader(-1, "x"))
		assert.False(t, src.Get(t).SetFooter(2, "x"))
		assert.Equal(t, 0, reloads.Get(t))
	})

	s.Test("every mutation notifies the consumer", func(t *testcase.T) {
		src.Get(t).AddSection("C")
		src.Get(t).Append(2, "c1")
		src.Get(t).SetHeader(2, "header")
		src.Get(t).SetFooter(2, "footer")
		assert.Equal(t, 4, reloads.Get(t))
		assert.Equal(t, 5, src.Get(t).ItemCount())
		assert.NoError(t, datasource.Validate[string, string](src.Get(t)))
	})
}

func TestGrouped(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("the zero value is an empty source", func(t *testcase.T) {
		var g memory.Grouped[string, string]
		assert.Equal(t, 0, g.SectionCount())
		assert.Equal(t, 0, g.ItemCount())
		assert.NotPanic(t, func() { g.Append() })
	})

	s.Test("adding items without a key function is a programming error", func(t *testcase.T) {
		var g memory.Grouped[string, string]
		g.SetReloadFunc(func() { t.Fatal("unexpected reload") })

		got := assert.Panic(t, func() { g.Append(t.Random.String()) })
		assert.Equal(t, any(memory.ErrMissingKeyFunc), got)
		assert.Equal(t, 0, g.ItemCount())
	})

	s.Test("items are grouped by their key in first-seen order", func(t *testcase.T) {
		g := memory.NewGrouped(initial, "éclair", "apple", "élan")
		assert.Equal(t, []string{"É", "A"}, g.Sections())
		assert.Equal(t, 2, g.ItemCountIn(0))
		_, ok := g.HeaderTitle(0)
		assert.False(t, ok)
	})
}
