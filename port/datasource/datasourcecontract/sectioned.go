package datasourcecontract

import (
	"testing"

	"go.llib.dev/datasource/port/datasource"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

func Sectioned[Item, Section any](mk contract.Make[SectionedSubject[Item, Section]], opts ...Option[Item]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := let.Var(s, func(t *testcase.T) SectionedSubject[Item, Section] {
		return mk(t)
	})

	givenSections := func(t *testcase.T) {
		t.Log("given the source has at least one section")
		if len(subject.Get(t).Expected) == 0 {
			t.Skip()
		}
	}

	s.Test("the reported counts are consistent", func(t *testcase.T) {
		assert.NoError(t, datasource.Validate(subject.Get(t).Source))
	})

	s.Test("#SectionCount", func(t *testcase.T) {
		assert.Equal(t, len(subject.Get(t).Expected), subject.Get(t).Source.SectionCount())
	})

	s.Test("#Sections", func(t *testcase.T) {
		got := subject.Get(t).Source.Sections()
		assert.Equal(t, len(subject.Get(t).Expected), len(got))
		if 0 < len(got) {
			assert.Equal(t, subject.Get(t).sections(), got)
		}
	})

	s.Test("#ItemCount is the sum of the items in every section", func(t *testcase.T) {
		assert.Equal(t, subject.Get(t).totalItems(), subject.Get(t).Source.ItemCount())
	})

	s.Describe("#ItemCountIn", func(s *testcase.Spec) {
		section := let.Var[int](s, nil)

		act := let.Act(func(t *testcase.T) int {
			return subject.Get(t).Source.ItemCountIn(section.Get(t))
		})

		s.When("section exists", func(s *testcase.Spec) {
			s.Before(givenSections)

			section.Let(s, func(t *testcase.T) int {
				return t.Random.IntN(len(subject.Get(t).Expected))
			})

			s.Then("the number of items in the section is returned", func(t *testcase.T) {
				assert.Equal(t, len(subject.Get(t).Expected[section.Get(t)].Items), act(t))
			})
		})

		s.When("section is unknown", func(s *testcase.Spec) {
			section.Let(s, func(t *testcase.T) int {
				return len(subject.Get(t).Expected) + t.Random.IntBetween(0, 42)
			})

			s.Then("it has no items", func(t *testcase.T) {
				assert.Equal(t, 0, act(t))
			})
		})
	})

	s.Describe("#Item", func(s *testcase.Spec) {
		at := let.Var[datasource.IndexPath](s, nil)

		act := let.Act2(func(t *testcase.T) (Item, bool) {
			return subject.Get(t).Source.Item(at.Get(t))
		})

		thenMissing := func(s *testcase.Spec) {
			s.Then("the item is reported as missing", func(t *testcase.T) {
				_, ok := act(t)
				assert.False(t, ok)
			})
		}

		s.When("the position points to an existing item", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				t.Log("given the source has at least one item")
				if subject.Get(t).totalItems() == 0 {
					t.Skip()
				}
			})

			at.Let(s, func(t *testcase.T) datasource.IndexPath {
				var candidates []datasource.IndexPath
				for section, sf := range subject.Get(t).Expected {
					for i := range sf.Items {
						candidates = append(candidates, datasource.IndexPath{Section: section, Item: i})
					}
				}
				return candidates[t.Random.IntN(len(candidates))]
			})

			s.Then("the item is returned", func(t *testcase.T) {
				got, ok := act(t)
				assert.True(t, ok)
				exp := subject.Get(t).Expected[at.Get(t).Section].Items[at.Get(t).Item]
				assert.Equal(t, exp, got)
			})
		})

		s.When("the position is beyond the item count of the section", func(s *testcase.Spec) {
			s.Before(givenSections)

			at.Let(s, func(t *testcase.T) datasource.IndexPath {
				section := t.Random.IntN(len(subject.Get(t).Expected))
				return datasource.IndexPath{
					Section: section,
					Item:    len(subject.Get(t).Expected[section].Items) + t.Random.IntBetween(0, 42),
				}
			})

			thenMissing(s)
		})

		s.When("the section is unknown", func(s *testcase.Spec) {
			at.Let(s, func(t *testcase.T) datasource.IndexPath {
				return datasource.IndexPath{
					Section: len(subject.Get(t).Expected) + t.Random.IntBetween(0, 42),
					Item:    0,
				}
			})

			thenMissing(s)
		})

		s.When("the position is negative", func(s *testcase.Spec) {
			at.Let(s, func(t *testcase.T) datasource.IndexPath {
				return datasource.IndexPath{Section: -1, Item: -1 * t.Random.IntBetween(1, 42)}
			})

			thenMissing(s)
		})
	})

	s.Test("#HeaderTitle and #FooterTitle", func(t *testcase.T) {
		src := subject.Get(t).Source
		for section, sf := range subject.Get(t).Expected {
			assertTitle(t, sf.Header, src.HeaderTitle, section)
			assertTitle(t, sf.Footer, src.FooterTitle, section)
		}
		unknown := len(subject.Get(t).Expected) + t.Random.IntBetween(0, 42)
		assertTitle(t, nil, src.HeaderTitle, unknown)
		assertTitle(t, nil, src.FooterTitle, unknown)
	})

	s.Test("items are iterated section by section", func(t *testcase.T) {
		var got [][]Item
		for at, item := range datasource.Items(subject.Get(t).Source) {
			for len(got) <= at.Section {
				got = append(got, nil)
			}
			got[at.Section] = append(got[at.Section], item)
		}
		for section, sf := range subject.Get(t).Expected {
			if len(sf.Items) == 0 {
				continue
			}
			assert.Equal(t, sf.Items, got[section])
		}
	})

	s.Context("reload", Reload(func(tb testing.TB) datasource.ListSource[Item] {
		return mk(tb).Source
	}, opts...).Spec)

	return s.AsSuite("SectionedSource")
}

func assertTitle(tb testing.TB, exp *string, title func(int) (string, bool), section int) {
	tb.Helper()
	got, ok := title(section)
	if exp == nil {
		assert.False(tb, ok, assert.MessageF("section #%d should not have a title", section))
		return
	}
	assert.True(tb, ok, assert.MessageF("section #%d should have a title", section))
	assert.Equal(tb, *exp, got)
}
