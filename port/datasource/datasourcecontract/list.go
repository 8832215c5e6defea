package datasourcecontract

import (
	"testing"

	"go.llib.dev/datasource/port/datasource"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

func List[Item any](mk contract.Make[ListSubject[Item]], opts ...Option[Item]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := let.Var(s, func(t *testcase.T) ListSubject[Item] {
		return mk(t)
	})

	s.Test("#ItemCount", func(t *testcase.T) {
		assert.Equal(t, len(subject.Get(t).Expected), subject.Get(t).Source.ItemCount())
	})

	s.Describe("#Item", func(s *testcase.Spec) {
		at := let.Var[datasource.IndexPath](s, nil)

		act := let.Act2(func(t *testcase.T) (Item, bool) {
			return subject.Get(t).Source.Item(at.Get(t))
		})

		s.When("the position points to an existing item", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				t.Log("given the source has at least one item")
				if len(subject.Get(t).Expected) == 0 {
					t.Skip()
				}
			})

			at.Let(s, func(t *testcase.T) datasource.IndexPath {
				return datasource.IndexPath{Item: t.Random.IntN(len(subject.Get(t).Expected))}
			})

			s.Then("the item is returned", func(t *testcase.T) {
				got, ok := act(t)
				assert.True(t, ok)
				assert.Equal(t, subject.Get(t).Expected[at.Get(t).Item], got)
			})
		})

		s.When("the position is beyond the item count", func(s *testcase.Spec) {
			at.Let(s, func(t *testcase.T) datasource.IndexPath {
				return datasource.IndexPath{Item: len(subject.Get(t).Expected) + t.Random.IntBetween(0, 42)}
			})

			s.Then("the item is reported as missing", func(t *testcase.T) {
				_, ok := act(t)
				assert.False(t, ok)
			})
		})

		s.When("the position is negative", func(s *testcase.Spec) {
			at.Let(s, func(t *testcase.T) datasource.IndexPath {
				return datasource.IndexPath{Item: -1 * t.Random.IntBetween(1, 42)}
			})

			s.Then("the item is reported as missing", func(t *testcase.T) {
				_, ok := act(t)
				assert.False(t, ok)
			})
		})
	})

	s.Test("every item is returned in order", func(t *testcase.T) {
		for i, exp := range subject.Get(t).Expected {
			got, ok := subject.Get(t).Source.Item(datasource.IndexPath{Item: i})
			assert.True(t, ok)
			assert.Equal(t, exp, got)
		}
	})

	s.Context("reload", Reload(func(tb testing.TB) datasource.ListSource[Item] {
		return mk(tb).Source
	}, opts...).Spec)

	return s.AsSuite("ListSource")
}
