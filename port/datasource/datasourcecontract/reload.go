package datasourcecontract

import (
	"go.llib.dev/datasource/port/datasource"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

// Reload verifies the reload slot of a source behaves as a single replaceable callback.
func Reload[Item any](mk contract.Make[datasource.ListSource[Item]], opts ...Option[Item]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[Config[Item]](opts)

	src := let.Var(s, func(t *testcase.T) datasource.ListSource[Item] {
		return mk(t)
	})

	s.Test("a new source has no reload callback", func(t *testcase.T) {
		assert.Nil(t, src.Get(t).ReloadFunc())
	})

	s.Describe("#SetReloadFunc", func(s *testcase.Spec) {
		var (
			calls = let.VarOf(s, 0)
			fn    = let.Var(s, func(t *testcase.T) datasource.ReloadFunc {
				return func() { calls.Set(t, calls.Get(t)+1) }
			})
		)
		act := let.Act0(func(t *testcase.T) {
			src.Get(t).SetReloadFunc(fn.Get(t))
		})

		s.Then("the callback can be read back", func(t *testcase.T) {
			act(t)

			got := src.Get(t).ReloadFunc()
			assert.NotNil(t, got)
			got()
			assert.Equal(t, 1, calls.Get(t))
		})

		s.When("a callback was already set", func(s *testcase.Spec) {
			othCalls := let.VarOf(s, 0)

			s.Before(func(t *testcase.T) {
				src.Get(t).SetReloadFunc(func() { othCalls.Set(t, othCalls.Get(t)+1) })
			})

			s.Then("the previous callback is replaced", func(t *testcase.T) {
				act(t)

				src.Get(t).ReloadFunc()()
				assert.Equal(t, 1, calls.Get(t))
				assert.Equal(t, 0, othCalls.Get(t))
			})
		})

		s.When("the callback is nil", func(s *testcase.Spec) {
			fn.LetValue(s, nil)

			s.Before(func(t *testcase.T) {
				src.Get(t).SetReloadFunc(func() {})
			})

			s.Then("the reload slot is cleared", func(t *testcase.T) {
				act(t)

				assert.Nil(t, src.Get(t).ReloadFunc())
			})
		})
	})

	s.Describe("change notification", func(s *testcase.Spec) {
		calls := let.VarOf(s, 0)

		s.Before(func(t *testcase.T) {
			if c.Change == nil {
				t.Skip("no Change option is provided")
			}
			src.Get(t).SetReloadFunc(func() { calls.Set(t, calls.Get(t)+1) })
		})

		s.Test("a change on the source calls the reload callback", func(t *testcase.T) {
			c.Change(t, src.Get(t))

			assert.True(t, 0 < calls.Get(t), "reload callback was not called after the change")
		})

		s.Test("without a callback a change is not a problem", func(t *testcase.T) {
			src.Get(t).SetReloadFunc(nil)

			assert.NotPanic(t, func() { c.Change(t, src.Get(t)) })
			assert.Equal(t, 0, calls.Get(t))
		})
	})

	return s.AsSuite("Reload")
}
