package tests

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/cond3/pkg/cond"
	"github.com/ib-77/cond3/pkg/cond/assertion"
)

type order struct {
	id    string
	total float64
}

// TestOrderRouting drives a realistic three-way routing decision through
// a full chain and checks that exactly one handler runs per order.
func TestOrderRouting(t *testing.T) {
	orders := []order{
		{id: "bulk-1", total: 25000},
		{id: "retail-1", total: 120},
		{id: "free-1", total: 0},
	}

	routed := map[string]string{}
	route := func(kind string) cond.Consumer[order] {
		return func(o order) { routed[o.id] = kind }
	}

	for _, o := range orders {
		err := cond.Of(o).
			On(func(o order) bool { return o.total >= 10000 }).
			Then(route("wholesale")).
			OrElseIf(func(o order) bool { return o.total > 0 }).
			Then(route("retail")).
			OrElse(route("manual-review"))

		assert.NoError(t, err)
	}

	assert.Equal(t, map[string]string{
		"bulk-1":   "wholesale",
		"retail-1": "retail",
		"free-1":   "manual-review",
	}, routed)
	assert.Len(t, routed, len(orders))
}

// TestGradeConversion exercises the value-returning flow end to end.
func TestGradeConversion(t *testing.T) {
	grade := func(score int) (string, error) {
		return cond.ThenReturn(
			cond.Of(score).On(func(s int) bool { return s >= 90 }),
			func(int) string { return "A" },
		).OrElseReturn(func(s int) string {
			if s >= 60 {
				return "pass"
			}
			return "fail"
		})
	}

	for score, want := range map[int]string{95: "A", 72: "pass", 40: "fail"} {
		got, err := grade(score)
		assert.NoError(t, err)
		assert.Equal(t, want, got, "score %d", score)
	}
}

// TestValidationFailure routes a no-match chain into a built error and
// inspects it with the assertion companion.
func TestValidationFailure(t *testing.T) {
	errTooShort := errors.New("name too short")

	validate := func(name string) error {
		return cond.Of(name).
			On(func(v string) bool { return len(v) >= 3 }).
			Then(func(string) {}).
			OrElseThrowWith(func(v string) error {
				return fmt.Errorf("%q: %w", v, errTooShort)
			})
	}

	assert.NoError(t, validate("alice"))

	assertion.Thrown(t, func() error { return validate("al") }).
		ExpectIs(errTooShort).
		ExpectMessageContains(`"al"`)
}

// TestMisuseSurfacesAtTerminal checks the fluent-misuse contract across
// package boundaries: the first recorded error wins and carries its kind.
func TestMisuseSurfacesAtTerminal(t *testing.T) {
	p := func(v string) bool { return strings.HasPrefix(v, "x") }

	err := cond.Of("value").
		On(p).
		On(p).
		Then(func(string) {}).
		OrElse(func(string) {})

	assert.ErrorIs(t, err, cond.ErrPredicateSet)
	assert.ErrorIs(t, err, cond.ErrInvalidState)

	assertion.Thrown(t, assertion.ResultOf(func() (bool, error) {
		return cond.Of("value").Get()
	})).ExpectIs(cond.ErrMissingPredicate)
}

// TestSingleExpressionUsage mirrors the intended one-statement style:
// register and fire in the same fluent expression, no separate trigger.
func TestSingleExpressionUsage(t *testing.T) {
	hits := 0

	c := cond.Of("ping").
		On(func(v string) bool { return v == "ping" }).
		Then(func(string) { hits++ })

	assert.NoError(t, c.Err())
	assert.Equal(t, 1, hits)

	ok, err := c.Get()
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, hits, "terminal queries must not re-fire the consumer")
}
