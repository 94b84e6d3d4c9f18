package assertion

import (
	"errors"
	"fmt"

	"github.com/stretchr/testify/assert"
)

// Thrower is the block of code under test. It may raise an error.
type Thrower func() error

// ResultOf adapts a value-returning call to a Thrower, discarding the
// value.
func ResultOf[R any](f func() (R, error)) Thrower {
	return func() error {
		_, err := f()
		return err
	}
}

// ErrorAssertion holds an error captured by Thrown and exposes
// chainable expectations over it.
type ErrorAssertion struct {
	t   assert.TestingT
	err error
}

type tHelper interface {
	Helper()
}

// Thrown runs the thrower and captures the raised error. It fails the
// test when the thrower completes without an error.
func Thrown(t assert.TestingT, thrower Thrower) *ErrorAssertion {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	err := thrower()
	if err == nil {
		assert.Fail(t, "expected an error to be raised, but none was")
	}
	return &ErrorAssertion{t: t, err: err}
}

// NotThrown runs the thrower and fails the test when it raises an
// error.
func NotThrown(t assert.TestingT, thrower Thrower) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	assert.NoError(t, thrower())
}

// Err returns the captured error.
func (a *ErrorAssertion) Err() error {
	return a.err
}

// ExpectIs asserts that the captured error matches target per
// errors.Is.
func (a *ErrorAssertion) ExpectIs(target error) *ErrorAssertion {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}

	assert.ErrorIs(a.t, a.err, target)
	return a
}

// ExpectMessage asserts that the captured error's message equals msg.
func (a *ErrorAssertion) ExpectMessage(msg string) *ErrorAssertion {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}

	assert.EqualError(a.t, a.err, msg)
	return a
}

// ExpectMessageContains asserts that the captured error's message
// contains sub.
func (a *ErrorAssertion) ExpectMessageContains(sub string) *ErrorAssertion {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}

	assert.ErrorContains(a.t, a.err, sub)
	return a
}

// ExpectCause asserts that the captured error wraps a cause matching
// target per errors.Is.
func (a *ErrorAssertion) ExpectCause(target error) *ErrorAssertion {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}

	cause := errors.Unwrap(a.err)
	if cause == nil {
		assert.Fail(a.t, fmt.Sprintf("error %q has no cause", a.err))
		return a
	}
	assert.ErrorIs(a.t, cause, target)
	return a
}

// ExpectNoCause asserts that the captured error wraps nothing.
func (a *ErrorAssertion) ExpectNoCause() *ErrorAssertion {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}

	if cause := errors.Unwrap(a.err); cause != nil {
		assert.Fail(a.t, fmt.Sprintf("expected no cause, got %q", cause))
	}
	return a
}

// ExpectAs asserts that the captured error matches type E per
// errors.As and returns the matched value. It is a package-level
// function because the target type E is introduced here.
func ExpectAs[E error](a *ErrorAssertion) E {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}

	var target E
	if !errors.As(a.err, &target) {
		assert.Fail(a.t, fmt.Sprintf("error %q is not of type %T", a.err, target))
	}
	return target
}
