package cond

import (
	"fmt"
	"hash/fnv"
	"reflect"
	"runtime"
	"time"

	"github.com/google/uuid"
)

// Predicate tests the held value.
type Predicate[T any] func(T) bool

// Consumer performs a side effect on the held value.
type Consumer[T any] func(T)

// Converter maps the held value to a result value.
type Converter[T, R any] func(T) R

// ErrSupplier produces the error to raise when no branch matched.
type ErrSupplier func() error

// ErrBuilder produces the error to raise from the held value when no
// branch matched.
type ErrBuilder[T any] func(T) error

// Conditional holds a value together with an optional predicate and an
// optional then consumer, each settable at most once. The predicate is
// evaluated lazily and its outcome memoized for the node's lifetime.
//
// Chained nodes built with OrElseIf keep a back-link to the previous
// node; a branch acts only when no older branch in the chain matched.
type Conditional[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	predicate Predicate[T]
	consumer  Consumer[T]
	result    bool
	evaluated bool
	parent    *Conditional[T] // nil terminates the fallback chain
	err       error
}

// Of returns a Conditional of the value with no predicate attached.
func Of[T any](value T) *Conditional[T] {
	return &Conditional[T]{
		value:     value,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// OfNonNil returns a Conditional of the value pre-bound to the default
// present-value predicate. The predicate cannot be replaced later.
func OfNonNil[T any](value T) *Conditional[T] {
	c := Of(value)
	c.predicate = nonNilPredicate[T]()
	return c
}

func nonNilPredicate[T any]() Predicate[T] {
	return func(t T) bool {
		return !isNil(t)
	}
}

// On attaches the predicate to test the held value. The slot is
// once-only: a second call records ErrPredicateSet.
func (c *Conditional[T]) On(predicate Predicate[T]) *Conditional[T] {
	if c.err != nil {
		return c
	}
	if predicate == nil {
		c.err = ErrNilPredicate
		return c
	}

	c.setPredicate(predicate)
	return c
}

// OnNonNil attaches the default present-value predicate, same slot
// rules as On.
func (c *Conditional[T]) OnNonNil() *Conditional[T] {
	if c.err != nil {
		return c
	}

	c.setPredicate(nonNilPredicate[T]())
	return c
}

// Then attaches the consumer to run when the value passes the
// predicate. When the chain is not already decided by an older branch,
// the predicate is evaluated here and a matching consumer fires
// immediately, so a single fluent statement both registers and runs
// the branch:
//
//	cond.Of(v).On(somePredicate).Then(someConsumer)
//
// The slot is once-only: a second call records ErrConsumerSet.
func (c *Conditional[T]) Then(consumer Consumer[T]) *Conditional[T] {
	if c.err != nil {
		return c
	}
	if consumer == nil {
		c.err = ErrNilConsumer
		return c
	}
	if c.consumer != nil {
		c.err = ErrConsumerSet
		return c
	}
	c.consumer = consumer

	if c.skipped() {
		return c
	}

	if c.predicate == nil {
		c.err = ErrPredicateMissing
		return c
	}
	if c.memoized() {
		c.consumer(c.value)
	}
	return c
}

// Evaluate applies the predicate to the held value and reports the
// outcome. The predicate runs at most once; repeated calls return the
// cached result.
func (c *Conditional[T]) Evaluate() (bool, error) {
	if c.err != nil {
		return false, c.err
	}
	if c.predicate == nil {
		return false, ErrPredicateMissing
	}
	return c.memoized(), nil
}

// Get reports whether the held value passes the predicate. On a chain
// it reports the last appended node's predicate only, independent of
// whether an older branch already won.
func (c *Conditional[T]) Get() (bool, error) {
	return c.Evaluate()
}

// OrElse runs elseConsumer when the value does not pass the predicate.
// On a chain that an older branch already decided, it does nothing.
// The matching path was already handled by Then at attach time.
func (c *Conditional[T]) OrElse(elseConsumer Consumer[T]) error {
	if c.err != nil {
		return c.err
	}
	if elseConsumer == nil {
		return ErrNilElseConsumer
	}
	if c.skipped() {
		return nil
	}

	ok, err := c.perform()
	if err != nil {
		return err
	}
	if !ok {
		elseConsumer(c.value)
	}
	return nil
}

// OrElseThrow returns the supplier's error when the value does not pass
// the predicate. The error is returned as produced, unwrapped. On a
// chain that an older branch already decided, it does nothing.
func (c *Conditional[T]) OrElseThrow(supplier ErrSupplier) error {
	if c.err != nil {
		return c.err
	}
	if supplier == nil {
		return ErrNilSupplier
	}
	if c.skipped() {
		return nil
	}

	ok, err := c.perform()
	if err != nil {
		return err
	}
	if !ok {
		return supplier()
	}
	return nil
}

// OrElseThrowWith is OrElseThrow with a builder that receives the held
// value.
func (c *Conditional[T]) OrElseThrowWith(builder ErrBuilder[T]) error {
	if c.err != nil {
		return c.err
	}
	if builder == nil {
		return ErrNilBuilder
	}
	if c.skipped() {
		return nil
	}

	ok, err := c.perform()
	if err != nil {
		return err
	}
	if !ok {
		return builder(c.value)
	}
	return nil
}

// OrElseIf extends the chain: it allocates a new node sharing the held
// value, bound to the new predicate, with this node as its fallback
// parent. The receiver is never mutated.
func (c *Conditional[T]) OrElseIf(predicate Predicate[T]) *Conditional[T] {
	next := Of(c.value)
	next.parent = c
	next.err = c.err

	if next.err == nil {
		if predicate == nil {
			next.err = ErrNilPredicate
		} else {
			next.predicate = predicate
		}
	}
	return next
}

// Id returns the node identity, for diagnostics.
func (c *Conditional[T]) Id() uuid.UUID {
	return c.id
}

// CreatedAt returns the node creation time (UTC).
func (c *Conditional[T]) CreatedAt() time.Time {
	return c.createdAt
}

// Err returns the first misuse recorded on this node, if any.
func (c *Conditional[T]) Err() error {
	return c.err
}

// Equals reports whether the other node holds an equal value and the
// same predicate and consumer. Function values compare by reference
// identity only, so separately written but behaviorally identical
// callbacks are never equal.
func (c *Conditional[T]) Equals(other *Conditional[T]) bool {
	if c == other {
		return true
	}
	if other == nil {
		return false
	}

	return reflect.DeepEqual(c.value, other.value) &&
		funcPtr(c.predicate) == funcPtr(other.predicate) &&
		funcPtr(c.consumer) == funcPtr(other.consumer)
}

// Hash returns an FNV-1a digest over the value, predicate identity and
// consumer identity. Nodes equal under Equals hash equal.
func (c *Conditional[T]) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%v|%x|%x", c.value, funcPtr(c.predicate), funcPtr(c.consumer))
	return h.Sum64()
}

// String renders the node for debugging. The exact format is
// unspecified.
func (c *Conditional[T]) String() string {
	return fmt.Sprintf("Conditional of value [%v] on condition [%s] to consume [%s]",
		c.value, funcName(c.predicate), funcName(c.consumer))
}

func (c *Conditional[T]) setPredicate(predicate Predicate[T]) {
	if c.predicate != nil {
		c.err = ErrPredicateSet
		return
	}
	c.predicate = predicate
}

// skipped reports whether an older branch in the fallback chain already
// matched, which makes this branch mutually excluded. The walk starts
// at the nearest fallback and ends at the chain root; a node without a
// predicate cannot match.
func (c *Conditional[T]) skipped() bool {
	for p := c.parent; p != nil; p = p.parent {
		if p.predicate != nil && p.memoized() {
			return true
		}
	}
	return false
}

// perform is the terminal-side evaluation: both slots must be present
// before the memoized predicate outcome is consulted.
func (c *Conditional[T]) perform() (bool, error) {
	if c.predicate == nil {
		return false, ErrPredicateMissing
	}
	if c.consumer == nil {
		return false, ErrConsumerMissing
	}
	return c.memoized(), nil
}

func (c *Conditional[T]) memoized() bool {
	if !c.evaluated {
		c.result = c.predicate(c.value)
		c.evaluated = true
	}
	return c.result
}

func funcName(f interface{}) string {
	p := funcPtr(f)
	if p == 0 {
		return "<nil>"
	}
	if fn := runtime.FuncForPC(p); fn != nil {
		return fn.Name()
	}
	return fmt.Sprintf("0x%x", p)
}
