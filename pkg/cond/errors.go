package cond

import (
	"errors"
	"fmt"
)

// Error kinds. Every concrete error below wraps exactly one of these,
// so callers can match either the kind or the specific failure with
// errors.Is.
var (
	// ErrInvalidArgument marks a required callback that was nil at the
	// call that needed it.
	ErrInvalidArgument = errors.New("cond: invalid argument")

	// ErrInvalidState marks an attempt to set a once-only slot twice.
	ErrInvalidState = errors.New("cond: invalid state")

	// ErrMissingPredicate marks a terminal operation invoked on a node
	// that never had a predicate attached.
	ErrMissingPredicate = errors.New("cond: missing predicate")
)

var (
	ErrNilPredicate     = fmt.Errorf("%w: predicate cannot be nil", ErrInvalidArgument)
	ErrNilConsumer      = fmt.Errorf("%w: then consumer cannot be nil", ErrInvalidArgument)
	ErrNilElseConsumer  = fmt.Errorf("%w: else consumer cannot be nil", ErrInvalidArgument)
	ErrNilConverter     = fmt.Errorf("%w: then converter cannot be nil", ErrInvalidArgument)
	ErrNilElseConverter = fmt.Errorf("%w: else converter cannot be nil", ErrInvalidArgument)
	ErrNilSupplier      = fmt.Errorf("%w: error supplier cannot be nil", ErrInvalidArgument)
	ErrNilBuilder       = fmt.Errorf("%w: error builder cannot be nil", ErrInvalidArgument)

	ErrPredicateSet = fmt.Errorf("%w: predicate is already set", ErrInvalidState)
	ErrConsumerSet  = fmt.Errorf("%w: then consumer is already set", ErrInvalidState)

	ErrPredicateMissing = fmt.Errorf("%w: predicate is not given", ErrMissingPredicate)

	// ErrConsumerMissing is raised by the side-effecting terminals when
	// the node never had a then consumer attached.
	ErrConsumerMissing = fmt.Errorf("%w: then consumer is not given", ErrInvalidArgument)
)
