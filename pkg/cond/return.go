package cond

// Return is the value-returning companion of Conditional: an immutable
// snapshot of the held value, the predicate and a then converter. It is
// single-shot, keeps no memoized state, and cannot be chained; its
// terminal re-evaluates the predicate independently of any
// side-effecting evaluation of the originating node.
type Return[T, R any] struct {
	value     T
	predicate Predicate[T]
	converter Converter[T, R]
	err       error
}

// ThenReturn switches a Conditional to the value-returning flow. The
// originating node must already have a predicate; the converter runs on
// the held value when the predicate matches.
//
// It is a package-level function because the result type R is
// introduced here, not on the node.
func ThenReturn[T, R any](c *Conditional[T], converter Converter[T, R]) *Return[T, R] {
	r := &Return[T, R]{
		value:     c.value,
		predicate: c.predicate,
		converter: converter,
	}

	switch {
	case c.err != nil:
		r.err = c.err
	case c.predicate == nil:
		r.err = ErrPredicateMissing
	case converter == nil:
		r.err = ErrNilConverter
	}
	return r
}

// OrElse returns the converted value when the predicate matches,
// otherwise elseValue.
func (r *Return[T, R]) OrElse(elseValue R) (R, error) {
	if r.err != nil {
		var zero R
		return zero, r.err
	}

	if r.predicate(r.value) {
		return r.converter(r.value), nil
	}
	return elseValue, nil
}

// OrElseReturn returns the converted value when the predicate matches,
// otherwise the value produced by elseConverter.
func (r *Return[T, R]) OrElseReturn(elseConverter Converter[T, R]) (R, error) {
	var zero R
	if r.err != nil {
		return zero, r.err
	}
	if elseConverter == nil {
		return zero, ErrNilElseConverter
	}

	if r.predicate(r.value) {
		return r.converter(r.value), nil
	}
	return elseConverter(r.value), nil
}

// OrElseThrow returns the converted value when the predicate matches,
// otherwise the supplier's error, as produced and unwrapped.
func (r *Return[T, R]) OrElseThrow(supplier ErrSupplier) (R, error) {
	var zero R
	if r.err != nil {
		return zero, r.err
	}
	if supplier == nil {
		return zero, ErrNilSupplier
	}

	if r.predicate(r.value) {
		return r.converter(r.value), nil
	}
	return zero, supplier()
}

// OrElseThrowWith is OrElseThrow with a builder that receives the held
// value.
func (r *Return[T, R]) OrElseThrowWith(builder ErrBuilder[T]) (R, error) {
	var zero R
	if r.err != nil {
		return zero, r.err
	}
	if builder == nil {
		return zero, ErrNilBuilder
	}

	if r.predicate(r.value) {
		return r.converter(r.value), nil
	}
	return zero, builder(r.value)
}
