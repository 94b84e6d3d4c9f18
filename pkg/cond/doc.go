// Package cond provides a fluent conditional-evaluation container for
// building if / else-if / else logic over a single held value.
//
// A Conditional[T] holds a value, tests it against a predicate exactly
// once (the outcome is memoized), and runs a consumer when the test
// passes. Chains built with OrElseIf behave like an if-elseif ladder:
// the first branch, in declaration order, whose predicate matches the
// value wins, and only that branch's consumer runs.
//
// Key operations:
// - Of/OfNonNil: create a Conditional from a value
// - On/OnNonNil: attach the predicate (at most once)
// - Then: attach the consumer; it fires at attach time on a match
// - Evaluate/Get: memoized boolean outcome of the predicate
// - OrElse, OrElseThrow, OrElseThrowWith: terminal fallback handling
// - OrElseIf: extend the chain with a new fallback branch
// - ThenReturn: switch to a value-returning Return[T, R] snapshot
//
// Misuse (nil callbacks, setting a slot twice, terminals without a
// predicate) is recorded at the offending call and surfaced as an error
// from every terminal operation; see errors.go for the taxonomy.
//
// A Conditional and its chain are single-shot and single-threaded: build
// the chain, trigger it once, discard it.
package cond
