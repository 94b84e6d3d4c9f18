// Package assertion verifies that a block of code raises (or does not
// raise) an error, and exposes chainable expectations over the captured
// error's identity, message and cause.
//
// Usage in tests:
//
//	assertion.Thrown(t, func() error {
//		return svc.Delete(missingID)
//	}).ExpectIs(storage.ErrNotFound).
//		ExpectMessageContains(missingID)
//
// Thrown fails the test when the block completes without an error;
// NotThrown fails it when the block raises one. ResultOf adapts calls
// that also return a value. Checks are delegated to testify's assert
// package, so any assert.TestingT works as the reporting target.
package assertion
