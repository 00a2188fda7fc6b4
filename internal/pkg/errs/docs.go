// Package errs provides the error types shared by the order pipeline.
//
// Each kind has a sentinel (ErrValueIsRequired, ErrValueIsInvalid,
// ErrValueIsOutOfRange, ErrObjectNotFound) and a struct carrying the details:
// the parameter name, the offending value and, optionally, a cause. Every
// struct unwraps to its sentinel and to its cause when one is set, so callers
// classify failures with errors.Is and read the details with errors.As.
package errs
