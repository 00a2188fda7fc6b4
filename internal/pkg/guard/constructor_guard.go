// Package guard lets value types detect whether they were built by their
// constructor or left as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes no error of its own.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded as a field in commands and domain values that must
// only be created through a New* function. Its zero value reports "not constructed".
//
// Example:
//
//	type FilterOrdersCommand struct {
//	    source string
//	    guard  guard.ConstructorGuard
//	}
//
//	func (c FilterOrdersCommand) Validate() error {
//	    return c.guard.Validate(ErrFilterOrdersCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the owning value as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard, otherwise validationError
// (or ErrDefaultConstructorGuard when validationError is nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
