// Package guard provides ConstructorGuard, a marker embedded in value objects,
// aggregates, commands and queries so that zero values can be told apart from
// instances built by their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guard is a zero
// value and the caller did not supply a more specific error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing struct was created by its
// constructor.
//
// Example:
//
//	var ErrShelfNotConstructed = errors.New("Shelf must be created via NewShelf")
//
//	type Shelf struct {
//	    code  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewShelf(code string) (Shelf, error) {
//	    if code == "" {
//	        return Shelf{}, errors.New("code is required")
//	    }
//	    return Shelf{code: code, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (s Shelf) Validate() error {
//	    return s.guard.Validate(ErrShelfNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is
// nil) if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
