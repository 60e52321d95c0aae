// Package guard provides a small defensive-programming helper that ensures
// value objects and commands are only created through their designated
// constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when
// a nil error is passed as the validation error, so validation always fails
// with a meaningful message for zero-value objects.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether a struct was built through its
// constructor or created as a zero value. Embedding the guard in a command
// or value object lets Validate reject objects that bypassed construction
// and therefore skipped their invariant checks.
//
// Example:
//
//	type ApproveOrderCommand struct {
//	    orderID int64
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewApproveOrderCommand(orderID int64) (ApproveOrderCommand, error) {
//	    if orderID <= 0 {
//	        return ApproveOrderCommand{}, errs.NewValueIsRequiredError("orderID")
//	    }
//	    return ApproveOrderCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c ApproveOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrApproveOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed. Call it in
// the constructor of every guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guarded object went through its
// constructor. Otherwise it returns validationError, falling back to
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
