package binder

import "fmt"

func NewRefkeyConflictError(key *Refkey, existing, conflicting *Symbol) *RefkeyConflictError {
	return &RefkeyConflictError{
		Refkey:      key,
		Existing:    existing,
		Conflicting: conflicting,
	}
}

// RefkeyConflictError is returned when a refkey already bound to a symbol is
// bound to a different one.
type RefkeyConflictError struct {
	Refkey      *Refkey
	Existing    *Symbol
	Conflicting *Symbol
}

func (e *RefkeyConflictError) Error() string {
	return fmt.Sprintf("%v is already bound to %v (attempted rebind to %v)", e.Refkey, e.Existing, e.Conflicting)
}

func (e *RefkeyConflictError) Is(target error) bool {
	return target == ErrRefkeyConflict
}
