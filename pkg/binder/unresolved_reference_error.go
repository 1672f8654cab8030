package binder

import "fmt"

func NewUnresolvedReferenceError(key *Refkey) *UnresolvedReferenceError {
	return &UnresolvedReferenceError{Refkey: key}
}

// UnresolvedReferenceError is returned when a refkey has no symbol bound to
// it.
type UnresolvedReferenceError struct {
	// Refkey is the dangling reference.
	Refkey *Refkey
	// Err is the error returned by the refkey's creator, if any.
	Err error
}

func (e *UnresolvedReferenceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unresolved reference %v: %v", e.Refkey, e.Err)
	}
	return fmt.Sprintf("unresolved reference %v", e.Refkey)
}

func (e *UnresolvedReferenceError) Is(target error) bool {
	return target == ErrUnresolvedReference
}

func (e *UnresolvedReferenceError) Unwrap() error {
	return e.Err
}
