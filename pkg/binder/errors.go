package binder

import "fmt"

var (
	// ErrUnresolvedReference is matched by *UnresolvedReferenceError.
	ErrUnresolvedReference = fmt.Errorf("unresolved reference")
	// ErrInvalidImportTarget is matched by *InvalidImportTargetError.
	ErrInvalidImportTarget = fmt.Errorf("invalid import target")
	// ErrRefkeyConflict is matched by *RefkeyConflictError.
	ErrRefkeyConflict = fmt.Errorf("refkey conflict")
	// ErrCyclicCreation is returned when a memoized creation re-enters
	// itself.
	ErrCyclicCreation = fmt.Errorf("cyclic symbol creation")
	// ErrMissingInstanceContainer is returned when an instance member scope is
	// requested for a symbol without FlagInstanceMemberContainer.
	ErrMissingInstanceContainer = fmt.Errorf("symbol is not an instance member container")
)
