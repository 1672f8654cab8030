package binder

import "fmt"

func NewInvalidImportTargetError(target *Symbol, source *Scope) *InvalidImportTargetError {
	e := &InvalidImportTargetError{Symbol: target.Name}
	if source != nil {
		e.Kind = source.Kind
		e.ScopePath = source.Path()
	}
	return e
}

// InvalidImportTargetError is returned when a symbol that does not live
// directly in a module scope is imported.  Members must be reached through
// the module-level symbol that declares them.
type InvalidImportTargetError struct {
	// Symbol is the name of the symbol that was imported.
	Symbol string
	// Kind is the kind of the scope it was imported from.
	Kind ScopeKind
	// ScopePath locates the scope.
	ScopePath string
}

func (e *InvalidImportTargetError) Error() string {
	return fmt.Sprintf("cannot import %q from %s scope %q: symbol isn't in module scope", e.Symbol, e.Kind, e.ScopePath)
}

func (e *InvalidImportTargetError) Is(target error) bool {
	return target == ErrInvalidImportTarget
}
