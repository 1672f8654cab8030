package binder

// SymbolCreator produces symbols on demand.  Implementations must be
// idempotent for a given Binder: the Binder guarantees a creator attached to a
// refkey runs at most once, but the same creator may be shared by several
// refkeys.
type SymbolCreator interface {
	CreateSymbols(b *Binder) error
}

// SymbolCreatorFunc adapts a function to the SymbolCreator interface.
type SymbolCreatorFunc func(b *Binder) error

// CreateSymbols implements SymbolCreator.
func (f SymbolCreatorFunc) CreateSymbols(b *Binder) error {
	return f(b)
}
