package binder

import (
	"fmt"
)

// Symbol is a named entity bound to exactly one scope.  A symbol never moves
// between scopes; other modules reach it through import aliases.
type Symbol struct {
	// Name is the declared name.
	Name string
	// Scope is the owning scope.
	Scope *Scope
	// Refkey is the refkey the symbol was created with.  Other refkeys may be
	// bound to the same symbol.
	Refkey *Refkey
	// Export is true when the symbol is exported from its module.
	Export bool
	// Default is true for a default export.
	Default bool
	// Flags holds the capability flags.
	Flags SymbolFlags
	// StaticMemberScope holds members reachable directly off the symbol.
	StaticMemberScope *Scope
	// InstanceMemberScope holds members reachable through instances of the
	// symbol.
	InstanceMemberScope *Scope

	// members lazily creates the member symbols (see SymbolOptions.Members).
	members SymbolCreator
}

// Module returns the module the symbol is declared in, walking up through
// member scopes.  Returns nil for symbols outside any module.
func (s *Symbol) Module() *ModuleScope {
	for scope := s.Scope; scope != nil; scope = scope.Parent {
		if scope.module != nil {
			return scope.module
		}
	}
	return nil
}

// IsMember reports whether the symbol lives in a static or instance member
// scope.
func (s *Symbol) IsMember() bool {
	return s.Scope != nil && s.Scope.Owner != nil
}

// Owner returns the symbol whose member scope holds this symbol, or nil.
func (s *Symbol) Owner() *Symbol {
	if s.Scope == nil {
		return nil
	}
	return s.Scope.Owner
}

// String implements fmt.Stringer
func (s *Symbol) String() string {
	if s == nil {
		return "<nil>"
	}
	var where string
	if s.Scope != nil {
		where = s.Scope.Path()
	}
	return fmt.Sprintf("(%s<%v> %s)", s.Name, s.Flags, where)
}
