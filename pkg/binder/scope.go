package binder

import (
	"strings"
)

// Scope is a lexical container of symbols.  Parent is a back-pointer used for
// lookup and diagnostics only; a parent does not enumerate its children
// through it.
type Scope struct {
	// Kind is the scope category.
	Kind ScopeKind
	// Name is the scope name (the package name, the module path, or the name
	// of the owning symbol for member scopes).
	Name string
	// Parent is the enclosing scope, or nil.
	Parent *Scope
	// Owner is the declaring symbol of a member scope, nil otherwise.
	Owner *Symbol

	symbols map[*Refkey]*Symbol
	order   []*Symbol

	// module and pkg point back to the extension that embeds this scope.
	module *ModuleScope
	pkg    *PackageScope
}

func newScope(kind ScopeKind, name string, parent *Scope) *Scope {
	return &Scope{
		Kind:    kind,
		Name:    name,
		Parent:  parent,
		symbols: make(map[*Refkey]*Symbol),
	}
}

// Lookup returns the symbol declared in this scope under the given refkey.
func (s *Scope) Lookup(key *Refkey) (*Symbol, bool) {
	sym, ok := s.symbols[key]
	return sym, ok
}

// Symbols returns the symbols of the scope in declaration order.
func (s *Scope) Symbols() []*Symbol {
	return append([]*Symbol(nil), s.order...)
}

// SymbolNames returns the names of the symbols in declaration order.
func (s *Scope) SymbolNames() []string {
	names := make([]string, len(s.order))
	for i, sym := range s.order {
		names[i] = sym.Name
	}
	return names
}

// Len returns the number of symbols in the scope.
func (s *Scope) Len() int {
	return len(s.order)
}

// AsModule returns the module scope when Kind is ScopeModule.
func (s *Scope) AsModule() (*ModuleScope, bool) {
	return s.module, s.module != nil
}

// Path returns a '/' separated path of scope names for diagnostics.  It is
// rooted at the import specifier of the enclosing module, e.g.
// "testLib/a/y" for the members of y in module "./a" of testLib.
func (s *Scope) Path() string {
	var parts []string
	for scope := s; scope != nil; scope = scope.Parent {
		if m, ok := scope.AsModule(); ok {
			parts = append(parts, m.Specifier())
			break
		}
		parts = append(parts, scope.Name)
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, "/")
}

// String implements fmt.Stringer
func (s *Scope) String() string {
	return s.Kind.String() + " " + s.Path()
}

func (s *Scope) add(sym *Symbol) {
	if _, ok := s.symbols[sym.Refkey]; ok {
		return
	}
	s.symbols[sym.Refkey] = sym
	s.order = append(s.order, sym)
}
