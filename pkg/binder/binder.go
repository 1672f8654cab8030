package binder

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Binder is the registry of one generation run.  It owns the refkey → symbol
// table, the package and module scopes, and the memoization tables that make
// symbol creation idempotent.  A Binder is not safe for concurrent use and is
// discarded when the run completes.
type Binder struct {
	logger zerolog.Logger

	// symbols is the authoritative refkey → symbol table.
	symbols map[*Refkey]*Symbol
	// creators records the outcome of the creator attached to a refkey.
	creators map[*Refkey]error
	// expanded records the outcome of member creators.
	expanded map[*Symbol]error
	// memo holds the result of memoized creations, creating the ones in
	// progress.
	memo     map[MemoKey]*Symbol
	creating map[MemoKey]bool
	// members holds the composite refkeys built by MemberRefkey.
	members map[memberRefkeyID]*Refkey

	packages    map[string]*PackageScope
	packageList []*PackageScope
	modules     []*ModuleScope

	required    map[*Refkey]bool
	requireList []*Refkey
}

// New constructs a Binder for one generation run.
func New(options ...Option) *Binder {
	b := &Binder{
		logger:   zerolog.Nop(),
		symbols:  make(map[*Refkey]*Symbol),
		creators: make(map[*Refkey]error),
		expanded: make(map[*Symbol]error),
		memo:     make(map[MemoKey]*Symbol),
		creating: make(map[MemoKey]bool),
		members:  make(map[memberRefkeyID]*Refkey),
		packages: make(map[string]*PackageScope),
		required: make(map[*Refkey]bool),
	}
	for _, opt := range options {
		b = opt(b)
	}
	return b
}

// Logger returns the binder logger.
func (b *Binder) Logger() zerolog.Logger {
	return b.logger
}

// CreatePackageScope creates the package scope for the given package name,
// or returns the existing one.
func (b *Binder) CreatePackageScope(opts PackageScopeOptions) *PackageScope {
	if pkg, ok := b.packages[opts.Name]; ok {
		return pkg
	}
	pkg := newPackageScope(opts)
	b.packages[opts.Name] = pkg
	b.packageList = append(b.packageList, pkg)
	b.logger.Debug().Str("package", opts.Name).Str("version", opts.Version).Msg("created package scope")
	return pkg
}

// PackageScope returns the package scope with the given name.
func (b *Binder) PackageScope(name string) (*PackageScope, bool) {
	pkg, ok := b.packages[name]
	return pkg, ok
}

// PackageScopes returns the package scopes in creation order.
func (b *Binder) PackageScopes() []*PackageScope {
	return append([]*PackageScope(nil), b.packageList...)
}

// CreateModuleScope creates a module scope.  When pkg is non-nil the module
// belongs to that package and asking twice for the same path returns the same
// scope; pkg is nil for locally authored modules.
func (b *Binder) CreateModuleScope(pkg *PackageScope, path string) *ModuleScope {
	if pkg != nil {
		if m, ok := pkg.modules[path]; ok {
			return m
		}
	}
	m := newModuleScope(b, pkg, path)
	if pkg != nil {
		pkg.modules[path] = m
	} else {
		b.modules = append(b.modules, m)
	}
	b.logger.Debug().Str("module", m.Specifier()).Msg("created module scope")
	return m
}

// ModuleScopes returns the locally authored module scopes in creation order.
func (b *Binder) ModuleScopes() []*ModuleScope {
	return append([]*ModuleScope(nil), b.modules...)
}

// SymbolOptions describes a symbol to create.
type SymbolOptions struct {
	// Name is the declared name.
	Name string
	// Scope is the owning scope (required).
	Scope *Scope
	// Refkey is bound to the new symbol.  A fresh one is minted when nil.
	Refkey *Refkey
	// Export marks the symbol exported from its module.
	Export bool
	// Default marks a default export.
	Default bool
	// Flags are the initial flags.
	Flags SymbolFlags
	// Members optionally creates the member symbols of the new symbol on
	// demand (see ExpandMembers).
	Members SymbolCreator
}

// CreateSymbol creates a symbol in the given scope and binds its refkey.  This
// is the primitive used both for locally authored declarations and for
// materialized package exports.
func (b *Binder) CreateSymbol(opts SymbolOptions) (*Symbol, error) {
	if opts.Scope == nil {
		return nil, fmt.Errorf("symbol %q: scope is required", opts.Name)
	}
	key := opts.Refkey
	if key == nil {
		key = NewRefkey(opts.Name)
	}
	if existing, ok := b.symbols[key]; ok {
		return nil, NewRefkeyConflictError(key, existing, &Symbol{Name: opts.Name, Scope: opts.Scope})
	}

	sym := &Symbol{
		Name:    opts.Name,
		Scope:   opts.Scope,
		Refkey:  key,
		Export:  opts.Export,
		Default: opts.Default,
		Flags:   opts.Flags,
		members: opts.Members,
	}
	b.symbols[key] = sym
	opts.Scope.add(sym)
	if opts.Export && opts.Scope.module != nil {
		opts.Scope.module.Exported[key] = sym
	}

	b.logger.Debug().
		Str("symbol", sym.Name).
		Str("scope", opts.Scope.Path()).
		Stringer("flags", sym.Flags).
		Msg("created symbol")

	return sym, nil
}

// Bind binds a refkey to a symbol.  Binding the same pair twice is a no-op;
// binding a refkey already bound to another symbol fails.
func (b *Binder) Bind(key *Refkey, sym *Symbol) error {
	if key == nil || sym == nil {
		return fmt.Errorf("bind: refkey and symbol are required")
	}
	if existing, ok := b.symbols[key]; ok {
		if existing == sym {
			return nil
		}
		return NewRefkeyConflictError(key, existing, sym)
	}
	b.symbols[key] = sym
	b.logger.Debug().Stringer("refkey", key).Str("symbol", sym.Name).Msg("bound refkey")
	return nil
}

// Lookup returns the symbol bound to key without running any creator.
func (b *Binder) Lookup(key *Refkey) (*Symbol, bool) {
	sym, ok := b.symbols[key]
	return sym, ok
}

// Resolve returns the symbol bound to key.  If the refkey is not bound yet
// and carries a creator, the creator is run (once) first.  An unbound refkey
// yields an *UnresolvedReferenceError, never a placeholder.
func (b *Binder) Resolve(key *Refkey) (*Symbol, error) {
	if key == nil {
		return nil, fmt.Errorf("resolve: nil refkey")
	}
	if sym, ok := b.symbols[key]; ok {
		return sym, nil
	}
	if key.creator == nil {
		return nil, NewUnresolvedReferenceError(key)
	}
	if err := b.runCreator(key); err != nil {
		return nil, &UnresolvedReferenceError{Refkey: key, Err: err}
	}
	if sym, ok := b.symbols[key]; ok {
		return sym, nil
	}
	return nil, NewUnresolvedReferenceError(key)
}

func (b *Binder) runCreator(key *Refkey) error {
	if err, ran := b.creators[key]; ran {
		return err
	}
	// mark before running such that a creator resolving its own refkey
	// terminates.
	b.creators[key] = nil
	b.logger.Debug().Stringer("refkey", key).Msg("running deferred symbol creator")
	err := key.creator.CreateSymbols(b)
	b.creators[key] = err
	return err
}

// Require records that key must be resolvable by the end of the run (see
// Finish).
func (b *Binder) Require(key *Refkey) {
	if b.required[key] {
		return
	}
	b.required[key] = true
	b.requireList = append(b.requireList, key)
}

// Finish checks that every required refkey resolves.  It returns the joined
// *UnresolvedReferenceError of every dangling reference.
func (b *Binder) Finish() error {
	var errs []error
	for _, key := range b.requireList {
		if _, err := b.Resolve(key); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		b.logger.Error().Int("count", len(errs)).Msg("dangling references")
	}
	return errors.Join(errs...)
}

// StaticMemberScope returns the static member scope of owner, creating it on
// first use.
func (b *Binder) StaticMemberScope(owner *Symbol) *Scope {
	if owner.StaticMemberScope == nil {
		owner.StaticMemberScope = newScope(ScopeMemberContainer, owner.Name, owner.Scope)
		owner.StaticMemberScope.Owner = owner
	}
	return owner.StaticMemberScope
}

// InstanceMemberScope returns the instance member scope of owner, creating it
// on first use.  The owner must be flagged FlagInstanceMemberContainer.
func (b *Binder) InstanceMemberScope(owner *Symbol) (*Scope, error) {
	if owner.InstanceMemberScope != nil {
		return owner.InstanceMemberScope, nil
	}
	if !owner.Flags.Has(FlagInstanceMemberContainer) {
		return nil, fmt.Errorf("%v: %w", owner, ErrMissingInstanceContainer)
	}
	owner.InstanceMemberScope = newScope(ScopeInstanceMemberContainer, owner.Name, owner.Scope)
	owner.InstanceMemberScope.Owner = owner
	return owner.InstanceMemberScope, nil
}

// ExpandMembers runs the member creator of sym, if any, at most once.
func (b *Binder) ExpandMembers(sym *Symbol) error {
	if sym.members == nil {
		return nil
	}
	if err, done := b.expanded[sym]; done {
		return err
	}
	b.expanded[sym] = nil
	err := sym.members.CreateSymbols(b)
	b.expanded[sym] = err
	return err
}
