package binder

// Reference is a resolved use of a symbol from within a module.  A member is
// never imported directly: the reference goes through the module-level symbol
// that declares it, followed by a member path.
type Reference struct {
	// Symbol is the referenced symbol.
	Symbol *Symbol
	// Root is the module-level symbol the reference starts from: the symbol
	// itself when declared in the referencing module, otherwise the local
	// import alias.
	Root *Symbol
	// Path is the chain of members from Root down to Symbol (empty when
	// Symbol is a module-level symbol).
	Path []*Symbol
	// Import is the local alias created or reused for the reference, nil for
	// module-local references.
	Import *Symbol
}

// Names returns the name chain of the reference, e.g. ["server", "nested",
// "nestedHandler"].
func (r *Reference) Names() []string {
	names := make([]string, 0, len(r.Path)+1)
	names = append(names, r.Root.Name)
	for _, member := range r.Path {
		names = append(names, member.Name)
	}
	return names
}

// ResolveReference resolves key as referenced from the given module,
// importing the declaring module-level symbol when it lives in another
// module.  The refkey is recorded as required (see Finish).
func (b *Binder) ResolveReference(from *ModuleScope, key *Refkey, opts ImportOptions) (*Reference, error) {
	b.Require(key)
	sym, err := b.Resolve(key)
	if err != nil {
		return nil, err
	}

	var path []*Symbol
	root := sym
	for root.IsMember() {
		path = append([]*Symbol{root}, path...)
		root = root.Owner()
	}

	ref := &Reference{Symbol: sym, Root: root, Path: path}
	if root.Scope == from.Scope {
		return ref, nil
	}

	local, err := from.AddImport(root, root.Scope, opts)
	if err != nil {
		return nil, err
	}
	ref.Root = local
	ref.Import = local
	return ref, nil
}
