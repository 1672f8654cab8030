package binder

// ImportOptions configures AddImport.
type ImportOptions struct {
	// TypeOnly marks a use in a type position only.
	TypeOnly bool
}

// ModuleScope holds the top-level declarations of one module, plus the
// bookkeeping of the symbols it imports from other modules.
type ModuleScope struct {
	*Scope

	// Package is the owning package scope, nil for locally authored modules.
	Package *PackageScope
	// Exported maps refkeys to the exported symbols of the module.
	Exported map[*Refkey]*Symbol
	// ImportedSymbols maps foreign symbols to their module-local alias.
	ImportedSymbols map[*Symbol]*Symbol
	// ImportedModules groups the aliases by source module.
	ImportedModules ImportRecords

	binder *Binder
}

func newModuleScope(b *Binder, pkg *PackageScope, path string) *ModuleScope {
	var parent *Scope
	if pkg != nil {
		parent = pkg.Scope
	}
	m := &ModuleScope{
		Scope:           newScope(ScopeModule, path, parent),
		Package:         pkg,
		Exported:        make(map[*Refkey]*Symbol),
		ImportedSymbols: make(map[*Symbol]*Symbol),
		ImportedModules: make(ImportRecords),
		binder:          b,
	}
	m.Scope.module = m
	return m
}

// Specifier returns the string other modules use to import this one.
func (m *ModuleScope) Specifier() string {
	if m.Package == nil {
		return m.Name
	}
	return m.Package.Specifier(m.Name)
}

// AddImport returns the module-local alias of target, which is declared in
// the source scope.  Repeated requests for the same target return the same
// alias.  A value use (TypeOnly unset) clears the type-only flag of an
// existing alias; the flag is never set again afterwards.
func (m *ModuleScope) AddImport(target *Symbol, source *Scope, opts ImportOptions) (*Symbol, error) {
	if existing, ok := m.ImportedSymbols[target]; ok {
		if !opts.TypeOnly && existing.Flags.Has(FlagTypeOnly) {
			existing.Flags &^= FlagTypeOnly
			m.binder.logger.Debug().
				Str("module", m.Name).
				Str("symbol", existing.Name).
				Msg("import used as value, clearing type-only")
		}
		return existing, nil
	}

	if source == nil || source.Kind != ScopeModule || source.module == nil {
		return nil, NewInvalidImportTargetError(target, source)
	}
	sourceModule := source.module

	if _, ok := m.ImportedModules[sourceModule]; !ok {
		m.ImportedModules[sourceModule] = nil
	}

	flags := FlagLocalImportAlias
	if opts.TypeOnly {
		flags |= FlagTypeOnly
	}
	local, err := m.binder.CreateSymbol(SymbolOptions{
		Name:   target.Name,
		Scope:  m.Scope,
		Refkey: NewRefkey(target.Name),
		Flags:  flags,
	})
	if err != nil {
		return nil, err
	}

	m.ImportedSymbols[target] = local
	m.ImportedModules[sourceModule] = append(m.ImportedModules[sourceModule], &ImportedSymbol{
		Local:  local,
		Target: target,
	})

	m.binder.logger.Debug().
		Str("module", m.Name).
		Str("from", sourceModule.Specifier()).
		Str("symbol", target.Name).
		Bool("type_only", opts.TypeOnly).
		Msg("added import")

	return local, nil
}

// ImportTable returns the import groups of the module sorted by specifier.
func (m *ModuleScope) ImportTable() []ImportGroup {
	return m.ImportedModules.Table()
}

// Dependencies returns the non-builtin packages imported by this module as a
// map of package name to version.
func (m *ModuleScope) Dependencies() map[string]string {
	deps := make(map[string]string)
	for source := range m.ImportedModules {
		pkg := source.Package
		if pkg == nil || pkg.Builtin {
			continue
		}
		deps[pkg.Name] = pkg.Version
	}
	return deps
}
