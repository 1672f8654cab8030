// Package externals materializes the symbols of described third-party
// packages into a binder.  Refkeys for default and named exports exist as
// soon as the package is created; the scopes and symbols behind them are
// only built when a refkey is first resolved.
package externals

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/stackb/symbind/pkg/binder"
	"github.com/stackb/symbind/pkg/pkgdesc"
)

// Props describe an external package.
type Props struct {
	Name       string
	Version    string
	Builtin    bool
	Descriptor pkgdesc.Package
}

// PropsFromSpec converts a descriptor file spec.
func PropsFromSpec(spec *pkgdesc.PackageSpec) Props {
	return Props{
		Name:       spec.Name,
		Version:    spec.Version,
		Builtin:    spec.Builtin,
		Descriptor: spec.Descriptor,
	}
}

// Package holds the refkeys of an external package.  A Package may be used
// with any number of binders; each binder materializes its own symbols.
type Package struct {
	Name    string
	Version string
	Builtin bool

	logger     zerolog.Logger
	descriptor pkgdesc.Package
	modules    map[string]*ModuleRefs
}

// CreatePackage validates the descriptor and mints the refkeys of every
// default and named export.
func CreatePackage(props Props, options ...Option) (*Package, error) {
	if props.Name == "" {
		return nil, pkgdesc.NewMalformedDescriptorError("", "package name is required")
	}
	if err := pkgdesc.Validate(props.Descriptor); err != nil {
		if e, ok := err.(*pkgdesc.MalformedDescriptorError); ok {
			e.Package = props.Name
		}
		return nil, err
	}

	pkg := &Package{
		Name:       props.Name,
		Version:    props.Version,
		Builtin:    props.Builtin,
		logger:     zerolog.Nop(),
		descriptor: props.Descriptor,
		modules:    make(map[string]*ModuleRefs, len(props.Descriptor)),
	}
	for _, opt := range options {
		pkg = opt(pkg)
	}

	for _, path := range props.Descriptor.Paths() {
		desc := props.Descriptor[path]
		if desc == nil {
			desc = &pkgdesc.Module{}
		}
		pkg.modules[path] = newModuleRefs(pkg, path, desc)
	}

	pkg.logger.Debug().
		Str("package", pkg.Name).
		Int("modules", len(pkg.modules)).
		Msg("created external package")

	return pkg, nil
}

// Module returns the refkeys of the given module path.
func (p *Package) Module(path string) (*ModuleRefs, bool) {
	m, ok := p.modules[path]
	return m, ok
}

// Root returns the refkeys of the package root module ".".
func (p *Package) Root() (*ModuleRefs, bool) {
	return p.Module(".")
}

// Paths returns the described module paths, "." first.
func (p *Package) Paths() []string {
	return p.descriptor.Paths()
}

// Modules returns the module refkeys in path order.
func (p *Package) Modules() []*ModuleRefs {
	paths := p.Paths()
	modules := make([]*ModuleRefs, len(paths))
	for i, path := range paths {
		modules[i] = p.modules[path]
	}
	return modules
}

// Lookup returns the export at the given member path (e.g. "y.z" or
// "Server#connect") of a module.
func (p *Package) Lookup(modulePath, memberPath string) (*ExportRef, error) {
	m, ok := p.Module(modulePath)
	if !ok {
		return nil, fmt.Errorf("%s: %w: module %q", p.Name, ErrUnknownExport, modulePath)
	}
	return m.Lookup(memberPath)
}

// Specifier returns the import specifier of a module path.
func (p *Package) Specifier(modulePath string) string {
	return binder.ModuleSpecifier(p.Name, p.Builtin, modulePath)
}

// Scope returns the package scope in b, creating it on first use.
func (p *Package) Scope(b *binder.Binder) *binder.PackageScope {
	return b.CreatePackageScope(binder.PackageScopeOptions{
		Name:    p.Name,
		Version: p.Version,
		Builtin: p.Builtin,
	})
}

// MaterializeAll eagerly creates every scope and symbol of the package in b.
// It is idempotent and interoperates with lazy resolution.
func (p *Package) MaterializeAll(b *binder.Binder) error {
	for _, m := range p.Modules() {
		m.Scope(b)
		if ref, ok := m.Default(); ok {
			if err := materializeTree(b, ref); err != nil {
				return err
			}
		}
		for _, ref := range m.NamedExports() {
			if err := materializeTree(b, ref); err != nil {
				return err
			}
		}
	}
	return nil
}

func materializeTree(b *binder.Binder, ref *ExportRef) error {
	sym, err := ref.materialize(b)
	if err != nil {
		return err
	}
	if err := b.ExpandMembers(sym); err != nil {
		return err
	}
	for _, member := range ref.Members() {
		if err := materializeTree(b, member); err != nil {
			return err
		}
	}
	return nil
}

// sortedPackages sorts packages by name.
func sortedPackages(pkgs []*Package) []*Package {
	sort.Slice(pkgs, func(i, j int) bool {
		return pkgs[i].Name < pkgs[j].Name
	})
	return pkgs
}
