package binder

import (
	"path"
	"sort"
)

// PackageScope is the root scope of an external dependency.  It owns one
// module scope per exposed path.
type PackageScope struct {
	*Scope

	// Version is the version range written to dependency manifests.
	Version string
	// Builtin packages are provided by the runtime and never appear in
	// dependency manifests.
	Builtin bool
	// InstallPath is where the package is expected on disk.
	InstallPath string

	modules map[string]*ModuleScope
}

// PackageScopeOptions configures CreatePackageScope.
type PackageScopeOptions struct {
	Name    string
	Version string
	Builtin bool
}

func newPackageScope(opts PackageScopeOptions) *PackageScope {
	p := &PackageScope{
		Scope:       newScope(ScopePackage, opts.Name, nil),
		Version:     opts.Version,
		Builtin:     opts.Builtin,
		InstallPath: path.Join("node_modules", opts.Name),
		modules:     make(map[string]*ModuleScope),
	}
	p.Scope.pkg = p
	return p
}

// Module returns the module scope for the given path.
func (p *PackageScope) Module(path string) (*ModuleScope, bool) {
	m, ok := p.modules[path]
	return m, ok
}

// ModulePaths returns the sorted list of materialized module paths.
func (p *PackageScope) ModulePaths() []string {
	paths := make([]string, 0, len(p.modules))
	for path := range p.modules {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Modules returns the materialized module scopes sorted by path.
func (p *PackageScope) Modules() []*ModuleScope {
	paths := p.ModulePaths()
	modules := make([]*ModuleScope, len(paths))
	for i, path := range paths {
		modules[i] = p.modules[path]
	}
	return modules
}

// Specifier returns the import specifier of a module path within this
// package.
func (p *PackageScope) Specifier(modulePath string) string {
	return ModuleSpecifier(p.Name, p.Builtin, modulePath)
}

// ModuleSpecifier computes an import specifier: "." is the package itself,
// "./sub" is "<name>/sub" and builtin packages are prefixed with "node:".
func ModuleSpecifier(pkgName string, builtin bool, modulePath string) string {
	spec := pkgName
	if modulePath != "" && modulePath != "." {
		spec = path.Join(pkgName, path.Clean(modulePath))
	}
	if builtin {
		return "node:" + spec
	}
	return spec
}
