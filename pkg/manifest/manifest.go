// Package manifest captures the outcome of a binding run: for each local
// module, the import statements a printer has to emit and the packages the
// module depends on.
package manifest

import (
	"sort"

	"github.com/stackb/symbind/pkg/binder"
)

// Manifest is the serializable import manifest of a run.
type Manifest struct {
	Modules []*Module `json:"modules,omitempty" msgpack:"modules,omitempty"`
	// Dependencies merges the dependencies of all modules.
	Dependencies map[string]string `json:"dependencies,omitempty" msgpack:"dependencies,omitempty"`
}

// Module lists the imports of one module.
type Module struct {
	Path         string            `json:"path" msgpack:"path"`
	Imports      []*Import         `json:"imports,omitempty" msgpack:"imports,omitempty"`
	Dependencies map[string]string `json:"dependencies,omitempty" msgpack:"dependencies,omitempty"`
}

// Import is one import statement.
type Import struct {
	Specifier string `json:"specifier" msgpack:"specifier"`
	// TypeOnly is set when every symbol of the statement is type-only.
	TypeOnly bool      `json:"typeOnly,omitempty" msgpack:"typeOnly,omitempty"`
	Symbols  []*Symbol `json:"symbols" msgpack:"symbols"`
}

// Symbol is one imported name.
type Symbol struct {
	Local    string `json:"local" msgpack:"local"`
	Foreign  string `json:"foreign" msgpack:"foreign"`
	TypeOnly bool   `json:"typeOnly,omitempty" msgpack:"typeOnly,omitempty"`
	Default  bool   `json:"default,omitempty" msgpack:"default,omitempty"`
}

// Build collects the import tables and dependencies of the given modules.
func Build(modules ...*binder.ModuleScope) *Manifest {
	m := &Manifest{}
	deps := make(map[string]string)
	for _, scope := range modules {
		mod := &Module{Path: scope.Specifier()}
		for _, group := range scope.ImportTable() {
			imp := &Import{Specifier: group.Specifier, TypeOnly: group.TypeOnly()}
			for _, e := range group.Entries {
				imp.Symbols = append(imp.Symbols, &Symbol{
					Local:    e.LocalName,
					Foreign:  e.ForeignName,
					TypeOnly: e.TypeOnly,
					Default:  e.Default,
				})
			}
			mod.Imports = append(mod.Imports, imp)
		}
		if d := scope.Dependencies(); len(d) > 0 {
			mod.Dependencies = d
			for name, version := range d {
				deps[name] = version
			}
		}
		m.Modules = append(m.Modules, mod)
	}
	if len(deps) > 0 {
		m.Dependencies = deps
	}
	return m
}

// DependencyNames returns the sorted names of the merged dependencies.
func (m *Manifest) DependencyNames() []string {
	names := make([]string, 0, len(m.Dependencies))
	for name := range m.Dependencies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Module returns the module with the given path.
func (m *Manifest) Module(path string) (*Module, bool) {
	for _, mod := range m.Modules {
		if mod.Path == path {
			return mod, true
		}
	}
	return nil, false
}
