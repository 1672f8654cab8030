package externals

import (
	"fmt"
	"strings"

	"github.com/stackb/symbind/pkg/binder"
	"github.com/stackb/symbind/pkg/pkgdesc"
)

// ModuleRefs holds the refkeys of one module path of a package.
type ModuleRefs struct {
	pkg  *Package
	path string
	desc *pkgdesc.Module

	def   *ExportRef
	named map[string]*ExportRef
	order []*ExportRef
}

func newModuleRefs(pkg *Package, path string, desc *pkgdesc.Module) *ModuleRefs {
	m := &ModuleRefs{
		pkg:   pkg,
		path:  path,
		desc:  desc,
		named: make(map[string]*ExportRef, len(desc.Named)),
	}
	if desc.Default != "" {
		m.def = newExportRef(m, nil, kindDefault, desc.Default, nil)
	}
	for _, e := range desc.Named {
		ref := newExportRef(m, nil, kindNamed, e.Name, e)
		m.named[e.Name] = ref
		m.order = append(m.order, ref)
	}
	return m
}

// Package returns the owning package.
func (m *ModuleRefs) Package() *Package {
	return m.pkg
}

// Path returns the module path, e.g. "./server/index.js".
func (m *ModuleRefs) Path() string {
	return m.path
}

// Specifier returns the import specifier of the module.
func (m *ModuleRefs) Specifier() string {
	return m.pkg.Specifier(m.path)
}

// Default returns the default export.
func (m *ModuleRefs) Default() (*ExportRef, bool) {
	return m.def, m.def != nil
}

// Named returns the named export with the given name.
func (m *ModuleRefs) Named(name string) (*ExportRef, bool) {
	ref, ok := m.named[name]
	return ref, ok
}

// NamedExports returns the named exports in declaration order.
func (m *ModuleRefs) NamedExports() []*ExportRef {
	return append([]*ExportRef(nil), m.order...)
}

// Lookup walks a member path: the first segment names a named export, each
// following segment a static member ('.') or an instance member ('#').
func (m *ModuleRefs) Lookup(memberPath string) (*ExportRef, error) {
	if memberPath == "" {
		return nil, fmt.Errorf("%s: %w: empty path", m.Specifier(), ErrUnknownExport)
	}
	i := strings.IndexAny(memberPath, ".#")
	if i == -1 {
		i = len(memberPath)
	}
	ref, ok := m.Named(memberPath[:i])
	if !ok {
		return nil, fmt.Errorf("%s: %w: %q", m.Specifier(), ErrUnknownExport, memberPath[:i])
	}
	rest := memberPath[i:]
	for rest != "" {
		instance := rest[0] == '#'
		rest = rest[1:]
		j := strings.IndexAny(rest, ".#")
		if j == -1 {
			j = len(rest)
		}
		name := rest[:j]
		rest = rest[j:]
		var next *ExportRef
		if instance {
			next, ok = ref.Instance(name)
		} else {
			next, ok = ref.Static(name)
		}
		if !ok {
			return nil, fmt.Errorf("%s: %w: %q", m.Specifier(), ErrUnknownExport, pkgdesc.MemberPath(ref.path, name, instance))
		}
		ref = next
	}
	return ref, nil
}

// Scope returns the module scope in b, creating it on first use.
func (m *ModuleRefs) Scope(b *binder.Binder) *binder.ModuleScope {
	return b.CreateModuleScope(m.pkg.Scope(b), m.path)
}
