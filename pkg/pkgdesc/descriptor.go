// Package pkgdesc describes the export surface of external packages: for each
// module path of a package, its default export and its named exports, each of
// which may declare static and instance members recursively.
package pkgdesc

import "sort"

// Package maps module paths ("." for the package root, "./sub" for subpath
// exports) to module descriptors.
type Package map[string]*Module

// Module describes the exports of one module path.
type Module struct {
	// Default is the name of the default export, if any.
	Default string `json:"default,omitempty"`
	// Named are the named exports.
	Named []*Export `json:"named,omitempty"`
}

// Export describes a named export or a member.  In JSON an export without
// members may be written as a plain string.
type Export struct {
	Name            string    `json:"name"`
	StaticMembers   []*Export `json:"staticMembers,omitempty"`
	InstanceMembers []*Export `json:"instanceMembers,omitempty"`
}

// Name returns an export without members.
func Name(name string) *Export {
	return &Export{Name: name}
}

// Static returns an export with the given static members.
func Static(name string, members ...*Export) *Export {
	return &Export{Name: name, StaticMembers: members}
}

// Class returns an export with the given static and instance members.
func Class(name string, staticMembers, instanceMembers []*Export) *Export {
	return &Export{Name: name, StaticMembers: staticMembers, InstanceMembers: instanceMembers}
}

// Names returns exports without members for each name.
func Names(names ...string) []*Export {
	exports := make([]*Export, len(names))
	for i, name := range names {
		exports[i] = Name(name)
	}
	return exports
}

// HasMembers reports whether the export declares any member.
func (e *Export) HasMembers() bool {
	return len(e.StaticMembers) > 0 || len(e.InstanceMembers) > 0
}

// FindStatic returns the static member with the given name.
func (e *Export) FindStatic(name string) (*Export, bool) {
	return find(e.StaticMembers, name)
}

// FindInstance returns the instance member with the given name.
func (e *Export) FindInstance(name string) (*Export, bool) {
	return find(e.InstanceMembers, name)
}

// Find returns the named export with the given name.
func (m *Module) Find(name string) (*Export, bool) {
	return find(m.Named, name)
}

// Paths returns the module paths sorted, with "." first.
func (p Package) Paths() []string {
	paths := make([]string, 0, len(p))
	for path := range p {
		paths = append(paths, path)
	}
	sort.Slice(paths, func(i, j int) bool {
		if paths[i] == "." || paths[j] == "." {
			return paths[i] == "."
		}
		return paths[i] < paths[j]
	})
	return paths
}

func find(exports []*Export, name string) (*Export, bool) {
	for _, e := range exports {
		if e != nil && e.Name == name {
			return e, true
		}
	}
	return nil, false
}
