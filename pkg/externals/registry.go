package externals

import (
	"fmt"
	"strings"

	"github.com/dghubble/trie"
)

// Registry indexes external packages by name and their modules by import
// specifier.
type Registry struct {
	packages map[string]*Package
	modules  *trie.PathTrie
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		packages: make(map[string]*Package),
		modules: trie.NewPathTrieWithConfig(&trie.PathTrieConfig{
			Segmenter: specifierSegmenter,
		}),
	}
}

// Add registers a package and every module it describes.
func (r *Registry) Add(pkg *Package) error {
	if _, ok := r.packages[pkg.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicatePackage, pkg.Name)
	}
	r.packages[pkg.Name] = pkg
	for _, m := range pkg.Modules() {
		r.modules.Put(m.Specifier(), m)
	}
	return nil
}

// Package returns the package with the given name.
func (r *Registry) Package(name string) (*Package, bool) {
	pkg, ok := r.packages[name]
	return pkg, ok
}

// Packages returns the registered packages sorted by name.
func (r *Registry) Packages() []*Package {
	pkgs := make([]*Package, 0, len(r.packages))
	for _, pkg := range r.packages {
		pkgs = append(pkgs, pkg)
	}
	return sortedPackages(pkgs)
}

// LookupModule returns the module with the given import specifier, e.g.
// "testLib/subpath" or "node:fs/promises".
func (r *Registry) LookupModule(specifier string) (*ModuleRefs, bool) {
	m, ok := r.modules.Get(specifier).(*ModuleRefs)
	return m, ok
}

// LookupPrefix returns the module with the longest specifier that is a path
// prefix of the given one.
func (r *Registry) LookupPrefix(specifier string) (*ModuleRefs, bool) {
	var last *ModuleRefs
	r.modules.WalkPath(specifier, func(key string, value interface{}) error {
		if m, ok := value.(*ModuleRefs); ok {
			last = m
		}
		return nil
	})
	return last, last != nil
}

// Resolve looks up a reference of the form "specifier#member.path", for
// example "testLib/subpath#nice" or "pkg/server#Server#connect".
func (r *Registry) Resolve(ref string) (*ExportRef, error) {
	specifier, memberPath, ok := strings.Cut(ref, "#")
	if !ok || memberPath == "" {
		return nil, fmt.Errorf("invalid reference %q: want specifier#member", ref)
	}
	m, ok := r.LookupModule(specifier)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModule, specifier)
	}
	return m.Lookup(memberPath)
}

// specifierSegmenter segments import specifiers by slash separators, such
// that "@scope/pkg/sub" yields "@scope", "/pkg", "/sub".
func specifierSegmenter(path string, start int) (segment string, next int) {
	if len(path) == 0 || start < 0 || start > len(path)-1 {
		return "", -1
	}
	end := strings.IndexRune(path[start+1:], '/')
	if end == -1 {
		return path[start:], -1
	}
	return path[start : start+end+1], start + end + 1
}
