package pkgdesc

import "fmt"

// MaxDepth bounds the member nesting of a descriptor.
const MaxDepth = 64

// MemberPath joins a parent path and a member name: static members are
// separated by '.', instance members by '#'.
func MemberPath(parent, name string, instance bool) string {
	if parent == "" {
		return name
	}
	if instance {
		return parent + "#" + name
	}
	return parent + "." + name
}

// Validate checks that the descriptor can be materialized: names are
// non-empty and unique per list, and no export is its own ancestor.
func Validate(pkg Package) error {
	for _, path := range pkg.Paths() {
		mod := pkg[path]
		if mod == nil {
			continue
		}
		v := &validator{module: path, visiting: make(map[*Export]bool)}
		if err := v.list(mod.Named, "", false, 0); err != nil {
			return err
		}
	}
	return nil
}

type validator struct {
	module   string
	visiting map[*Export]bool
}

func (v *validator) fail(path, format string, args ...any) error {
	return NewMalformedDescriptorError(v.module+":"+path, fmt.Sprintf(format, args...))
}

func (v *validator) list(exports []*Export, parent string, instance bool, depth int) error {
	if depth > MaxDepth {
		return v.fail(parent, "members nested deeper than %d", MaxDepth)
	}
	seen := make(map[string]bool)
	for i, e := range exports {
		if e == nil {
			return v.fail(parent, "nil export at index %d", i)
		}
		if e.Name == "" {
			return v.fail(parent, "empty export name at index %d", i)
		}
		path := MemberPath(parent, e.Name, instance)
		if seen[e.Name] {
			return v.fail(path, "duplicate name %q", e.Name)
		}
		seen[e.Name] = true
		if err := v.export(e, path, depth); err != nil {
			return err
		}
	}
	return nil
}

func (v *validator) export(e *Export, path string, depth int) error {
	if v.visiting[e] {
		return v.fail(path, "cyclic descriptor: %q is its own ancestor", e.Name)
	}
	v.visiting[e] = true
	defer delete(v.visiting, e)

	if err := v.list(e.StaticMembers, path, false, depth+1); err != nil {
		return err
	}
	return v.list(e.InstanceMembers, path, true, depth+1)
}
