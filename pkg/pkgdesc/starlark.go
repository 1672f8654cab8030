package pkgdesc

import (
	"bytes"
	"fmt"
	"io"

	"go.starlark.net/starlark"
)

// Reporter receives output of the starlark print builtin.
type Reporter func(format string, args ...interface{})

// ReadStarlark evaluates a starlark descriptor.  The file must call
// package() exactly once, e.g.:
//
//	package(
//	    name = "testLib",
//	    version = "^1.0.0",
//	    modules = {
//	        ".": module(default = "testLib", named = ["x", export("y", static = ["z"])]),
//	    },
//	)
func ReadStarlark(filename string, src io.Reader, reporter Reporter) (*PackageSpec, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	l := &starlarkLoader{}
	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			if reporter != nil {
				reporter("%s: %s", filename, msg)
			}
		},
	}
	predeclared := starlark.StringDict{
		"package": starlark.NewBuiltin("package", l.packageFn),
		"module":  starlark.NewBuiltin("module", moduleFn),
		"export":  starlark.NewBuiltin("export", exportFn),
	}
	if _, err := starlark.ExecFile(thread, filename, bytes.NewReader(data), predeclared); err != nil {
		if evalErr, ok := err.(*starlark.EvalError); ok {
			return nil, fmt.Errorf("%s: %s", filename, evalErr.Backtrace())
		}
		return nil, err
	}
	if l.spec == nil {
		return nil, fmt.Errorf("%s: package() was not called", filename)
	}
	return l.spec, nil
}

type starlarkLoader struct {
	spec *PackageSpec
}

func (l *starlarkLoader) packageFn(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if l.spec != nil {
		return nil, fmt.Errorf("%s: called more than once", b.Name())
	}
	var name, version string
	var builtin bool
	var modules *starlark.Dict
	if err := starlark.UnpackArgs(b.Name(), args, kwargs,
		"name", &name,
		"version?", &version,
		"builtin?", &builtin,
		"modules?", &modules,
	); err != nil {
		return nil, err
	}

	spec := &PackageSpec{Name: name, Version: version, Builtin: builtin, Descriptor: make(Package)}
	if modules != nil {
		for _, item := range modules.Items() {
			path, ok := starlark.AsString(item[0])
			if !ok {
				return nil, fmt.Errorf("%s: modules key must be a string, got %s", b.Name(), item[0].Type())
			}
			mod, ok := item[1].(*moduleValue)
			if !ok {
				return nil, fmt.Errorf("%s: modules[%q] must be a module(), got %s", b.Name(), path, item[1].Type())
			}
			spec.Descriptor[path] = mod.module
		}
	}
	l.spec = spec
	return starlark.None, nil
}

func moduleFn(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var def string
	var named starlark.Iterable
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "default?", &def, "named?", &named); err != nil {
		return nil, err
	}
	exports, err := unpackExports(b.Name()+": named", named)
	if err != nil {
		return nil, err
	}
	return &moduleValue{module: &Module{Default: def, Named: exports}}, nil
}

func exportFn(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	var static, instance starlark.Iterable
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "name", &name, "static?", &static, "instance?", &instance); err != nil {
		return nil, err
	}
	staticMembers, err := unpackExports(b.Name()+": static", static)
	if err != nil {
		return nil, err
	}
	instanceMembers, err := unpackExports(b.Name()+": instance", instance)
	if err != nil {
		return nil, err
	}
	return &exportValue{export: &Export{Name: name, StaticMembers: staticMembers, InstanceMembers: instanceMembers}}, nil
}

// unpackExports accepts strings and export() values.
func unpackExports(what string, list starlark.Iterable) ([]*Export, error) {
	if list == nil {
		return nil, nil
	}
	var exports []*Export
	iter := list.Iterate()
	defer iter.Done()
	var v starlark.Value
	for iter.Next(&v) {
		switch t := v.(type) {
		case starlark.String:
			exports = append(exports, Name(string(t)))
		case *exportValue:
			exports = append(exports, t.export)
		default:
			return nil, fmt.Errorf("%s: want string or export(), got %s", what, v.Type())
		}
	}
	return exports, nil
}

type moduleValue struct {
	module *Module
}

func (v *moduleValue) String() string        { return fmt.Sprintf("module(default = %q)", v.module.Default) }
func (v *moduleValue) Type() string          { return "module" }
func (v *moduleValue) Freeze()               {}
func (v *moduleValue) Truth() starlark.Bool  { return starlark.True }
func (v *moduleValue) Hash() (uint32, error) { return 0, fmt.Errorf("unhashable: module") }

type exportValue struct {
	export *Export
}

func (v *exportValue) String() string        { return fmt.Sprintf("export(%q)", v.export.Name) }
func (v *exportValue) Type() string          { return "export" }
func (v *exportValue) Freeze()               {}
func (v *exportValue) Truth() starlark.Bool  { return starlark.True }
func (v *exportValue) Hash() (uint32, error) { return 0, fmt.Errorf("unhashable: export") }
