package pkgdesc

import (
	"github.com/bazelbuild/buildtools/build"
)

// FormatStarlark renders the package spec as a starlark descriptor that
// ReadStarlark reads back.
func FormatStarlark(spec *PackageSpec) []byte {
	args := []build.Expr{
		kwarg("name", &build.StringExpr{Value: spec.Name}),
	}
	if spec.Version != "" {
		args = append(args, kwarg("version", &build.StringExpr{Value: spec.Version}))
	}
	if spec.Builtin {
		args = append(args, kwarg("builtin", &build.Ident{Name: "True"}))
	}
	if len(spec.Descriptor) > 0 {
		modules := &build.DictExpr{ForceMultiLine: true}
		for _, path := range spec.Descriptor.Paths() {
			modules.List = append(modules.List, &build.KeyValueExpr{
				Key:   &build.StringExpr{Value: path},
				Value: moduleExpr(spec.Descriptor[path]),
			})
		}
		args = append(args, kwarg("modules", modules))
	}

	file := &build.File{
		Type: build.TypeDefault,
		Stmt: []build.Expr{
			&build.CallExpr{
				X:              &build.Ident{Name: "package"},
				List:           args,
				ForceMultiLine: true,
			},
		},
	}
	return build.Format(file)
}

func kwarg(name string, value build.Expr) build.Expr {
	return &build.AssignExpr{
		LHS: &build.Ident{Name: name},
		Op:  "=",
		RHS: value,
	}
}

func moduleExpr(mod *Module) build.Expr {
	call := &build.CallExpr{X: &build.Ident{Name: "module"}}
	if mod == nil {
		return call
	}
	if mod.Default != "" {
		call.List = append(call.List, kwarg("default", &build.StringExpr{Value: mod.Default}))
	}
	if len(mod.Named) > 0 {
		call.List = append(call.List, kwarg("named", exportsExpr(mod.Named)))
	}
	return call
}

func exportsExpr(exports []*Export) *build.ListExpr {
	list := &build.ListExpr{}
	for _, e := range exports {
		list.List = append(list.List, exportExpr(e))
	}
	for _, e := range exports {
		if e.HasMembers() {
			list.ForceMultiLine = true
			break
		}
	}
	return list
}

func exportExpr(e *Export) build.Expr {
	if !e.HasMembers() {
		return &build.StringExpr{Value: e.Name}
	}
	call := &build.CallExpr{
		X:    &build.Ident{Name: "export"},
		List: []build.Expr{&build.StringExpr{Value: e.Name}},
	}
	if len(e.StaticMembers) > 0 {
		call.List = append(call.List, kwarg("static", exportsExpr(e.StaticMembers)))
	}
	if len(e.InstanceMembers) > 0 {
		call.List = append(call.List, kwarg("instance", exportsExpr(e.InstanceMembers)))
	}
	return call
}
