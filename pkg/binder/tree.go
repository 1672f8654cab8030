package binder

import (
	"fmt"
	"io"
	"strings"
)

// WriteTree writes an indented listing of the scope, its symbols and their
// member scopes.  Package scopes list their modules.
func WriteTree(w io.Writer, scope *Scope) error {
	tw := &treeWriter{w: w}
	tw.scope(scope, 0)
	return tw.err
}

// FormatTree returns the WriteTree listing as a string.
func FormatTree(scope *Scope) string {
	var buf strings.Builder
	WriteTree(&buf, scope)
	return buf.String()
}

type treeWriter struct {
	w   io.Writer
	err error
}

func (tw *treeWriter) line(depth int, format string, args ...any) {
	if tw.err != nil {
		return
	}
	prefix := ""
	if depth > 0 {
		prefix = strings.Repeat("  ", depth-1) + "└ "
	}
	_, tw.err = fmt.Fprintf(tw.w, prefix+format+"\n", args...)
}

func (tw *treeWriter) scope(scope *Scope, depth int) {
	switch scope.Kind {
	case ScopePackage:
		pkg := scope.pkg
		tw.line(depth, "package %s@%s", pkg.Name, pkg.Version)
		for _, m := range pkg.Modules() {
			tw.scope(m.Scope, depth+1)
		}
		return
	case ScopeModule:
		tw.line(depth, "module %s", scope.module.Specifier())
	default:
		tw.line(depth, "%s %s", scope.Kind, scope.Name)
	}
	for _, sym := range scope.order {
		tw.symbol(sym, depth+1)
	}
}

func (tw *treeWriter) symbol(sym *Symbol, depth int) {
	var attrs []string
	if sym.Export {
		attrs = append(attrs, "export")
	}
	if sym.Default {
		attrs = append(attrs, "default")
	}
	attrs = append(attrs, sym.Flags.Strings()...)
	if len(attrs) > 0 {
		tw.line(depth, "%s [%s]", sym.Name, strings.Join(attrs, " "))
	} else {
		tw.line(depth, "%s", sym.Name)
	}
	if sym.StaticMemberScope != nil {
		tw.scope(sym.StaticMemberScope, depth+1)
	}
	if sym.InstanceMemberScope != nil {
		tw.scope(sym.InstanceMemberScope, depth+1)
	}
}
