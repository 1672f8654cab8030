package externals

import (
	"errors"

	"github.com/stackb/symbind/pkg/binder"
	"github.com/stackb/symbind/pkg/pkgdesc"
)

type exportKind int

const (
	kindDefault exportKind = iota
	kindNamed
	kindStatic
	kindInstance
)

type memberID struct {
	instance bool
	name     string
}

// ExportRef is the refkey of one described export or member, together with
// the descriptor node it materializes from.  Its refkey is deferred: resolving
// it in a binder creates the symbol, and the symbols of its ancestors.
type ExportRef struct {
	module *ModuleRefs
	parent *ExportRef
	kind   exportKind
	name   string
	// path is the member path within the module ("y.z", "Server#connect").
	path string
	// node is nil for default exports.
	node   *pkgdesc.Export
	refkey *binder.Refkey

	members map[memberID]*ExportRef
}

func newExportRef(m *ModuleRefs, parent *ExportRef, kind exportKind, name string, node *pkgdesc.Export) *ExportRef {
	r := &ExportRef{
		module: m,
		parent: parent,
		kind:   kind,
		name:   name,
		node:   node,
	}
	switch {
	case kind == kindDefault:
		r.path = "@default"
	case parent == nil:
		r.path = name
	default:
		r.path = pkgdesc.MemberPath(parent.path, name, kind == kindInstance)
	}
	r.refkey = binder.NewDeferredRefkey(m.Specifier()+":"+r.path, r)
	return r
}

// Refkey returns the refkey of the export.
func (r *ExportRef) Refkey() *binder.Refkey {
	return r.refkey
}

// Name returns the declared name.
func (r *ExportRef) Name() string {
	return r.name
}

// Path returns the member path within the module.
func (r *ExportRef) Path() string {
	return r.path
}

// Module returns the module refkeys this export belongs to.
func (r *ExportRef) Module() *ModuleRefs {
	return r.module
}

// Parent returns the export that declares this member, nil for default and
// named exports.
func (r *ExportRef) Parent() *ExportRef {
	return r.parent
}

// Static returns the static member with the given name, minting its refkey on
// first request.
func (r *ExportRef) Static(name string) (*ExportRef, bool) {
	return r.member(name, false)
}

// Instance returns the instance member with the given name, minting its
// refkey on first request.
func (r *ExportRef) Instance(name string) (*ExportRef, bool) {
	return r.member(name, true)
}

// Member returns the static member with the given name, or else the instance
// member.
func (r *ExportRef) Member(name string) (*ExportRef, bool) {
	if m, ok := r.Static(name); ok {
		return m, true
	}
	return r.Instance(name)
}

// Members returns all members, static members first, in declaration order.
func (r *ExportRef) Members() []*ExportRef {
	if r.node == nil {
		return nil
	}
	var members []*ExportRef
	for _, e := range r.node.StaticMembers {
		m, _ := r.Static(e.Name)
		members = append(members, m)
	}
	for _, e := range r.node.InstanceMembers {
		m, _ := r.Instance(e.Name)
		members = append(members, m)
	}
	return members
}

func (r *ExportRef) member(name string, instance bool) (*ExportRef, bool) {
	if r.node == nil {
		return nil, false
	}
	id := memberID{instance: instance, name: name}
	if m, ok := r.members[id]; ok {
		return m, true
	}
	var node *pkgdesc.Export
	var ok bool
	if instance {
		node, ok = r.node.FindInstance(name)
	} else {
		node, ok = r.node.FindStatic(name)
	}
	if !ok {
		return nil, false
	}
	kind := kindStatic
	if instance {
		kind = kindInstance
	}
	if r.members == nil {
		r.members = make(map[memberID]*ExportRef)
	}
	m := newExportRef(r.module, r, kind, name, node)
	r.members[id] = m
	return m, true
}

// CreateSymbols implements binder.SymbolCreator.
func (r *ExportRef) CreateSymbols(b *binder.Binder) error {
	_, err := r.materialize(b)
	return err
}

func (r *ExportRef) memoKey() binder.MemoKey {
	var node any = r.node
	if r.node == nil {
		node = r.module.desc
	}
	return binder.MemoKey{
		Node: node,
		Path: r.module.pkg.Name + ":" + r.module.path + ":" + r.path,
	}
}

// materialize creates the symbol of the export in b, and those of its
// ancestors, at most once per binder.
func (r *ExportRef) materialize(b *binder.Binder) (*binder.Symbol, error) {
	sym, err := b.Memo(r.memoKey(), func() (*binder.Symbol, error) {
		if sym, ok := b.Lookup(r.refkey); ok {
			return sym, nil
		}
		scope, err := r.scope(b)
		if err != nil {
			return nil, err
		}
		opts := binder.SymbolOptions{
			Name:    r.name,
			Scope:   scope,
			Refkey:  r.refkey,
			Export:  r.parent == nil,
			Default: r.kind == kindDefault,
		}
		switch r.kind {
		case kindStatic:
			opts.Flags |= binder.FlagStaticMember
		case kindInstance:
			opts.Flags |= binder.FlagInstanceMember
		}
		if r.node != nil {
			opts.Flags |= binder.ContainerFlags(len(r.node.StaticMembers), len(r.node.InstanceMembers))
			if r.node.HasMembers() {
				opts.Members = memberExpander{r}
			}
		}
		sym, err := b.CreateSymbol(opts)
		if err != nil {
			return nil, err
		}
		logger := b.Logger()
		logger.Debug().
			Str("package", r.module.pkg.Name).
			Str("module", r.module.path).
			Str("export", r.path).
			Msg("materialized external symbol")
		return sym, nil
	})
	if errors.Is(err, binder.ErrCyclicCreation) {
		return nil, &pkgdesc.MalformedDescriptorError{
			Package: r.module.pkg.Name,
			Path:    r.module.path + ":" + r.path,
			Reason:  err.Error(),
		}
	}
	return sym, err
}

// scope returns the scope the export lives in: the module scope for default
// and named exports, the static or instance member scope of the parent
// otherwise.
func (r *ExportRef) scope(b *binder.Binder) (*binder.Scope, error) {
	if r.parent == nil {
		return r.module.Scope(b).Scope, nil
	}
	owner, err := r.parent.materialize(b)
	if err != nil {
		return nil, err
	}
	if r.kind == kindInstance {
		return b.InstanceMemberScope(owner)
	}
	return b.StaticMemberScope(owner), nil
}

// memberExpander creates every direct member of an export.
type memberExpander struct {
	ref *ExportRef
}

func (e memberExpander) CreateSymbols(b *binder.Binder) error {
	for _, m := range e.ref.Members() {
		if _, err := m.materialize(b); err != nil {
			return err
		}
	}
	return nil
}

func (r *ExportRef) String() string {
	return r.refkey.String()
}
