package binder

import "fmt"

type memberRefkeyID struct {
	host   *Refkey
	member *Refkey
}

type instantiation struct {
	template *Symbol
	host     *Symbol
}

// MemberRefkey returns the refkey naming "member, reached through host".  The
// same pair always yields the same refkey.  Resolving it instantiates the
// owner of member into host (see InstantiateSymbolInto), so it resolves
// regardless of whether the instantiation was requested explicitly.
func (b *Binder) MemberRefkey(host, member *Refkey) *Refkey {
	id := memberRefkeyID{host: host, member: member}
	if key, ok := b.members[id]; ok {
		return key
	}
	key := NewDeferredRefkey(host.Label()+"#"+member.Label(), SymbolCreatorFunc(func(b *Binder) error {
		hostSym, err := b.Resolve(host)
		if err != nil {
			return err
		}
		memberSym, err := b.Resolve(member)
		if err != nil {
			return err
		}
		if memberSym.Scope == nil || memberSym.Scope.Kind != ScopeInstanceMemberContainer {
			return fmt.Errorf("%v is not an instance member", memberSym)
		}
		_, err = b.InstantiateSymbolInto(memberSym.Scope.Owner, hostSym)
		return err
	}))
	b.members[id] = key
	return key
}

// InstantiateSymbolInto projects the instance members of template onto host,
// such that each member M of template is also reachable as a member of host
// under MemberRefkey(host.Refkey, M.Refkey).  Nested instance members are
// projected recursively.  A template without instance members is a no-op.
// Repeated instantiation of the same pair is idempotent.
func (b *Binder) InstantiateSymbolInto(template, host *Symbol) (*Symbol, error) {
	if err := b.ExpandMembers(template); err != nil {
		return nil, err
	}
	if template.InstanceMemberScope == nil || template.InstanceMemberScope.Len() == 0 {
		return host, nil
	}

	host.Flags |= FlagInstanceMemberContainer | FlagMemberContainer
	scope, err := b.InstanceMemberScope(host)
	if err != nil {
		return nil, err
	}

	for _, member := range template.InstanceMemberScope.Symbols() {
		key := b.MemberRefkey(host.Refkey, member.Refkey)
		_, err := b.Memo(MemoKey{Node: instantiation{template: member, host: host}}, func() (*Symbol, error) {
			projected, err := b.CreateSymbol(SymbolOptions{
				Name:   member.Name,
				Scope:  scope,
				Refkey: key,
				Flags:  member.Flags,
			})
			if err != nil {
				return nil, err
			}
			if member.Flags.Has(FlagInstanceMemberContainer) {
				if _, err := b.InstantiateSymbolInto(member, projected); err != nil {
					return nil, err
				}
			}
			return projected, nil
		})
		if err != nil {
			return nil, err
		}
	}

	b.logger.Debug().
		Str("template", template.Name).
		Str("host", host.Name).
		Int("members", template.InstanceMemberScope.Len()).
		Msg("instantiated symbol")

	return host, nil
}
