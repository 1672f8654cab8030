package binder

// ScopeKind enumerates supported scope categories.
type ScopeKind uint8

const (
	ScopeInvalid ScopeKind = iota
	// ScopePackage is the root of an external dependency.
	ScopePackage
	// ScopeModule holds the top-level declarations of one module.
	ScopeModule
	// ScopeMemberContainer holds the static members of a symbol.
	ScopeMemberContainer
	// ScopeInstanceMemberContainer holds the instance members of a symbol.
	ScopeInstanceMemberContainer
)

func (k ScopeKind) String() string {
	switch k {
	case ScopePackage:
		return "package"
	case ScopeModule:
		return "module"
	case ScopeMemberContainer:
		return "member"
	case ScopeInstanceMemberContainer:
		return "instance-member"
	default:
		return "invalid"
	}
}
