package binder

import "strings"

// SymbolFlags is a set of capability flags on a symbol.  Flags are additive.
type SymbolFlags uint16

// FlagNone is the empty set.
const FlagNone SymbolFlags = 0

const (
	// FlagInstanceMember marks a symbol living in an instance member scope.
	FlagInstanceMember SymbolFlags = 1 << iota
	// FlagStaticMember marks a symbol living in a static member scope.
	FlagStaticMember
	// FlagInstanceMemberContainer marks a symbol that owns members reachable
	// through instances of it.
	FlagInstanceMemberContainer
	// FlagStaticMemberContainer marks a symbol that owns members reachable
	// directly off the symbol.
	FlagStaticMemberContainer
	// FlagMemberContainer is set whenever FlagInstanceMemberContainer is.
	FlagMemberContainer
	// FlagTypeOnly marks an import alias only ever used in type positions.
	FlagTypeOnly
	// FlagLocalImportAlias marks a module-local alias of a foreign symbol.
	FlagLocalImportAlias
)

var symbolFlagNames = []struct {
	flag SymbolFlags
	name string
}{
	{FlagInstanceMember, "instance-member"},
	{FlagStaticMember, "static-member"},
	{FlagInstanceMemberContainer, "instance-member-container"},
	{FlagStaticMemberContainer, "static-member-container"},
	{FlagMemberContainer, "member-container"},
	{FlagTypeOnly, "type-only"},
	{FlagLocalImportAlias, "local-import-alias"},
}

// Has reports whether all bits of want are set.
func (f SymbolFlags) Has(want SymbolFlags) bool {
	return f&want == want
}

// Strings returns a slice of textual flag labels.
func (f SymbolFlags) Strings() []string {
	if f == 0 {
		return nil
	}
	labels := make([]string, 0, 4)
	for _, entry := range symbolFlagNames {
		if f&entry.flag != 0 {
			labels = append(labels, entry.name)
		}
	}
	return labels
}

// String implements fmt.Stringer
func (f SymbolFlags) String() string {
	if f == 0 {
		return "none"
	}
	return strings.Join(f.Strings(), "|")
}

// ContainerFlags computes the container flags of a declaration from the
// number of static and instance members it declares.
func ContainerFlags(staticMembers, instanceMembers int) SymbolFlags {
	flags := FlagNone
	if staticMembers > 0 {
		flags |= FlagStaticMemberContainer
	}
	if instanceMembers > 0 {
		flags |= FlagInstanceMemberContainer
	}
	if flags&FlagInstanceMemberContainer != 0 {
		flags |= FlagMemberContainer
	}
	return flags
}
