package binder

import (
	"sort"
)

// ImportedSymbol pairs a module-local alias with the foreign symbol it stands
// for.
type ImportedSymbol struct {
	Local  *Symbol
	Target *Symbol
}

// ImportRecords groups import aliases by the module they come from, such that
// one import statement can be emitted per source module.
type ImportRecords map[*ModuleScope][]*ImportedSymbol

// ImportEntry is one imported name of an ImportGroup.
type ImportEntry struct {
	// LocalName is the name the symbol is known by in the importing module.
	LocalName string
	// ForeignName is the name exported by the source module.
	ForeignName string
	// TypeOnly is true if the alias was only ever used in type positions.
	TypeOnly bool
	// Default is true when the target is the default export.
	Default bool
}

// ImportGroup is the import table entry for one source module.
type ImportGroup struct {
	// Source is the module imported from.
	Source *ModuleScope
	// Specifier is the import specifier of the source module.
	Specifier string
	// Entries are the imported names, sorted by local name.
	Entries []ImportEntry
}

// TypeOnly reports whether every entry of the group is type-only.
func (g ImportGroup) TypeOnly() bool {
	for _, e := range g.Entries {
		if !e.TypeOnly {
			return false
		}
	}
	return len(g.Entries) > 0
}

// Table returns the import groups sorted by specifier.
func (r ImportRecords) Table() []ImportGroup {
	groups := make([]ImportGroup, 0, len(r))
	for source, imported := range r {
		group := ImportGroup{
			Source:    source,
			Specifier: source.Specifier(),
			Entries:   make([]ImportEntry, len(imported)),
		}
		for i, imp := range imported {
			group.Entries[i] = ImportEntry{
				LocalName:   imp.Local.Name,
				ForeignName: imp.Target.Name,
				TypeOnly:    imp.Local.Flags.Has(FlagTypeOnly),
				Default:     imp.Target.Default,
			}
		}
		sort.SliceStable(group.Entries, func(i, j int) bool {
			return group.Entries[i].LocalName < group.Entries[j].LocalName
		})
		groups = append(groups, group)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Specifier < groups[j].Specifier
	})
	return groups
}
