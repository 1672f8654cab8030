package externals

import "fmt"

var (
	// ErrUnknownExport is returned when a lookup names an export the
	// descriptor does not declare.
	ErrUnknownExport = fmt.Errorf("unknown export")
	// ErrDuplicatePackage is returned when a registry already holds a package
	// of the same name.
	ErrDuplicatePackage = fmt.Errorf("duplicate package")
	// ErrUnknownModule is returned when no registered package provides an
	// import specifier.
	ErrUnknownModule = fmt.Errorf("unknown module")
)
