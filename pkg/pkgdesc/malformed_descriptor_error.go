package pkgdesc

import "fmt"

// ErrMalformedDescriptor is matched by *MalformedDescriptorError.
var ErrMalformedDescriptor = fmt.Errorf("malformed package descriptor")

func NewMalformedDescriptorError(path, reason string) *MalformedDescriptorError {
	return &MalformedDescriptorError{Path: path, Reason: reason}
}

// MalformedDescriptorError is returned for descriptors that cannot be
// materialized, such as cyclic ones.
type MalformedDescriptorError struct {
	// Package is the package name, when known.
	Package string
	// Path locates the offending node, e.g. "./server/index.js:server.nested".
	Path string
	// Reason describes the problem.
	Reason string
}

func (e *MalformedDescriptorError) Error() string {
	where := e.Path
	if e.Package != "" {
		where = e.Package + " " + where
	}
	return fmt.Sprintf("malformed package descriptor %s: %s", where, e.Reason)
}

func (e *MalformedDescriptorError) Is(target error) bool {
	return target == ErrMalformedDescriptor
}
