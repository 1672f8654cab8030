package pkgdesc

// PackageSpec is the content of a descriptor file: the package identity plus
// its export surface.
type PackageSpec struct {
	// Name is the package name, e.g. "@modelcontextprotocol/sdk".
	Name string `json:"name"`
	// Version is the version range written to dependency manifests.
	Version string `json:"version"`
	// Builtin packages are provided by the runtime (imported as "node:name").
	Builtin bool `json:"builtin,omitempty"`
	// Descriptor is the export surface.
	Descriptor Package `json:"descriptor"`
}

// Validate checks the spec identity and its descriptor.
func (s *PackageSpec) Validate() error {
	if s.Name == "" {
		return NewMalformedDescriptorError("", "package name is required")
	}
	if err := Validate(s.Descriptor); err != nil {
		if e, ok := err.(*MalformedDescriptorError); ok && e.Package == "" {
			e.Package = s.Name
		}
		return err
	}
	return nil
}
