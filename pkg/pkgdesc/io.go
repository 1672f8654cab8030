package pkgdesc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ReadFile reads a descriptor file (see Parse).
func ReadFile(filename string, reporter Reporter) (*PackageSpec, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", filename, err)
	}
	return Parse(filename, data, reporter)
}

// Parse decodes descriptor file content.  Files ending in .star or .bzl are
// evaluated as starlark, everything else is parsed as JSON.  The result is
// validated.
func Parse(filename string, data []byte, reporter Reporter) (*PackageSpec, error) {
	var spec *PackageSpec
	var err error
	switch filepath.Ext(filename) {
	case ".star", ".bzl":
		spec, err = ReadStarlark(filename, bytes.NewReader(data), reporter)
	default:
		spec, err = ReadJSON(data)
		if err != nil {
			err = fmt.Errorf("%s: %w", filename, err)
		}
	}
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return spec, nil
}

// ReadJSON parses a JSON descriptor.
func ReadJSON(data []byte) (*PackageSpec, error) {
	var spec PackageSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, err
	}
	return &spec, nil
}

// WriteFile writes a descriptor file in the format implied by its extension.
func WriteFile(filename string, spec *PackageSpec) error {
	var data []byte
	switch filepath.Ext(filename) {
	case ".star", ".bzl":
		data = FormatStarlark(spec)
	default:
		var err error
		data, err = json.MarshalIndent(spec, "", "  ")
		if err != nil {
			return err
		}
		data = append(data, '\n')
	}
	if err := os.MkdirAll(filepath.Dir(filename), os.ModePerm); err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}
