// Package config reads the symbind.toml project file.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultFilename is the project file looked up when none is given.
const DefaultFilename = "symbind.toml"

// Config is a project file.
type Config struct {
	// Filename is the file the config was read from.
	Filename string `toml:"-"`
	// Dir is the directory relative paths are resolved against.
	Dir string `toml:"-"`

	LogLevel string `toml:"log_level"`
	// Descriptors are doublestar globs of descriptor files.
	Descriptors []string `toml:"descriptors"`
	// Exclude are doublestar globs removed from the Descriptors matches.
	Exclude []string `toml:"exclude"`
	// Output is the manifest file written by the imports command.
	Output string `toml:"output"`

	Packages []*Package `toml:"package"`
	Modules  []*Module  `toml:"module"`
}

// Package names a descriptor file.  Name, Version and Builtin override the
// values read from the descriptor when set.
type Package struct {
	Name       string `toml:"name"`
	Version    string `toml:"version"`
	Builtin    bool   `toml:"builtin"`
	Descriptor string `toml:"descriptor"`
}

// Module is a local module and the external exports it references.
type Module struct {
	Path string `toml:"path"`
	Refs []*Ref `toml:"ref"`
}

// Ref is a reference to an external export, "specifier#member.path".
type Ref struct {
	Ref      string `toml:"ref"`
	TypeOnly bool   `toml:"type_only"`
}

// Load reads and validates a project file.
func Load(filename string) (*Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(filename, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", filename, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", filename, strings.Join(keys, ", "))
	}
	cfg.Filename = filename
	cfg.Dir = filepath.Dir(filename)

	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return &cfg, nil
}

// Parse decodes a project file held in memory.  Relative paths resolve
// against dir.
func Parse(data, dir string) (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	cfg.Dir = dir
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.LogLevel) == "" {
		cfg.LogLevel = "info"
	}
}

// Validate checks package names are unique, module paths are set and refs
// are well formed.
func (c *Config) Validate() error {
	names := make(map[string]bool)
	for i, pkg := range c.Packages {
		if strings.TrimSpace(pkg.Descriptor) == "" {
			return fmt.Errorf("package[%d]: missing descriptor", i)
		}
		if pkg.Name == "" {
			continue
		}
		if names[pkg.Name] {
			return fmt.Errorf("package[%d]: duplicate package %q", i, pkg.Name)
		}
		names[pkg.Name] = true
	}
	paths := make(map[string]bool)
	for i, mod := range c.Modules {
		if strings.TrimSpace(mod.Path) == "" {
			return fmt.Errorf("module[%d]: missing path", i)
		}
		if paths[mod.Path] {
			return fmt.Errorf("module[%d]: duplicate module %q", i, mod.Path)
		}
		paths[mod.Path] = true
		for j, ref := range mod.Refs {
			if _, _, err := ParseRef(ref.Ref); err != nil {
				return fmt.Errorf("module[%d].ref[%d]: %w", i, j, err)
			}
		}
	}
	return nil
}

// ParseRef splits "specifier#member.path" into its specifier and member path.
func ParseRef(ref string) (specifier, memberPath string, err error) {
	specifier, memberPath, ok := strings.Cut(ref, "#")
	if !ok || specifier == "" || memberPath == "" {
		return "", "", fmt.Errorf("invalid reference %q: want specifier#member", ref)
	}
	return specifier, memberPath, nil
}

// Abs resolves a path relative to the config directory.
func (c *Config) Abs(path string) string {
	if filepath.IsAbs(path) || c.Dir == "" {
		return path
	}
	return filepath.Join(c.Dir, path)
}
