// Package project runs symbind over a project file: it loads the package
// descriptors, resolves the references of each configured module and builds
// the import manifest.
package project

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pcj/mobyprogress"
	"github.com/rs/zerolog"

	"github.com/stackb/symbind/pkg/binder"
	"github.com/stackb/symbind/pkg/config"
	"github.com/stackb/symbind/pkg/externals"
	"github.com/stackb/symbind/pkg/glob"
	"github.com/stackb/symbind/pkg/manifest"
	"github.com/stackb/symbind/pkg/progress"
)

// Project is a loaded project file.
type Project struct {
	Config      *config.Config
	Descriptors []*Descriptor
	Registry    *externals.Registry

	logger   zerolog.Logger
	progress mobyprogress.Output
	jobs     int
}

// Option configures a Project.
type Option func(p *Project) *Project

// WithLogger sets the project logger, also handed to the binder.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Project) *Project {
		p.logger = logger
		return p
	}
}

// WithProgress reports progress to out.
func WithProgress(out mobyprogress.Output) Option {
	return func(p *Project) *Project {
		p.progress = out
		return p
	}
}

// WithJobs bounds the number of descriptor files read concurrently.
func WithJobs(jobs int) Option {
	return func(p *Project) *Project {
		p.jobs = jobs
		return p
	}
}

// Load reads the descriptors named by cfg and registers their packages.
func Load(ctx context.Context, cfg *config.Config, options ...Option) (*Project, error) {
	p := &Project{
		Config:   cfg,
		Registry: externals.NewRegistry(),
		logger:   zerolog.Nop(),
		progress: progress.Discard,
	}
	for _, opt := range options {
		p = opt(p)
	}

	filenames, overrides, err := p.descriptorFiles()
	if err != nil {
		return nil, err
	}
	p.Descriptors, err = LoadDescriptors(ctx, filenames, LoadOptions{
		Jobs:     p.jobs,
		Logger:   p.logger,
		Progress: p.progress,
	})
	if err != nil {
		return nil, err
	}

	for _, d := range p.Descriptors {
		if o, ok := overrides[d.Filename]; ok {
			if o.Name != "" {
				d.Spec.Name = o.Name
			}
			if o.Version != "" {
				d.Spec.Version = o.Version
			}
			if o.Builtin {
				d.Spec.Builtin = true
			}
		}
		pkg, err := externals.CreatePackage(externals.PropsFromSpec(d.Spec), externals.WithLogger(p.logger))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", d.Filename, err)
		}
		if err := p.Registry.Add(pkg); err != nil {
			return nil, fmt.Errorf("%s: %w", d.Filename, err)
		}
		p.logger.Debug().Str("package", pkg.Name).Str("version", pkg.Version).Msg("registered package")
	}
	return p, nil
}

// descriptorFiles returns the descriptor filenames: the glob matches followed
// by the files of [[package]] entries not matched already.
func (p *Project) descriptorFiles() ([]string, map[string]*config.Package, error) {
	cfg := p.Config
	var filenames []string
	seen := make(map[string]bool)
	add := func(filename string) {
		if !seen[filename] {
			seen[filename] = true
			filenames = append(filenames, filename)
		}
	}

	if len(cfg.Descriptors) > 0 {
		dir := cfg.Dir
		if dir == "" {
			dir = "."
		}
		matches, err := glob.Apply(glob.Glob{Patterns: cfg.Descriptors, Excludes: cfg.Exclude}, os.DirFS(dir))
		if err != nil {
			return nil, nil, err
		}
		for _, match := range matches {
			add(cfg.Abs(filepath.FromSlash(match)))
		}
	}

	overrides := make(map[string]*config.Package)
	for _, pkg := range cfg.Packages {
		filename := cfg.Abs(pkg.Descriptor)
		overrides[filename] = pkg
		add(filename)
	}
	return filenames, overrides, nil
}

// Result is the outcome of Run.
type Result struct {
	Binder   *binder.Binder
	Modules  []*binder.ModuleScope
	Manifest *manifest.Manifest
}

// Run creates a binder, resolves the references of every configured module
// and builds the import manifest.  Dangling references fail the run.
func (p *Project) Run() (*Result, error) {
	b := binder.New(binder.WithLogger(p.logger))
	modules := make([]*binder.ModuleScope, 0, len(p.Config.Modules))

	for i, mod := range p.Config.Modules {
		scope := b.CreateModuleScope(nil, mod.Path)
		for _, ref := range mod.Refs {
			export, err := p.Registry.Resolve(ref.Ref)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", mod.Path, err)
			}
			r, err := b.ResolveReference(scope, export.Refkey(), binder.ImportOptions{TypeOnly: ref.TypeOnly})
			if err != nil {
				return nil, fmt.Errorf("%s: %w", mod.Path, err)
			}
			p.logger.Debug().
				Str("module", mod.Path).
				Str("ref", ref.Ref).
				Strs("names", r.Names()).
				Msg("resolved reference")
		}
		modules = append(modules, scope)
		progress.Step(p.progress, "resolve", "resolving modules", i+1, len(p.Config.Modules), "modules")
	}

	if err := b.Finish(); err != nil {
		return nil, err
	}

	return &Result{
		Binder:   b,
		Modules:  modules,
		Manifest: manifest.Build(modules...),
	}, nil
}

// MaterializeAll eagerly materializes every registered package into b.
func (p *Project) MaterializeAll(b *binder.Binder) error {
	for _, pkg := range p.Registry.Packages() {
		if err := pkg.MaterializeAll(b); err != nil {
			return err
		}
	}
	return nil
}
