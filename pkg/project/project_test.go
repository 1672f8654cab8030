package project

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bazelbuild/bazel-gazelle/testtools"
	"github.com/google/go-cmp/cmp"

	"github.com/stackb/symbind/pkg/binder"
	"github.com/stackb/symbind/pkg/config"
	"github.com/stackb/symbind/pkg/manifest"
	"github.com/stackb/symbind/pkg/testutil"
)

var descriptorFiles = []testtools.FileSpec{
	{
		Path: "descriptors/testlib.star",
		Content: `
package(
    name = "testLib",
    version = "^1.0.0",
    modules = {
        ".": module(default = "testLib", named = ["x", export("y", static = ["z"])]),
        "./subpath": module(named = ["nice"]),
    },
)
`,
	},
	{
		Path: "descriptors/node/fs.json",
		Content: `{
  "name": "fs",
  "builtin": true,
  "descriptor": {"./promises": {"named": ["readFile"]}}
}`,
	},
	{
		Path:    "descriptors/old/stale.json",
		Content: `{"name": "testLib", "descriptor": {}}`,
	},
}

func mustLoad(t *testing.T, toml string) *Project {
	t.Helper()
	files := append([]testtools.FileSpec{{Path: "symbind.toml", Content: toml}}, descriptorFiles...)
	_, filenames := testutil.MustPrepareTestFiles(t, files)
	cfg, err := config.Load(filenames[0])
	if err != nil {
		t.Fatal(err)
	}
	p, err := Load(context.Background(), cfg, WithLogger(testutil.NewTestLogger(t)), WithJobs(2))
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestRun(t *testing.T) {
	p := mustLoad(t, `
descriptors = ["descriptors/**/*.json"]
exclude = ["descriptors/old/**"]

[[package]]
descriptor = "descriptors/testlib.star"
version = "1.2.3"

[[module]]
path = "src/one.ts"

[[module.ref]]
ref = "testLib#y"

[[module.ref]]
ref = "testLib#y.z"

[[module.ref]]
ref = "node:fs/promises#readFile"
type_only = true

[[module]]
path = "src/two.ts"

[[module.ref]]
ref = "testLib/subpath#nice"
type_only = true

[[module.ref]]
ref = "testLib/subpath#nice"
`)

	var names []string
	for _, pkg := range p.Registry.Packages() {
		names = append(names, pkg.Name+"@"+pkg.Version)
	}
	if diff := cmp.Diff([]string{"fs@", "testLib@1.2.3"}, names); diff != "" {
		t.Errorf("packages (-want +got):\n%s", diff)
	}

	result, err := p.Run()
	if err != nil {
		t.Fatal(err)
	}
	want := &manifest.Manifest{
		Modules: []*manifest.Module{
			{
				Path: "src/one.ts",
				Imports: []*manifest.Import{
					{
						Specifier: "node:fs/promises",
						TypeOnly:  true,
						Symbols:   []*manifest.Symbol{{Local: "readFile", Foreign: "readFile", TypeOnly: true}},
					},
					{
						Specifier: "testLib",
						Symbols:   []*manifest.Symbol{{Local: "y", Foreign: "y"}},
					},
				},
				Dependencies: map[string]string{"testLib": "1.2.3"},
			},
			{
				Path: "src/two.ts",
				Imports: []*manifest.Import{
					{
						Specifier: "testLib/subpath",
						Symbols:   []*manifest.Symbol{{Local: "nice", Foreign: "nice"}},
					},
				},
				Dependencies: map[string]string{"testLib": "1.2.3"},
			},
		},
		Dependencies: map[string]string{"testLib": "1.2.3"},
	}
	if diff := cmp.Diff(want, result.Manifest); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestRunUnknownExport(t *testing.T) {
	p := mustLoad(t, `
[[package]]
descriptor = "descriptors/testlib.star"

[[module]]
path = "index.ts"

[[module.ref]]
ref = "testLib#nope"
`)
	_, err := p.Run()
	if err == nil || err.Error() != `index.ts: testLib: unknown export: "nope"` {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadDuplicatePackage(t *testing.T) {
	files := append([]testtools.FileSpec{{
		Path:    "symbind.toml",
		Content: `descriptors = ["descriptors/**/*.json", "descriptors/*.star"]`,
	}}, descriptorFiles...)
	_, filenames := testutil.MustPrepareTestFiles(t, files)
	cfg, err := config.Load(filenames[0])
	if err != nil {
		t.Fatal(err)
	}
	_, err = Load(context.Background(), cfg)
	if err == nil || !strings.Contains(err.Error(), "duplicate package: testLib") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadDescriptors(t *testing.T) {
	dir, filenames := testutil.MustPrepareTestFiles(t, descriptorFiles)

	got, err := LoadDescriptors(context.Background(), filenames, LoadOptions{Jobs: 1})
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, d := range got {
		names = append(names, d.Spec.Name)
		if len(d.Sha256) != 64 {
			t.Errorf("%s: bad digest %q", d.Filename, d.Sha256)
		}
	}
	if diff := cmp.Diff([]string{"testLib", "fs", "testLib"}, names); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	_, err = LoadDescriptors(context.Background(), []string{filepath.Join(dir, "missing.json")}, LoadOptions{})
	if err == nil || !strings.HasPrefix(err.Error(), "read ") {
		t.Errorf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = LoadDescriptors(ctx, filenames, LoadOptions{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

func TestMaterializeAll(t *testing.T) {
	p := mustLoad(t, `
[[package]]
descriptor = "descriptors/testlib.star"
`)
	b := binder.New()
	if err := p.MaterializeAll(b); err != nil {
		t.Fatal(err)
	}
	scope, ok := b.PackageScope("testLib")
	if !ok {
		t.Fatal("testLib not materialized")
	}
	if diff := cmp.Diff([]string{".", "./subpath"}, scope.ModulePaths()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
