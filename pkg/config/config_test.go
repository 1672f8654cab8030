package config

import (
	"path/filepath"
	"testing"

	"github.com/bazelbuild/bazel-gazelle/testtools"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/stackb/symbind/pkg/testutil"
)

func TestParse(t *testing.T) {
	for name, tc := range map[string]struct {
		in      string
		want    *Config
		wantErr string
	}{
		"empty": {
			want: &Config{LogLevel: "info"},
		},
		"full": {
			in: `
log_level = "debug"
descriptors = ["descriptors/**/*.json"]
exclude = ["descriptors/old/**"]
output = "imports.json"

[[package]]
name = "testLib"
version = "1.0.0"
descriptor = "descriptors/testlib.star"

[[module]]
path = "src/index.ts"

[[module.ref]]
ref = "testLib/subpath#nice"

[[module.ref]]
ref = "testLib#y.z"
type_only = true
`,
			want: &Config{
				LogLevel:    "debug",
				Descriptors: []string{"descriptors/**/*.json"},
				Exclude:     []string{"descriptors/old/**"},
				Output:      "imports.json",
				Packages: []*Package{
					{Name: "testLib", Version: "1.0.0", Descriptor: "descriptors/testlib.star"},
				},
				Modules: []*Module{
					{
						Path: "src/index.ts",
						Refs: []*Ref{
							{Ref: "testLib/subpath#nice"},
							{Ref: "testLib#y.z", TypeOnly: true},
						},
					},
				},
			},
		},
		"missing descriptor": {
			in:      "[[package]]\nname = \"a\"\n",
			wantErr: "package[0]: missing descriptor",
		},
		"duplicate package": {
			in:      "[[package]]\nname = \"a\"\ndescriptor = \"a.json\"\n[[package]]\nname = \"a\"\ndescriptor = \"b.json\"\n",
			wantErr: `package[1]: duplicate package "a"`,
		},
		"missing module path": {
			in:      "[[module]]\n",
			wantErr: "module[0]: missing path",
		},
		"duplicate module": {
			in:      "[[module]]\npath = \"a.ts\"\n[[module]]\npath = \"a.ts\"\n",
			wantErr: `module[1]: duplicate module "a.ts"`,
		},
		"bad ref": {
			in:      "[[module]]\npath = \"a.ts\"\n[[module.ref]]\nref = \"testLib\"\n",
			wantErr: `module[0].ref[0]: invalid reference "testLib": want specifier#member`,
		},
	} {
		t.Run(name, func(t *testing.T) {
			got, err := Parse(tc.in, "")
			if tc.wantErr != "" {
				if err == nil || err.Error() != tc.wantErr {
					t.Fatalf("error: want %q, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir, files := testutil.MustPrepareTestFiles(t, []testtools.FileSpec{
		{
			Path: "project/symbind.toml",
			Content: `
descriptors = ["descriptors/*.json"]

[[module]]
path = "index.ts"
`,
		},
		{
			Path:    "unknown/symbind.toml",
			Content: "colour = \"blue\"\n",
		},
	})

	cfg, err := Load(files[0])
	if err != nil {
		t.Fatal(err)
	}
	want := &Config{
		Filename:    files[0],
		Dir:         filepath.Join(dir, "project"),
		LogLevel:    "info",
		Descriptors: []string{"descriptors/*.json"},
		Modules:     []*Module{{Path: "index.ts"}},
	}
	if diff := cmp.Diff(want, cfg, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got := cfg.Abs("descriptors/a.json"); got != filepath.Join(dir, "project", "descriptors", "a.json") {
		t.Errorf("Abs: got %s", got)
	}

	_, err = Load(files[1])
	if err == nil || err.Error() != files[1]+": unknown keys: colour" {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseRef(t *testing.T) {
	for name, tc := range map[string]struct {
		ref                   string
		wantSpecifier, wantMP string
		wantErr               bool
	}{
		"simple":       {ref: "testLib#x", wantSpecifier: "testLib", wantMP: "x"},
		"instance":     {ref: "pkg/server#Server#connect", wantSpecifier: "pkg/server", wantMP: "Server#connect"},
		"no hash":      {ref: "testLib", wantErr: true},
		"no specifier": {ref: "#x", wantErr: true},
	} {
		t.Run(name, func(t *testing.T) {
			specifier, mp, err := ParseRef(tc.ref)
			if (err != nil) != tc.wantErr {
				t.Fatalf("err: %v", err)
			}
			if specifier != tc.wantSpecifier || mp != tc.wantMP {
				t.Errorf("want %q %q, got %q %q", tc.wantSpecifier, tc.wantMP, specifier, mp)
			}
		})
	}
}
