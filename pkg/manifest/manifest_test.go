package manifest

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/stackb/symbind/pkg/binder"
	"github.com/stackb/symbind/pkg/testutil"
)

func mustCreate(t *testing.T, b *binder.Binder, opts binder.SymbolOptions) *binder.Symbol {
	t.Helper()
	sym, err := b.CreateSymbol(opts)
	if err != nil {
		t.Fatal(err)
	}
	return sym
}

func mustImport(t *testing.T, m *binder.ModuleScope, target *binder.Symbol, typeOnly bool) {
	t.Helper()
	if _, err := m.AddImport(target, target.Scope, binder.ImportOptions{TypeOnly: typeOnly}); err != nil {
		t.Fatal(err)
	}
}

func testManifest() *Manifest {
	return &Manifest{
		Modules: []*Module{
			{
				Path: "src/index.ts",
				Imports: []*Import{
					{
						Specifier: "node:fs/promises",
						Symbols:   []*Symbol{{Local: "readFile", Foreign: "readFile"}},
					},
					{
						Specifier: "testLib",
						TypeOnly:  true,
						Symbols: []*Symbol{
							{Local: "foo", Foreign: "foo", TypeOnly: true},
							{Local: "testLib", Foreign: "testLib", TypeOnly: true, Default: true},
						},
					},
				},
				Dependencies: map[string]string{"testLib": "1.0.0"},
			},
			{
				Path: "src/empty.ts",
			},
		},
		Dependencies: map[string]string{"testLib": "1.0.0"},
	}
}

func TestBuild(t *testing.T) {
	b := binder.New()
	testLib := b.CreatePackageScope(binder.PackageScopeOptions{Name: "testLib", Version: "1.0.0"})
	root := b.CreateModuleScope(testLib, ".")
	fs := b.CreatePackageScope(binder.PackageScopeOptions{Name: "fs", Builtin: true})
	promises := b.CreateModuleScope(fs, "./promises")

	foo := mustCreate(t, b, binder.SymbolOptions{Name: "foo", Scope: root.Scope, Export: true})
	def := mustCreate(t, b, binder.SymbolOptions{Name: "testLib", Scope: root.Scope, Export: true, Default: true})
	readFile := mustCreate(t, b, binder.SymbolOptions{Name: "readFile", Scope: promises.Scope, Export: true})

	index := b.CreateModuleScope(nil, "src/index.ts")
	empty := b.CreateModuleScope(nil, "src/empty.ts")
	mustImport(t, index, def, true)
	mustImport(t, index, foo, true)
	mustImport(t, index, readFile, true)
	mustImport(t, index, readFile, false)

	got := Build(index, empty)
	if diff := cmp.Diff(testManifest(), got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"testLib"}, got.DependencyNames()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if _, ok := got.Module("src/empty.ts"); !ok {
		t.Error("Module(src/empty.ts): not found")
	}
}

func TestWriteReadFile(t *testing.T) {
	dir, _ := testutil.MustPrepareTestFiles(t, nil)

	for _, filename := range []string{
		"manifest.json",
		"manifest.pbtext",
		"manifest.pb",
		"manifest.msgpack",
	} {
		t.Run(filename, func(t *testing.T) {
			abs := filepath.Join(dir, "out", filename)
			if err := WriteFile(abs, testManifest()); err != nil {
				t.Fatal(err)
			}
			got, err := ReadFile(abs)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(testManifest(), got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestWriteToJSON(t *testing.T) {
	m := &Manifest{Modules: []*Module{{Path: "a.ts"}}}
	var buf bytes.Buffer
	if err := WriteTo("-.json", m, &buf); err != nil {
		t.Fatal(err)
	}
	got, err := Unmarshal("-.json", buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(m, got); diff != "" {
		t.Errorf("(-want +got):\n%s\n%s", diff, buf.String())
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("want error")
	}
}
