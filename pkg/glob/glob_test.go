package glob

import (
	"os"
	"testing"

	"github.com/bazelbuild/bazel-gazelle/testtools"
	"github.com/google/go-cmp/cmp"

	"github.com/stackb/symbind/pkg/testutil"
)

// TestApply tests the application of a glob over a filesystem.
func TestApply(t *testing.T) {
	for name, tc := range map[string]struct {
		glob    Glob
		files   []testtools.FileSpec
		want    []string
		wantErr string
	}{
		"empty glob": {
			glob: Glob{},
			files: []testtools.FileSpec{
				{Path: "descriptors/a.json"},
			},
			want: nil,
		},
		"single explicit match": {
			glob: Glob{Patterns: []string{"descriptors/a.json"}},
			files: []testtools.FileSpec{
				{Path: "descriptors/a.json"},
			},
			want: []string{"descriptors/a.json"},
		},
		"doublestar match": {
			glob: Glob{Patterns: []string{"**/*.star"}},
			files: []testtools.FileSpec{
				{Path: "descriptors/node/fs.star"},
				{Path: "descriptors/testlib.star"},
				{Path: "descriptors/mcp.json"},
			},
			want: []string{"descriptors/node/fs.star", "descriptors/testlib.star"},
		},
		"doublestar match + exclude": {
			glob: Glob{Patterns: []string{"descriptors/**/*.json"}, Excludes: []string{"descriptors/old/**"}},
			files: []testtools.FileSpec{
				{Path: "descriptors/a.json"},
				{Path: "descriptors/b.json"},
				{Path: "descriptors/old/c.json"},
			},
			want: []string{"descriptors/a.json", "descriptors/b.json"},
		},
		"overlapping patterns": {
			glob: Glob{Patterns: []string{"*.json", "a.*"}},
			files: []testtools.FileSpec{
				{Path: "b.json"},
				{Path: "a.json"},
			},
			want: []string{"a.json", "b.json"},
		},
		"invalid pattern": {
			glob:    Glob{Patterns: []string{"[a"}},
			wantErr: `invalid glob pattern: "[a"`,
		},
	} {
		t.Run(name, func(t *testing.T) {
			dir, _ := testutil.MustPrepareTestFiles(t, tc.files)
			got, err := Apply(tc.glob, os.DirFS(dir))
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
				t.Errorf("Apply (-want +got):\n%s", diff)
			}
		})
	}
}
