package pkgdesc

import (
	"errors"
	"testing"

	"github.com/stackb/symbind/pkg/testutil"
)

func TestValidate(t *testing.T) {
	cyclic := Name("server")
	cyclic.StaticMembers = []*Export{Static("nested", cyclic)}

	for name, tc := range map[string]struct {
		pkg  Package
		want error
	}{
		"empty": {
			pkg: Package{},
		},
		"nil module": {
			pkg: Package{".": nil},
		},
		"ok": {
			pkg: Package{
				".":   {Default: "testLib", Named: []*Export{Name("x"), Static("y", Name("z"))}},
				"./a": {Named: Names("x")},
			},
		},
		"same name static and instance": {
			pkg: Package{
				".": {Named: []*Export{Class("y", Names("z"), Names("z"))}},
			},
		},
		"shared subtree is not a cycle": {
			pkg: func() Package {
				shared := Static("shared", Name("leaf"))
				return Package{".": {Named: []*Export{Static("a", shared), Static("b", shared)}}}
			}(),
		},
		"cycle": {
			pkg:  Package{"./server/index.js": {Named: []*Export{cyclic}}},
			want: NewMalformedDescriptorError("./server/index.js:server.nested.server", `cyclic descriptor: "server" is its own ancestor`),
		},
		"empty name": {
			pkg:  Package{".": {Named: []*Export{Static("y", Name(""))}}},
			want: NewMalformedDescriptorError(".:y", "empty export name at index 0"),
		},
		"nil export": {
			pkg:  Package{".": {Named: []*Export{nil}}},
			want: NewMalformedDescriptorError(".:", "nil export at index 0"),
		},
		"duplicate": {
			pkg:  Package{".": {Named: []*Export{Class("y", nil, Names("z", "z"))}}},
			want: NewMalformedDescriptorError(".:y#z", `duplicate name "z"`),
		},
	} {
		t.Run(name, func(t *testing.T) {
			got := Validate(tc.pkg)
			if testutil.ExpectError(t, tc.want, got) {
				if !errors.Is(got, ErrMalformedDescriptor) {
					t.Errorf("errors.Is(%v, ErrMalformedDescriptor) = false", got)
				}
			}
		})
	}
}

func TestValidateDepth(t *testing.T) {
	deep := Name("leaf")
	for i := 0; i <= MaxDepth; i++ {
		deep = Static("n", deep)
	}
	err := Validate(Package{".": {Named: []*Export{deep}}})
	if !errors.Is(err, ErrMalformedDescriptor) {
		t.Fatalf("want ErrMalformedDescriptor, got %v", err)
	}
}

func TestPackageSpecValidate(t *testing.T) {
	spec := &PackageSpec{Name: "testLib", Descriptor: Package{".": {Named: []*Export{Name("")}}}}
	testutil.ExpectError(t,
		&MalformedDescriptorError{Package: "testLib", Path: ".:", Reason: "empty export name at index 0"},
		spec.Validate())

	testutil.ExpectError(t,
		NewMalformedDescriptorError("", "package name is required"),
		(&PackageSpec{}).Validate())
}

func TestMemberPath(t *testing.T) {
	for name, tc := range map[string]struct {
		parent, member string
		instance       bool
		want           string
	}{
		"root":     {member: "y", want: "y"},
		"static":   {parent: "y", member: "z", want: "y.z"},
		"instance": {parent: "Server", member: "connect", instance: true, want: "Server#connect"},
	} {
		t.Run(name, func(t *testing.T) {
			if got := MemberPath(tc.parent, tc.member, tc.instance); got != tc.want {
				t.Errorf("want %q, got %q", tc.want, got)
			}
		})
	}
}
