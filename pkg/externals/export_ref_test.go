package externals

import (
	"errors"
	"testing"

	"github.com/stackb/symbind/pkg/binder"
	"github.com/stackb/symbind/pkg/pkgdesc"
)

func TestMaterializeReentryIsMalformed(t *testing.T) {
	pkg, err := CreatePackage(Props{
		Name: "testLib",
		Descriptor: pkgdesc.Package{
			"./a": {Named: []*pkgdesc.Export{pkgdesc.Static("y", pkgdesc.Name("z"))}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	ref, err := pkg.Lookup("./a", "y")
	if err != nil {
		t.Fatal(err)
	}

	b := binder.New()
	_, err = b.Memo(ref.memoKey(), func() (*binder.Symbol, error) {
		return ref.materialize(b)
	})

	var malformed *pkgdesc.MalformedDescriptorError
	if !errors.As(err, &malformed) {
		t.Fatalf("want MalformedDescriptorError, got %v", err)
	}
	if malformed.Package != "testLib" || malformed.Path != "./a:y" {
		t.Errorf("unexpected location: %s %s", malformed.Package, malformed.Path)
	}
	if !errors.Is(err, pkgdesc.ErrMalformedDescriptor) {
		t.Errorf("want ErrMalformedDescriptor, got %v", err)
	}
	if _, ok := b.Lookup(ref.Refkey()); ok {
		t.Error("re-entered export must not be bound")
	}

	if _, err := ref.materialize(b); err != nil {
		t.Errorf("materialize after failed attempt: %v", err)
	}
}
