package binder

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Refkey is an opaque reference token.  Refkeys compare by identity only; two
// refkeys with the same label are distinct.  A refkey may be created long
// before the symbol it names exists, and is bound to that symbol at most once.
type Refkey struct {
	id      uuid.UUID
	label   string
	creator SymbolCreator
}

// NewRefkey allocates a fresh refkey.  The optional label parts are joined
// with '.' and only used for diagnostics.
func NewRefkey(label ...string) *Refkey {
	return &Refkey{
		id:    uuid.New(),
		label: strings.Join(label, "."),
	}
}

// NewDeferredRefkey allocates a fresh refkey that carries a symbol creator.
// The creator is run (at most once per Binder) the first time the refkey is
// resolved and is expected to bind the refkey.
func NewDeferredRefkey(label string, creator SymbolCreator) *Refkey {
	key := NewRefkey(label)
	key.creator = creator
	return key
}

// Label returns the debug label, possibly empty.
func (k *Refkey) Label() string {
	return k.label
}

// Creator returns the attached symbol creator, or nil.
func (k *Refkey) Creator() SymbolCreator {
	return k.creator
}

// Deferred reports whether the refkey carries a symbol creator.
func (k *Refkey) Deferred() bool {
	return k.creator != nil
}

// String implements fmt.Stringer
func (k *Refkey) String() string {
	if k == nil {
		return "refkey(<nil>)"
	}
	if k.label != "" {
		return fmt.Sprintf("refkey(%s)", k.label)
	}
	return fmt.Sprintf("refkey(%s)", k.id.String()[:8])
}
