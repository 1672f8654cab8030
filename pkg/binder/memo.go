package binder

import "fmt"

// MemoKey identifies one logical declaration: the identity of the node that
// describes it (a comparable value, typically a pointer) and its nested path.
// The path disambiguates a node that is reachable at several places.
type MemoKey struct {
	Node any
	Path string
}

func (k MemoKey) String() string {
	return fmt.Sprintf("%T:%s", k.Node, k.Path)
}

// Memo runs create at most once per key and returns the memoized symbol on
// later calls.  Failed creations are not memoized.  A creation that re-enters
// itself fails with ErrCyclicCreation.
func (b *Binder) Memo(key MemoKey, create func() (*Symbol, error)) (*Symbol, error) {
	if sym, ok := b.memo[key]; ok {
		return sym, nil
	}
	if b.creating[key] {
		return nil, fmt.Errorf("%s: %w", key.Path, ErrCyclicCreation)
	}
	b.creating[key] = true
	defer delete(b.creating, key)

	sym, err := create()
	if err != nil {
		return nil, err
	}
	b.memo[key] = sym
	return sym, nil
}
