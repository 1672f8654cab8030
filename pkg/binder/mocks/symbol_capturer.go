package mocks

import (
	"testing"

	binder "github.com/stackb/symbind/pkg/binder"
	mock "github.com/stretchr/testify/mock"
)

// BinderCapturer records the binders a SymbolCreator is invoked with.
type BinderCapturer struct {
	Creator *SymbolCreator
	Got     []*binder.Binder
}

func (c *BinderCapturer) capture(b *binder.Binder) bool {
	c.Got = append(c.Got, b)
	return true
}

// NewBinderCapturer returns a capturer whose creator accepts any number of
// calls and returns nil.
func NewBinderCapturer(t *testing.T) *BinderCapturer {
	c := &BinderCapturer{
		Creator: NewSymbolCreator(t),
	}

	c.Creator.
		On("CreateSymbols", mock.MatchedBy(c.capture)).
		Maybe().
		Return(nil)

	return c
}
