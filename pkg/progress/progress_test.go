package progress

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOutput(t *testing.T) {
	for name, tc := range map[string]struct {
		write func(out *bytes.Buffer)
		want  string
	}{
		"message": {
			write: func(buf *bytes.Buffer) {
				Messagef(NewOutput(buf), "load", "loaded %d descriptors", 3)
			},
			want: "loaded 3 descriptors\r\n",
		},
		"update": {
			write: func(buf *bytes.Buffer) {
				Update(NewOutput(buf), "load", "loading")
			},
			want: "loading\r",
		},
		"steps": {
			write: func(buf *bytes.Buffer) {
				out := NewOutput(buf)
				Step(out, "resolve", "resolving", 1, 2, "modules")
				Step(out, "resolve", "resolving", 2, 2, "modules")
			},
			want: "resolving 1/2 modules\rresolving 2/2 modules\r\r\n",
		},
		"discard": {
			write: func(buf *bytes.Buffer) {
				Step(Discard, "resolve", "resolving", 1, 1, "modules")
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			tc.write(&buf)
			if diff := cmp.Diff(tc.want, buf.String()); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}
