package logger

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	for name, tc := range map[string]struct {
		level   string
		wantOut bool
		wantErr string
	}{
		"info logs info":      {level: "info", wantOut: true},
		"empty is info":       {level: "", wantOut: true},
		"warn drops info":     {level: "warn"},
		"invalid":             {level: "loud", wantErr: `invalid log level "loud"`},
		"debug logs info too": {level: "debug", wantOut: true},
	} {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			l, err := New(tc.level, &buf)
			if tc.wantErr != "" {
				if err == nil || !strings.HasPrefix(err.Error(), tc.wantErr) {
					t.Fatalf("error: want prefix %q, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			l.Info().Str("package", "testLib").Msg("registered")
			got := buf.String()
			if tc.wantOut != strings.Contains(got, "registered") {
				t.Errorf("output %q: want message %v", got, tc.wantOut)
			}
			if tc.wantOut && !strings.Contains(got, "package=testLib") {
				t.Errorf("output %q: missing field", got)
			}
		})
	}
}

func TestLogInterface(t *testing.T) {
	var _ Log = log.New(&bytes.Buffer{}, "", 0)
}
