package progress

import (
	"fmt"
	"io"

	"github.com/pcj/mobyprogress"
)

const streamNewline = "\r\n"

// NewOutput returns an output that rewrites a single line per update on w.
func NewOutput(w io.Writer) mobyprogress.Output {
	return &output{out: w}
}

// Discard is an output that drops every update.
var Discard mobyprogress.Output = discard{}

type discard struct{}

func (discard) WriteProgress(mobyprogress.Progress) error { return nil }

type output struct {
	out io.Writer
}

// WriteProgress implements mobyprogress.Output.
func (o *output) WriteProgress(prog mobyprogress.Progress) error {
	var formatted string
	if prog.Message != "" {
		formatted = prog.Message + streamNewline
	} else {
		formatted = prog.Action
		if counts := formatCounts(prog); counts != "" {
			formatted += " " + counts
		}
		formatted += "\r"
	}
	if _, err := io.WriteString(o.out, formatted); err != nil {
		return err
	}
	if prog.LastUpdate {
		_, err := io.WriteString(o.out, streamNewline)
		return err
	}
	return nil
}

func formatCounts(prog mobyprogress.Progress) string {
	if prog.Total <= 0 {
		return ""
	}
	units := prog.Units
	if units == "" {
		units = "B"
	}
	return fmt.Sprintf("%d/%d %s", prog.Current, prog.Total, units)
}
