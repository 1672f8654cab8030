// Package progress writes progress updates of long running commands.
package progress

import (
	"fmt"

	"github.com/pcj/mobyprogress"
)

// Update is a convenience function to write a progress update to the output.
func Update(out mobyprogress.Output, id, action string) {
	out.WriteProgress(mobyprogress.Progress{ID: id, Action: action})
}

// Updatef is a convenience function to write a printf-formatted progress
// update to the output.
func Updatef(out mobyprogress.Output, id, format string, a ...interface{}) {
	Update(out, id, fmt.Sprintf(format, a...))
}

// Message is a convenience function to write a progress message to the
// output.
func Message(out mobyprogress.Output, id, message string) {
	out.WriteProgress(mobyprogress.Progress{ID: id, Message: message})
}

// Messagef is a convenience function to write a printf-formatted progress
// message to the output.
func Messagef(out mobyprogress.Output, id, format string, a ...interface{}) {
	Message(out, id, fmt.Sprintf(format, a...))
}

// Step reports that current of total units are done.  The last step
// terminates the progress line.
func Step(out mobyprogress.Output, id, action string, current, total int, units string) {
	out.WriteProgress(mobyprogress.Progress{
		ID:         id,
		Action:     action,
		Current:    int64(current),
		Total:      int64(total),
		Units:      units,
		LastUpdate: current >= total,
	})
}
