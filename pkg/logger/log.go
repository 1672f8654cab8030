// Package logger builds the loggers of the command line tool.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Log is the printf-style logger interface implemented by *log.Logger.  The
// command line tool reports plain results through it.
type Log interface {
	Print(v ...any)
	Printf(format string, v ...any)
	Println(v ...any)

	// Fatal logging methods (log and then call os.Exit(1))
	Fatal(v ...any)
	Fatalf(format string, v ...any)
	Fatalln(v ...any)
}

// New returns a console logger writing to w at the given level ("debug",
// "info", "warn", "error", ...).  Colors are enabled when w is a terminal.
func New(level string, w io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:     w,
		NoColor: !isTerminal(w),
	}).Level(lvl).With().Timestamp().Logger(), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
