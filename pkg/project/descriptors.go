package project

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/pcj/mobyprogress"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/stackb/symbind/pkg/collections"
	"github.com/stackb/symbind/pkg/pkgdesc"
	"github.com/stackb/symbind/pkg/progress"
)

// Descriptor is a loaded descriptor file.
type Descriptor struct {
	Filename string
	Sha256   string
	Spec     *pkgdesc.PackageSpec
}

// LoadOptions configure LoadDescriptors.
type LoadOptions struct {
	// Jobs bounds the number of files read concurrently, GOMAXPROCS when
	// zero.
	Jobs     int
	Logger   zerolog.Logger
	Progress mobyprogress.Output
}

// LoadDescriptors reads and validates the given descriptor files
// concurrently.  The result has the order of filenames.
func LoadDescriptors(ctx context.Context, filenames []string, opts LoadOptions) ([]*Descriptor, error) {
	if len(filenames) == 0 {
		return nil, nil
	}
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	out := opts.Progress
	if out == nil {
		out = progress.Discard
	}

	results := make([]*Descriptor, len(filenames))
	var mu sync.Mutex
	done := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(filenames)))

	for i, filename := range filenames {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read %q: %w", filename, err)
			}
			reporter := func(format string, args ...interface{}) {
				opts.Logger.Info().Str("descriptor", filename).Msgf(format, args...)
			}
			spec, err := pkgdesc.Parse(filename, data, reporter)
			if err != nil {
				return err
			}
			results[i] = &Descriptor{
				Filename: filename,
				Sha256:   collections.BytesSha256(data),
				Spec:     spec,
			}

			mu.Lock()
			done++
			progress.Step(out, "load", "loading descriptors", done, len(filenames), "files")
			mu.Unlock()

			opts.Logger.Debug().
				Str("descriptor", filename).
				Str("package", spec.Name).
				Int("modules", len(spec.Descriptor)).
				Msg("loaded descriptor")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
