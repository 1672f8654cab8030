package main

import (
	"github.com/spf13/cobra"

	"github.com/stackb/symbind/pkg/externals"
	"github.com/stackb/symbind/pkg/project"
)

func newCheckCmd(a *app) *cobra.Command {
	var jobs int
	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Validate package descriptor files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			descriptors, err := project.LoadDescriptors(cmd.Context(), args, project.LoadOptions{
				Jobs:     jobs,
				Logger:   a.logger,
				Progress: a.progress,
			})
			if err != nil {
				return err
			}
			for _, d := range descriptors {
				pkg, err := externals.CreatePackage(externals.PropsFromSpec(d.Spec))
				if err != nil {
					return err
				}
				exports := 0
				for _, m := range pkg.Modules() {
					exports += len(m.NamedExports())
					if _, ok := m.Default(); ok {
						exports++
					}
				}
				a.report.Printf("%s: %s@%s modules=%d exports=%d sha256=%s",
					d.Filename, pkg.Name, pkg.Version, len(pkg.Paths()), exports, d.Sha256[:12])
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&jobs, "jobs", 0, "number of files read concurrently (0: GOMAXPROCS)")
	return cmd
}
