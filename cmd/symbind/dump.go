package main

import (
	"github.com/spf13/cobra"

	"github.com/stackb/symbind/pkg/binder"
	"github.com/stackb/symbind/pkg/config"
	"github.com/stackb/symbind/pkg/project"
)

func newDumpCmd(a *app) *cobra.Command {
	var configFile string
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Materialize every registered package and print its scope tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(cmd, configFile)
			if err != nil {
				return err
			}
			p, err := project.Load(cmd.Context(), cfg,
				project.WithLogger(a.logger),
				project.WithProgress(a.progress))
			if err != nil {
				return err
			}
			b := binder.New(binder.WithLogger(a.logger))
			if err := p.MaterializeAll(b); err != nil {
				return err
			}
			for _, pkg := range b.PackageScopes() {
				if err := binder.WriteTree(cmd.OutOrStdout(), pkg.Scope); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&configFile, "config", "c", config.DefaultFilename, "project file")
	return cmd
}
