package main

import (
	"github.com/spf13/cobra"

	"github.com/stackb/symbind/pkg/config"
	"github.com/stackb/symbind/pkg/manifest"
	"github.com/stackb/symbind/pkg/project"
)

func newImportsCmd(a *app) *cobra.Command {
	var configFile, output string
	cmd := &cobra.Command{
		Use:   "imports",
		Short: "Compute the import tables of the configured modules",
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
			result, err := p.Run()
			if err != nil {
				return err
			}

			if output == "" {
				output = cfg.Output
			}
			if output == "" || output == "-" {
				return manifest.WriteTo(".json", result.Manifest, cmd.OutOrStdout())
			}
			filename := cfg.Abs(output)
			if err := manifest.WriteFile(filename, result.Manifest); err != nil {
				return err
			}
			a.logger.Info().
				Str("manifest", filename).
				Int("modules", len(result.Modules)).
				Strs("dependencies", result.Manifest.DependencyNames()).
				Msg("wrote manifest")
			return nil
		},
	}
	cmd.Flags().StringVarP(&configFile, "config", "c", config.DefaultFilename, "project file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "manifest file (.json, .pbtext, .pb or .msgpack); '-' for stdout")
	return cmd
}
