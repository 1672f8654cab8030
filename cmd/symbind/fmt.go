package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/stackb/symbind/pkg/pkgdesc"
)

func newFmtCmd(a *app) *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "fmt FILE",
		Short: "Print a package descriptor as canonical starlark",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			spec, err := pkgdesc.ReadFile(filename, func(format string, args ...interface{}) {
				a.logger.Info().Str("descriptor", filename).Msgf(format, args...)
			})
			if err != nil {
				return err
			}
			formatted := pkgdesc.FormatStarlark(spec)
			if !write {
				_, err := cmd.OutOrStdout().Write(formatted)
				return err
			}

			data, err := os.ReadFile(filename)
			if err != nil {
				return err
			}
			if bytes.Equal(data, formatted) {
				return nil
			}
			if err := os.WriteFile(filename, formatted, 0644); err != nil {
				return fmt.Errorf("write %s: %w", filename, err)
			}
			a.logger.Info().Str("descriptor", filename).Msg("reformatted")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite a .star file in place")
	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if write && !isStarlark(args[0]) {
			return fmt.Errorf("fmt: --write requires a .star file, got %s", args[0])
		}
		return nil
	}
	return cmd
}

func isStarlark(filename string) bool {
	ext := filepath.Ext(filename)
	return ext == ".star" || ext == ".bzl"
}
