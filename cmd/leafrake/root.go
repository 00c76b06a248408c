package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/leafrake/internal/ctxlog"
)

func newRootCommand(out, logOut io.Writer) *cobra.Command {
	o := newRootOptions()
	cmd := &cobra.Command{
		Use:           "leafrake",
		Short:         "Cluster a leaf grid into capacity-bounded raking plans and score them",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := o.Validate(); err != nil {
				return err
			}
			logger := newLogger(o.LogLevel, o.LogFormat, logOut)
			cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))

			return nil
		},
	}
	cmd.SetOut(out)
	o.AddFlags(cmd.PersistentFlags())

	cmd.AddCommand(newSolveCommand(), newVersionCommand())

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the leafrake version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "leafrake %s\n", version)

			return err
		},
	}
}
