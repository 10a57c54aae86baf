package main

import (
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-logcosh/internal/cpuinfo"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print platform and CPU floating-point features",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cpuinfo.Write(cmd.OutOrStdout())
		},
	}
}
