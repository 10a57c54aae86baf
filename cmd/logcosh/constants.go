package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-logcosh/logcosh"
)

func newConstantsCmd() *cobra.Command {
	var precision int
	cmd := &cobra.Command{
		Use:   "constants",
		Short: "Print the precision constants for a floating-point width",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkPrecision(precision); err != nil {
				return err
			}
			var err error
			if precision == 32 {
				err = writeConstants(cmd.OutOrStdout(), logcosh.ConstantsOf[float32](), 32)
			} else {
				err = writeConstants(cmd.OutOrStdout(), logcosh.ConstantsOf[float64](), 64)
			}
			if err != nil {
				return fmt.Errorf("write constants: %w", err)
			}
			return nil
		},
	}
	addPrecisionFlag(cmd, &precision)
	return cmd
}

func writeConstants[T logcosh.Floats](w io.Writer, k logcosh.Constants[T], bits int) error {
	rows := []struct {
		name string
		v    T
	}{
		{"ln2", k.Ln2},
		{"small_threshold", k.Small},
		{"large_threshold", k.Large},
		{"two", k.Two},
		{"zero", k.Zero},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%-16s %s\n", r.name, strconv.FormatFloat(float64(r.v), 'g', -1, bits)); err != nil {
			return err
		}
	}
	return nil
}
