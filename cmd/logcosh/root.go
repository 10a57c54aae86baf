package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

// precisionEnv names the environment variable holding the default precision.
const precisionEnv = "LOGCOSH_PRECISION"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "logcosh",
		Short:         "Numerically stable log(cosh(x))",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newEvalCmd(), newConstantsCmd(), newInfoCmd())
	return root
}

// defaultPrecision returns the precision named by LOGCOSH_PRECISION, or 64
// when the variable is unset or not a supported width.
func defaultPrecision() int {
	v, ok := os.LookupEnv(precisionEnv)
	if !ok {
		return 64
	}
	p, err := strconv.Atoi(v)
	if err != nil || checkPrecision(p) != nil {
		return 64
	}
	return p
}

func checkPrecision(p int) error {
	if p != 32 && p != 64 {
		return fmt.Errorf("unsupported precision %d (want 32 or 64)", p)
	}
	return nil
}

func addPrecisionFlag(cmd *cobra.Command, p *int) {
	cmd.Flags().IntVarP(p, "precision", "p", defaultPrecision(),
		"floating-point width in bits (32 or 64, default from "+precisionEnv+")")
}
