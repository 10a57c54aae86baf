package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-logcosh/logcosh"
)

// value is one parsed command-line operand.
type value struct {
	text      string
	z         complex128
	isComplex bool
}

func newEvalCmd() *cobra.Command {
	var (
		approx    bool
		precision int
	)
	cmd := &cobra.Command{
		Use:   "eval VALUE...",
		Short: "Evaluate log(cosh(x)) for real or complex values",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkPrecision(precision); err != nil {
				return err
			}
			values, err := parseValues(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, v := range values {
				if _, err := fmt.Fprintf(out, "%s\t%s\n", v.text, evaluate(v, precision, approx)); err != nil {
					return fmt.Errorf("write result: %w", err)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&approx, "approx", "a", false, "use the three-region approximation")
	addPrecisionFlag(cmd, &precision)
	return cmd
}

func parseValues(args []string) ([]value, error) {
	values := lo.Map(args, func(arg string, _ int) value {
		return value{text: arg}
	})
	for i := range values {
		if err := values[i].parse(); err != nil {
			return nil, err
		}
	}
	return values, nil
}

// parse reads text as a real literal, or as a complex literal when it
// carries an imaginary part.
func (v *value) parse() error {
	if x, err := strconv.ParseFloat(v.text, 64); err == nil {
		v.z = complex(x, 0)
		return nil
	}
	if !strings.HasSuffix(v.text, "i") {
		return fmt.Errorf("parse value %q: not a real or complex number", v.text)
	}
	z, err := strconv.ParseComplex(v.text, 128)
	if err != nil {
		return fmt.Errorf("parse value %q: %w", v.text, err)
	}
	v.z, v.isComplex = z, true
	return nil
}

func evaluate(v value, precision int, approx bool) string {
	if v.isComplex {
		if precision == 32 {
			z := complex64(v.z)
			if approx {
				return formatComplex(complex128(logcosh.ApproxCLogCoshComplex64(z)), 32)
			}
			return formatComplex(complex128(logcosh.CLogCoshComplex64(z)), 32)
		}
		if approx {
			return formatComplex(logcosh.ApproxCLogCoshComplex128(v.z), 64)
		}
		return formatComplex(logcosh.CLogCoshComplex128(v.z), 64)
	}

	x := real(v.z)
	if precision == 32 {
		if approx {
			return strconv.FormatFloat(float64(logcosh.ApproxLogCoshFloat32(float32(x))), 'g', -1, 32)
		}
		return strconv.FormatFloat(float64(logcosh.LogCoshFloat32(float32(x))), 'g', -1, 32)
	}
	if approx {
		return strconv.FormatFloat(logcosh.ApproxLogCoshFloat64(x), 'g', -1, 64)
	}
	return strconv.FormatFloat(logcosh.LogCoshFloat64(x), 'g', -1, 64)
}

func formatComplex(z complex128, bits int) string {
	return strconv.FormatComplex(z, 'g', -1, 2*bits)
}
