package cmd

import (
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kevmasajedi/complexible/foundation/core/errors"
	"github.com/kevmasajedi/complexible/foundation/utils/mathx"
)

// parseNumber parses one decimal argument
func parseNumber(arg string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
	if err != nil {
		return 0, errors.NewErrorBuilder(errors.ModuleCLI).
			Operation("parse").
			Messagef("%q is not a number", arg).
			Cause(err).
			Detail("input", arg).
			Build()
	}
	return v, nil
}

// parseOperands reads pairs of numbers into complex operands.
// Pairs are (real, imaginary), or (magnitude, degrees) in polar mode.
func (a *app) parseOperands(args []string) ([]mathx.Complex, error) {
	operands := make([]mathx.Complex, 0, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		x, err := parseNumber(args[i])
		if err != nil {
			return nil, err
		}
		y, err := parseNumber(args[i+1])
		if err != nil {
			return nil, err
		}

		if a.opts.strict && (!isFinite(x) || !isFinite(y)) {
			return nil, errors.InvalidInput(errors.ModuleCLI, "parse",
				args[i]+" "+args[i+1], "finite numbers (--strict)")
		}

		var z mathx.Complex
		if a.opts.polar {
			z = mathx.FromPolar(x, mathx.AngleFromDegrees(y))
		} else {
			z = mathx.FromCartesian(x, y)
		}
		operands = append(operands, z)
	}
	return operands, nil
}

// exactArgs is cobra.ExactArgs returning a structured error
func exactArgs(n int, usage string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return errors.NewErrorBuilder(errors.ModuleCLI).
				Operation(cmd.Name()).
				Messagef("%s expects %d arguments (%s), got %d", cmd.Name(), n, usage, len(args)).
				Detail("args", len(args)).
				Build()
		}
		return nil
	}
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
