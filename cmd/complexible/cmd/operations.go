package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/kevmasajedi/complexible/foundation/core/errors"
	mdwlog "github.com/kevmasajedi/complexible/foundation/core/log"
	"github.com/kevmasajedi/complexible/foundation/utils/mathx"
)

// operation describes one arithmetic subcommand
type operation struct {
	name     string
	short    string
	operands int    // complex operands, two numbers each
	param    string // trailing real parameter, empty for none
	eval     func(z []mathx.Complex, p float64) mathx.Complex
}

func operations() []operation {
	return []operation{
		{name: "add", short: "Sum of two numbers", operands: 2,
			eval: func(z []mathx.Complex, _ float64) mathx.Complex { return z[0].Add(z[1]) }},
		{name: "sub", short: "Difference of two numbers", operands: 2,
			eval: func(z []mathx.Complex, _ float64) mathx.Complex { return z[0].Sub(z[1]) }},
		{name: "mul", short: "Product of two numbers", operands: 2,
			eval: func(z []mathx.Complex, _ float64) mathx.Complex { return z[0].Mul(z[1]) }},
		{name: "div", short: "Quotient of two numbers", operands: 2,
			eval: func(z []mathx.Complex, _ float64) mathx.Complex { return z[0].Div(z[1]) }},
		{name: "scale", short: "Multiply by a real factor", operands: 1, param: "factor",
			eval: func(z []mathx.Complex, p float64) mathx.Complex { return z[0].MulN(p) }},
		{name: "pow", short: "Raise to a real power (de Moivre)", operands: 1, param: "n",
			eval: func(z []mathx.Complex, p float64) mathx.Complex { return z[0].Pow(p) }},
		{name: "root", short: "Principal n-th root", operands: 1, param: "n",
			eval: func(z []mathx.Complex, p float64) mathx.Complex { return z[0].NthRoot(p) }},
		{name: "ln", short: "Natural logarithm of the magnitude, angle kept", operands: 1,
			eval: func(z []mathx.Complex, _ float64) mathx.Complex { return z[0].Ln() }},
		{name: "lnp", short: "Principal natural logarithm ln|z| + iθ", operands: 1,
			eval: func(z []mathx.Complex, _ float64) mathx.Complex { return z[0].LnPrincipal() }},
		{name: "log10", short: "Base 10 logarithm of the magnitude, angle kept", operands: 1,
			eval: func(z []mathx.Complex, _ float64) mathx.Complex { return z[0].Log10() }},
		{name: "log", short: "Logarithm of the magnitude to a real base, angle kept", operands: 1, param: "base",
			eval: func(z []mathx.Complex, p float64) mathx.Complex { return z[0].Log(p) }},
		{name: "conj", short: "Complex conjugate", operands: 1,
			eval: func(z []mathx.Complex, _ float64) mathx.Complex { return z[0].Conjugate() }},
	}
}

// usage returns the positional argument synopsis, e.g. "<re> <im> <n>"
func (op operation) usage() string {
	parts := make([]string, 0, 2*op.operands+1)
	for i := 1; i <= op.operands; i++ {
		suffix := ""
		if op.operands > 1 {
			suffix = string(rune('0' + i))
		}
		parts = append(parts, "<x"+suffix+">", "<y"+suffix+">")
	}
	if op.param != "" {
		parts = append(parts, "<"+op.param+">")
	}
	return strings.Join(parts, " ")
}

func (op operation) argCount() int {
	if op.param != "" {
		return 2*op.operands + 1
	}
	return 2 * op.operands
}

func (a *app) newOperationCmd(op operation) *cobra.Command {
	usage := op.usage()
	return &cobra.Command{
		Use:   op.name + " " + usage,
		Short: op.short,
		Long: op.short + `.

Each operand is <x> <y>: real and imaginary part, or magnitude and angle
in degrees with --polar.`,
		Args: exactArgs(op.argCount(), usage),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.evaluate(cmd, op, args); err != nil {
				a.logger.LogError(err)
				return err
			}
			return nil
		},
	}
}

func (a *app) evaluate(cmd *cobra.Command, op operation, args []string) error {
	logger := a.logger.WithField("operation", op.name)
	logger.Trace("arguments", mdwlog.Fields{"args": args, "polar": a.opts.polar})

	operands, err := a.parseOperands(args[:2*op.operands])
	if err != nil {
		return err
	}

	var param float64
	if op.param != "" {
		raw := args[len(args)-1]
		if param, err = parseNumber(raw); err != nil {
			return err
		}
		if a.opts.strict && !isFinite(param) {
			return errors.InvalidInput(errors.ModuleCLI, op.name, raw, "a finite "+op.param+" (--strict)")
		}
	}

	if logger.IsLevelEnabled(mdwlog.LevelDebug) {
		fields := mdwlog.Fields{}
		for i, z := range operands {
			fields[operandKey(i)] = z.CartesianString()
		}
		if op.param != "" {
			fields[op.param] = param
		}
		logger.Debug("operands parsed", fields)
	}

	timer := logger.StartTimer(op.name).WithField("strict", a.opts.strict)
	result := op.eval(operands, param)

	if !result.IsFinite() {
		if a.opts.strict {
			err := errors.MathxNonFinite(op.name, result.CartesianString())
			timer.StopWithError(err)
			return err
		}
		timer.Stop()
		logger.Warn("non-finite result", mdwlog.Fields{"result": result.CartesianString()})
	} else {
		timer.Stop()
	}

	a.renderer(cmd.OutOrStdout()).Complex(result)
	return nil
}

func operandKey(i int) string {
	return "z" + string(rune('1'+i))
}
