package cmd

import (
	"github.com/spf13/cobra"
)

func (a *app) newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <x> <y>",
		Short: "Show one number in Cartesian and polar form",
		Long: `Show one number in Cartesian form and in polar form with radians and
degrees. Use --polar to enter magnitude and angle in degrees.`,
		Args: exactArgs(2, "<x> <y>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			operands, err := a.parseOperands(args)
			if err != nil {
				a.logger.LogError(err)
				return err
			}
			a.renderer(cmd.OutOrStdout()).Complex(operands[0])
			return nil
		},
	}
}
