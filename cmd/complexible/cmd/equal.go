package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kevmasajedi/complexible/foundation/core/errors"
	mdwlog "github.com/kevmasajedi/complexible/foundation/core/log"
	"github.com/kevmasajedi/complexible/foundation/utils/mathx"
)

func (a *app) newEqualCmd() *cobra.Command {
	places := -1

	cmd := &cobra.Command{
		Use:   "equal <x1> <y1> <x2> <y2>",
		Short: "Compare two numbers within a number of decimal places",
		Long: `Compare two numbers by magnitude, angle in both units, real and
imaginary part, each rounded to precision.equality_places decimal places
(default 5). Prints true or false.`,
		Args: exactArgs(4, "<x1> <y1> <x2> <y2>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			if places < 0 {
				places = a.cfg.Precision.EqualityPlaces
			}
			if err := errors.ValidateRange(errors.ModuleCLI, "places", places, 0, mathx.MaxEqualityPlaces); err != nil {
				a.logger.LogError(err)
				return err
			}

			operands, err := a.parseOperands(args)
			if err != nil {
				a.logger.LogError(err)
				return err
			}

			equal := operands[0].EqualWithin(operands[1], places)
			a.logger.Debug("compared", mdwlog.Fields{
				"places": places,
				"equal":  equal,
			})
			a.renderer(cmd.OutOrStdout()).Bool(equal)
			return nil
		},
	}

	cmd.Flags().IntVar(&places, "places", -1, "decimal places to compare (default: precision.equality_places)")
	return cmd
}
