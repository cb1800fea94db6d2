package cli

import (
	"fmt"

	"github.com/grantcarthew/tally/internal/calc"
	"github.com/spf13/cobra"
)

// addCalcCommand adds the calc command and its operations.
func addCalcCommand(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "calc",
		GroupID: "commands",
		Short:   "Arithmetic helpers",
		Long:    `Add or multiply two numbers. Operands may be integers or decimals.`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(
		newCalcOpCmd("add X Y", "Print X + Y", []string{"sum"}, calc.Add[float64]),
		newCalcOpCmd("multiply X Y", "Print X * Y", []string{"mul"}, calc.Multiply[float64]),
	)
	parent.AddCommand(cmd)
}

func newCalcOpCmd(use, short string, aliases []string, op func(a, b float64) float64) *cobra.Command {
	return &cobra.Command{
		Use:     use,
		Short:   short,
		Aliases: aliases,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := calc.ParseOperands(args[0], args[1])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), calc.Format(op(a, b)))
			return err
		},
	}
}
