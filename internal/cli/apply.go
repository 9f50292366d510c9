package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"AccountSystem/internal/handler"
	"AccountSystem/internal/model"
)

// NewApply creates a command that applies a single operation to a fresh
// balance and prints the same line the interactive menu would.
func NewApply(params *CmdParams) *cobra.Command {
	return &cobra.Command{
		Use:   "apply <view|credit|debit> [amount]",
		Short: "Apply one operation to the starting balance",
		Long: `Apply a single view, credit or debit operation to the configured starting
balance and print the result. Rejected operations exit with a non-zero status.`,
		Example: "  accountsys apply credit 250.00\n  accountsys apply debit 1000 --initial-balance 1500",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opType, err := model.ParseOperationType(args[0])
			if err != nil {
				return err
			}

			op := model.Operation{Type: opType}
			if opType != model.View {
				if len(args) != 2 {
					return fmt.Errorf("%s requires an amount", args[0])
				}
				if op.Amount, err = model.ParseAmount(args[1]); err != nil {
					fmt.Fprintln(cmd.OutOrStdout(), handler.ErrorMessage(err))
					return err
				}
			}

			balance, err := params.Service.Apply(op)
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), handler.ErrorMessage(err))
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), handler.ResultMessage(opType, balance))
			return nil
		},
	}
}
