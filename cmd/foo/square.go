package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/WingSMC/CPP20-Modules/internal/core"
)

func squareCommand() *cobra.Command {
	var policy string

	cmd := &cobra.Command{
		Use:   "square [--] <n>",
		Short: "Print the square of an integer",
		Long:  "Print the square of an integer. Negative numbers must follow -- so they are not read as flags.",
		Example: "  foo square 7\n" +
			"  foo square -- -3\n" +
			"  foo square --policy wide 3037000500",
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fromContext(cmd)

			result, err := app.service.Square(args[0], policy)
			if err != nil {
				return err
			}
			app.info("square", zap.String("policy", result.Policy))
			if err := app.printer.Print(result); err != nil {
				return core.WrapError(core.ExitRuntime, "write output", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&policy, "policy", "", "overflow policy (checked|wrap|wide)")

	return cmd
}
