package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/WingSMC/CPP20-Modules/internal/core"
)

func printCommand() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "print <value>",
		Short: "Print a value followed by a newline",
		Example: "  foo print hello\n" +
			"  foo print --as int 007\n" +
			"  foo print --as int -- -3",
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fromContext(cmd)

			result, err := app.service.ParseValue(args[0], kind)
			if err != nil {
				return err
			}
			app.info("print", zap.String("kind", result.Kind))
			if app.json {
				return app.printer.Print(result)
			}
			return app.service.Print(args[0], result.Kind)
		},
	}

	cmd.Flags().StringVar(&kind, "as", core.KindString, "value type (string|int|uint|float|bool)")

	return cmd
}
