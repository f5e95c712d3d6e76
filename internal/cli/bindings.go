package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/eagerbind/internal/cli/flags"
)

func bindingsCMD() *cli.Command {
	return &cli.Command{
		Name:    "bindings",
		Aliases: []string{"b"},
		Usage:   "Print every binding made from the configuration.",
		Flags:   flags.ForBinder(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			injector, err := initDI(cmd)
			if err != nil {
				return err
			}
			defer injector.Shutdown() //nolint:errcheck

			b, _, err := bind(cmd, injector)
			if err != nil {
				return err
			}

			for _, entry := range b.BindingLog() {
				fmt.Fprintln(cmd.Root().Writer, entry)
			}

			return nil
		},
	}
}
