package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/eagerbind/internal/cli/flags"
	"github.com/zhulik/eagerbind/pkg/core"
	"github.com/zhulik/eagerbind/pkg/json"
)

var errPathRequired = errors.New("path argument is required")

func getCMD() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Aliases:   []string{"g"},
		Usage:     "Print the value bound under a name as JSON.",
		ArgsUsage: "PATH",
		Flags:     flags.ForBinder(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return errPathRequired
			}

			injector, err := initDI(cmd)
			if err != nil {
				return err
			}
			defer injector.Shutdown() //nolint:errcheck

			_, c, err := bind(cmd, injector)
			if err != nil {
				return err
			}

			value, ok := c.Lookup(path)
			if !ok {
				return fmt.Errorf("%w: '%s'", core.ErrBindingNotFound, path)
			}

			data, err := json.MarshalIndent(value)
			if err != nil {
				return err //nolint:wrapcheck
			}

			fmt.Fprintln(cmd.Root().Writer, string(data))

			return nil
		},
	}
}
