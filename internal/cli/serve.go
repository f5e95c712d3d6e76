package cli

import (
	"context"
	"syscall"

	"github.com/samber/do"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
	"github.com/zhulik/eagerbind/internal/cli/flags"
	"github.com/zhulik/eagerbind/pkg/infoserver"
)

func serveCMD() *cli.Command {
	return &cli.Command{
		Name:     "serve",
		Aliases:  []string{"s"},
		Usage:    "Run info server exposing the bindings.",
		Category: "Service",
		Flags:    flags.ForServer(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			injector, err := initDI(cmd)
			if err != nil {
				return err
			}

			logger := do.MustInvoke[logrus.FieldLogger](injector).WithField("component", "main")

			_, _, err = bind(cmd, injector)
			if err != nil {
				return err
			}

			infoserver.Register(injector)

			server := do.MustInvoke[*infoserver.Server](injector)

			logger.Info("Starting...")

			go func() {
				err := server.Run()
				if err != nil {
					logger.WithError(err).Fatal("Failed to run server")
				}
			}()

			logger.Info("Running...")

			return injector.ShutdownOnSignals(syscall.SIGINT, syscall.SIGTERM) //nolint:wrapcheck
		},
	}
}
