package cli

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

const VERSION = "0.1.0"

func NewCommand() *cli.Command {
	return &cli.Command{
		Name:    "eagerbind",
		Usage:   "Bind configuration values into a DI container by their dotted paths.",
		Version: VERSION,
		Commands: []*cli.Command{
			bindingsCMD(),
			getCMD(),
			serveCMD(),
		},
	}
}

func Run() {
	if err := NewCommand().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
