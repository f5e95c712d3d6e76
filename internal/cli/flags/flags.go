package flags

import (
	"github.com/urfave/cli/v3"
	"github.com/zhulik/eagerbind/pkg/core"
)

const defaultHTTPPort = 8080

const (
	FlagNameConfigDir  = "config-dir"
	FlagNameEnv        = "env"
	FlagNameConfigJSON = "config-json"
	FlagNameLogLevel   = "log-level"
	FlagNameNATSURL    = "nats-url"
	FlagNameNATSBucket = "nats-bucket"
	FlagNameServerPort = "port"

	FlagNameRoot     = "root"
	FlagNamePrefix   = "prefix"
	FlagNameObjects  = "objects"
	FlagNameTypeHint = "type-hint"
)

func ConfigDir() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    FlagNameConfigDir,
		Aliases: []string{"c"},
		Usage:   "Read configuration files from `DIR`.",
		Value:   core.DefaultConfigDir,
		Sources: cli.EnvVars(core.EnvNameConfigDir),
	}
}

func Env() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    FlagNameEnv,
		Aliases: []string{"e"},
		Usage:   "Set deployment environment to `NAME`, eg production.",
		Value:   core.DefaultEnvironment,
		Sources: cli.EnvVars(core.EnvNameAppEnv),
	}
}

func ConfigJSON() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    FlagNameConfigJSON,
		Usage:   "Merge `JSON` on top of the loaded configuration.",
		Sources: cli.EnvVars(core.EnvNameConfigJSON),
	}
}

func LogLevel() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    FlagNameLogLevel,
		Aliases: []string{"l"},
		Usage:   "Set log level to `LEVEL`.",
		Value:   "info",
		Sources: cli.EnvVars(core.EnvNameLogLevel),
	}
}

func NatsURL() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    FlagNameNATSURL,
		Aliases: []string{"n"},
		Usage:   "Nats `URL`, eg nats://127.0.0.1:4222",
		Value:   "nats://127.0.0.1:4222",
		Sources: cli.EnvVars(core.EnvNameNatsURL),
	}
}

func NatsBucket() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    FlagNameNATSBucket,
		Usage:   "Read configuration from NATS KV `BUCKET` instead of files.",
		Sources: cli.EnvVars(core.EnvNameNatsBucket),
	}
}

func ServerPort() *cli.IntFlag {
	return &cli.IntFlag{
		Name:    FlagNameServerPort,
		Aliases: []string{"p"},
		Usage:   "Set server port to `PORT`.",
		Value:   defaultHTTPPort,
		Sources: cli.EnvVars(core.EnvNameHTTPPort),
	}
}

func Root() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    FlagNameRoot,
		Aliases: []string{"r"},
		Usage:   "Bind only the subtree at `PATH`.",
		Sources: cli.EnvVars(core.EnvPrefixBinder + "ROOT"),
	}
}

func Prefix() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    FlagNamePrefix,
		Usage:   "Bind names under `PATH`, eg cfg binds cfg.db.host.",
		Sources: cli.EnvVars(core.EnvPrefixBinder + "PREFIX"),
	}
}

func Objects() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:    FlagNameObjects,
		Usage:   "Bind intermediate objects too.",
		Sources: cli.EnvVars(core.EnvPrefixBinder + "OBJECTS"),
	}
}

func TypeHint() *cli.StringSliceFlag {
	return &cli.StringSliceFlag{
		Name:  FlagNameTypeHint,
		Usage: "Label the array at `PATH=TYPE` as string or number, can be repeated. " +
			"Added to the hints from " + core.EnvPrefixBinder + "TYPE_HINTS.",
	}
}

// Common returns new instances of the flags shared by every command.
func Common() []cli.Flag {
	return []cli.Flag{
		ConfigDir(),
		Env(),
		ConfigJSON(),
		LogLevel(),
		NatsURL(),
		NatsBucket(),
	}
}

func ForBinder() []cli.Flag {
	return append(
		Common(),
		Root(),
		Prefix(),
		Objects(),
		TypeHint(),
	)
}

func ForServer() []cli.Flag {
	return append(ForBinder(), ServerPort())
}
