package config

import (
	"github.com/nats-io/nats.go"
)

type Config struct {
	ConfigDir_   string `env:"CONFIG_DIR"         envDefault:"config"`
	Environment_ string `env:"APP_ENV"            envDefault:"development"`
	ConfigJSON_  string `env:"CONFIG_JSON"`
	LogLevel_    string `env:"LOG_LEVEL"          envDefault:"info"`
	HTTPPort_    int    `env:"HTTP_PORT"          envDefault:"8080"`
	NATSURL      string `env:"NATS_URL"`
	NATSBucket   string `env:"NATS_CONFIG_BUCKET"`
}

func (c Config) ConfigDir() string {
	return c.ConfigDir_
}

func (c Config) Environment() string {
	return c.Environment_
}

func (c Config) ConfigJSON() string {
	return c.ConfigJSON_
}

func (c Config) LogLevel() string {
	if c.LogLevel_ == "" {
		return "info"
	}

	return c.LogLevel_
}

func (c Config) HTTPPort() int {
	return c.HTTPPort_
}

func (c Config) NatsURL() string {
	if c.NATSURL == "" {
		return nats.DefaultURL
	}

	return c.NATSURL
}

func (c Config) NatsBucket() string {
	return c.NATSBucket
}
