package core

const (
	EnvNameConfigDir  = "CONFIG_DIR"
	EnvNameAppEnv     = "APP_ENV"
	EnvNameConfigJSON = "CONFIG_JSON"
	EnvNameLogLevel   = "LOG_LEVEL"
	EnvNameHTTPPort   = "HTTP_PORT"
	EnvNameNatsURL    = "NATS_URL"
	EnvNameNatsBucket = "NATS_CONFIG_BUCKET"

	EnvPrefixBinder = "EAGERBIND_"

	DefaultConfigDir   = "config"
	DefaultEnvironment = "development"

	PathSeparator = "."
)
