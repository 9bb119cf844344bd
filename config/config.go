package config

// GeneralSettingsConfig will hold the general settings
type GeneralSettingsConfig struct {
	// AccountPrefix, when set, is the only human readable part accepted for payer and granter accounts
	AccountPrefix string
}

// FeeSettings will hold the default fee used when a request does not provide one
type FeeSettings struct {
	Denom    string
	Amount   string
	GasLimit uint64
}

// WebServerConfig will hold the REST API settings
type WebServerConfig struct {
	RestApiInterface     string
	SimultaneousRequests uint32

	// ResponseLoggingThresholdInMicroSeconds is the duration above which a request is logged. 0 disables the logging.
	ResponseLoggingThresholdInMicroSeconds uint32
}

// Config will hold the whole application configuration, as read from the toml file
type Config struct {
	GeneralSettings GeneralSettingsConfig
	FeeSettings     FeeSettings
	WebServer       WebServerConfig
	Logger          LoggerConfig
}

// DefaultConfig returns the configuration used when no file is provided
func DefaultConfig() Config {
	return Config{
		GeneralSettings: GeneralSettingsConfig{
			AccountPrefix: "cosmos",
		},
		FeeSettings: FeeSettings{
			Denom:    "uatom",
			Amount:   "5000",
			GasLimit: 200000,
		},
		WebServer: WebServerConfig{
			RestApiInterface:                       "localhost:8080",
			SimultaneousRequests:                   100,
			ResponseLoggingThresholdInMicroSeconds: 0,
		},
		Logger: LoggerConfig{
			LogLevel: "*:INFO",
		},
	}
}
