package config

// LoggerConfig holds the configurable elements for the application logger
type LoggerConfig struct {
	LogLevel string
}
