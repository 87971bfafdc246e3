package logger

// LoggerConfig defines logging configuration
type LoggerConfig struct {
	Level            string `yaml:"level" env:"PLAYERMOVE_LOG_LEVEL"`
	Format           string `yaml:"format" env:"PLAYERMOVE_LOG_FORMAT"` // json or console
	EnableSampling   bool   `yaml:"enable_sampling" env:"PLAYERMOVE_LOG_SAMPLING"`
	SampleInitial    int    `yaml:"sample_initial" env:"PLAYERMOVE_LOG_SAMPLE_INITIAL"`
	SampleThereafter int    `yaml:"sample_thereafter" env:"PLAYERMOVE_LOG_SAMPLE_THEREAFTER"`
	Development      bool   `yaml:"development" env:"PLAYERMOVE_LOG_DEVELOPMENT"`
	// OutputPaths are zap sink URLs or file paths. Empty means stderr.
	OutputPaths []string `yaml:"output_paths" env:"PLAYERMOVE_LOG_OUTPUT"`
}

// DefaultConfig returns production-ready default configuration
func DefaultConfig() LoggerConfig {
	return LoggerConfig{
		Level:            "info",
		Format:           "json",
		EnableSampling:   true,
		SampleInitial:    100, // first 100 messages per level and second
		SampleThereafter: 100, // then 1 in 100; snapshot logs repeat every few ticks
		Development:      false,
	}
}

// DevelopmentConfig returns development configuration
func DevelopmentConfig() LoggerConfig {
	return LoggerConfig{
		Level:            "debug",
		Format:           "console",
		EnableSampling:   false,
		SampleInitial:    0,
		SampleThereafter: 0,
		Development:      true,
	}
}
