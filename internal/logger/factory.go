package logger

import (
	"os"
	"strconv"
	"strings"
)

// NewComponentLogger builds a logger from cfg with a component field pre-set.
func NewComponentLogger(cfg LoggerConfig, component string) (Logger, error) {
	logger, err := NewZapLogger(cfg)
	if err != nil {
		return nil, err
	}

	return logger.With(Field{Key: "component", Value: component}), nil
}

// ConfigFromEnv builds LoggerConfig from environment variables.
// PLAYERMOVE_ENV=production selects DefaultConfig, anything else DevelopmentConfig.
func ConfigFromEnv() LoggerConfig {
	return configFromLookup(os.LookupEnv)
}

func configFromLookup(lookup func(string) (string, bool)) LoggerConfig {
	get := func(key string) string {
		v, _ := lookup(key)
		return v
	}

	cfg := DefaultConfig()
	if strings.ToLower(get("PLAYERMOVE_ENV")) != "production" {
		cfg = DevelopmentConfig()
	}

	if level := get("PLAYERMOVE_LOG_LEVEL"); level != "" {
		cfg.Level = level
	}

	if format := get("PLAYERMOVE_LOG_FORMAT"); format != "" {
		cfg.Format = format
	}

	if sampling := get("PLAYERMOVE_LOG_SAMPLING"); sampling != "" {
		cfg.EnableSampling = strings.ToLower(sampling) == "true"
	}

	if initial := get("PLAYERMOVE_LOG_SAMPLE_INITIAL"); initial != "" {
		if val, err := strconv.Atoi(initial); err == nil {
			cfg.SampleInitial = val
		}
	}

	if thereafter := get("PLAYERMOVE_LOG_SAMPLE_THEREAFTER"); thereafter != "" {
		if val, err := strconv.Atoi(thereafter); err == nil {
			cfg.SampleThereafter = val
		}
	}

	if dev := get("PLAYERMOVE_LOG_DEVELOPMENT"); dev != "" {
		cfg.Development = strings.ToLower(dev) == "true"
	}

	if out := get("PLAYERMOVE_LOG_OUTPUT"); out != "" {
		cfg.OutputPaths = strings.Split(out, ",")
	}

	return cfg
}
