// Package config assembles application settings from defaults, an optional
// config.yaml and AGENTKIT_* environment variables, with environment taking
// the highest precedence. It validates what it loads but applies nothing:
// callers decide when to hand the values to logging.Setup or a provider.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/hupe1980/agentkit/logging"
)

// EnvPrefix is the prefix for configuration environment variables, e.g.
// AGENTKIT_LOG_LEVEL and AGENTKIT_LOG_FILE.
const EnvPrefix = "AGENTKIT"

// Settings holds the assembled application configuration.
type Settings struct {
	Log LogSettings `mapstructure:"log"`
	LLM LLMSettings `mapstructure:"llm"`
}

// LogSettings mirrors the logging.SetupOptions surface so applications can
// hand the values straight to logging.Setup.
type LogSettings struct {
	Level     string `mapstructure:"level" validate:"required,loglevel"`
	File      string `mapstructure:"file"`
	Format    string `mapstructure:"format"`
	Timestamp bool   `mapstructure:"timestamp"`
}

// LLMSettings configures the model provider used by the application.
type LLMSettings struct {
	Model     string `mapstructure:"model" validate:"required"`
	MaxTokens int    `mapstructure:"max_tokens" validate:"min=1,max=200000"`
}

// validLogLevel backs the "loglevel" validation tag; the accepted names
// stay owned by the logging package.
func validLogLevel(fl validator.FieldLevel) bool {
	_, err := logging.ParseLevel(fl.Field().String())
	return err == nil
}

// Load assembles Settings with precedence environment > config file >
// defaults. A missing config.yaml is fine; a malformed one is an error.
func Load() (*Settings, error) {
	v := viper.New()

	v.SetDefault("log.level", "INFO")
	v.SetDefault("log.file", "")
	v.SetDefault("log.format", "")
	v.SetDefault("log.timestamp", true)
	v.SetDefault("llm.model", "mock-model")
	v.SetDefault("llm.max_tokens", 1024)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

// Validate checks the assembled settings against their constraints.
func (s *Settings) Validate() error {
	v := validator.New()
	if err := v.RegisterValidation("loglevel", validLogLevel); err != nil {
		return fmt.Errorf("register validation: %w", err)
	}
	if err := v.Struct(s); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
