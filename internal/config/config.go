package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/orgoj/stamplog/internal/applog"
)

// LogFileConfig describes the file a FileLogger writes to.
type LogFileConfig struct {
	Path string `yaml:"path" validate:"notblank"`
}

// AppLogConfig controls the diagnostic logger of the command.
type AppLogConfig struct {
	Level string `yaml:"level" validate:"required"`
}

// Config represents the application configuration
type Config struct {
	LogFile LogFileConfig `yaml:"log_file"`
	AppLog  AppLogConfig  `yaml:"app_log"`
}

// Default returns a configuration with default values and no log file path.
func Default() *Config {
	cfg := &Config{}
	cfg.AppLog.Level = "WARN"
	return cfg
}

// ReadConfig reads the configuration file over the defaults without
// validating it, so callers can apply overrides first.
func ReadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file '%s': %w", path, err)
	}
	return cfg, nil
}

// LoadConfig loads and validates the configuration from a file
func LoadConfig(path string) (*Config, error) {
	cfg, err := ReadConfig(path)
	if err != nil {
		return nil, err
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// notBlank rejects strings that are empty after trimming whitespace.
func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// ValidateConfig uses go-playground/validator for struct-level validation.
// It complements the semantic validation in validateConfig.
func ValidateConfig(cfg *Config) error {
	validate := validator.New()
	if err := validate.RegisterValidation("notblank", notBlank); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(cfg)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return err
		}
		messages := make([]string, 0, len(validationErrors))
		for _, fe := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fe.Namespace(), fe.Tag()))
		}
		return errors.New(strings.Join(messages, "; "))
	}

	return validateConfig(cfg)
}

// validateConfig performs semantic validation of the configuration
func validateConfig(cfg *Config) error {
	if _, err := applog.ParseLevel(cfg.AppLog.Level); err != nil {
		return fmt.Errorf("invalid app_log.level '%s', must be one of %v", cfg.AppLog.Level, applog.LevelNames)
	}
	if strings.ContainsAny(cfg.LogFile.Path, "\x00") {
		return errors.New("log_file.path must not contain NUL bytes")
	}
	return nil
}
