// Package config loads configuration for the ads.txt checker.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"adscheck/pkg/report"
)

const (
	defaultConfigPath = "/etc/adscheck/adscheck.conf"
	configEnvVar      = "ADSCHECK_CONFIG"
)

// Config contains all runtime options for the checker.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Check   CheckConfig   `mapstructure:"check"`
	Files   map[string]FileConfig
}

// LoggingConfig holds log settings.
type LoggingConfig struct {
	Level          string `mapstructure:"level"`
	File           string `mapstructure:"file"`
	LintErrorLimit int    `mapstructure:"lint_error_limit"`
}

// CheckConfig holds parse and report settings.
type CheckConfig struct {
	Strict          bool          `mapstructure:"strict"`
	Report          string        `mapstructure:"report"`
	RefreshInterval time.Duration `mapstructure:"-"`
}

// FileConfig names one ads.txt or app-ads.txt file to check.
type FileConfig struct {
	Path string `mapstructure:"path"`
}

// ValidateLogLevel ensures the user-provided log level matches the supported set.
func ValidateLogLevel(level string) error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(level)] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", level)
	}
	return nil
}

// Setup loads the TOML configuration file and produces a Config instance.
func Setup() (*Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadConfig() (*Config, error) {
	configPath := defaultConfigPath
	if fromEnv := strings.TrimSpace(os.Getenv(configEnvVar)); fromEnv != "" {
		configPath = fromEnv
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	fileConfigs, err := parseFileConfigs(v)
	if err != nil {
		return nil, err
	}
	cfg.Files = fileConfigs

	cfg.Check.RefreshInterval, err = parseDuration(v.GetString("check.refresh_interval"))
	if err != nil {
		return nil, fmt.Errorf("invalid check.refresh_interval: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", "stdout")
	v.SetDefault("logging.lint_error_limit", 20)
	v.SetDefault("check.strict", false)
	v.SetDefault("check.report", "text")
	v.SetDefault("check.refresh_interval", "0s")
}

func parseDuration(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	return time.ParseDuration(raw)
}

func validateConfig(cfg *Config) error {
	if err := ValidateLogLevel(cfg.Logging.Level); err != nil {
		return err
	}

	if !report.ValidFormat(cfg.Check.Report) {
		return fmt.Errorf("invalid check.report: %s (must be one of: text, json, yaml)", cfg.Check.Report)
	}

	if cfg.Check.RefreshInterval < 0 {
		return errors.New("check.refresh_interval must be >= 0")
	}

	if cfg.Logging.LintErrorLimit < -1 {
		return errors.New("logging.lint_error_limit must be >= -1")
	}

	if len(cfg.Files) == 0 {
		return errors.New("at least one [files.<name>] entry is required")
	}
	for name, file := range cfg.Files {
		if file.Path == "" {
			return fmt.Errorf("files.%s.path is required", name)
		}
		if _, err := os.Stat(file.Path); err != nil {
			return fmt.Errorf("files.%s.path not accessible: %w", name, err)
		}
	}

	return nil
}

func parseFileConfigs(v *viper.Viper) (map[string]FileConfig, error) {
	raw := v.GetStringMap("files")

	fileConfigs := make(map[string]FileConfig)
	for key, value := range raw {
		subMap, ok := value.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("files.%s must be a table", key)
		}
		var cfg FileConfig
		if err := mapstructure.Decode(subMap, &cfg); err != nil {
			return nil, fmt.Errorf("parse files.%s: %w", key, err)
		}
		fileConfigs[strings.ToLower(key)] = cfg
	}

	return fileConfigs, nil
}
