package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment variables that override config keys, e.g.
// WORLDCLOCK_LOCALE or WORLDCLOCK_LOGGING_LEVEL.
const EnvPrefix = "WORLDCLOCK"

// Config holds the application configuration.
type Config struct {
	Locale  string        `yaml:"locale" mapstructure:"locale"`
	Listen  string        `yaml:"listen" mapstructure:"listen"`
	Color   bool          `yaml:"color" mapstructure:"color"`
	Cities  []string      `yaml:"cities" mapstructure:"cities"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// LoggingConfig selects log verbosity and output format.
type LoggingConfig struct {
	Level     string `yaml:"level" mapstructure:"level"`
	Format    string `yaml:"format" mapstructure:"format"`
	AddSource bool   `yaml:"add_source" mapstructure:"add_source"`
}

// DefaultConfigDir returns the default configuration directory (~/.worldclock).
func DefaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".worldclock"), nil
}

// DefaultConfigPath returns the path to the default config file.
func DefaultConfigPath() (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Locale: "pt-BR",
		Listen: ":8080",
		Color:  true,
		Cities: []string{},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Defaults returns a Config built from DefaultConfig and environment
// overrides only.
func Defaults() (*Config, error) {
	return load(newViper(true))
}

// Load reads a config file from disk. Keys missing from the file keep their
// defaults; environment variables override both.
func Load(path string) (*Config, error) {
	return loadFile(path, true)
}

// ReadFile reads a config file like Load but ignores environment
// variables, so the result reflects only the file and the defaults.
func ReadFile(path string) (*Config, error) {
	return loadFile(path, false)
}

func loadFile(path string, env bool) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	v := newViper(env)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return load(v)
}

func newViper(env bool) *viper.Viper {
	def := DefaultConfig()

	v := viper.New()
	v.SetDefault("locale", def.Locale)
	v.SetDefault("listen", def.Listen)
	v.SetDefault("color", def.Color)
	v.SetDefault("cities", def.Cities)
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)
	v.SetDefault("logging.add_source", def.Logging.AddSource)

	if !env {
		return v
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// SaveWithComments writes the config to disk, creating directories as
// needed, with comments describing each setting. Used by `init` to generate a self-documenting config file.
func SaveWithComments(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return write(path, addConfigComments(data))
}

func write(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// addConfigComments inserts # comments into marshaled YAML for user guidance.
func addConfigComments(data []byte) []byte {
	var result []string
	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		indent := line[:len(line)-len(trimmed)]

		switch {
		case strings.HasPrefix(trimmed, "locale:"):
			result = append(result, indent+"# Display locale for dates (pt-BR or en-US).", line)

		case strings.HasPrefix(trimmed, "listen:"):
			result = append(result, indent+"# Address used by `worldclock serve`.", line)

		case strings.HasPrefix(trimmed, "color:"):
			result = append(result, indent+"# ANSI colors in terminal output (NO_COLOR also disables them).", line)

		case trimmed == "cities: []":
			result = append(result,
				indent+"# Subset of the built-in cities to show, in display order (all when empty):",
				indent+"#   cities: [\"londres\", \"tóquio\", \"sao paulo\"]",
				line,
			)

		case strings.HasPrefix(trimmed, "level:") && !strings.Contains(line, "#"):
			result = append(result, line+" # debug, info, warn, error")

		case strings.HasPrefix(trimmed, "format:") && !strings.Contains(line, "#"):
			result = append(result, line+" # text or json")

		case strings.HasPrefix(trimmed, "add_source:") && !strings.Contains(line, "#"):
			result = append(result, line+" # include file:line in log records")

		default:
			result = append(result, line)
		}
	}
	return []byte(strings.Join(result, "\n"))
}
