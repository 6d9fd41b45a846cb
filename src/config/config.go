package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. PATTERNS_LOG_LEVEL.
const EnvPrefix = "PATTERNS"

// Config holds runtime settings loaded from defaults, config file, .env files
// and environment, in increasing order of precedence.
type Config struct {
	LogLevel   string  `mapstructure:"log_level"`
	LogFormat  string  `mapstructure:"log_format"`
	LogOutput  string  `mapstructure:"log_output"`
	Output     string  `mapstructure:"output"`
	DelayScale float64 `mapstructure:"delay_scale"`

	// File is the config file actually read, if any.
	File string `mapstructure:"-"`
}

// Defaults returns the built-in settings.
func Defaults() Config {
	return Config{
		LogLevel:   "info",
		LogFormat:  "auto",
		LogOutput:  "stderr",
		Output:     "table",
		DelayScale: 1,
	}
}

// New builds a viper instance with defaults and env binding applied.
func New() *viper.Viper {
	v := viper.New()
	d := Defaults()
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_format", d.LogFormat)
	v.SetDefault("log_output", d.LogOutput)
	v.SetDefault("output", d.Output)
	v.SetDefault("delay_scale", d.DelayScale)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configuration into v. An explicit path must exist; otherwise
// .patterns.yaml is looked up in the working directory and home directory.
func Load(v *viper.Viper, path string) (Config, error) {
	loadEnvFiles()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".patterns")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the CLI cannot honour.
func (c Config) Validate() error {
	if c.DelayScale < 0 {
		return fmt.Errorf("delay_scale must not be negative, got %v", c.DelayScale)
	}
	switch strings.ToLower(c.Output) {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("output must be one of table, json, yaml, got %q", c.Output)
	}
	return nil
}

func loadEnvFiles() {
	for _, f := range []string{".env", ".env.local"} {
		_ = godotenv.Load(f)
	}
}
