package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. SCHOOLBOY_RSA_RSA_KEY_SIZE_BITS
const EnvPrefix = "SCHOOLBOY_RSA"

// AppConfig is the configuration shared by the CLI and the REST API
type AppConfig struct {
	Port   string         `mapstructure:"port"`
	Logger LoggerSettings `mapstructure:"logger"`
	RSA    RSASettings    `mapstructure:"rsa"`
}

// Validate checks every section of the configuration
func (c *AppConfig) Validate() error {
	if c.Port == "" {
		return errors.New("port is required")
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	return c.RSA.Validate()
}

// InitializeConfig reads the YAML file at path (optional, may be empty), applies
// environment overrides on top of the defaults and validates the result.
func InitializeConfig(path string) (*AppConfig, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("port", DefaultPort)
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 0)
	v.SetDefault("logger.max_backups", 0)
	v.SetDefault("logger.max_age", 0)
	v.SetDefault("rsa.key_size_bits", DefaultKeySizeBits)
	v.SetDefault("rsa.primality_rounds", DefaultPrimalityRounds)
	v.SetDefault("rsa.seed_source", SeedSourceTime)
	v.SetDefault("rsa.seed", 0)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}
