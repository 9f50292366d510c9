package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"AccountSystem/internal/model"
)

const (
	EnvPrefix      = "ACCOUNTSYS"
	ConfigName     = "accountsys"
	KeyInitial     = "balance.initial"
	KeyLogLevel    = "log.level"
	KeyLogEncoding = "log.encoding"
)

// Config represents the account system configuration
type Config struct {
	Balance struct {
		Initial string `mapstructure:"initial"` // Starting balance, e.g. "1000.00"
	} `mapstructure:"balance"`

	Log struct {
		Level    string `mapstructure:"level"`    // debug, info, warn or error
		Encoding string `mapstructure:"encoding"` // console or json
	} `mapstructure:"log"`
}

// New returns a viper instance carrying the defaults and environment bindings.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// SetDefaults sets default configuration values
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyInitial, "1000.00")
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogEncoding, "console")
}

// Load reads configFile, or looks for accountsys.yaml in the working directory
// and in ~/.config/accountsys when configFile is empty, then unmarshals v.
// A missing default config file is not an error.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(ConfigName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", ConfigName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if _, err := cfg.InitialBalance(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// InitialBalance parses balance.initial as a non-negative amount rounded to
// cents.
func (c *Config) InitialBalance() (decimal.Decimal, error) {
	d, err := model.ParseAmount(c.Balance.Initial)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: %w", KeyInitial, c.Balance.Initial, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("invalid %s %q: %w", KeyInitial, c.Balance.Initial, model.ErrInvalidAmount)
	}

	return d.Round(model.Places), nil
}
