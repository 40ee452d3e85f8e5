package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix for rbstress settings.
const envPrefix = "RBSTRESS"

// Defaults.
const (
	DefaultKeys        = 10000
	DefaultWorkers     = 4
	DefaultSeed        = 1
	DefaultVerifyEvery = 1
)

var errInvalidConfig = errors.New("invalid config")

// Config holds one stress run's settings.
type Config struct {
	Keys        int    `mapstructure:"keys"`
	Workers     int    `mapstructure:"workers"`
	Seed        uint64 `mapstructure:"seed"`
	VerifyEvery int    `mapstructure:"verify-every"`
	MaxNodes    int    `mapstructure:"max-nodes"`
	Verbose     bool   `mapstructure:"verbose"`
}

func registerFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "optional YAML config file")
	flags.Int("keys", DefaultKeys, "distinct keys inserted then deleted by each worker")
	flags.Int("workers", DefaultWorkers, "independent trees exercised in parallel")
	flags.Uint64("seed", DefaultSeed, "base seed; worker i uses seed+i")
	flags.Int("verify-every", DefaultVerifyEvery, "check invariants every N mutations, 0 disables")
	flags.Int("max-nodes", 0, "arena bound per tree, 0 is unbounded")
	flags.BoolP("verbose", "v", false, "log every worker phase")
}

// LoadConfig merges flags, RBSTRESS_* environment variables and the optional
// config file, in that order of precedence.
func LoadConfig(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	err := v.BindPFlags(flags)
	if err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")

		err = v.ReadInConfig()
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config

	err = v.Unmarshal(&cfg)
	if err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects settings no run can use.
func (cfg *Config) Validate() error {
	switch {
	case cfg.Keys <= 0:
		return fmt.Errorf("%w: keys must be positive, got %d", errInvalidConfig, cfg.Keys)
	case cfg.Workers <= 0:
		return fmt.Errorf("%w: workers must be positive, got %d", errInvalidConfig, cfg.Workers)
	case cfg.VerifyEvery < 0:
		return fmt.Errorf("%w: verify-every must not be negative, got %d", errInvalidConfig, cfg.VerifyEvery)
	case cfg.MaxNodes < 0:
		return fmt.Errorf("%w: max-nodes must not be negative, got %d", errInvalidConfig, cfg.MaxNodes)
	}

	return nil
}
