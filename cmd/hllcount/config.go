package main

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix = "HLLCOUNT"

	defaultPrecision = 14
	defaultHash      = hashMurmur3
)

var errInvalidPrecision = errors.New("precision out of range")

// config is the driver configuration, layered defaults < config file < env < flags.
type config struct {
	Precision  int    `mapstructure:"precision"`
	Hash       string `mapstructure:"hash"`
	Seed       uint32 `mapstructure:"seed"`
	RandomSeed bool   `mapstructure:"random-seed"`
	Sequence   int    `mapstructure:"sequence"`
	Verbose    bool   `mapstructure:"verbose"`
}

func registerFlags(flags *pflag.FlagSet) {
	flags.IntP("precision", "p", defaultPrecision, "number of index bits; the sketch uses 2^p registers")
	flags.String("hash", defaultHash, "hash function: murmur3 or xxhash")
	flags.Uint32("seed", 0, "hash seed")
	flags.Bool("random-seed", false, "pick a random hash seed for this run")
	flags.Int("sequence", 0, "count the decimal strings 0..N-1 instead of reading input")
	flags.BoolP("verbose", "v", false, "log sketch details to stderr")
	flags.String("config", "", "optional config file (yaml, json or toml)")
}

func loadConfig(flags *pflag.FlagSet) (*config, error) {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Precision < 0 || cfg.Precision > math.MaxUint8 {
		return nil, fmt.Errorf("%w: %d", errInvalidPrecision, cfg.Precision)
	}

	return &cfg, nil
}
