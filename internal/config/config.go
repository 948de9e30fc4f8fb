// Package config resolves viterbi settings from defaults, an optional YAML
// config file, VITERBI_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/viterbi/hmm"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides: decode.workers -> VITERBI_DECODE_WORKERS.
const EnvPrefix = "viterbi"

// Setting keys.
const (
	KeyLogLevel  = "log.level"
	KeyLogSpace  = "decode.log_space"
	KeyWorkers   = "decode.workers"
	KeyStrict    = "decode.strict"
	KeyTolerance = "decode.tolerance"
)

// ErrInvalid is wrapped by Load for out-of-range settings.
var ErrInvalid = errors.New("config: invalid setting")

// Config is the resolved configuration.
type Config struct {
	LogLevel  string
	LogSpace  bool
	Workers   int
	Strict    bool
	Tolerance float64
}

// New returns a viper instance with defaults and environment lookup wired.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogSpace, false)
	v.SetDefault(KeyWorkers, 0)
	v.SetDefault(KeyStrict, false)
	v.SetDefault(KeyTolerance, 0.0)

	return v
}

// BindFlags binds each flag in fs named in flags (flag name -> key).
// Missing flags are skipped so commands can bind a subset.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet, flags map[string]string) error {
	for name, key := range flags {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("config: bind --%s: %w", name, err)
		}
	}

	return nil
}

// Load reads file (when non-empty) into v and returns the resolved Config.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	c := Config{
		LogLevel:  v.GetString(KeyLogLevel),
		LogSpace:  v.GetBool(KeyLogSpace),
		Workers:   v.GetInt(KeyWorkers),
		Strict:    v.GetBool(KeyStrict),
		Tolerance: v.GetFloat64(KeyTolerance),
	}
	if c.Workers < 0 {
		return Config{}, fmt.Errorf("config: %s=%d: %w", KeyWorkers, c.Workers, ErrInvalid)
	}
	if c.Tolerance < 0 || math.IsNaN(c.Tolerance) || math.IsInf(c.Tolerance, 0) {
		return Config{}, fmt.Errorf("config: %s=%v: %w", KeyTolerance, c.Tolerance, ErrInvalid)
	}

	return c, nil
}

// Options translates c into decoder options.
func (c Config) Options() []hmm.Option {
	var opts []hmm.Option
	if c.LogSpace {
		opts = append(opts, hmm.WithLogSpace())
	}
	if c.Workers > 1 {
		opts = append(opts, hmm.WithWorkers(c.Workers))
	}
	if c.Strict {
		opts = append(opts, hmm.WithStrict())
	}
	if c.Tolerance > 0 {
		opts = append(opts, hmm.WithStochasticTolerance(c.Tolerance))
	}

	return opts
}
