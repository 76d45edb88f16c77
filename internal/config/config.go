package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shabbyrobe/go-bignum/internal/fuzz"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every key when it is read from the environment,
// e.g. BIGNUM_MAX_LIMBS.
const EnvPrefix = "BIGNUM"

const (
	DefaultIterations = 1000
	DefaultMaxLimbs   = 8

	// MaxLimbsLimit bounds max_limbs. Division cost grows with the square of
	// the operand length, so larger runs stop being useful.
	MaxLimbsLimit = 1024
)

// Config holds the differential runner settings.
type Config struct {
	Iterations int      `mapstructure:"iterations"`
	Seed       int64    `mapstructure:"seed"`
	Ops        []string `mapstructure:"ops"`
	Workers    int      `mapstructure:"workers"`
	MaxLimbs   int      `mapstructure:"max_limbs"`
	Verbose    bool     `mapstructure:"verbose"`

	configPath string
}

// ConfigPath returns the file the configuration was read from, if any.
func (c *Config) ConfigPath() string { return c.configPath }

// Load reads the configuration in priority order, lowest first:
//  1. Defaults
//  2. The configuration file at path, if path is not empty
//  3. Environment variables (BIGNUM_ prefix)
//  4. Flags in flags that were set on the command line
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// 1. Defaults
	setDefaults(v)

	// 2. Configuration file
	if path != "" {
		if err := loadFile(v, path); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	// 3. Environment
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// 4. Flags
	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.configPath = path

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("iterations", DefaultIterations)
	v.SetDefault("seed", 0)
	v.SetDefault("ops", []string{})
	v.SetDefault("workers", 0)
	v.SetDefault("max_limbs", DefaultMaxLimbs)
	v.SetDefault("verbose", false)
}

func loadFile(v *viper.Viper, path string) error {
	v.SetConfigFile(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("config file does not exist: %s", path)
	}
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return nil
}

// AddFlags registers the runner flags. Flag names use dashes where the
// config keys use underscores.
func AddFlags(fs *pflag.FlagSet) {
	fs.Int("iterations", DefaultIterations, "checks to run per op")
	fs.Int64("seed", 0, "RNG seed (0 picks one from the clock)")
	fs.StringSlice("ops", nil, "ops to run, comma separated (default all)")
	fs.Int("workers", 0, "ops to run at once (0 means GOMAXPROCS)")
	fs.Int("max-limbs", DefaultMaxLimbs, "maximum operand size in 64-bit limbs")
}

// bindFlags binds every flag whose name matches a config key.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		key := strings.ReplaceAll(f.Name, "-", "_")
		switch key {
		case "iterations", "seed", "ops", "workers", "max_limbs", "verbose":
			err = v.BindPFlag(key, f)
		}
	})
	return err
}

// Validate checks value ranges. Op names are checked by Runner.
func (c *Config) Validate() error {
	if c.Iterations <= 0 {
		return fmt.Errorf("iterations must be positive, found %d", c.Iterations)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, found %d", c.Workers)
	}
	if c.MaxLimbs <= 0 || c.MaxLimbs > MaxLimbsLimit {
		return fmt.Errorf("max_limbs must be in [1, %d], found %d", MaxLimbsLimit, c.MaxLimbs)
	}
	return nil
}

// Runner converts the configuration into a fuzz.Config. A zero seed is
// replaced with one taken from the clock; the returned config carries the
// seed actually used so the run can be repeated.
func (c *Config) Runner() (fuzz.Config, error) {
	ops, err := fuzz.ParseOps(c.Ops)
	if err != nil {
		return fuzz.Config{}, err
	}
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return fuzz.Config{
		Iterations: c.Iterations,
		Seed:       seed,
		Ops:        ops,
		Workers:    c.Workers,
		MaxLimbs:   c.MaxLimbs,
	}, nil
}
