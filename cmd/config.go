package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"deliveryfilter/internal/core/domain/model/kernel"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultConfigPath = "ConfigurationFiles/config.json"
	DefaultLogPath    = "ConfigurationFiles/log.txt"
	DefaultSeparator  = ","

	// positionalArgs is the number of command line values that replace the config file.
	positionalArgs = 4
)

// Config describes one filtering run. DeliveryOrders, IndexRegion,
// FirstDeliveryTime and ResultFilePath share their names with config.json.
type Config struct {
	DeliveryOrders    string `json:"DeliveryOrders" validate:"required"`
	IndexRegion       int    `json:"IndexRegion"`
	FirstDeliveryTime string `json:"FirstDeliveryTime" validate:"required,datetime=2006-01-02 15:04:05"`
	ResultFilePath    string `json:"ResultFilePath"`

	Separator   string `json:"-" validate:"required"`
	LogFilePath string `json:"-"`
	TimeZone    string `json:"-"`
}

// Env holds the settings read from the process environment.
type Env struct {
	ConfigPath string
	LogPath    string
	TimeZone   string
}

type EnvLookup func(string) (string, bool)

// EnvFromLookup reads DELIVERY_CONFIG_PATH, DELIVERY_LOG_PATH and
// DELIVERY_TIME_ZONE, falling back to defaults for unset or empty values.
func EnvFromLookup(lookup EnvLookup) Env {
	return Env{
		ConfigPath: getString(lookup, "DELIVERY_CONFIG_PATH", DefaultConfigPath),
		LogPath:    getString(lookup, "DELIVERY_LOG_PATH", DefaultLogPath),
		TimeZone:   getString(lookup, "DELIVERY_TIME_ZONE", ""),
	}
}

// Load builds the run configuration. With at least four positional arguments
// they are used as path, region, first delivery time and separator; otherwise
// the JSON file at env.ConfigPath is read.
func Load(args []string, env Env) (Config, error) {
	var (
		cfg Config
		err error
	)
	if len(args) >= positionalArgs {
		cfg, err = ConfigFromArgs(args)
	} else {
		cfg, err = ConfigFromFile(env.ConfigPath)
	}
	if err != nil {
		return Config{}, err
	}

	cfg.LogFilePath = env.LogPath
	cfg.TimeZone = env.TimeZone

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ConfigFromArgs reads "path region datetime separator". Extra arguments are ignored.
func ConfigFromArgs(args []string) (Config, error) {
	if len(args) < positionalArgs {
		return Config{}, fmt.Errorf("expected %d arguments, got %d", positionalArgs, len(args))
	}

	region, err := strconv.Atoi(args[1])
	if err != nil {
		return Config{}, fmt.Errorf("invalid region index %q: %w", args[1], err)
	}

	if _, err := kernel.ParseFirstDeliveryTime(args[2], time.UTC); err != nil {
		return Config{}, fmt.Errorf("invalid first delivery time %q, expected %s: %w", args[2], kernel.DeliveryTimeLayout, err)
	}

	return Config{
		DeliveryOrders:    args[0],
		IndexRegion:       region,
		FirstDeliveryTime: args[2],
		Separator:         args[3],
	}, nil
}

// ConfigFromFile reads a JSON config file. The separator is always ",".
func ConfigFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read configuration file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse configuration file %s: %w", path, err)
	}
	cfg.Separator = DefaultSeparator

	return cfg, nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Location resolves TimeZone, using the local zone when it is empty.
func (c Config) Location() (*time.Location, error) {
	if c.TimeZone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid time zone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func getString(lookup EnvLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}
