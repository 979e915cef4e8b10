// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
	"github.com/yumyai/cgcfinder/internal/util"
	"github.com/yumyai/cgcfinder/pkg/model"
)

// EnvPrefix is the prefix of environment variables read into the config,
// e.g. CGC_DISTANCE or CGC_BASE_PAIR.
const EnvPrefix = "CGC"

var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the settings of one finder run, a mix of the command line,
// CGC_* environment variables and an optional settings file.
type Config struct {
	// path to the annotation file
	Input string `mapstructure:"input"`

	// unimportant genes tolerated between two important genes
	Distance int `mapstructure:"distance"`

	// signature gene mode, one of model.AllModes
	SigGenes string `mapstructure:"siggenes"`

	// maximum base pairs between consecutive genes of a filtered cluster
	BasePair int `mapstructure:"base_pair"`

	Output         string `mapstructure:"output"`
	FilteredOutput string `mapstructure:"filtered_output"`

	// optional sqlite database the run is stored in
	DB string `mapstructure:"db"`

	// optional SVG histogram path
	Plot string `mapstructure:"plot"`

	LogFile string `mapstructure:"log_file"`
	Verbose bool   `mapstructure:"verbose"`
}

// ServeConfig is the settings of the result browser.
type ServeConfig struct {
	DB   string `mapstructure:"db"`
	Addr string `mapstructure:"addr"`
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("input", "")
	v.SetDefault("distance", 2)
	v.SetDefault("siggenes", "all")
	v.SetDefault("base_pair", 5000)
	v.SetDefault("output", "output.txt")
	v.SetDefault("filtered_output", "filtered_output.txt")
	v.SetDefault("db", "")
	v.SetDefault("plot", "")
	v.SetDefault("log_file", "cgc_finder.log")
	v.SetDefault("verbose", false)
	v.SetDefault("addr", "0.0.0.0:8080")
}

// NewViper returns a viper instance with defaults and CGC_* environment
// variables wired in.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return v
}

// NewConfig decodes the settings held by v.
func NewConfig(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("unable to decode into struct, %w", err)
	}
	return c, nil
}

func NewServeConfig(v *viper.Viper) (ServeConfig, error) {
	var c ServeConfig
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("unable to decode into struct, %w", err)
	}
	return c, nil
}

// Mode parses SigGenes.
func (c Config) Mode() (model.SignatureMode, error) {
	return model.ParseSignatureMode(c.SigGenes)
}

// Validate checks the settings before any file is opened for writing.
func (c Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("%w: no annotation file given", ErrInvalidConfig)
	}
	if !util.FileExists(c.Input) {
		return fmt.Errorf("%w: annotation file %q does not exist", ErrInvalidConfig, c.Input)
	}
	if c.Distance < 0 {
		return fmt.Errorf("%w: distance must be >= 0, got %d", ErrInvalidConfig, c.Distance)
	}
	if c.BasePair < 0 {
		return fmt.Errorf("%w: base pair threshold must be >= 0, got %d", ErrInvalidConfig, c.BasePair)
	}
	if _, err := c.Mode(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	for name, path := range map[string]string{
		"output":          c.Output,
		"filtered output": c.FilteredOutput,
	} {
		if path == "" {
			return fmt.Errorf("%w: %s path is empty", ErrInvalidConfig, name)
		}
		if !util.ParentExists(path) {
			return fmt.Errorf("%w: directory of %s %q does not exist", ErrInvalidConfig, name, path)
		}
	}
	if c.Output == c.FilteredOutput {
		return fmt.Errorf("%w: output and filtered output are the same file %q", ErrInvalidConfig, c.Output)
	}
	return nil
}
