// Package config resolves solver defaults from the environment.
// An optional .env file in the working directory is read first.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/alexiusacademia/gosmd/internal/beam"
	"github.com/joho/godotenv"
)

// Environment keys
const (
	EnvCapacity  = "GOSMD_CAPACITY"
	EnvSamples   = "GOSMD_SAMPLES"
	EnvPrecision = "GOSMD_PRECISION"
)

// Built-in defaults
const (
	DefaultSamples   = 10
	DefaultPrecision = 4
)

// Config holds the values shared by all commands
type Config struct {
	Capacity  int // sections a beam may hold
	Samples   int // stations per section for plots and tables
	Precision int // decimals in printed tables
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Capacity:  beam.DefaultCapacity,
		Samples:   DefaultSamples,
		Precision: DefaultPrecision,
	}
}

// Load reads the given env files, or .env when none is given, and
// returns the defaults overridden by the environment. A missing .env
// is not an error; a missing explicit file is.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading .env: %w", err)
		}
	} else if err := godotenv.Load(files...); err != nil {
		return Config{}, fmt.Errorf("loading %v: %w", files, err)
	}
	return FromEnv()
}

// FromEnv returns the defaults overridden by GOSMD_* variables
func FromEnv() (Config, error) {
	c := Default()
	if err := positiveInt(EnvCapacity, &c.Capacity); err != nil {
		return Config{}, err
	}
	if err := positiveInt(EnvSamples, &c.Samples); err != nil {
		return Config{}, err
	}
	if err := positiveInt(EnvPrecision, &c.Precision); err != nil {
		return Config{}, err
	}
	return c, nil
}

func positiveInt(key string, dst *int) error {
	s, ok := os.LookupEnv(key)
	if !ok || s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return fmt.Errorf("%s must be a positive integer, got %q", key, s)
	}
	*dst = v
	return nil
}
