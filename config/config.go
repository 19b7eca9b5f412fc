// Package config reads deployment settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	EnvCloudName = "SHOPFRONT_CLOUD_NAME"
	EnvAmbientID = "SHOPFRONT_AMBIENT_ID"
	EnvVolume    = "SHOPFRONT_VOLUME"
	EnvAddr      = "SHOPFRONT_ADDR"
	EnvWebRoot   = "SHOPFRONT_WEB_ROOT"
)

type Config struct {
	CloudName string
	AmbientID string
	Volume    float64
	Addr      string
	WebRoot   string
}

func Default() Config {
	return Config{
		CloudName: "ddsq7yryf",
		AmbientID: "ftp3wymgpbjc6xfy1myr",
		Volume:    0.3,
		Addr:      ":8080",
		WebRoot:   "web",
	}
}

// Load merges the given env files (default ".env") into the process
// environment without overriding variables already set, then reads the
// settings. Missing files are not an error.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from a lookup function, keeping defaults for
// unset or empty variables.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		return v, ok && v != ""
	}

	if v, ok := get(EnvCloudName); ok {
		cfg.CloudName = v
	}
	if v, ok := get(EnvAmbientID); ok {
		cfg.AmbientID = v
	}
	if v, ok := get(EnvAddr); ok {
		cfg.Addr = v
	}
	if v, ok := get(EnvWebRoot); ok {
		cfg.WebRoot = v
	}
	if v, ok := get(EnvVolume); ok {
		vol, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", EnvVolume, err)
		}
		if vol < 0 || vol > 1 {
			return Config{}, fmt.Errorf("config: %s: %v outside [0,1]", EnvVolume, vol)
		}
		cfg.Volume = vol
	}
	return cfg, nil
}
