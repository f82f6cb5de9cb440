// Package config loads runtime configuration from an optional YAML file plus
// environment variable overrides.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

type Config struct {
	Hostname string `koanf:"-"`

	ServerHost string `koanf:"server_host"`
	ServerPort int    `koanf:"server_port"`

	WorkerProcesses int `koanf:"worker_processes"`

	FetchConcurrency   int           `koanf:"fetch_concurrency"`
	FetchTimeout       time.Duration `koanf:"fetch_timeout"`
	FetchRatePerSecond float64       `koanf:"fetch_rate_per_second"`
	CacheTTL           time.Duration `koanf:"cache_ttl"`
}

const configFileENV = "CONFIG_FILE"

// New builds the config in three layers: defaults, then the YAML file named
// by CONFIG_FILE (or ./config.yaml), then environment variables. Later layers
// win.
func New() (*Config, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	cfg := &Config{
		Hostname:         hostname,
		ServerPort:       8480,
		WorkerProcesses:  2,
		FetchConcurrency: 4,
		FetchTimeout:     15 * time.Second,
		CacheTTL:         10 * time.Minute,
	}

	k := koanf.New(".")

	path := os.Getenv(configFileENV)
	if path == "" {
		path = "config.yaml"
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	err = k.Load(env.Provider("", ".", strings.ToLower), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	err = k.Unmarshal("", cfg)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return cfg, nil
}
