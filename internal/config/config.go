package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string   `yaml:"log-level" env-default:"info"`
	Replay   Replay   `yaml:"replay"`
	Registry Registry `yaml:"registry"`
}

type Replay struct {
	Script string `yaml:"script" env-default:"./match.yml"`
	Pretty bool   `yaml:"pretty" env-default:"false"`
}

type Registry struct {
	// MaxMatches caps live matches; zero means unbounded.
	MaxMatches int `yaml:"max-matches" env-default:"0"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}
