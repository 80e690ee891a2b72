package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel    string `yaml:"log-level" env:"GRIDGAME_LOG_LEVEL" env-default:"info"`
	MetricsPort string `yaml:"metrics-port" env:"GRIDGAME_METRICS_PORT"`
	Game        Game   `yaml:"game"`
	Redis       Redis  `yaml:"redis"`
}

type Game struct {
	Variant     string   `yaml:"variant" env:"GRIDGAME_VARIANT" env-default:"tictactoe"`
	Size        int      `yaml:"size" env:"GRIDGAME_SIZE" env-default:"3"`
	PlayerCount int      `yaml:"player-count" env:"GRIDGAME_PLAYER_COUNT" env-default:"2"`
	Symbols     []string `yaml:"symbols" env:"GRIDGAME_SYMBOLS" env-default:"X,O"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"GRIDGAME_REDIS_ENABLED"`
	Host    string `yaml:"host" env:"GRIDGAME_REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"GRIDGAME_REDIS_PORT" env-default:"6379"`
}

// Load - reads the yml file at path when it exists, then applies environment overrides and defaults.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from env: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
