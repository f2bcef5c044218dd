package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	LogFile  string  `yaml:"log-file" env:"LOG_FILE"`
	Mode     string  `yaml:"mode" env:"GAME_MODE" env-default:"bot" validate:"oneof=pvp bot"`
	Storage  string  `yaml:"storage" env:"STORAGE" env-default:"memory" validate:"oneof=memory redis"`
	Redis    Redis   `yaml:"redis"`
	Bot      Bot     `yaml:"bot"`
	Turn     Turn    `yaml:"turn"`
	Tracing  Tracing `yaml:"tracing"`
}

type Redis struct {
	Host       string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost" validate:"required"`
	Port       string        `yaml:"port" env:"REDIS_PORT" env-default:"6379" validate:"required,numeric"`
	SessionTTL time.Duration `yaml:"session-ttl" env:"REDIS_SESSION_TTL" env-default:"24h" validate:"min=0"`
}

type Bot struct {
	// Mark is the bot's side. X always moves first.
	Mark          string        `yaml:"mark" env:"BOT_MARK" env-default:"O" validate:"oneof=X O"`
	ThinkingDelay time.Duration `yaml:"thinking-delay" env:"BOT_THINKING_DELAY" env-default:"600ms" validate:"min=0"`
	FasterWins    bool          `yaml:"faster-wins" env:"BOT_FASTER_WINS"`
}

type Turn struct {
	// Timeout is the countdown for a human turn. A negative value disables it.
	Timeout time.Duration `yaml:"timeout" env:"TURN_TIMEOUT" env-default:"30s"`
}

type Tracing struct {
	Enabled bool   `yaml:"enabled" env:"TRACING_ENABLED"`
	File    string `yaml:"file" env:"TRACING_FILE" env-default:"traces.json"`
}

// MustLoad - load all configurations in the yml file at path, or only env when the file is missing.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	case errors.Is(statErr, fs.ErrNotExist):
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read env: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to stat config %s: %w", path, statErr)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(that); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// GetRedisAddr returns "" unless both host and port are set.
func (that *Redis) GetRedisAddr() string {
	if that.Host == "" || that.Port == "" {
		return ""
	}
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
