package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel          string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort          string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Game              Game   `yaml:"game"`
	Redis             Redis  `yaml:"redis"`
	SQLiteStoragePath string `yaml:"sqlite-storage-path" env:"SQLITE_STORAGE_PATH" env-default:"./matches.db"`
}

type Game struct {
	Kind          string        `yaml:"kind" env:"GAME_KIND" env-default:"tictactoe"`
	Port          string        `yaml:"port" env:"GAME_PORT" env-default:"55555"`
	Tick          time.Duration `yaml:"tick" env:"GAME_TICK" env-default:"100ms"`
	MaxFrameSize  int           `yaml:"max-frame-size" env:"GAME_MAX_FRAME_SIZE" env-default:"256"`
	SendQueueSize int           `yaml:"send-queue-size" env:"GAME_SEND_QUEUE_SIZE" env-default:"50"`
	WriteTimeout  time.Duration `yaml:"write-timeout" env:"GAME_WRITE_TIMEOUT" env-default:"5s"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Game.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// validate - the session and the TCP server need positive limits.
func (that *Game) validate() error {
	switch {
	case that.Tick <= 0:
		return fmt.Errorf("%w: tick must be positive, got %s", ErrInvalidConfig, that.Tick)
	case that.MaxFrameSize <= 0:
		return fmt.Errorf("%w: max-frame-size must be positive, got %d", ErrInvalidConfig, that.MaxFrameSize)
	case that.SendQueueSize <= 0:
		return fmt.Errorf("%w: send-queue-size must be positive, got %d", ErrInvalidConfig, that.SendQueueSize)
	case that.WriteTimeout <= 0:
		return fmt.Errorf("%w: write-timeout must be positive, got %s", ErrInvalidConfig, that.WriteTimeout)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
