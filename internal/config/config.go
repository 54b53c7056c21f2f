package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

var ErrUnknownCacheDriver = errors.New("unknown cache driver")

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile  string `yaml:"log-file" env:"LOG_FILE"`
	API      API    `yaml:"api"`
	Game     Game   `yaml:"game"`
	Cache    Cache  `yaml:"cache"`
	Redis    Redis  `yaml:"redis"`
}

type API struct {
	BaseURL string        `yaml:"base-url" env:"API_BASE_URL" env-default:"http://localhost:8080"`
	Timeout time.Duration `yaml:"timeout" env:"API_TIMEOUT" env-default:"10s"`
}

type Game struct {
	TickInterval time.Duration `yaml:"tick-interval" env:"GAME_TICK_INTERVAL" env-default:"10ms"`
}

type Cache struct {
	Driver string        `yaml:"driver" env:"CACHE_DRIVER" env-default:"memory"`
	TTL    time.Duration `yaml:"ttl" env:"CACHE_TTL" env-default:"5m"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - reads config.yml when it exists, the environment otherwise. Environment
// variables override the file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if _, statErr := os.Stat(path); statErr == nil {
		err = cleanenv.ReadConfig(path, config)
	} else {
		err = cleanenv.ReadEnv(config)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err = config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) validate() error {
	switch that.Cache.Driver {
	case CacheMemory, CacheRedis:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCacheDriver, that.Cache.Driver)
	}
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
