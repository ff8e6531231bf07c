package config

import (
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var (
	once     sync.Once
	instance *Config
)

const defaultEnvPath = "./configs/.env"

type Config struct {
}

// New loads ./configs/.env once. A missing file is not fatal: the process
// environment is used as is.
func New() *Config {
	once.Do(func() {
		path := os.Getenv("TIMELOG_ENV_FILE")
		if path == "" {
			path = defaultEnvPath
		}
		if err := godotenv.Load(path); err != nil {
			log.Println("loading envs: " + err.Error() + ", using process environment")
		}
		instance = &Config{}
	})
	return instance
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

func (c *Config) GetStringOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func (c *Config) GetInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func (c *Config) GetDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

// Location resolves TIMEZONE, falling back to the host's local zone.
func (c *Config) Location() *time.Location {
	name := os.Getenv("TIMEZONE")
	if name == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Println("unknown TIMEZONE " + name + ", using local time")
		return time.Local
	}
	return loc
}
