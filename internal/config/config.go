package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
)

type config struct {
	Production       bool          `env:"PRODUCTION" envDefault:"false"`
	Port             string        `env:"PORT" envDefault:"80"`
	UsersURL         string        `env:"USERS_URL" envDefault:"https://jsonplaceholder.typicode.com/users"`
	FetchTimeout     time.Duration `env:"FETCH_TIMEOUT" envDefault:"10s"`
	FavoritesBackend string        `env:"FAVORITES_BACKEND" envDefault:"redis"`
	RedisUrl         string        `env:"REDIS_URL" envDefault:"redis:6379"`
	PostgresUrl      string        `env:"POSTGRES_URL" envDefault:""`
	SqlitePath       string        `env:"SQLITE_PATH" envDefault:"data/favorites.db"`
	VariantsPath     string        `env:"VARIANTS_PATH" envDefault:""`
	MaxBodySize      int64         `env:"MAX_BODY_SIZE" envDefault:"1048576"`
}

var conf config

func init() {
	if err := env.Parse(&conf); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
}

func Production() bool {
	return conf.Production
}

func Port() string {
	return conf.Port
}

func UsersURL() string {
	return conf.UsersURL
}

func FetchTimeout() time.Duration {
	return conf.FetchTimeout
}

func FavoritesBackend() string {
	return conf.FavoritesBackend
}

func RedisURL() string {
	return conf.RedisUrl
}

func PostgresURL() string {
	return conf.PostgresUrl
}

func SqlitePath() string {
	return conf.SqlitePath
}

func VariantsPath() string {
	return conf.VariantsPath
}

func MaxBodySize() int64 {
	return conf.MaxBodySize
}
