package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Env is the process environment the harness reads.
type Env struct {
	DatabaseURL string
	RedisURL    string
}

// LoadEnv reads .env files into the process environment, without overriding
// variables already set, and returns the harness settings. With no files
// given it reads ./.env; a missing file is not an error.
func LoadEnv(files ...string) (Env, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Env{}, err
	}
	return Env{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),
	}, nil
}
