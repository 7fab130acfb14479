package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables understood by the server.
const (
	EnvDatabaseURL     = "DATABASE_URL"
	EnvSecretKey       = "SECRET_KEY"
	EnvGRPCAddr        = "GRPC_ADDR"
	EnvLogLevel        = "LOG_LEVEL"
	EnvAccessTokenTTL  = "ACCESS_TOKEN_TTL"
	EnvRefreshTokenTTL = "REFRESH_TOKEN_TTL"
	EnvRedisAddr       = "REDIS_ADDR"
	EnvBcryptCost      = "BCRYPT_COST"
	EnvPasswordAlg     = "PASSWORD_ALGORITHM"
)

var lookupEnv = os.LookupEnv

// loadDotEnv reads .env from the working directory if it exists. Variables
// already present in the environment are not overridden.
func loadDotEnv() error {
	err := godotenv.Load()
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// parseEnv overlays environment variables. Malformed values are ignored so
// a typo in one variable does not discard the rest.
func parseEnv(config *Config, load func() error, lookup func(string) (string, bool)) {
	if load != nil {
		_ = load()
	}

	if v, ok := lookup(EnvDatabaseURL); ok && v != "" {
		config.DatabaseDSN = v
	}
	if v, ok := lookup(EnvSecretKey); ok && v != "" {
		config.SecretKey = v
	}
	if v, ok := lookup(EnvGRPCAddr); ok && v != "" {
		config.EndpointAddrGRPC = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		config.LogLevel = v
	}
	if v, ok := lookup(EnvPasswordAlg); ok && v != "" {
		config.PasswordAlgorithm = v
	}
	if v, ok := lookup(EnvRedisAddr); ok && v != "" {
		config.RedisAddr = v
	}
	if v, ok := lookup(EnvAccessTokenTTL); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.AccessTokenValidityDuration = d
		}
	}
	if v, ok := lookup(EnvRefreshTokenTTL); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.RefreshTokenValidityDuration = d
		}
	}
	if v, ok := lookup(EnvBcryptCost); ok {
		if n, err := strconv.Atoi(v); err == nil {
			config.BcryptCost = n
		}
	}
}
