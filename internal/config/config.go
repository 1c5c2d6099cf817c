// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-crypt-keeper server. It aggregates all sub-configurations and is
// populated by merging defaults, a .env file, environment variables,
// command-line flags and an optional JSON or YAML file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the admin token keys
	// and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Encryption describes the cipher pool bootstrap entry and how often
	// the in-memory pool is refreshed.
	Encryption Encryption `envPrefix:"ENCRYPTION_"`

	// Workers holds configuration for the background rotation worker.
	Workers Workers `envPrefix:"WORKERS_"`

	// Vault holds the connection settings for secrets stored in HashiCorp
	// Vault. Only required when a pool entry uses the VAULT source.
	Vault Vault `envPrefix:"VAULT_"`

	// JSONFilePath is the optional path to a JSON or YAML configuration
	// file. The format is picked by extension (.yaml / .yml, otherwise
	// JSON). Populated via the CONFIG environment variable or the -c /
	// -config flag.
	JSONFilePath string `env:"CONFIG"`

	// DotEnvPath is the .env file loaded before environment variables are
	// read. Defaults to ".env"; a missing file is not an error.
	DotEnvPath string `env:"DOTENV"`
}

// Storage groups the configuration for storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the zerolog level name (debug, info, warn, error).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// TokenSignKey is the HMAC key used to sign and verify admin JWTs.
	// Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in and required from admin
	// tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a minted admin token stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the connection string, a PostgreSQL URL for the pgx driver or
	// a file name for sqlite3.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Driver is either "pgx" or "sqlite3".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`
}

// Encryption configures the cipher pool.
type Encryption struct {
	// Algorithm is the cipher type of the bootstrap pool entry created when
	// the pool is empty (NONE, AES_GCM_SIV_128, AES_GCM_SIV_256).
	// Env: ENCRYPTION_ALGORITHM
	Algorithm string `env:"ALGORITHM"`

	// SecretSource is where the bootstrap secret lives: NONE,
	// ENVIRONMENT_VARIABLE or VAULT.
	// Env: ENCRYPTION_SECRET_SOURCE
	SecretSource string `env:"SECRET_SOURCE"`

	// SecretData is the variable name or Vault path of the bootstrap secret.
	// Env: ENCRYPTION_SECRET_DATA
	SecretData string `env:"SECRET_DATA"`

	// RefreshInterval is how often the in-memory pool is reloaded.
	// Env: ENCRYPTION_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`

	// AllowOutdatedPool lets an instance keep encrypting with its cached
	// latest entry after a newer one appeared in the database.
	// Env: ENCRYPTION_ALLOW_OUTDATED_POOL
	AllowOutdatedPool bool `env:"ALLOW_OUTDATED_POOL"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RotationInterval is the tick of the rotation worker.
	// Env: WORKERS_ROTATION_INTERVAL
	RotationInterval time.Duration `env:"ROTATION_INTERVAL"`

	// Concurrency is the number of records rotated in parallel.
	// Env: WORKERS_CONCURRENCY
	Concurrency int `env:"CONCURRENCY"`

	// BatchSize is the page size used when listing outdated records.
	// Env: WORKERS_BATCH_SIZE
	BatchSize int `env:"BATCH_SIZE"`

	// AbortOnError stops a campaign at the first record that fails to
	// decrypt instead of skipping it.
	// Env: WORKERS_ABORT_ON_ERROR
	AbortOnError bool `env:"ABORT_ON_ERROR"`
}

// Vault holds HashiCorp Vault client settings.
type Vault struct {
	// Address of the Vault server. Env: VAULT_ADDR
	Address string `env:"ADDR"`
	// Token used for authentication. Env: VAULT_TOKEN
	Token string `env:"TOKEN"`
	// Namespace for HCP Vault. Env: VAULT_NAMESPACE
	Namespace string `env:"NAMESPACE"`
	// Mount is the KV v2 mount holding pool secrets. Env: VAULT_MOUNT
	Mount string `env:"MOUNT"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (later
// sources override non-zero fields of earlier ones):
//  1. Built-in defaults
//  2. .env file (only fills variables not already set)
//  3. Environment variables
//  4. Command-line flags
//  5. JSON or YAML file (path resolved from sources 3 and 4)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags(args).
		withFile().
		build()
}

// Defaults returns the built-in configuration. DSN and token sign key have
// no default and must be supplied.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:       "dev",
			LogLevel:      "info",
			TokenIssuer:   "go-crypt-keeper",
			TokenDuration: time.Hour,
		},
		Storage: Storage{
			DB: DB{Driver: DriverPostgres},
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Encryption: Encryption{
			Algorithm:       "AES_GCM_SIV_256",
			SecretSource:    "ENVIRONMENT_VARIABLE",
			SecretData:      "CRYPT_KEEPER_SECRET",
			RefreshInterval: time.Minute,
		},
		Workers: Workers{
			RotationInterval: 5 * time.Minute,
			Concurrency:      4,
			BatchSize:        100,
		},
		Vault: Vault{
			Mount: "secret",
		},
		DotEnvPath: ".env",
	}
}

// Supported database drivers.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)
