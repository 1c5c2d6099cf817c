package config

import (
	"fmt"
	"time"
)

// CLIConfig is the configuration of the cryptctl admin CLI. It is read from
// CRYPTCTL_* environment variables (after the .env file) and can be
// overridden by command flags.
type CLIConfig struct {
	// ServerAddress is the base URL of the admin API
	// (e.g. "http://localhost:8080"). Env: CRYPTCTL_SERVER
	ServerAddress string `env:"SERVER"`

	// Token is a ready admin bearer token. Env: CRYPTCTL_TOKEN
	Token string `env:"TOKEN"`

	// TokenSignKey lets the CLI mint its own token when Token is empty.
	// Env: CRYPTCTL_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the issuer claim of minted tokens.
	// Env: CRYPTCTL_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// RequestTimeout is the default timeout for outbound requests.
	// Env: CRYPTCTL_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Vault is used by "secret generate" to store freshly generated pool
	// secrets. Env: CRYPTCTL_VAULT_ADDR, CRYPTCTL_VAULT_TOKEN, ...
	Vault Vault `envPrefix:"VAULT_"`
}

// GetCLIConfig builds and validates the CLI config. overrides holds values
// from command flags; its non-zero fields win.
func GetCLIConfig(overrides CLIConfig) (*CLIConfig, error) {
	b := newConfigBuilder().withDefaults().withDotEnv()
	if b.err != nil {
		return nil, fmt.Errorf("error get cli config: %w", b.err)
	}

	cfg := &CLIConfig{
		ServerAddress:  "http://localhost:8080",
		TokenIssuer:    "go-crypt-keeper",
		RequestTimeout: 30 * time.Second,
		Vault:          Vault{Mount: "secret"},
	}
	if err := parseEnvWithPrefix(cfg, "CRYPTCTL_"); err != nil {
		return nil, err
	}

	if overrides.ServerAddress != "" {
		cfg.ServerAddress = overrides.ServerAddress
	}
	if overrides.Token != "" {
		cfg.Token = overrides.Token
	}
	if overrides.TokenSignKey != "" {
		cfg.TokenSignKey = overrides.TokenSignKey
	}
	if overrides.TokenIssuer != "" {
		cfg.TokenIssuer = overrides.TokenIssuer
	}
	if overrides.RequestTimeout != 0 {
		cfg.RequestTimeout = overrides.RequestTimeout
	}

	return cfg, cfg.validate()
}
