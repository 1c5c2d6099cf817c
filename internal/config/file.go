package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the on-disk shape of the configuration file. The
// same struct is decoded from JSON and YAML.
type StructuredFileConfig struct {
	App struct {
		Version       string   `json:"version" yaml:"version"`
		LogLevel      string   `json:"log_level" yaml:"log_level"`
		TokenSignKey  string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration Duration `json:"token_duration" yaml:"token_duration"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN    string `json:"dsn" yaml:"dsn"`
			Driver string `json:"driver" yaml:"driver"`
		} `json:"db,omitempty" yaml:"db,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address" yaml:"http_address"`
		RequestTimeout  Duration `json:"request_timeout" yaml:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	} `json:"server,omitempty" yaml:"server,omitempty"`

	Encryption struct {
		Algorithm         string   `json:"algorithm" yaml:"algorithm"`
		SecretSource      string   `json:"secret_source" yaml:"secret_source"`
		SecretData        string   `json:"secret_data" yaml:"secret_data"`
		RefreshInterval   Duration `json:"refresh_interval" yaml:"refresh_interval"`
		AllowOutdatedPool bool     `json:"allow_outdated_pool" yaml:"allow_outdated_pool"`
	} `json:"encryption,omitempty" yaml:"encryption,omitempty"`

	Workers struct {
		RotationInterval Duration `json:"rotation_interval" yaml:"rotation_interval"`
		Concurrency      int      `json:"concurrency" yaml:"concurrency"`
		BatchSize        int      `json:"batch_size" yaml:"batch_size"`
		AbortOnError     bool     `json:"abort_on_error" yaml:"abort_on_error"`
	} `json:"workers,omitempty" yaml:"workers,omitempty"`

	Vault struct {
		Address   string `json:"address" yaml:"address"`
		Token     string `json:"token" yaml:"token"`
		Namespace string `json:"namespace" yaml:"namespace"`
		Mount     string `json:"mount" yaml:"mount"`
	} `json:"vault,omitempty" yaml:"vault,omitempty"`
}

// parseFile reads a JSON or YAML config file. Files ending in .yaml or .yml
// are decoded as YAML, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}
	defer file.Close()

	var fileCfg StructuredFileConfig

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(file).Decode(&fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.NewDecoder(file).Decode(&fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return fileCfg.toStructured(), nil
}

func (f *StructuredFileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:       f.App.Version,
			LogLevel:      f.App.LogLevel,
			TokenSignKey:  f.App.TokenSignKey,
			TokenIssuer:   f.App.TokenIssuer,
			TokenDuration: time.Duration(f.App.TokenDuration),
		},
		Storage: Storage{
			DB: DB{
				DSN:    f.Storage.DB.DSN,
				Driver: f.Storage.DB.Driver,
			},
		},
		Server: Server{
			HTTPAddress:     f.Server.HTTPAddress,
			RequestTimeout:  time.Duration(f.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(f.Server.ShutdownTimeout),
		},
		Encryption: Encryption{
			Algorithm:         f.Encryption.Algorithm,
			SecretSource:      f.Encryption.SecretSource,
			SecretData:        f.Encryption.SecretData,
			RefreshInterval:   time.Duration(f.Encryption.RefreshInterval),
			AllowOutdatedPool: f.Encryption.AllowOutdatedPool,
		},
		Workers: Workers{
			RotationInterval: time.Duration(f.Workers.RotationInterval),
			Concurrency:      f.Workers.Concurrency,
			BatchSize:        f.Workers.BatchSize,
			AbortOnError:     f.Workers.AbortOnError,
		},
		Vault: Vault{
			Address:   f.Vault.Address,
			Token:     f.Vault.Token,
			Namespace: f.Vault.Namespace,
			Mount:     f.Vault.Mount,
		},
	}
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" in JSON and YAML, and from plain nanosecond numbers in JSON.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}
