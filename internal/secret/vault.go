package secret

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-crypt-keeper/internal/config"
	"github.com/hashicorp/vault/api"
)

// NewVaultClient builds a Vault client from cfg. Fields left empty fall back
// to the VAULT_* variables read by [api.DefaultConfig].
func NewVaultClient(cfg config.Vault) (*api.Client, error) {
	vaultCfg := api.DefaultConfig()
	if vaultCfg.Error != nil {
		return nil, fmt.Errorf("%w: %w", ErrVaultNotConfigured, vaultCfg.Error)
	}

	if cfg.Address != "" {
		vaultCfg.Address = cfg.Address
	}
	if vaultCfg.Address == "" {
		return nil, fmt.Errorf("%w: address is required", ErrVaultNotConfigured)
	}

	client, err := api.NewClient(vaultCfg)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Vault client: %w", ErrVaultUnavailable, err)
	}

	if cfg.Namespace != "" {
		client.SetNamespace(cfg.Namespace)
	}
	if cfg.Token != "" {
		client.SetToken(cfg.Token)
	}

	return client, nil
}

// KVStore reads pool secrets from a KV v2 mount. Each secret is a KV entry
// with a base64 "value" field.
type KVStore struct {
	client *api.Client
	mount  string
}

// NewKVStore returns a KVStore over mount ("secret" when empty).
func NewKVStore(client *api.Client, mount string) *KVStore {
	if mount == "" {
		mount = "secret"
	}
	return &KVStore{client: client, mount: strings.Trim(mount, "/")}
}

// StoragePath returns the KV v2 API path of path, e.g. "keeper/pool" in
// mount "secret" is "secret/data/keeper/pool".
func (k *KVStore) StoragePath(path string) string {
	return k.mount + "/data/" + strings.TrimLeft(path, "/")
}

// ReadSecret implements [VaultReader].
func (k *KVStore) ReadSecret(ctx context.Context, path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: vault path is empty", ErrSecretNotFound)
	}

	secret, err := k.client.Logical().ReadWithContext(ctx, k.StoragePath(path))
	if err != nil {
		return "", fmt.Errorf("%w: failed to read %q: %w", ErrVaultUnavailable, path, err)
	}

	if secret == nil || secret.Data == nil {
		return "", fmt.Errorf("%w: vault path %q", ErrSecretNotFound, path)
	}

	// KV v2 wraps the actual data in a "data" key
	data, ok := secret.Data["data"].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("%w: invalid KV v2 secret format at %q", ErrSecretNotFound, path)
	}

	value, ok := data["value"].(string)
	if !ok || value == "" {
		return "", fmt.Errorf("%w: no value at vault path %q", ErrSecretNotFound, path)
	}

	return value, nil
}

// WriteSecret stores value under path. Used by operators preparing a
// rotation.
func (k *KVStore) WriteSecret(ctx context.Context, path, value string) error {
	data := map[string]interface{}{
		"data": map[string]interface{}{
			"value": value,
		},
	}

	if _, err := k.client.Logical().WriteWithContext(ctx, k.StoragePath(path), data); err != nil {
		return fmt.Errorf("%w: failed to write %q: %w", ErrVaultUnavailable, path, err)
	}

	return nil
}
