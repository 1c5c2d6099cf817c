package commands

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-crypt-keeper/internal/adapter"
	"github.com/MKhiriev/go-crypt-keeper/internal/config"
	"github.com/MKhiriev/go-crypt-keeper/internal/crypto"
	"github.com/MKhiriev/go-crypt-keeper/internal/logger"
	"github.com/MKhiriev/go-crypt-keeper/internal/mock"
	"github.com/MKhiriev/go-crypt-keeper/internal/utils"
	"github.com/MKhiriev/go-crypt-keeper/models"
)

func setupEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DOTENV", "/nonexistent/.env")
	t.Setenv("USER", "tester")
	for _, key := range []string{"CRYPTCTL_SERVER", "CRYPTCTL_TOKEN", "CRYPTCTL_TOKEN_SIGN_KEY", "CRYPTCTL_TOKEN_ISSUER"} {
		unsetenv(t, key)
	}
}

func unsetenv(t *testing.T, key string) {
	t.Helper()

	if value, ok := os.LookupEnv(key); ok {
		require.NoError(t, os.Unsetenv(key))
		t.Cleanup(func() { _ = os.Setenv(key, value) })
	}
}

// run executes the command tree with client as the admin client.
func run(t *testing.T, client adapter.AdminClient, args ...string) (string, error) {
	t.Helper()
	setupEnv(t)

	c := &cli{
		newClient: func(config.CLIConfig, *logger.Logger) (adapter.AdminClient, error) {
			if client == nil {
				return nil, errors.New("no client expected")
			}
			return client, nil
		},
		logger: logger.Nop(),
	}

	var out bytes.Buffer
	cmd := newRootCommand(c, "v1.2.3")
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestStatusCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockAdminClient(ctrl)

	client.EXPECT().Token().Return("given")
	client.EXPECT().Status(gomock.Any()).Return(models.EncryptionStatus{
		LatestPoolID:    3,
		OutdatedRecords: 5,
		Pools:           []models.PoolUsage{{PoolID: 2, Algorithm: "AES_GCM_SIV_128", Records: 5}},
	}, nil)

	out, err := run(t, client, "status", "--token", "given")
	require.NoError(t, err)
	assert.Contains(t, out, "latest pool entry:")
	assert.Contains(t, out, "3")
	assert.Contains(t, out, "pool 2 (AES_GCM_SIV_128):")
	assert.Contains(t, out, "rotation running:")
}

func TestStatusCommand_JSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockAdminClient(ctrl)

	client.EXPECT().Token().Return("given")
	client.EXPECT().Status(gomock.Any()).Return(models.EncryptionStatus{LatestPoolID: 7}, nil)

	out, err := run(t, client, "status", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"latestPoolId": 7`)
}

func TestClient_MintsTokenFromSignKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockAdminClient(ctrl)

	var minted string
	client.EXPECT().Token().Return("")
	client.EXPECT().SetToken(gomock.Any()).Do(func(token string) { minted = token })
	client.EXPECT().Pool(gomock.Any()).Return(nil, nil)

	_, err := run(t, client, "pool", "--sign-key", "secret", "--issuer", "tests", "--operator", "alice")
	require.NoError(t, err)

	token, err := utils.ValidateAndParseJWTToken(minted, "secret", "tests")
	require.NoError(t, err)
	assert.Equal(t, "alice", token.Operator)
}

func TestClient_ErrorIsReturned(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockAdminClient(ctrl)

	client.EXPECT().Token().Return("given")
	client.EXPECT().Pool(gomock.Any()).Return(nil, adapter.ErrUnauthorized)

	_, err := run(t, client, "pool")
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestPoolCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockAdminClient(ctrl)

	client.EXPECT().Token().Return("given")
	client.EXPECT().Pool(gomock.Any()).Return([]models.CipherPoolEntry{{
		ID:           1,
		Algorithm:    "AES_GCM_SIV_256",
		SecretSource: models.SecretSource{Type: models.SecretSourceVault, Data: "keys/one"},
		CreatedBy:    "bootstrap",
		CreatedAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}}, nil)

	out, err := run(t, client, "pool")
	require.NoError(t, err)
	assert.Contains(t, out, "ALGORITHM")
	assert.Contains(t, out, "keys/one")
	assert.Contains(t, out, "2026-01-02T03:04:05Z")
}

func TestRotateCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockAdminClient(ctrl)

	client.EXPECT().Token().Return("given")
	client.EXPECT().Rotate(gomock.Any(), models.RotationRequest{
		Algorithm:    "AES_GCM_SIV_128",
		SecretSource: models.SecretSource{Type: models.SecretSourceEnvironmentVariable, Data: "NEW_KEY"},
	}).Return(models.RotationAccepted{CampaignID: "c-1", PoolID: 4}, nil)

	out, err := run(t, client, "rotate", "-a", "AES_GCM_SIV_128", "-d", "NEW_KEY")
	require.NoError(t, err)
	assert.Equal(t, "rotation c-1 started, new pool entry 4\n", out)
}

func TestRotateCommand_Wait(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockAdminClient(ctrl)

	client.EXPECT().Token().Return("given")
	client.EXPECT().Rotate(gomock.Any(), gomock.Any()).Return(models.RotationAccepted{CampaignID: "c-2", PoolID: 5}, nil)
	gomock.InOrder(
		client.EXPECT().Status(gomock.Any()).Return(models.EncryptionStatus{RotationRunning: true}, nil),
		client.EXPECT().Status(gomock.Any()).Return(models.EncryptionStatus{
			LatestPoolID: 5,
			LastRotation: &models.RotationReport{CampaignID: "c-2", TargetPoolID: 5, Rotated: 10},
		}, nil),
	)

	out, err := run(t, client, "rotate", "-d", "NEW_KEY", "--wait", "--poll", "1ms")
	require.NoError(t, err)
	assert.Contains(t, out, "rotation c-2 started")
	assert.Contains(t, out, "c-2 -> pool 5, 10 rotated")
}

func TestRotateCommand_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown algorithm", args: []string{"rotate", "-a", "DES"}},
		{name: "unknown source", args: []string{"rotate", "--source", "FILE"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, nil, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestWaitForRotation_Timeout(t *testing.T) {
	running := func(context.Context) (models.EncryptionStatus, error) {
		return models.EncryptionStatus{RotationRunning: true}, nil
	}

	_, err := waitForRotation(context.Background(), running, time.Millisecond, 20*time.Millisecond)
	assert.ErrorIs(t, err, errRotationTimeout)
}

func TestConfigCommands(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockAdminClient(ctrl)

	client.EXPECT().Token().Return("given").Times(2)
	client.EXPECT().StoreConfig(gomock.Any(), models.StoreConfigRequest{Name: "db-password", Value: "hunter2"}).
		Return(models.ProtectedConfig{ID: "id-1", Name: "db-password", PoolID: 2}, nil)
	client.EXPECT().RevealConfig(gomock.Any(), "id-1").
		Return(models.RevealedConfig{ID: "id-1", Name: "db-password", Value: "hunter2", PoolID: 2}, nil)

	out, err := run(t, client, "config", "store", "db-password", "--value", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "db-password stored as id-1 (pool entry 2)\n", out)

	out, err = run(t, client, "config", "reveal", "id-1")
	require.NoError(t, err)
	assert.Equal(t, "hunter2\n", out)
}

func TestConfigStore_RequiresValue(t *testing.T) {
	_, err := run(t, nil, "config", "store", "db-password")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockAdminClient(ctrl)

	client.EXPECT().Version(gomock.Any()).Return("v9.9.9", nil)

	out, err := run(t, client, "version")
	require.NoError(t, err)
	assert.Equal(t, "cryptctl v1.2.3\nserver   v9.9.9\n", out)
}

func TestTokenCommand(t *testing.T) {
	_, err := run(t, nil, "token")
	assert.ErrorIs(t, err, errNoSignKey)

	out, err := run(t, nil, "token", "--sign-key", "k", "--issuer", "iss", "--duration", "5m")
	require.NoError(t, err)

	token, err := utils.ValidateAndParseJWTToken(strings.TrimSpace(out), "k", "iss")
	require.NoError(t, err)
	assert.Equal(t, "tester", token.Operator)
}

func TestNonceCommand(t *testing.T) {
	out, err := run(t, nil, "nonce")
	require.NoError(t, err)

	nonce, err := models.ParseBase64(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, crypto.NonceLength, nonce.Len())
}

func TestSecretGenerate_Hex(t *testing.T) {
	out, err := run(t, nil, "secret", "generate", "-a", "AES_GCM_SIV_128", "-e", "hex")
	require.NoError(t, err)

	raw, err := hex.DecodeString(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Len(t, raw, crypto.CipherAESGCMSIV128.KeyLength())
}

func TestSecretGenerate_UnknownEncoding(t *testing.T) {
	_, err := run(t, nil, "secret", "generate", "-e", "base32")
	assert.ErrorIs(t, err, models.ErrUnknownEncoding)
}
