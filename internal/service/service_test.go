package service

import (
	"testing"

	"github.com/MKhiriev/go-crypt-keeper/internal/crypto"
	"github.com/MKhiriev/go-crypt-keeper/models"
	"github.com/stretchr/testify/require"
)

const selfTestText = "self-test sample"

var (
	secret128      = models.BinaryStringFromText("0123456789abcdef", models.EncodingBase64)
	secret256      = models.BinaryStringFromText("0123456789abcdef0123456789abcdef", models.EncodingBase64)
	otherSecret256 = models.BinaryStringFromText("fedcba9876543210fedcba9876543210", models.EncodingBase64)
	noSecret       = models.NewBinaryString(nil, models.EncodingBase64)
)

func envSource(name string) models.SecretSource {
	return models.SecretSource{Type: models.SecretSourceEnvironmentVariable, Data: name}
}

// newTestEntry builds a pool entry with a valid self-test sample for
// cipherType and secretValue.
func newTestEntry(t *testing.T, id int64, cipherType crypto.CipherType, secretValue models.BinaryString,
	source models.SecretSource,
) models.CipherPoolEntry {
	t.Helper()

	c, err := crypto.NewCipher(cipherType, secretValue)
	require.NoError(t, err)

	nonce, err := crypto.GenerateNonce()
	require.NoError(t, err)

	cipherText, err := c.Encrypt(selfTestText, nonce)
	require.NoError(t, err)

	return models.CipherPoolEntry{
		ID:             id,
		Algorithm:      cipherType.String(),
		SecretSource:   source,
		TestText:       selfTestText,
		TestNonce:      nonce.String(),
		TestCipherText: cipherText.String(),
	}
}
