package crypto

import (
	"testing"

	"github.com/MKhiriev/go-crypt-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyWithTink_ReadsOurCipherTexts(t *testing.T) {
	tests := []struct {
		name       string
		cipherType CipherType
		secret     models.BinaryString
		cipherText string
		want       string
	}{
		{"aes 128", CipherAESGCMSIV128, repeated("a", 16), "yGcKhuWbewS+R4tlegECshiTSQ==", "bca"},
		{"aes 256", CipherAESGCMSIV256, repeated("w", 32), "1qKKtEpM2ppl4wWrJxJo0MiFdw==", "bca"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aead, err := NewTinkAEAD(tt.cipherType, tt.secret)
			require.NoError(t, err)

			plain, err := VerifyWithTink(aead, mustBase64(t, tt.cipherText), repeated("i", NonceLength))
			require.NoError(t, err)
			assert.Equal(t, tt.want, plain)
		})
	}
}

func TestVerifyWithTink_RejectsForeignCipherText(t *testing.T) {
	aead, err := NewTinkAEAD(CipherAESGCMSIV128, repeated("b", 16))
	require.NoError(t, err)

	_, err = VerifyWithTink(aead, mustBase64(t, "yGcKhuWbewS+R4tlegECshiTSQ=="), repeated("i", NonceLength))
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	_, err = VerifyWithTink(aead, mustBase64(t, "yGcKhuWbewS+R4tlegECshiTSQ=="), repeated("i", 3))
	assert.ErrorIs(t, err, ErrInvalidNonce)
}

// TestTinkCipherText_DecryptsWithPersistenceCipher splits Tink's
// nonce‖ciphertext‖tag framing and opens the rest with our cipher.
func TestTinkCipherText_DecryptsWithPersistenceCipher(t *testing.T) {
	for _, cipherType := range []CipherType{CipherAESGCMSIV128, CipherAESGCMSIV256} {
		t.Run(cipherType.String(), func(t *testing.T) {
			secret, err := GenerateSecret(cipherType)
			require.NoError(t, err)

			aead, err := NewTinkAEAD(cipherType, secret)
			require.NoError(t, err)

			framed, err := aead.Encrypt([]byte("interop payload"), nil)
			require.NoError(t, err)
			require.Greater(t, len(framed), NonceLength)

			nonce := models.NewBinaryString(framed[:NonceLength], models.EncodingBase64)
			body := models.NewBinaryString(framed[NonceLength:], models.EncodingBase64)

			plain, err := mustCipher(t, cipherType, secret).Decrypt(body, nonce)
			require.NoError(t, err)
			assert.Equal(t, "interop payload", plain)
		})
	}
}

func TestNewTinkAEAD_Errors(t *testing.T) {
	_, err := NewTinkAEAD(CipherNone, repeated("a", 16))
	assert.ErrorIs(t, err, ErrUnsupportedCipher)

	_, err = NewTinkAEAD(CipherAESGCMSIV256, repeated("a", 16))
	assert.ErrorIs(t, err, ErrInvalidKey)
}
