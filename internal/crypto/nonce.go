package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/MKhiriev/go-crypt-keeper/models"
)

type randomNonceGenerator struct {
	random io.Reader
}

// NewNonceGenerator returns a [NonceGenerator] backed by crypto/rand.
func NewNonceGenerator() NonceGenerator {
	return &randomNonceGenerator{random: rand.Reader}
}

// GenerateNonce implements [NonceGenerator]. The nonce is [NonceLength]
// random bytes rendered as base64.
func (g *randomNonceGenerator) GenerateNonce() (models.BinaryString, error) {
	return randomBinaryString(g.random, NonceLength)
}

// GenerateNonce returns a fresh random nonce from crypto/rand.
func GenerateNonce() (models.BinaryString, error) {
	return randomBinaryString(rand.Reader, NonceLength)
}

// GenerateSecret returns a random secret of the length cipherType needs,
// rendered as base64. NONE has no secret and yields an empty one.
func GenerateSecret(cipherType CipherType) (models.BinaryString, error) {
	if !cipherType.IsValid() {
		return models.BinaryString{}, fmt.Errorf("%w: %q", ErrUnsupportedCipher, string(cipherType))
	}
	return randomBinaryString(rand.Reader, cipherType.KeyLength())
}

func randomBinaryString(random io.Reader, n int) (models.BinaryString, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(random, buf); err != nil {
		return models.BinaryString{}, fmt.Errorf("%w: %w", ErrRandomSource, err)
	}
	return models.NewBinaryString(buf, models.EncodingBase64), nil
}
