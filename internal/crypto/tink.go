package crypto

import (
	"fmt"

	"github.com/tink-crypto/tink-go/v2/aead/subtle"
	"github.com/tink-crypto/tink-go/v2/tink"

	"github.com/MKhiriev/go-crypt-keeper/models"
)

// NewTinkAEAD returns Tink's AES-GCM-SIV keyed with secret.
//
// Tink picks its own random nonce and frames its output as
// nonce‖ciphertext‖tag, so it cannot encrypt under a stored nonce. It can
// read everything this package writes once the nonce is prepended, which
// is what [VerifyWithTink] does.
func NewTinkAEAD(cipherType CipherType, secret models.BinaryString) (tink.AEAD, error) {
	if cipherType != CipherAESGCMSIV128 && cipherType != CipherAESGCMSIV256 {
		return nil, fmt.Errorf("%w: %q has no tink counterpart", ErrUnsupportedCipher, string(cipherType))
	}
	if want := cipherType.KeyLength(); secret.Len() != want {
		return nil, fmt.Errorf("%w: %s needs a %d byte secret, got %d bytes",
			ErrInvalidKey, cipherType, want, secret.Len())
	}

	aead, err := subtle.NewAESGCMSIV(secret.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return aead, nil
}

// VerifyWithTink decrypts cipherText with an independent AES-GCM-SIV
// implementation and returns the plaintext.
func VerifyWithTink(aead tink.AEAD, cipherText, nonce models.BinaryString) (string, error) {
	if err := checkNonce(nonce); err != nil {
		return "", err
	}

	framed := append(nonce.Bytes(), cipherText.Bytes()...)
	plain, err := aead.Decrypt(framed, nil)
	if err != nil {
		return "", ErrAuthenticationFailed
	}
	return string(plain), nil
}
