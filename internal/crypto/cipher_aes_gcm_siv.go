// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/cipher"
	"fmt"

	"github.com/MKhiriev/go-crypt-keeper/internal/siv"
	"github.com/MKhiriev/go-crypt-keeper/models"
)

// aesGCMSIVCipher is the nonce-misuse-resistant persistence cipher. The
// wrapped AEAD keeps only the expanded key and derives per-nonce keys on
// every call.
type aesGCMSIVCipher struct {
	cipherType CipherType
	aead       cipher.AEAD
}

func newAESGCMSIVCipher(cipherType CipherType, secret models.BinaryString) (*aesGCMSIVCipher, error) {
	if want := cipherType.KeyLength(); secret.Len() != want {
		return nil, fmt.Errorf("%w: %s needs a %d byte secret, got %d bytes",
			ErrInvalidKey, cipherType, want, secret.Len())
	}

	aead, err := siv.NewAESGCMSIV(secret.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	return &aesGCMSIVCipher{cipherType: cipherType, aead: aead}, nil
}

func (c *aesGCMSIVCipher) Encrypt(plainText string, nonce models.BinaryString) (models.BinaryString, error) {
	return c.EncryptAs(plainText, nonce, models.DefaultEncoding)
}

func (c *aesGCMSIVCipher) EncryptAs(plainText string, nonce models.BinaryString, encoding models.Encoding) (models.BinaryString, error) {
	if err := checkNonce(nonce); err != nil {
		return models.BinaryString{}, err
	}

	sealed := c.aead.Seal(nil, nonce.Bytes(), []byte(plainText), nil)
	return models.NewBinaryString(sealed, encoding), nil
}

func (c *aesGCMSIVCipher) Decrypt(cipherText, nonce models.BinaryString) (string, error) {
	if err := checkNonce(nonce); err != nil {
		return "", err
	}

	plain, err := c.aead.Open(nil, nonce.Bytes(), cipherText.Bytes(), nil)
	if err != nil {
		return "", ErrAuthenticationFailed
	}

	return string(plain), nil
}

func (c *aesGCMSIVCipher) CipherType() CipherType {
	return c.cipherType
}

func checkNonce(nonce models.BinaryString) error {
	if nonce.Len() != NonceLength {
		return fmt.Errorf("%w: need %d bytes, got %d", ErrInvalidNonce, NonceLength, nonce.Len())
	}
	return nil
}
