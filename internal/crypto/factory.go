// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"github.com/MKhiriev/go-crypt-keeper/models"
)

// NewCipher returns the persistence cipher of cipherType bound to secret.
//
// AES types require a secret of exactly [CipherType.KeyLength] raw bytes
// and fail with [ErrInvalidKey] otherwise. NONE accepts any secret. Unknown
// types fail with [ErrUnsupportedCipher].
func NewCipher(cipherType CipherType, secret models.BinaryString) (PersistenceCipher, error) {
	switch cipherType {
	case CipherNone:
		return noneCipher{}, nil
	case CipherAESGCMSIV128, CipherAESGCMSIV256:
		return newAESGCMSIVCipher(cipherType, secret)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCipher, string(cipherType))
	}
}

// NewCipherFromBase64 decodes a base64 secret and calls [NewCipher]. A
// secret that is not valid base64 is reported as [ErrInvalidKey].
func NewCipherFromBase64(cipherType CipherType, secretBase64 string) (PersistenceCipher, error) {
	secret, err := models.ParseBase64(secretBase64)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return NewCipher(cipherType, secret)
}
