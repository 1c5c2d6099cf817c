// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-crypt-keeper/internal/siv"
)

// CipherType identifies a persistence cipher. The set is closed.
type CipherType string

const (
	// CipherNone stores data unprotected. It exists for local development
	// and tests only and is reported as insecure everywhere it shows up.
	CipherNone CipherType = "NONE"

	// CipherAESGCMSIV128 is AES-GCM-SIV with a 16-byte secret.
	CipherAESGCMSIV128 CipherType = "AES_GCM_SIV_128"

	// CipherAESGCMSIV256 is AES-GCM-SIV with a 32-byte secret.
	CipherAESGCMSIV256 CipherType = "AES_GCM_SIV_256"
)

// NonceLength is the fixed nonce length of the AES-GCM-SIV family.
const NonceLength = siv.NonceSize

// KeyLength returns the required raw secret length in bytes. NONE accepts
// any secret and reports 0; unknown types report -1.
func (t CipherType) KeyLength() int {
	switch t {
	case CipherNone:
		return 0
	case CipherAESGCMSIV128:
		return 16
	case CipherAESGCMSIV256:
		return 32
	default:
		return -1
	}
}

// NonceLength returns the nonce length the type enforces, 0 for NONE.
func (t CipherType) NonceLength() int {
	switch t {
	case CipherAESGCMSIV128, CipherAESGCMSIV256:
		return NonceLength
	default:
		return 0
	}
}

// IsValid reports whether t is one of the declared cipher types.
func (t CipherType) IsValid() bool {
	return t.KeyLength() >= 0
}

// IsInsecure reports whether data under t is stored without protection.
func (t CipherType) IsInsecure() bool {
	return t == CipherNone
}

func (t CipherType) String() string {
	return string(t)
}

// ParseCipherType maps a cipher name (case-insensitive) to its type.
func ParseCipherType(name string) (CipherType, error) {
	t := CipherType(strings.ToUpper(strings.TrimSpace(name)))
	if !t.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCipher, name)
	}
	return t, nil
}
