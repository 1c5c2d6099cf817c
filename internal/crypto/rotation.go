// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"github.com/MKhiriev/go-crypt-keeper/models"
)

// RotateOption tunes a single [RotationStrategy.Rotate] call.
type RotateOption func(*rotateOptions)

type rotateOptions struct {
	newNonce       models.BinaryString
	targetEncoding models.Encoding
}

// WithNewNonce encrypts the rotated value under nonce instead of reusing
// the current one.
func WithNewNonce(nonce models.BinaryString) RotateOption {
	return func(o *rotateOptions) {
		o.newNonce = nonce
	}
}

// WithTargetEncoding renders the rotated ciphertext in encoding instead of
// the encoding of the input ciphertext.
func WithTargetEncoding(encoding models.Encoding) RotateOption {
	return func(o *rotateOptions) {
		o.targetEncoding = encoding
	}
}

type rotationStrategy struct {
	current PersistenceCipher
	next    PersistenceCipher

	secretRotation bool
}

// NewNonceRotationStrategy keeps algorithm and secret and only lets the
// nonce change.
func NewNonceRotationStrategy(secret models.BinaryString, cipherType CipherType) (RotationStrategy, error) {
	return NewCipherRotationStrategy(secret, cipherType, secret, cipherType)
}

// NewSecretRotationStrategy keeps the algorithm and moves to newSecret.
func NewSecretRotationStrategy(currentSecret, newSecret models.BinaryString, cipherType CipherType) (RotationStrategy, error) {
	return NewCipherRotationStrategy(currentSecret, cipherType, newSecret, cipherType)
}

// NewCipherRotationStrategy moves from (currentType, currentSecret) to
// (newType, newSecret). Both sides are built through [NewCipher], so an
// invalid secret fails here and not on the first record.
func NewCipherRotationStrategy(currentSecret models.BinaryString, currentType CipherType,
	newSecret models.BinaryString, newType CipherType,
) (RotationStrategy, error) {
	current, err := NewCipher(currentType, currentSecret)
	if err != nil {
		return nil, fmt.Errorf("current cipher: %w", err)
	}

	next, err := NewCipher(newType, newSecret)
	if err != nil {
		return nil, fmt.Errorf("new cipher: %w", err)
	}

	return &rotationStrategy{
		current:        current,
		next:           next,
		secretRotation: !currentSecret.Equal(newSecret),
	}, nil
}

// Rotate implements [RotationStrategy].
//
// Without options the current nonce is reused, which AES-GCM-SIV tolerates,
// and the output keeps the encoding of cipherText. Decryption errors are
// returned unchanged; a broken record is never skipped silently.
func (r *rotationStrategy) Rotate(cipherText, currentNonce models.BinaryString, opts ...RotateOption) (models.BinaryString, error) {
	if cipherText.IsZero() {
		return models.BinaryString{}, fmt.Errorf("%w: cipher text is missing", ErrInvalidArgument)
	}
	if currentNonce.IsZero() {
		return models.BinaryString{}, fmt.Errorf("%w: current nonce is missing", ErrInvalidArgument)
	}

	var o rotateOptions
	for _, opt := range opts {
		opt(&o)
	}

	plainText, err := r.current.Decrypt(cipherText, currentNonce)
	if err != nil {
		return models.BinaryString{}, err
	}

	nonce := currentNonce
	if !o.newNonce.IsZero() {
		nonce = o.newNonce
	}

	encoding := cipherText.Encoding()
	if o.targetEncoding.IsValid() {
		encoding = o.targetEncoding
	}

	return r.next.EncryptAs(plainText, nonce, encoding)
}

func (r *rotationStrategy) CurrentCipherType() CipherType {
	return r.current.CipherType()
}

func (r *rotationStrategy) NewCipherType() CipherType {
	return r.next.CipherType()
}

func (r *rotationStrategy) IsSecretRotation() bool {
	return r.secretRotation
}

func (r *rotationStrategy) IsCipherRotation() bool {
	return r.current.CipherType() != r.next.CipherType()
}
