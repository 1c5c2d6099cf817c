// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Sentinel errors of the persistence cipher layer. They are never retried
// or recovered here; callers match them with [errors.Is] and decide per
// record whether to skip or abort.
var (
	// ErrInvalidKey is returned at construction time when the raw secret
	// length does not match the cipher type. Secrets are never padded or
	// truncated.
	ErrInvalidKey = errors.New("invalid key")

	// ErrInvalidNonce is returned when the nonce length differs from the
	// fixed length of the algorithm. It is checked before any cryptographic
	// work.
	ErrInvalidNonce = errors.New("invalid nonce")

	// ErrAuthenticationFailed is returned when a ciphertext does not verify.
	// Wrong key, wrong nonce and tampering all produce this same error.
	ErrAuthenticationFailed = errors.New("mac check failed")

	// ErrUnsupportedCipher is returned for cipher type names outside the
	// declared set.
	ErrUnsupportedCipher = errors.New("unsupported cipher")

	// ErrInvalidArgument is returned when a required input is missing.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrRandomSource is returned when the system random source fails.
	ErrRandomSource = errors.New("cannot read random bytes")
)

// IsCryptoError reports whether err carries one of the sentinel errors of
// this package.
func IsCryptoError(err error) bool {
	return errors.Is(err, ErrInvalidKey) ||
		errors.Is(err, ErrInvalidNonce) ||
		errors.Is(err, ErrAuthenticationFailed) ||
		errors.Is(err, ErrUnsupportedCipher) ||
		errors.Is(err, ErrInvalidArgument) ||
		errors.Is(err, ErrRandomSource)
}
