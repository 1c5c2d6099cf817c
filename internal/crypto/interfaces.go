package crypto

import "github.com/MKhiriev/go-crypt-keeper/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PersistenceCipher encrypts text for storage at rest and decrypts it back.
//
// An instance is bound to one cipher type and one validated secret and holds
// no other state, so it is safe for concurrent use.
type PersistenceCipher interface {
	// Encrypt encrypts plainText under nonce and returns ciphertext‖tag
	// rendered as base64.
	Encrypt(plainText string, nonce models.BinaryString) (models.BinaryString, error)

	// EncryptAs is Encrypt with an explicit output encoding.
	EncryptAs(plainText string, nonce models.BinaryString, encoding models.Encoding) (models.BinaryString, error)

	// Decrypt verifies and decrypts cipherText. On any verification failure
	// it returns [ErrAuthenticationFailed] and no plaintext.
	Decrypt(cipherText, nonce models.BinaryString) (string, error)

	// CipherType reports which algorithm the cipher implements.
	CipherType() CipherType
}

// RotationStrategy re-encrypts records from a current cipher to a new one.
// One strategy serves a whole rotation campaign and may be used from many
// goroutines at once.
type RotationStrategy interface {
	// Rotate decrypts cipherText with the current cipher and encrypts the
	// result with the new one. See [WithNewNonce] and [WithTargetEncoding].
	Rotate(cipherText, currentNonce models.BinaryString, opts ...RotateOption) (models.BinaryString, error)

	CurrentCipherType() CipherType
	NewCipherType() CipherType

	// IsSecretRotation is true unless both sides use the same secret.
	IsSecretRotation() bool

	// IsCipherRotation is true when the two sides use different algorithms.
	IsCipherRotation() bool
}

// NonceGenerator produces fresh nonces for new encryptions.
type NonceGenerator interface {
	GenerateNonce() (models.BinaryString, error)
}
