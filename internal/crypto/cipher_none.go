package crypto

import "github.com/MKhiriev/go-crypt-keeper/models"

// noneCipher passes data through unchanged. Nonces are ignored.
type noneCipher struct{}

func (noneCipher) Encrypt(plainText string, _ models.BinaryString) (models.BinaryString, error) {
	return models.BinaryStringFromText(plainText, models.DefaultEncoding), nil
}

func (noneCipher) EncryptAs(plainText string, _ models.BinaryString, encoding models.Encoding) (models.BinaryString, error) {
	return models.BinaryStringFromText(plainText, encoding), nil
}

func (noneCipher) Decrypt(cipherText, _ models.BinaryString) (string, error) {
	return string(cipherText.Bytes()), nil
}

func (noneCipher) CipherType() CipherType {
	return CipherNone
}
