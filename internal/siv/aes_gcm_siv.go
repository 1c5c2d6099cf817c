// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package siv implements AES-GCM-SIV (RFC 8452) as a [cipher.AEAD] that
// takes the nonce from the caller.
//
// AES-GCM-SIV derives a fresh authentication key and encryption key from
// the key-generating key for every nonce, authenticates with POLYVAL and
// uses the resulting tag as the initial counter. Reusing a (key, nonce)
// pair only reveals whether two plaintexts were equal.
//
// The returned AEAD holds nothing but the expanded key-generating key and is
// safe for concurrent use.
package siv

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/subtle"
	"encoding/binary"
	"errors"
)

const (
	// NonceSize is the only nonce length AES-GCM-SIV accepts.
	NonceSize = 12
	// TagSize is the length of the authentication tag appended by Seal.
	TagSize = 16

	blockSize = aes.BlockSize

	// maxPlaintextSize is 2^36 bytes as required by RFC 8452.
	maxPlaintextSize = 1 << 36
)

var (
	// ErrKeySize is returned for keys that are neither 16 nor 32 bytes long.
	ErrKeySize = errors.New("siv: key must be 16 or 32 bytes")

	// ErrOpen is returned when a ciphertext fails authentication. It carries
	// no detail on purpose: wrong key, wrong nonce and tampering look the same.
	ErrOpen = errors.New("siv: message authentication failed")
)

type aesGCMSIV struct {
	// keyGenerating is the block cipher under the caller's key; it is only
	// used to derive the per-nonce keys.
	keyGenerating cipher.Block
	keySize       int
}

// NewAESGCMSIV returns AES-GCM-SIV keyed with a 16-byte (AES-128) or
// 32-byte (AES-256) key.
func NewAESGCMSIV(key []byte) (cipher.AEAD, error) {
	if len(key) != 16 && len(key) != 32 {
		return nil, ErrKeySize
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	return &aesGCMSIV{keyGenerating: block, keySize: len(key)}, nil
}

func (a *aesGCMSIV) NonceSize() int { return NonceSize }

func (a *aesGCMSIV) Overhead() int { return TagSize }

// Seal encrypts and authenticates plaintext and appends ciphertext‖tag to
// dst. Like the standard library AEADs it panics on a wrong nonce length;
// callers validate the nonce first.
func (a *aesGCMSIV) Seal(dst, nonce, plaintext, additionalData []byte) []byte {
	if len(nonce) != NonceSize {
		panic("siv: incorrect nonce length given to AES-GCM-SIV")
	}
	if uint64(len(plaintext)) > maxPlaintextSize {
		panic("siv: message too large for AES-GCM-SIV")
	}

	authKey, encBlock := a.deriveKeys(nonce)
	tag := computeTag(authKey[:], encBlock, nonce, plaintext, additionalData)

	ret, out := sliceForAppend(dst, len(plaintext)+TagSize)
	ctr(encBlock, tag[:], out[:len(plaintext)], plaintext)
	copy(out[len(plaintext):], tag[:])

	return ret
}

// Open authenticates and decrypts ciphertext‖tag and appends the plaintext
// to dst. On failure nothing is appended and [ErrOpen] is returned.
func (a *aesGCMSIV) Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	if len(nonce) != NonceSize {
		panic("siv: incorrect nonce length given to AES-GCM-SIV")
	}
	if len(ciphertext) < TagSize || uint64(len(ciphertext)) > maxPlaintextSize+TagSize {
		return nil, ErrOpen
	}

	tag := ciphertext[len(ciphertext)-TagSize:]
	body := ciphertext[:len(ciphertext)-TagSize]

	authKey, encBlock := a.deriveKeys(nonce)

	ret, out := sliceForAppend(dst, len(body))
	ctr(encBlock, tag, out, body)

	expected := computeTag(authKey[:], encBlock, nonce, out, additionalData)
	if subtle.ConstantTimeCompare(expected[:], tag) != 1 {
		clear(out)
		return nil, ErrOpen
	}

	return ret, nil
}

// deriveKeys computes the per-nonce message authentication key (16 bytes)
// and message encryption key (16 or 32 bytes). Each key half is the first 8
// bytes of AES(K, LE32(i) ‖ nonce).
func (a *aesGCMSIV) deriveKeys(nonce []byte) ([16]byte, cipher.Block) {
	var (
		in, out  [blockSize]byte
		authKey  [16]byte
		material [32]byte
	)
	copy(in[4:], nonce)

	rounds := 4
	if a.keySize == 32 {
		rounds = 6
	}

	for i := 0; i < rounds; i++ {
		binary.LittleEndian.PutUint32(in[:4], uint32(i))
		a.keyGenerating.Encrypt(out[:], in[:])
		if i < 2 {
			copy(authKey[i*8:], out[:8])
		} else {
			copy(material[(i-2)*8:], out[:8])
		}
	}

	// aes.NewCipher only fails on bad key sizes; 16 and 32 are both valid.
	encBlock, _ := aes.NewCipher(material[:a.keySize])
	clear(material[:])

	return authKey, encBlock
}

// computeTag returns AES(encKey, POLYVAL(authKey, AAD, plaintext, lengths)
// xor nonce, with the top bit cleared).
func computeTag(authKey []byte, encBlock cipher.Block, nonce, plaintext, additionalData []byte) [TagSize]byte {
	p := newPolyval(authKey)
	p.update(additionalData)
	p.update(plaintext)

	var lengths [blockSize]byte
	binary.LittleEndian.PutUint64(lengths[:8], uint64(len(additionalData))*8)
	binary.LittleEndian.PutUint64(lengths[8:], uint64(len(plaintext))*8)
	p.update(lengths[:])

	var s [blockSize]byte
	p.sum(s[:])
	for i := 0; i < NonceSize; i++ {
		s[i] ^= nonce[i]
	}
	s[15] &= 0x7f

	var tag [TagSize]byte
	encBlock.Encrypt(tag[:], s[:])
	return tag
}

// ctr XORs src with the AES-CTR keystream starting at tag with its top bit
// set. Only the first 32 bits of the counter block are incremented, little
// endian, wrapping.
func ctr(block cipher.Block, tag, dst, src []byte) {
	var counter, keystream [blockSize]byte
	copy(counter[:], tag)
	counter[15] |= 0x80

	for len(src) > 0 {
		block.Encrypt(keystream[:], counter[:])
		n := subtle.XORBytes(dst, src, keystream[:])
		dst, src = dst[n:], src[n:]

		binary.LittleEndian.PutUint32(counter[:4], binary.LittleEndian.Uint32(counter[:4])+1)
	}
}

// sliceForAppend extends in by n bytes, reusing its capacity when possible,
// and returns the whole slice plus the n-byte tail.
func sliceForAppend(in []byte, n int) (head, tail []byte) {
	if total := len(in) + n; cap(in) >= total {
		head = in[:total]
	} else {
		head = make([]byte, total)
		copy(head, in)
	}
	tail = head[len(in):]
	return
}
