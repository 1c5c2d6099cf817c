// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// Encoding names the text representation used when a [BinaryString] is
// rendered with String. It is presentation only and never takes part in
// equality.
type Encoding int

const (
	// EncodingBase64 renders bytes with standard padded base64. It is the
	// default encoding for ciphertexts, nonces and secrets.
	EncodingBase64 Encoding = iota + 1

	// EncodingHex renders bytes as lowercase hexadecimal.
	EncodingHex

	// EncodingPlain renders bytes as-is, interpreted as UTF-8 text.
	EncodingPlain
)

// DefaultEncoding is used when a caller does not pick an encoding.
const DefaultEncoding = EncodingBase64

var (
	// ErrUnknownEncoding is returned when an encoding name or value is not one
	// of BASE64, HEX or PLAIN.
	ErrUnknownEncoding = errors.New("unknown binary string encoding")

	// ErrDecodingBinaryString is returned when pre-encoded text cannot be
	// decoded with the declared encoding.
	ErrDecodingBinaryString = errors.New("cannot decode binary string")
)

// String returns the canonical upper-case name of the encoding.
func (e Encoding) String() string {
	switch e {
	case EncodingBase64:
		return "BASE64"
	case EncodingHex:
		return "HEX"
	case EncodingPlain:
		return "PLAIN"
	default:
		return fmt.Sprintf("Encoding(%d)", int(e))
	}
}

// IsValid reports whether e is one of the declared encodings.
func (e Encoding) IsValid() bool {
	return e == EncodingBase64 || e == EncodingHex || e == EncodingPlain
}

// ParseEncoding maps an encoding name (case-insensitive) to its [Encoding].
// An empty name yields [DefaultEncoding].
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "":
		return DefaultEncoding, nil
	case "BASE64":
		return EncodingBase64, nil
	case "HEX":
		return EncodingHex, nil
	case "PLAIN":
		return EncodingPlain, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
}

// BinaryString is an immutable byte sequence tagged with the text encoding
// it is rendered in. Ciphertexts, nonces and secrets cross API and storage
// boundaries as BinaryString so raw bytes are never encoded twice.
//
// The zero value is the "missing" binary string: IsZero reports true and
// operations that require input reject it.
type BinaryString struct {
	raw      []byte
	encoding Encoding
}

// NewBinaryString wraps a copy of raw. An invalid encoding falls back to
// [DefaultEncoding]; a nil slice is stored as an empty one.
func NewBinaryString(raw []byte, encoding Encoding) BinaryString {
	if !encoding.IsValid() {
		encoding = DefaultEncoding
	}

	cp := make([]byte, len(raw))
	copy(cp, raw)

	return BinaryString{raw: cp, encoding: encoding}
}

// BinaryStringFromText uses the UTF-8 bytes of text as raw content. The
// text is not decoded; encoding only controls how String renders it.
func BinaryStringFromText(text string, encoding Encoding) BinaryString {
	return NewBinaryString([]byte(text), encoding)
}

// ParseBinaryString decodes encoded according to encoding and keeps that
// encoding as the declared one.
func ParseBinaryString(encoded string, encoding Encoding) (BinaryString, error) {
	var (
		raw []byte
		err error
	)

	switch encoding {
	case EncodingBase64:
		raw, err = base64.StdEncoding.DecodeString(encoded)
	case EncodingHex:
		raw, err = hex.DecodeString(encoded)
	case EncodingPlain:
		raw = []byte(encoded)
	default:
		return BinaryString{}, fmt.Errorf("%w: %d", ErrUnknownEncoding, int(encoding))
	}
	if err != nil {
		return BinaryString{}, fmt.Errorf("%w: %w", ErrDecodingBinaryString, err)
	}

	return BinaryString{raw: raw, encoding: encoding}, nil
}

// ParseBase64 is shorthand for ParseBinaryString(encoded, EncodingBase64).
func ParseBase64(encoded string) (BinaryString, error) {
	return ParseBinaryString(encoded, EncodingBase64)
}

// ParseHex is shorthand for ParseBinaryString(encoded, EncodingHex).
func ParseHex(encoded string) (BinaryString, error) {
	return ParseBinaryString(encoded, EncodingHex)
}

// Bytes returns a copy of the raw bytes.
func (b BinaryString) Bytes() []byte {
	cp := make([]byte, len(b.raw))
	copy(cp, b.raw)
	return cp
}

// Len returns the number of raw bytes.
func (b BinaryString) Len() int {
	return len(b.raw)
}

// Encoding returns the declared encoding.
func (b BinaryString) Encoding() Encoding {
	return b.encoding
}

// IsZero reports whether b is the zero value, i.e. no binary string was
// supplied at all. An empty but constructed BinaryString is not zero.
func (b BinaryString) IsZero() bool {
	return b.raw == nil && b.encoding == 0
}

// WithEncoding returns a BinaryString with the same bytes rendered in
// encoding.
func (b BinaryString) WithEncoding(encoding Encoding) BinaryString {
	return NewBinaryString(b.raw, encoding)
}

// Equal compares raw bytes only.
func (b BinaryString) Equal(other BinaryString) bool {
	return bytes.Equal(b.raw, other.raw)
}

// String renders the raw bytes in the declared encoding.
func (b BinaryString) String() string {
	switch b.encoding {
	case EncodingHex:
		return hex.EncodeToString(b.raw)
	case EncodingPlain:
		return string(b.raw)
	default:
		return base64.StdEncoding.EncodeToString(b.raw)
	}
}

// GoString hides the content so secrets never leak through %#v.
func (b BinaryString) GoString() string {
	return fmt.Sprintf("models.BinaryString{len: %d, encoding: %s}", len(b.raw), b.encoding)
}
