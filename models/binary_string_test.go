package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBinaryString(t *testing.T) {
	tests := []struct {
		name     string
		encoded  string
		encoding Encoding
		want     []byte
		wantErr  error
	}{
		{name: "base64", encoded: "aWlp", encoding: EncodingBase64, want: []byte("iii")},
		{name: "hex", encoded: "696969", encoding: EncodingHex, want: []byte("iii")},
		{name: "plain", encoded: "iii", encoding: EncodingPlain, want: []byte("iii")},
		{name: "empty base64", encoded: "", encoding: EncodingBase64, want: []byte{}},
		{name: "broken base64", encoded: "a$b", encoding: EncodingBase64, wantErr: ErrDecodingBinaryString},
		{name: "odd hex", encoded: "abc", encoding: EncodingHex, wantErr: ErrDecodingBinaryString},
		{name: "unknown encoding", encoded: "aWlp", encoding: Encoding(9), wantErr: ErrUnknownEncoding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBinaryString(tt.encoded, tt.encoding)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, got.IsZero())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Bytes())
			assert.Equal(t, tt.encoding, got.Encoding())
			assert.Equal(t, tt.encoded, got.String())
			assert.False(t, got.IsZero())
		})
	}
}

func TestBinaryString_Immutable(t *testing.T) {
	raw := []byte("secret")
	b := NewBinaryString(raw, EncodingPlain)

	raw[0] = 'X'
	assert.Equal(t, "secret", b.String())

	out := b.Bytes()
	out[0] = 'Y'
	assert.Equal(t, "secret", b.String())
}

func TestBinaryString_WithEncodingKeepsBytes(t *testing.T) {
	b := BinaryStringFromText("iii", EncodingBase64)
	h := b.WithEncoding(EncodingHex)

	assert.Equal(t, "aWlp", b.String())
	assert.Equal(t, "696969", h.String())
	assert.True(t, b.Equal(h))
}

func TestBinaryString_ZeroAndEmpty(t *testing.T) {
	var zero BinaryString
	empty := NewBinaryString(nil, EncodingBase64)

	assert.True(t, zero.IsZero())
	assert.False(t, empty.IsZero())
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, "", empty.String())
}

func TestBinaryString_InvalidEncodingFallsBack(t *testing.T) {
	b := NewBinaryString([]byte("iii"), Encoding(0))
	assert.Equal(t, DefaultEncoding, b.Encoding())
}

func TestBinaryString_GoStringHidesContent(t *testing.T) {
	b := BinaryStringFromText("top secret", EncodingPlain)
	s := fmt.Sprintf("%#v", b)

	assert.NotContains(t, s, "top secret")
	assert.Contains(t, s, "len: 10")
}

func TestParseEncoding(t *testing.T) {
	for name, want := range map[string]Encoding{
		"":       EncodingBase64,
		"base64": EncodingBase64,
		"HEX":    EncodingHex,
		"Plain":  EncodingPlain,
	} {
		got, err := ParseEncoding(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseEncoding("base32")
	assert.ErrorIs(t, err, ErrUnknownEncoding)
}
