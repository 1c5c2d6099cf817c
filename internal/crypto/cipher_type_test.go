package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCipherType(t *testing.T) {
	tests := []struct {
		in      string
		want    CipherType
		wantErr bool
	}{
		{in: "NONE", want: CipherNone},
		{in: "aes_gcm_siv_128", want: CipherAESGCMSIV128},
		{in: " AES_GCM_SIV_256 ", want: CipherAESGCMSIV256},
		{in: "AES_GCM_SIV_192", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCipherType(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnsupportedCipher)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCipherType_Properties(t *testing.T) {
	assert.Equal(t, 0, CipherNone.KeyLength())
	assert.Equal(t, 16, CipherAESGCMSIV128.KeyLength())
	assert.Equal(t, 32, CipherAESGCMSIV256.KeyLength())
	assert.Equal(t, -1, CipherType("X").KeyLength())

	assert.Equal(t, 0, CipherNone.NonceLength())
	assert.Equal(t, 12, CipherAESGCMSIV128.NonceLength())
	assert.Equal(t, 12, CipherAESGCMSIV256.NonceLength())

	assert.True(t, CipherNone.IsInsecure())
	assert.False(t, CipherAESGCMSIV256.IsInsecure())
	assert.False(t, CipherType("X").IsValid())
}
