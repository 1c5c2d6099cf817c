package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo_String(t *testing.T) {
	tests := []struct {
		name string
		info AppBuildInfo
		want string
	}{
		{name: "all values", info: NewAppBuildInfo("v1.2.0", "2026-10-01", "abc123"), want: "v1.2.0 (abc123, 2026-10-01)"},
		{name: "version only", info: NewAppBuildInfo("v1.2.0", "", "N/A"), want: "v1.2.0"},
		{name: "nothing linked", info: NewAppBuildInfo("N/A", "N/A", "N/A"), want: "N/A"},
		{name: "commit without version", info: NewAppBuildInfo("", "", "abc123"), want: "N/A (abc123)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.String())
		})
	}
}

func TestNewAppBuildInfo_DropsNotAvailable(t *testing.T) {
	info := NewAppBuildInfo(" N/A ", "2026-10-01", "N/A")

	assert.Empty(t, info.Version())
	assert.Equal(t, "2026-10-01", info.Date())
	assert.Empty(t, info.Commit())
}
