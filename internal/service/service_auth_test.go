package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-crypt-keeper/internal/config"
	"github.com/MKhiriev/go-crypt-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthConfig() config.App {
	return config.App{
		TokenSignKey:  "sign-key",
		TokenIssuer:   "go-crypt-keeper",
		TokenDuration: time.Hour,
	}
}

func TestAuthService_CreateAndParseToken(t *testing.T) {
	svc := NewAuthService(testAuthConfig(), logger.Nop())
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, " alice ")
	require.NoError(t, err)
	require.NotEmpty(t, token.String())

	parsed, err := svc.ParseToken(ctx, token.String())
	require.NoError(t, err)
	assert.Equal(t, "alice", parsed.Operator)
	assert.Equal(t, "go-crypt-keeper", parsed.Issuer)
}

func TestAuthService_CreateToken_BlankOperator(t *testing.T) {
	svc := NewAuthService(testAuthConfig(), logger.Nop())

	_, err := svc.CreateToken(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_CreateToken_NoSignKey(t *testing.T) {
	cfg := testAuthConfig()
	cfg.TokenSignKey = ""
	svc := NewAuthService(cfg, logger.Nop())

	_, err := svc.CreateToken(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseToken_Rejections(t *testing.T) {
	ctx := context.Background()
	issuer := NewAuthService(testAuthConfig(), logger.Nop())
	token, err := issuer.CreateToken(ctx, "alice")
	require.NoError(t, err)

	otherKey := testAuthConfig()
	otherKey.TokenSignKey = "another-key"

	otherIssuer := testAuthConfig()
	otherIssuer.TokenIssuer = "someone-else"

	for name, cfg := range map[string]config.App{"wrong key": otherKey, "wrong issuer": otherIssuer} {
		t.Run(name, func(t *testing.T) {
			_, err := NewAuthService(cfg, logger.Nop()).ParseToken(ctx, token.String())
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}

	_, err = issuer.ParseToken(ctx, "not.a.jwt")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	cfg := testAuthConfig()
	cfg.TokenDuration = -time.Minute
	svc := NewAuthService(cfg, logger.Nop())
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, "alice")
	require.NoError(t, err)

	_, err = svc.ParseToken(ctx, token.String())
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
