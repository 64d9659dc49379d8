package utils

import (
	"testing"
	"time"

	"coursehub/backend/config"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTTL(t *testing.T) {
	assert.Equal(t, 72*time.Hour, SessionTTL(false))
	assert.Equal(t, 30*24*time.Hour, SessionTTL(true))
}

func TestGenerateJWTTokenRememberExtendsExpiry(t *testing.T) {
	cfg := &config.Config{JWTSecret: "testsecret"}

	expOf := func(raw string) time.Time {
		token, err := jwt.Parse(raw, func(*jwt.Token) (interface{}, error) {
			return []byte(cfg.JWTSecret), nil
		})
		require.NoError(t, err)
		claims, ok := token.Claims.(jwt.MapClaims)
		require.True(t, ok)
		exp, ok := claims["exp"].(float64)
		require.True(t, ok)
		return time.Unix(int64(exp), 0)
	}

	short, err := GenerateJWTToken(7, false, cfg)
	require.NoError(t, err)
	long, err := GenerateJWTToken(7, true, cfg)
	require.NoError(t, err)

	now := time.Now()
	assert.WithinDuration(t, now.Add(72*time.Hour), expOf(short), time.Minute)
	assert.WithinDuration(t, now.Add(30*24*time.Hour), expOf(long), time.Minute)
}
