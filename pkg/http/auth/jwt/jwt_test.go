package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenTokenHonorsConfiguredDurations(t *testing.T) {
	secret := "test-secret"

	aToken, rToken, err := GenToken("u1", []byte(secret), 2*time.Hour, 168*time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, rToken)

	claims, err := ParseToken(aToken, secret)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserId)

	// 过期时间就是配置的时长，不做单位换算
	remaining := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, remaining, time.Hour)
	assert.LessOrEqual(t, remaining, 2*time.Hour)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	secret := "test-secret"

	aToken, _, err := GenToken("u1", []byte(secret), -time.Minute, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(aToken, secret)
	assert.Error(t, err)
}
