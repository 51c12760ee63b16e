package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cratenotes/cratenotes/utils"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := utils.GenerateToken("s3cret", 42, "alice", time.Hour)
	require.NoError(t, err)

	claims, err := utils.ParseToken("s3cret", token)
	require.NoError(t, err)
	require.Equal(t, uint(42), claims.UserID)
	require.Equal(t, "alice", claims.Username)
}

func TestParseTokenExpired(t *testing.T) {
	token, err := utils.GenerateToken("s3cret", 42, "alice", -time.Minute)
	require.NoError(t, err)

	_, err = utils.ParseToken("s3cret", token)
	require.Error(t, err)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := utils.GenerateToken("s3cret", 42, "alice", time.Hour)
	require.NoError(t, err)

	_, err = utils.ParseToken("another-secret", token)
	require.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := utils.ParseToken("s3cret", "not.a.token")
	require.Error(t, err)
}
