package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"jobify/api/internal/models"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := IssueSessionToken("secret", "user-1", models.UserRoleAdmin, time.Hour)
	require.NoError(t, err)

	claims, err := ParseSessionToken(token, "secret")
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, models.UserRoleAdmin, claims.Role)
	require.NotEmpty(t, claims.ID)
	require.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestSessionTokenUniqueIDs(t *testing.T) {
	first, err := IssueSessionToken("secret", "user-1", models.UserRoleUser, time.Hour)
	require.NoError(t, err)
	second, err := IssueSessionToken("secret", "user-1", models.UserRoleUser, time.Hour)
	require.NoError(t, err)

	firstClaims, err := ParseSessionToken(first, "secret")
	require.NoError(t, err)
	secondClaims, err := ParseSessionToken(second, "secret")
	require.NoError(t, err)
	require.NotEqual(t, firstClaims.ID, secondClaims.ID)
}

func TestParseSessionTokenWrongSecret(t *testing.T) {
	token, err := IssueSessionToken("secret", "user-1", models.UserRoleUser, time.Hour)
	require.NoError(t, err)

	_, err = ParseSessionToken(token, "other-secret")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseSessionTokenExpired(t *testing.T) {
	token, err := IssueSessionToken("secret", "user-1", models.UserRoleUser, -time.Minute)
	require.NoError(t, err)

	_, err = ParseSessionToken(token, "secret")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseSessionTokenGarbage(t *testing.T) {
	_, err := ParseSessionToken("not.a.jwt", "secret")
	require.ErrorIs(t, err, ErrInvalidToken)
}
