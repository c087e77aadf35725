package token_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tokenadapter "github.com/teamdesk/teamdesk/internal/adapter/token"
	porttoken "github.com/teamdesk/teamdesk/internal/port/token"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	j := tokenadapter.NewJWT("secret", time.Hour)
	id := uuid.New()

	raw, err := j.Issue(id)
	require.NoError(t, err)

	got, err := j.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestVerify_Rejections(t *testing.T) {
	j := tokenadapter.NewJWT("secret", time.Hour)

	t.Run("garbage", func(t *testing.T) {
		_, err := j.Verify("not-a-token")
		assert.ErrorIs(t, err, porttoken.ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := tokenadapter.NewJWT("other-secret", time.Hour)
		raw, err := other.Issue(uuid.New())
		require.NoError(t, err)

		_, err = j.Verify(raw)
		assert.ErrorIs(t, err, porttoken.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		stale := tokenadapter.NewJWT("secret", -time.Minute)
		raw, err := stale.Issue(uuid.New())
		require.NoError(t, err)

		_, err = j.Verify(raw)
		assert.ErrorIs(t, err, porttoken.ErrInvalidToken)
	})
}
