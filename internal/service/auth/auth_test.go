package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamdesk/teamdesk/internal/adapter/memory"
	tokenadapter "github.com/teamdesk/teamdesk/internal/adapter/token"
	domainmember "github.com/teamdesk/teamdesk/internal/domain/member"
	"github.com/teamdesk/teamdesk/internal/service/auth"
)

func newSvc(t *testing.T) (*auth.Service, *memory.MemberRepo, *tokenadapter.JWT) {
	t.Helper()
	members := memory.NewMemberRepo()
	tokens := tokenadapter.NewJWT("test-secret", time.Hour)
	return auth.NewService(members, tokens), members, tokens
}

func TestRegister_FoundsOwnTeam(t *testing.T) {
	svc, _, tokens := newSvc(t)

	m, token, err := svc.Register(context.Background(), "Ada", "Ada@Example.com ", "hunter2")
	require.NoError(t, err)

	assert.Equal(t, "Ada", m.Name)
	assert.Equal(t, "ada@example.com", m.Email, "email is normalized")
	assert.Equal(t, m.ID, m.TeamID, "registrant founds their own team")
	assert.Equal(t, domainmember.RoleAdmin, m.Role)
	assert.NotEqual(t, "hunter2", m.PasswordHash)

	id, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, m.ID, id)
}

func TestRegister_MissingFields(t *testing.T) {
	svc, _, _ := newSvc(t)
	ctx := context.Background()

	for _, tt := range []struct{ name, email, password string }{
		{"", "a@example.com", "pw"},
		{"Ada", "", "pw"},
		{"Ada", "a@example.com", ""},
	} {
		_, _, err := svc.Register(ctx, tt.name, tt.email, tt.password)
		assert.ErrorIs(t, err, auth.ErrMissingFields)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _, _ := newSvc(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "Ada", "ada@example.com", "pw")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, "Imposter", "ADA@example.com", "pw")
	assert.ErrorIs(t, err, auth.ErrEmailTaken, "email comparison is case-insensitive")
}

func TestLogin(t *testing.T) {
	svc, _, _ := newSvc(t)
	ctx := context.Background()

	registered, _, err := svc.Register(ctx, "Ada", "ada@example.com", "hunter2")
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		m, token, err := svc.Login(ctx, " Ada@Example.com", "hunter2")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, m.ID)
		assert.NotEmpty(t, token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "ada@example.com", "wrong")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "nobody@example.com", "hunter2")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("blank password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "ada@example.com", "")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestProfile(t *testing.T) {
	svc, _, _ := newSvc(t)
	ctx := context.Background()

	registered, _, err := svc.Register(ctx, "Ada", "ada@example.com", "pw")
	require.NoError(t, err)

	m, err := svc.Profile(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, registered.Email, m.Email)
}
