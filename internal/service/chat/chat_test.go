package chat_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamdesk/teamdesk/internal/adapter/memory"
	domainmember "github.com/teamdesk/teamdesk/internal/domain/member"
	chatsvc "github.com/teamdesk/teamdesk/internal/service/chat"
	"github.com/teamdesk/teamdesk/internal/testutil"
)

func newSvc(t *testing.T) (*chatsvc.Service, *memory.ChatRepo, *memory.MemberRepo) {
	t.Helper()
	repo := memory.NewChatRepo()
	members := memory.NewMemberRepo()
	return chatsvc.NewService(repo, members), repo, members
}

func TestCreateConversation(t *testing.T) {
	svc, _, members := newSvc(t)
	ctx := context.Background()

	admin := testutil.SeedFounder(t, members, "ada")
	teammate := testutil.SeedMember(t, members, admin.TeamID, "bob", domainmember.RoleMember)

	conv, err := svc.CreateConversation(ctx, admin.ID, "standup", []uuid.UUID{admin.ID, teammate.ID})
	require.NoError(t, err)
	assert.Equal(t, admin.TeamID, conv.TeamID)
	assert.Equal(t, "standup", conv.Title)
	assert.Len(t, conv.MemberIDs, 2)
}

func TestCreateConversation_NoMembers(t *testing.T) {
	svc, _, members := newSvc(t)
	admin := testutil.SeedFounder(t, members, "ada")

	_, err := svc.CreateConversation(context.Background(), admin.ID, "empty", nil)
	assert.ErrorIs(t, err, chatsvc.ErrNoMembers)
}

func TestPostMessage_TouchesConversation(t *testing.T) {
	svc, _, members := newSvc(t)
	ctx := context.Background()

	admin := testutil.SeedFounder(t, members, "ada")
	conv, err := svc.CreateConversation(ctx, admin.ID, "standup", []uuid.UUID{admin.ID})
	require.NoError(t, err)

	msg, err := svc.PostMessage(ctx, admin.ID, conv.ID, "shipping today")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, msg.AuthorID)
	assert.Equal(t, "delivered", string(msg.Status))

	convs, err := svc.ListConversations(ctx, admin.ID)
	require.NoError(t, err)
	require.Len(t, convs, 1)
	assert.Equal(t, "shipping today", convs[0].LastMessagePreview)
	assert.Equal(t, msg.SentAt, convs[0].LastMessageAt)
}

func TestPostMessage_PreviewTruncated(t *testing.T) {
	svc, _, members := newSvc(t)
	ctx := context.Background()

	admin := testutil.SeedFounder(t, members, "ada")
	conv, err := svc.CreateConversation(ctx, admin.ID, "standup", []uuid.UUID{admin.ID})
	require.NoError(t, err)

	long := strings.Repeat("word ", 20)
	_, err = svc.PostMessage(ctx, admin.ID, conv.ID, long)
	require.NoError(t, err)

	convs, err := svc.ListConversations(ctx, admin.ID)
	require.NoError(t, err)
	require.Len(t, convs, 1)
	preview := convs[0].LastMessagePreview
	assert.True(t, strings.HasSuffix(preview, "…"), "long previews are cut at the word limit")
	assert.Len(t, strings.Fields(strings.TrimSuffix(preview, "…")), 15)
}

func TestPostMessage_Validation(t *testing.T) {
	svc, _, members := newSvc(t)
	ctx := context.Background()

	admin := testutil.SeedFounder(t, members, "ada")
	outsider := testutil.SeedFounder(t, members, "eve")
	conv, err := svc.CreateConversation(ctx, admin.ID, "standup", []uuid.UUID{admin.ID})
	require.NoError(t, err)

	t.Run("blank content", func(t *testing.T) {
		_, err := svc.PostMessage(ctx, admin.ID, conv.ID, "   ")
		assert.ErrorIs(t, err, chatsvc.ErrEmptyMessage)
	})

	t.Run("cross-team post", func(t *testing.T) {
		_, err := svc.PostMessage(ctx, outsider.ID, conv.ID, "hi")
		assert.ErrorIs(t, err, chatsvc.ErrNotParticipant)
	})
}

func TestListMessages_CrossTeamForbidden(t *testing.T) {
	svc, _, members := newSvc(t)
	ctx := context.Background()

	admin := testutil.SeedFounder(t, members, "ada")
	outsider := testutil.SeedFounder(t, members, "eve")
	conv, err := svc.CreateConversation(ctx, admin.ID, "standup", []uuid.UUID{admin.ID})
	require.NoError(t, err)

	_, err = svc.ListMessages(ctx, outsider.ID, conv.ID)
	assert.ErrorIs(t, err, chatsvc.ErrNotParticipant)
}

func TestListMessages_OldestFirst(t *testing.T) {
	svc, _, members := newSvc(t)
	ctx := context.Background()

	admin := testutil.SeedFounder(t, members, "ada")
	conv, err := svc.CreateConversation(ctx, admin.ID, "standup", []uuid.UUID{admin.ID})
	require.NoError(t, err)

	for _, text := range []string{"one", "two", "three"} {
		_, err := svc.PostMessage(ctx, admin.ID, conv.ID, text)
		require.NoError(t, err)
	}

	msgs, err := svc.ListMessages(ctx, admin.ID, conv.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "one", msgs[0].Content)
	assert.Equal(t, "three", msgs[2].Content)
}
