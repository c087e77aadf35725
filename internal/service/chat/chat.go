package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	domainchat "github.com/teamdesk/teamdesk/internal/domain/chat"
	domaindist "github.com/teamdesk/teamdesk/internal/domain/distribution"
	portchat "github.com/teamdesk/teamdesk/internal/port/chat"
	portmember "github.com/teamdesk/teamdesk/internal/port/member"
)

var (
	ErrNoMembers      = errors.New("memberIds required")
	ErrEmptyMessage   = errors.New("content required")
	ErrNotParticipant = errors.New("requester is not in this conversation's team")
)

// Service is the poll-driven team chat: clients refresh conversations and
// messages on an interval, there is no push path.
type Service struct {
	repo    portchat.Repository
	members portmember.Repository
}

func NewService(repo portchat.Repository, members portmember.Repository) *Service {
	return &Service{repo: repo, members: members}
}

func (s *Service) CreateConversation(ctx context.Context, requesterID uuid.UUID, title string, memberIDs []uuid.UUID) (domainchat.Conversation, error) {
	if len(memberIDs) == 0 {
		return domainchat.Conversation{}, ErrNoMembers
	}

	requester, err := s.members.GetByID(ctx, requesterID)
	if err != nil {
		return domainchat.Conversation{}, fmt.Errorf("load requester: %w", err)
	}

	c := domainchat.NewConversation(requester.TeamID, title, memberIDs)
	created, err := s.repo.CreateConversation(ctx, c)
	if err != nil {
		return domainchat.Conversation{}, fmt.Errorf("create conversation: %w", err)
	}
	return created, nil
}

// ListConversations returns the requester's team conversations, most recently
// active first.
func (s *Service) ListConversations(ctx context.Context, requesterID uuid.UUID) ([]domainchat.Conversation, error) {
	requester, err := s.members.GetByID(ctx, requesterID)
	if err != nil {
		return nil, fmt.Errorf("load requester: %w", err)
	}
	convs, err := s.repo.ListConversations(ctx, requester.TeamID)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	return convs, nil
}

func (s *Service) ListMessages(ctx context.Context, requesterID, conversationID uuid.UUID) ([]domainchat.Message, error) {
	if _, err := s.conversationForMember(ctx, requesterID, conversationID); err != nil {
		return nil, err
	}
	msgs, err := s.repo.ListMessages(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return msgs, nil
}

// PostMessage appends a message and refreshes the conversation's activity
// marker. The preview reuses the distribution preview rule so both sidebars
// truncate the same way.
func (s *Service) PostMessage(ctx context.Context, requesterID, conversationID uuid.UUID, content string) (domainchat.Message, error) {
	if strings.TrimSpace(content) == "" {
		return domainchat.Message{}, ErrEmptyMessage
	}

	if _, err := s.conversationForMember(ctx, requesterID, conversationID); err != nil {
		return domainchat.Message{}, err
	}

	m := domainchat.NewMessage(conversationID, requesterID, content)
	created, err := s.repo.CreateMessage(ctx, m)
	if err != nil {
		return domainchat.Message{}, fmt.Errorf("post message: %w", err)
	}

	preview := content
	if lines := domaindist.Normalize(content); len(lines) > 0 {
		preview = lines[0].Preview
	}
	if err := s.repo.TouchConversation(ctx, conversationID, created.SentAt, preview); err != nil {
		// The message is already durable; a stale sidebar preview self-heals
		// on the next post.
		slog.WarnContext(ctx, "failed to touch conversation", "conversation_id", conversationID, "error", err)
	}

	return created, nil
}

func (s *Service) conversationForMember(ctx context.Context, requesterID, conversationID uuid.UUID) (domainchat.Conversation, error) {
	requester, err := s.members.GetByID(ctx, requesterID)
	if err != nil {
		return domainchat.Conversation{}, fmt.Errorf("load requester: %w", err)
	}
	conv, err := s.repo.GetConversation(ctx, conversationID)
	if err != nil {
		return domainchat.Conversation{}, fmt.Errorf("get conversation: %w", err)
	}
	if conv.TeamID != requester.TeamID {
		return domainchat.Conversation{}, ErrNotParticipant
	}
	return conv, nil
}
