package chat

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	domainchat "github.com/teamdesk/teamdesk/internal/domain/chat"
)

var ErrNotFound = errors.New("conversation not found")

type Repository interface {
	CreateConversation(ctx context.Context, c domainchat.Conversation) (domainchat.Conversation, error)
	GetConversation(ctx context.Context, id uuid.UUID) (domainchat.Conversation, error)
	// ListConversations returns a team's conversations most recently active first.
	ListConversations(ctx context.Context, teamID uuid.UUID) ([]domainchat.Conversation, error)
	// TouchConversation updates the activity marker shown in the sidebar.
	TouchConversation(ctx context.Context, id uuid.UUID, lastMessageAt time.Time, preview string) error

	CreateMessage(ctx context.Context, m domainchat.Message) (domainchat.Message, error)
	// ListMessages returns a conversation's messages oldest-first.
	ListMessages(ctx context.Context, conversationID uuid.UUID) ([]domainchat.Message, error)
}
