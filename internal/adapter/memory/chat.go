package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	domainchat "github.com/teamdesk/teamdesk/internal/domain/chat"
	portchat "github.com/teamdesk/teamdesk/internal/port/chat"
)

var _ portchat.Repository = (*ChatRepo)(nil)

type ChatRepo struct {
	mu            sync.RWMutex
	conversations map[uuid.UUID]domainchat.Conversation
	messages      []domainchat.Message
}

func NewChatRepo() *ChatRepo {
	return &ChatRepo{conversations: make(map[uuid.UUID]domainchat.Conversation)}
}

func (r *ChatRepo) CreateConversation(_ context.Context, c domainchat.Conversation) (domainchat.Conversation, error) {
	r.mu.Lock()
	r.conversations[c.ID] = c
	r.mu.Unlock()
	return c, nil
}

func (r *ChatRepo) GetConversation(_ context.Context, id uuid.UUID) (domainchat.Conversation, error) {
	r.mu.RLock()
	c, ok := r.conversations[id]
	r.mu.RUnlock()

	if !ok {
		return domainchat.Conversation{}, portchat.ErrNotFound
	}
	return c, nil
}

func (r *ChatRepo) ListConversations(_ context.Context, teamID uuid.UUID) ([]domainchat.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domainchat.Conversation
	for _, c := range r.conversations {
		if c.TeamID == teamID {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastMessageAt.After(out[j].LastMessageAt)
	})
	return out, nil
}

func (r *ChatRepo) TouchConversation(_ context.Context, id uuid.UUID, lastMessageAt time.Time, preview string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.conversations[id]
	if !ok {
		return portchat.ErrNotFound
	}
	c.LastMessageAt = lastMessageAt
	c.LastMessagePreview = preview
	r.conversations[id] = c
	return nil
}

func (r *ChatRepo) CreateMessage(_ context.Context, m domainchat.Message) (domainchat.Message, error) {
	r.mu.Lock()
	r.messages = append(r.messages, m)
	r.mu.Unlock()
	return m, nil
}

func (r *ChatRepo) ListMessages(_ context.Context, conversationID uuid.UUID) ([]domainchat.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domainchat.Message
	for _, m := range r.messages {
		if m.ConversationID == conversationID {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SentAt.Before(out[j].SentAt)
	})
	return out, nil
}
