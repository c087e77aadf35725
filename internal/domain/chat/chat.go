package chat

import (
	"time"

	"github.com/google/uuid"
)

type Conversation struct {
	ID                 uuid.UUID   `json:"id"`
	TeamID             uuid.UUID   `json:"team_id"`
	Title              string      `json:"title,omitempty"`
	MemberIDs          []uuid.UUID `json:"member_ids"`
	Pinned             bool        `json:"pinned"`
	LastMessageAt      time.Time   `json:"last_message_at"`
	LastMessagePreview string      `json:"last_message_preview,omitempty"`
	CreatedAt          time.Time   `json:"created_at"`
}

func NewConversation(teamID uuid.UUID, title string, memberIDs []uuid.UUID) Conversation {
	now := time.Now().UTC()
	return Conversation{
		ID:            uuid.New(),
		TeamID:        teamID,
		Title:         title,
		MemberIDs:     memberIDs,
		LastMessageAt: now,
		CreatedAt:     now,
	}
}

type MessageStatus string

const (
	MessageDelivered MessageStatus = "delivered"
)

type Message struct {
	ID             uuid.UUID     `json:"id"`
	ConversationID uuid.UUID     `json:"conversation_id"`
	AuthorID       uuid.UUID     `json:"author_id"`
	Content        string        `json:"content"`
	Status         MessageStatus `json:"status"`
	SentAt         time.Time     `json:"sent_at"`
}

func NewMessage(conversationID, authorID uuid.UUID, content string) Message {
	return Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		AuthorID:       authorID,
		Content:        content,
		Status:         MessageDelivered,
		SentAt:         time.Now().UTC(),
	}
}
