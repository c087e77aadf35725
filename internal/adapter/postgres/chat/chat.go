package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domainchat "github.com/teamdesk/teamdesk/internal/domain/chat"
	portchat "github.com/teamdesk/teamdesk/internal/port/chat"
)

var _ portchat.Repository = (*Repository)(nil)

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const conversationColumns = `id, team_id, title, member_ids_jsonb, pinned, last_message_at, last_message_preview, created_at`

func (r *Repository) CreateConversation(ctx context.Context, c domainchat.Conversation) (domainchat.Conversation, error) {
	memberIDs, err := json.Marshal(c.MemberIDs)
	if err != nil {
		return domainchat.Conversation{}, fmt.Errorf("marshal member ids: %w", err)
	}

	row := r.pool.QueryRow(ctx,
		`INSERT INTO conversations (`+conversationColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+conversationColumns,
		c.ID, c.TeamID, c.Title, memberIDs, c.Pinned, c.LastMessageAt, c.LastMessagePreview, c.CreatedAt,
	)

	out, err := scanConversation(row)
	if err != nil {
		return domainchat.Conversation{}, fmt.Errorf("insert conversation: %w", err)
	}
	return out, nil
}

func (r *Repository) GetConversation(ctx context.Context, id uuid.UUID) (domainchat.Conversation, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+conversationColumns+` FROM conversations WHERE id = $1`, id,
	)

	out, err := scanConversation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainchat.Conversation{}, portchat.ErrNotFound
		}
		return domainchat.Conversation{}, fmt.Errorf("get conversation: %w", err)
	}
	return out, nil
}

func (r *Repository) ListConversations(ctx context.Context, teamID uuid.UUID) ([]domainchat.Conversation, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+conversationColumns+` FROM conversations WHERE team_id = $1 ORDER BY last_message_at DESC`,
		teamID,
	)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	defer rows.Close()

	var out []domainchat.Conversation
	for rows.Next() {
		c, err := scanConversation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan conversation: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate conversations: %w", err)
	}
	return out, nil
}

func (r *Repository) TouchConversation(ctx context.Context, id uuid.UUID, lastMessageAt time.Time, preview string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE conversations SET last_message_at = $2, last_message_preview = $3 WHERE id = $1`,
		id, lastMessageAt, preview,
	)
	if err != nil {
		return fmt.Errorf("touch conversation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return portchat.ErrNotFound
	}
	return nil
}

func (r *Repository) CreateMessage(ctx context.Context, m domainchat.Message) (domainchat.Message, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO messages (id, conversation_id, author_id, content, status, sent_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, conversation_id, author_id, content, status, sent_at`,
		m.ID, m.ConversationID, m.AuthorID, m.Content, m.Status, m.SentAt,
	)

	var out domainchat.Message
	if err := row.Scan(&out.ID, &out.ConversationID, &out.AuthorID, &out.Content, &out.Status, &out.SentAt); err != nil {
		return domainchat.Message{}, fmt.Errorf("insert message: %w", err)
	}
	return out, nil
}

func (r *Repository) ListMessages(ctx context.Context, conversationID uuid.UUID) ([]domainchat.Message, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, conversation_id, author_id, content, status, sent_at
		 FROM messages WHERE conversation_id = $1 ORDER BY sent_at ASC`,
		conversationID,
	)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	var out []domainchat.Message
	for rows.Next() {
		var m domainchat.Message
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.AuthorID, &m.Content, &m.Status, &m.SentAt); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate messages: %w", err)
	}
	return out, nil
}

func scanConversation(row pgx.Row) (domainchat.Conversation, error) {
	var c domainchat.Conversation
	var memberIDs []byte

	if err := row.Scan(
		&c.ID, &c.TeamID, &c.Title, &memberIDs, &c.Pinned,
		&c.LastMessageAt, &c.LastMessagePreview, &c.CreatedAt,
	); err != nil {
		return domainchat.Conversation{}, err
	}

	if err := json.Unmarshal(memberIDs, &c.MemberIDs); err != nil {
		return domainchat.Conversation{}, fmt.Errorf("unmarshal member ids: %w", err)
	}
	return c, nil
}
