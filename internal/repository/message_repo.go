package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"minichat-backend/internal/models"
)

type MessageRepo struct {
	pool *pgxpool.Pool
}

func NewMessageRepo(pool *pgxpool.Pool) *MessageRepo {
	return &MessageRepo{pool: pool}
}

func (r *MessageRepo) Create(ctx context.Context, m *models.Message) error {
	m.ID = uuid.New()
	query := `INSERT INTO messages (id, conversation_id, role, content, image_path)
		VALUES ($1, $2, $3, $4, $5) RETURNING created_at`

	return r.pool.QueryRow(ctx, query,
		m.ID, m.ConversationID, m.Role, m.Content, m.ImagePath,
	).Scan(&m.CreatedAt)
}

func (r *MessageRepo) ListByConversation(ctx context.Context, conversationID uuid.UUID) ([]*models.Message, error) {
	query := `SELECT id, conversation_id, role, content, image_path, created_at
		FROM messages WHERE conversation_id = $1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []*models.Message{}
	for rows.Next() {
		m := &models.Message{}
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.Role, &m.Content, &m.ImagePath, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// ListImagePaths returns the upload paths referenced by a conversation so
// the handler can remove the files before deleting the rows.
func (r *MessageRepo) ListImagePaths(ctx context.Context, conversationID uuid.UUID) ([]string, error) {
	query := `SELECT image_path FROM messages
		WHERE conversation_id = $1 AND image_path IS NOT NULL`

	rows, err := r.pool.Query(ctx, query, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, rows.Err()
}
