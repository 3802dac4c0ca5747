package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"minichat-backend/internal/models"
)

const defaultConversationTitle = "Nouvelle conversation"

type ConversationRepo struct {
	pool *pgxpool.Pool
}

func NewConversationRepo(pool *pgxpool.Pool) *ConversationRepo {
	return &ConversationRepo{pool: pool}
}

func (r *ConversationRepo) Create(ctx context.Context, title string) (*models.Conversation, error) {
	if title == "" {
		title = defaultConversationTitle
	}

	c := &models.Conversation{ID: uuid.New(), Title: title}
	query := `INSERT INTO conversations (id, title) VALUES ($1, $2)
		RETURNING created_at, updated_at`

	err := r.pool.QueryRow(ctx, query, c.ID, c.Title).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *ConversationRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Conversation, error) {
	c := &models.Conversation{}
	query := `SELECT id, title, created_at, updated_at FROM conversations WHERE id = $1`

	err := r.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.Title, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *ConversationRepo) List(ctx context.Context) ([]*models.Conversation, error) {
	query := `SELECT id, title, created_at, updated_at FROM conversations
		ORDER BY updated_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	conversations := []*models.Conversation{}
	for rows.Next() {
		c := &models.Conversation{}
		if err := rows.Scan(&c.ID, &c.Title, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		conversations = append(conversations, c)
	}
	return conversations, rows.Err()
}

func (r *ConversationRepo) UpdateTitle(ctx context.Context, id uuid.UUID, title string) (*models.Conversation, error) {
	c := &models.Conversation{ID: id, Title: title}
	query := `UPDATE conversations SET title = $2, updated_at = NOW() WHERE id = $1
		RETURNING created_at, updated_at`

	err := r.pool.QueryRow(ctx, query, id, title).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Touch bumps updated_at so the conversation sorts to the top of the list.
func (r *ConversationRepo) Touch(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `UPDATE conversations SET updated_at = NOW() WHERE id = $1`, id)
	return err
}

// Delete removes a conversation; messages cascade at the schema level.
func (r *ConversationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM conversations WHERE id = $1`, id)
	return err
}
